package handlers

import (
	"net/http"
	"time"

	"github.com/denmor86/recovery-authority/internal/helpers"
	"github.com/denmor86/recovery-authority/internal/logger"
	"github.com/denmor86/recovery-authority/internal/realtime"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

const (
	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second
)

// UserNotificationsHandler — канал изменений по строкам текущего пользователя.
// Любое событие в области видимости означает "перечитай данные".
func UserNotificationsHandler(hub *realtime.Hub) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("Failed to upgrade connection:", zap.Error(err))
			return
		}

		subscriber := hub.Subscribe(userID)
		defer hub.Unsubscribe(subscriber)
		serveSubscriber(conn, subscriber, "")
	})
}

// AdminNotificationsHandler — канал изменений по всей таблице заявок,
// без фильтра по пользователю (административная сессия)
func AdminNotificationsHandler(hub *realtime.Hub) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("Failed to upgrade connection:", zap.Error(err))
			return
		}

		subscriber := hub.SubscribeAll()
		defer hub.Unsubscribe(subscriber)
		serveSubscriber(conn, subscriber, realtime.TableWithdrawals)
	})
}

// serveSubscriber - пересылка событий подписчика в веб-сокет до закрытия
// соединения любой из сторон. Непустой table оставляет только события этой таблицы.
func serveSubscriber(conn *websocket.Conn, subscriber *realtime.Subscriber, table string) {
	defer conn.Close()

	// читаем соединение только ради обнаружения закрытия клиентом
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-subscriber.Events:
			if !ok {
				return
			}
			if table != "" && event.Table != table {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(event); err != nil {
				logger.Warn("Failed to send change event:", err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
