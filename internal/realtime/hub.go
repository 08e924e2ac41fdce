package realtime

import (
	"sync"

	"github.com/denmor86/recovery-authority/internal/logger"
)

// Действия над строками, о которых оповещает канал изменений
const (
	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Имена таблиц в событиях канала изменений
const (
	TableWithdrawals = "withdrawal_requests"
	TableBalances    = "balances"
	TableProfiles    = "profiles"
)

// ChangeEvent - событие изменения строки. Полезной нагрузки нет:
// подписчик по любому событию перечитывает данные целиком.
type ChangeEvent struct {
	Table  string `json:"table"`
	Action string `json:"action"`
	UserID string `json:"user_id,omitempty"`
}

// Subscriber - подписчик канала изменений. Область видимости задаётся
// идентификатором пользователя, для административных сессий - вся таблица.
type Subscriber struct {
	UserID string
	All    bool
	Events chan ChangeEvent
}

// Hub - канал изменений. Рассылает события подписчикам, события в
// переполненный буфер подписчика отбрасываются: клиент по любому
// событию перечитывает всё, пропуск дубликата ничего не теряет.
type Hub struct {
	register    chan *Subscriber
	unregister  chan *Subscriber
	broadcast   chan ChangeEvent
	subscribers map[*Subscriber]struct{}
	quit        chan struct{}
	done        sync.WaitGroup
}

const subscriberBufferSize = 16

// Создание канала изменений
func NewHub() *Hub {
	return &Hub{
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		broadcast:   make(chan ChangeEvent, 100),
		subscribers: make(map[*Subscriber]struct{}),
		quit:        make(chan struct{}),
	}
}

// Start - запускает цикл рассылки в фоне
func (h *Hub) Start() {
	h.done.Add(1)
	go h.run()
}

// Stop - останавливает цикл рассылки и закрывает каналы подписчиков
func (h *Hub) Stop() {
	close(h.quit)
	h.done.Wait()
}

func (h *Hub) run() {
	defer h.done.Done()
	for {
		select {
		case <-h.quit:
			for subscriber := range h.subscribers {
				close(subscriber.Events)
			}
			h.subscribers = make(map[*Subscriber]struct{})
			logger.Info("Change hub stopped")
			return
		case subscriber := <-h.register:
			h.subscribers[subscriber] = struct{}{}
			logger.Infow("Change hub subscriber registered",
				"user_id", subscriber.UserID,
				"all", subscriber.All,
				"subscribers", len(h.subscribers),
			)
		case subscriber := <-h.unregister:
			if _, ok := h.subscribers[subscriber]; ok {
				delete(h.subscribers, subscriber)
				close(subscriber.Events)
			}
		case event := <-h.broadcast:
			for subscriber := range h.subscribers {
				if !subscriber.All && subscriber.UserID != event.UserID {
					continue
				}
				select {
				case subscriber.Events <- event:
				default:
					// подписчик не успевает, событие пропускаем
					logger.Warn("Change hub subscriber is slow, event dropped", subscriber.UserID)
				}
			}
		}
	}
}

// Subscribe - подписка на события строк конкретного пользователя
func (h *Hub) Subscribe(userID string) *Subscriber {
	subscriber := &Subscriber{
		UserID: userID,
		Events: make(chan ChangeEvent, subscriberBufferSize),
	}
	select {
	case h.register <- subscriber:
	case <-h.quit:
		close(subscriber.Events)
	}
	return subscriber
}

// SubscribeAll - подписка на события всей таблицы (административная сессия)
func (h *Hub) SubscribeAll() *Subscriber {
	subscriber := &Subscriber{
		All:    true,
		Events: make(chan ChangeEvent, subscriberBufferSize),
	}
	select {
	case h.register <- subscriber:
	case <-h.quit:
		close(subscriber.Events)
	}
	return subscriber
}

// Unsubscribe - отписка, канал подписчика закрывается циклом рассылки
func (h *Hub) Unsubscribe(subscriber *Subscriber) {
	select {
	case h.unregister <- subscriber:
	case <-h.quit:
	}
}

// Publish - публикация события изменения, не блокирует вызывающего
func (h *Hub) Publish(event ChangeEvent) {
	select {
	case h.broadcast <- event:
	case <-h.quit:
	default:
		logger.Warn("Change hub broadcast buffer is full, event dropped")
	}
}
