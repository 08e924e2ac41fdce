package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// лимит попыток входа/регистрации с одного адреса
const (
	loginRateLimit = rate.Limit(1)
	loginRateBurst = 5
)

type addressLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func (l *addressLimiter) get(addr string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	limiter, ok := l.limiters[addr]
	if !ok {
		limiter = rate.NewLimiter(loginRateLimit, loginRateBurst)
		l.limiters[addr] = limiter
	}
	return limiter
}

// ThrottleAuth — ограничение частоты запросов к маршрутам аутентификации,
// отдельный лимит на каждый адрес
func ThrottleAuth() func(http.Handler) http.Handler {
	limiters := &addressLimiter{limiters: make(map[string]*rate.Limiter)}
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			if !limiters.get(host).Allow() {
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}
