package middleware

import (
	"net/http"
	"sync/atomic"
)

// Metrics counts requests by outcome.
type Metrics struct {
	Requests     atomic.Int64
	ClientErrors atomic.Int64
	ServerErrors atomic.Int64
	RateLimited  atomic.Int64
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() map[string]int64 {
	return map[string]int64{
		"request_count":      m.Requests.Load(),
		"client_error_count": m.ClientErrors.Load(),
		"server_error_count": m.ServerErrors.Load(),
		"rate_limited_count": m.RateLimited.Load(),
	}
}

// Middleware counts every request and classifies its status.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.Requests.Add(1)

		rw := newStatusRecorder(w)
		next.ServeHTTP(rw, r)

		switch {
		case rw.status == http.StatusTooManyRequests:
			m.RateLimited.Add(1)
		case rw.status >= 500:
			m.ServerErrors.Add(1)
		case rw.status >= 400:
			m.ClientErrors.Add(1)
		}
	})
}
