package middleware

import (
	"net/http"
	"time"
)

type httpRecorder interface {
	HTTPStarted()
	HTTPFinished(method, route string, status int, d time.Duration)
}

// Metrics records request counts and latency per route pattern. It must be
// the innermost middleware so the router's matched pattern is visible on
// the request after it returns.
func Metrics(rec httpRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			rec.HTTPStarted()
			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			rec.HTTPFinished(r.Method, route, sw.status, time.Since(start))
		})
	}
}
