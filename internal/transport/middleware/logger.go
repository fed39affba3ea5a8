package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/campusdesk-backend/pkg/ctxutil"
)

// Logger emits one "http.request" line per request. Server errors log at
// ERROR, client errors at WARN. The actor and matched route are taken from
// the innermost request so they are present even though Auth and the mux
// run after this middleware.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			attrs := make([]slog.Attr, 0, 9)
			attrs = append(attrs,
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			)
			if route := sw.route(r); route != "" {
				attrs = append(attrs, slog.String("route", route))
			}
			if actor, ok := ctxutil.ActorFromCtx(sw.ctx(r)); ok {
				attrs = append(attrs,
					slog.String("actor_id", actor.ID.String()),
					slog.String("actor_role", actor.Role.String()),
				)
			}

			logger.LogAttrs(r.Context(), levelFor(sw.status), "http.request", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
