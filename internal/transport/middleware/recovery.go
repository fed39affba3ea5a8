package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/campusdesk-backend/pkg/ctxutil"
)

// Recovery turns a handler panic into a 500 INTERNAL envelope. If the
// handler already started the response, the status cannot be changed and
// only the log line is written. http.ErrAbortHandler is re-raised.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				attrs := []any{
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.Bool("headers_sent", sw.wroteHeader),
					slog.String("stack", string(debug.Stack())),
				}
				if actor, ok := ctxutil.ActorFromCtx(sw.ctx(r)); ok {
					attrs = append(attrs, slog.String("actor_id", actor.ID.String()))
				}
				logger.ErrorContext(r.Context(), "panic recovered", attrs...)

				if !sw.wroteHeader {
					writeError(sw, http.StatusInternalServerError, "INTERNAL", "internal server error")
				}
			}()
			next.ServeHTTP(sw, r)
		})
	}
}
