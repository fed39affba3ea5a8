package middleware

import (
	"context"
	"net/http"
)

// statusWriter wraps http.ResponseWriter to capture the response status code.
// Inner middleware that authenticates the request reports the enriched
// request back through setRequest so outer layers can log the actor.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
	req         *http.Request
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	if sw, ok := w.(*statusWriter); ok {
		return sw
	}
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

func (w *statusWriter) setRequest(r *http.Request) { w.req = r }

func (w *statusWriter) request(r *http.Request) *http.Request {
	if w.req != nil {
		return w.req
	}
	return r
}

// ctx returns the most enriched context seen for this request.
func (w *statusWriter) ctx(r *http.Request) context.Context {
	return w.request(r).Context()
}

// route is the mux pattern that served the request, once routing is done.
func (w *statusWriter) route(r *http.Request) string {
	return w.request(r).Pattern
}
