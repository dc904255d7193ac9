package httpapi

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/dockq/internal/core/ports"
)

// RequestIDHeader carries the correlation id of a request.
const RequestIDHeader = "X-Request-ID"

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middleware in declaration order.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	wrapped := handler
	for idx := len(middleware) - 1; idx >= 0; idx-- {
		wrapped = middleware[idx](wrapped)
	}
	return wrapped
}

// RequestID injects and echoes a request id for correlation.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
				r.Header.Set(RequestIDHeader, requestID)
			}
			w.Header().Set(RequestIDHeader, requestID)
			next.ServeHTTP(w, r)
		})
	}
}

// AccessLog logs one line per request once it is served.
func AccessLog(log ports.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Info(fmt.Sprintf("%s %s %d %s request_id=%s",
				r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond), r.Header.Get(RequestIDHeader)))
		})
	}
}

// RecoverPanic converts panics into HTTP 500 responses.
func RecoverPanic(log ports.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					log.Error(fmt.Errorf("panic serving %s %s: %v\n%s", r.Method, r.URL.Path, recovered, debug.Stack()))
					w.WriteHeader(http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
