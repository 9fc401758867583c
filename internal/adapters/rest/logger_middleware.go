package rest

import (
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const (
	traceIDHeader   = "X-Trace-ID"
	visitorIDHeader = "X-Visitor-ID"
)

// LoggerMiddleware создает контекстный логгер для каждого запроса
func LoggerMiddleware(logger port.LoggerPort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// trace_id приходит от клиента или генерируется
			traceID := r.Header.Get(traceIDHeader)
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = uuid.New().String()
			}

			coreLogger := logger.WithFields(port.Fields{"trace_id": traceID})
			httpLogger := coreLogger.WithFields(port.Fields{
				"http_method": r.Method,
				"http_path":   r.URL.Path,
				"remote_addr": r.RemoteAddr,
			})

			ctx := r.Context()
			ctx = contextkeys.ContextWithLogger(ctx, coreLogger)
			ctx = contextkeys.ContextWithTraceID(ctx, traceID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Header().Set(traceIDHeader, traceID)
			startTime := time.Now()

			httpLogger.Debug("Request started", nil)

			next.ServeHTTP(ww, r.WithContext(ctx))

			httpLogger.Info("Request finished", port.Fields{
				"status_code":   ww.Status(),
				"bytes_written": ww.BytesWritten(),
				"duration_ms":   time.Since(startTime).Milliseconds(),
			})
		})
	}
}

// VisitorMiddleware кладет в контекст посетителя из X-Visitor-ID.
// Без заголовка или с некорректным значением выдается новый идентификатор.
// Итоговый идентификатор всегда возвращается в заголовке ответа X-Visitor-ID,
// клиент должен присылать его в следующих запросах.
func VisitorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := contextkeys.LoggerFromContext(r.Context())

		visitorID := uuid.Nil
		if raw := r.Header.Get(visitorIDHeader); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				logger.Warn("Invalid visitor id header, issuing a new one", port.Fields{"value": raw})
			} else {
				visitorID = parsed
			}
		}
		if visitorID == uuid.Nil {
			visitorID = uuid.New()
			logger.Debug("Issued visitor id", port.Fields{"visitor_id": visitorID})
		}

		w.Header().Set(visitorIDHeader, visitorID.String())
		next.ServeHTTP(w, r.WithContext(contextkeys.ContextWithVisitorID(r.Context(), visitorID)))
	})
}
