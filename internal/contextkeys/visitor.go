package contextkeys

import (
	"context"

	"github.com/google/uuid"
)

type traceIDKeyType struct{}
type visitorIDKeyType struct{}

var (
	traceIDKey   = traceIDKeyType{}
	visitorIDKey = visitorIDKeyType{}
)

// ContextWithTraceID помещает trace_id в контекст
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext извлекает trace_id из контекста.
// Возвращает пустую строку, если trace_id не найден
func TraceIDFromContext(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// ContextWithVisitorID помещает идентификатор посетителя в контекст
func ContextWithVisitorID(ctx context.Context, visitorID uuid.UUID) context.Context {
	return context.WithValue(ctx, visitorIDKey, visitorID)
}

// VisitorIDFromContext возвращает идентификатор посетителя или uuid.Nil для анонимного
func VisitorIDFromContext(ctx context.Context) uuid.UUID {
	if visitorID, ok := ctx.Value(visitorIDKey).(uuid.UUID); ok {
		return visitorID
	}
	return uuid.Nil
}
