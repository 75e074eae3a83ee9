package context

import (
	"context"
)

const (
	ContextKeyCorrelationID ContextKey = "Correlation-Id"
	DefaultCorrelationID               = "00000000.00000000"
)

type ContextKey string

// WithCorrelationID returns a copy of ctx carrying the given correlation id.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return SetContextWithValue(ctx, ContextKeyCorrelationID, correlationID)
}

// CorrelationID returns the correlation id stored in ctx, or "" if none.
func CorrelationID(ctx context.Context) string {
	return GetContextValue(ctx, ContextKeyCorrelationID)
}

func SetContextWithValue(ctx context.Context, key ContextKey, value string) context.Context {
	return context.WithValue(ctx, key, value)
}

func GetContextValue(ctx context.Context, key ContextKey) string {
	if ctx == nil {
		return ""
	}
	v := ctx.Value(key)
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
