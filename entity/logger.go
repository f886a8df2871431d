package entity

import "context"

// Logger specifies a contextual, structured logger.
// Keys and values are passed as alternating kv pairs.
type Logger interface {
	Info(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, err error, kv ...any)
}
