package util

import (
	"context"
)

type key string

const (
	productIDKey = key("product-id")
	eventIDKey   = key("event-id")
)

// WithRequestID returns a context with request id.
// A new id is generated when id is empty.
func WithRequestID(ctx context.Context, id string) context.Context {
	return ContextWithRequestID(ctx, id)
}

// WithProductID returns a context scoped to one instrument.
func WithProductID(ctx context.Context, productID string) context.Context {
	return context.WithValue(ctx, productIDKey, productID)
}

// WithEventID returns a context with the id of the stream entry being applied.
func WithEventID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, eventIDKey, id)
}

// GetRequestID returns request id from context
// will return empty string if not present
func GetRequestID(ctx context.Context) string {
	return FromContext(ctx)
}

// GetProductID returns the instrument id from context
// will return empty string if not present
func GetProductID(ctx context.Context) string {
	id, _ := ctx.Value(productIDKey).(string)
	return id
}

// GetEventID returns event id from context
// will return empty string if not present
func GetEventID(ctx context.Context) string {
	id, _ := ctx.Value(eventIDKey).(string)
	return id
}
