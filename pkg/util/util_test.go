package util

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")
	assert.NotEmpty(t, GetRequestID(ctx))

	ctx = WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Empty(t, GetProductID(ctx))

	ctx = WithProductID(ctx, "BTC-USD")
	assert.Equal(t, "BTC-USD", GetProductID(ctx))
}

func TestUnixToISO(t *testing.T) {
	assert.Equal(t, "2024-03-01T00:00:00.000Z", UnixToISO(1709251200))
}

func TestStartOfDayAndYear(t *testing.T) {
	ts := time.Date(2024, time.March, 1, 18, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), StartOfDay(ts, time.UTC))
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), StartOfYear(ts, time.UTC))

	tokyo := time.FixedZone("UTC+9", 9*3600)
	// 18:30 UTC is already the next day at UTC+9.
	assert.Equal(t, time.Date(2024, time.March, 2, 0, 0, 0, 0, tokyo), StartOfDay(ts, tokyo))
}
