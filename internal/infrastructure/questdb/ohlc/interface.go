package ohlc

import (
	"context"
)

// OHLCRepository represents the repository interface for OHLC data.
type OHLCRepository interface {
	Store(ctx context.Context, ohlc *OHLC) error
	StoreBatch(ctx context.Context, ohlcs []*OHLC) error
	GetLatest(ctx context.Context, symbol, interval string) (*OHLC, error)
}
