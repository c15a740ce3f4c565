package archivev1

import (
	"context"

	candlev1 "github.com/muhammadchandra19/marketfeed/internal/domain/candle/v1"
	orderv1 "github.com/muhammadchandra19/marketfeed/internal/domain/order/v1"
)

// Archiver persists trades and closed candles for historical queries.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=archivev1_mock
type Archiver interface {
	ArchiveMatches(ctx context.Context, matches []*orderv1.Order) error
	ArchiveCandles(ctx context.Context, candles []candlev1.Candle) error
}
