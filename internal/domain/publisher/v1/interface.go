package publisherv1

import (
	"context"

	candlev1 "github.com/muhammadchandra19/marketfeed/internal/domain/candle/v1"
	snapshotv1 "github.com/muhammadchandra19/marketfeed/internal/domain/snapshot/v1"
	tickerv1 "github.com/muhammadchandra19/marketfeed/internal/domain/ticker/v1"
)

// Publisher fans market data out on notification channels. Delivery is best effort.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=publisherv1_mock
type Publisher interface {
	PublishDepth(ctx context.Context, productID string, updates snapshotv1.Snapshot) error
	PublishTicker(ctx context.Context, ticker tickerv1.Ticker) error
	PublishTickerBatch(ctx context.Context, tickers []tickerv1.Ticker) error
	// PublishFills republishes the matched records verbatim for their owners.
	PublishFills(ctx context.Context, productID string, fills []map[string]string) error
	PublishCandle(ctx context.Context, candle candlev1.Candle) error
}
