package candle

import (
	"time"

	candlev1 "github.com/muhammadchandra19/marketfeed/internal/domain/candle/v1"
	orderv1 "github.com/muhammadchandra19/marketfeed/internal/domain/order/v1"
	"github.com/muhammadchandra19/marketfeed/pkg/interval"
)

// Builder aggregates the matches of one instrument into candles for each enabled interval.
type Builder struct {
	productID string
	loc       *time.Location
	intervals []interval.Interval
	open      map[string]*candlev1.Candle
}

// NewBuilder creates a Builder. Daily buckets start at midnight in loc.
func NewBuilder(productID string, intervals []interval.Interval, loc *time.Location) *Builder {
	if loc == nil {
		loc = time.Local
	}
	return &Builder{
		productID: productID,
		loc:       loc,
		intervals: intervals,
		open:      make(map[string]*candlev1.Candle, len(intervals)),
	}
}

// Apply folds one match into the open candles and returns the candles it closed.
// A match from an older bucket than the open candle is folded into the open one.
func (b *Builder) Apply(match *orderv1.Order) []candlev1.Candle {
	if match.Price <= 0 {
		return nil
	}
	at := time.Unix(match.CreatedAt, 0).In(b.loc)

	var closed []candlev1.Candle
	for _, iv := range b.intervals {
		bucket := iv.CalculateBucketTime(at)

		current, ok := b.open[iv.Name]
		if ok && bucket.After(current.Timestamp) {
			closed = append(closed, *current)
			ok = false
		}
		if !ok {
			current = &candlev1.Candle{
				Type:      candlev1.TypeCandle,
				ProductID: b.productID,
				Interval:  iv.Name,
				Timestamp: bucket,
				Open:      match.Price,
				High:      match.Price,
				Low:       match.Price,
			}
			b.open[iv.Name] = current
		}

		current.High = max(current.High, match.Price)
		current.Low = min(current.Low, match.Price)
		current.Close = match.Price
		current.Volume += match.Size
		current.TradeCount++
	}
	return closed
}

// Current returns the open candle of an interval.
func (b *Builder) Current(name string) (candlev1.Candle, bool) {
	c, ok := b.open[name]
	if !ok {
		return candlev1.Candle{}, false
	}
	return *c, true
}
