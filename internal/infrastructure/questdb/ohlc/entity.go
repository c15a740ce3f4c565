package ohlc

import (
	"fmt"
	"time"

	candlev1 "github.com/muhammadchandra19/marketfeed/internal/domain/candle/v1"
	"github.com/muhammadchandra19/marketfeed/pkg/interval"
)

// OHLC represents a single OHLC (Open, High, Low, Close) data point.
type OHLC struct {
	Timestamp  time.Time
	Symbol     string
	Interval   string // Use interval.GetAllIntervalNames() for validation
	Open       int64
	High       int64
	Low        int64
	Close      int64
	Volume     int64
	TradeCount int64
}

// FromCandle converts a closed candle into a row.
func FromCandle(c candlev1.Candle) *OHLC {
	return &OHLC{
		Timestamp:  c.Timestamp.UTC(),
		Symbol:     c.ProductID,
		Interval:   c.Interval,
		Open:       c.Open,
		High:       c.High,
		Low:        c.Low,
		Close:      c.Close,
		Volume:     c.Volume,
		TradeCount: c.TradeCount,
	}
}

// ValidateInterval validates the interval field
func (o *OHLC) ValidateInterval() error {
	if !interval.IsValidInterval(o.Interval) {
		return fmt.Errorf("invalid interval: %s, supported: %v",
			o.Interval, interval.GetAllIntervalNames())
	}
	return nil
}
