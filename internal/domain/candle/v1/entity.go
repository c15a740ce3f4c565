package candlev1

import (
	"time"
)

// Candle is an OHLC bar of matched prices over one interval bucket.
type Candle struct {
	Type       string    `json:"type"`
	ProductID  string    `json:"product_id"`
	Interval   string    `json:"interval"`
	Timestamp  time.Time `json:"timestamp"`
	Open       int64     `json:"open"`
	High       int64     `json:"high"`
	Low        int64     `json:"low"`
	Close      int64     `json:"close"`
	Volume     int64     `json:"volume"`
	TradeCount int64     `json:"trade_count"`
}

// TypeCandle tags a closed candle message.
const TypeCandle = "candle"
