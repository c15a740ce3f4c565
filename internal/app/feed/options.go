package feed

import (
	"fmt"
	"time"

	"github.com/muhammadchandra19/marketfeed/internal/config"
	"github.com/muhammadchandra19/marketfeed/pkg/interval"
)

// Options represents configuration options for the Engine.
type Options struct {
	TickInterval        time.Duration
	Concurrency         int
	TickerBatchInterval time.Duration
	// SinkTimeout limits each trade forward and archive write. Zero means no limit.
	SinkTimeout time.Duration

	NewStreamSuffix   string
	MatchStreamSuffix string

	// Location decides where a trading day and year start.
	Location  *time.Location
	Intervals []interval.Interval
}

// DefaultEngineOptions returns the default engine options.
func DefaultEngineOptions() *Options {
	return &Options{
		TickInterval:        100 * time.Millisecond,
		Concurrency:         16,
		TickerBatchInterval: 5 * time.Second,
		SinkTimeout:         2 * time.Second,
		NewStreamSuffix:     "new",
		MatchStreamSuffix:   "matches",
		Location:            time.Local,
		Intervals:           []interval.Interval{interval.Interval1m, interval.Interval5m},
	}
}

// OptionsFromConfig maps the feed and candle sections onto engine options.
func OptionsFromConfig(feed config.FeedConfig, candles interval.Config) (*Options, error) {
	loc, err := feed.Location()
	if err != nil {
		return nil, err
	}
	intervals, err := candles.GetEnabledIntervals()
	if err != nil {
		return nil, err
	}

	return &Options{
		TickInterval:        feed.TickInterval,
		Concurrency:         feed.Concurrency,
		TickerBatchInterval: feed.TickerBatchInterval,
		SinkTimeout:         feed.SinkTimeout,
		NewStreamSuffix:     feed.NewStreamSuffix,
		MatchStreamSuffix:   feed.MatchStreamSuffix,
		Location:            loc,
		Intervals:           intervals,
	}, nil
}

func (o *Options) newStream(productID string) string {
	return fmt.Sprintf("%s:%s", productID, o.NewStreamSuffix)
}

func (o *Options) matchStream(productID string) string {
	return fmt.Sprintf("%s:%s", productID, o.MatchStreamSuffix)
}
