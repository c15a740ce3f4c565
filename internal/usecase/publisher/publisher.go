package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	candlev1 "github.com/muhammadchandra19/marketfeed/internal/domain/candle/v1"
	publisherv1 "github.com/muhammadchandra19/marketfeed/internal/domain/publisher/v1"
	snapshotv1 "github.com/muhammadchandra19/marketfeed/internal/domain/snapshot/v1"
	tickerv1 "github.com/muhammadchandra19/marketfeed/internal/domain/ticker/v1"
	"github.com/muhammadchandra19/marketfeed/pkg/errors"
	"github.com/muhammadchandra19/marketfeed/pkg/logger"
	"github.com/muhammadchandra19/marketfeed/pkg/redis"
)

// Channels names the pub/sub channels. Templates take the product id through %s.
type Channels struct {
	Depth       string
	Ticker      string
	TickerBatch string
	Fills       string
	Candle      string
}

// Publisher publishes JSON messages over Redis pub/sub.
type Publisher struct {
	redisclient redis.Client
	channels    Channels
	logger      *logger.Logger
}

var _ publisherv1.Publisher = (*Publisher)(nil)

// NewPublisher creates a Redis backed Publisher.
func NewPublisher(redisclient redis.Client, channels Channels, log *logger.Logger) *Publisher {
	return &Publisher{
		redisclient: redisclient,
		channels:    channels,
		logger:      log,
	}
}

func (p *Publisher) publish(ctx context.Context, channel string, message any) error {
	buf, err := json.Marshal(message)
	if err != nil {
		return errors.NewTracer("publish_marshal_error").Wrap(err)
	}

	receivers, err := p.redisclient.Publish(ctx, channel, string(buf))
	if err != nil {
		return errors.NewTracer("publish_error").Wrap(err)
	}

	p.logger.DebugContext(ctx, "Published",
		logger.NewField("channel", channel),
		logger.NewField("receivers", receivers),
	)
	return nil
}

// PublishDepth sends a diff on the instrument's depth channel.
func (p *Publisher) PublishDepth(ctx context.Context, productID string, updates snapshotv1.Snapshot) error {
	return p.publish(ctx, fmt.Sprintf(p.channels.Depth, productID), publisherv1.NewDepthUpdate(productID, updates))
}

func (p *Publisher) PublishTicker(ctx context.Context, ticker tickerv1.Ticker) error {
	return p.publish(ctx, p.channels.Ticker, ticker)
}

func (p *Publisher) PublishTickerBatch(ctx context.Context, tickers []tickerv1.Ticker) error {
	return p.publish(ctx, p.channels.TickerBatch, tickerv1.NewBatch(tickers))
}

// PublishFills sends the raw matched records as one JSON array.
func (p *Publisher) PublishFills(ctx context.Context, productID string, fills []map[string]string) error {
	if len(fills) == 0 {
		return nil
	}
	return p.publish(ctx, fmt.Sprintf(p.channels.Fills, productID), fills)
}

func (p *Publisher) PublishCandle(ctx context.Context, candle candlev1.Candle) error {
	return p.publish(ctx, fmt.Sprintf(p.channels.Candle, candle.ProductID), candle)
}
