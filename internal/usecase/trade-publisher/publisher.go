package tradepublisher

import (
	"context"

	tradev1 "github.com/muhammadchandra19/marketfeed/internal/domain/trade/v1"
	"github.com/muhammadchandra19/marketfeed/internal/config"
	"github.com/muhammadchandra19/marketfeed/pkg/errors"
	"github.com/muhammadchandra19/marketfeed/pkg/logger"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher represents a Kafka Publisher for executed trades.
type Publisher struct {
	kafkaWriter messageWriter
	logger      *logger.Logger
}

var _ tradev1.Publisher = (*Publisher)(nil)

// NewPublisher creates a Kafka publisher keyed by product id, so trades of one
// instrument stay ordered within a partition.
func NewPublisher(config config.TradeKafkaConfig, logger *logger.Logger) *Publisher {
	kafkaWriter := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: config.BatchTimeout,
		RequiredAcks: kafka.RequireOne,
	}

	return newPublisher(kafkaWriter, logger)
}

func newPublisher(w messageWriter, logger *logger.Logger) *Publisher {
	return &Publisher{
		kafkaWriter: w,
		logger:      logger,
	}
}

// PublishTrades writes one message per trade.
func (p *Publisher) PublishTrades(ctx context.Context, trades []tradev1.Trade) error {
	if len(trades) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(trades))
	for _, t := range trades {
		msgs = append(msgs, kafka.Message{
			Key:   []byte(t.ProductID),
			Value: t.ToBytes(),
		})
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msgs...); err != nil {
		p.logger.ErrorContext(ctx, err,
			logger.NewField("operation", "PublishTrades"),
			logger.NewField("count", len(trades)),
		)
		return errors.NewTracer("trade_publish_error").Wrap(err)
	}
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *Publisher) Close() error {
	if err := p.kafkaWriter.Close(); err != nil {
		return errors.NewTracer("trade_publisher_close_error").Wrap(err)
	}
	return nil
}
