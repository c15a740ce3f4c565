package tradepublisher

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"

	orderv1 "github.com/muhammadchandra19/marketfeed/internal/domain/order/v1"
	tradev1 "github.com/muhammadchandra19/marketfeed/internal/domain/trade/v1"
	"github.com/muhammadchandra19/marketfeed/internal/config"
	"github.com/muhammadchandra19/marketfeed/pkg/logger"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func testTrade() tradev1.Trade {
	return tradev1.FromMatch(&orderv1.Order{
		ID:            "a",
		ProductID:     "BTC-USD",
		UserID:        "u1",
		Side:          orderv1.SideSell,
		Price:         100,
		Size:          2,
		ExecutedValue: decimal.NewFromInt(200),
		Status:        orderv1.StatusDone,
		CreatedAt:     1709251200,
	})
}

func TestPublisher_PublishTrades(t *testing.T) {
	w := &recordingWriter{}
	p := newPublisher(w, logger.NewNop())

	require.NoError(t, p.PublishTrades(context.Background(), []tradev1.Trade{testTrade()}))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("BTC-USD"), w.msgs[0].Key)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, "a", got["order_id"])
	assert.Equal(t, "sell", got["side"])
	assert.Equal(t, "200", got["executed_value"])
	assert.Equal(t, "2024-03-01T00:00:00Z", got["timestamp"])

	require.NoError(t, p.PublishTrades(context.Background(), nil))
	assert.Len(t, w.msgs, 1)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublisher_PublishTradesFailure(t *testing.T) {
	w := &recordingWriter{err: stderrors.New("leader not available")}
	p := newPublisher(w, logger.NewNop())

	assert.Error(t, p.PublishTrades(context.Background(), []tradev1.Trade{testTrade()}))
}

func TestNewPublisher(t *testing.T) {
	p := NewPublisher(config.TradeKafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "trades"}, logger.NewNop())

	w, ok := p.kafkaWriter.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "trades", w.Topic)
}
