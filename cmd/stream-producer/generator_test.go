package main

import (
	"testing"
	"time"

	orderv1 "github.com/muhammadchandra19/marketfeed/internal/domain/order/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_EventsParse(t *testing.T) {
	gen := newGenerator(7, "BTC-USD", 1000, 50)
	gen.now = func() time.Time { return time.Unix(1709251200, 0) }

	open := map[string]bool{}
	for range 500 {
		event := gen.Next()

		order, err := orderv1.ParseOrder(event.Fields)
		require.NoError(t, err, event.Fields)
		assert.Equal(t, "BTC-USD", order.ProductID)

		switch event.Stream {
		case "BTC-USD:new":
			if order.IsLimit() {
				assert.Greater(t, order.Price, int64(0))
				open[order.ID] = true
			}
		case "BTC-USD:matches":
			assert.True(t, open[order.ID], "match for unknown order %s", order.ID)
			delete(open, order.ID)
			if order.Status == orderv1.StatusDone {
				assert.Equal(t, order.Price*order.Size, order.ExecutedValue.IntPart())
			}
		default:
			t.Fatalf("unexpected stream %s", event.Stream)
		}
	}
	assert.Len(t, gen.resting, len(open))
}

func TestGenerator_SidesStraddleBasePrice(t *testing.T) {
	gen := newGenerator(1, "ETH-USD", 1000, 10)
	for range 200 {
		event := gen.place()
		if event.Fields["type"] != "limit" {
			continue
		}
		order, err := orderv1.ParseOrder(event.Fields)
		require.NoError(t, err)
		if order.Side == orderv1.SideBuy {
			assert.Less(t, order.Price, int64(1000))
		} else {
			assert.Greater(t, order.Price, int64(1000))
		}
	}
}
