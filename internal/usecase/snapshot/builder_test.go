package snapshot

import (
	"fmt"
	"math/rand"
	"testing"

	orderv1 "github.com/muhammadchandra19/marketfeed/internal/domain/order/v1"
	snapshotv1 "github.com/muhammadchandra19/marketfeed/internal/domain/snapshot/v1"
	"github.com/muhammadchandra19/marketfeed/internal/usecase/orderbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCreatedAt = 1709251200 // 2024-03-01T00:00:00Z

func limitOrder(id string, side orderv1.Side, price, size int64) *orderv1.Order {
	return &orderv1.Order{
		ID:        id,
		Side:      side,
		Type:      orderv1.TypeLimit,
		Price:     price,
		Size:      size,
		CreatedAt: testCreatedAt,
	}
}

func row(side snapshotv1.Side, price, qty int64) snapshotv1.Row {
	return snapshotv1.Row{Side: side, PriceLevel: price, NewQuantity: qty, EventTime: "2024-03-01T00:00:00.000Z"}
}

func TestBuilder_Build(t *testing.T) {
	testCases := []struct {
		name   string
		orders []*orderv1.Order
		want   snapshotv1.Snapshot
		wantOK bool
	}{
		{
			name:   "empty book has no snapshot",
			wantOK: false,
		},
		{
			name: "one bid and one ask",
			orders: []*orderv1.Order{
				limitOrder("a", orderv1.SideBuy, 100, 5),
				limitOrder("b", orderv1.SideSell, 105, 3),
			},
			want:   snapshotv1.Snapshot{row(snapshotv1.SideBid, 100, 5), row(snapshotv1.SideAsk, 105, 3)},
			wantOK: true,
		},
		{
			name: "ask only book",
			orders: []*orderv1.Order{
				limitOrder("b", orderv1.SideSell, 105, 3),
			},
			want:   snapshotv1.Snapshot{row(snapshotv1.SideAsk, 105, 3)},
			wantOK: true,
		},
		{
			name: "sorted best first",
			orders: []*orderv1.Order{
				limitOrder("a", orderv1.SideBuy, 98, 1),
				limitOrder("b", orderv1.SideBuy, 100, 2),
				limitOrder("c", orderv1.SideBuy, 100, 3),
				limitOrder("d", orderv1.SideSell, 107, 4),
				limitOrder("e", orderv1.SideSell, 103, 5),
			},
			want: snapshotv1.Snapshot{
				row(snapshotv1.SideBid, 100, 5),
				row(snapshotv1.SideBid, 98, 1),
				row(snapshotv1.SideAsk, 103, 5),
				row(snapshotv1.SideAsk, 107, 4),
			},
			wantOK: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			book := orderbook.NewOrderbook("BTC-USD")
			for _, o := range tc.orders {
				book.AddOrder(o)
			}

			got, ok := NewBuilder(DefaultDepth).Build(book)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// After the only bid leaves, the ask-only book is bucketed with tick 1.
func TestBuilder_OneSidedAfterRemoval(t *testing.T) {
	book := orderbook.NewOrderbook("BTC-USD")
	book.AddOrder(limitOrder("a", orderv1.SideBuy, 100, 5))
	book.AddOrder(limitOrder("b", orderv1.SideSell, 105, 3))
	book.RemoveOrder(&orderv1.Order{ID: "a"})

	b := NewBuilder(DefaultDepth)
	assert.Equal(t, int64(1), b.TickSize(book))

	got, ok := b.Build(book)
	require.True(t, ok)
	assert.Equal(t, snapshotv1.Snapshot{row(snapshotv1.SideAsk, 105, 3)}, got)
}

func TestBuilder_Bucketing(t *testing.T) {
	book := orderbook.NewOrderbook("BTC-USD")
	// 20 bids 1000..1019 and 20 asks 1400..1419; spread 381, depth 20 -> tick 20.
	for i := int64(0); i < 20; i++ {
		book.AddOrder(limitOrder(fmt.Sprintf("b%d", i), orderv1.SideBuy, 1000+i, 1))
		book.AddOrder(limitOrder(fmt.Sprintf("a%d", i), orderv1.SideSell, 1400+i, 2))
	}

	b := NewBuilder(DefaultDepth)
	require.Equal(t, int64(20), b.TickSize(book))

	got, ok := b.Build(book)
	require.True(t, ok)

	assert.Equal(t, snapshotv1.Snapshot{
		// floor: 1000..1019 -> 1000
		row(snapshotv1.SideBid, 1000, 20),
		// ceil: 1400 -> 1400, 1401..1419 -> 1420
		row(snapshotv1.SideAsk, 1400, 2),
		row(snapshotv1.SideAsk, 1420, 38),
	}, got)
}

func TestBuilder_SparseBookKeepsTickOne(t *testing.T) {
	book := orderbook.NewOrderbook("BTC-USD")
	book.AddOrder(limitOrder("a", orderv1.SideBuy, 10, 1))
	book.AddOrder(limitOrder("b", orderv1.SideSell, 10000, 1))

	assert.Equal(t, int64(1), NewBuilder(DefaultDepth).TickSize(book))
}

func TestBuilder_DepthBound(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		depth := 1 + r.Intn(25)
		book := orderbook.NewOrderbook("BTC-USD")
		n := r.Intn(400)
		for i := 0; i < n; i++ {
			side := orderv1.SideBuy
			if r.Intn(2) == 0 {
				side = orderv1.SideSell
			}
			book.AddOrder(limitOrder(fmt.Sprintf("o%d", i), side, 1+r.Int63n(5000), 1+r.Int63n(10)))
		}

		got, _ := NewBuilder(depth).Build(book)
		assert.LessOrEqual(t, len(got), 2*depth)

		var bids, asks int
		for _, row := range got {
			if row.Side == snapshotv1.SideBid {
				bids++
			} else {
				asks++
			}
		}
		assert.LessOrEqual(t, bids, depth)
		assert.LessOrEqual(t, asks, depth)
	}
}

func TestBuilder_EventTimeIsLastEvent(t *testing.T) {
	book := orderbook.NewOrderbook("BTC-USD")
	o := limitOrder("a", orderv1.SideBuy, 100, 5)
	o.CreatedAt = testCreatedAt + 90
	book.AddOrder(o)

	got, ok := NewBuilder(0).Build(book)
	require.True(t, ok)
	assert.Equal(t, "2024-03-01T00:01:30.000Z", got[0].EventTime)
}
