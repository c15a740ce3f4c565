package orderbook

import (
	"testing"

	orderv1 "github.com/muhammadchandra19/marketfeed/internal/domain/order/v1"
	"github.com/stretchr/testify/assert"
)

// Helper function to create a limit order
func createTestOrder(id string, side orderv1.Side, price, size int64) *orderv1.Order {
	return &orderv1.Order{
		ID:        id,
		ProductID: "BTC-USD",
		Side:      side,
		Type:      orderv1.TypeLimit,
		Price:     price,
		Size:      size,
		CreatedAt: 1709251200,
	}
}

func levels(ob *Orderbook, side orderv1.Side) [][2]int64 {
	var out [][2]int64
	ob.Levels(side, func(price, size int64) bool {
		out = append(out, [2]int64{price, size})
		return true
	})
	return out
}

func TestNewOrderbook(t *testing.T) {
	ob := NewOrderbook("BTC-USD")

	assert.Equal(t, "BTC-USD", ob.ProductID)
	assert.Zero(t, ob.Len())
	assert.Zero(t, ob.BestBid())
	assert.Zero(t, ob.BestAsk())
	assert.Zero(t, ob.LastEventTime())
}

// Scenario: a bid and an ask define the best prices.
func TestOrderbook_BestPrices(t *testing.T) {
	ob := NewOrderbook("BTC-USD")

	ob.AddOrder(createTestOrder("a", orderv1.SideBuy, 100, 5))
	ob.AddOrder(createTestOrder("b", orderv1.SideSell, 105, 3))

	assert.Equal(t, int64(100), ob.BestBid())
	assert.Equal(t, int64(105), ob.BestAsk())
	assert.Equal(t, int64(5), ob.Qty(orderv1.SideBuy, 100))
	assert.Equal(t, int64(3), ob.Qty(orderv1.SideSell, 105))
	assert.Equal(t, int64(1709251200), ob.LastEventTime())

	// Removing the only bid empties that side.
	ob.RemoveOrder(&orderv1.Order{ID: "a", CreatedAt: 1709251260})

	assert.Zero(t, ob.BestBid())
	assert.Equal(t, int64(105), ob.BestAsk())
	assert.Equal(t, int64(1709251260), ob.LastEventTime())
}

func TestOrderbook_RemoveIsIdempotent(t *testing.T) {
	ob := NewOrderbook("BTC-USD")
	ob.AddOrder(createTestOrder("a", orderv1.SideBuy, 100, 5))
	ob.AddOrder(createTestOrder("b", orderv1.SideBuy, 99, 1))

	a := createTestOrder("a", orderv1.SideBuy, 100, 5)
	ob.RemoveOrder(a)
	once := levels(ob, orderv1.SideBuy)
	ob.RemoveOrder(a)

	assert.Equal(t, once, levels(ob, orderv1.SideBuy))
	assert.Equal(t, 1, ob.Len())

	// Unknown ids are ignored.
	ob.RemoveOrder(&orderv1.Order{ID: "missing"})
	assert.Equal(t, 1, ob.Len())
}

func TestOrderbook_EmptyLevelIsPruned(t *testing.T) {
	ob := NewOrderbook("BTC-USD")
	ob.AddOrder(createTestOrder("a", orderv1.SideSell, 105, 1))
	ob.AddOrder(createTestOrder("b", orderv1.SideSell, 105, 2))
	ob.AddOrder(createTestOrder("c", orderv1.SideSell, 110, 4))

	ob.RemoveOrder(&orderv1.Order{ID: "a"})
	assert.Equal(t, 2, ob.LevelCount(orderv1.SideSell))

	ob.RemoveOrder(&orderv1.Order{ID: "b"})
	assert.Equal(t, 1, ob.LevelCount(orderv1.SideSell))
	assert.Equal(t, [][2]int64{{110, 4}}, levels(ob, orderv1.SideSell))
	assert.Equal(t, int64(110), ob.BestAsk())
}

// Scenario: two users at one price share the level.
func TestOrderbook_SamePriceLevel(t *testing.T) {
	ob := NewOrderbook("BTC-USD")

	first := createTestOrder("a", orderv1.SideBuy, 100, 5)
	first.UserID = "user1"
	second := createTestOrder("b", orderv1.SideBuy, 100, 2)
	second.UserID = "user2"

	ob.AddOrder(first)
	ob.AddOrder(second)

	assert.Equal(t, int64(7), ob.Qty(orderv1.SideBuy, 100))
	assert.Equal(t, 2, ob.OrderCount(orderv1.SideBuy, 100))
	assert.Equal(t, 1, ob.LevelCount(orderv1.SideBuy))

	ob.RemoveOrder(first)

	assert.Equal(t, int64(2), ob.Qty(orderv1.SideBuy, 100))
	assert.Equal(t, 1, ob.OrderCount(orderv1.SideBuy, 100))
	assert.Equal(t, int64(100), ob.BestBid())
}

func TestOrderbook_ReAddMovesOrder(t *testing.T) {
	ob := NewOrderbook("BTC-USD")

	ob.AddOrder(createTestOrder("a", orderv1.SideBuy, 100, 5))
	ob.AddOrder(createTestOrder("a", orderv1.SideBuy, 101, 4))

	assert.Equal(t, 1, ob.Len())
	assert.Zero(t, ob.Qty(orderv1.SideBuy, 100))
	assert.Equal(t, int64(4), ob.Qty(orderv1.SideBuy, 101))

	// Replaying the same add is harmless.
	ob.AddOrder(createTestOrder("a", orderv1.SideBuy, 101, 4))
	assert.Equal(t, 1, ob.Len())
	assert.Equal(t, int64(4), ob.Qty(orderv1.SideBuy, 101))

	// Moving across sides.
	ob.AddOrder(createTestOrder("a", orderv1.SideSell, 120, 4))
	assert.Zero(t, ob.BestBid())
	assert.Equal(t, int64(120), ob.BestAsk())
}

func TestOrderbook_RejectsUnrestable(t *testing.T) {
	ob := NewOrderbook("BTC-USD")

	ob.AddOrder(createTestOrder("a", orderv1.SideUnknown, 100, 5))
	ob.AddOrder(createTestOrder("b", orderv1.SideBuy, 0, 5))
	ob.AddOrder(createTestOrder("c", orderv1.SideBuy, 100, 0))

	assert.Zero(t, ob.Len())
	assert.Zero(t, ob.LevelCount(orderv1.SideBuy))
}

func TestOrderbook_LevelsBestFirst(t *testing.T) {
	ob := NewOrderbook("BTC-USD")
	for i, p := range []int64{98, 100, 99} {
		ob.AddOrder(createTestOrder(string(rune('a'+i)), orderv1.SideBuy, p, 1))
	}
	for i, p := range []int64{103, 101, 102} {
		ob.AddOrder(createTestOrder(string(rune('x'+i)), orderv1.SideSell, p, 2))
	}

	assert.Equal(t, [][2]int64{{100, 1}, {99, 1}, {98, 1}}, levels(ob, orderv1.SideBuy))
	assert.Equal(t, [][2]int64{{101, 2}, {102, 2}, {103, 2}}, levels(ob, orderv1.SideSell))

	var first []int64
	ob.Levels(orderv1.SideSell, func(price, _ int64) bool {
		first = append(first, price)
		return false
	})
	assert.Equal(t, []int64{101}, first)
}
