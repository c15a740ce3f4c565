package orderbook

import (
	"github.com/google/btree"
	orderv1 "github.com/muhammadchandra19/marketfeed/internal/domain/order/v1"
	orderbookv1 "github.com/muhammadchandra19/marketfeed/internal/domain/orderbook/v1"
)

const treeDegree = 32

type location struct {
	side  orderv1.Side
	price int64
}

// Orderbook is a price-level book backed by one B-tree of limits per side.
type Orderbook struct {
	ProductID string

	bids   *btree.BTreeG[*orderbookv1.Limit]
	asks   *btree.BTreeG[*orderbookv1.Limit]
	orders map[string]location // orderID -> resting place

	lastEventTime int64
}

var _ orderbookv1.Book = (*Orderbook)(nil)

func byPrice(a, b *orderbookv1.Limit) bool {
	return a.Price < b.Price
}

// NewOrderbook creates an empty book for productID.
func NewOrderbook(productID string) *Orderbook {
	return &Orderbook{
		ProductID: productID,
		bids:      btree.NewG(treeDegree, byPrice),
		asks:      btree.NewG(treeDegree, byPrice),
		orders:    make(map[string]location),
	}
}

func (ob *Orderbook) tree(side orderv1.Side) *btree.BTreeG[*orderbookv1.Limit] {
	switch side {
	case orderv1.SideBuy:
		return ob.bids
	case orderv1.SideSell:
		return ob.asks
	default:
		return nil
	}
}

func (ob *Orderbook) touch(createdAt int64) {
	if createdAt > ob.lastEventTime {
		ob.lastEventTime = createdAt
	}
}

// AddOrder rests a limit order. Orders without a side, a positive price or a
// positive size are dropped; ParseOrder already rejects them.
func (ob *Orderbook) AddOrder(o *orderv1.Order) {
	tree := ob.tree(o.Side)
	if tree == nil || o.Price <= 0 || o.Size <= 0 {
		return
	}
	ob.touch(o.CreatedAt)

	if _, ok := ob.orders[o.ID]; ok {
		ob.remove(o.ID)
	}

	limit, ok := tree.Get(&orderbookv1.Limit{Price: o.Price})
	if !ok {
		limit = orderbookv1.NewLimit(o.Price)
		tree.ReplaceOrInsert(limit)
	}
	if err := limit.AddOrder(o); err != nil {
		if limit.IsEmpty() {
			tree.Delete(limit)
		}
		return
	}
	ob.orders[o.ID] = location{side: o.Side, price: o.Price}
}

// RemoveOrder removes the order with o.ID wherever it rests.
func (ob *Orderbook) RemoveOrder(o *orderv1.Order) {
	ob.touch(o.CreatedAt)
	ob.remove(o.ID)
}

func (ob *Orderbook) remove(id string) {
	loc, ok := ob.orders[id]
	if !ok {
		return
	}
	delete(ob.orders, id)

	tree := ob.tree(loc.side)
	limit, ok := tree.Get(&orderbookv1.Limit{Price: loc.price})
	if !ok {
		return
	}
	limit.RemoveOrder(id)
	if limit.IsEmpty() {
		tree.Delete(limit)
	}
}

// BestBid returns the highest bid price, 0 when there are no bids.
func (ob *Orderbook) BestBid() int64 {
	if limit, ok := ob.bids.Max(); ok {
		return limit.Price
	}
	return 0
}

// BestAsk returns the lowest ask price, 0 when there are no asks.
func (ob *Orderbook) BestAsk() int64 {
	if limit, ok := ob.asks.Min(); ok {
		return limit.Price
	}
	return 0
}

func (ob *Orderbook) limit(side orderv1.Side, price int64) (*orderbookv1.Limit, bool) {
	tree := ob.tree(side)
	if tree == nil {
		return nil, false
	}
	return tree.Get(&orderbookv1.Limit{Price: price})
}

func (ob *Orderbook) Qty(side orderv1.Side, price int64) int64 {
	if limit, ok := ob.limit(side, price); ok {
		return limit.TotalSize
	}
	return 0
}

func (ob *Orderbook) OrderCount(side orderv1.Side, price int64) int {
	if limit, ok := ob.limit(side, price); ok {
		return limit.OrderCount()
	}
	return 0
}

// Len returns the number of resident orders on both sides.
func (ob *Orderbook) Len() int {
	return len(ob.orders)
}

// LevelCount returns the number of distinct prices on a side.
func (ob *Orderbook) LevelCount(side orderv1.Side) int {
	if tree := ob.tree(side); tree != nil {
		return tree.Len()
	}
	return 0
}

func (ob *Orderbook) Levels(side orderv1.Side, fn func(price, size int64) bool) {
	visit := func(limit *orderbookv1.Limit) bool {
		return fn(limit.Price, limit.TotalSize)
	}
	switch side {
	case orderv1.SideBuy:
		ob.bids.Descend(visit)
	case orderv1.SideSell:
		ob.asks.Ascend(visit)
	}
}

func (ob *Orderbook) LastEventTime() int64 {
	return ob.lastEventTime
}
