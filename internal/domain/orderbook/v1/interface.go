package orderbookv1

import orderv1 "github.com/muhammadchandra19/marketfeed/internal/domain/order/v1"

// Book is the aggregated price-level view of one instrument's resident orders.
// A Book is owned by a single goroutine at a time and is not safe for concurrent use.
type Book interface {
	// AddOrder rests o at its price. An id already in the book is moved, never duplicated.
	AddOrder(o *orderv1.Order)
	// RemoveOrder drops the order with o.ID. Absent ids are ignored.
	RemoveOrder(o *orderv1.Order)

	BestBid() int64
	BestAsk() int64

	// Qty is the aggregate resident size at price, 0 when the level is absent.
	Qty(side orderv1.Side, price int64) int64
	OrderCount(side orderv1.Side, price int64) int
	Len() int

	// Levels walks a side best price first until fn returns false.
	Levels(side orderv1.Side, fn func(price, size int64) bool)

	// LastEventTime is the created_at, in unix seconds, of the latest event applied.
	LastEventTime() int64
}
