package orderbookv1

import (
	"errors"
	"fmt"

	orderv1 "github.com/muhammadchandra19/marketfeed/internal/domain/order/v1"
)

var (
	ErrNilOrder      = errors.New("order cannot be nil")
	ErrInvalidSize   = errors.New("size must be positive")
	ErrPriceMismatch = errors.New("order price does not match limit")
)

// Limit is one price level of a book side: the orders resting at Price and their summed size.
type Limit struct {
	Price     int64
	TotalSize int64
	orders    map[string]*orderv1.Order
}

// NewLimit creates an empty Limit at price.
func NewLimit(price int64) *Limit {
	return &Limit{
		Price:  price,
		orders: make(map[string]*orderv1.Order),
	}
}

// AddOrder rests order at this limit. An order with the same id is replaced.
func (l *Limit) AddOrder(order *orderv1.Order) error {
	if order == nil {
		return ErrNilOrder
	}
	if order.Size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, order.Size)
	}
	if order.Price != l.Price {
		return fmt.Errorf("%w: %d != %d", ErrPriceMismatch, order.Price, l.Price)
	}

	if prev, ok := l.orders[order.ID]; ok {
		l.TotalSize -= prev.Size
	}
	l.orders[order.ID] = order
	l.TotalSize += order.Size
	return nil
}

// RemoveOrder drops the order with id and reports whether it was resident.
func (l *Limit) RemoveOrder(id string) bool {
	order, ok := l.orders[id]
	if !ok {
		return false
	}
	delete(l.orders, id)
	l.TotalSize -= order.Size
	return true
}

// Order returns the resident order with id, if any.
func (l *Limit) Order(id string) (*orderv1.Order, bool) {
	o, ok := l.orders[id]
	return o, ok
}

// IsEmpty checks if the limit has no orders
func (l *Limit) IsEmpty() bool {
	return len(l.orders) == 0
}

// OrderCount returns the number of orders at this limit
func (l *Limit) OrderCount() int {
	return len(l.orders)
}
