package tick

import (
	"time"

	orderv1 "github.com/muhammadchandra19/marketfeed/internal/domain/order/v1"
)

// Tick represents a single executed trade.
type Tick struct {
	Timestamp time.Time
	Symbol    string
	OrderID   string
	Price     int64
	Volume    int64
	Side      string // "buy" or "sell"
}

// FromMatch creates a Tick from a parsed match record.
func FromMatch(match *orderv1.Order) *Tick {
	return &Tick{
		Timestamp: time.Unix(match.CreatedAt, 0).UTC(),
		Symbol:    match.ProductID,
		OrderID:   match.ID,
		Price:     match.Price,
		Volume:    match.Size,
		Side:      match.Side.String(),
	}
}
