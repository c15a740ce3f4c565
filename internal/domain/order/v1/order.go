package orderv1

import (
	"github.com/shopspring/decimal"
)

// Side is the book side an order rests on.
type Side uint8

const (
	SideUnknown Side = iota
	SideBuy
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "buy"
	case SideSell:
		return "sell"
	default:
		return "unknown"
	}
}

// Type is the order type.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeMarket
	TypeLimit
)

func (t Type) String() string {
	switch t {
	case TypeMarket:
		return "market"
	case TypeLimit:
		return "limit"
	default:
		return "unknown"
	}
}

// Status is the lifecycle state reported by the order service.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusReceived
	StatusOpen
	StatusDone
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusReceived:
		return "received"
	case StatusOpen:
		return "open"
	case StatusDone:
		return "done"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// CancelAfter is the optional time-in-force hint.
type CancelAfter uint8

const (
	CancelAfterNone CancelAfter = iota
	CancelAfterMin
	CancelAfterHour
)

func (c CancelAfter) String() string {
	switch c {
	case CancelAfterMin:
		return "min"
	case CancelAfterHour:
		return "hour"
	default:
		return ""
	}
}

// Order is one order event as read from the event log. It is not mutated after ParseOrder.
type Order struct {
	ID            string
	ProductID     string
	UserID        string
	Side          Side
	Type          Type
	CreatedAt     int64 // unix seconds
	ExecutedValue decimal.Decimal
	Status        Status
	Settled       bool
	Price         int64 // ticks, zero for market orders
	CancelAfter   CancelAfter
	Size          int64

	// Raw is the wire record the order was parsed from.
	Raw map[string]string
}

// IsLimit reports whether the order can rest on the book.
func (o *Order) IsLimit() bool {
	return o.Type == TypeLimit
}
