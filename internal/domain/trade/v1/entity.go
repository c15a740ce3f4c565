package tradev1

import (
	"encoding/json"
	"time"

	orderv1 "github.com/muhammadchandra19/marketfeed/internal/domain/order/v1"
	"github.com/shopspring/decimal"
)

// Trade is an executed match as forwarded to downstream consumers.
type Trade struct {
	ProductID     string          `json:"product_id"`
	OrderID       string          `json:"order_id"`
	UserID        string          `json:"user_id"`
	Side          string          `json:"side"`
	Price         int64           `json:"price"`
	Size          int64           `json:"size"`
	ExecutedValue decimal.Decimal `json:"executed_value"`
	Status        string          `json:"status"`
	Timestamp     time.Time       `json:"timestamp"`
}

// FromMatch creates a trade from a parsed match record.
func FromMatch(match *orderv1.Order) Trade {
	return Trade{
		ProductID:     match.ProductID,
		OrderID:       match.ID,
		UserID:        match.UserID,
		Side:          match.Side.String(),
		Price:         match.Price,
		Size:          match.Size,
		ExecutedValue: match.ExecutedValue,
		Status:        match.Status.String(),
		Timestamp:     time.Unix(match.CreatedAt, 0).UTC(),
	}
}

// ToBytes converts the trade to JSON.
func (t Trade) ToBytes() []byte {
	buf, err := json.Marshal(t)
	if err != nil {
		return nil
	}
	return buf
}
