package orderv1

import (
	stderrors "errors"
	"testing"

	"github.com/muhammadchandra19/marketfeed/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitFields() map[string]string {
	return map[string]string{
		"id":             "a",
		"product_id":     "BTC-USD",
		"user_id":        "u1",
		"side":           "buy",
		"type":           "limit",
		"created_at":     "1709251200",
		"executed_value": "12.5",
		"status":         "open",
		"settled":        "false",
		"price":          "100",
		"cancel_after":   "hour",
		"size":           "5",
	}
}

func TestParseOrder(t *testing.T) {
	testCases := []struct {
		name       string
		mutate     func(f map[string]string)
		wantFields []string
		assertFn   func(t *testing.T, o *Order)
	}{
		{
			name:   "valid limit order",
			mutate: func(f map[string]string) {},
			assertFn: func(t *testing.T, o *Order) {
				assert.Equal(t, "a", o.ID)
				assert.Equal(t, "BTC-USD", o.ProductID)
				assert.Equal(t, SideBuy, o.Side)
				assert.Equal(t, TypeLimit, o.Type)
				assert.Equal(t, StatusOpen, o.Status)
				assert.Equal(t, CancelAfterHour, o.CancelAfter)
				assert.Equal(t, int64(100), o.Price)
				assert.Equal(t, int64(5), o.Size)
				assert.Equal(t, int64(1709251200), o.CreatedAt)
				assert.True(t, decimal.RequireFromString("12.5").Equal(o.ExecutedValue))
				assert.False(t, o.Settled)
				assert.True(t, o.IsLimit())
				assert.Equal(t, "100", o.Raw["price"])
			},
		},
		{
			name: "market order without price",
			mutate: func(f map[string]string) {
				f["type"] = "market"
				delete(f, "price")
			},
			assertFn: func(t *testing.T, o *Order) {
				assert.Equal(t, TypeMarket, o.Type)
				assert.Zero(t, o.Price)
			},
		},
		{
			name: "absent executed value is zero",
			mutate: func(f map[string]string) {
				delete(f, "executed_value")
				f["settled"] = "true"
				f["status"] = "cancelled"
			},
			assertFn: func(t *testing.T, o *Order) {
				assert.True(t, o.ExecutedValue.IsZero())
				assert.True(t, o.Settled)
				assert.Equal(t, StatusCancelled, o.Status)
			},
		},
		{
			name:       "non numeric price",
			mutate:     func(f map[string]string) { f["price"] = "abc" },
			wantFields: []string{"price"},
		},
		{
			name:       "hex is not accepted",
			mutate:     func(f map[string]string) { f["size"] = "0x10" },
			wantFields: []string{"size"},
		},
		{
			name:       "limit order without price",
			mutate:     func(f map[string]string) { delete(f, "price") },
			wantFields: []string{"price"},
		},
		{
			name:       "non positive price",
			mutate:     func(f map[string]string) { f["price"] = "0" },
			wantFields: []string{"price"},
		},
		{
			name:       "negative size",
			mutate:     func(f map[string]string) { f["size"] = "-3" },
			wantFields: []string{"size"},
		},
		{
			name: "several bad fields are all reported",
			mutate: func(f map[string]string) {
				f["side"] = "hold"
				f["created_at"] = ""
				f["executed_value"] = "NaN?"
				delete(f, "id")
			},
			wantFields: []string{"id", "side", "created_at", "executed_value"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fields := limitFields()
			tc.mutate(fields)

			o, err := ParseOrder(fields)
			if len(tc.wantFields) > 0 {
				require.Error(t, err)
				assert.Nil(t, o)

				var base *errors.BaseError
				require.True(t, stderrors.As(err, &base))
				assert.ElementsMatch(t, tc.wantFields, base.Fields())
				return
			}

			require.NoError(t, err)
			tc.assertFn(t, o)
		})
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "buy", SideBuy.String())
	assert.Equal(t, "sell", SideSell.String())
	assert.Equal(t, "limit", TypeLimit.String())
	assert.Equal(t, "cancelled", StatusCancelled.String())
	assert.Equal(t, "min", CancelAfterMin.String())
}
