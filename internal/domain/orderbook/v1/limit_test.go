package orderbookv1

import (
	"testing"

	orderv1 "github.com/muhammadchandra19/marketfeed/internal/domain/order/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a resting buy order
func createTestOrder(id string, price, size int64) *orderv1.Order {
	return &orderv1.Order{
		ID:    id,
		Side:  orderv1.SideBuy,
		Type:  orderv1.TypeLimit,
		Price: price,
		Size:  size,
	}
}

func TestNewLimit(t *testing.T) {
	limit := NewLimit(100)

	assert.Equal(t, int64(100), limit.Price)
	assert.Zero(t, limit.TotalSize)
	assert.True(t, limit.IsEmpty())
}

func TestLimit_AddOrder(t *testing.T) {
	limit := NewLimit(100)

	t.Run("Add valid orders", func(t *testing.T) {
		require.NoError(t, limit.AddOrder(createTestOrder("a", 100, 5)))
		require.NoError(t, limit.AddOrder(createTestOrder("b", 100, 2)))

		assert.Equal(t, 2, limit.OrderCount())
		assert.Equal(t, int64(7), limit.TotalSize)
	})

	t.Run("Re-adding an id replaces its size", func(t *testing.T) {
		require.NoError(t, limit.AddOrder(createTestOrder("a", 100, 1)))

		assert.Equal(t, 2, limit.OrderCount())
		assert.Equal(t, int64(3), limit.TotalSize)
	})

	t.Run("Add nil order", func(t *testing.T) {
		assert.ErrorIs(t, limit.AddOrder(nil), ErrNilOrder)
	})

	t.Run("Add zero size order", func(t *testing.T) {
		assert.ErrorIs(t, limit.AddOrder(createTestOrder("z", 100, 0)), ErrInvalidSize)
	})

	t.Run("Add order at another price", func(t *testing.T) {
		assert.ErrorIs(t, limit.AddOrder(createTestOrder("x", 101, 1)), ErrPriceMismatch)
	})
}

func TestLimit_RemoveOrder(t *testing.T) {
	limit := NewLimit(100)
	require.NoError(t, limit.AddOrder(createTestOrder("a", 100, 5)))

	assert.True(t, limit.RemoveOrder("a"))
	assert.False(t, limit.RemoveOrder("a"))
	assert.True(t, limit.IsEmpty())
	assert.Zero(t, limit.TotalSize)

	_, ok := limit.Order("a")
	assert.False(t, ok)
}
