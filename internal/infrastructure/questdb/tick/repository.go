package tick

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/muhammadchandra19/marketfeed/pkg/questdb"
)

var columns = []string{"timestamp", "symbol", "order_id", "price", "volume", "side"}

// Repository represents the repository for tick data.
type Repository struct {
	client questdb.QuestDBClient
}

var _ TickRepository = (*Repository)(nil)

// NewRepository creates a new tick repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// Store stores a tick data point.
func (r *Repository) Store(ctx context.Context, tick *Tick) error {
	query := `INSERT INTO ticks (timestamp, symbol, order_id, price, volume, side) VALUES ($1, $2, $3, $4, $5, $6)`

	err := r.client.Exec(ctx, query,
		tick.Timestamp, tick.Symbol, tick.OrderID, tick.Price, tick.Volume, tick.Side)
	if err != nil {
		return fmt.Errorf("failed to store tick: %w", err)
	}

	return nil
}

// StoreBatch stores a batch of tick data points.
func (r *Repository) StoreBatch(ctx context.Context, ticks []*Tick) error {
	if len(ticks) == 0 {
		return nil
	}

	_, err := r.client.CopyFrom(
		ctx,
		pgx.Identifier{"ticks"},
		columns,
		pgx.CopyFromSlice(len(ticks), func(i int) ([]any, error) {
			tick := ticks[i]
			return []any{
				tick.Timestamp,
				tick.Symbol,
				tick.OrderID,
				tick.Price,
				tick.Volume,
				tick.Side,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy ticks: %w", err)
	}

	return nil
}

// GetLatestBySymbol retrieves the latest tick of a symbol, nil when there is none.
func (r *Repository) GetLatestBySymbol(ctx context.Context, symbol string) (*Tick, error) {
	query := `SELECT timestamp, symbol, order_id, price, volume, side FROM ticks WHERE symbol = $1 ORDER BY timestamp DESC LIMIT 1`

	rows, err := r.client.Query(ctx, query, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest tick: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	tick := &Tick{}
	if err := rows.Scan(&tick.Timestamp, &tick.Symbol, &tick.OrderID, &tick.Price, &tick.Volume, &tick.Side); err != nil {
		return nil, fmt.Errorf("failed to scan tick: %w", err)
	}

	return tick, nil
}
