package ohlc

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/muhammadchandra19/marketfeed/pkg/questdb"
)

var columns = []string{"timestamp", "symbol", "interval", "open", "high", "low", "close", "volume", "trade_count"}

// Repository represents the repository for OHLC data.
type Repository struct {
	client questdb.QuestDBClient
}

var _ OHLCRepository = (*Repository)(nil)

// NewRepository creates a new OHLC repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// Store stores one OHLC row. The table dedups on (timestamp, symbol, interval).
func (r *Repository) Store(ctx context.Context, ohlc *OHLC) error {
	if err := ohlc.ValidateInterval(); err != nil {
		return err
	}

	query := `INSERT INTO ohlc (timestamp, symbol, interval, open, high, low, close, volume, trade_count) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	err := r.client.Exec(ctx, query,
		ohlc.Timestamp, ohlc.Symbol, ohlc.Interval,
		ohlc.Open, ohlc.High, ohlc.Low, ohlc.Close,
		ohlc.Volume, ohlc.TradeCount)
	if err != nil {
		return fmt.Errorf("failed to store ohlc: %w", err)
	}

	return nil
}

// StoreBatch stores a batch of OHLC rows.
func (r *Repository) StoreBatch(ctx context.Context, ohlcs []*OHLC) error {
	if len(ohlcs) == 0 {
		return nil
	}
	for _, o := range ohlcs {
		if err := o.ValidateInterval(); err != nil {
			return err
		}
	}

	_, err := r.client.CopyFrom(
		ctx,
		pgx.Identifier{"ohlc"},
		columns,
		pgx.CopyFromSlice(len(ohlcs), func(i int) ([]any, error) {
			o := ohlcs[i]
			return []any{
				o.Timestamp,
				o.Symbol,
				o.Interval,
				o.Open,
				o.High,
				o.Low,
				o.Close,
				o.Volume,
				o.TradeCount,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy ohlc: %w", err)
	}

	return nil
}

// GetLatest retrieves the latest row of a symbol and interval, nil when there is none.
func (r *Repository) GetLatest(ctx context.Context, symbol, interval string) (*OHLC, error) {
	query := `SELECT timestamp, symbol, interval, open, high, low, close, volume, trade_count FROM ohlc WHERE symbol = $1 AND interval = $2 ORDER BY timestamp DESC LIMIT 1`

	rows, err := r.client.Query(ctx, query, symbol, interval)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest ohlc: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	o := &OHLC{}
	err = rows.Scan(&o.Timestamp, &o.Symbol, &o.Interval,
		&o.Open, &o.High, &o.Low, &o.Close, &o.Volume, &o.TradeCount)
	if err != nil {
		return nil, fmt.Errorf("failed to scan ohlc: %w", err)
	}

	return o, nil
}
