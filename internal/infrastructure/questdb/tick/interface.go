package tick

import (
	"context"
)

// TickRepository is the interface for the tick repository.
type TickRepository interface {
	GetLatestBySymbol(ctx context.Context, symbol string) (*Tick, error)
	Store(ctx context.Context, tick *Tick) error
	StoreBatch(ctx context.Context, ticks []*Tick) error
}
