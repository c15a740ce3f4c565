package tradev1

import "context"

// Publisher forwards executed trades to a durable log.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=tradev1_mock
type Publisher interface {
	PublishTrades(ctx context.Context, trades []Trade) error
	Close() error
}
