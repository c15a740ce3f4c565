package bootstrap

import (
	"context"

	"github.com/muhammadchandra19/marketfeed/internal/app/feed"
	"github.com/muhammadchandra19/marketfeed/internal/config"
	"github.com/muhammadchandra19/marketfeed/internal/metrics"
	"github.com/muhammadchandra19/marketfeed/pkg/logger"
	"github.com/muhammadchandra19/marketfeed/pkg/questdb"
	"github.com/muhammadchandra19/marketfeed/pkg/redis"
)

// Bootstrap holds the wired components of the feed process.
type Bootstrap struct {
	Config  *config.Config
	Logger  *logger.Logger
	Metrics *metrics.Metrics

	Redis   redis.Client
	QuestDB questdb.QuestDBClient

	Repository Repository
	Usecase    Usecase
	Engine     *feed.Engine
}

// BootstrapConfig carries the already connected clients. QuestDB is nil when archiving is disabled.
type BootstrapConfig struct {
	Config  *config.Config
	Logger  *logger.Logger
	Redis   redis.Client
	QuestDB questdb.QuestDBClient
}

// Init wires repositories, use cases and the engine.
func (b *Bootstrap) Init(cfg BootstrapConfig) (*Bootstrap, error) {
	b.Config = cfg.Config
	b.Logger = cfg.Logger
	b.Redis = cfg.Redis
	b.QuestDB = cfg.QuestDB
	b.Metrics = metrics.New()

	b.registerRepository()
	b.registerUsecase()

	if err := b.registerEngine(); err != nil {
		return nil, err
	}
	return b, nil
}

// Close releases the sinks in reverse order of their use.
func (b *Bootstrap) Close(ctx context.Context) {
	if b.Usecase.Trades != nil {
		if err := b.Usecase.Trades.Close(); err != nil {
			b.Logger.ErrorContext(ctx, err, logger.NewField("action", "close_trade_publisher"))
		}
	}
	if b.QuestDB != nil {
		b.QuestDB.Close()
	}
	if err := b.Redis.Disconnect(ctx); err != nil {
		b.Logger.ErrorContext(ctx, err, logger.NewField("action", "disconnect_redis"))
	}
}
