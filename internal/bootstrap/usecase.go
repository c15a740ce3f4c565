package bootstrap

import (
	"github.com/muhammadchandra19/marketfeed/internal/app/feed"
	archivev1 "github.com/muhammadchandra19/marketfeed/internal/domain/archive/v1"
	productv1 "github.com/muhammadchandra19/marketfeed/internal/domain/product/v1"
	publisherv1 "github.com/muhammadchandra19/marketfeed/internal/domain/publisher/v1"
	snapshotv1 "github.com/muhammadchandra19/marketfeed/internal/domain/snapshot/v1"
	streamv1 "github.com/muhammadchandra19/marketfeed/internal/domain/stream/v1"
	tradev1 "github.com/muhammadchandra19/marketfeed/internal/domain/trade/v1"
	archiveUc "github.com/muhammadchandra19/marketfeed/internal/usecase/archive"
	publisherUc "github.com/muhammadchandra19/marketfeed/internal/usecase/publisher"
	registryUc "github.com/muhammadchandra19/marketfeed/internal/usecase/registry"
	snapshotUc "github.com/muhammadchandra19/marketfeed/internal/usecase/snapshot"
	streamreaderUc "github.com/muhammadchandra19/marketfeed/internal/usecase/stream-reader"
	tradepublisherUc "github.com/muhammadchandra19/marketfeed/internal/usecase/trade-publisher"
)

// Usecase holds the use cases the engine is built from. Trades and Archiver are optional.
type Usecase struct {
	Registry  productv1.Registry
	Reader    streamv1.Reader
	Store     snapshotv1.Store
	Publisher publisherv1.Publisher
	Trades    tradev1.Publisher
	Archiver  archivev1.Archiver
	Builder   *snapshotUc.Builder
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() {
	feedCfg := b.Config.Feed

	b.Usecase.Registry = registryUc.NewRegistry(b.Redis, feedCfg.ProductsKey, feedCfg.ProductsChannel, b.Logger)
	b.Usecase.Reader = streamreaderUc.NewReader(b.Redis, feedCfg.ReadCount, feedCfg.ReadBlock, b.Logger)
	b.Usecase.Store = snapshotUc.NewSnapshotStore(b.Redis, feedCfg.SnapshotKey, b.Logger)
	b.Usecase.Publisher = publisherUc.NewPublisher(b.Redis, publisherUc.Channels{
		Depth:       feedCfg.DepthChannel,
		Ticker:      feedCfg.TickerChannel,
		TickerBatch: feedCfg.TickerBatchChannel,
		Fills:       feedCfg.FillsChannel,
		Candle:      feedCfg.CandleChannel,
	}, b.Logger)
	b.Usecase.Builder = snapshotUc.NewBuilder(feedCfg.Depth)

	if b.Config.TradeKafka.Enabled {
		b.Usecase.Trades = tradepublisherUc.NewPublisher(b.Config.TradeKafka, b.Logger)
	}
	if b.Repository.TickRepository != nil && b.Repository.OhlcRepository != nil {
		b.Usecase.Archiver = archiveUc.NewArchiver(b.Repository.TickRepository, b.Repository.OhlcRepository)
	}
}

func (b *Bootstrap) registerEngine() error {
	options, err := feed.OptionsFromConfig(b.Config.Feed, b.Config.Candle)
	if err != nil {
		return err
	}

	deps := feed.Dependencies{
		Registry:  b.Usecase.Registry,
		Reader:    b.Usecase.Reader,
		Store:     b.Usecase.Store,
		Publisher: b.Usecase.Publisher,
		Trades:    b.Usecase.Trades,
		Archiver:  b.Usecase.Archiver,
		Builder:   b.Usecase.Builder,
		Metrics:   b.Metrics,
		Logger:    b.Logger,
	}
	b.Engine = feed.NewEngineWithOptions(deps, options)
	return nil
}
