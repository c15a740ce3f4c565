package feed

import (
	"context"
	"sync"
	"time"

	archivev1 "github.com/muhammadchandra19/marketfeed/internal/domain/archive/v1"
	candlev1 "github.com/muhammadchandra19/marketfeed/internal/domain/candle/v1"
	orderv1 "github.com/muhammadchandra19/marketfeed/internal/domain/order/v1"
	productv1 "github.com/muhammadchandra19/marketfeed/internal/domain/product/v1"
	publisherv1 "github.com/muhammadchandra19/marketfeed/internal/domain/publisher/v1"
	snapshotv1 "github.com/muhammadchandra19/marketfeed/internal/domain/snapshot/v1"
	streamv1 "github.com/muhammadchandra19/marketfeed/internal/domain/stream/v1"
	tickerv1 "github.com/muhammadchandra19/marketfeed/internal/domain/ticker/v1"
	tradev1 "github.com/muhammadchandra19/marketfeed/internal/domain/trade/v1"
	"github.com/muhammadchandra19/marketfeed/internal/metrics"
	"github.com/muhammadchandra19/marketfeed/internal/usecase/snapshot"
	"github.com/muhammadchandra19/marketfeed/pkg/errors"
	"github.com/muhammadchandra19/marketfeed/pkg/logger"
	"github.com/muhammadchandra19/marketfeed/pkg/util"
	"golang.org/x/sync/errgroup"
)

const (
	streamNew     = "new"
	streamMatches = "matches"
)

// Dependencies are the collaborators of the Engine. Trades and Archiver are optional.
type Dependencies struct {
	Registry  productv1.Registry
	Reader    streamv1.Reader
	Store     snapshotv1.Store
	Publisher publisherv1.Publisher
	Trades    tradev1.Publisher
	Archiver  archivev1.Archiver
	Builder   *snapshot.Builder
	Metrics   *metrics.Metrics
	Logger    *logger.Logger
}

// Engine consumes the order and match streams of every registered product and
// republishes depth diffs, tickers, fills and candles once per tick.
type Engine struct {
	deps    Dependencies
	options *Options

	mu          sync.Mutex
	instruments map[string]*Instrument
	lastBatch   time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEngine creates a new instance of Engine with the default options.
func NewEngine(deps Dependencies) *Engine {
	return NewEngineWithOptions(deps, DefaultEngineOptions())
}

// NewEngineWithOptions creates a new engine with custom options
func NewEngineWithOptions(deps Dependencies, options *Options) *Engine {
	if deps.Builder == nil {
		deps.Builder = snapshot.NewBuilder(snapshot.DefaultDepth)
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}
	if options.Location == nil {
		options.Location = time.Local
	}

	return &Engine{
		deps:        deps,
		options:     options,
		instruments: make(map[string]*Instrument),
		lastBatch:   time.Now(),
	}
}

// Start runs the tick loop in the background until Stop is called or ctx is done.
func (e *Engine) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	e.mu.Lock()
	e.cancel = cancel
	e.mu.Unlock()

	e.wg.Add(1)
	go e.run(ctx)

	e.deps.Logger.Info("Feed engine started",
		logger.NewField("tickInterval", e.options.TickInterval),
		logger.NewField("concurrency", e.options.Concurrency),
	)
	return nil
}

// Stop stops scheduling ticks and waits for the in-flight one to finish.
func (e *Engine) Stop(ctx context.Context) error {
	e.mu.Lock()
	cancel := e.cancel
	e.mu.Unlock()
	if cancel != nil {
		cancel()
	}

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.deps.Logger.Info("Feed engine stopped gracefully")
		return nil
	case <-ctx.Done():
		e.deps.Logger.Warn("Engine stop timeout exceeded")
		return ctx.Err()
	}
}

func (e *Engine) run(ctx context.Context) {
	defer e.wg.Done()

	ticker := time.NewTicker(e.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.deps.Logger.Info("Feed engine shutting down")
			return
		case <-ticker.C:
			e.Tick(ctx)
		}
	}
}

// Tick processes every instrument once. It runs detached from ctx cancellation
// so that a shutdown never interrupts an instrument halfway through its batch.
func (e *Engine) Tick(ctx context.Context) {
	start := time.Now()
	ctx = util.WithRequestID(context.WithoutCancel(ctx), "")

	instruments := e.syncInstruments()
	e.deps.Metrics.Instruments.Set(float64(len(instruments)))

	var g errgroup.Group
	g.SetLimit(max(1, e.options.Concurrency))
	for _, inst := range instruments {
		g.Go(func() error {
			e.process(ctx, inst)
			return nil
		})
	}
	_ = g.Wait()

	e.publishTickerBatch(ctx, instruments)
	e.deps.Metrics.ObserveTick(start)
}

// syncInstruments creates the instruments of newly registered products and
// returns all of them in registry order.
func (e *Engine) syncInstruments() []*Instrument {
	products := e.deps.Registry.Products()

	e.mu.Lock()
	defer e.mu.Unlock()

	instruments := make([]*Instrument, 0, len(products))
	for _, productID := range products {
		inst, ok := e.instruments[productID]
		if !ok {
			inst = newInstrument(productID, e.options)
			e.instruments[productID] = inst
			e.deps.Logger.Info("Tracking product", logger.NewField("product_id", productID))
		}
		instruments = append(instruments, inst)
	}
	return instruments
}

func (e *Engine) instrument(productID string) (*Instrument, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	inst, ok := e.instruments[productID]
	return inst, ok
}

func (e *Engine) process(ctx context.Context, inst *Instrument) {
	if !inst.acquire() {
		return
	}
	defer inst.release()

	ctx = util.WithProductID(ctx, inst.productID)

	// Matches remove resting orders, so they are only applied once the
	// new orders before them are in the book.
	if !e.consumeNewOrders(ctx, inst) {
		return
	}
	e.consumeMatches(ctx, inst)

	if inst.dirty {
		e.flush(ctx, inst)
	}
}

func (e *Engine) read(ctx context.Context, kind, stream string, after streamv1.ID) ([]streamv1.Entry, bool) {
	entries, err := e.deps.Reader.Read(ctx, stream, after)
	if err != nil {
		e.deps.Metrics.ReadErrors.WithLabelValues(kind).Inc()
		e.deps.Logger.ErrorContext(ctx, err,
			logger.NewField("action", "read_stream"),
			logger.NewField("stream", stream),
		)
		return nil, false
	}
	e.deps.Metrics.EntriesRead.WithLabelValues(kind).Add(float64(len(entries)))
	return entries, true
}

func (e *Engine) parse(ctx context.Context, kind string, entry streamv1.Entry) (*orderv1.Order, bool) {
	order, err := orderv1.ParseOrder(entry.Fields)
	if err != nil {
		e.deps.Metrics.MalformedEntries.WithLabelValues(kind).Inc()
		e.deps.Logger.ErrorContext(util.WithEventID(ctx, entry.ID.String()), err,
			logger.NewField("action", "skip_malformed_record"),
			logger.NewField("stream", kind),
		)
		return nil, false
	}
	return order, true
}

// consumeNewOrders applies the pending new orders. It reports false when the
// stream could not be read.
func (e *Engine) consumeNewOrders(ctx context.Context, inst *Instrument) bool {
	entries, ok := e.read(ctx, streamNew, inst.newStream, inst.newCursor)
	if !ok {
		return false
	}
	if len(entries) == 0 {
		return true
	}

	for _, entry := range entries {
		order, ok := e.parse(ctx, streamNew, entry)
		if !ok {
			continue
		}
		// Market orders never rest on the book.
		if !order.IsLimit() {
			continue
		}
		inst.book.AddOrder(order)
	}

	inst.newCursor = streamv1.Max(inst.newCursor, entries[len(entries)-1].ID)
	inst.dirty = true
	return true
}

func (e *Engine) consumeMatches(ctx context.Context, inst *Instrument) {
	entries, ok := e.read(ctx, streamMatches, inst.matchStream, inst.matchCursor)
	if !ok || len(entries) == 0 {
		return
	}

	var (
		fills  = make([]map[string]string, 0, len(entries))
		trades []*orderv1.Order
		closed []candlev1.Candle
	)
	for _, entry := range entries {
		match, ok := e.parse(ctx, streamMatches, entry)
		if !ok {
			continue
		}

		executed := match.Status != orderv1.StatusCancelled
		if executed {
			inst.roller.UpdatePriceData(match)
		}
		inst.book.RemoveOrder(match)
		inst.roller.UpdateBestPrices(inst.book)

		if err := e.deps.Publisher.PublishTicker(ctx, inst.roller.TickerData(inst.book)); err != nil {
			e.publishFailed(ctx, "ticker", err)
		}

		if executed {
			trades = append(trades, match)
			for _, c := range inst.candles.Apply(match) {
				if err := e.deps.Publisher.PublishCandle(ctx, c); err != nil {
					e.publishFailed(ctx, "candle", err)
				}
				closed = append(closed, c)
			}
		}
		fills = append(fills, match.Raw)
	}

	if len(fills) > 0 {
		if err := e.deps.Publisher.PublishFills(ctx, inst.productID, fills); err != nil {
			e.publishFailed(ctx, "fills", err)
		}
	}
	e.forwardTrades(ctx, trades)
	e.archive(ctx, trades, closed)

	inst.matchCursor = streamv1.Max(inst.matchCursor, entries[len(entries)-1].ID)
	inst.dirty = true
}

func (e *Engine) forwardTrades(ctx context.Context, matches []*orderv1.Order) {
	if e.deps.Trades == nil || len(matches) == 0 {
		return
	}

	trades := make([]tradev1.Trade, 0, len(matches))
	for _, m := range matches {
		trades = append(trades, tradev1.FromMatch(m))
	}
	ctx, cancel := e.sinkContext(ctx)
	defer cancel()
	if err := e.deps.Trades.PublishTrades(ctx, trades); err != nil {
		e.publishFailed(ctx, "trades", err)
	}
}

func (e *Engine) archive(ctx context.Context, matches []*orderv1.Order, candles []candlev1.Candle) {
	if e.deps.Archiver == nil {
		return
	}

	ctx, cancel := e.sinkContext(ctx)
	defer cancel()

	if len(matches) > 0 {
		if err := e.deps.Archiver.ArchiveMatches(ctx, matches); err != nil {
			e.storeFailed(ctx, "ticks", err)
		}
	}
	if len(candles) > 0 {
		if err := e.deps.Archiver.ArchiveCandles(ctx, candles); err != nil {
			e.storeFailed(ctx, "ohlc", err)
		}
	}
}

// sinkContext bounds a call to an optional sink (Kafka, QuestDB).
func (e *Engine) sinkContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.options.SinkTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.options.SinkTimeout)
}

// flush publishes the depth changes since the stored snapshot and stores the
// current one. The instrument stays dirty when the store cannot be read or written.
// A stored snapshot that cannot be decoded counts as empty and is overwritten.
func (e *Engine) flush(ctx context.Context, inst *Instrument) {
	current, ok := e.deps.Builder.Build(inst.book)

	previous, _, err := e.deps.Store.Load(ctx, inst.productID)
	corrupt := err != nil && errors.ErrorCodeEquals(err, errors.SnapshotDecodeError)
	switch {
	case corrupt:
		e.storeFailed(ctx, "snapshot_decode", err)
		previous = nil
	case err != nil:
		e.storeFailed(ctx, "snapshot_load", err)
		return
	}
	if !ok && len(previous) == 0 && !corrupt {
		inst.dirty = false
		return
	}

	updates := snapshot.Diff(current, previous, util.UnixToISO(inst.book.LastEventTime()))
	if len(updates) == 0 && !corrupt {
		inst.dirty = false
		return
	}
	if len(updates) > 0 {
		if err := e.deps.Publisher.PublishDepth(ctx, inst.productID, updates); err != nil {
			e.publishFailed(ctx, "depth", err)
		}
	}
	if err := e.deps.Store.Save(ctx, inst.productID, current); err != nil {
		e.storeFailed(ctx, "snapshot_save", err)
		return
	}
	inst.dirty = false
}

func (e *Engine) publishTickerBatch(ctx context.Context, instruments []*Instrument) {
	if len(instruments) == 0 || time.Since(e.lastBatch) < e.options.TickerBatchInterval {
		return
	}
	e.lastBatch = time.Now()

	tickers := make([]tickerv1.Ticker, 0, len(instruments))
	for _, inst := range instruments {
		if inst.roller.State().LastTradeTime == 0 {
			continue
		}
		tickers = append(tickers, inst.roller.TickerData(inst.book))
	}
	if len(tickers) == 0 {
		return
	}
	if err := e.deps.Publisher.PublishTickerBatch(ctx, tickers); err != nil {
		e.publishFailed(ctx, "ticker_batch", err)
	}
}

func (e *Engine) publishFailed(ctx context.Context, channel string, err error) {
	e.deps.Metrics.PublishErrors.WithLabelValues(channel).Inc()
	e.deps.Logger.ErrorContext(ctx, err, logger.NewField("action", "publish_"+channel))
}

func (e *Engine) storeFailed(ctx context.Context, store string, err error) {
	e.deps.Metrics.StoreErrors.WithLabelValues(store).Inc()
	e.deps.Logger.ErrorContext(ctx, err, logger.NewField("action", store))
}
