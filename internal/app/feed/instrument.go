package feed

import (
	"sync/atomic"

	streamv1 "github.com/muhammadchandra19/marketfeed/internal/domain/stream/v1"
	"github.com/muhammadchandra19/marketfeed/internal/usecase/candle"
	"github.com/muhammadchandra19/marketfeed/internal/usecase/orderbook"
	"github.com/muhammadchandra19/marketfeed/internal/usecase/ticker"
)

const (
	stateUninitialized int32 = iota
	stateIdle
	stateProcessing
)

// Instrument is the state of one product. Only the goroutine holding the
// processing state touches the book, the roller, the candles and the cursors.
type Instrument struct {
	productID   string
	newStream   string
	matchStream string

	book    *orderbook.Orderbook
	roller  *ticker.Roller
	candles *candle.Builder

	newCursor   streamv1.ID
	matchCursor streamv1.ID
	dirty       bool

	state atomic.Int32
}

func newInstrument(productID string, options *Options) *Instrument {
	inst := &Instrument{
		productID:   productID,
		newStream:   options.newStream(productID),
		matchStream: options.matchStream(productID),
		book:        orderbook.NewOrderbook(productID),
		roller:      ticker.NewRoller(productID, options.Location),
		candles:     candle.NewBuilder(productID, options.Intervals, options.Location),
	}
	inst.state.Store(stateIdle)
	return inst
}

// acquire moves the instrument from idle to processing. It fails while a
// previous tick still holds it.
func (i *Instrument) acquire() bool {
	return i.state.CompareAndSwap(stateIdle, stateProcessing)
}

func (i *Instrument) release() {
	i.state.Store(stateIdle)
}
