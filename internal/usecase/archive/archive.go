package archive

import (
	"context"

	archivev1 "github.com/muhammadchandra19/marketfeed/internal/domain/archive/v1"
	candlev1 "github.com/muhammadchandra19/marketfeed/internal/domain/candle/v1"
	orderv1 "github.com/muhammadchandra19/marketfeed/internal/domain/order/v1"
	"github.com/muhammadchandra19/marketfeed/internal/infrastructure/questdb/ohlc"
	"github.com/muhammadchandra19/marketfeed/internal/infrastructure/questdb/tick"
	"github.com/muhammadchandra19/marketfeed/pkg/errors"
)

// Archiver writes trades and candles to QuestDB.
type Archiver struct {
	ticks tick.TickRepository
	ohlcs ohlc.OHLCRepository
}

var _ archivev1.Archiver = (*Archiver)(nil)

// NewArchiver creates an Archiver over the tick and ohlc repositories.
func NewArchiver(ticks tick.TickRepository, ohlcs ohlc.OHLCRepository) *Archiver {
	return &Archiver{ticks: ticks, ohlcs: ohlcs}
}

// ArchiveMatches stores one tick per priced match.
func (a *Archiver) ArchiveMatches(ctx context.Context, matches []*orderv1.Order) error {
	ticks := make([]*tick.Tick, 0, len(matches))
	for _, m := range matches {
		if m.Price <= 0 {
			continue
		}
		ticks = append(ticks, tick.FromMatch(m))
	}

	if err := a.ticks.StoreBatch(ctx, ticks); err != nil {
		return errors.NewTracer("archive_ticks_error").Wrap(err)
	}
	return nil
}

func (a *Archiver) ArchiveCandles(ctx context.Context, candles []candlev1.Candle) error {
	rows := make([]*ohlc.OHLC, 0, len(candles))
	for _, c := range candles {
		rows = append(rows, ohlc.FromCandle(c))
	}

	if err := a.ohlcs.StoreBatch(ctx, rows); err != nil {
		return errors.NewTracer("archive_candles_error").Wrap(err)
	}
	return nil
}
