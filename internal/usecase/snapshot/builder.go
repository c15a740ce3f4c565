package snapshot

import (
	orderv1 "github.com/muhammadchandra19/marketfeed/internal/domain/order/v1"
	orderbookv1 "github.com/muhammadchandra19/marketfeed/internal/domain/orderbook/v1"
	snapshotv1 "github.com/muhammadchandra19/marketfeed/internal/domain/snapshot/v1"
	"github.com/muhammadchandra19/marketfeed/pkg/util"
)

// DefaultDepth is the number of buckets kept per side.
const DefaultDepth = 20

// Builder turns a book into a tick-bucketed depth snapshot.
type Builder struct {
	depth int
}

// NewBuilder creates a Builder keeping depth buckets per side.
func NewBuilder(depth int) *Builder {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Builder{depth: depth}
}

// TickSize derives the bucket width from the spread. A one-sided book uses its
// present best price for the missing side, so its spread is 1.
func (b *Builder) TickSize(book orderbookv1.Book) int64 {
	bid, ask := book.BestBid(), book.BestAsk()
	if bid == 0 {
		bid = ask
	}
	if ask == 0 {
		ask = bid
	}

	if book.Len() < b.depth {
		return 1
	}

	depth := int64(b.depth)
	spread := max(1, ask-bid)
	return max(1, (spread+depth-1)/depth)
}

// Build returns the current snapshot, or false when the book is empty.
func (b *Builder) Build(book orderbookv1.Book) (snapshotv1.Snapshot, bool) {
	if book.BestBid() == 0 && book.BestAsk() == 0 {
		return nil, false
	}

	tick := b.TickSize(book)
	eventTime := util.UnixToISO(book.LastEventTime())

	rows := make(snapshotv1.Snapshot, 0, 2*b.depth)
	rows = b.side(rows, book, orderv1.SideBuy, snapshotv1.SideBid, tick, eventTime, floorBucket)
	rows = b.side(rows, book, orderv1.SideSell, snapshotv1.SideAsk, tick, eventTime, ceilBucket)
	return rows, true
}

// side appends up to depth buckets of one side. Levels come best first and the
// bucket function is monotonic, so equal buckets are always adjacent.
func (b *Builder) side(
	rows snapshotv1.Snapshot,
	book orderbookv1.Book,
	side orderv1.Side,
	rowSide snapshotv1.Side,
	tick int64,
	eventTime string,
	bucket func(price, tick int64) int64,
) snapshotv1.Snapshot {
	buckets := 0
	book.Levels(side, func(price, size int64) bool {
		level := bucket(price, tick)
		if buckets > 0 && rows[len(rows)-1].PriceLevel == level {
			rows[len(rows)-1].NewQuantity += size
			return true
		}
		if buckets == b.depth {
			return false
		}
		rows = append(rows, snapshotv1.Row{
			Side:        rowSide,
			PriceLevel:  level,
			NewQuantity: size,
			EventTime:   eventTime,
		})
		buckets++
		return true
	})
	return rows
}

// Bids round down and asks round up, so both sides bucket toward the spread
// and an ask is never shown cheaper than it is.
func floorBucket(price, tick int64) int64 {
	return price / tick * tick
}

func ceilBucket(price, tick int64) int64 {
	return (price + tick - 1) / tick * tick
}
