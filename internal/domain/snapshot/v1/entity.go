package snapshotv1

// Side is the depth side of a row.
type Side string

const (
	SideBid Side = "bid"
	SideAsk Side = "ask"
)

// Row is one aggregated price bucket.
type Row struct {
	Side        Side   `json:"side"`
	PriceLevel  int64  `json:"price_level"`
	NewQuantity int64  `json:"new_quantity"`
	EventTime   string `json:"event_time"`
}

// Snapshot is a depth view: bids best first, then asks best first.
// As a diff it is a set of self-describing rows where a zero quantity removes the level.
type Snapshot []Row

// Key identifies a row by side and price.
type Key struct {
	Side  Side
	Price int64
}

// Key returns the identity of the row.
func (r Row) Key() Key {
	return Key{Side: r.Side, Price: r.PriceLevel}
}
