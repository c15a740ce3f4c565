package tickerv1

const (
	// TypeTicker tags a single ticker message.
	TypeTicker = "ticker"
	// TypeTickerBatch tags the periodic batch of all tickers.
	TypeTickerBatch = "ticker_batch"
)

// Ticker is the per-instrument statistics row published on every match.
type Ticker struct {
	Type               string  `json:"type"`
	ProductID          string  `json:"product_id"`
	Price              int64   `json:"price"`
	Volume24h          float64 `json:"volume_24h"`
	Low24h             int64   `json:"low_24h"`
	High24h            int64   `json:"high_24h"`
	Low52w             int64   `json:"low_52w"`
	High52w            int64   `json:"high_52w"`
	PricePercentChg24h float64 `json:"price_percent_chg_24h"`
	BestBid            int64   `json:"best_bid"`
	BestAsk            int64   `json:"best_ask"`
	BestBidQuantity    int64   `json:"best_bid_quantity"`
	BestAskQuantity    int64   `json:"best_ask_quantity"`
	Time               string  `json:"time"`
}

// Batch carries the latest ticker of every instrument that traded.
type Batch struct {
	Type    string   `json:"type"`
	Tickers []Ticker `json:"tickers"`
}

// NewBatch wraps tickers in a batch message.
func NewBatch(tickers []Ticker) Batch {
	if tickers == nil {
		tickers = []Ticker{}
	}
	return Batch{Type: TypeTickerBatch, Tickers: tickers}
}
