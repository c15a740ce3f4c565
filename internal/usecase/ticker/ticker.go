package ticker

import (
	"time"

	orderv1 "github.com/muhammadchandra19/marketfeed/internal/domain/order/v1"
	orderbookv1 "github.com/muhammadchandra19/marketfeed/internal/domain/orderbook/v1"
	tickerv1 "github.com/muhammadchandra19/marketfeed/internal/domain/ticker/v1"
	"github.com/muhammadchandra19/marketfeed/pkg/util"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// State is the rolling statistics of one instrument.
type State struct {
	BestBid   int64
	BestAsk   int64
	LastPrice int64

	Volume24h       decimal.Decimal
	High24h         int64
	Low24h          int64
	OpenPrice24h    int64
	VolumeStartTime time.Time

	High52w       int64
	Low52w        int64
	YearStartTime time.Time

	// LastTradeTime is the created_at of the latest match, in unix seconds.
	LastTradeTime int64
}

// Roller maintains the 24h and 52w statistics of one instrument from its match events.
type Roller struct {
	productID string
	loc       *time.Location
	state     State
}

// NewRoller creates a Roller whose day and year windows start at midnight in loc.
func NewRoller(productID string, loc *time.Location) *Roller {
	if loc == nil {
		loc = time.Local
	}
	return &Roller{
		productID: productID,
		loc:       loc,
		state:     State{Volume24h: decimal.Zero},
	}
}

// State returns a copy of the current statistics.
func (r *Roller) State() State {
	return r.state
}

// UpdatePriceData folds one match into the statistics. Matches without a price are ignored.
func (r *Roller) UpdatePriceData(match *orderv1.Order) bool {
	price := match.Price
	if price <= 0 {
		return false
	}
	s := &r.state
	at := time.Unix(match.CreatedAt, 0)

	if dayStart := util.StartOfDay(at, r.loc); dayStart.After(s.VolumeStartTime) {
		s.VolumeStartTime = dayStart
		s.Volume24h = decimal.Zero
		s.High24h = price
		s.Low24h = price
		s.OpenPrice24h = price
	}
	if yearStart := util.StartOfYear(at, r.loc); yearStart.After(s.YearStartTime) {
		s.YearStartTime = yearStart
		s.High52w = price
		s.Low52w = price
	}

	s.High24h = max(s.High24h, price)
	if s.Low24h == 0 || price < s.Low24h {
		s.Low24h = price
	}
	s.High52w = max(s.High52w, price)
	if s.Low52w == 0 || price < s.Low52w {
		s.Low52w = price
	}

	s.Volume24h = s.Volume24h.Add(match.ExecutedValue)
	s.LastPrice = price
	s.LastTradeTime = match.CreatedAt
	return true
}

// UpdateBestPrices refreshes the best bid and ask from the book.
func (r *Roller) UpdateBestPrices(book orderbookv1.Book) {
	r.state.BestBid = book.BestBid()
	r.state.BestAsk = book.BestAsk()
}

// PercentChange24h is the move of the last price against the day's open, 0 before any trade.
func (r *Roller) PercentChange24h() float64 {
	s := r.state
	if s.OpenPrice24h == 0 {
		return 0
	}
	return decimal.NewFromInt(s.LastPrice - s.OpenPrice24h).
		Div(decimal.NewFromInt(s.OpenPrice24h)).
		Mul(hundred).
		InexactFloat64()
}

// TickerData renders the ticker row, reading the resident size at the best prices from book.
func (r *Roller) TickerData(book orderbookv1.Book) tickerv1.Ticker {
	s := r.state
	return tickerv1.Ticker{
		Type:               tickerv1.TypeTicker,
		ProductID:          r.productID,
		Price:              s.LastPrice,
		Volume24h:          s.Volume24h.InexactFloat64(),
		Low24h:             s.Low24h,
		High24h:            s.High24h,
		Low52w:             s.Low52w,
		High52w:            s.High52w,
		PricePercentChg24h: r.PercentChange24h(),
		BestBid:            s.BestBid,
		BestAsk:            s.BestAsk,
		BestBidQuantity:    book.Qty(orderv1.SideBuy, s.BestBid),
		BestAskQuantity:    book.Qty(orderv1.SideSell, s.BestAsk),
		Time:               util.UnixToISO(s.LastTradeTime),
	}
}
