package main

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// Event is one record bound for the new-order or match stream of a product.
type Event struct {
	Stream string
	Fields map[string]string
}

type restingOrder struct {
	fields map[string]string
	price  int64
	size   int64
}

// generator produces a plausible order lifecycle: new limit and market orders,
// fills against resting orders and cancellations.
type generator struct {
	rnd         *rand.Rand
	productID   string
	basePrice   int64
	priceSpread int64
	now         func() time.Time

	resting []restingOrder
}

func newGenerator(seed uint64, productID string, basePrice, priceSpread int64) *generator {
	return &generator{
		rnd:         rand.New(rand.NewPCG(seed, seed)),
		productID:   productID,
		basePrice:   basePrice,
		priceSpread: max(1, priceSpread),
		now:         time.Now,
	}
}

func (g *generator) newStream() string   { return g.productID + ":new" }
func (g *generator) matchStream() string { return g.productID + ":matches" }

// generateRandomID creates a random alphanumeric ID
func (g *generator) generateRandomID(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	var result strings.Builder
	for range length {
		result.WriteByte(charset[g.rnd.IntN(len(charset))])
	}
	return result.String()
}

// Next returns the next event. Matches and cancellations only target orders
// that were previously emitted as resting limit orders.
func (g *generator) Next() Event {
	if len(g.resting) > 0 {
		switch roll := g.rnd.Float64(); {
		case roll < 0.25:
			return g.fill()
		case roll < 0.35:
			return g.cancel()
		}
	}
	return g.place()
}

func (g *generator) place() Event {
	// Order types: 80% limit, 20% market
	orderType := "limit"
	if g.rnd.Float64() < 0.2 {
		orderType = "market"
	}
	side := "buy"
	if g.rnd.Float64() < 0.5 {
		side = "sell"
	}

	offset := g.rnd.Int64N(g.priceSpread) + 1
	price := g.basePrice - offset
	if side == "sell" {
		price = g.basePrice + offset
	}
	price = max(1, price)
	size := g.rnd.Int64N(100) + 1

	fields := map[string]string{
		"id":         g.generateRandomID(g.rnd.IntN(4) + 5),
		"product_id": g.productID,
		"user_id":    g.generateRandomID(g.rnd.IntN(4) + 6),
		"side":       side,
		"type":       orderType,
		"created_at": strconv.FormatInt(g.now().Unix(), 10),
		"status":     "received",
		"settled":    "false",
		"size":       strconv.FormatInt(size, 10),
	}
	if orderType == "limit" {
		fields["price"] = strconv.FormatInt(price, 10)
		fields["status"] = "open"
		fields["cancel_after"] = "hour"
		g.resting = append(g.resting, restingOrder{fields: fields, price: price, size: size})
	}

	return Event{Stream: g.newStream(), Fields: fields}
}

func (g *generator) take() restingOrder {
	i := g.rnd.IntN(len(g.resting))
	o := g.resting[i]
	g.resting = append(g.resting[:i], g.resting[i+1:]...)
	return o
}

func (g *generator) terminal(o restingOrder, status string, executed int64) Event {
	fields := make(map[string]string, len(o.fields)+1)
	for k, v := range o.fields {
		fields[k] = v
	}
	fields["status"] = status
	fields["created_at"] = strconv.FormatInt(g.now().Unix(), 10)
	fields["executed_value"] = strconv.FormatInt(executed, 10)
	fields["settled"] = strconv.FormatBool(status == "done")
	return Event{Stream: g.matchStream(), Fields: fields}
}

func (g *generator) fill() Event {
	o := g.take()
	return g.terminal(o, "done", o.price*o.size)
}

func (g *generator) cancel() Event {
	return g.terminal(g.take(), "cancelled", 0)
}
