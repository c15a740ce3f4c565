package bootstrap

import (
	ohlcInfra "github.com/muhammadchandra19/marketfeed/internal/infrastructure/questdb/ohlc"
	tickInfra "github.com/muhammadchandra19/marketfeed/internal/infrastructure/questdb/tick"
)

// Repository holds the QuestDB repositories. They are nil when archiving is disabled.
type Repository struct {
	TickRepository tickInfra.TickRepository
	OhlcRepository ohlcInfra.OHLCRepository
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	if b.QuestDB == nil {
		return
	}
	b.Repository.TickRepository = tickInfra.NewRepository(b.QuestDB)
	b.Repository.OhlcRepository = ohlcInfra.NewRepository(b.QuestDB)
}
