package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Entry kind of market data requested from the market.
type Entry string

const (
	// EntryLast last traded price.
	EntryLast Entry = "LA"
	// EntryBids bid side of the book.
	EntryBids Entry = "BI"
)

// String returns the string representation.
func (e Entry) String() string {
	return string(e)
}

// JoinEntries renders entries the way the market data endpoint expects them.
func JoinEntries(entries []Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ",")
}

// LastTrade most recent trade for an instrument.
type LastTrade struct {
	Price decimal.Decimal
	Size  decimal.Decimal
}

// PriceLevel single level of the book.
type PriceLevel struct {
	Price decimal.Decimal
	Size  decimal.Decimal
}

// MarketData snapshot of the requested entries for a symbol.
type MarketData struct {
	Symbol Symbol
	// Last is nil when the market has no last price.
	Last *LastTrade
	// Bids ordered by priority, best bid first.
	Bids []PriceLevel
}

// LastPrice returns the last traded price if there is one.
func (m MarketData) LastPrice() decimal.NullDecimal {
	if m.Last == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(m.Last.Price)
}

// BestBid returns the first bid if any bid exists.
func (m MarketData) BestBid() decimal.NullDecimal {
	if len(m.Bids) == 0 {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(m.Bids[0].Price)
}
