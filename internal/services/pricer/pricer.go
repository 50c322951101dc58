// Package pricer reads last and bid prices for a symbol.
package pricer

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/rofexbuy/internal/domain"
)

// MarketDataSource answers single market data requests.
type MarketDataSource interface {
	MarketData(ctx context.Context, symbol domain.Symbol, entries ...domain.Entry) (domain.MarketData, error)
}

// QueryLastPrice returns the last traded price of symbol. An invalid
// NullDecimal means the market has no last price.
func QueryLastPrice(ctx context.Context, src MarketDataSource, symbol domain.Symbol) (decimal.NullDecimal, error) {
	md, err := src.MarketData(ctx, symbol, domain.EntryLast)
	if err != nil {
		return decimal.NullDecimal{}, errors.Wrapf(err, "failed to query last price for %s", symbol)
	}
	return md.LastPrice(), nil
}

// QueryBidPrice returns the best bid of symbol. An invalid NullDecimal means
// there are no active bids.
func QueryBidPrice(ctx context.Context, src MarketDataSource, symbol domain.Symbol) (decimal.NullDecimal, error) {
	md, err := src.MarketData(ctx, symbol, domain.EntryBids)
	if err != nil {
		return decimal.NullDecimal{}, errors.Wrapf(err, "failed to query bid price for %s", symbol)
	}
	return md.BestBid(), nil
}
