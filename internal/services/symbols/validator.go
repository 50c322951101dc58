// Package symbols checks requested tickers against the instruments traded in the market.
package symbols

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/rofexbuy/internal/domain"
)

// InstrumentLister lists the instruments currently known to the market.
type InstrumentLister interface {
	Instruments(ctx context.Context) ([]domain.Instrument, error)
}

// ListTradable returns the symbols of every instrument in the market.
// The result is never nil.
func ListTradable(ctx context.Context, lister InstrumentLister) ([]domain.Symbol, error) {
	instruments, err := lister.Instruments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tradable symbols")
	}

	tradable := make([]domain.Symbol, 0, len(instruments))
	for _, in := range instruments {
		tradable = append(tradable, in.ID.Symbol)
	}
	return tradable, nil
}

// Validate returns symbol unchanged if it is tradable. A missing symbol is
// reported through the boolean, not as an error.
func Validate(symbol domain.Symbol, tradable []domain.Symbol) (domain.Symbol, bool) {
	for _, s := range tradable {
		if s == symbol {
			return symbol, true
		}
	}
	return "", false
}
