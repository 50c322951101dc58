// Package trader prices and submits buy orders.
package trader

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/rofexbuy/internal/domain"
)

var (
	// BidOffset is subtracted from the best bid to get the buy price.
	BidOffset = decimal.New(1, -2)
	// FallbackPrice is used when there are no active bids.
	FallbackPrice = decimal.New(5000, -2)
)

// OrderSender submits orders to the market.
type OrderSender interface {
	SendOrder(ctx context.Context, order domain.Order) (domain.OrderAck, error)
}

// PriceBelowBid returns bid minus offset. The offset is expected to be
// smaller than the bid; it is not checked.
func PriceBelowBid(bid, offset decimal.Decimal) decimal.Decimal {
	return bid.Sub(offset)
}

// ComputeBuyPrice returns one cent below the bid, or FallbackPrice when
// there is no bid. A zero bid counts as no bid.
func ComputeBuyPrice(bid decimal.NullDecimal) decimal.Decimal {
	if !bid.Valid || bid.Decimal.IsZero() {
		return FallbackPrice
	}
	return PriceBelowBid(bid.Decimal, BidOffset)
}

// SubmitBuyOrder sends a single unit limit buy at price and returns the price
// it was sent at. The order is not followed after submission.
func SubmitBuyOrder(ctx context.Context, sender OrderSender, symbol domain.Symbol, price decimal.Decimal) (decimal.Decimal, error) {
	order := domain.NewLimitBuy(symbol, price)
	if _, err := sender.SendOrder(ctx, order); err != nil {
		return decimal.Decimal{}, errors.Wrap(err, "failed to create buy order")
	}
	return price, nil
}
