package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Side order side.
type Side string

// SideBuy buy side.
const SideBuy Side = "Buy"

// OrderType order type.
type OrderType string

// OrderTypeLimit limit order.
const OrderTypeLimit OrderType = "Limit"

// TimeInForce order validity.
type TimeInForce string

// TimeInForceDay order expires at the end of the session.
const TimeInForceDay TimeInForce = "Day"

// UnitSize quantity sent with every order.
const UnitSize int64 = 1

// Order instruction sent to the market. It is not tracked after submission.
type Order struct {
	Symbol      Symbol
	Side        Side
	Type        OrderType
	Price       decimal.Decimal
	Size        int64
	TimeInForce TimeInForce
}

// NewLimitBuy builds a single unit limit buy order.
func NewLimitBuy(symbol Symbol, price decimal.Decimal) Order {
	return Order{
		Symbol:      symbol,
		Side:        SideBuy,
		Type:        OrderTypeLimit,
		Price:       price,
		Size:        UnitSize,
		TimeInForce: TimeInForceDay,
	}
}

// String returns a human-readable string representation.
func (o Order) String() string {
	return fmt.Sprintf("%s %s %d %s @ %s", o.Symbol, o.Side, o.Size, o.Type, o.Price.String())
}

// OrderAck market acknowledgement of a submitted order.
type OrderAck struct {
	ClientID    string
	Proprietary string
}
