// Package domain defines core data structures used throughout the order script.
package domain

import "fmt"

// Symbol ticker of an instrument traded in the market.
type Symbol string

// String returns the string representation.
func (s Symbol) String() string {
	return string(s)
}

// InstrumentID identifies an instrument inside a market.
type InstrumentID struct {
	// MarketID market the instrument belongs to, e.g. ROFX.
	MarketID string
	// Symbol instrument ticker.
	Symbol Symbol
}

// Instrument tradable instrument listed by the market.
type Instrument struct {
	ID      InstrumentID
	CFICode string
}

// Credentials account credentials for the market environment.
type Credentials struct {
	User     string
	Password string
	Account  string
}

// String masks the password so credentials can be logged safely.
func (c Credentials) String() string {
	return fmt.Sprintf("user=%s account=%s password=***", c.User, c.Account)
}
