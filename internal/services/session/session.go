// Package session holds the authenticated connection to the market environment.
package session

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vadiminshakov/rofexbuy/internal/domain"
	"go.uber.org/zap"
)

// ErrNotConnected is returned when the session is used before Connect or after Disconnect.
var ErrNotConnected = errors.New("session is not connected")

// API is the subset of the market client used by a session.
type API interface {
	Authenticate(ctx context.Context, user, password string) (string, error)
	AllInstruments(ctx context.Context, token string) ([]domain.Instrument, error)
	MarketData(ctx context.Context, token, marketID string, symbol domain.Symbol, entries []domain.Entry) (domain.MarketData, error)
	NewSingleOrder(ctx context.Context, token, marketID, account string, order domain.Order) (domain.OrderAck, error)
}

// Session is the explicit handle every stage of a run goes through.
// It is not safe for concurrent use.
type Session struct {
	api      API
	marketID string
	logger   *zap.Logger

	id          string
	token       string
	account     string
	connected   bool
	closed      bool
	disconnects int
}

// New creates a session that is not yet connected.
func New(api API, marketID string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Session{
		api:      api,
		marketID: marketID,
		id:       id,
		logger:   logger.With(zap.String("session_id", id)),
	}
}

// ID returns the session correlation id.
func (s *Session) ID() string {
	return s.id
}

// Connect authenticates against the market environment.
func (s *Session) Connect(ctx context.Context, creds domain.Credentials) error {
	if s.closed {
		return ErrNotConnected
	}

	s.logger.Debug("authenticating", zap.Stringer("credentials", creds))

	token, err := s.api.Authenticate(ctx, creds.User, creds.Password)
	if err != nil {
		return errors.Wrap(err, "failed to connect")
	}

	s.token = token
	s.account = creds.Account
	s.connected = true
	s.logger = s.logger.With(zap.String("account", creds.Account))
	s.logger.Info("session connected", zap.String("market_id", s.marketID))

	return nil
}

// Connected reports whether the session holds a valid token.
func (s *Session) Connected() bool {
	return s.connected
}

// Disconnect releases the session. Only the first call has an effect;
// it returns true when it actually closed the session.
func (s *Session) Disconnect() bool {
	if s.closed {
		return false
	}
	s.closed = true
	s.connected = false
	s.token = ""
	s.disconnects++
	s.logger.Info("session closed")
	return true
}

// Disconnects returns how many times the session was torn down.
func (s *Session) Disconnects() int {
	return s.disconnects
}

// Instruments lists the instruments currently known to the market.
func (s *Session) Instruments(ctx context.Context) ([]domain.Instrument, error) {
	if !s.connected {
		return nil, ErrNotConnected
	}
	instruments, err := s.api.AllInstruments(ctx, s.token)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("instruments fetched", zap.Int("count", len(instruments)))
	return instruments, nil
}

// MarketData requests a snapshot of entries for symbol.
func (s *Session) MarketData(ctx context.Context, symbol domain.Symbol, entries ...domain.Entry) (domain.MarketData, error) {
	if !s.connected {
		return domain.MarketData{}, ErrNotConnected
	}
	md, err := s.api.MarketData(ctx, s.token, s.marketID, symbol, entries)
	if err != nil {
		return domain.MarketData{}, err
	}
	s.logger.Debug("market data fetched",
		zap.Stringer("symbol", symbol),
		zap.String("entries", domain.JoinEntries(entries)),
		zap.Bool("has_last", md.Last != nil),
		zap.Int("bids", len(md.Bids)))
	return md, nil
}

// SendOrder submits order for the session account.
func (s *Session) SendOrder(ctx context.Context, order domain.Order) (domain.OrderAck, error) {
	if !s.connected {
		return domain.OrderAck{}, ErrNotConnected
	}
	ack, err := s.api.NewSingleOrder(ctx, s.token, s.marketID, s.account, order)
	if err != nil {
		return domain.OrderAck{}, err
	}
	s.logger.Info("order sent",
		zap.Stringer("order", order),
		zap.String("client_id", ack.ClientID),
		zap.String("proprietary", ack.Proprietary))
	return ack, nil
}
