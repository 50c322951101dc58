package internal

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vadiminshakov/rofexbuy/config"
	"github.com/vadiminshakov/rofexbuy/internal/clients"
	"github.com/vadiminshakov/rofexbuy/internal/domain"
	"github.com/vadiminshakov/rofexbuy/internal/services/pricer"
	"github.com/vadiminshakov/rofexbuy/internal/services/session"
	"github.com/vadiminshakov/rofexbuy/internal/services/symbols"
	"github.com/vadiminshakov/rofexbuy/internal/services/trader"
)

// Reporter prints the status lines of a run.
type Reporter interface {
	SessionStarted()
	AuthenticationFailed()
	SessionClosed()
	CheckingSymbol()
	SymbolValidated(ok bool)
	CheckingLastPrice()
	LastPrice(last decimal.NullDecimal)
	CheckingBid()
	BidPrice(bid decimal.NullDecimal)
	SubmittingOrder(price decimal.Decimal)
}

// Result describes how far a run got.
type Result struct {
	Stage     domain.Stage
	SessionID string
	Symbol    domain.Symbol
	LastPrice decimal.NullDecimal
	BidPrice  decimal.NullDecimal
	BuyPrice  decimal.NullDecimal
}

// TradingBot runs one connect, validate, price, buy pass.
type TradingBot struct {
	api      session.API
	conf     config.Config
	reporter Reporter
	logger   *zap.Logger
}

// NewTradingBot creates a new trading bot instance
func NewTradingBot(conf config.Config, api session.API, reporter Reporter, logger *zap.Logger) (*TradingBot, error) {
	if api == nil {
		return nil, errors.New("market API client is required")
	}
	if reporter == nil {
		return nil, errors.New("reporter is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TradingBot{
		api:      api,
		conf:     conf,
		reporter: reporter,
		logger:   logger.With(zap.Stringer("symbol", conf.Symbol)),
	}, nil
}

// Run executes the pipeline. The session is torn down exactly once on every
// path, including when an error is returned.
func (b *TradingBot) Run(ctx context.Context) (Result, error) {
	sess := session.New(b.api, b.conf.MarketID, b.logger)
	result := Result{Stage: domain.StageStart, SessionID: sess.ID()}
	defer func() {
		if sess.Disconnect() {
			b.reporter.SessionClosed()
		}
	}()

	if err := sess.Connect(ctx, b.conf.Credentials); err != nil {
		if errors.Is(err, clients.ErrAuthentication) {
			b.logger.Warn("authentication failed", zap.Error(err))
			b.reporter.AuthenticationFailed()
			result.Stage = domain.StageAuthFailed
			return result, nil
		}
		return result, err
	}
	b.reporter.SessionStarted()
	result.Stage = domain.StageConnected

	tradable, err := symbols.ListTradable(ctx, sess)
	if err != nil {
		return result, err
	}

	b.reporter.CheckingSymbol()
	symbol, ok := symbols.Validate(b.conf.Symbol, tradable)
	b.reporter.SymbolValidated(ok)
	if !ok {
		b.logger.Info("symbol is not traded", zap.Int("tradable", len(tradable)))
		result.Stage = domain.StageRejected
		return result, nil
	}
	result.Symbol = symbol
	result.Stage = domain.StageValidated

	b.reporter.CheckingLastPrice()
	last, err := pricer.QueryLastPrice(ctx, sess, symbol)
	if err != nil {
		return result, err
	}
	b.reporter.LastPrice(last)
	result.LastPrice = last

	b.reporter.CheckingBid()
	bid, err := pricer.QueryBidPrice(ctx, sess, symbol)
	if err != nil {
		return result, err
	}
	b.reporter.BidPrice(bid)
	result.BidPrice = bid

	price := trader.ComputeBuyPrice(bid)
	result.Stage = domain.StagePriced

	b.reporter.SubmittingOrder(price)
	submitted, err := trader.SubmitBuyOrder(ctx, sess, symbol, price)
	if err != nil {
		return result, err
	}
	result.BuyPrice = decimal.NewNullDecimal(submitted)
	result.Stage = domain.StageOrderSubmitted

	b.logger.Info("buy order submitted",
		zap.String("price", submitted.String()),
		zap.Bool("fallback", submitted.Equal(trader.FallbackPrice)))

	return result, nil
}
