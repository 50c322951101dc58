// Command rofexbuy connects to the reMarkets simulation environment, checks
// that a symbol is traded, prints its last and bid prices and sends a single
// unit limit buy one cent below the bid ($50 when there are no bids).
//
// Usage:
//
//	rofexbuy SYMBOL USER PASSWORD ACCOUNT
//	rofexbuy (asks for the arguments on a terminal)
//
// Optional environment variables:
//
//	REMARKETS_CONFIG     path to a yaml file with base_url, market_id, log_level
//	REMARKETS_BASE_URL   API base URL, defaults to the reMarkets environment
//	REMARKETS_MARKET_ID  market id, defaults to ROFX
//	LOG_LEVEL            debug, info, warn (default) or error
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vadiminshakov/rofexbuy/config"
	"github.com/vadiminshakov/rofexbuy/internal"
	"github.com/vadiminshakov/rofexbuy/internal/clients"
	"github.com/vadiminshakov/rofexbuy/internal/report"
	"github.com/vadiminshakov/rofexbuy/internal/setup"
)

const exitUsage = 2

func main() {
	args := os.Args[1:]
	if len(args) == 0 && setup.Interactive() {
		var err error
		args, err = setup.PromptArgs()
		if err != nil {
			log.Fatal(err)
		}
	}

	conf, err := config.Get(args, os.Getenv)
	if err != nil {
		if errors.Is(err, config.ErrUsage) {
			fmt.Fprintln(os.Stderr, config.Usage)
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUsage)
		}
		log.Fatal(err)
	}

	logger, err := newLogger(conf.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	client := clients.NewPrimaryClient(conf.BaseURL, nil)
	bot, err := internal.NewTradingBot(conf, client, report.NewPrinter(os.Stdout), logger)
	if err != nil {
		fail(logger, "failed to create trading bot", zap.Error(err))
	}

	result, err := bot.Run(context.Background())
	if err != nil {
		fail(logger, "run failed",
			zap.Stringer("stage", result.Stage),
			zap.String("session_id", result.SessionID),
			zap.Error(err))
	}

	logger.Debug("run finished", zap.Stringer("stage", result.Stage))
}

// fail logs at error level, flushes the logger and exits 1. zap's Fatal would
// exit without running deferred calls.
func fail(logger *zap.Logger, msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
	_ = logger.Sync()
	os.Exit(1)
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "parse log level %q", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
