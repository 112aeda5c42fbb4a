package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"fundledger/internal/adapter/repo"
	"fundledger/internal/infra"
	"fundledger/internal/metrics"
)

// The worker watches for funds whose deadline has passed while still open.
// It only reports; refunds stay caller-triggered through the API.
func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	funds := repo.NewFundRepository(dbpool)
	clock := clockwork.NewRealClock()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	logger.Info().Dur("interval", cfg.SweepInterval).Msg("expiry watcher started")
	ticker := clock.NewTicker(cfg.SweepInterval)
	defer ticker.Stop()

	for {
		sweep(ctx, funds, logger)
		select {
		case <-stop:
			logger.Info().Msg("expiry watcher stopped")
			return
		case <-ticker.Chan():
		}
	}
}

func sweep(ctx context.Context, funds *repo.FundRepositoryPG, logger infra.Logger) {
	expired, err := funds.ListExpiredActive(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("expiry sweep failed")
		return
	}
	metrics.ExpiredActiveFunds.Set(float64(len(expired)))
	for _, fund := range expired {
		logger.Warn().
			Int64("fund_id", fund.ID).
			Int64("target", fund.Target).
			Int64("current_amount", fund.CurrentAmount).
			Time("end", fund.End).
			Msg("fund past deadline and still open")
	}
}
