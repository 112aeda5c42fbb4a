package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fundledger/internal/access"
	"fundledger/internal/adapter/repo"
	"fundledger/internal/event"
	"fundledger/internal/http/handlers"
	httpapi "fundledger/internal/http/httpapi"
	"fundledger/internal/infra"
	"fundledger/internal/infra/geoip"
	"fundledger/internal/ledger"
	"fundledger/internal/middleware"
	"fundledger/internal/treasury"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	var lookup middleware.CountryLookup
	if resolver != nil {
		defer func() { _ = resolver.(*geoip.Resolver).Close() }()
		lookup = resolver.CountryCode
	}

	funds := repo.NewFundRepository(dbpool)
	events := repo.NewEventRepository(dbpool)

	sw := access.NewSwitch(cfg.LedgerEnabled)
	sink := event.Fanout{
		event.NewLogSink(logger),
		event.NewPGSink(events, logger),
	}

	core, err := ledger.New(ledger.Config{
		FeePercent: cfg.FeePercent,
		Gateway:    treasury.NewPGGateway(dbpool),
		Enabled:    sw.Enabled,
		Sink:       sink,
		Snapshots:  funds,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build ledger")
	}

	guard := access.NewGuard(cfg.AdminAddress, core)
	app := handlers.NewApp(core, guard, sw, events, logger)
	router := httpapi.NewRouter(app, cfg, logger, lookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
