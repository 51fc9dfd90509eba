package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nurpe/freelance-pricing/internal/config"
	"github.com/nurpe/freelance-pricing/internal/db"
	"github.com/nurpe/freelance-pricing/internal/excel"
	httphandler "github.com/nurpe/freelance-pricing/internal/http"
	"github.com/nurpe/freelance-pricing/internal/logger"
	"github.com/nurpe/freelance-pricing/internal/pdf"
	"github.com/nurpe/freelance-pricing/internal/repository"
	"github.com/nurpe/freelance-pricing/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment, cfg.LogLevel)

	var marketSource service.MarketRateSource = repository.NewStaticMarketRepository()
	if cfg.DB.Enabled() {
		database, err := db.New(cfg, log, repository.ReferenceRates())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect database")
		}
		marketSource = repository.NewMarketRateRepository(database)
	} else {
		log.Info().Msg("DB_DSN not set, serving built-in market rates")
	}

	estimateService := service.NewEstimateService(cfg.Budget.DefaultCurrency, log)
	budgetService := service.NewBudgetService(cfg.Budget, log, pdf.NewGenerator(), excel.NewGenerator())
	marketService := service.NewMarketService(marketSource)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go budgetService.RunJanitor(ctx, janitorInterval(cfg.Budget.SessionTTL))

	handler := httphandler.NewHandler(estimateService, budgetService, marketService, log)
	router := httphandler.NewRouter(handler, cfg.HTTP, cfg.Environment, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting pricing service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		cancel()
		os.Exit(1)
	}
}

func janitorInterval(ttl time.Duration) time.Duration {
	return min(max(ttl/4, time.Minute), time.Hour)
}
