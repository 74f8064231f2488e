package cmd

import (
	"fmt"

	"portfoliodash/api"
	"portfoliodash/internal/cache"
	"portfoliodash/internal/logger"
	"portfoliodash/internal/repository"
	"portfoliodash/internal/service"
	"portfoliodash/internal/util"
)

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}
	if secrets.ExternalAPIURL == "" {
		return nil, fmt.Errorf("externalApiUrl is not configured")
	}

	store := cache.New(cache.RealClock())

	accountRepository := repository.NewAccountRepository(secrets.ExternalAPIURL)
	marketDataRepository := repository.NewMarketDataRepository(secrets.ExternalAPIURL)
	if secrets.PerformanceDataDir != "" {
		marketDataRepository = repository.NewCSVMarketDataRepository(secrets.PerformanceDataDir)
	}
	exchangeRateRepository := repository.NewExchangeRateRepository()

	analyticsService := service.NewAnalyticsService(
		accountRepository,
		marketDataRepository,
		exchangeRateRepository,
		store,
	)

	return &api.ApiHandler{
		AnalyticsService: analyticsService,
		Logger:           logger.New(),
	}, nil
}
