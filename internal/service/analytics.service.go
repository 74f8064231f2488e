package service

import (
	"context"

	"portfoliodash/internal"
	"portfoliodash/internal/cache"
	"portfoliodash/internal/domain"
	"portfoliodash/internal/repository"
)

// BenchmarkSymbols are the tickers the dashboard compares the portfolio
// against. Their order fixes the response shape, so don't reorder.
var BenchmarkSymbols = []string{"QQQ", "VOO"}

// AnalyticsService glues the fetch collaborators to the computation layer
// and wraps every result category in the TTL cache. The computations
// themselves are pure; all staleness policy lives here.
type AnalyticsService interface {
	GetPortfolio(ctx context.Context) ([]domain.Holding, *domain.PortfolioMetrics, error)
	GetPriceHistory(ctx context.Context) ([]domain.PricePoint, error)
	GetHoldingsWithChanges(ctx context.Context) ([]domain.HoldingChanges, *float64, error)
	GetCorrelation(ctx context.Context) (*internal.CorrelationResult, error)
	GetBenchmark(ctx context.Context) (*domain.BenchmarkSeries, error)
	GetExchangeRate(ctx context.Context, pair string) (*domain.ExchangeRateData, error)
	AvailablePairs() []string
}

func NewAnalyticsService(
	accountRepository repository.AccountRepository,
	marketDataRepository repository.MarketDataRepository,
	exchangeRateRepository repository.ExchangeRateRepository,
	store *cache.Store,
) AnalyticsService {
	return &analyticsServiceHandler{
		AccountRepository:      accountRepository,
		MarketDataRepository:   marketDataRepository,
		ExchangeRateRepository: exchangeRateRepository,
		Cache:                  store,
	}
}

type analyticsServiceHandler struct {
	AccountRepository      repository.AccountRepository
	MarketDataRepository   repository.MarketDataRepository
	ExchangeRateRepository repository.ExchangeRateRepository
	Cache                  *cache.Store
}

// Sig is hashed once when the snapshot is fetched, so derived results can
// key on it without rehashing the full inputs on every request. A refreshed
// fetch produces a new Sig, which invalidates everything derived from it.
type portfolioSnapshot struct {
	Holdings []domain.Holding
	Metrics  *domain.PortfolioMetrics
	Sig      string
}

type historySnapshot struct {
	Rows []domain.PricePoint
	Sig  string
}

type changesResult struct {
	Holdings      []domain.HoldingChanges
	PrevDayChange *float64
}

func (h analyticsServiceHandler) getPortfolioSnapshot(ctx context.Context) (portfolioSnapshot, error) {
	return cache.GetOrCompute(h.Cache, cache.CategoryHoldings, cache.Key("portfolio"), func() (portfolioSnapshot, error) {
		holdings, metrics, err := h.AccountRepository.GetPortfolio(ctx)
		if err != nil {
			return portfolioSnapshot{}, err
		}
		return portfolioSnapshot{
			Holdings: holdings,
			Metrics:  metrics,
			Sig:      cache.Key("portfolio", holdings, metrics),
		}, nil
	})
}

func (h analyticsServiceHandler) getHistorySnapshot(ctx context.Context) (historySnapshot, error) {
	return cache.GetOrCompute(h.Cache, cache.CategoryPerformance, cache.Key("priceHistory"), func() (historySnapshot, error) {
		rows, err := h.MarketDataRepository.GetPriceHistory(ctx)
		if err != nil {
			return historySnapshot{}, err
		}
		return historySnapshot{
			Rows: rows,
			Sig:  cache.Key("priceHistory", rows),
		}, nil
	})
}

func (h analyticsServiceHandler) GetPortfolio(ctx context.Context) ([]domain.Holding, *domain.PortfolioMetrics, error) {
	snapshot, err := h.getPortfolioSnapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	return snapshot.Holdings, snapshot.Metrics, nil
}

func (h analyticsServiceHandler) GetPriceHistory(ctx context.Context) ([]domain.PricePoint, error) {
	snapshot, err := h.getHistorySnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Rows, nil
}

func (h analyticsServiceHandler) GetHoldingsWithChanges(ctx context.Context) ([]domain.HoldingChanges, *float64, error) {
	portfolio, err := h.getPortfolioSnapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	history, err := h.getHistorySnapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	key := cache.Key("changes", portfolio.Sig, history.Sig)
	result, err := cache.GetOrCompute(h.Cache, cache.CategoryPerformance, key, func() (changesResult, error) {
		withChanges, prevDayChange := internal.ComputeChanges(portfolio.Holdings, history.Rows)
		return changesResult{Holdings: withChanges, PrevDayChange: prevDayChange}, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return result.Holdings, result.PrevDayChange, nil
}

func (h analyticsServiceHandler) GetCorrelation(ctx context.Context) (*internal.CorrelationResult, error) {
	portfolio, err := h.getPortfolioSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	history, err := h.getHistorySnapshot(ctx)
	if err != nil {
		return nil, err
	}

	key := cache.Key("correlation", portfolio.Sig, history.Sig)
	return cache.GetOrCompute(h.Cache, cache.CategoryCorrelation, key, func() (*internal.CorrelationResult, error) {
		return internal.ComputeCorrelation(portfolio.Holdings, history.Rows)
	})
}

func (h analyticsServiceHandler) GetBenchmark(ctx context.Context) (*domain.BenchmarkSeries, error) {
	portfolio, err := h.getPortfolioSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	history, err := h.getHistorySnapshot(ctx)
	if err != nil {
		return nil, err
	}

	key := cache.Key("benchmark", portfolio.Sig, history.Sig)
	return cache.GetOrCompute(h.Cache, cache.CategoryBenchmark, key, func() (*domain.BenchmarkSeries, error) {
		return internal.ComputeBenchmark(history.Rows, portfolio.Metrics, BenchmarkSymbols)
	})
}

func (h analyticsServiceHandler) GetExchangeRate(ctx context.Context, pair string) (*domain.ExchangeRateData, error) {
	return cache.GetOrCompute(h.Cache, cache.CategoryExchange, cache.Key("exchangeRate", pair), func() (*domain.ExchangeRateData, error) {
		return h.ExchangeRateRepository.GetRateHistory(ctx, pair)
	})
}

func (h analyticsServiceHandler) AvailablePairs() []string {
	return h.ExchangeRateRepository.AvailablePairs()
}
