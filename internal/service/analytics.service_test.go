package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"portfoliodash/internal/cache"
	"portfoliodash/internal/domain"
	mock_repository "portfoliodash/internal/repository/mocks"
	"portfoliodash/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceFixture struct {
	account    *mock_repository.MockAccountRepository
	marketData *mock_repository.MockMarketDataRepository
	exchange   *mock_repository.MockExchangeRateRepository
	service    AnalyticsService
}

func newServiceFixture(t *testing.T) serviceFixture {
	ctrl := gomock.NewController(t)
	account := mock_repository.NewMockAccountRepository(ctrl)
	marketData := mock_repository.NewMockMarketDataRepository(ctrl)
	exchange := mock_repository.NewMockExchangeRateRepository(ctrl)

	return serviceFixture{
		account:    account,
		marketData: marketData,
		exchange:   exchange,
		service:    NewAnalyticsService(account, marketData, exchange, cache.New(cache.RealClock())),
	}
}

func testHoldings() []domain.Holding {
	return []domain.Holding{{
		Symbol:                "AAPL",
		Quantity:              10,
		Currency:              "USD",
		CurrentPrice:          110,
		CurrentMarketValue:    1100,
		CurrentMarketValueCAD: 1540,
		Percentage:            100,
	}}
}

func testMetrics() *domain.PortfolioMetrics {
	return &domain.PortfolioMetrics{
		Symbols:             []string{"AAPL"},
		Allocations:         []string{"100%"},
		TotalMarketValueCAD: 1540,
	}
}

func Test_analyticsServiceHandler_GetPortfolio(t *testing.T) {
	t.Run("second call is served from cache", func(t *testing.T) {
		f := newServiceFixture(t)
		f.account.EXPECT().
			GetPortfolio(gomock.Any()).
			Return(testHoldings(), testMetrics(), nil).
			Times(1)

		ctx := context.Background()
		holdings, metrics, err := f.service.GetPortfolio(ctx)
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(testHoldings(), holdings))
		require.Equal(t, 1540.0, metrics.TotalMarketValueCAD)

		holdings, _, err = f.service.GetPortfolio(ctx)
		require.NoError(t, err)
		require.Len(t, holdings, 1)
	})

	t.Run("fetch errors are not cached", func(t *testing.T) {
		f := newServiceFixture(t)
		f.account.EXPECT().
			GetPortfolio(gomock.Any()).
			Return(nil, nil, fmt.Errorf("provider down")).
			Times(2)

		ctx := context.Background()
		_, _, err := f.service.GetPortfolio(ctx)
		require.Error(t, err)
		_, _, err = f.service.GetPortfolio(ctx)
		require.Error(t, err)
	})
}

func Test_analyticsServiceHandler_GetHoldingsWithChanges(t *testing.T) {
	t.Run("fetches each input once across calls", func(t *testing.T) {
		f := newServiceFixture(t)
		f.account.EXPECT().
			GetPortfolio(gomock.Any()).
			Return(testHoldings(), testMetrics(), nil).
			Times(1)
		f.marketData.EXPECT().
			GetPriceHistory(gomock.Any()).
			Return([]domain.PricePoint{
				{Symbol: "AAPL", Date: util.NewDate(2025, 6, 29), Close: 100},
				{Symbol: "AAPL", Date: util.NewDate(2025, 6, 30), Close: 110},
			}, nil).
			Times(1)

		ctx := context.Background()
		withChanges, prevDayChange, err := f.service.GetHoldingsWithChanges(ctx)
		require.NoError(t, err)
		require.Len(t, withChanges, 1)
		require.NotNil(t, withChanges[0].Change1D)
		require.NotNil(t, prevDayChange)

		again, _, err := f.service.GetHoldingsWithChanges(ctx)
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(withChanges, again))
	})
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func Test_analyticsServiceHandler_snapshotInvalidation(t *testing.T) {
	t.Run("refreshed holdings invalidate derived changes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		account := mock_repository.NewMockAccountRepository(ctrl)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)
		exchange := mock_repository.NewMockExchangeRateRepository(ctrl)

		clock := &fakeClock{now: time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)}
		svc := NewAnalyticsService(account, marketData, exchange, cache.New(clock))

		refreshed := testHoldings()
		refreshed[0].CurrentPrice = 120
		refreshed[0].CurrentMarketValue = 1200
		refreshed[0].CurrentMarketValueCAD = 1680
		gomock.InOrder(
			account.EXPECT().GetPortfolio(gomock.Any()).Return(testHoldings(), testMetrics(), nil),
			account.EXPECT().GetPortfolio(gomock.Any()).Return(refreshed, testMetrics(), nil),
		)
		// price history outlives the holdings TTL and is fetched once
		marketData.EXPECT().
			GetPriceHistory(gomock.Any()).
			Return([]domain.PricePoint{
				{Symbol: "AAPL", Date: util.NewDate(2025, 6, 29), Close: 100},
				{Symbol: "AAPL", Date: util.NewDate(2025, 6, 30), Close: 110},
			}, nil).
			Times(1)

		ctx := context.Background()
		withChanges, _, err := svc.GetHoldingsWithChanges(ctx)
		require.NoError(t, err)
		require.Equal(t, 1100.0, withChanges[0].CurrentMarketValue)

		// past the 5m holdings TTL, derived changes must follow the new snapshot
		clock.now = clock.now.Add(6 * time.Minute)

		withChanges, _, err = svc.GetHoldingsWithChanges(ctx)
		require.NoError(t, err)
		require.Equal(t, 1200.0, withChanges[0].CurrentMarketValue)
		require.NotNil(t, withChanges[0].Change1D)
		require.InDelta(t, 0.2, *withChanges[0].Change1D, 1e-9)
	})
}

func Test_analyticsServiceHandler_GetCorrelation(t *testing.T) {
	t.Run("single holding has no correlation", func(t *testing.T) {
		f := newServiceFixture(t)
		f.account.EXPECT().
			GetPortfolio(gomock.Any()).
			Return(testHoldings(), testMetrics(), nil).
			Times(1)
		f.marketData.EXPECT().
			GetPriceHistory(gomock.Any()).
			Return([]domain.PricePoint{
				{Symbol: "AAPL", Date: util.NewDate(2025, 6, 30), Close: 110},
			}, nil).
			Times(1)

		result, err := f.service.GetCorrelation(context.Background())
		require.NoError(t, err)
		require.Nil(t, result)
	})
}

func Test_analyticsServiceHandler_GetExchangeRate(t *testing.T) {
	t.Run("caches per pair", func(t *testing.T) {
		f := newServiceFixture(t)
		f.exchange.EXPECT().
			GetRateHistory(gomock.Any(), "USD/CAD").
			Return(&domain.ExchangeRateData{Pair: "USD/CAD", CurrentRate: 1.37}, nil).
			Times(1)

		ctx := context.Background()
		data, err := f.service.GetExchangeRate(ctx, "USD/CAD")
		require.NoError(t, err)
		require.Equal(t, 1.37, data.CurrentRate)

		data, err = f.service.GetExchangeRate(ctx, "USD/CAD")
		require.NoError(t, err)
		require.Equal(t, "USD/CAD", data.Pair)
	})
}

func Test_analyticsServiceHandler_AvailablePairs(t *testing.T) {
	f := newServiceFixture(t)
	f.exchange.EXPECT().
		AvailablePairs().
		Return([]string{"USD/CAD"})

	require.Equal(t, "", cmp.Diff([]string{"USD/CAD"}, f.service.AvailablePairs()))
}
