package repository

import (
	"context"
	"fmt"
	"time"

	"portfoliodash/internal/domain"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// currency pairs the dashboard tracks, mapped to Yahoo tickers
var currencyPairOrder = []string{"USD/CAD", "CAD/CNY", "USD/CNY", "BTC/USD"}

var currencyPairTickers = map[string]string{
	"USD/CAD": "CAD=X",
	"CAD/CNY": "CADCNY=X",
	"USD/CNY": "CNY=X",
	"BTC/USD": "BTC-USD",
}

// ExchangeRateRepository fetches a year of daily exchange rate history for a
// currency pair.
type ExchangeRateRepository interface {
	GetRateHistory(ctx context.Context, pair string) (*domain.ExchangeRateData, error)
	AvailablePairs() []string
}

func NewExchangeRateRepository() ExchangeRateRepository {
	return &exchangeRateRepositoryHandler{}
}

type exchangeRateRepositoryHandler struct{}

func (h exchangeRateRepositoryHandler) AvailablePairs() []string {
	return append([]string{}, currencyPairOrder...)
}

func (h exchangeRateRepositoryHandler) GetRateHistory(ctx context.Context, pair string) (*domain.ExchangeRateData, error) {
	ticker, ok := currencyPairTickers[pair]
	if !ok {
		return nil, fmt.Errorf("unknown currency pair %s", pair)
	}

	now := time.Now()
	start := now.AddDate(-1, 0, 0)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   ticker,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	dates := []string{}
	closes := []float64{}
	for iter.Next() {
		bar := iter.Bar()
		dates = append(dates, time.Unix(int64(bar.Timestamp), 0).UTC().Format(time.DateOnly))
		closes = append(closes, bar.Close.InexactFloat64())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get rates for %s: %w", pair, err)
	}
	if len(closes) == 0 {
		return nil, fmt.Errorf("no rate data for %s", pair)
	}

	current := closes[len(closes)-1]
	dailyChangePct := 0.0
	if len(closes) >= 2 {
		dailyChangePct = (closes[len(closes)-1] - closes[len(closes)-2]) / closes[len(closes)-2] * 100
	}
	ytdChangePct := (current - closes[0]) / closes[0] * 100

	return &domain.ExchangeRateData{
		Pair:           pair,
		Dates:          dates,
		ClosePrices:    closes,
		CurrentRate:    current,
		DailyChangePct: dailyChangePct,
		YtdChangePct:   ytdChangePct,
	}, nil
}
