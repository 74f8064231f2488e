package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Holding is one position in the portfolio, snapshotted at fetch time.
// Market values are in the holding's local currency unless the field name
// says otherwise.
type Holding struct {
	Symbol                string  `json:"symbol"`
	Quantity              float64 `json:"quantity"`
	Currency              string  `json:"currency"`
	CurrentPrice          float64 `json:"current_price"`
	CurrentMarketValue    float64 `json:"current_market_value"`
	CurrentMarketValueCAD float64 `json:"current_market_value_CAD"`
	Percentage            float64 `json:"percentage"`
}

// PortfolioMetrics mirrors the metrics blob from the account data provider.
// Allocations come as percent strings like "12.5%" - that encoding is part of
// the provider contract, so we keep the raw strings and parse on demand.
type PortfolioMetrics struct {
	Symbols             []string `json:"Symbols"`
	Allocations         []string `json:"Allocations"`
	TotalMarketValueCAD float64  `json:"Total Market Value (CAD)"`
	CumulativeReturn    float64  `json:"Cumulative Return"`
	AvgDailyReturn      float64  `json:"Average Daily Return"`
	SharpeRatio         float64  `json:"Sharpe Ratio"`
}

// ParseAllocation converts "12.5%" to 12.5.
func ParseAllocation(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse allocation %q: %w", s, err)
	}
	return v, nil
}

func (m PortfolioMetrics) AllocationBySymbol() (map[string]float64, error) {
	if len(m.Symbols) != len(m.Allocations) {
		return nil, fmt.Errorf("metrics have %d symbols but %d allocations", len(m.Symbols), len(m.Allocations))
	}
	out := map[string]float64{}
	for i, symbol := range m.Symbols {
		v, err := ParseAllocation(m.Allocations[i])
		if err != nil {
			return nil, err
		}
		out[symbol] = v
	}
	return out, nil
}
