package internal

import (
	"fmt"
	"math"
	"time"

	"portfoliodash/internal/domain"

	"github.com/montanaflynn/stats"
)

const (
	// trailing window, anchored at the latest date across all price rows
	correlationWindowDays = 365
	// below this many common dates the correlation is undefined, not zero
	minCommonDates = 30
)

// CorrelationResult carries the plain and weighted correlation matrices over
// Symbols (row/column order matches), plus the portfolio-level scalar.
type CorrelationResult struct {
	Symbols              []string
	Matrix               [][]float64
	Weighted             [][]float64
	PortfolioCorrelation float64
}

// ComputeCorrelation computes pairwise Pearson correlation of daily returns
// across the portfolio's symbols, then reduces it to a single scalar weighted
// by allocation. A nil result means insufficient data: fewer than 2 portfolio
// symbols with prices in the trailing year, or fewer than 30 dates common to
// all of them.
func ComputeCorrelation(holdings []domain.Holding, rows []domain.PricePoint) (*CorrelationResult, error) {
	if len(holdings) == 0 || len(rows) == 0 {
		return nil, nil
	}

	var latest time.Time
	for _, row := range rows {
		if row.Date.After(latest) {
			latest = row.Date
		}
	}
	windowStart := latest.AddDate(0, 0, -correlationWindowDays)

	windowed := []domain.PricePoint{}
	for _, row := range rows {
		if !row.Date.Before(windowStart) {
			windowed = append(windowed, row)
		}
	}

	table := NewPriceTable(windowed)

	seen := map[string]struct{}{}
	validSymbols := []string{}
	for _, h := range holdings {
		if _, ok := seen[h.Symbol]; ok {
			continue
		}
		seen[h.Symbol] = struct{}{}
		if table.HasSymbol(h.Symbol) {
			validSymbols = append(validSymbols, h.Symbol)
		}
	}
	if len(validSymbols) < 2 {
		return nil, nil
	}

	commonDates := table.CommonDates(validSymbols)
	if len(commonDates) < minCommonDates {
		return nil, nil
	}

	// simple day-over-day returns, first row dropped
	returnsBySymbol := map[string][]float64{}
	for _, symbol := range validSymbols {
		returns := make([]float64, 0, len(commonDates)-1)
		for i := 1; i < len(commonDates); i++ {
			curr, _ := table.Close(symbol, commonDates[i])
			prev, _ := table.Close(symbol, commonDates[i-1])
			returns = append(returns, (curr-prev)/prev)
		}
		returnsBySymbol[symbol] = returns
	}

	n := len(validSymbols)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			corr, err := stats.Pearson(returnsBySymbol[validSymbols[i]], returnsBySymbol[validSymbols[j]])
			if err != nil {
				return nil, fmt.Errorf("failed to compute correlation between %s and %s: %w", validSymbols[i], validSymbols[j], err)
			}
			matrix[i][j] = corr
			matrix[j][i] = corr
		}
	}

	// allocation weights renormalized over the valid symbols only; dropped
	// symbols don't participate at all
	weightBySymbol := map[string]float64{}
	for _, h := range holdings {
		if _, ok := weightBySymbol[h.Symbol]; ok {
			continue
		}
		weightBySymbol[h.Symbol] = h.Percentage / 100
	}
	totalWeight := 0.0
	for _, symbol := range validSymbols {
		totalWeight += weightBySymbol[symbol]
	}
	weights := make([]float64, n)
	for i, symbol := range validSymbols {
		weights[i] = weightBySymbol[symbol]
		if totalWeight > 0 {
			weights[i] /= totalWeight
		}
	}

	weighted := make([][]float64, n)
	portfolioCorrelation := 0.0
	for i := range weighted {
		weighted[i] = make([]float64, n)
		for j := range weighted[i] {
			weighted[i][j] = matrix[i][j] * weights[i] * weights[j]
			// diagonal included: self-correlation contributes weight^2,
			// reflecting concentration
			portfolioCorrelation += weighted[i][j]
		}
	}

	return &CorrelationResult{
		Symbols:              validSymbols,
		Matrix:               matrix,
		Weighted:             weighted,
		PortfolioCorrelation: portfolioCorrelation,
	}, nil
}

// MaskedValues renders the matrix with the strict upper triangle (column
// index > row index) nulled out and values rounded to 4 decimals - the shape
// the dashboard heatmap consumes.
func (r CorrelationResult) MaskedValues() [][]*float64 {
	values := make([][]*float64, len(r.Symbols))
	for i := range r.Symbols {
		values[i] = make([]*float64, len(r.Symbols))
		for j := range r.Symbols {
			if j > i {
				continue
			}
			rounded := math.Round(r.Matrix[i][j]*10000) / 10000
			values[i][j] = &rounded
		}
	}
	return values
}
