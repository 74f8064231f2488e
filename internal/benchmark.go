package internal

import (
	"portfoliodash/internal/domain"
)

// ComputeBenchmark rebases portfolio and benchmark price series onto a common
// chart. Each benchmark is rebased so its first date equals 100. The
// portfolio series is the weighted sum of rebased price ratios times the raw
// allocation numbers - deliberately NOT divided by total allocation, so it
// only lands near 100 because allocations sum to ~100. A nil result means no
// benchmark symbol was present in the price data.
func ComputeBenchmark(rows []domain.PricePoint, metrics *domain.PortfolioMetrics, benchmarkSymbols []string) (*domain.BenchmarkSeries, error) {
	if len(rows) == 0 || metrics == nil {
		return nil, nil
	}

	allocations, err := metrics.AllocationBySymbol()
	if err != nil {
		return nil, err
	}

	table := NewPriceTable(rows)
	table.Fill()
	if len(table.Dates) == 0 {
		return nil, nil
	}
	first := table.Dates[0]

	// only symbols carried by both the allocation map and the price data
	available := []string{}
	for _, symbol := range table.Symbols {
		if _, ok := allocations[symbol]; ok {
			available = append(available, symbol)
		}
	}

	portfolio := make([]float64, len(table.Dates))
	for _, symbol := range available {
		base, _ := table.Close(symbol, first)
		for i, d := range table.Dates {
			price, _ := table.Close(symbol, d)
			portfolio[i] += price / base * allocations[symbol]
		}
	}

	benchmarks := []domain.BenchmarkValues{}
	for _, symbol := range benchmarkSymbols {
		if !table.HasSymbol(symbol) {
			continue
		}
		base, _ := table.Close(symbol, first)
		values := make([]float64, len(table.Dates))
		for i, d := range table.Dates {
			price, _ := table.Close(symbol, d)
			values[i] = price / base * 100
		}
		benchmarks = append(benchmarks, domain.BenchmarkValues{Symbol: symbol, Values: values})
	}
	if len(benchmarks) == 0 {
		return nil, nil
	}

	return &domain.BenchmarkSeries{
		Dates:      append([]string{}, table.Dates...),
		Portfolio:  portfolio,
		Benchmarks: benchmarks,
	}, nil
}
