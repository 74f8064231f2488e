package domain

// ChangeRecord holds market value change ratios per lookback horizon. A nil
// entry means there was no price history at or before that horizon's target
// date - never coerced to zero, since zero is a real change value.
// Values are plain ratios, not multiplied by 100.
type ChangeRecord struct {
	Change1D *float64 `json:"change_1d"`
	Change1W *float64 `json:"change_1w"`
	Change1M *float64 `json:"change_1m"`
	Change6M *float64 `json:"change_6m"`
	Change1Y *float64 `json:"change_1y"`
}

type HoldingChanges struct {
	Holding
	ChangeRecord
}

// BenchmarkSeries is the normalized comparison data. Portfolio and each
// benchmark's values are aligned by index with Dates.
type BenchmarkSeries struct {
	Dates      []string
	Portfolio  []float64
	Benchmarks []BenchmarkValues
}

type BenchmarkValues struct {
	Symbol string
	Values []float64
}

func (s BenchmarkSeries) BenchmarkValues(symbol string) ([]float64, bool) {
	for _, b := range s.Benchmarks {
		if b.Symbol == symbol {
			return b.Values, true
		}
	}
	return nil, false
}

type ExchangeRateData struct {
	Pair           string    `json:"pair"`
	Dates          []string  `json:"dates"`
	ClosePrices    []float64 `json:"close_prices"`
	CurrentRate    float64   `json:"current_rate"`
	DailyChangePct float64   `json:"daily_change_pct"`
	YtdChangePct   float64   `json:"ytd_change_pct"`
}
