package internal

import (
	"sort"
	"time"

	"portfoliodash/internal/domain"
)

// PriceTable is a date-indexed view over closing prices, one column per
// symbol. Dates are YYYY-MM-DD strings, so lexicographic order is calendar
// order.
type PriceTable struct {
	Dates   []string
	Symbols []string

	closes map[string]map[string]float64
}

// NewPriceTable pivots flat price rows into the table. The date index is the
// union of all observed dates; individual columns may have gaps. Duplicate
// (symbol, date) rows keep the last value.
func NewPriceTable(rows []domain.PricePoint) *PriceTable {
	closes := map[string]map[string]float64{}
	dateSet := map[string]struct{}{}
	for _, row := range rows {
		d := row.Date.Format(time.DateOnly)
		if _, ok := closes[row.Symbol]; !ok {
			closes[row.Symbol] = map[string]float64{}
		}
		closes[row.Symbol][d] = row.Close
		dateSet[d] = struct{}{}
	}

	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	symbols := make([]string, 0, len(closes))
	for s := range closes {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	return &PriceTable{
		Dates:   dates,
		Symbols: symbols,
		closes:  closes,
	}
}

func (t *PriceTable) Close(symbol, date string) (float64, bool) {
	column, ok := t.closes[symbol]
	if !ok {
		return 0, false
	}
	price, ok := column[date]
	return price, ok
}

func (t *PriceTable) HasSymbol(symbol string) bool {
	_, ok := t.closes[symbol]
	return ok
}

// Fill forward-fills then backward-fills every column across the full date
// index, so leading gaps borrow the first known value and interior/trailing
// gaps borrow the prior one. Only the benchmark normalization wants a filled
// table. Correlation must instead restrict to CommonDates - filling would
// fabricate correlated movement between series that never traded together.
func (t *PriceTable) Fill() {
	for _, symbol := range t.Symbols {
		column := t.closes[symbol]

		var last *float64
		for _, d := range t.Dates {
			if price, ok := column[d]; ok {
				price := price
				last = &price
			} else if last != nil {
				column[d] = *last
			}
		}

		last = nil
		for i := len(t.Dates) - 1; i >= 0; i-- {
			d := t.Dates[i]
			if price, ok := column[d]; ok {
				price := price
				last = &price
			} else if last != nil {
				column[d] = *last
			}
		}
	}
}

// CommonDates returns, in ascending order, the dates on which every one of
// the given symbols has an actual observation.
func (t *PriceTable) CommonDates(symbols []string) []string {
	out := []string{}
	for _, d := range t.Dates {
		common := true
		for _, symbol := range symbols {
			if _, ok := t.closes[symbol][d]; !ok {
				common = false
				break
			}
		}
		if common {
			out = append(out, d)
		}
	}
	return out
}
