package internal

import (
	"sort"
	"time"

	"portfoliodash/internal/domain"
	"portfoliodash/internal/util"

	"github.com/shopspring/decimal"
)

// ComputeChanges computes each holding's market value change at the five
// lookback horizons, plus the portfolio-level previous day change in CAD
// across all holdings. Horizons with no price row at or before the target
// date stay nil. The reference date is the latest date present in the price
// rows, not the wall clock - market data lags and the data's own notion of
// "latest" is the reliable one.
func ComputeChanges(holdings []domain.Holding, rows []domain.PricePoint) ([]domain.HoldingChanges, *float64) {
	if len(holdings) == 0 || len(rows) == 0 {
		out := make([]domain.HoldingChanges, 0, len(holdings))
		for _, h := range holdings {
			out = append(out, domain.HoldingChanges{Holding: h})
		}
		return out, nil
	}

	rowsBySymbol := map[string][]domain.PricePoint{}
	var latest time.Time
	for _, row := range rows {
		rowsBySymbol[row.Symbol] = append(rowsBySymbol[row.Symbol], row)
		if row.Date.After(latest) {
			latest = row.Date
		}
	}
	// most recent first, so closest-at-or-before is the first match
	for symbol := range rowsBySymbol {
		sort.Slice(rowsBySymbol[symbol], func(i, j int) bool {
			return rowsBySymbol[symbol][i].Date.After(rowsBySymbol[symbol][j].Date)
		})
	}

	prevDayTarget := latest.AddDate(0, 0, -1)
	weekTarget := latest.AddDate(0, 0, -7)
	monthTarget := latest.AddDate(0, 0, -30)
	sixMonthTarget := latest.AddDate(0, 0, -180)
	yearTarget := latest.AddDate(0, 0, -365)

	cadExchangeRate := sampleCADExchangeRate(holdings)

	currentTotalCAD := decimal.Zero
	prevTotalCAD := decimal.Zero

	out := make([]domain.HoldingChanges, 0, len(holdings))
	for _, h := range holdings {
		currentTotalCAD = currentTotalCAD.Add(decimal.NewFromFloat(h.CurrentMarketValueCAD))

		record := domain.ChangeRecord{}
		symbolRows := rowsBySymbol[h.Symbol]
		if len(symbolRows) == 0 {
			out = append(out, domain.HoldingChanges{Holding: h, ChangeRecord: record})
			continue
		}

		quantity := decimal.NewFromFloat(h.Quantity)
		currentMV := decimal.NewFromFloat(h.CurrentMarketValue)

		// the provider may not have a row on the reference date itself;
		// fall back to the most recent one
		latestRow := symbolRows[0]
		for _, row := range symbolRows {
			if row.Date.Equal(latest) {
				latestRow = row
				break
			}
		}

		if prevRow := closestAtOrBefore(symbolRows, prevDayTarget); prevRow != nil {
			// when the live price is just a copy of the latest stored
			// close, the latest row itself serves as "previous" so the
			// day's move isn't counted twice
			prevPrice := prevRow.Close
			if h.CurrentPrice == latestRow.Close {
				prevPrice = latestRow.Close
			}
			prevMV := decimal.NewFromFloat(prevPrice).Mul(quantity)
			record.Change1D = changeRatio(currentMV, prevMV)

			prevMVCAD := prevMV
			if h.Currency == "USD" {
				prevMVCAD = prevMV.Mul(cadExchangeRate)
			}
			prevTotalCAD = prevTotalCAD.Add(prevMVCAD)
		}
		if row := closestAtOrBefore(symbolRows, weekTarget); row != nil {
			record.Change1W = changeRatio(currentMV, decimal.NewFromFloat(row.Close).Mul(quantity))
		}
		if row := closestAtOrBefore(symbolRows, monthTarget); row != nil {
			record.Change1M = changeRatio(currentMV, decimal.NewFromFloat(row.Close).Mul(quantity))
		}
		if row := closestAtOrBefore(symbolRows, sixMonthTarget); row != nil {
			record.Change6M = changeRatio(currentMV, decimal.NewFromFloat(row.Close).Mul(quantity))
		}
		if row := closestAtOrBefore(symbolRows, yearTarget); row != nil {
			record.Change1Y = changeRatio(currentMV, decimal.NewFromFloat(row.Close).Mul(quantity))
		}

		out = append(out, domain.HoldingChanges{Holding: h, ChangeRecord: record})
	}

	portfolioChange := changeRatio(currentTotalCAD, prevTotalCAD)
	return out, portfolioChange
}

// changeRatio is (current - previous) / previous as a plain ratio,
// zero-guarded: a non-positive denominator yields 0, not a division failure.
func changeRatio(current, previous decimal.Decimal) *float64 {
	if !previous.IsPositive() {
		zero := 0.0
		return &zero
	}
	ratio := current.Sub(previous).Div(previous).InexactFloat64()
	return &ratio
}

// closestAtOrBefore expects rows sorted most recent first and returns the
// first row dated at or before target, or nil.
func closestAtOrBefore(rowsDesc []domain.PricePoint, target time.Time) *domain.PricePoint {
	for i := range rowsDesc {
		if util.DateLte(rowsDesc[i].Date, target) {
			return &rowsDesc[i]
		}
	}
	return nil
}

// sampleCADExchangeRate derives USD->CAD from any one USD holding's CAD and
// local market values. With no USD holdings the rate is 1.
func sampleCADExchangeRate(holdings []domain.Holding) decimal.Decimal {
	for _, h := range holdings {
		if h.Currency == "USD" && h.CurrentMarketValue > 0 {
			return decimal.NewFromFloat(h.CurrentMarketValueCAD).
				Div(decimal.NewFromFloat(h.CurrentMarketValue))
		}
	}
	return decimal.NewFromInt(1)
}
