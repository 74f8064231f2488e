package api

import (
	"fmt"
	"sort"
	"time"

	"portfoliodash/internal/domain"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getAvailableSymbols(c *gin.Context) {
	rows, err := m.AnalyticsService.GetPriceHistory(c)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("unable to fetch performance data: %w", err), c, 503)
		return
	}

	seen := map[string]struct{}{}
	symbols := []string{}
	for _, row := range rows {
		if _, ok := seen[row.Symbol]; !ok {
			seen[row.Symbol] = struct{}{}
			symbols = append(symbols, row.Symbol)
		}
	}
	sort.Strings(symbols)

	c.JSON(200, symbols)
}

type candlestickResponse struct {
	Symbol string    `json:"symbol"`
	Dates  []string  `json:"dates"`
	Open   []float64 `json:"open"`
	High   []float64 `json:"high"`
	Low    []float64 `json:"low"`
	Close  []float64 `json:"close"`
	Volume []int64   `json:"volume"`
}

func (m ApiHandler) getSymbolPerformance(c *gin.Context) {
	symbol := c.Param("symbol")

	rows, err := m.AnalyticsService.GetPriceHistory(c)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("unable to fetch performance data: %w", err), c, 503)
		return
	}

	symbolRows := []domain.PricePoint{}
	for _, row := range rows {
		if row.Symbol == symbol {
			symbolRows = append(symbolRows, row)
		}
	}
	if len(symbolRows) == 0 {
		returnErrorJsonCode(fmt.Errorf("no performance data found for symbol: %s", symbol), c, 404)
		return
	}
	sort.Slice(symbolRows, func(i, j int) bool {
		return symbolRows[i].Date.Before(symbolRows[j].Date)
	})

	out := candlestickResponse{Symbol: symbol}
	for _, row := range symbolRows {
		out.Dates = append(out.Dates, row.Date.Format(time.DateOnly))
		out.Open = append(out.Open, row.Open)
		out.High = append(out.High, row.High)
		out.Low = append(out.Low, row.Low)
		out.Close = append(out.Close, row.Close)
		out.Volume = append(out.Volume, row.Volume)
	}

	c.JSON(200, out)
}
