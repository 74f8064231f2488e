package api

import (
	"fmt"
	"sort"
	"strconv"

	"portfoliodash/internal/domain"

	"github.com/gin-gonic/gin"
)

type holdingItem struct {
	Symbol         string   `json:"symbol"`
	Currency       string   `json:"currency"`
	Quantity       int64    `json:"quantity"`
	CurrentPrice   float64  `json:"current_price"`
	MarketValue    float64  `json:"market_value"`
	MarketValueCAD float64  `json:"market_value_cad"`
	PortfolioPct   float64  `json:"portfolio_pct"`
	Change1D       *float64 `json:"change_1d"`
	Change1W       *float64 `json:"change_1w"`
	Change1M       *float64 `json:"change_1m"`
	Change6M       *float64 `json:"change_6m"`
	Change1Y       *float64 `json:"change_1y"`
}

type holdingsResponse struct {
	Holdings         []holdingItem `json:"holdings"`
	PrevDayChangePct *float64      `json:"prev_day_change_pct"`
}

func toHoldingItem(h domain.HoldingChanges) holdingItem {
	return holdingItem{
		Symbol:         h.Symbol,
		Currency:       h.Currency,
		Quantity:       int64(h.Quantity),
		CurrentPrice:   h.CurrentPrice,
		MarketValue:    h.CurrentMarketValue,
		MarketValueCAD: h.CurrentMarketValueCAD,
		PortfolioPct:   h.Percentage,
		Change1D:       h.Change1D,
		Change1W:       h.Change1W,
		Change1M:       h.Change1M,
		Change6M:       h.Change6M,
		Change1Y:       h.Change1Y,
	}
}

func (m ApiHandler) getHoldings(c *gin.Context) {
	withChanges, prevDayChange, err := m.AnalyticsService.GetHoldingsWithChanges(c)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("unable to fetch holdings data: %w", err), c, 503)
		return
	}

	out := holdingsResponse{
		Holdings:         []holdingItem{},
		PrevDayChangePct: prevDayChange,
	}
	for _, h := range withChanges {
		out.Holdings = append(out.Holdings, toHoldingItem(h))
	}

	c.JSON(200, out)
}

func (m ApiHandler) getTopHoldings(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil || n < 1 {
		returnErrorJsonCode(fmt.Errorf("invalid top holdings count %q", c.Param("n")), c, 400)
		return
	}

	withChanges, prevDayChange, err := m.AnalyticsService.GetHoldingsWithChanges(c)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("unable to fetch holdings data: %w", err), c, 503)
		return
	}

	// sort a copy - the slice is shared with the cache
	withChanges = append([]domain.HoldingChanges{}, withChanges...)
	sort.SliceStable(withChanges, func(i, j int) bool {
		return withChanges[i].CurrentMarketValueCAD > withChanges[j].CurrentMarketValueCAD
	})
	if len(withChanges) > n {
		withChanges = withChanges[:n]
	}

	out := holdingsResponse{
		Holdings:         []holdingItem{},
		PrevDayChangePct: prevDayChange,
	}
	for _, h := range withChanges {
		out.Holdings = append(out.Holdings, toHoldingItem(h))
	}

	c.JSON(200, out)
}
