package api

import (
	"fmt"

	"portfoliodash/internal/logger"

	"github.com/gin-gonic/gin"
)

type portfolioOverviewResponse struct {
	TotalValueCAD       float64  `json:"total_value_cad"`
	CumulativeReturn    float64  `json:"cumulative_return"`
	AvgDailyReturn      float64  `json:"avg_daily_return"`
	SharpeRatio         float64  `json:"sharpe_ratio"`
	WeightedCorrelation *float64 `json:"weighted_correlation"`
	PrevDayChange       *float64 `json:"prev_day_change"`
}

func (m ApiHandler) getPortfolioOverview(c *gin.Context) {
	_, metrics, err := m.AnalyticsService.GetPortfolio(c)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("unable to fetch portfolio data: %w", err), c, 503)
		return
	}

	out := portfolioOverviewResponse{
		TotalValueCAD:    metrics.TotalMarketValueCAD,
		CumulativeReturn: metrics.CumulativeReturn,
		AvgDailyReturn:   metrics.AvgDailyReturn,
		SharpeRatio:      metrics.SharpeRatio,
	}

	// both of these degrade to "no value" rather than failing the overview
	correlation, err := m.AnalyticsService.GetCorrelation(c)
	if err != nil {
		logger.FromContext(c).Warnf("failed to compute correlation for overview: %s", err.Error())
	} else if correlation != nil {
		out.WeightedCorrelation = &correlation.PortfolioCorrelation
	}

	_, prevDayChange, err := m.AnalyticsService.GetHoldingsWithChanges(c)
	if err != nil {
		logger.FromContext(c).Warnf("failed to compute changes for overview: %s", err.Error())
	} else {
		out.PrevDayChange = prevDayChange
	}

	c.JSON(200, out)
}

type allocationItem struct {
	Symbol         string  `json:"symbol"`
	MarketValueCAD float64 `json:"market_value_cad"`
	Percentage     float64 `json:"percentage"`
	Currency       string  `json:"currency"`
	CurrentPrice   float64 `json:"current_price"`
}

type allocationResponse struct {
	Items         []allocationItem `json:"items"`
	TotalValueCAD float64          `json:"total_value_cad"`
}

func (m ApiHandler) getPortfolioAllocation(c *gin.Context) {
	holdings, _, err := m.AnalyticsService.GetPortfolio(c)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("unable to fetch holdings data: %w", err), c, 503)
		return
	}

	out := allocationResponse{Items: []allocationItem{}}
	for _, h := range holdings {
		out.TotalValueCAD += h.CurrentMarketValueCAD
		out.Items = append(out.Items, allocationItem{
			Symbol:         h.Symbol,
			MarketValueCAD: h.CurrentMarketValueCAD,
			Percentage:     h.Percentage,
			Currency:       h.Currency,
			CurrentPrice:   h.CurrentPrice,
		})
	}

	c.JSON(200, out)
}
