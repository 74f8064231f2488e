package api

import (
	"fmt"
	"slices"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getAvailablePairs(c *gin.Context) {
	c.JSON(200, m.AnalyticsService.AvailablePairs())
}

func (m ApiHandler) getExchangeRate(c *gin.Context) {
	pair := c.Param("base") + "/" + c.Param("quote")

	available := m.AnalyticsService.AvailablePairs()
	if !slices.Contains(available, pair) {
		returnErrorJsonCode(fmt.Errorf("invalid currency pair %s, available pairs: %v", pair, available), c, 400)
		return
	}

	data, err := m.AnalyticsService.GetExchangeRate(c, pair)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("unable to fetch exchange rate data for %s: %w", pair, err), c, 503)
		return
	}

	c.JSON(200, data)
}
