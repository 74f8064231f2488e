package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type correlationMatrixResponse struct {
	Symbols []string `json:"symbols"`
	// upper triangle masked to null; the heatmap only renders the lower half
	Values              [][]*float64 `json:"values"`
	WeightedCorrelation float64      `json:"weighted_correlation"`
}

func (m ApiHandler) getCorrelationMatrix(c *gin.Context) {
	result, err := m.AnalyticsService.GetCorrelation(c)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("unable to fetch data for correlation calculation: %w", err), c, 503)
		return
	}
	if result == nil {
		returnErrorJsonCode(
			fmt.Errorf("insufficient data to calculate correlation matrix: need at least 2 symbols with 30+ days of common data"),
			c,
			400,
		)
		return
	}

	c.JSON(200, correlationMatrixResponse{
		Symbols:             result.Symbols,
		Values:              result.MaskedValues(),
		WeightedCorrelation: result.PortfolioCorrelation,
	})
}
