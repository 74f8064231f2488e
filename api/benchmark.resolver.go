package api

import (
	"fmt"

	"portfoliodash/internal/service"

	"github.com/gin-gonic/gin"
)

type benchmarkComparisonResponse struct {
	Dates     []string  `json:"dates"`
	Portfolio []float64 `json:"portfolio"`
	Qqq       []float64 `json:"qqq"`
	Voo       []float64 `json:"voo"`
}

func (m ApiHandler) getBenchmarkComparison(c *gin.Context) {
	series, err := m.AnalyticsService.GetBenchmark(c)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("unable to fetch data for benchmark comparison: %w", err), c, 503)
		return
	}
	if series == nil {
		returnErrorJsonCode(
			fmt.Errorf("unable to calculate benchmark comparison: ensure %s and %s are in the performance data", service.BenchmarkSymbols[0], service.BenchmarkSymbols[1]),
			c,
			400,
		)
		return
	}

	out := benchmarkComparisonResponse{
		Dates:     series.Dates,
		Portfolio: series.Portfolio,
		Qqq:       []float64{0},
		Voo:       []float64{0},
	}
	if values, ok := series.BenchmarkValues(service.BenchmarkSymbols[0]); ok {
		out.Qqq = values
	}
	if values, ok := series.BenchmarkValues(service.BenchmarkSymbols[1]); ok {
		out.Voo = values
	}

	c.JSON(200, out)
}
