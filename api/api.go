package api

import (
	"fmt"
	"time"

	"portfoliodash/internal/logger"
	"portfoliodash/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	AnalyticsService service.AnalyticsService
	Logger           *zap.SugaredLogger
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to the portfolio dashboard api"})
	})
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.GET("/holdings", m.getHoldings)
	v1.GET("/holdings/top/:n", m.getTopHoldings)
	v1.GET("/portfolio/overview", m.getPortfolioOverview)
	v1.GET("/portfolio/allocation", m.getPortfolioAllocation)
	v1.GET("/performance/symbols", m.getAvailableSymbols)
	v1.GET("/performance/:symbol", m.getSymbolPerformance)
	v1.GET("/correlation/matrix", m.getCorrelationMatrix)
	v1.GET("/benchmark/comparison", m.getBenchmarkComparison)
	v1.GET("/exchange-rates", m.getAvailablePairs)
	v1.GET("/exchange-rates/:base/:quote", m.getExchangeRate)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c).Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	log := m.Logger.With(
		"request_id", uuid.NewString(),
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
	)
	ctx.Set(logger.ContextKey, log)

	start := time.Now().UTC()
	ctx.Next()

	log.Infow("request completed",
		"status", ctx.Writer.Status(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
