package api

import (
	"database/sql"
	"errors"
	"fmt"
	"portfolioengine/internal/domain"
	"portfolioengine/internal/logger"
	l1_service "portfolioengine/internal/service/l1"
	l3_service "portfolioengine/internal/service/l3"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db              *sql.DB
	BacktestService l3_service.BacktestService
	RiskService     l3_service.RiskService
	PriceService    l1_service.PriceService
	Benchmark       string
	JwtDecodeToken  string
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(requestLoggerMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "portfolio engine"})
	})
	router.POST("/backtest", m.backtest)
	router.POST("/benchmark", m.benchmark)
	router.POST("/refreshPrices", m.refreshPrices)
	router.GET("/risk-summary", authMiddleware(m.JwtDecodeToken), m.riskSummary)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

// engineErrorCode maps errors caused by the request's inputs to 422
func engineErrorCode(err error) int {
	for _, target := range []error{
		domain.ErrNoData,
		domain.ErrDataUnavailable,
		domain.ErrInsufficientData,
		domain.ErrEmptyPortfolio,
		domain.ErrInvalidParams,
	} {
		if errors.Is(err, target) {
			return 422
		}
	}
	return 500
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	lg := logger.FromContext(c.Request.Context())
	if code >= 500 {
		lg.Errorf("request failed: %s", err.Error())
	} else {
		lg.Warnf("request rejected: %s", err.Error())
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// requestLoggerMiddleware tags each request with an id and stores a request
// scoped logger in the request context
func requestLoggerMiddleware(c *gin.Context) {
	requestID := uuid.New()
	c.Set("requestID", requestID.String())

	lg := zap.S().With(
		"requestID", requestID.String(),
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
	)
	c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), lg))

	start := time.Now()
	c.Next()

	lg.Infow("handled request",
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
