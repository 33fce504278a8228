package api

import (
	"fmt"
	"portfolioengine/internal/logger"
	"time"

	"github.com/gin-gonic/gin"
)

type refreshPricesRequest struct {
	Symbols []string `json:"symbols"`
	Start   string   `json:"start"`
	End     string   `json:"end"`
}

type refreshPricesResponse struct {
	Message string            `json:"message"`
	Failed  map[string]string `json:"failed"`
}

func (m ApiHandler) refreshPrices(c *gin.Context) {
	lg := logger.FromContext(c.Request.Context())

	var requestBody refreshPricesRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	end := time.Now().UTC()
	if requestBody.End != "" {
		parsed, err := time.Parse(time.DateOnly, requestBody.End)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		end = parsed
	}
	start := end.AddDate(-1, 0, 0)
	if requestBody.Start != "" {
		parsed, err := time.Parse(time.DateOnly, requestBody.Start)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		start = parsed
	}

	symbols := requestBody.Symbols
	if len(symbols) == 0 {
		symbols = []string{m.Benchmark}
	}

	failures, err := m.PriceService.RefreshPrices(c.Request.Context(), symbols, start, end)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := refreshPricesResponse{
		Message: "ok",
		Failed:  map[string]string{},
	}
	for symbol, e := range failures {
		out.Failed[symbol] = e.Error()
	}
	lg.Infow("refreshed prices", "symbols", len(symbols), "failed", len(failures))

	c.JSON(200, out)
}
