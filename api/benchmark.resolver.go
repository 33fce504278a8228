package api

import (
	"fmt"
	"portfolioengine/internal/calculator"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type benchmarkResponse map[string]float64

type benchmarkRequest struct {
	Symbol      string `json:"symbol"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Granularity string `json:"granularity"`
}

func (m ApiHandler) benchmark(c *gin.Context) {
	var requestBody benchmarkRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	start, err := time.Parse(time.DateOnly, requestBody.Start)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	end, err := time.Parse(time.DateOnly, requestBody.End)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	granularity := time.Hour * 24
	if strings.EqualFold(requestBody.Granularity, "weekly") {
		granularity *= 7
	} else if strings.EqualFold(requestBody.Granularity, "monthly") {
		granularity *= 30
	}

	symbol := requestBody.Symbol
	if symbol == "" {
		symbol = m.Benchmark
	}

	series, err := m.PriceService.FetchBenchmark(c.Request.Context(), symbol, start, end)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := benchmarkResponse{}
	for k, v := range calculator.IntraPeriodChange(*series, end, granularity) {
		out[k.Format(time.DateOnly)] = v
	}

	c.JSON(200, out)
}
