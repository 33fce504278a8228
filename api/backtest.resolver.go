package api

import (
	"fmt"
	"portfolioengine/internal/domain"
	l3_service "portfolioengine/internal/service/l3"
	"time"

	"github.com/gin-gonic/gin"
)

type BacktestRequest struct {
	Tickers          []string           `json:"tickers"`
	Shares           map[string]float64 `json:"shares"`
	Weights          map[string]float64 `json:"weights"`
	Start            string             `json:"start"`
	End              string             `json:"end"`
	Strategy         string             `json:"strategy"`
	FastWindow       *int               `json:"fastWindow"`
	SlowWindow       *int               `json:"slowWindow"`
	InitialCash      float64            `json:"initialCash"`
	RebalanceMonthly bool               `json:"rebalanceMonthly"`
	Fee              float64            `json:"fee"`
}

type StatsResponse struct {
	TotalReturnPct      *float64 `json:"totalReturnPct"`
	AnnualizedReturnPct *float64 `json:"annualizedReturnPct"`
	SharpeRatio         *float64 `json:"sharpeRatio"`
	MaxDrawdownPct      *float64 `json:"maxDrawdownPct"`
	TradeCount          int      `json:"tradeCount"`
	WinRatePct          *float64 `json:"winRatePct"`
}

type EquityPointResponse struct {
	Date     string  `json:"date"`
	Equity   float64 `json:"equity"`
	Drawdown float64 `json:"drawdown"`
}

type TradeResponse struct {
	EntryDate  string   `json:"entryDate"`
	EntryPrice float64  `json:"entryPrice"`
	ExitDate   *string  `json:"exitDate"`
	ExitPrice  *float64 `json:"exitPrice"`
	Units      float64  `json:"units"`
	PnL        *float64 `json:"pnl"`
	Status     string   `json:"status"`
}

type BacktestResponse struct {
	Strategy        string                `json:"strategy"`
	Stats           StatsResponse         `json:"stats"`
	BuyAndHoldStats *StatsResponse        `json:"buyAndHoldStats,omitempty"`
	EquityCurve     []EquityPointResponse `json:"equityCurve"`
	Trades          []TradeResponse       `json:"trades"`
}

func (r BacktestRequest) toInput() (*l3_service.BacktestInput, error) {
	start, err := time.Parse(time.DateOnly, r.Start)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := time.Parse(time.DateOnly, r.End)
	if err != nil {
		return nil, fmt.Errorf("failed to parse end date: %w", err)
	}

	params := domain.DefaultStrategyParams()
	if r.FastWindow != nil {
		params.FastWindow = *r.FastWindow
	}
	if r.SlowWindow != nil {
		params.SlowWindow = *r.SlowWindow
	}
	params.Fee = r.Fee

	return &l3_service.BacktestInput{
		Spec: domain.PortfolioSpec{
			Shares:  r.Shares,
			Weights: r.Weights,
			Symbols: r.Tickers,
		},
		Start: start,
		End:   end,
		Strategy: domain.StrategyDefinition{
			Kind:        domain.ParseStrategyKind(r.Strategy),
			Params:      params,
			InitialCash: r.InitialCash,
		},
		RebalanceMonthly: r.RebalanceMonthly,
	}, nil
}

func statsResponse(stats domain.Stats) StatsResponse {
	return StatsResponse{
		TotalReturnPct:      stats.TotalReturnPct,
		AnnualizedReturnPct: stats.AnnualizedReturnPct,
		SharpeRatio:         stats.SharpeRatio,
		MaxDrawdownPct:      stats.MaxDrawdownPct,
		TradeCount:          stats.TradeCount,
		WinRatePct:          stats.WinRatePct,
	}
}

func backtestResponse(kind domain.StrategyKind, out l3_service.BacktestOutput) BacktestResponse {
	response := BacktestResponse{
		Strategy:    string(kind),
		Stats:       statsResponse(out.Stats),
		EquityCurve: []EquityPointResponse{},
		Trades:      []TradeResponse{},
	}
	if out.BuyAndHoldStats != nil {
		holdStats := statsResponse(*out.BuyAndHoldStats)
		response.BuyAndHoldStats = &holdStats
	}

	for i, p := range out.EquityCurve {
		point := EquityPointResponse{
			Date:   p.Date.Format(time.DateOnly),
			Equity: p.Equity,
		}
		if i < len(out.Drawdown) {
			point.Drawdown = out.Drawdown[i].Drawdown
		}
		response.EquityCurve = append(response.EquityCurve, point)
	}

	for _, t := range out.Trades {
		trade := TradeResponse{
			EntryDate:  t.EntryDate.Format(time.DateOnly),
			EntryPrice: t.EntryPrice,
			ExitPrice:  t.ExitPrice,
			Units:      t.Units,
			PnL:        t.PnL,
			Status:     string(t.Status),
		}
		if t.ExitDate != nil {
			exitDate := t.ExitDate.Format(time.DateOnly)
			trade.ExitDate = &exitDate
		}
		response.Trades = append(response.Trades, trade)
	}

	return response
}

func (m ApiHandler) backtest(c *gin.Context) {
	var requestBody BacktestRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	input, err := requestBody.toInput()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	out, err := m.BacktestService.RunBacktest(c.Request.Context(), *input)
	if err != nil {
		returnErrorJsonCode(err, c, engineErrorCode(err))
		return
	}

	c.JSON(200, backtestResponse(input.Strategy.Kind, *out))
}
