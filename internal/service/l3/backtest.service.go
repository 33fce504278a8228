package l3_service

import (
	"context"
	"fmt"
	"portfolioengine/internal/calculator"
	"portfolioengine/internal/domain"
	"portfolioengine/internal/logger"
	l2_service "portfolioengine/internal/service/l2"
	"time"
)

type BacktestInput struct {
	Spec             domain.PortfolioSpec
	Start            time.Time
	End              time.Time
	Strategy         domain.StrategyDefinition
	RebalanceMonthly bool
}

type BacktestOutput struct {
	Stats       domain.Stats
	EquityCurve domain.EquityCurve
	Drawdown    []domain.DrawdownPoint
	Trades      []domain.Trade
	// BuyAndHoldStats is the same portfolio held untouched, set when the
	// requested strategy trades
	BuyAndHoldStats *domain.Stats
}

type BacktestService interface {
	RunBacktest(ctx context.Context, in BacktestInput) (*BacktestOutput, error)
}

type backtestServiceHandler struct {
	PortfolioService l2_service.PortfolioService
	StatsOptions     calculator.StatsOptions
}

func NewBacktestService(portfolioService l2_service.PortfolioService) BacktestService {
	return backtestServiceHandler{
		PortfolioService: portfolioService,
		StatsOptions:     calculator.DefaultStatsOptions(),
	}
}

func (h backtestServiceHandler) RunBacktest(ctx context.Context, in BacktestInput) (*BacktestOutput, error) {
	log := logger.FromContext(ctx)
	profile, endProfile := domain.NewProfile()

	if !in.End.After(in.Start) {
		return nil, fmt.Errorf("start %s must be before end %s: %w", in.Start.Format(time.DateOnly), in.End.Format(time.DateOnly), domain.ErrInvalidParams)
	}

	profile.StartNewSpan("synthesize")
	series, err := h.PortfolioService.Synthesize(ctx, in.Spec, in.Start, in.End, in.RebalanceMonthly)
	if err != nil {
		return nil, fmt.Errorf("failed to build portfolio series: %w", err)
	}

	profile.StartNewSpan("strategy")
	curve, trades, err := l2_service.RunStrategy(*series, in.Strategy)
	if err != nil {
		return nil, fmt.Errorf("failed to run %s strategy: %w", in.Strategy.Kind, err)
	}

	profile.StartNewSpan("stats")
	out := &BacktestOutput{
		Stats:       calculator.CalculateStats(curve, trades, h.StatsOptions),
		EquityCurve: curve,
		Drawdown:    calculator.DrawdownSeries(curve),
		Trades:      trades,
	}

	if in.Strategy.Kind != domain.StrategyKind_BuyAndHold {
		holdCurve, holdTrades, err := l2_service.RunStrategy(*series, domain.StrategyDefinition{
			Kind:        domain.StrategyKind_BuyAndHold,
			Params:      domain.StrategyParams{Fee: in.Strategy.Params.Fee},
			InitialCash: in.Strategy.InitialCash,
		})
		if err != nil {
			log.Warnf("failed to run buy and hold comparison: %s", err.Error())
		} else {
			holdStats := calculator.CalculateStats(holdCurve, holdTrades, h.StatsOptions)
			out.BuyAndHoldStats = &holdStats
		}
	}

	endProfile()
	log.Infow("completed backtest",
		"strategy", in.Strategy.Kind,
		"bars", series.Len(),
		"trades", out.Stats.TradeCount,
		"spansMs", profile.ElapsedByName(),
		"totalMs", *profile.TotalMs,
	)

	return out, nil
}
