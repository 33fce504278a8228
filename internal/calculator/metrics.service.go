package calculator

import (
	"math"
	"portfolioengine/internal/domain"
	"portfolioengine/internal/util"
	"time"

	"github.com/montanaflynn/stats"
)

const (
	RiskFreeRate = 0.04
	TradingDays  = 252
)

type StatsOptions struct {
	RiskFreeRate   float64
	PeriodsPerYear int
}

func DefaultStatsOptions() StatsOptions {
	return StatsOptions{
		RiskFreeRate:   RiskFreeRate,
		PeriodsPerYear: TradingDays,
	}
}

// CalculateStats computes return and risk statistics for a strategy run.
// Undefined statistics are left nil, it never fails once a curve exists.
func CalculateStats(curve domain.EquityCurve, trades []domain.Trade, opts StatsOptions) domain.Stats {
	if opts.PeriodsPerYear <= 0 {
		opts.PeriodsPerYear = TradingDays
	}
	out := domain.Stats{}

	closed := 0
	wins := 0
	for _, t := range trades {
		if !t.IsClosed() {
			continue
		}
		closed++
		if t.PnL != nil && *t.PnL > 0 {
			wins++
		}
	}
	out.TradeCount = closed
	if closed > 0 {
		out.WinRatePct = util.FloatPointer(util.Round(100*float64(wins)/float64(closed), 2))
	}

	values := curve.Values()
	if len(values) == 0 {
		return out
	}

	if dd := MaxDrawdown(values); dd != nil {
		out.MaxDrawdownPct = util.FloatPointer(util.Round(*dd*100, 2))
	}

	if values[0] == 0 {
		return out
	}
	totalReturn := values[len(values)-1]/values[0] - 1
	out.TotalReturnPct = util.RoundPointer(util.FinitePointer(totalReturn*100), 2)

	returns := SimpleReturns(values)
	if len(returns) == 0 {
		return out
	}

	periods := float64(opts.PeriodsPerYear)
	annualized := math.Pow(1+totalReturn, periods/float64(len(returns))) - 1
	out.AnnualizedReturnPct = util.RoundPointer(util.FinitePointer(annualized*100), 2)

	out.SharpeRatio = util.RoundPointer(sharpeRatio(returns, opts.RiskFreeRate, periods), 2)

	return out
}

func sharpeRatio(returns []float64, riskFreeRate float64, periodsPerYear float64) *float64 {
	if len(returns) < 2 {
		return nil
	}
	mean, err := stats.Mean(returns)
	if err != nil {
		return nil
	}
	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil || stdev == 0 || math.IsNaN(stdev) {
		return nil
	}
	sharpe := (mean - riskFreeRate/periodsPerYear) / stdev * math.Sqrt(periodsPerYear)
	return util.FinitePointer(sharpe)
}

// SimpleReturns is the period over period percent change, as a fraction.
// Periods starting from a zero value are skipped.
func SimpleReturns(values []float64) []float64 {
	out := []float64{}
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			continue
		}
		out = append(out, values[i]/values[i-1]-1)
	}
	return out
}

// MaxDrawdown is the lowest value of v_t / running_max(v)_t - 1, as a
// fraction (<= 0)
func MaxDrawdown(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	peak := values[0]
	worst := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
		if peak == 0 {
			continue
		}
		dd := v/peak - 1
		if dd < worst {
			worst = dd
		}
	}
	return &worst
}

func DrawdownSeries(curve domain.EquityCurve) []domain.DrawdownPoint {
	out := make([]domain.DrawdownPoint, 0, len(curve))
	peak := math.Inf(-1)
	for _, p := range curve {
		if p.Equity > peak {
			peak = p.Equity
		}
		dd := 0.0
		if peak != 0 {
			dd = p.Equity/peak - 1
		}
		out = append(out, domain.DrawdownPoint{
			Date:     p.Date,
			Drawdown: dd,
		})
	}
	return out
}

// AnnualizedVolatility is the sample stdev of period returns scaled by
// sqrt(periodsPerYear). Needs at least 2 returns.
func AnnualizedVolatility(values []float64, periodsPerYear int) *float64 {
	returns := SimpleReturns(values)
	if len(returns) < 2 {
		return nil
	}
	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil
	}
	return util.FinitePointer(stdev * math.Sqrt(float64(periodsPerYear)))
}

// IntraPeriodChange converts prices into % change from the first price,
// sampled every granularity
func IntraPeriodChange(series domain.PriceSeries, end time.Time, granularity time.Duration) map[time.Time]float64 {
	prices := series.Points
	if len(prices) == 0 || prices[0].Price == 0 {
		return map[time.Time]float64{}
	}

	out := map[time.Time]float64{
		prices[0].Date: 0,
	}
	nextTarget := prices[0].Date.Add(granularity)
	for i := 1; i < len(prices) && util.DateLte(prices[i].Date, end); i++ {
		for nextTarget.Format(time.DateOnly) < prices[i].Date.Format(time.DateOnly) {
			nextTarget = nextTarget.Add(24 * time.Hour)
		}
		if prices[i].Date.Format(time.DateOnly) == nextTarget.Format(time.DateOnly) {
			out[nextTarget] = 100 * (prices[i].Price - prices[0].Price) / prices[0].Price
			nextTarget = nextTarget.Add(granularity)
		}
	}

	return out
}
