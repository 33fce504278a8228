package calculator

import (
	"portfolioengine/internal/domain"
	"portfolioengine/internal/util"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func curveFromValues(values ...float64) domain.EquityCurve {
	start := util.NewDate(2024, 1, 1)
	out := domain.EquityCurve{}
	for i, v := range values {
		out = append(out, domain.EquityPoint{
			Date:   start.AddDate(0, 0, i),
			Equity: v,
		})
	}
	return out
}

func closedTrade(pnl float64) domain.Trade {
	exit := util.NewDate(2024, 2, 1)
	return domain.Trade{
		EntryDate:  util.NewDate(2024, 1, 1),
		EntryPrice: 10,
		ExitDate:   &exit,
		ExitPrice:  util.FloatPointer(10 + pnl),
		PnL:        &pnl,
		Status:     domain.TradeStatus_Closed,
	}
}

func TestMaxDrawdown(t *testing.T) {
	t.Run("trough against running peak", func(t *testing.T) {
		dd := MaxDrawdown([]float64{100, 120, 90, 150})
		require.NotNil(t, dd)
		require.InDelta(t, -0.25, *dd, 1e-12)
	})

	t.Run("monotonic increase has no drawdown", func(t *testing.T) {
		dd := MaxDrawdown([]float64{1, 2, 3})
		require.Equal(t, 0.0, *dd)
	})

	t.Run("empty", func(t *testing.T) {
		require.Nil(t, MaxDrawdown(nil))
	})
}

func TestDrawdownSeries(t *testing.T) {
	curve := curveFromValues(100, 120, 90, 150)
	out := DrawdownSeries(curve)

	got := []float64{}
	for _, p := range out {
		got = append(got, p.Drawdown)
	}
	require.Equal(
		t,
		"",
		cmp.Diff([]float64{0, 0, -0.25, 0}, got, cmpopts.EquateApprox(0, 1e-12)),
	)
}

func TestCalculateStats(t *testing.T) {
	t.Run("buy and hold path", func(t *testing.T) {
		curve := curveFromValues(10000, 11000, 9000, 12000, 15000)
		stats := CalculateStats(curve, nil, DefaultStatsOptions())

		require.NotNil(t, stats.TotalReturnPct)
		require.Equal(t, 50.0, *stats.TotalReturnPct)
		require.NotNil(t, stats.MaxDrawdownPct)
		require.InDelta(t, -18.18, *stats.MaxDrawdownPct, 1e-9)
		require.NotNil(t, stats.AnnualizedReturnPct)
		require.NotNil(t, stats.SharpeRatio)
		require.Equal(t, 0, stats.TradeCount)
		require.Nil(t, stats.WinRatePct)
	})

	t.Run("single point leaves ratios undefined", func(t *testing.T) {
		stats := CalculateStats(curveFromValues(10000), nil, DefaultStatsOptions())

		require.Equal(t, 0.0, *stats.TotalReturnPct)
		require.Nil(t, stats.AnnualizedReturnPct)
		require.Nil(t, stats.SharpeRatio)
	})

	t.Run("flat curve has no sharpe", func(t *testing.T) {
		stats := CalculateStats(curveFromValues(100, 100, 100, 100), nil, DefaultStatsOptions())

		require.Nil(t, stats.SharpeRatio)
		require.Equal(t, 0.0, *stats.AnnualizedReturnPct)
	})

	t.Run("win rate counts closed trades only", func(t *testing.T) {
		open := domain.Trade{
			EntryDate:  util.NewDate(2024, 3, 1),
			EntryPrice: 10,
			Status:     domain.TradeStatus_Open,
		}
		stats := CalculateStats(
			curveFromValues(100, 110, 105),
			[]domain.Trade{closedTrade(5), closedTrade(-2), closedTrade(1), open},
			DefaultStatsOptions(),
		)

		require.Equal(t, 3, stats.TradeCount)
		require.NotNil(t, stats.WinRatePct)
		require.Equal(t, 66.67, *stats.WinRatePct)
	})

	t.Run("annualized return uses number of returns", func(t *testing.T) {
		values := []float64{100}
		for i := 0; i < 252; i++ {
			values = append(values, 100+float64(i+1)*10/252)
		}
		stats := CalculateStats(curveFromValues(values...), nil, DefaultStatsOptions())

		require.InDelta(t, 10.0, *stats.TotalReturnPct, 1e-9)
		require.InDelta(t, 10.0, *stats.AnnualizedReturnPct, 1e-9)
	})
}

func TestAnnualizedVolatility(t *testing.T) {
	require.Nil(t, AnnualizedVolatility([]float64{100, 101}, TradingDays))

	vol := AnnualizedVolatility([]float64{100, 110, 99, 108.9}, TradingDays)
	require.NotNil(t, vol)
	// returns are 0.1, -0.1, 0.1
	require.InDelta(t, 0.11547005383792516*15.874507866387544, *vol, 1e-9)
}

func TestIntraPeriodChange(t *testing.T) {
	t.Run("two days, both present", func(t *testing.T) {
		t1 := util.NewDate(2020, 1, 1)
		t2 := util.NewDate(2020, 1, 2)
		out := IntraPeriodChange(
			domain.NewPriceSeries("SPY", []domain.PricePoint{
				{Price: 100, Date: t1},
				{Price: 110, Date: t2},
			}),
			t2,
			time.Hour*24,
		)

		require.Equal(
			t,
			"",
			cmp.Diff(
				map[time.Time]float64{
					t1: 0,
					t2: 10,
				},
				out,
				cmpopts.EquateApprox(0, 1e-9),
			),
		)
	})

	t.Run("include last day", func(t *testing.T) {
		t2 := util.NewDate(2020, 1, 2)
		t3 := util.NewDate(2020, 1, 3)
		out := IntraPeriodChange(
			domain.NewPriceSeries("SPY", []domain.PricePoint{
				{Price: 110, Date: t2},
				{Price: 110, Date: t3},
			}),
			t3,
			time.Hour*24,
		)

		require.Equal(t, map[time.Time]float64{t2: 0, t3: 0}, out)
	})

	t.Run("empty series", func(t *testing.T) {
		out := IntraPeriodChange(domain.PriceSeries{}, util.NewDate(2020, 1, 3), time.Hour*24)
		require.Empty(t, out)
	})
}
