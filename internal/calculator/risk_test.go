package calculator

import (
	"portfolioengine/internal/domain"
	"portfolioengine/internal/util"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func seriesFromValues(symbol string, values ...float64) domain.PriceSeries {
	start := util.NewDate(2024, 1, 1)
	points := []domain.PricePoint{}
	for i, v := range values {
		points = append(points, domain.PricePoint{
			Date:  start.AddDate(0, 0, i),
			Price: v,
		})
	}
	return domain.NewPriceSeries(symbol, points)
}

func TestBeta(t *testing.T) {
	t.Run("identical returns give beta of one", func(t *testing.T) {
		portfolio := seriesFromValues("PORTFOLIO", 1000, 1010, 990, 1020, 1015)
		benchmark := seriesFromValues("SPY", 400, 404, 396, 408, 406)

		beta := Beta(portfolio, benchmark)
		require.NotNil(t, beta)
		require.InDelta(t, 1.0, *beta, 1e-6)
	})

	t.Run("double the moves gives beta of two", func(t *testing.T) {
		benchmark := seriesFromValues("SPY", 100, 101, 99, 102, 101)
		benchmarkReturns := SimpleReturns(benchmark.Values())
		values := []float64{100}
		for _, r := range benchmarkReturns {
			values = append(values, values[len(values)-1]*(1+2*r))
		}
		portfolio := seriesFromValues("PORTFOLIO", values...)

		beta := Beta(portfolio, benchmark)
		require.NotNil(t, beta)
		require.InDelta(t, 2.0, *beta, 1e-9)
	})

	t.Run("three aligned points are enough", func(t *testing.T) {
		portfolio := seriesFromValues("PORTFOLIO", 100, 110, 99)
		benchmark := seriesFromValues("SPY", 100, 110, 99)

		beta := Beta(portfolio, benchmark)
		require.NotNil(t, beta)
		require.InDelta(t, 1.0, *beta, 1e-9)
	})

	t.Run("only shared dates are used", func(t *testing.T) {
		portfolio := seriesFromValues("PORTFOLIO", 100, 101, 99, 102, 101)
		benchmark := domain.NewPriceSeries("SPY", portfolio.Points[:2])

		require.Nil(t, Beta(portfolio, benchmark))
	})

	t.Run("flat benchmark", func(t *testing.T) {
		portfolio := seriesFromValues("PORTFOLIO", 100, 101, 99, 102, 101)
		benchmark := seriesFromValues("SPY", 50, 50, 50, 50, 50)

		require.Nil(t, Beta(portfolio, benchmark))
	})
}

func TestSectorConcentration(t *testing.T) {
	t.Run("single sector", func(t *testing.T) {
		weights := SectorConcentration([]SectorExposure{
			{Symbol: "AAPL", Weight: 0.5, Fractions: map[string]float64{"Tech": 1}},
			{Symbol: "MSFT", Weight: 0.5, Fractions: map[string]float64{"Tech": 1}},
		})

		top, pct, ok := TopSector(weights)
		require.True(t, ok)
		require.Equal(t, "Tech", top)
		require.Equal(t, 1.0, pct)
		require.Equal(t, 1.0, *HHI(weights))
	})

	t.Run("four equal sectors", func(t *testing.T) {
		weights := SectorConcentration([]SectorExposure{
			{Symbol: "A", Weight: 0.25, Fractions: map[string]float64{"Tech": 1}},
			{Symbol: "B", Weight: 0.25, Fractions: map[string]float64{"Energy": 1}},
			{Symbol: "C", Weight: 0.25, Fractions: map[string]float64{"Health": 1}},
			{Symbol: "D", Weight: 0.25, Fractions: map[string]float64{"Utilities": 1}},
		})

		require.InDelta(t, 0.25, *HHI(weights), 1e-12)
	})

	t.Run("look through splits a fund", func(t *testing.T) {
		weights := SectorConcentration([]SectorExposure{
			{Symbol: "AAPL", Weight: 0.5, Fractions: map[string]float64{"Tech": 1}},
			{Symbol: "VTI", Weight: 0.5, Fractions: map[string]float64{"Tech": 0.3, "Financials": 0.7}},
		})

		require.InDelta(t, 0.65, weights["Tech"], 1e-12)
		require.InDelta(t, 0.35, weights["Financials"], 1e-12)

		total := 0.0
		for _, w := range weights {
			total += w
		}
		require.InDelta(t, 1.0, total, 1e-9)

		hhi := *HHI(weights)
		require.GreaterOrEqual(t, hhi, 1.0/float64(len(weights)))
		require.LessOrEqual(t, hhi, 1.0)
	})

	t.Run("no exposures", func(t *testing.T) {
		weights := SectorConcentration(nil)
		_, _, ok := TopSector(weights)
		require.False(t, ok)
		require.Nil(t, HHI(weights))
	})
}

func TestPositionWeights(t *testing.T) {
	weights := PositionWeights([]domain.Holding{
		{Symbol: "AAPL", Value: decimal.NewFromInt(300)},
		{Symbol: "VTI", Value: decimal.NewFromInt(100)},
		{Symbol: "AAPL", Value: decimal.NewFromInt(100)},
		{Symbol: "CASHLIKE", Value: decimal.Zero},
	})

	require.Equal(t, map[string]float64{"AAPL": 0.8, "VTI": 0.2}, weights)
}

func TestDiversificationRatio(t *testing.T) {
	t.Run("weighted average over portfolio vol", func(t *testing.T) {
		ratio := DiversificationRatio(
			map[string]float64{"AAPL": 0.5, "XOM": 0.5},
			map[string]float64{"AAPL": 0.3, "XOM": 0.2},
			util.FloatPointer(0.2),
		)
		require.NotNil(t, ratio)
		require.InDelta(t, 1.25, *ratio, 1e-12)
	})

	t.Run("missing vols are skipped", func(t *testing.T) {
		ratio := DiversificationRatio(
			map[string]float64{"AAPL": 0.5, "XOM": 0.5},
			map[string]float64{"AAPL": 0.3},
			util.FloatPointer(0.3),
		)
		require.InDelta(t, 1.0, *ratio, 1e-12)
	})

	t.Run("insufficient inputs", func(t *testing.T) {
		require.Nil(t, DiversificationRatio(map[string]float64{"AAPL": 1}, map[string]float64{"AAPL": 0.3}, nil))
		require.Nil(t, DiversificationRatio(map[string]float64{"AAPL": 1}, map[string]float64{}, util.FloatPointer(0.1)))
	})
}
