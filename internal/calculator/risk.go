package calculator

import (
	"math"
	"portfolioengine/internal/domain"
	"portfolioengine/internal/util"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

// AlignReturns computes daily returns for both series on the dates they
// share. Returns are only taken between consecutive shared dates.
func AlignReturns(a, b domain.PriceSeries) ([]float64, []float64) {
	bByDate := map[string]float64{}
	for _, p := range b.Points {
		bByDate[p.Date.Format(time.DateOnly)] = p.Price
	}

	aValues := []float64{}
	bValues := []float64{}
	for _, p := range a.Points {
		if bPrice, ok := bByDate[p.Date.Format(time.DateOnly)]; ok {
			aValues = append(aValues, p.Price)
			bValues = append(bValues, bPrice)
		}
	}

	aReturns := []float64{}
	bReturns := []float64{}
	for i := 1; i < len(aValues); i++ {
		if aValues[i-1] == 0 || bValues[i-1] == 0 {
			continue
		}
		aReturns = append(aReturns, aValues[i]/aValues[i-1]-1)
		bReturns = append(bReturns, bValues[i]/bValues[i-1]-1)
	}
	return aReturns, bReturns
}

// Beta is cov(portfolio, benchmark) / var(benchmark) over date-aligned
// returns. Needs 3 aligned points, so at least 2 returns, and a benchmark
// that moves.
func Beta(portfolio, benchmark domain.PriceSeries) *float64 {
	portfolioReturns, benchmarkReturns := AlignReturns(portfolio, benchmark)
	if len(benchmarkReturns)+1 < 3 {
		return nil
	}
	variance, err := stats.SampleVariance(benchmarkReturns)
	if err != nil || variance == 0 || math.IsNaN(variance) {
		return nil
	}
	covariance, err := stats.Covariance(portfolioReturns, benchmarkReturns)
	if err != nil {
		return nil
	}
	return util.FinitePointer(covariance / variance)
}

// PositionWeights converts dollar values into weights summing to 1. Non
// positive positions are dropped.
func PositionWeights(holdings []domain.Holding) map[string]float64 {
	total := 0.0
	values := map[string]float64{}
	for _, h := range holdings {
		v := h.Value.InexactFloat64()
		if v <= 0 {
			continue
		}
		values[h.Symbol] += v
		total += v
	}
	out := map[string]float64{}
	if total == 0 {
		return out
	}
	for symbol, v := range values {
		out[symbol] = v / total
	}
	return out
}

// SectorExposure is how one holding splits across sectors
type SectorExposure struct {
	Symbol    string
	Weight    float64
	Fractions map[string]float64
}

// SectorConcentration accumulates weight * sector fraction across holdings
// and renormalizes to sum 1
func SectorConcentration(exposures []SectorExposure) domain.SectorWeights {
	acc := domain.SectorWeights{}
	total := 0.0
	for _, e := range exposures {
		if e.Weight <= 0 {
			continue
		}
		for sector, f := range e.Fractions {
			if f <= 0 {
				continue
			}
			contribution := e.Weight * f
			acc[sector] += contribution
			total += contribution
		}
	}
	if total == 0 {
		return domain.SectorWeights{}
	}
	for sector := range acc {
		acc[sector] /= total
	}
	return acc
}

// TopSector is the heaviest sector, ties broken alphabetically
func TopSector(weights domain.SectorWeights) (string, float64, bool) {
	if len(weights) == 0 {
		return "", 0, false
	}
	sectors := make([]string, 0, len(weights))
	for s := range weights {
		sectors = append(sectors, s)
	}
	sort.Strings(sectors)

	top := sectors[0]
	for _, s := range sectors[1:] {
		if weights[s] > weights[top] {
			top = s
		}
	}
	return top, weights[top], true
}

// HHI is the sum of squared weights
func HHI(weights domain.SectorWeights) *float64 {
	if len(weights) == 0 {
		return nil
	}
	sum := 0.0
	for _, w := range weights {
		sum += w * w
	}
	return &sum
}

// DiversificationRatio is the position-weighted average of each holding's
// own annualized volatility over the portfolio's volatility. Holdings
// without a volatility are left out of the average.
func DiversificationRatio(weights map[string]float64, volatilities map[string]float64, portfolioVolatility *float64) *float64 {
	if portfolioVolatility == nil || *portfolioVolatility == 0 {
		return nil
	}
	weighted := 0.0
	weightTotal := 0.0
	for symbol, w := range weights {
		vol, ok := volatilities[symbol]
		if !ok || w <= 0 {
			continue
		}
		weighted += w * vol
		weightTotal += w
	}
	if weightTotal == 0 {
		return nil
	}
	return util.FinitePointer((weighted / weightTotal) / *portfolioVolatility)
}
