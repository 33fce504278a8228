package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioSpec describes what to backtest. Only one of the forms is
// used, checked in the order Shares, Weights, Symbols.
type PortfolioSpec struct {
	Shares  map[string]float64
	Weights map[string]float64
	Symbols []string
}

type PortfolioSpecMode int

const (
	PortfolioSpecMode_Shares PortfolioSpecMode = iota
	PortfolioSpecMode_Weights
	PortfolioSpecMode_EqualWeight
)

func (m PortfolioSpecMode) String() string {
	switch m {
	case PortfolioSpecMode_Shares:
		return "shares"
	case PortfolioSpecMode_Weights:
		return "weights"
	}
	return "equal_weight"
}

// Holding is a currently held position, valued in dollars
type Holding struct {
	Symbol string
	Value  decimal.Decimal
}

// PortfolioValue is a realized total value of the tracked portfolio
type PortfolioValue struct {
	Date  time.Time
	Value decimal.Decimal
}

// PortfolioValueSeries converts realized values into a price series so the
// same calculators can run over it
func PortfolioValueSeries(values []PortfolioValue) PriceSeries {
	points := make([]PricePoint, 0, len(values))
	for _, v := range values {
		points = append(points, PricePoint{
			Date:  v.Date,
			Price: v.Value.InexactFloat64(),
		})
	}
	return NewPriceSeries(BlendedSymbol, points)
}
