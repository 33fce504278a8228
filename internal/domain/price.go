package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// AssetPrice is a single stored adjusted close
type AssetPrice struct {
	Symbol string
	Price  decimal.Decimal
	Date   time.Time
}

type PricePoint struct {
	Date  time.Time
	Price float64
}

// PriceSeries is an ordered-by-date sequence of adjusted closes for one
// symbol. Dates are strictly increasing.
type PriceSeries struct {
	Symbol string
	Points []PricePoint
}

// NewPriceSeries sorts the points by date and drops duplicate dates,
// keeping the last value seen for a date.
func NewPriceSeries(symbol string, points []PricePoint) PriceSeries {
	sorted := make([]PricePoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	out := []PricePoint{}
	for _, p := range sorted {
		if len(out) > 0 && out[len(out)-1].Date.Format(time.DateOnly) == p.Date.Format(time.DateOnly) {
			out[len(out)-1] = p
			continue
		}
		out = append(out, p)
	}

	return PriceSeries{
		Symbol: symbol,
		Points: out,
	}
}

func PriceSeriesFromAssetPrices(symbol string, prices []AssetPrice) PriceSeries {
	points := make([]PricePoint, 0, len(prices))
	for _, p := range prices {
		points = append(points, PricePoint{
			Date:  p.Date,
			Price: p.Price.InexactFloat64(),
		})
	}
	return NewPriceSeries(symbol, points)
}

func (s PriceSeries) Len() int {
	return len(s.Points)
}

func (s PriceSeries) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Price
	}
	return out
}

func (s PriceSeries) Dates() []time.Time {
	out := make([]time.Time, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Date
	}
	return out
}

func (s PriceSeries) LastDate() *time.Time {
	if len(s.Points) == 0 {
		return nil
	}
	d := s.Points[len(s.Points)-1].Date
	return &d
}

// Relabel returns a copy of the series under a new symbol
func (s PriceSeries) Relabel(symbol string) PriceSeries {
	points := make([]PricePoint, len(s.Points))
	copy(points, s.Points)
	return PriceSeries{
		Symbol: symbol,
		Points: points,
	}
}

// Between returns the points with start <= date <= end, compared by day
func (s PriceSeries) Between(start, end time.Time) PriceSeries {
	points := []PricePoint{}
	for _, p := range s.Points {
		d := p.Date.Format(time.DateOnly)
		if d >= start.Format(time.DateOnly) && d <= end.Format(time.DateOnly) {
			points = append(points, p)
		}
	}
	return PriceSeries{
		Symbol: s.Symbol,
		Points: points,
	}
}

const BlendedSymbol = "PORTFOLIO"
