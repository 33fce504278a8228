package l2_service

import (
	"context"
	"fmt"
	"portfolioengine/internal/domain"
	"portfolioengine/internal/logger"
	l1_service "portfolioengine/internal/service/l1"
	"portfolioengine/internal/util"
	"sort"
	"strings"
	"time"
)

// NormalizePortfolioSpec canonicalizes the spec into raw per-symbol amounts.
// Amounts are share counts in shares mode and relative weights otherwise.
// Zero entries are dropped.
func NormalizePortfolioSpec(spec domain.PortfolioSpec) (map[string]float64, domain.PortfolioSpecMode, error) {
	canonical := func(in map[string]float64) (map[string]float64, error) {
		out := map[string]float64{}
		for symbol, amount := range in {
			symbol = strings.ToUpper(strings.TrimSpace(symbol))
			if symbol == "" {
				continue
			}
			if amount < 0 {
				return nil, fmt.Errorf("negative amount %f for %s: %w", amount, symbol, domain.ErrEmptyPortfolio)
			}
			if amount == 0 {
				continue
			}
			out[symbol] += amount
		}
		if len(out) == 0 {
			return nil, domain.ErrEmptyPortfolio
		}
		return out, nil
	}

	if len(spec.Shares) > 0 {
		out, err := canonical(spec.Shares)
		return out, domain.PortfolioSpecMode_Shares, err
	}
	if len(spec.Weights) > 0 {
		out, err := canonical(spec.Weights)
		return out, domain.PortfolioSpecMode_Weights, err
	}

	// duplicates collapse to one entry
	equal := map[string]float64{}
	for _, s := range spec.Symbols {
		equal[strings.ToUpper(strings.TrimSpace(s))] = 1
	}
	out, err := canonical(equal)
	return out, domain.PortfolioSpecMode_EqualWeight, err
}

// NormalizeWeights scales the weights to sum to 1
func NormalizeWeights(weights map[string]float64) (map[string]float64, error) {
	total := 0.0
	for _, w := range weights {
		if w < 0 {
			return nil, domain.ErrEmptyPortfolio
		}
		total += w
	}
	if total <= 0 {
		return nil, domain.ErrEmptyPortfolio
	}

	out := make(map[string]float64, len(weights))
	for symbol, w := range weights {
		out[symbol] = w / total
	}
	return out, nil
}

// AlignedPrices is a dense price matrix on a shared date index.
// Prices[t][i] is the price of Symbols[i] on Dates[t].
type AlignedPrices struct {
	Dates   []time.Time
	Symbols []string
	Prices  [][]float64
}

// AlignSeries joins the series on the union of their dates, forward-fills
// gaps, and drops the leading rows where some symbol has no price yet
func AlignSeries(series map[string]domain.PriceSeries) (*AlignedPrices, error) {
	symbols := make([]string, 0, len(series))
	for symbol := range series {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	dateSet := map[string]time.Time{}
	bySymbol := map[string]map[string]float64{}
	for _, symbol := range symbols {
		bySymbol[symbol] = map[string]float64{}
		for _, p := range series[symbol].Points {
			key := p.Date.Format(time.DateOnly)
			if _, ok := dateSet[key]; !ok {
				dateSet[key] = util.StartOfDay(p.Date)
			}
			bySymbol[symbol][key] = p.Price
		}
	}

	keys := make([]string, 0, len(dateSet))
	for k := range dateSet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := &AlignedPrices{
		Dates:   []time.Time{},
		Symbols: symbols,
		Prices:  [][]float64{},
	}
	last := make([]*float64, len(symbols))
	for _, key := range keys {
		complete := true
		for i, symbol := range symbols {
			if p, ok := bySymbol[symbol][key]; ok {
				price := p
				last[i] = &price
			}
			if last[i] == nil {
				complete = false
			}
		}
		if !complete {
			continue
		}
		row := make([]float64, len(symbols))
		for i := range symbols {
			row[i] = *last[i]
		}
		out.Dates = append(out.Dates, dateSet[key])
		out.Prices = append(out.Prices, row)
	}

	if len(out.Dates) < 1 {
		return nil, fmt.Errorf("no overlapping prices for %s: %w", strings.Join(symbols, ", "), domain.ErrInsufficientData)
	}

	return out, nil
}

// Returns is the per symbol simple return of each row against the previous
// row. The first row is all zeros.
func (a AlignedPrices) Returns() [][]float64 {
	out := make([][]float64, len(a.Prices))
	for t, row := range a.Prices {
		out[t] = make([]float64, len(row))
		if t == 0 {
			continue
		}
		for i, p := range row {
			prev := a.Prices[t-1][i]
			if prev != 0 {
				out[t][i] = p/prev - 1
			}
		}
	}
	return out
}

// StepWeights applies one row of returns. When rebalancing is on and the row
// opens a new calendar month, weights reset to the targets before the row's
// return is applied. The returned weights have drifted with the row's
// returns and are renormalized unless they sum to 0.
func StepWeights(weights, targets, returns []float64, rebalance, newMonth bool) (float64, []float64) {
	current := weights
	if rebalance && newMonth {
		current = targets
	}

	portfolioReturn := 0.0
	next := make([]float64, len(current))
	total := 0.0
	for i, w := range current {
		portfolioReturn += w * returns[i]
		next[i] = w * (1 + returns[i])
		total += next[i]
	}
	if total != 0 {
		for i := range next {
			next[i] /= total
		}
	}

	return portfolioReturn, next
}

// BuildBlendedSeries compounds the weighted returns of the aligned prices
// into a single value series starting at initialValue
func BuildBlendedSeries(aligned AlignedPrices, targetWeights map[string]float64, rebalance bool, initialValue float64) domain.PriceSeries {
	targets := make([]float64, len(aligned.Symbols))
	for i, symbol := range aligned.Symbols {
		targets[i] = targetWeights[symbol]
	}

	points := make([]domain.PricePoint, 0, len(aligned.Dates))
	weights := targets
	value := initialValue
	for t, row := range aligned.Returns() {
		newMonth := t > 0 && !util.SameMonth(aligned.Dates[t-1], aligned.Dates[t])
		var portfolioReturn float64
		portfolioReturn, weights = StepWeights(weights, targets, row, rebalance, newMonth)
		value *= 1 + portfolioReturn
		points = append(points, domain.PricePoint{
			Date:  aligned.Dates[t],
			Price: value,
		})
	}

	return domain.PriceSeries{
		Symbol: domain.BlendedSymbol,
		Points: points,
	}
}

type PortfolioService interface {
	// Synthesize turns a portfolio spec into one price series. A single
	// symbol comes back as its own prices under the blended label.
	Synthesize(ctx context.Context, spec domain.PortfolioSpec, start, end time.Time, rebalanceMonthly bool) (*domain.PriceSeries, error)
}

type portfolioServiceHandler struct {
	PriceService l1_service.PriceService
}

func NewPortfolioService(priceService l1_service.PriceService) PortfolioService {
	return portfolioServiceHandler{
		PriceService: priceService,
	}
}

func (h portfolioServiceHandler) Synthesize(ctx context.Context, spec domain.PortfolioSpec, start, end time.Time, rebalanceMonthly bool) (*domain.PriceSeries, error) {
	amounts, mode, err := NormalizePortfolioSpec(spec)
	if err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(amounts))
	for symbol := range amounts {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	prices, err := h.PriceService.FetchPrices(ctx, symbols, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices: %w", err)
	}

	if len(symbols) == 1 {
		series, ok := prices[symbols[0]]
		if !ok || series.Len() == 0 {
			return nil, fmt.Errorf("no prices for %s: %w", symbols[0], domain.ErrNoData)
		}
		out := series.Relabel(domain.BlendedSymbol)
		return &out, nil
	}

	log := logger.FromContext(ctx)
	available := map[string]domain.PriceSeries{}
	skipped := []string{}
	for _, symbol := range symbols {
		if s, ok := prices[symbol]; ok && s.Len() > 0 {
			available[symbol] = s
		} else {
			skipped = append(skipped, symbol)
		}
	}
	if len(available) == 0 {
		return nil, fmt.Errorf("no valid symbols with data in this period: %w", domain.ErrDataUnavailable)
	}
	if len(skipped) > 0 {
		log.Warnf("skipping symbols without prices: %s", strings.Join(skipped, ", "))
	}

	aligned, err := AlignSeries(available)
	if err != nil {
		return nil, err
	}
	log.Debugw("aligned portfolio prices",
		"symbols", aligned.Symbols,
		"rows", len(aligned.Dates),
		"mode", mode.String(),
	)

	raw := map[string]float64{}
	for i, symbol := range aligned.Symbols {
		raw[symbol] = amounts[symbol]
		if mode == domain.PortfolioSpecMode_Shares {
			raw[symbol] *= aligned.Prices[0][i]
		}
	}
	targets, err := NormalizeWeights(raw)
	if err != nil {
		return nil, err
	}

	out := BuildBlendedSeries(*aligned, targets, rebalanceMonthly, 1)
	return &out, nil
}
