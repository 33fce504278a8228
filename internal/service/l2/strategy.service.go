package l2_service

import (
	"fmt"
	"math"
	"portfolioengine/internal/domain"
)

const DefaultInitialCash = 10000.0

// MinBars is the shortest series the strategy can run on
func MinBars(kind domain.StrategyKind, params domain.StrategyParams) int {
	if kind == domain.StrategyKind_BuyAndHold {
		return 1
	}
	return max(params.FastWindow, params.SlowWindow) + 2
}

// rollingMean is the trailing mean over window values, NaN until the window
// is full
func rollingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = sum / float64(window)
	}
	return out
}

// crossedAbove reports whether a moved from <= b to > b between t-1 and t
func crossedAbove(a, b []float64, t int) bool {
	if t < 1 {
		return false
	}
	for _, v := range []float64{a[t-1], a[t], b[t-1], b[t]} {
		if math.IsNaN(v) {
			return false
		}
	}
	return a[t-1] <= b[t-1] && a[t] > b[t]
}

// GenerateSignals evaluates the strategy over the closes. The signal at bar
// t only depends on closes up to t.
func GenerateSignals(kind domain.StrategyKind, params domain.StrategyParams, closes []float64) ([]domain.Signal, error) {
	if len(closes) == 0 {
		return nil, fmt.Errorf("no closes to trade: %w", domain.ErrInsufficientData)
	}
	signals := make([]domain.Signal, len(closes))

	switch kind {
	case domain.StrategyKind_BuyAndHold:
		signals[0] = domain.Signal_Enter
		return signals, nil
	case domain.StrategyKind_SmaCross:
		if params.FastWindow <= 0 || params.SlowWindow <= 0 {
			return nil, fmt.Errorf("sma windows must be positive, got %d/%d: %w", params.FastWindow, params.SlowWindow, domain.ErrInvalidParams)
		}
		minBars := MinBars(kind, params)
		if len(closes) < minBars {
			return nil, fmt.Errorf("not enough data for sma windows, need at least %d bars, got %d: %w", minBars, len(closes), domain.ErrInsufficientData)
		}

		fast := rollingMean(closes, params.FastWindow)
		slow := rollingMean(closes, params.SlowWindow)
		for t := range closes {
			if crossedAbove(fast, slow, t) {
				signals[t] = domain.Signal_Enter
			} else if crossedAbove(slow, fast, t) {
				signals[t] = domain.Signal_Exit
			}
		}
		return signals, nil
	}

	return nil, fmt.Errorf("unknown strategy %q: %w", kind, domain.ErrInvalidParams)
}

// RunStrategy simulates the strategy over the series. Fills happen at the
// signal bar's close with the full account, less the fee. A position still
// open at the last bar stays open and is logged with an open status.
func RunStrategy(series domain.PriceSeries, definition domain.StrategyDefinition) (domain.EquityCurve, []domain.Trade, error) {
	closes := series.Values()
	signals, err := GenerateSignals(definition.Kind, definition.Params, closes)
	if err != nil {
		return nil, nil, err
	}

	cash := definition.InitialCash
	if cash <= 0 {
		cash = DefaultInitialCash
	}
	fee := definition.Params.Fee

	state := domain.PositionState_Flat
	units := 0.0
	entryCost := 0.0
	var open *domain.Trade

	curve := make(domain.EquityCurve, 0, len(closes))
	trades := []domain.Trade{}

	for t, point := range series.Points {
		price := point.Price
		switch {
		case state == domain.PositionState_Flat && signals[t] == domain.Signal_Enter && price > 0 && cash > fee:
			entryCost = cash
			units = (cash - fee) / price
			cash = 0
			state = domain.PositionState_Long
			open = &domain.Trade{
				EntryDate:  point.Date,
				EntryPrice: price,
				Units:      units,
				Status:     domain.TradeStatus_Open,
			}
		case state == domain.PositionState_Long && signals[t] == domain.Signal_Exit:
			cash = units*price - fee
			pnl := cash - entryCost
			exitDate := point.Date
			exitPrice := price
			open.ExitDate = &exitDate
			open.ExitPrice = &exitPrice
			open.PnL = &pnl
			open.Status = domain.TradeStatus_Closed
			trades = append(trades, *open)
			open = nil
			units = 0
			state = domain.PositionState_Flat
		}

		curve = append(curve, domain.EquityPoint{
			Date:   point.Date,
			Equity: cash + units*price,
		})
	}

	if open != nil {
		trades = append(trades, *open)
	}

	return curve, trades, nil
}
