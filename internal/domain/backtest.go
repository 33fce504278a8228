package domain

import (
	"fmt"
	"strings"
	"time"
)

type StrategyKind string

const (
	StrategyKind_BuyAndHold StrategyKind = "buy_hold"
	StrategyKind_SmaCross   StrategyKind = "sma"
)

// ParseStrategyKind maps a strategy name to its kind. Anything that is not
// buy and hold runs the moving average crossover.
func ParseStrategyKind(name string) StrategyKind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "buy_hold", "buy-hold", "buyandhold", "buy_and_hold":
		return StrategyKind_BuyAndHold
	}
	return StrategyKind_SmaCross
}

type StrategyParams struct {
	FastWindow int
	SlowWindow int
	// Fee is charged on every fill, in dollars
	Fee float64
}

func DefaultStrategyParams() StrategyParams {
	return StrategyParams{
		FastWindow: 50,
		SlowWindow: 200,
	}
}

type StrategyDefinition struct {
	Kind        StrategyKind
	Params      StrategyParams
	InitialCash float64
}

type PositionState int

const (
	PositionState_Flat PositionState = iota
	PositionState_Long
)

func (s PositionState) String() string {
	if s == PositionState_Long {
		return "LONG"
	}
	return "FLAT"
}

type Signal int

const (
	Signal_Hold Signal = iota
	Signal_Enter
	Signal_Exit
)

type TradeStatus string

const (
	TradeStatus_Closed TradeStatus = "closed"
	TradeStatus_Open   TradeStatus = "open"
)

type Trade struct {
	EntryDate  time.Time
	EntryPrice float64
	ExitDate   *time.Time
	ExitPrice  *float64
	Units      float64
	PnL        *float64
	Status     TradeStatus
}

func (t Trade) IsClosed() bool {
	return t.Status == TradeStatus_Closed
}

func (t Trade) String() string {
	if t.ExitDate == nil {
		return fmt.Sprintf("open %s @ %.2f", t.EntryDate.Format(time.DateOnly), t.EntryPrice)
	}
	return fmt.Sprintf("%s @ %.2f -> %s @ %.2f", t.EntryDate.Format(time.DateOnly), t.EntryPrice, t.ExitDate.Format(time.DateOnly), *t.ExitPrice)
}

type EquityPoint struct {
	Date   time.Time
	Equity float64
}

type EquityCurve []EquityPoint

func (c EquityCurve) Values() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.Equity
	}
	return out
}

type DrawdownPoint struct {
	Date     time.Time
	Drawdown float64
}

// Stats are derived from an equity curve. A nil field means the statistic
// is undefined for the input.
type Stats struct {
	TotalReturnPct      *float64
	AnnualizedReturnPct *float64
	SharpeRatio         *float64
	MaxDrawdownPct      *float64
	TradeCount          int
	WinRatePct          *float64
}
