package l2_service

import (
	"portfolioengine/internal/domain"
	"portfolioengine/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func dailySeries(values ...float64) domain.PriceSeries {
	dates := []time.Time{}
	start := util.NewDate(2024, 3, 1)
	for i := range values {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return seriesOn("SPY", dates, values...)
}

func TestGenerateSignals(t *testing.T) {
	t.Run("buy and hold enters on the first bar", func(t *testing.T) {
		signals, err := GenerateSignals(domain.StrategyKind_BuyAndHold, domain.StrategyParams{}, []float64{1, 2, 3})
		require.NoError(t, err)
		require.Equal(t, []domain.Signal{domain.Signal_Enter, domain.Signal_Hold, domain.Signal_Hold}, signals)
	})

	t.Run("sma needs enough bars", func(t *testing.T) {
		closes := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		_, err := GenerateSignals(domain.StrategyKind_SmaCross, domain.DefaultStrategyParams(), closes)
		require.ErrorIs(t, err, domain.ErrInsufficientData)
	})

	t.Run("non positive windows", func(t *testing.T) {
		_, err := GenerateSignals(domain.StrategyKind_SmaCross, domain.StrategyParams{FastWindow: 0, SlowWindow: 3}, []float64{1, 2, 3, 4, 5})
		require.ErrorIs(t, err, domain.ErrInvalidParams)
	})

	t.Run("empty closes", func(t *testing.T) {
		_, err := GenerateSignals(domain.StrategyKind_BuyAndHold, domain.StrategyParams{}, nil)
		require.ErrorIs(t, err, domain.ErrInsufficientData)
	})

	t.Run("crossovers", func(t *testing.T) {
		closes := []float64{10, 10, 10, 10, 12, 14, 8, 6, 6, 6}
		signals, err := GenerateSignals(domain.StrategyKind_SmaCross, domain.StrategyParams{FastWindow: 1, SlowWindow: 3}, closes)
		require.NoError(t, err)
		require.Equal(t, domain.Signal_Enter, signals[4])
		require.Equal(t, domain.Signal_Exit, signals[6])
		for i, s := range signals {
			if i != 4 && i != 6 {
				require.Equal(t, domain.Signal_Hold, s, "bar %d", i)
			}
		}
	})

	t.Run("signals do not look ahead", func(t *testing.T) {
		params := domain.StrategyParams{FastWindow: 1, SlowWindow: 3}
		full := []float64{10, 10, 10, 10, 12, 14, 8, 6, 6, 6}
		fullSignals, err := GenerateSignals(domain.StrategyKind_SmaCross, params, full)
		require.NoError(t, err)
		prefixSignals, err := GenerateSignals(domain.StrategyKind_SmaCross, params, full[:6])
		require.NoError(t, err)
		require.Equal(t, fullSignals[:6], prefixSignals)
	})
}

func TestRunStrategy(t *testing.T) {
	t.Run("buy and hold", func(t *testing.T) {
		curve, trades, err := RunStrategy(dailySeries(10, 11, 9, 12, 15), domain.StrategyDefinition{
			Kind:        domain.StrategyKind_BuyAndHold,
			InitialCash: 10000,
		})
		require.NoError(t, err)
		require.Equal(t, []float64{10000, 11000, 9000, 12000, 15000}, curve.Values())
		require.Len(t, trades, 1)
		require.Equal(t, domain.TradeStatus_Open, trades[0].Status)
		require.Nil(t, trades[0].PnL)
		require.InDelta(t, 1000, trades[0].Units, 1e-9)
	})

	t.Run("default cash", func(t *testing.T) {
		curve, _, err := RunStrategy(dailySeries(10, 20), domain.StrategyDefinition{
			Kind: domain.StrategyKind_BuyAndHold,
		})
		require.NoError(t, err)
		require.Equal(t, []float64{DefaultInitialCash, 2 * DefaultInitialCash}, curve.Values())
	})

	t.Run("sma round trip with fees", func(t *testing.T) {
		curve, trades, err := RunStrategy(
			dailySeries(10, 10, 10, 10, 12, 14, 8, 6, 6, 6),
			domain.StrategyDefinition{
				Kind:        domain.StrategyKind_SmaCross,
				Params:      domain.StrategyParams{FastWindow: 1, SlowWindow: 3, Fee: 1},
				InitialCash: 10000,
			},
		)
		require.NoError(t, err)
		require.Len(t, curve, 10)
		for i := 0; i < 4; i++ {
			require.Equal(t, 10000.0, curve[i].Equity)
		}

		require.Len(t, trades, 1)
		trade := trades[0]
		require.Equal(t, domain.TradeStatus_Closed, trade.Status)
		require.Equal(t, 12.0, trade.EntryPrice)
		require.Equal(t, 8.0, *trade.ExitPrice)
		require.InDelta(t, 9999.0/12, trade.Units, 1e-9)
		require.InDelta(t, -3335, *trade.PnL, 1e-6)
		require.InDelta(t, 6665, curve[9].Equity, 1e-6)
	})

	t.Run("open position is marked to market", func(t *testing.T) {
		curve, trades, err := RunStrategy(
			dailySeries(10, 10, 10, 10, 12, 14),
			domain.StrategyDefinition{
				Kind:        domain.StrategyKind_SmaCross,
				Params:      domain.StrategyParams{FastWindow: 1, SlowWindow: 3},
				InitialCash: 10000,
			},
		)
		require.NoError(t, err)
		require.Len(t, trades, 1)
		require.False(t, trades[0].IsClosed())
		require.Nil(t, trades[0].ExitDate)
		require.InDelta(t, 10000.0/12*14, curve[5].Equity, 1e-6)
	})

	t.Run("insufficient data", func(t *testing.T) {
		_, _, err := RunStrategy(dailySeries(1, 2, 3), domain.StrategyDefinition{
			Kind:   domain.StrategyKind_SmaCross,
			Params: domain.DefaultStrategyParams(),
		})
		require.ErrorIs(t, err, domain.ErrInsufficientData)
	})
}
