package main

import (
	"os"
	"path/filepath"
	"portfolioengine/internal/domain"
	l3_service "portfolioengine/internal/service/l3"
	"portfolioengine/internal/util"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_writeEquityCsv(t *testing.T) {
	out := l3_service.BacktestOutput{
		EquityCurve: domain.EquityCurve{
			{Date: util.NewDate(2024, 1, 2), Equity: 100},
			{Date: util.NewDate(2024, 1, 3), Equity: 80},
		},
		Drawdown: []domain.DrawdownPoint{
			{Date: util.NewDate(2024, 1, 2), Drawdown: 0},
			{Date: util.NewDate(2024, 1, 3), Drawdown: -0.2},
		},
	}

	path := filepath.Join(t.TempDir(), "equity.csv")
	require.NoError(t, writeEquityCsv(path, equityRows(out)))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "date,equity,drawdown\n2024-01-02,100,0\n2024-01-03,80,-0.2\n", string(b))
}

func Test_parseAmounts(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		out, err := parseAmounts(map[string]string{"SPY": "60", "AGG": " 40.5"})
		require.NoError(t, err)
		require.Equal(t, map[string]float64{"SPY": 60, "AGG": 40.5}, out)
	})

	t.Run("empty", func(t *testing.T) {
		out, err := parseAmounts(nil)
		require.NoError(t, err)
		require.Nil(t, out)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := parseAmounts(map[string]string{"SPY": "lots"})
		require.Error(t, err)
	})
}
