package main

import (
	"fmt"
	"portfolioengine/cmd"
	"portfolioengine/internal/domain"
	l3_service "portfolioengine/internal/service/l3"
	"portfolioengine/internal/util"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Backtest a portfolio",
	Long: `Backtest a portfolio with buy and hold or a moving average crossover.

Examples:
  backtest run --tickers SPY --start 2020-01-01 --end 2024-01-01
  backtest run --weights SPY=60,AGG=40 --rebalance --strategy buy_hold
  backtest run --shares AAPL=10,MSFT=5 --fast 20 --slow 50 --out equity.csv`,
	RunE: runBacktest,
}

var (
	runTickers   []string
	runWeights   map[string]string
	runShares    map[string]string
	runStart     string
	runEnd       string
	runStrategy  string
	runFast      int
	runSlow      int
	runCash      float64
	runFee       float64
	runRebalance bool
	runOut       string
)

func init() {
	rootCmd.AddCommand(runCmd)

	defaults := domain.DefaultStrategyParams()
	runCmd.Flags().StringSliceVar(&runTickers, "tickers", nil, "equal weight tickers")
	runCmd.Flags().StringToStringVar(&runWeights, "weights", nil, "relative weights, SYMBOL=WEIGHT")
	runCmd.Flags().StringToStringVar(&runShares, "shares", nil, "share counts, SYMBOL=SHARES")
	runCmd.Flags().StringVar(&runStart, "start", "", "start date (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&runEnd, "end", time.Now().UTC().Format(time.DateOnly), "end date (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&runStrategy, "strategy", string(domain.StrategyKind_SmaCross), "buy_hold or sma")
	runCmd.Flags().IntVar(&runFast, "fast", defaults.FastWindow, "fast moving average window")
	runCmd.Flags().IntVar(&runSlow, "slow", defaults.SlowWindow, "slow moving average window")
	runCmd.Flags().Float64Var(&runCash, "cash", 10000, "initial cash")
	runCmd.Flags().Float64Var(&runFee, "fee", 0, "fee per fill, in dollars")
	runCmd.Flags().BoolVar(&runRebalance, "rebalance", false, "rebalance to target weights monthly")
	runCmd.Flags().StringVar(&runOut, "out", "", "write the equity curve to this csv file")
	runCmd.MarkFlagRequired("start")
}

// parseAmounts reads SYMBOL=NUMBER flag values
func parseAmounts(in map[string]string) (map[string]float64, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := map[string]float64{}
	for symbol, raw := range in {
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q for %s: %w", raw, symbol, err)
		}
		out[symbol] = f
	}
	return out, nil
}

func runBacktest(c *cobra.Command, args []string) error {
	start, err := time.Parse(time.DateOnly, runStart)
	if err != nil {
		return fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := time.Parse(time.DateOnly, runEnd)
	if err != nil {
		return fmt.Errorf("failed to parse end date: %w", err)
	}
	weights, err := parseAmounts(runWeights)
	if err != nil {
		return err
	}
	shares, err := parseAmounts(runShares)
	if err != nil {
		return err
	}

	handler, err := cmd.InitializeDependencies()
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(handler)

	out, err := handler.BacktestService.RunBacktest(c.Context(), l3_service.BacktestInput{
		Spec: domain.PortfolioSpec{
			Shares:  shares,
			Weights: weights,
			Symbols: runTickers,
		},
		Start: start,
		End:   end,
		Strategy: domain.StrategyDefinition{
			Kind: domain.ParseStrategyKind(runStrategy),
			Params: domain.StrategyParams{
				FastWindow: runFast,
				SlowWindow: runSlow,
				Fee:        runFee,
			},
			InitialCash: runCash,
		},
		RebalanceMonthly: runRebalance,
	})
	if err != nil {
		return fmt.Errorf("backtest failed: %w", err)
	}

	util.Pprint(out.Stats)
	if out.BuyAndHoldStats != nil {
		fmt.Println("buy and hold:")
		util.Pprint(out.BuyAndHoldStats)
	}
	for _, t := range out.Trades {
		fmt.Println(t.String())
	}

	if runOut != "" {
		if err := writeEquityCsv(runOut, equityRows(*out)); err != nil {
			return err
		}
		zap.S().Infof("wrote %d rows to %s", len(out.EquityCurve), runOut)
	}

	return nil
}
