package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Run portfolio backtests and risk summaries from the command line",
	Long: `Run the portfolio engine without the api.

Available subcommands:
  run    - Backtest a portfolio with a strategy and export the equity curve
  risk   - Print the risk summary of the tracked portfolio`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		zap.S().Error(err)
		os.Exit(1)
	}
}
