package main

import (
	"portfolioengine/cmd"
	"portfolioengine/internal/util"

	"github.com/spf13/cobra"
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Print the risk summary of the tracked portfolio",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		util.Pprint(handler.RiskService.ComputeRiskSummary(c.Context()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(riskCmd)
}
