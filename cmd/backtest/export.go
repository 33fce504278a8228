package main

import (
	"fmt"
	"os"
	l3_service "portfolioengine/internal/service/l3"
	"time"

	"github.com/gocarina/gocsv"
)

type equityRow struct {
	Date     string  `csv:"date"`
	Equity   float64 `csv:"equity"`
	Drawdown float64 `csv:"drawdown"`
}

func equityRows(out l3_service.BacktestOutput) []equityRow {
	rows := make([]equityRow, 0, len(out.EquityCurve))
	for i, p := range out.EquityCurve {
		row := equityRow{
			Date:   p.Date.Format(time.DateOnly),
			Equity: p.Equity,
		}
		if i < len(out.Drawdown) {
			row.Drawdown = out.Drawdown[i].Drawdown
		}
		rows = append(rows, row)
	}
	return rows
}

func writeEquityCsv(path string, rows []equityRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("failed to write equity csv: %w", err)
	}
	return nil
}
