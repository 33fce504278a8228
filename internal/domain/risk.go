package domain

import "time"

const UnknownSector = "Unknown"

// SectorWeights maps a sector label to its share of the portfolio, summing to 1
type SectorWeights map[string]float64

// RiskSummary is computed fresh per request. Every pointer field degrades to
// nil independently when its inputs are missing.
type RiskSummary struct {
	VolatilityPct        *float64
	MaxDrawdownPct       *float64
	Beta                 *float64
	TopSector            *string
	TopSectorPct         *float64
	HHI                  *float64
	DiversificationRatio *float64
	LastUpdated          *time.Time
	IsFresh              bool

	SectorWeights SectorWeights
}
