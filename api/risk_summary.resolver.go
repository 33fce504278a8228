package api

import (
	"portfolioengine/internal/domain"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

type sectorWeightResponse struct {
	Sector string  `json:"sector"`
	Pct    float64 `json:"pct"`
}

type riskSummaryResponse struct {
	VolatilityPct        *float64               `json:"volatilityPct"`
	MaxDrawdownPct       *float64               `json:"maxDrawdownPct"`
	Beta                 *float64               `json:"beta"`
	TopSector            *string                `json:"topSector"`
	TopSectorPct         *float64               `json:"topSectorPct"`
	HHI                  *float64               `json:"hhi"`
	DiversificationRatio *float64               `json:"diversificationRatio"`
	LastUpdated          *string                `json:"lastUpdated"`
	IsFresh              bool                   `json:"isFresh"`
	Sectors              []sectorWeightResponse `json:"sectors"`
}

func riskResponse(summary domain.RiskSummary) riskSummaryResponse {
	out := riskSummaryResponse{
		VolatilityPct:        summary.VolatilityPct,
		MaxDrawdownPct:       summary.MaxDrawdownPct,
		Beta:                 summary.Beta,
		TopSector:            summary.TopSector,
		TopSectorPct:         summary.TopSectorPct,
		HHI:                  summary.HHI,
		DiversificationRatio: summary.DiversificationRatio,
		IsFresh:              summary.IsFresh,
		Sectors:              []sectorWeightResponse{},
	}
	if summary.LastUpdated != nil {
		lastUpdated := summary.LastUpdated.Format(time.DateOnly)
		out.LastUpdated = &lastUpdated
	}

	for sector, w := range summary.SectorWeights {
		out.Sectors = append(out.Sectors, sectorWeightResponse{
			Sector: sector,
			Pct:    w * 100,
		})
	}
	sort.Slice(out.Sectors, func(i, j int) bool {
		if out.Sectors[i].Pct == out.Sectors[j].Pct {
			return out.Sectors[i].Sector < out.Sectors[j].Sector
		}
		return out.Sectors[i].Pct > out.Sectors[j].Pct
	})

	return out
}

func (m ApiHandler) riskSummary(c *gin.Context) {
	summary := m.RiskService.ComputeRiskSummary(c.Request.Context())
	c.JSON(200, riskResponse(summary))
}
