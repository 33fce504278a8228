package l3_service

import (
	"context"
	"database/sql"
	"portfolioengine/internal/calculator"
	"portfolioengine/internal/domain"
	"portfolioengine/internal/logger"
	"portfolioengine/internal/repository"
	l1_service "portfolioengine/internal/service/l1"
	"portfolioengine/internal/util"
	"strings"
	"time"
)

const DefaultBenchmark = "SPY"

type RiskService interface {
	// ComputeRiskSummary never fails. Each field degrades to nil on its own
	// when its inputs are missing or a provider fails.
	ComputeRiskSummary(ctx context.Context) domain.RiskSummary
}

type riskServiceHandler struct {
	Db                       *sql.DB
	HoldingRepository        repository.HoldingRepository
	PortfolioValueRepository repository.PortfolioValueRepository
	PriceService             l1_service.PriceService
	SectorService            l1_service.SectorService
	LookthroughService       l1_service.LookthroughService
	Benchmark                string

	now func() time.Time
}

func NewRiskService(
	db *sql.DB,
	holdingRepository repository.HoldingRepository,
	portfolioValueRepository repository.PortfolioValueRepository,
	priceService l1_service.PriceService,
	sectorService l1_service.SectorService,
	lookthroughService l1_service.LookthroughService,
	benchmark string,
) RiskService {
	if strings.TrimSpace(benchmark) == "" {
		benchmark = DefaultBenchmark
	}
	return riskServiceHandler{
		Db:                       db,
		HoldingRepository:        holdingRepository,
		PortfolioValueRepository: portfolioValueRepository,
		PriceService:             priceService,
		SectorService:            sectorService,
		LookthroughService:       lookthroughService,
		Benchmark:                strings.ToUpper(benchmark),
		now:                      time.Now,
	}
}

func percent(f *float64) *float64 {
	if f == nil {
		return nil
	}
	return util.FloatPointer(util.Round(*f*100, 2))
}

func (h riskServiceHandler) ComputeRiskSummary(ctx context.Context) domain.RiskSummary {
	log := logger.FromContext(ctx)
	out := domain.RiskSummary{
		SectorWeights: domain.SectorWeights{},
	}

	values, err := h.PortfolioValueRepository.List(h.Db)
	if err != nil {
		log.Warnf("failed to list portfolio values: %s", err.Error())
		return out
	}
	series := domain.PortfolioValueSeries(values)
	if series.Len() < 2 {
		return out
	}

	start := series.Points[0].Date
	end := *series.LastDate()
	out.LastUpdated = &end
	out.IsFresh = util.DateGte(end, util.LastBusinessDay(h.now()))

	portfolioVolatility := calculator.AnnualizedVolatility(series.Values(), calculator.TradingDays)
	out.VolatilityPct = percent(portfolioVolatility)
	out.MaxDrawdownPct = percent(calculator.MaxDrawdown(series.Values()))

	benchmark, err := h.PriceService.FetchBenchmark(ctx, h.Benchmark, start, end)
	if err != nil {
		log.Warnf("failed to get benchmark %s, skipping beta: %s", h.Benchmark, err.Error())
	} else if beta := calculator.Beta(series, *benchmark); beta != nil {
		out.Beta = util.FloatPointer(util.Round(*beta, 2))
	}

	holdings, err := h.HoldingRepository.ListCurrent(h.Db)
	if err != nil {
		log.Warnf("failed to list holdings: %s", err.Error())
		return out
	}
	positionWeights := calculator.PositionWeights(holdings)
	if len(positionWeights) == 0 {
		return out
	}

	out.SectorWeights = calculator.SectorConcentration(h.sectorExposures(ctx, positionWeights))
	if top, weight, ok := calculator.TopSector(out.SectorWeights); ok {
		out.TopSector = &top
		out.TopSectorPct = util.FloatPointer(util.Round(weight*100, 2))
	}
	if hhi := calculator.HHI(out.SectorWeights); hhi != nil {
		out.HHI = util.FloatPointer(util.Round(*hhi, 4))
	}

	out.DiversificationRatio = h.diversificationRatio(ctx, positionWeights, portfolioVolatility, start, end)

	return out
}

// sectorExposures resolves each holding to sector fractions. Tracked funds
// are looked through, everything else gets a single label.
func (h riskServiceHandler) sectorExposures(ctx context.Context, positionWeights map[string]float64) []calculator.SectorExposure {
	log := logger.FromContext(ctx)

	exposures := []calculator.SectorExposure{}
	for symbol, weight := range positionWeights {
		if h.LookthroughService.IsTracked(ctx, symbol) {
			breakdown, err := h.LookthroughService.Breakdown(ctx, symbol)
			if err != nil {
				log.Warnf("look-through failed for %s: %s", symbol, err.Error())
			}
			if len(breakdown) > 0 {
				exposures = append(exposures, calculator.SectorExposure{
					Symbol:    symbol,
					Weight:    weight,
					Fractions: breakdown,
				})
				continue
			}
		}

		label, err := h.SectorService.Classify(ctx, symbol)
		if err != nil {
			log.Warnf("sector classification failed for %s: %s", symbol, err.Error())
		}
		if label == "" {
			label = domain.UnknownSector
		}
		exposures = append(exposures, calculator.SectorExposure{
			Symbol:    symbol,
			Weight:    weight,
			Fractions: map[string]float64{label: 1},
		})
	}

	return exposures
}

func (h riskServiceHandler) diversificationRatio(ctx context.Context, positionWeights map[string]float64, portfolioVolatility *float64, start, end time.Time) *float64 {
	if portfolioVolatility == nil {
		return nil
	}

	symbols := make([]string, 0, len(positionWeights))
	for symbol := range positionWeights {
		symbols = append(symbols, symbol)
	}
	prices, err := h.PriceService.FetchPrices(ctx, symbols, start, end)
	if err != nil {
		logger.FromContext(ctx).Warnf("failed to get holding prices, skipping diversification ratio: %s", err.Error())
		return nil
	}

	volatilities := map[string]float64{}
	for symbol, s := range prices {
		if vol := calculator.AnnualizedVolatility(s.Values(), calculator.TradingDays); vol != nil {
			volatilities[symbol] = *vol
		}
	}

	ratio := calculator.DiversificationRatio(positionWeights, volatilities, portfolioVolatility)
	if ratio == nil {
		return nil
	}
	return util.FloatPointer(util.Round(*ratio, 2))
}
