package l1_service

import (
	"context"
	"database/sql"
	"fmt"
	"portfolioengine/internal/db/models/postgres/public/model"
	"portfolioengine/internal/domain"
	"portfolioengine/internal/logger"
	"portfolioengine/internal/repository"
	"portfolioengine/pkg/etfholdings"
	"strings"
	"sync"
	"time"
)

// HoldingsClient fetches a pooled instrument's sector weights from the
// supported sources
type HoldingsClient interface {
	FetchProviderCsv(ctx context.Context, csvUrl, sectorColumn, weightColumn string) (etfholdings.SectorWeights, error)
	FetchSchwabPortfolio(ctx context.Context, pageUrl string) (etfholdings.SectorWeights, error)
	FetchYahooTopHoldings(ctx context.Context, symbol string) (etfholdings.SectorWeights, error)
}

type LookthroughService interface {
	// IsTracked reports whether the symbol has a registered holdings source
	IsTracked(ctx context.Context, symbol string) bool
	// Breakdown returns sector fractions summing to 1, or an empty map when
	// no source produced weights
	Breakdown(ctx context.Context, symbol string) (map[string]float64, error)
	// RegisterSource records where to read a fund's holdings from. An empty
	// sourceType is inferred from the url.
	RegisterSource(ctx context.Context, symbol, url, sourceType string) error
}

type lookthroughServiceHandler struct {
	Db                           *sql.DB
	EtfSourceRepository          repository.EtfSourceRepository
	EtfSectorBreakdownRepository repository.EtfSectorBreakdownRepository
	HoldingsClient               HoldingsClient
	SectorClient                 SectorClient
	RefreshAfter                 time.Duration

	breaker   *providerBreaker
	seedMutex *sync.Mutex
	seeded    *bool
	now       func() time.Time
}

func NewLookthroughService(
	db *sql.DB,
	etfSourceRepository repository.EtfSourceRepository,
	etfSectorBreakdownRepository repository.EtfSectorBreakdownRepository,
	holdingsClient HoldingsClient,
	sectorClient SectorClient,
) LookthroughService {
	seeded := false
	return &lookthroughServiceHandler{
		Db:                           db,
		EtfSourceRepository:          etfSourceRepository,
		EtfSectorBreakdownRepository: etfSectorBreakdownRepository,
		HoldingsClient:               holdingsClient,
		SectorClient:                 sectorClient,
		RefreshAfter:                 SectorRefreshDays * 24 * time.Hour,
		breaker:                      newProviderBreaker("etf-holdings", defaultProviderTimeout),
		seedMutex:                    &sync.Mutex{},
		seeded:                       &seeded,
		now:                          time.Now,
	}
}

func (h lookthroughServiceHandler) ensureDefaultSources() error {
	h.seedMutex.Lock()
	defer h.seedMutex.Unlock()
	if *h.seeded {
		return nil
	}
	if err := h.EtfSourceRepository.EnsureDefaults(h.Db); err != nil {
		return err
	}
	*h.seeded = true
	return nil
}

func (h lookthroughServiceHandler) IsTracked(ctx context.Context, symbol string) bool {
	log := logger.FromContext(ctx)
	if err := h.ensureDefaultSources(); err != nil {
		log.Warnf("failed to seed etf sources: %s", err.Error())
	}

	source, err := h.EtfSourceRepository.Get(h.Db, strings.ToUpper(strings.TrimSpace(symbol)))
	if err != nil {
		log.Warnf("failed to look up etf source for %s: %s", symbol, err.Error())
		return false
	}
	return source != nil
}

func (h lookthroughServiceHandler) RegisterSource(ctx context.Context, symbol, url, sourceType string) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if sourceType == "" {
		sourceType = repository.InferEtfSourceType(url)
	}
	if sourceType == "" {
		return fmt.Errorf("could not infer holdings source type for %s from %q", symbol, url)
	}

	s := model.EtfSource{
		Symbol:     symbol,
		SourceType: sourceType,
		UpdatedAt:  h.now().UTC(),
	}
	if url != "" {
		s.URL = &url
	}
	return h.EtfSourceRepository.Upsert(h.Db, s)
}

func weightsFromRows(rows []model.EtfSectorBreakdown) map[string]float64 {
	out := map[string]float64{}
	for _, r := range rows {
		out[r.Sector] += r.Weight
	}
	return out
}

func (h lookthroughServiceHandler) fetch(ctx context.Context, symbol string, fn func(ctx context.Context) (etfholdings.SectorWeights, error)) etfholdings.SectorWeights {
	weights, err := callProvider(ctx, h.breaker, symbol, fn)
	if err != nil {
		logger.FromContext(ctx).Warnf("holdings lookup failed for %s: %s", symbol, err.Error())
		return nil
	}
	return weights
}

// resolveSource finds a source for an unregistered symbol by probing the
// schwab etf and mutual fund pages, then yahoo. The weights found while
// probing are returned so they are not fetched twice.
func (h lookthroughServiceHandler) resolveSource(ctx context.Context, symbol string) (*model.EtfSource, etfholdings.SectorWeights) {
	for _, pageUrl := range []string{
		repository.SchwabEtfPortfolioUrl(symbol),
		repository.SchwabMutualFundPortfolioUrl(symbol),
	} {
		weights := h.fetch(ctx, symbol, func(ctx context.Context) (etfholdings.SectorWeights, error) {
			return h.HoldingsClient.FetchSchwabPortfolio(ctx, pageUrl)
		})
		if len(weights) > 0 {
			u := pageUrl
			return &model.EtfSource{
				Symbol:     symbol,
				SourceType: repository.EtfSourceType_SchwabPortfolio,
				URL:        &u,
			}, weights
		}
	}

	weights := h.fetch(ctx, symbol, func(ctx context.Context) (etfholdings.SectorWeights, error) {
		return h.HoldingsClient.FetchYahooTopHoldings(ctx, symbol)
	})
	return &model.EtfSource{
		Symbol:     symbol,
		SourceType: repository.EtfSourceType_YahooTopHoldings,
	}, weights
}

func (h lookthroughServiceHandler) fetchFromSource(ctx context.Context, source model.EtfSource) etfholdings.SectorWeights {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	url := deref(source.URL)

	switch source.SourceType {
	case repository.EtfSourceType_ProviderCsv:
		if url == "" {
			return nil
		}
		return h.fetch(ctx, source.Symbol, func(ctx context.Context) (etfholdings.SectorWeights, error) {
			return h.HoldingsClient.FetchProviderCsv(ctx, url, deref(source.SectorColumn), deref(source.WeightColumn))
		})
	case repository.EtfSourceType_SchwabPortfolio:
		if url == "" {
			return nil
		}
		return h.fetch(ctx, source.Symbol, func(ctx context.Context) (etfholdings.SectorWeights, error) {
			return h.HoldingsClient.FetchSchwabPortfolio(ctx, url)
		})
	case repository.EtfSourceType_YahooTopHoldings:
		return h.fetch(ctx, source.Symbol, func(ctx context.Context) (etfholdings.SectorWeights, error) {
			return h.HoldingsClient.FetchYahooTopHoldings(ctx, source.Symbol)
		})
	}
	return nil
}

func (h lookthroughServiceHandler) Breakdown(ctx context.Context, symbol string) (map[string]float64, error) {
	log := logger.FromContext(ctx)
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	now := h.now().UTC()

	if err := h.ensureDefaultSources(); err != nil {
		log.Warnf("failed to seed etf sources: %s", err.Error())
	}

	cached, err := h.EtfSectorBreakdownRepository.List(h.Db, symbol)
	if err != nil {
		log.Warnf("failed to read cached breakdown for %s: %s", symbol, err.Error())
		cached = nil
	}
	if len(cached) > 0 {
		var updatedAt *time.Time
		for _, r := range cached {
			if updatedAt == nil || r.UpdatedAt.After(*updatedAt) {
				u := r.UpdatedAt
				updatedAt = &u
			}
		}
		if !domain.IsStale(updatedAt, now, h.RefreshAfter) {
			return weightsFromRows(cached), nil
		}
	}

	var weights etfholdings.SectorWeights
	source, err := h.EtfSourceRepository.Get(h.Db, symbol)
	if err != nil {
		log.Warnf("failed to read etf source for %s: %s", symbol, err.Error())
	}
	if source == nil {
		source, weights = h.resolveSource(ctx, symbol)
		source.UpdatedAt = now
		if err := h.EtfSourceRepository.Upsert(h.Db, *source); err != nil {
			log.Warnf("failed to store etf source for %s: %s", symbol, err.Error())
		}
	} else {
		weights = h.fetchFromSource(ctx, *source)
	}

	label := "Yahoo"
	if source.URL != nil && *source.URL != "" {
		label = *source.URL
	}

	if len(weights) == 0 && source.SourceType != repository.EtfSourceType_YahooTopHoldings {
		weights = h.fetch(ctx, symbol, func(ctx context.Context) (etfholdings.SectorWeights, error) {
			return h.HoldingsClient.FetchYahooTopHoldings(ctx, symbol)
		})
		label = "Yahoo"
	}

	if len(weights) == 0 {
		sector, err := callProvider(ctx, h.breaker, symbol, func(ctx context.Context) (string, error) {
			return h.SectorClient.GetSector(ctx, symbol)
		})
		if err != nil {
			log.Warnf("single sector fallback failed for %s: %s", symbol, err.Error())
		} else if sector != "" {
			weights = etfholdings.SectorWeights{sector: 1}
			label = "Polygon"
		}
	}

	if len(weights) == 0 {
		if len(cached) > 0 {
			log.Warnf("serving stale breakdown for %s", symbol)
			return weightsFromRows(cached), nil
		}
		return map[string]float64{}, domain.NewProviderError("lookthrough", symbol, domain.ErrNoData)
	}

	if err := h.storeBreakdown(symbol, weights, label, now); err != nil {
		log.Warnf("failed to cache breakdown for %s: %s", symbol, err.Error())
	}

	return map[string]float64(weights), nil
}

func (h lookthroughServiceHandler) storeBreakdown(symbol string, weights etfholdings.SectorWeights, source string, now time.Time) error {
	rows := []model.EtfSectorBreakdown{}
	for sector, w := range weights {
		rows = append(rows, model.EtfSectorBreakdown{
			Symbol:    symbol,
			Sector:    sector,
			Weight:    w,
			Source:    source,
			UpdatedAt: now,
		})
	}

	return h.EtfSectorBreakdownRepository.Replace(h.Db, symbol, rows)
}
