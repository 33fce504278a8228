package l1_service

import (
	"context"
	"database/sql"
	"portfolioengine/internal/db/models/postgres/public/model"
	"portfolioengine/internal/domain"
	"portfolioengine/internal/logger"
	"portfolioengine/internal/repository"
	"strings"
	"time"
)

const SectorRefreshDays = 7

// SectorClient looks up a single sector label for a symbol. An empty label
// means the provider has no classification.
type SectorClient interface {
	GetSector(ctx context.Context, ticker string) (string, error)
}

type SectorService interface {
	// Classify always returns a label. On provider failure with nothing
	// cached it returns domain.UnknownSector and a *domain.ProviderError.
	Classify(ctx context.Context, symbol string) (string, error)
}

type sectorServiceHandler struct {
	Db                    *sql.DB
	StockSectorRepository repository.StockSectorRepository
	SectorClient          SectorClient
	RefreshAfter          time.Duration

	breaker *providerBreaker
	now     func() time.Time
}

func NewSectorService(db *sql.DB, stockSectorRepository repository.StockSectorRepository, sectorClient SectorClient) SectorService {
	return &sectorServiceHandler{
		Db:                    db,
		StockSectorRepository: stockSectorRepository,
		SectorClient:          sectorClient,
		RefreshAfter:          SectorRefreshDays * 24 * time.Hour,
		breaker:               newProviderBreaker("polygon", 15*time.Second),
		now:                   time.Now,
	}
}

func (h sectorServiceHandler) Classify(ctx context.Context, symbol string) (string, error) {
	log := logger.FromContext(ctx)
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	cached, err := h.StockSectorRepository.Get(h.Db, symbol)
	if err != nil {
		log.Warnf("failed to read cached sector for %s: %s", symbol, err.Error())
		cached = nil
	}
	if cached != nil && !domain.IsStale(&cached.UpdatedAt, h.now().UTC(), h.RefreshAfter) {
		return cached.Sector, nil
	}

	label, err := callProvider(ctx, h.breaker, symbol, func(ctx context.Context) (string, error) {
		return h.SectorClient.GetSector(ctx, symbol)
	})
	if err != nil {
		if cached != nil {
			log.Warnf("serving stale sector for %s: %s", symbol, err.Error())
			return cached.Sector, nil
		}
		return domain.UnknownSector, err
	}
	if label == "" {
		label = domain.UnknownSector
	}

	err = h.StockSectorRepository.Upsert(h.Db, model.StockSector{
		Symbol:    symbol,
		Sector:    label,
		UpdatedAt: h.now().UTC(),
	})
	if err != nil {
		log.Warnf("failed to cache sector for %s: %s", symbol, err.Error())
	}

	return label, nil
}
