package repository

import (
	"errors"
	"fmt"
	"portfolioengine/internal/db/models/postgres/public/model"
	. "portfolioengine/internal/db/models/postgres/public/table"
	"portfolioengine/internal/domain"
	"sync"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type latestDateCache map[string]time.Time

// AdjustedPriceRepository is the postgres cache of adjusted closes. The
// benchmark and refreshed holdings are read back from here.
type AdjustedPriceRepository interface {
	Add(db qrm.Executable, prices []model.AdjustedPrice) error
	List(db qrm.Queryable, symbol string, start, end time.Time) ([]domain.AssetPrice, error)
	LatestDate(db qrm.Queryable, symbol string) (*time.Time, error)
}

func NewAdjustedPriceRepository() AdjustedPriceRepository {
	return &adjustedPriceRepositoryHandler{
		latest:    latestDateCache{},
		readMutex: &sync.RWMutex{},
	}
}

type adjustedPriceRepositoryHandler struct {
	latest    latestDateCache
	readMutex *sync.RWMutex
}

func (h adjustedPriceRepositoryHandler) getLatestFromCache(symbol string) *time.Time {
	h.readMutex.RLock()
	defer h.readMutex.RUnlock()
	if d, ok := h.latest[symbol]; ok {
		return &d
	}
	return nil
}

func (h adjustedPriceRepositoryHandler) setLatest(symbol string, date time.Time) {
	h.readMutex.Lock()
	defer h.readMutex.Unlock()
	if existing, ok := h.latest[symbol]; !ok || date.After(existing) {
		h.latest[symbol] = date
	}
}

func (h adjustedPriceRepositoryHandler) Add(db qrm.Executable, adjPrices []model.AdjustedPrice) error {
	if len(adjPrices) == 0 {
		return nil
	}

	query := AdjustedPrice.
		INSERT(AdjustedPrice.MutableColumns).
		MODELS(adjPrices).
		ON_CONFLICT(
			AdjustedPrice.Symbol, AdjustedPrice.Date,
		).DO_UPDATE(
		SET(
			AdjustedPrice.Price.SET(AdjustedPrice.EXCLUDED.Price),
			AdjustedPrice.CreatedAt.SET(AdjustedPrice.EXCLUDED.CreatedAt),
		),
	)

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to add adjusted prices to db: %w", err)
	}

	for _, p := range adjPrices {
		h.setLatest(p.Symbol, p.Date)
	}

	return nil
}

func (h adjustedPriceRepositoryHandler) List(db qrm.Queryable, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	query := AdjustedPrice.
		SELECT(AdjustedPrice.AllColumns).
		WHERE(
			AND(
				AdjustedPrice.Symbol.EQ(String(symbol)),
				AdjustedPrice.Date.BETWEEN(DateT(start), DateT(end)),
			),
		).
		ORDER_BY(AdjustedPrice.Date.ASC())

	result := []model.AdjustedPrice{}
	err := query.Query(db, &result)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to list prices for %s: %w", symbol, err)
	}

	out := []domain.AssetPrice{}
	for _, p := range result {
		out = append(out, domain.AssetPrice{
			Symbol: p.Symbol,
			Date:   p.Date,
			Price:  p.Price,
		})
	}

	return out, nil
}

// LatestDate returns the most recent cached date for the symbol, or nil if
// nothing is cached
func (h adjustedPriceRepositoryHandler) LatestDate(db qrm.Queryable, symbol string) (*time.Time, error) {
	if d := h.getLatestFromCache(symbol); d != nil {
		return d, nil
	}

	query := AdjustedPrice.
		SELECT(AdjustedPrice.AllColumns).
		WHERE(AdjustedPrice.Symbol.EQ(String(symbol))).
		ORDER_BY(AdjustedPrice.Date.DESC()).
		LIMIT(1)

	result := model.AdjustedPrice{}
	err := query.Query(db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest price date for %s: %w", symbol, err)
	}

	h.setLatest(symbol, result.Date)
	return &result.Date, nil
}
