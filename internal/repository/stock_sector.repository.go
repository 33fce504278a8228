package repository

import (
	"errors"
	"fmt"
	"portfolioengine/internal/db/models/postgres/public/model"
	"portfolioengine/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type StockSectorRepository interface {
	Get(db qrm.Queryable, symbol string) (*model.StockSector, error)
	Upsert(db qrm.Executable, s model.StockSector) error
}

type stockSectorRepositoryHandler struct{}

func NewStockSectorRepository() StockSectorRepository {
	return stockSectorRepositoryHandler{}
}

// Get returns the cached classification, or nil if the symbol was never
// classified
func (h stockSectorRepositoryHandler) Get(db qrm.Queryable, symbol string) (*model.StockSector, error) {
	query := table.StockSector.
		SELECT(table.StockSector.AllColumns).
		WHERE(table.StockSector.Symbol.EQ(postgres.String(symbol)))

	out := model.StockSector{}
	err := query.Query(db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sector for %s: %w", symbol, err)
	}

	return &out, nil
}

func (h stockSectorRepositoryHandler) Upsert(db qrm.Executable, s model.StockSector) error {
	query := table.StockSector.
		INSERT(table.StockSector.AllColumns).
		MODEL(s).
		ON_CONFLICT(table.StockSector.Symbol).
		DO_UPDATE(
			postgres.SET(
				table.StockSector.Sector.SET(table.StockSector.EXCLUDED.Sector),
				table.StockSector.UpdatedAt.SET(table.StockSector.EXCLUDED.UpdatedAt),
			),
		)

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to upsert sector for %s: %w", s.Symbol, err)
	}

	return nil
}
