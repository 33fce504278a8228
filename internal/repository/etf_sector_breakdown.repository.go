package repository

import (
	"database/sql"
	"fmt"
	"portfolioengine/internal/db/models/postgres/public/model"
	"portfolioengine/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type EtfSectorBreakdownRepository interface {
	List(db qrm.Queryable, symbol string) ([]model.EtfSectorBreakdown, error)
	// Replace swaps the stored breakdown for the symbol in one transaction
	Replace(db *sql.DB, symbol string, rows []model.EtfSectorBreakdown) error
}

type etfSectorBreakdownRepositoryHandler struct{}

func NewEtfSectorBreakdownRepository() EtfSectorBreakdownRepository {
	return etfSectorBreakdownRepositoryHandler{}
}

func (h etfSectorBreakdownRepositoryHandler) List(db qrm.Queryable, symbol string) ([]model.EtfSectorBreakdown, error) {
	query := table.EtfSectorBreakdown.
		SELECT(table.EtfSectorBreakdown.AllColumns).
		WHERE(table.EtfSectorBreakdown.Symbol.EQ(postgres.String(symbol))).
		ORDER_BY(table.EtfSectorBreakdown.Weight.DESC())

	out := []model.EtfSectorBreakdown{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list sector breakdown for %s: %w", symbol, err)
	}

	return out, nil
}

func (h etfSectorBreakdownRepositoryHandler) Replace(db *sql.DB, symbol string, rows []model.EtfSectorBreakdown) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	deleteQuery := table.EtfSectorBreakdown.
		DELETE().
		WHERE(table.EtfSectorBreakdown.Symbol.EQ(postgres.String(symbol)))
	if _, err := deleteQuery.Exec(tx); err != nil {
		return fmt.Errorf("failed to clear sector breakdown for %s: %w", symbol, err)
	}

	if len(rows) == 0 {
		return tx.Commit()
	}

	insertQuery := table.EtfSectorBreakdown.
		INSERT(table.EtfSectorBreakdown.MutableColumns).
		MODELS(rows).
		ON_CONFLICT(table.EtfSectorBreakdown.Symbol, table.EtfSectorBreakdown.Sector).
		DO_UPDATE(
			postgres.SET(
				table.EtfSectorBreakdown.Weight.SET(table.EtfSectorBreakdown.EXCLUDED.Weight),
				table.EtfSectorBreakdown.Source.SET(table.EtfSectorBreakdown.EXCLUDED.Source),
				table.EtfSectorBreakdown.UpdatedAt.SET(table.EtfSectorBreakdown.EXCLUDED.UpdatedAt),
			),
		)
	if _, err := insertQuery.Exec(tx); err != nil {
		return fmt.Errorf("failed to insert sector breakdown for %s: %w", symbol, err)
	}

	return tx.Commit()
}
