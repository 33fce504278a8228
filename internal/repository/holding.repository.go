package repository

import (
	"fmt"
	"portfolioengine/internal/db/models/postgres/public/model"
	"portfolioengine/internal/db/models/postgres/public/table"
	"portfolioengine/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type HoldingRepository interface {
	ListCurrent(db qrm.Queryable) ([]domain.Holding, error)
}

type holdingRepositoryHandler struct{}

func NewHoldingRepository() HoldingRepository {
	return holdingRepositoryHandler{}
}

// ListCurrent returns every position with a positive value
func (h holdingRepositoryHandler) ListCurrent(db qrm.Queryable) ([]domain.Holding, error) {
	query := table.Holding.
		SELECT(table.Holding.AllColumns).
		WHERE(table.Holding.Value.GT(postgres.Float(0))).
		ORDER_BY(table.Holding.Symbol.ASC())

	result := []model.Holding{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	out := []domain.Holding{}
	for _, r := range result {
		out = append(out, domain.Holding{
			Symbol: r.Symbol,
			Value:  r.Value,
		})
	}

	return out, nil
}
