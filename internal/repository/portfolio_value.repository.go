package repository

import (
	"fmt"
	"portfolioengine/internal/db/models/postgres/public/model"
	"portfolioengine/internal/db/models/postgres/public/table"
	"portfolioengine/internal/domain"

	"github.com/go-jet/jet/v2/qrm"
)

type PortfolioValueRepository interface {
	List(db qrm.Queryable) ([]domain.PortfolioValue, error)
}

type portfolioValueRepositoryHandler struct{}

func NewPortfolioValueRepository() PortfolioValueRepository {
	return portfolioValueRepositoryHandler{}
}

func (h portfolioValueRepositoryHandler) List(db qrm.Queryable) ([]domain.PortfolioValue, error) {
	query := table.PortfolioValue.
		SELECT(table.PortfolioValue.AllColumns).
		ORDER_BY(table.PortfolioValue.Date.ASC())

	result := []model.PortfolioValue{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio values: %w", err)
	}

	out := []domain.PortfolioValue{}
	for _, r := range result {
		out = append(out, domain.PortfolioValue{
			Date:  r.Date,
			Value: r.Value,
		})
	}

	return out, nil
}
