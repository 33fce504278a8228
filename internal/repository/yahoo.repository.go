package repository

import (
	"context"
	"fmt"
	"portfolioengine/internal/domain"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// PriceProvider fetches daily adjusted closes from an external market data
// source. Implementations return domain.ErrNoData when the source has no
// bars at all and domain.ErrDataUnavailable when bars exist but carry no
// adjusted close.
type PriceProvider interface {
	Name() string
	GetAdjustedCloses(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error)
}

type yahooPriceRepositoryHandler struct{}

func NewYahooPriceRepository() PriceProvider {
	return yahooPriceRepositoryHandler{}
}

func (h yahooPriceRepositoryHandler) Name() string {
	return "yahoo"
}

func (h yahooPriceRepositoryHandler) GetAdjustedCloses(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// chart end is exclusive
	chartEnd := end.AddDate(0, 0, 1)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&chartEnd),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	out := []domain.AssetPrice{}
	bars := 0
	for iter.Next() {
		bars++
		bar := iter.Bar()
		if bar.AdjClose.IsZero() {
			continue
		}
		out = append(out, domain.AssetPrice{
			Symbol: symbol,
			Date:   time.Unix(int64(bar.Timestamp), 0).UTC(),
			Price:  bar.AdjClose,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	if bars == 0 {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, domain.ErrNoData)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, domain.ErrDataUnavailable)
	}

	return out, nil
}
