package repository

import (
	"context"
	"fmt"
	"portfolioengine/internal/domain"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

type alpacaRepositoryHandler struct {
	MdClient *marketdata.Client
}

// NewAlpacaRepository returns the fallback price provider backed by alpaca
// daily bars. Bars are requested fully adjusted so Close is comparable to
// an adjusted close.
func NewAlpacaRepository(apiKey, apiSecret string, endpoint string) PriceProvider {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return &alpacaRepositoryHandler{
		MdClient: mdClient,
	}
}

func (h alpacaRepositoryHandler) Name() string {
	return "alpaca"
}

func (h alpacaRepositoryHandler) GetAdjustedCloses(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bars, err := h.MdClient.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneDay,
		Adjustment: marketdata.All,
		Start:      start,
		End:        end.AddDate(0, 0, 1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get bars for %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("failed to get bars for %s: %w", symbol, domain.ErrNoData)
	}

	out := []domain.AssetPrice{}
	for _, bar := range bars {
		if bar.Close <= 0 {
			continue
		}
		out = append(out, domain.AssetPrice{
			Symbol: symbol,
			Date:   bar.Timestamp.UTC(),
			Price:  decimal.NewFromFloat(bar.Close),
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("failed to get bars for %s: %w", symbol, domain.ErrDataUnavailable)
	}

	return out, nil
}
