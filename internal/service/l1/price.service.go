package l1_service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"portfolioengine/internal/db/models/postgres/public/model"
	"portfolioengine/internal/domain"
	"portfolioengine/internal/logger"
	"portfolioengine/internal/repository"
	"sort"
	"strings"
	"sync"
	"time"
)

type PriceService interface {
	// FetchPrices pulls adjusted closes for every symbol from the market data
	// providers. Symbols without adjusted closes are dropped when others
	// succeed.
	FetchPrices(ctx context.Context, symbols []string, start, end time.Time) (map[string]domain.PriceSeries, error)
	// FetchBenchmark serves the benchmark from the price cache, refreshing it
	// when the cache is behind the requested end date
	FetchBenchmark(ctx context.Context, symbol string, start, end time.Time) (*domain.PriceSeries, error)
	// RefreshPrices fetches and stores prices for the symbols, returning the
	// per symbol failures
	RefreshPrices(ctx context.Context, symbols []string, start, end time.Time) (map[string]error, error)
}

type priceServiceHandler struct {
	Db                 *sql.DB
	AdjPriceRepository repository.AdjustedPriceRepository
	Providers          []repository.PriceProvider
	NumWorkers         int

	breakers map[string]*providerBreaker
}

func NewPriceService(db *sql.DB, adjPriceRepository repository.AdjustedPriceRepository, providers ...repository.PriceProvider) PriceService {
	breakers := map[string]*providerBreaker{}
	for _, p := range providers {
		breakers[p.Name()] = newProviderBreaker(p.Name(), defaultProviderTimeout)
	}
	return &priceServiceHandler{
		Db:                 db,
		AdjPriceRepository: adjPriceRepository,
		Providers:          providers,
		NumWorkers:         10,
		breakers:           breakers,
	}
}

type fetchResult struct {
	Symbol string
	Prices []domain.AssetPrice
	Err    error
}

// fetchSymbol walks the providers in order until one has adjusted closes.
// A provider reporting unavailable adjusted closes outranks one reporting
// no data at all.
func (h priceServiceHandler) fetchSymbol(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	log := logger.FromContext(ctx)
	var lastErr error
	sawUnavailable := false

	for _, provider := range h.Providers {
		breaker, ok := h.breakers[provider.Name()]
		if !ok {
			breaker = newProviderBreaker(provider.Name(), defaultProviderTimeout)
		}
		prices, err := callProvider(ctx, breaker, symbol, func(ctx context.Context) ([]domain.AssetPrice, error) {
			return provider.GetAdjustedCloses(ctx, symbol, start, end)
		})
		if err == nil && len(prices) > 0 {
			return prices, nil
		}
		if err == nil {
			err = domain.ErrNoData
		}
		if errors.Is(err, domain.ErrDataUnavailable) {
			sawUnavailable = true
		}
		log.Warnf("%s price lookup failed for %s: %s", provider.Name(), symbol, err.Error())
		lastErr = err
	}

	if sawUnavailable {
		return nil, fmt.Errorf("failed to fetch prices for %s: %w", symbol, domain.ErrDataUnavailable)
	}
	if lastErr == nil || errors.Is(lastErr, domain.ErrNoData) {
		return nil, fmt.Errorf("failed to fetch prices for %s: %w", symbol, domain.ErrNoData)
	}
	return nil, fmt.Errorf("failed to fetch prices for %s: %w: %w", symbol, domain.ErrNoData, lastErr)
}

func (h priceServiceHandler) asyncFetchPrices(ctx context.Context, symbols []string, start, end time.Time) []fetchResult {
	numGoroutines := h.NumWorkers
	if numGoroutines <= 0 {
		numGoroutines = 10
	}

	inputCh := make(chan string, len(symbols))
	var wg sync.WaitGroup
	for _, s := range symbols {
		wg.Add(1)
		inputCh <- s
	}
	close(inputCh)

	var mu sync.Mutex
	results := []fetchResult{}

	for i := 0; i < numGoroutines; i++ {
		go func() {
			for symbol := range inputCh {
				res := fetchResult{Symbol: symbol}
				if err := ctx.Err(); err != nil {
					res.Err = err
				} else {
					res.Prices, res.Err = h.fetchSymbol(ctx, symbol, start, end)
				}
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
				wg.Done()
			}
		}()
	}

	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].Symbol < results[j].Symbol
	})
	return results
}

func dedupeSymbols(symbols []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func (h priceServiceHandler) FetchPrices(ctx context.Context, symbols []string, start, end time.Time) (map[string]domain.PriceSeries, error) {
	log := logger.FromContext(ctx)
	symbols = dedupeSymbols(symbols)
	if len(symbols) == 0 {
		return nil, domain.ErrNoData
	}

	results := h.asyncFetchPrices(ctx, symbols, start, end)

	out := map[string]domain.PriceSeries{}
	unavailable := []string{}
	var firstErr error
	for _, res := range results {
		if res.Err != nil {
			if errors.Is(res.Err, domain.ErrDataUnavailable) {
				unavailable = append(unavailable, res.Symbol)
			}
			if firstErr == nil {
				firstErr = res.Err
			}
			continue
		}
		out[res.Symbol] = domain.PriceSeriesFromAssetPrices(res.Symbol, res.Prices)
	}

	if len(out) == 0 {
		if len(unavailable) > 0 {
			return nil, fmt.Errorf("no adjusted closes for %s: %w", strings.Join(unavailable, ", "), domain.ErrDataUnavailable)
		}
		return nil, firstErr
	}
	if len(out) < len(symbols) {
		dropped := []string{}
		for _, s := range symbols {
			if _, ok := out[s]; !ok {
				dropped = append(dropped, s)
			}
		}
		log.Warnf("dropping symbols without adjusted closes: %s", strings.Join(dropped, ", "))
	}

	return out, nil
}

func (h priceServiceHandler) storePrices(symbol string, prices []domain.AssetPrice) error {
	now := time.Now().UTC()
	models := []model.AdjustedPrice{}
	for _, p := range prices {
		models = append(models, model.AdjustedPrice{
			Symbol:    symbol,
			Date:      p.Date,
			Price:     p.Price,
			CreatedAt: now,
		})
	}
	return h.AdjPriceRepository.Add(h.Db, models)
}

func (h priceServiceHandler) FetchBenchmark(ctx context.Context, symbol string, start, end time.Time) (*domain.PriceSeries, error) {
	log := logger.FromContext(ctx)
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	latest, err := h.AdjPriceRepository.LatestDate(h.Db, symbol)
	if err != nil {
		return nil, domain.NewProviderError("benchmark", symbol, err)
	}

	if domain.BenchmarkNeedsRefresh(latest, end) {
		prices, err := h.fetchSymbol(ctx, symbol, start, end)
		if err != nil {
			if latest == nil {
				return nil, domain.NewProviderError("benchmark", symbol, err)
			}
			log.Warnf("serving stale benchmark %s, refresh failed: %s", symbol, err.Error())
		} else if err := h.storePrices(symbol, prices); err != nil {
			log.Warnf("failed to cache benchmark %s: %s", symbol, err.Error())
			series := domain.PriceSeriesFromAssetPrices(symbol, prices).Between(start, end)
			return &series, nil
		}
	}

	cached, err := h.AdjPriceRepository.List(h.Db, symbol, start, end)
	if err != nil {
		return nil, domain.NewProviderError("benchmark", symbol, err)
	}
	if len(cached) == 0 {
		return nil, domain.NewProviderError("benchmark", symbol, domain.ErrNoData)
	}

	series := domain.PriceSeriesFromAssetPrices(symbol, cached)
	return &series, nil
}

func (h priceServiceHandler) RefreshPrices(ctx context.Context, symbols []string, start, end time.Time) (map[string]error, error) {
	log := logger.FromContext(ctx)
	symbols = dedupeSymbols(symbols)
	if len(symbols) == 0 {
		return nil, fmt.Errorf("no symbols to refresh")
	}

	failures := map[string]error{}
	for _, res := range h.asyncFetchPrices(ctx, symbols, start, end) {
		if res.Err != nil {
			failures[res.Symbol] = res.Err
			continue
		}
		if err := h.storePrices(res.Symbol, res.Prices); err != nil {
			failures[res.Symbol] = err
		}
	}

	if len(failures) == len(symbols) {
		return failures, fmt.Errorf("failed to refresh prices for all %d symbols", len(symbols))
	}
	log.Infof("refreshed prices for %d/%d symbols", len(symbols)-len(failures), len(symbols))

	return failures, nil
}
