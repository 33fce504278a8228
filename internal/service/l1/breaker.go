package l1_service

import (
	"context"
	"errors"
	"portfolioengine/internal/domain"
	"time"

	"github.com/sony/gobreaker"
)

const defaultProviderTimeout = 20 * time.Second

// providerBreaker opens after 3 consecutive provider failures. Missing-data
// answers count as successful calls.
type providerBreaker struct {
	provider string
	timeout  time.Duration
	cb       *gobreaker.CircuitBreaker
}

func newProviderBreaker(provider string, timeout time.Duration) *providerBreaker {
	st := gobreaker.Settings{Name: provider}
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		return counts.ConsecutiveFailures >= 3
	}
	st.Timeout = 30 * time.Second
	st.IsSuccessful = func(err error) bool {
		return err == nil ||
			errors.Is(err, domain.ErrNoData) ||
			errors.Is(err, domain.ErrDataUnavailable)
	}

	return &providerBreaker{
		provider: provider,
		timeout:  timeout,
		cb:       gobreaker.NewCircuitBreaker(st),
	}
}

type callResult[T any] struct {
	value T
	err   error
}

// callProvider runs fn behind the breaker with a per call timeout. Any
// failure other than missing data comes back as a *domain.ProviderError.
func callProvider[T any](ctx context.Context, b *providerBreaker, symbol string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	out, err := b.cb.Execute(func() (interface{}, error) {
		resultCh := make(chan callResult[T], 1)
		go func() {
			v, err := fn(ctx)
			resultCh <- callResult[T]{value: v, err: err}
		}()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res := <-resultCh:
			if res.err != nil {
				return nil, res.err
			}
			return res.value, nil
		}
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoData) || errors.Is(err, domain.ErrDataUnavailable) {
			return zero, err
		}
		return zero, domain.NewProviderError(b.provider, symbol, err)
	}

	value, _ := out.(T)
	return value, nil
}
