package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoData           = errors.New("no price data returned")
	ErrDataUnavailable  = errors.New("adjusted close data not available")
	ErrInsufficientData = errors.New("insufficient data")
	ErrEmptyPortfolio   = errors.New("portfolio has no positive weights")
	ErrInvalidParams    = errors.New("invalid strategy parameters")
)

// ProviderError is a failure of an external collaborator (classification,
// look-through, benchmark or price fetch). Callers decide whether to fall
// back to a neutral value or propagate it.
type ProviderError struct {
	Provider string
	Symbol   string
	Err      error
}

func NewProviderError(provider, symbol string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Symbol:   symbol,
		Err:      err,
	}
}

func (e *ProviderError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("%s provider failed: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s provider failed for %s: %v", e.Provider, e.Symbol, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
