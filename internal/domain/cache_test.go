package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsStale(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	ttl := 7 * 24 * time.Hour

	t.Run("never fetched", func(t *testing.T) {
		require.True(t, IsStale(nil, now, ttl))
		require.True(t, IsStale(&time.Time{}, now, ttl))
	})

	t.Run("inside ttl", func(t *testing.T) {
		fetched := now.AddDate(0, 0, -6)
		require.False(t, IsStale(&fetched, now, ttl))
		require.False(t, CacheEntry[string]{Value: "Tech", FetchedAt: fetched}.IsStale(now, ttl))
	})

	t.Run("past ttl", func(t *testing.T) {
		fetched := now.AddDate(0, 0, -8)
		require.True(t, IsStale(&fetched, now, ttl))
	})
}

func TestBenchmarkNeedsRefresh(t *testing.T) {
	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	require.True(t, BenchmarkNeedsRefresh(nil, end))

	twoDays := end.AddDate(0, 0, -2)
	require.False(t, BenchmarkNeedsRefresh(&twoDays, end))

	threeDays := end.AddDate(0, 0, -3)
	require.True(t, BenchmarkNeedsRefresh(&threeDays, end))
}

func TestNewPriceSeries(t *testing.T) {
	d1 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	series := NewPriceSeries("AAPL", []PricePoint{
		{Date: d2, Price: 11},
		{Date: d1, Price: 10},
		{Date: d2, Price: 12},
	})

	require.Equal(t, []PricePoint{
		{Date: d1, Price: 10},
		{Date: d2, Price: 12},
	}, series.Points)
	require.Equal(t, d2, *series.LastDate())
}

func TestParseStrategyKind(t *testing.T) {
	require.Equal(t, StrategyKind_BuyAndHold, ParseStrategyKind("buy_hold"))
	require.Equal(t, StrategyKind_BuyAndHold, ParseStrategyKind(" Buy_Hold "))
	require.Equal(t, StrategyKind_SmaCross, ParseStrategyKind("sma"))
	require.Equal(t, StrategyKind_SmaCross, ParseStrategyKind("something else"))
}
