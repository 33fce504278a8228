package domain

import "time"

// CacheEntry is a cached value and the time it was fetched
type CacheEntry[T any] struct {
	Value     T
	FetchedAt time.Time
}

func (e CacheEntry[T]) IsStale(now time.Time, ttl time.Duration) bool {
	return IsStale(&e.FetchedAt, now, ttl)
}

// IsStale reports whether an entry fetched at fetchedAt should be refreshed.
// Entries that were never fetched are stale.
func IsStale(fetchedAt *time.Time, now time.Time, ttl time.Duration) bool {
	if fetchedAt == nil || fetchedAt.IsZero() {
		return true
	}
	return now.Sub(*fetchedAt) > ttl
}

// BenchmarkNeedsRefresh reports whether cached benchmark prices ending at
// lastCached are too far behind the requested end date
func BenchmarkNeedsRefresh(lastCached *time.Time, end time.Time) bool {
	if lastCached == nil {
		return true
	}
	return end.Sub(*lastCached) > 2*24*time.Hour
}
