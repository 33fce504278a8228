package util

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLastBusinessDay(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"monday goes to friday", NewDate(2024, 3, 11), NewDate(2024, 3, 8)},
		{"tuesday is same day", NewDate(2024, 3, 12), NewDate(2024, 3, 12)},
		{"friday is same day", NewDate(2024, 3, 8), NewDate(2024, 3, 8)},
		{"saturday goes to friday", NewDate(2024, 3, 9), NewDate(2024, 3, 8)},
		{"sunday goes to friday", NewDate(2024, 3, 10), NewDate(2024, 3, 8)},
		{"clock is dropped", time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC), NewDate(2024, 3, 13)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, LastBusinessDay(tt.now))
		})
	}
}

func TestSameMonth(t *testing.T) {
	require.True(t, SameMonth(NewDate(2024, 1, 2), NewDate(2024, 1, 31)))
	require.False(t, SameMonth(NewDate(2024, 1, 31), NewDate(2024, 2, 1)))
	require.False(t, SameMonth(NewDate(2023, 1, 5), NewDate(2024, 1, 5)))
}

func Test_parseSecrets(t *testing.T) {
	secrets, err := parseSecrets([]byte(`{"db": {"host": "localhost", "port": "5432", "user": "postgres", "password": "pw", "database": "folio"}, "jwt": "abc"}`))
	require.NoError(t, err)

	require.Equal(t, "SPY", secrets.Benchmark)
	require.Equal(t, 3009, secrets.Port)
	require.Equal(t, 5, secrets.Polygon.RequestsPerMinute)
	require.Equal(t, "host=localhost port=5432 user=postgres password=pw dbname=folio sslmode=disable", secrets.Db.ToConnectionStr())
}

func TestRound(t *testing.T) {
	require.Equal(t, 50.0, Round(49.999999, 2))
	require.Equal(t, -25.0, Round(-25.0000001, 2))
	require.Nil(t, RoundPointer(nil, 2))
	require.Nil(t, FinitePointer(math.NaN()))
	require.Nil(t, FinitePointer(math.Inf(1)))
}

func TestTitleCaseLabel(t *testing.T) {
	tests := map[string]string{
		"SERVICES-PREPACKAGED SOFTWARE": "Services-prepackaged Software",
		"consumer discretionary":        "Consumer Discretionary",
		"REAL ESTATE INVESTMENT TRUSTS": "REAL Estate Investment Trusts",
		"oil and gas":                   "Oil and Gas",
		"the energy of things":          "The Energy of Things",
		"IT services":                   "IT Services",
		"communication/media":           "Communication/Media",
		"  ":                            "",
	}
	for in, expected := range tests {
		t.Run(in, func(t *testing.T) {
			require.Equal(t, expected, TitleCaseLabel(in))
		})
	}
}
