package polygon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTickerDetails_SectorLabel(t *testing.T) {
	t.Run("sic description wins", func(t *testing.T) {
		label, ok := TickerDetails{
			SicDescription: "ELECTRONIC COMPUTERS",
			Industry:       "hardware",
			Type:           "CS",
		}.SectorLabel()
		require.True(t, ok)
		require.Equal(t, "Electronic Computers", label)
	})

	t.Run("falls back to industry then sector", func(t *testing.T) {
		label, ok := TickerDetails{Industry: "oil and gas"}.SectorLabel()
		require.True(t, ok)
		require.Equal(t, "Oil and Gas", label)

		label, ok = TickerDetails{Sector: "utilities"}.SectorLabel()
		require.True(t, ok)
		require.Equal(t, "Utilities", label)
	})

	t.Run("non common stock uses type label", func(t *testing.T) {
		label, ok := TickerDetails{Type: "ADRC"}.SectorLabel()
		require.True(t, ok)
		require.Equal(t, "ADR Common Stock", label)

		label, ok = TickerDetails{Type: "XYZ"}.SectorLabel()
		require.True(t, ok)
		require.Equal(t, "XYZ", label)
	})

	t.Run("common stock without data has no label", func(t *testing.T) {
		_, ok := TickerDetails{Type: "CS"}.SectorLabel()
		require.False(t, ok)
	})
}

func TestClient_GetSector(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v3/reference/tickers/AAPL", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Write([]byte(`{"status":"OK","results":{"ticker":"AAPL","type":"CS","sic_description":"ELECTRONIC COMPUTERS"}}`))
	}))
	defer server.Close()

	client := NewClient("test-key", 600)
	client.BaseUrl = server.URL

	sector, err := client.GetSector(context.Background(), "aapl")
	require.NoError(t, err)
	require.Equal(t, "Electronic Computers", sector)
}

func TestClient_GetSector_errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"status":"ERROR"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", 600)
	client.BaseUrl = server.URL

	_, err := client.GetSector(context.Background(), "AAPL")
	require.ErrorContains(t, err, "status 429")

	_, err = NewClient("", 5).GetSector(context.Background(), "AAPL")
	require.Error(t, err)
}
