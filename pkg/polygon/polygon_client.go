package polygon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"portfolioengine/internal/util"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseUrl = "https://api.polygon.io"

var typeLabels = map[string]string{
	"ETF":   "ETF",
	"ETN":   "ETN",
	"ADRC":  "ADR Common Stock",
	"ADRP":  "ADR Preferred",
	"ADRR":  "ADR Rights",
	"ADRW":  "ADR Warrants",
	"PFD":   "Preferred Stock",
	"FUND":  "Fund",
	"TRUST": "Trust",
	"WRT":   "Warrant",
	"RTS":   "Rights",
}

type TickerDetails struct {
	Ticker         string `json:"ticker"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	SicDescription string `json:"sic_description"`
	Industry       string `json:"industry"`
	Sector         string `json:"sector"`
}

type tickerDetailsResponse struct {
	Status  string         `json:"status"`
	Results *TickerDetails `json:"results"`
}

// SectorLabel picks the most specific classification polygon has for the
// ticker. Common stock with no industry data has no label.
func (d TickerDetails) SectorLabel() (string, bool) {
	for _, candidate := range []string{d.SicDescription, d.Industry, d.Sector} {
		if strings.TrimSpace(candidate) != "" {
			return util.TitleCaseLabel(candidate), true
		}
	}
	if d.Type != "" && d.Type != "CS" {
		if label, ok := typeLabels[d.Type]; ok {
			return label, true
		}
		return d.Type, true
	}
	return "", false
}

type Client struct {
	HTTP    *http.Client
	Limiter *rate.Limiter
	ApiKey  string
	BaseUrl string
}

func NewClient(apiKey string, requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 5
	}
	return &Client{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		Limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
		ApiKey:  apiKey,
		BaseUrl: defaultBaseUrl,
	}
}

func (c *Client) GetTickerDetails(ctx context.Context, ticker string) (*TickerDetails, error) {
	if c.ApiKey == "" {
		return nil, fmt.Errorf("missing polygon api key")
	}
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf(
		"%s/v3/reference/tickers/%s?apiKey=%s",
		c.BaseUrl,
		url.PathEscape(strings.ToUpper(ticker)),
		url.QueryEscape(c.ApiKey),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticker details for %s: %w", ticker, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}
	if response.StatusCode != http.StatusOK {
		body := string(responseBody)
		if len(body) > 200 {
			body = body[:200]
		}
		return nil, fmt.Errorf("failed to get ticker details for %s: status %d: %s", ticker, response.StatusCode, body)
	}

	out := tickerDetailsResponse{}
	if err := json.Unmarshal(responseBody, &out); err != nil {
		return nil, fmt.Errorf("failed to parse ticker details for %s: %w", ticker, err)
	}
	if out.Results == nil {
		return nil, fmt.Errorf("no ticker details for %s", ticker)
	}

	return out.Results, nil
}

// GetSector returns the sector label for the ticker, or "" if polygon has no
// classification for it
func (c *Client) GetSector(ctx context.Context, ticker string) (string, error) {
	details, err := c.GetTickerDetails(ctx, ticker)
	if err != nil {
		return "", err
	}
	label, _ := details.SectorLabel()
	return label, nil
}
