package etfholdings

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	userAgent           = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	defaultYahooBaseUrl = "https://query2.finance.yahoo.com"
)

type Client struct {
	HTTP         *http.Client
	YahooBaseUrl string
}

func NewClient() *Client {
	return &Client{
		HTTP:         &http.Client{Timeout: 20 * time.Second},
		YahooBaseUrl: defaultYahooBaseUrl,
	}
}

func (c *Client) get(ctx context.Context, endpoint string, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", accept)

	response, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", response.StatusCode, endpoint)
	}

	return body, nil
}

// FetchProviderCsv downloads a fund provider's holdings export. Empty column
// names are inferred from the header.
func (c *Client) FetchProviderCsv(ctx context.Context, csvUrl, sectorColumn, weightColumn string) (SectorWeights, error) {
	body, err := c.get(ctx, csvUrl, "text/csv,application/json,text/plain,*/*")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holdings csv: %w", err)
	}
	return ParseProviderCsv(bytes.NewReader(body), sectorColumn, weightColumn)
}

func (c *Client) FetchSchwabPortfolio(ctx context.Context, pageUrl string) (SectorWeights, error) {
	body, err := c.get(ctx, pageUrl, "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schwab portfolio: %w", err)
	}
	return ParseSchwabHtml(string(body))
}

func (c *Client) FetchYahooTopHoldings(ctx context.Context, symbol string) (SectorWeights, error) {
	endpoint := fmt.Sprintf(
		"%s/v10/finance/quoteSummary/%s?modules=topHoldings",
		c.YahooBaseUrl,
		url.PathEscape(strings.ToUpper(symbol)),
	)
	body, err := c.get(ctx, endpoint, "application/json,text/plain,*/*")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch yahoo top holdings for %s: %w", symbol, err)
	}
	return ParseYahooTopHoldings(body)
}
