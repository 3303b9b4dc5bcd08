package price

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.coingecko.com/api/v3"
	headerAPIKey   = "x-cg-demo-api-key"
	requestTimeout = 10 * time.Second
)

// Client is a minimal CoinGecko price client.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new CoinGecko client. apiKey may be empty for the
// public endpoint.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: defaultBaseURL,
	}
}

// BitcoinPrice fetches the current Bitcoin price in the given currency code.
func (c *Client) BitcoinPrice(ctx context.Context, currency string) (float64, error) {
	ccy := strings.ToLower(currency)

	params := url.Values{}
	params.Set("ids", "bitcoin")
	params.Set("vs_currencies", ccy)

	reqURL := fmt.Sprintf("%s/simple/price?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	var raw map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	p, ok := raw["bitcoin"][ccy]
	if !ok || p <= 0 {
		return 0, fmt.Errorf("price not available for %s", currency)
	}
	return p, nil
}
