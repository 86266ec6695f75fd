// Package rates fetches fiat reference rates for native tokens. Display
// only; balances themselves never pass through floating point.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const coingeckoAPI = "https://api.coingecko.com/api/v3"

// coinIDs maps network symbols to CoinGecko coin ids. Testnet tokens price
// as their mainnet counterparts.
var coinIDs = map[string]string{
	"ETH":  "ethereum",
	"BNB":  "binancecoin",
	"tBNB": "binancecoin",
}

// Client is a client for the CoinGecko price API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a CoinGecko client.
func NewClient() *Client {
	return &Client{
		baseURL: coingeckoAPI,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// USDRate returns the USD rate for the given network symbol as a decimal
// string with two fraction digits.
func (c *Client) USDRate(ctx context.Context, symbol string) (string, error) {
	coinID, ok := coinIDs[symbol]
	if !ok {
		return "", fmt.Errorf("unknown symbol %q", symbol)
	}

	url := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd", c.baseURL, coinID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to get rate: status %d", resp.StatusCode)
	}

	var priceResp map[string]struct {
		USD float64 `json:"usd"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&priceResp); err != nil {
		return "", fmt.Errorf("failed to decode rate: %w", err)
	}

	entry, ok := priceResp[coinID]
	if !ok {
		return "", fmt.Errorf("rate for %q missing from response", coinID)
	}

	return strconv.FormatFloat(entry.USD, 'f', 2, 64), nil
}
