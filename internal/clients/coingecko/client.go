package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	apperrors "wallet-tracker-api/pkg/errors"
)

const moneyUnit = "usd"

// Client is a CoinGecko API client. Every call is a single attempt: there is
// no retry policy, a failed lookup is terminal for the request that made it.
type Client struct {
	apiKey      string
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

type Config struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	RateLimit int
}

func NewClient(config *Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = "https://api.coingecko.com/api/v3"
	}

	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	if config.RateLimit == 0 {
		config.RateLimit = 50 // requests per minute
	}

	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(config.RateLimit)), 1)

	return &Client{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		rateLimiter: limiter,
	}
}

// GetPrice fetches the current spot price of a coin denominated in USD.
func (c *Client) GetPrice(ctx context.Context, coinID string) (float64, error) {
	endpoint := fmt.Sprintf("/simple/price?ids=%s&vs_currencies=%s", url.QueryEscape(coinID), moneyUnit)

	data, err := c.makeRequest(ctx, endpoint)
	if err != nil {
		return 0, err
	}

	var response simplePriceResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return 0, apperrors.NewTransportError("coingecko: failed to parse price response", err)
	}

	quotes, exists := response[coinID]
	if !exists {
		return 0, apperrors.NewLookupError(fmt.Sprintf("coingecko: no price data for %q", coinID))
	}

	price, exists := quotes[moneyUnit]
	if !exists {
		return 0, apperrors.NewLookupError(fmt.Sprintf("coingecko: no %s quote for %q", moneyUnit, coinID))
	}

	return price, nil
}

// ListCoins fetches the full coin catalogue from /coins/list.
func (c *Client) ListCoins(ctx context.Context) ([]CoinListEntry, error) {
	data, err := c.makeRequest(ctx, "/coins/list")
	if err != nil {
		return nil, err
	}

	var coins []CoinListEntry
	if err := json.Unmarshal(data, &coins); err != nil {
		return nil, apperrors.NewTransportError("coingecko: failed to parse coin list", err)
	}

	return coins, nil
}

// GetCoin fetches the provider payload for one coin id and returns it as-is.
func (c *Client) GetCoin(ctx context.Context, coinID string) (json.RawMessage, error) {
	data, err := c.makeRequest(ctx, "/coins/"+url.PathEscape(coinID))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

// Ping checks that the CoinGecko API is reachable.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.makeRequest(ctx, "/ping")
	return err
}

func (c *Client) makeRequest(ctx context.Context, endpoint string) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, apperrors.NewTransportError("coingecko: rate limit wait cancelled", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, apperrors.NewTransportError("coingecko: failed to create request", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "wallet-tracker-api/1.0")

	if c.apiKey != "" {
		req.Header.Set("x-cg-pro-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewTransportError("coingecko: network error", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewTransportError("coingecko: failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp.StatusCode, body)
	}

	return body, nil
}

func (c *Client) handleErrorResponse(statusCode int, body []byte) error {
	message := fmt.Sprintf("coingecko: HTTP %d", statusCode)

	var errorResp errorResponse
	if len(body) > 0 && json.Unmarshal(body, &errorResp) == nil && errorResp.Error != "" {
		message = fmt.Sprintf("coingecko: HTTP %d - %s", statusCode, errorResp.Error)
	}

	if statusCode == http.StatusNotFound {
		return apperrors.NewLookupError(message)
	}

	return apperrors.NewTransportError(message, nil)
}
