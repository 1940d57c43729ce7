package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"webland/pkg/types/prices"

	"golang.org/x/time/rate"
)

var _ prices.Source = (*Client)(nil)

// Client talks to the public CoinGecko API. The free tier throttles
// hard, so every request passes a local rate limiter first.
type Client struct {
	BaseURL    string
	VsCurrency string
	Client     *http.Client
	limiter    *rate.Limiter
}

func NewClient() *Client {
	return &Client{
		BaseURL:    "https://api.coingecko.com/api/v3",
		VsCurrency: "eur",
		Client:     &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("coingecko request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("coingecko unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("coingecko failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) Search(ctx context.Context, query string) ([]prices.Coin, error) {
	endpoint := fmt.Sprintf("%s/search?query=%s", c.BaseURL, url.QueryEscape(query))

	var result struct {
		Coins []struct {
			ID     string `json:"id"`
			Symbol string `json:"symbol"`
			Name   string `json:"name"`
			Large  string `json:"large"`
			Thumb  string `json:"thumb"`
		} `json:"coins"`
	}
	if err := c.get(ctx, endpoint, &result); err != nil {
		return nil, err
	}

	coins := make([]prices.Coin, 0, len(result.Coins))
	for _, coin := range result.Coins {
		image := coin.Large
		if image == "" {
			image = coin.Thumb
		}
		coins = append(coins, prices.Coin{
			ID:     coin.ID,
			Symbol: coin.Symbol,
			Name:   coin.Name,
			Image:  image,
		})
	}
	return coins, nil
}

func (c *Client) MarketData(ctx context.Context, id string) (prices.Quote, error) {
	quotes, err := c.MarketDataBatch(ctx, []string{id})
	if err != nil {
		return prices.Quote{}, err
	}
	quote, ok := quotes[id]
	if !ok {
		return prices.Quote{}, fmt.Errorf("coingecko price not found for coin: %s", id)
	}
	return quote, nil
}

func (c *Client) MarketDataBatch(ctx context.Context, ids []string) (map[string]prices.Quote, error) {
	if len(ids) == 0 {
		return map[string]prices.Quote{}, nil
	}

	endpoint := fmt.Sprintf("%s/coins/markets?vs_currency=%s&ids=%s&price_change_percentage=24h",
		c.BaseURL,
		url.QueryEscape(c.VsCurrency),
		url.QueryEscape(strings.Join(ids, ",")),
	)

	var results []struct {
		ID           string  `json:"id"`
		CurrentPrice float64 `json:"current_price"`
		ChangePct24h float64 `json:"price_change_percentage_24h"`
	}
	if err := c.get(ctx, endpoint, &results); err != nil {
		return nil, err
	}

	quotes := make(map[string]prices.Quote, len(results))
	for _, result := range results {
		quotes[result.ID] = prices.Quote{
			Price:        result.CurrentPrice,
			ChangePct24h: result.ChangePct24h,
		}
	}
	return quotes, nil
}
