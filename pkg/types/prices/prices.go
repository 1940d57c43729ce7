package prices

import "context"

// Coin is a search result from a price source.
type Coin struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Image  string `json:"image,omitempty"`
}

// Quote is the market data for one coin. Simulated marks demo data
// produced by the fallback path instead of a live market feed.
type Quote struct {
	Price        float64 `json:"price"`
	ChangePct24h float64 `json:"change_pct_24h"`
	Simulated    bool    `json:"simulated"`
}

type Source interface {
	Search(ctx context.Context, query string) ([]Coin, error)
	MarketData(ctx context.Context, id string) (Quote, error)
	MarketDataBatch(ctx context.Context, ids []string) (map[string]Quote, error)
}
