package prices

import (
	"context"
	"log/slog"

	"webland/pkg/integrations/memcache"
	"webland/pkg/integrations/prices/coingecko"
	"webland/pkg/integrations/prices/simulated"
	"webland/pkg/types/prices"
)

var _ prices.Source = (*Service)(nil)

// Service fronts the live market API with a simulated fallback. When a
// live fetch fails the service fabricates a quote near the last known
// price instead of erroring, so the panel always has numbers to show.
// Fabricated quotes are labeled Simulated.
type Service struct {
	live      prices.Source
	simulated *simulated.Source
	lastKnown *memcache.Cache[string, float64]
	logger    *slog.Logger
}

type Option func(*Service)

// WithLive overrides the live source, mainly for tests.
func WithLive(live prices.Source) Option {
	return func(s *Service) {
		s.live = live
	}
}

func WithSimulated(sim *simulated.Source) Option {
	return func(s *Service) {
		s.simulated = sim
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func NewService(options ...Option) *Service {
	s := &Service{
		live:      coingecko.NewClient(),
		simulated: simulated.NewSource(),
		lastKnown: memcache.New[string, float64](),
		logger:    slog.Default(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Seed primes the last-known price for a coin, e.g. from a persisted
// watchlist entry, so the first fallback quote drifts from it rather
// than from the built-in base table.
func (s *Service) Seed(id string, price float64) {
	if price > 0 {
		s.lastKnown.Set(id, price)
	}
}

func (s *Service) Search(ctx context.Context, query string) ([]prices.Coin, error) {
	coins, err := s.live.Search(ctx, query)
	if err == nil {
		return coins, nil
	}
	s.logger.Warn("live coin search failed, using simulated results", "query", query, "error", err)
	return s.simulated.Search(ctx, query)
}

func (s *Service) MarketData(ctx context.Context, id string) (prices.Quote, error) {
	quotes, err := s.MarketDataBatch(ctx, []string{id})
	if err != nil {
		return prices.Quote{}, err
	}
	return quotes[id], nil
}

// MarketDataBatch never fails outright. Coins the live source answered
// for get real quotes; the rest get simulated ones.
func (s *Service) MarketDataBatch(ctx context.Context, ids []string) (map[string]prices.Quote, error) {
	if len(ids) == 0 {
		return map[string]prices.Quote{}, nil
	}

	quotes, err := s.live.MarketDataBatch(ctx, ids)
	if err != nil {
		s.logger.Warn("live market data failed, using simulated quotes", "coins", len(ids), "error", err)
		quotes = map[string]prices.Quote{}
	}

	out := make(map[string]prices.Quote, len(ids))
	for _, id := range ids {
		if quote, ok := quotes[id]; ok && quote.Price > 0 {
			s.lastKnown.Set(id, quote.Price)
			out[id] = quote
			continue
		}
		out[id] = s.fallbackQuote(id)
	}
	return out, nil
}

func (s *Service) fallbackQuote(id string) prices.Quote {
	if prev, ok := s.lastKnown.Get(id); ok {
		quote := s.simulated.PerturbFrom(prev)
		s.lastKnown.Set(id, quote.Price)
		return quote
	}
	quote, _ := s.simulated.MarketData(context.Background(), id)
	s.lastKnown.Set(id, quote.Price)
	return quote
}
