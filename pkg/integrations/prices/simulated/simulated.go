package simulated

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"webland/pkg/types/prices"

	"gopkg.in/yaml.v2"
)

var _ prices.Source = (*Source)(nil)

// DefaultBound is the maximum relative move a perturbed quote makes
// around its base price.
const DefaultBound = 0.025

// defaultBasePrices seeds quotes for the coins the panel ships with.
// Unknown coins fall back to UnknownBasePrice so a quote is never absent.
var defaultBasePrices = map[string]float64{
	"bitcoin":     50000,
	"ethereum":    3000,
	"binancecoin": 500,
	"ripple":      0.8,
	"cardano":     1.2,
	"solana":      150,
	"polkadot":    30,
}

// defaultCoinMeta names the shipped coins for search results.
var defaultCoinMeta = map[string]prices.Coin{
	"bitcoin":     {ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
	"ethereum":    {ID: "ethereum", Symbol: "eth", Name: "Ethereum"},
	"binancecoin": {ID: "binancecoin", Symbol: "bnb", Name: "BNB"},
	"ripple":      {ID: "ripple", Symbol: "xrp", Name: "XRP"},
	"cardano":     {ID: "cardano", Symbol: "ada", Name: "Cardano"},
	"solana":      {ID: "solana", Symbol: "sol", Name: "Solana"},
	"polkadot":    {ID: "polkadot", Symbol: "dot", Name: "Polkadot"},
}

const UnknownBasePrice = 100

// Source fabricates market data locally. It stands in for the live
// price API whenever the network is down or the API throttles, so
// the watchlist and portfolio always have something to show.
type Source struct {
	mu    sync.Mutex
	base  map[string]float64
	bound float64
	rng   *rand.Rand
	coins []prices.Coin
}

type Option func(*Source)

// WithBound overrides the maximum relative move per quote.
func WithBound(bound float64) Option {
	return func(s *Source) {
		s.bound = bound
	}
}

// WithSeed makes the perturbation sequence deterministic.
func WithSeed(seed int64) Option {
	return func(s *Source) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBasePrices replaces the built-in base price table.
func WithBasePrices(base map[string]float64) Option {
	return func(s *Source) {
		if len(base) == 0 {
			return
		}
		s.base = make(map[string]float64, len(base))
		for id, price := range base {
			s.base[id] = price
		}
	}
}

func NewSource(options ...Option) *Source {
	s := &Source{
		base:  make(map[string]float64, len(defaultBasePrices)),
		bound: DefaultBound,
		rng:   rand.New(rand.NewSource(rand.Int63())),
	}
	for id, price := range defaultBasePrices {
		s.base[id] = price
	}
	for _, option := range options {
		option(s)
	}
	s.coins = catalog(s.base)
	return s
}

// catalog derives the searchable coin list from the base price table,
// so offline search finds exactly the coins offline quotes cover.
func catalog(base map[string]float64) []prices.Coin {
	ids := make([]string, 0, len(base))
	for id := range base {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	coins := make([]prices.Coin, 0, len(ids))
	for _, id := range ids {
		if coin, ok := defaultCoinMeta[id]; ok {
			coins = append(coins, coin)
			continue
		}
		coins = append(coins, prices.Coin{ID: id, Symbol: id, Name: id})
	}
	return coins
}

type coinConfig struct {
	ID        string  `yaml:"id"`
	Symbol    string  `yaml:"symbol"`
	Name      string  `yaml:"name"`
	BasePrice float64 `yaml:"base_price"`
}

type coinsConfig struct {
	Coins []coinConfig `yaml:"coins"`
}

// LoadBasePrices reads a coins file and returns its base price table.
// Relative paths resolve against the working directory.
func LoadBasePrices(coinsFile string) (map[string]float64, error) {
	var coinsPath string
	if filepath.IsAbs(coinsFile) {
		coinsPath = coinsFile
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		coinsPath = filepath.Join(wd, coinsFile)
	}

	data, err := os.ReadFile(coinsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", coinsFile, err)
	}

	var config coinsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", coinsFile, err)
	}

	base := make(map[string]float64, len(config.Coins))
	for i, coin := range config.Coins {
		if coin.ID == "" {
			return nil, fmt.Errorf("coin at index %d missing id", i)
		}
		if coin.BasePrice <= 0 {
			return nil, fmt.Errorf("coin at index %d missing base_price", i)
		}
		base[coin.ID] = coin.BasePrice
	}

	return base, nil
}

// perturb returns a price moved by at most bound relative to from.
func (s *Source) perturb(from float64) float64 {
	delta := (s.rng.Float64()*2 - 1) * s.bound
	return from * (1 + delta)
}

func (s *Source) basePrice(id string) float64 {
	if price, ok := s.base[id]; ok {
		return price
	}
	return UnknownBasePrice
}

// PerturbFrom fabricates a quote near a previously known price. The
// refresh services use it to drift the last live price instead of
// snapping back to the base table.
func (s *Source) PerturbFrom(prev float64) prices.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev <= 0 {
		prev = UnknownBasePrice
	}
	next := s.perturb(prev)
	return prices.Quote{
		Price:        next,
		ChangePct24h: (next/prev - 1) * 100,
		Simulated:    true,
	}
}

func (s *Source) Search(_ context.Context, query string) ([]prices.Coin, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []prices.Coin{}, nil
	}

	matches := make([]prices.Coin, 0)
	for _, coin := range s.coins {
		if strings.Contains(strings.ToLower(coin.ID), query) ||
			strings.Contains(strings.ToLower(coin.Symbol), query) ||
			strings.Contains(strings.ToLower(coin.Name), query) {
			matches = append(matches, coin)
		}
	}
	return matches, nil
}

func (s *Source) MarketData(_ context.Context, id string) (prices.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.quote(id), nil
}

func (s *Source) MarketDataBatch(_ context.Context, ids []string) (map[string]prices.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quotes := make(map[string]prices.Quote, len(ids))
	for _, id := range ids {
		quotes[id] = s.quote(id)
	}
	return quotes, nil
}

func (s *Source) quote(id string) prices.Quote {
	base := s.basePrice(id)
	price := s.perturb(base)
	return prices.Quote{
		Price:        price,
		ChangePct24h: (price/base - 1) * 100,
		Simulated:    true,
	}
}
