package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"webland/internal/models"
	"webland/internal/store"
	"webland/pkg/integrations/chanpubsub"
	"webland/pkg/integrations/kvstore"
	"webland/pkg/types/prices"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPortfolioFixture(t *testing.T, source prices.Source) (*PortfolioRefreshService, *store.Collection[models.PortfolioPosition], chan []byte) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	portfolio, err := store.NewCollection[models.PortfolioPosition](models.KeyPortfolio, kvstore.NewMemory(), discardLogger)
	require.NoError(t, err)

	ch := make(chan []byte, 10)
	pub := chanpubsub.New(
		chanpubsub.WithChannel(ch),
		chanpubsub.WithContext(ctx),
		chanpubsub.WithLogger(discardLogger),
		chanpubsub.WithTopic("crypto"),
	)

	svc, err := NewPortfolioRefreshService(
		WithPortfolioRefreshContext(ctx),
		WithPortfolioRefreshLogger(discardLogger),
		WithPortfolioRefreshCollection(portfolio),
		WithPortfolioRefreshSource(source),
		WithPortfolioRefreshPublisher(pub),
		WithPortfolioRefreshInterval(time.Minute),
	)
	require.NoError(t, err)

	return svc, portfolio, ch
}

func TestPortfolioRefreshService_InvalidConfig(t *testing.T) {
	_, err := NewPortfolioRefreshService(
		WithPortfolioRefreshContext(context.Background()),
		WithPortfolioRefreshLogger(discardLogger),
	)
	assert.Error(t, err)
}

func TestPortfolioRefreshService_TickUpdatesCurrentPrices(t *testing.T) {
	source := &stubSource{quotes: map[string]prices.Quote{
		"bitcoin": {Price: 150},
	}}
	svc, portfolio, ch := newPortfolioFixture(t, source)

	require.NoError(t, portfolio.Add(models.PortfolioPosition{
		ID:       "p1",
		CoinID:   "bitcoin",
		CoinName: "Bitcoin",
		Amount:   2,
		BuyPrice: 100,
	}))

	require.NoError(t, svc.tick())

	positions := portfolio.Load()
	require.Len(t, positions, 1)
	assert.Equal(t, 150.0, positions[0].CurrentPrice)
	assert.False(t, positions[0].LastUpdated.IsZero())

	valuation := positions[0].Valuation(positions[0].CurrentPrice)
	assert.Equal(t, 300.0, valuation.TotalValue)
	assert.Equal(t, 100.0, valuation.Profit)
	assert.Equal(t, 50.0, valuation.ProfitPct)

	var snapshot struct {
		Type string `json:"type"`
	}
	select {
	case msg := <-ch:
		require.NoError(t, json.Unmarshal(msg, &snapshot))
	default:
		t.Fatal("expected a published snapshot")
	}
	assert.Equal(t, "portfolio", snapshot.Type)
}

func TestPortfolioRefreshService_SharedCoinFetchedOnce(t *testing.T) {
	source := &countingSource{quotes: map[string]prices.Quote{
		"bitcoin": {Price: 150},
	}}
	svc, portfolio, _ := newPortfolioFixture(t, source)

	require.NoError(t, portfolio.Add(models.PortfolioPosition{ID: "p1", CoinID: "bitcoin", Amount: 1, BuyPrice: 100}))
	require.NoError(t, portfolio.Add(models.PortfolioPosition{ID: "p2", CoinID: "bitcoin", Amount: 3, BuyPrice: 120}))

	require.NoError(t, svc.tick())

	assert.Equal(t, [][]string{{"bitcoin"}}, source.requested)

	positions := portfolio.Load()
	require.Len(t, positions, 2)
	assert.Equal(t, 150.0, positions[0].CurrentPrice)
	assert.Equal(t, 150.0, positions[1].CurrentPrice)
}

func TestPortfolioRefreshService_TickKeepsConcurrentEdits(t *testing.T) {
	source := &gatedSource{
		stubSource: stubSource{quotes: map[string]prices.Quote{"bitcoin": {Price: 150}}},
		fetching:   make(chan struct{}),
		release:    make(chan struct{}),
	}
	svc, portfolio, _ := newPortfolioFixture(t, source)

	require.NoError(t, portfolio.Add(models.PortfolioPosition{ID: "p1", CoinID: "bitcoin", Amount: 1, BuyPrice: 100}))

	done := make(chan error, 1)
	go func() { done <- svc.Refresh() }()

	<-source.fetching
	require.NoError(t, portfolio.Remove("p1"))
	require.NoError(t, portfolio.Add(models.PortfolioPosition{ID: "p2", CoinID: "cardano", Amount: 10, BuyPrice: 1}))
	close(source.release)

	require.NoError(t, <-done)

	positions := portfolio.Load()
	require.Len(t, positions, 1)
	assert.Equal(t, "p2", positions[0].ID)
	assert.Zero(t, positions[0].CurrentPrice)
}

func TestPortfolioRefreshService_EmptyPortfolioSkipsFetch(t *testing.T) {
	source := &countingSource{}
	svc, _, _ := newPortfolioFixture(t, source)

	require.NoError(t, svc.tick())
	assert.Empty(t, source.requested)
}

type countingSource struct {
	quotes    map[string]prices.Quote
	requested [][]string
}

func (s *countingSource) Search(_ context.Context, _ string) ([]prices.Coin, error) {
	return nil, nil
}

func (s *countingSource) MarketData(ctx context.Context, id string) (prices.Quote, error) {
	quotes, err := s.MarketDataBatch(ctx, []string{id})
	if err != nil {
		return prices.Quote{}, err
	}
	return quotes[id], nil
}

func (s *countingSource) MarketDataBatch(_ context.Context, ids []string) (map[string]prices.Quote, error) {
	s.requested = append(s.requested, ids)
	return s.quotes, nil
}
