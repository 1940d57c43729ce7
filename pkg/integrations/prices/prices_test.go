package prices

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"webland/pkg/integrations/prices/simulated"
	"webland/pkg/types/prices"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	quotes  map[string]prices.Quote
	coins   []prices.Coin
	err     error
	batches int
}

func (s *stubSource) Search(_ context.Context, _ string) ([]prices.Coin, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.coins, nil
}

func (s *stubSource) MarketData(ctx context.Context, id string) (prices.Quote, error) {
	quotes, err := s.MarketDataBatch(ctx, []string{id})
	if err != nil {
		return prices.Quote{}, err
	}
	return quotes[id], nil
}

func (s *stubSource) MarketDataBatch(_ context.Context, _ []string) (map[string]prices.Quote, error) {
	s.batches++
	if s.err != nil {
		return nil, s.err
	}
	return s.quotes, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_MarketDataBatch_LiveQuotes(t *testing.T) {
	live := &stubSource{quotes: map[string]prices.Quote{
		"bitcoin": {Price: 51000, ChangePct24h: 1.5},
	}}
	service := NewService(WithLive(live), WithLogger(quietLogger()))

	quotes, err := service.MarketDataBatch(context.Background(), []string{"bitcoin"})
	require.NoError(t, err)

	assert.Equal(t, 51000.0, quotes["bitcoin"].Price)
	assert.False(t, quotes["bitcoin"].Simulated)
}

func TestService_MarketDataBatch_FallsBackNearLastKnown(t *testing.T) {
	live := &stubSource{quotes: map[string]prices.Quote{
		"bitcoin": {Price: 51000, ChangePct24h: 1.5},
	}}
	sim := simulated.NewSource(simulated.WithSeed(9), simulated.WithBound(0.025))
	service := NewService(WithLive(live), WithSimulated(sim), WithLogger(quietLogger()))

	_, err := service.MarketDataBatch(context.Background(), []string{"bitcoin"})
	require.NoError(t, err)

	live.err = errors.New("api down")
	quotes, err := service.MarketDataBatch(context.Background(), []string{"bitcoin"})
	require.NoError(t, err)

	quote := quotes["bitcoin"]
	assert.True(t, quote.Simulated)
	assert.False(t, math.IsNaN(quote.Price))
	assert.InDelta(t, 51000, quote.Price, 51000*0.025)
}

func TestService_MarketDataBatch_FallsBackWithoutHistory(t *testing.T) {
	live := &stubSource{err: errors.New("api down")}
	sim := simulated.NewSource(simulated.WithSeed(2))
	service := NewService(WithLive(live), WithSimulated(sim), WithLogger(quietLogger()))

	quotes, err := service.MarketDataBatch(context.Background(), []string{"ethereum"})
	require.NoError(t, err)

	quote := quotes["ethereum"]
	assert.True(t, quote.Simulated)
	assert.Greater(t, quote.Price, 0.0)
}

func TestService_MarketDataBatch_Seeded(t *testing.T) {
	live := &stubSource{err: errors.New("api down")}
	sim := simulated.NewSource(simulated.WithSeed(5), simulated.WithBound(0.05))
	service := NewService(WithLive(live), WithSimulated(sim), WithLogger(quietLogger()))

	service.Seed("bitcoin", 48000)

	quotes, err := service.MarketDataBatch(context.Background(), []string{"bitcoin"})
	require.NoError(t, err)
	assert.InDelta(t, 48000, quotes["bitcoin"].Price, 48000*0.05)
}

func TestService_MarketDataBatch_PartialLiveResponse(t *testing.T) {
	live := &stubSource{quotes: map[string]prices.Quote{
		"bitcoin": {Price: 51000},
	}}
	service := NewService(WithLive(live), WithLogger(quietLogger()))

	quotes, err := service.MarketDataBatch(context.Background(), []string{"bitcoin", "obscurecoin"})
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	assert.False(t, quotes["bitcoin"].Simulated)
	assert.True(t, quotes["obscurecoin"].Simulated)
	assert.Greater(t, quotes["obscurecoin"].Price, 0.0)
}

func TestService_Search_FallsBack(t *testing.T) {
	live := &stubSource{err: errors.New("api down")}
	service := NewService(WithLive(live), WithLogger(quietLogger()))

	coins, err := service.Search(context.Background(), "bitcoin")
	require.NoError(t, err)
	require.NotEmpty(t, coins)
	assert.Equal(t, "bitcoin", coins[0].ID)
}
