package service

import (
	"io"
	"log/slog"
	"testing"

	"webland/internal/models"
	"webland/internal/store"
	"webland/pkg/integrations/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type captureSink struct {
	titles []string
	bodies []string
}

func (c *captureSink) Notify(title, body string) error {
	c.titles = append(c.titles, title)
	c.bodies = append(c.bodies, body)
	return nil
}

func newAlertCollection(t *testing.T) *store.Collection[models.PriceAlert] {
	t.Helper()
	alerts, err := store.NewCollection[models.PriceAlert](models.KeyPriceAlerts, kvstore.NewMemory(), discardLogger)
	require.NoError(t, err)
	return alerts
}

func TestAlertService_InvalidConfig(t *testing.T) {
	alerts := newAlertCollection(t)
	sink := &captureSink{}

	tests := []struct {
		name string
		opts []AlertOption
	}{
		{"no logger", []AlertOption{
			WithAlertCollection(alerts),
			WithAlertSink(sink),
		}},
		{"no collection", []AlertOption{
			WithAlertLogger(discardLogger),
			WithAlertSink(sink),
		}},
		{"no sink", []AlertOption{
			WithAlertLogger(discardLogger),
			WithAlertCollection(alerts),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAlertService(tt.opts...)
			assert.Error(t, err)
		})
	}
}

func TestAlertService_Evaluate_FiresOnceAndRemovesRule(t *testing.T) {
	alerts := newAlertCollection(t)
	sink := &captureSink{}

	require.NoError(t, alerts.Add(models.PriceAlert{
		ID:            "a1",
		CoinID:        "bitcoin",
		CoinName:      "Bitcoin",
		CoinSymbol:    "btc",
		TargetPrice:   50000,
		PreviousPrice: 49000,
	}))

	svc, err := NewAlertService(
		WithAlertLogger(discardLogger),
		WithAlertCollection(alerts),
		WithAlertSink(sink),
	)
	require.NoError(t, err)

	fired := svc.Evaluate(map[string]float64{"bitcoin": 50500})
	assert.Equal(t, 1, fired)
	require.Len(t, sink.titles, 1)
	assert.Contains(t, sink.titles[0], "Bitcoin")
	assert.Contains(t, sink.bodies[0], "50000.00")
	assert.Equal(t, 0, alerts.Len())

	// Rule is consumed; a second crossing is silent.
	fired = svc.Evaluate(map[string]float64{"bitcoin": 51000})
	assert.Equal(t, 0, fired)
	assert.Len(t, sink.titles, 1)
}

func TestAlertService_Evaluate_NoCrossingKeepsRule(t *testing.T) {
	alerts := newAlertCollection(t)
	sink := &captureSink{}

	require.NoError(t, alerts.Add(models.PriceAlert{
		ID:            "a1",
		CoinID:        "bitcoin",
		TargetPrice:   50000,
		PreviousPrice: 49000,
	}))

	svc, err := NewAlertService(
		WithAlertLogger(discardLogger),
		WithAlertCollection(alerts),
		WithAlertSink(sink),
	)
	require.NoError(t, err)

	fired := svc.Evaluate(map[string]float64{"bitcoin": 49500})
	assert.Equal(t, 0, fired)
	assert.Empty(t, sink.titles)
	assert.Equal(t, 1, alerts.Len())
}

func TestAlertService_Evaluate_DownwardCrossing(t *testing.T) {
	alerts := newAlertCollection(t)
	sink := &captureSink{}

	require.NoError(t, alerts.Add(models.PriceAlert{
		ID:            "a1",
		CoinID:        "ethereum",
		CoinName:      "Ethereum",
		CoinSymbol:    "eth",
		TargetPrice:   2800,
		PreviousPrice: 3000,
	}))

	svc, err := NewAlertService(
		WithAlertLogger(discardLogger),
		WithAlertCollection(alerts),
		WithAlertSink(sink),
	)
	require.NoError(t, err)

	fired := svc.Evaluate(map[string]float64{"ethereum": 2750})
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, alerts.Len())
}

func TestAlertService_Evaluate_MissingQuoteKeepsRule(t *testing.T) {
	alerts := newAlertCollection(t)
	sink := &captureSink{}

	require.NoError(t, alerts.Add(models.PriceAlert{
		ID:            "a1",
		CoinID:        "cardano",
		TargetPrice:   1,
		PreviousPrice: 0.9,
	}))

	svc, err := NewAlertService(
		WithAlertLogger(discardLogger),
		WithAlertCollection(alerts),
		WithAlertSink(sink),
	)
	require.NoError(t, err)

	fired := svc.Evaluate(map[string]float64{"bitcoin": 51000})
	assert.Equal(t, 0, fired)
	assert.Equal(t, 1, alerts.Len())
}
