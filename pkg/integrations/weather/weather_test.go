package weather

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Current_Live(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Berlin", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		resp := map[string]any{
			"name": "Berlin",
			"main": map[string]any{"temp": 21.5, "feels_like": 20.8, "humidity": 55},
			"weather": []map[string]string{
				{"main": "Clouds", "description": "scattered clouds", "icon": "03d"},
			},
			"wind": map[string]any{"speed": 4.2},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	service := NewService(WithAPIKey("test-key"), WithLogger(quietLogger()))
	service.BaseURL = server.URL

	report, err := service.Current(context.Background(), "Berlin")
	require.NoError(t, err)

	assert.Equal(t, "Berlin", report.Location)
	assert.Equal(t, 21.5, report.TempC)
	assert.Equal(t, 55, report.Humidity)
	assert.Equal(t, "Clouds", report.Condition)
	assert.False(t, report.Simulated)
}

func TestService_Current_SimulatedWithoutKey(t *testing.T) {
	service := NewService(WithSeed(11), WithLogger(quietLogger()))

	report, err := service.Current(context.Background(), "Hamburg")
	require.NoError(t, err)

	assert.True(t, report.Simulated)
	assert.Equal(t, "Hamburg", report.Location)
	assert.GreaterOrEqual(t, report.TempC, 0.0)
	assert.Less(t, report.TempC, 30.0)
	assert.NotEmpty(t, report.Condition)
}

func TestService_Current_SimulatedOnAPIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	service := NewService(WithAPIKey("bad-key"), WithSeed(4), WithLogger(quietLogger()))
	service.BaseURL = server.URL

	report, err := service.Current(context.Background(), "Munich")
	require.NoError(t, err)
	assert.True(t, report.Simulated)
}

func TestService_Current_CachesPerLocation(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		resp := map[string]any{
			"name": "Cologne",
			"main": map[string]any{"temp": 18.0, "feels_like": 17.0, "humidity": 60},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	service := NewService(WithAPIKey("test-key"), WithLogger(quietLogger()))
	service.BaseURL = server.URL

	_, err := service.Current(context.Background(), "Cologne")
	require.NoError(t, err)
	_, err = service.Current(context.Background(), "cologne")
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
}

func TestService_Current_CacheIsPerInstance(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		resp := map[string]any{
			"name": "Dresden",
			"main": map[string]any{"temp": 12.0, "feels_like": 11.0, "humidity": 70},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	first := NewService(WithAPIKey("test-key"), WithLogger(quietLogger()))
	first.BaseURL = server.URL
	second := NewService(WithAPIKey("test-key"), WithLogger(quietLogger()))
	second.BaseURL = server.URL

	_, err := first.Current(context.Background(), "Dresden")
	require.NoError(t, err)
	_, err = second.Current(context.Background(), "Dresden")
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
}

func TestService_Current_EmptyLocation(t *testing.T) {
	service := NewService(WithLogger(quietLogger()))

	_, err := service.Current(context.Background(), "  ")
	require.Error(t, err)
}
