package coingecko

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	c := NewClient()
	c.BaseURL = url
	return c
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bitcoin", r.URL.Query().Get("query"))
		resp := map[string]any{
			"coins": []map[string]string{
				{"id": "bitcoin", "symbol": "btc", "name": "Bitcoin", "large": "https://img.test/btc.png"},
				{"id": "bitcoin-cash", "symbol": "bch", "name": "Bitcoin Cash", "thumb": "https://img.test/bch-thumb.png"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	coins, err := testClient(server.URL).Search(context.Background(), "bitcoin")
	require.NoError(t, err)
	require.Len(t, coins, 2)
	assert.Equal(t, "bitcoin", coins[0].ID)
	assert.Equal(t, "https://img.test/btc.png", coins[0].Image)
	assert.Equal(t, "https://img.test/bch-thumb.png", coins[1].Image)
}

func TestClient_MarketDataBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eur", r.URL.Query().Get("vs_currency"))
		assert.Equal(t, "bitcoin,ethereum", r.URL.Query().Get("ids"))
		resp := []map[string]any{
			{"id": "bitcoin", "current_price": 50000.0, "price_change_percentage_24h": 2.5},
			{"id": "ethereum", "current_price": 3000.0, "price_change_percentage_24h": -1.2},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	quotes, err := testClient(server.URL).MarketDataBatch(context.Background(), []string{"bitcoin", "ethereum"})
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, 50000.0, quotes["bitcoin"].Price)
	assert.Equal(t, -1.2, quotes["ethereum"].ChangePct24h)
	assert.False(t, quotes["bitcoin"].Simulated)
}

func TestClient_MarketDataBatch_Empty(t *testing.T) {
	quotes, err := testClient("http://unreachable.invalid").MarketDataBatch(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, quotes)
}

func TestClient_MarketData_MissingCoin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).MarketData(context.Background(), "dogecoin")
	require.Error(t, err)
}

func TestClient_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := testClient(server.URL).MarketDataBatch(context.Background(), []string{"bitcoin"})
	require.Error(t, err)
}
