package translate

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Translate_Live(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Hello", payload["q"])
		assert.Equal(t, "en", payload["source"])
		assert.Equal(t, "de", payload["target"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"translatedText": "Hallo"})
	}))
	defer server.Close()

	service := NewService(WithEndpoint(server.URL), WithLogger(quietLogger()))

	result, err := service.Translate(context.Background(), "Hello", "en", "de")
	require.NoError(t, err)

	assert.Equal(t, "Hallo", result.TranslatedText)
	assert.False(t, result.Simulated)
}

func TestService_Translate_SampleWithoutEndpoint(t *testing.T) {
	service := NewService(WithLogger(quietLogger()))

	result, err := service.Translate(context.Background(), "Hello", "en", "de")
	require.NoError(t, err)

	assert.True(t, result.Simulated)
	assert.Contains(t, result.TranslatedText, "Hello")
	assert.Equal(t, "en", result.Source)
	assert.Equal(t, "de", result.Target)
}

func TestService_Translate_SampleOnAPIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	service := NewService(WithEndpoint(server.URL), WithLogger(quietLogger()))

	result, err := service.Translate(context.Background(), "Hello", "en", "fr")
	require.NoError(t, err)
	assert.True(t, result.Simulated)
}

func TestService_Translate_Validation(t *testing.T) {
	service := NewService(WithLogger(quietLogger()))

	_, err := service.Translate(context.Background(), "   ", "en", "de")
	require.Error(t, err)

	_, err = service.Translate(context.Background(), "Hello", "", "de")
	require.Error(t, err)
}
