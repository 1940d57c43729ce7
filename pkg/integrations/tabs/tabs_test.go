package tabs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_ActiveTab(t *testing.T) {
	accessor := NewStatic("Example Domain", "https://www.example.com/page")

	tab, err := accessor.ActiveTab(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Example Domain", tab.Title)
	assert.Equal(t, "https://www.example.com/page", tab.URL)
	assert.Equal(t, "https://www.google.com/s2/favicons?domain=example.com", tab.FaviconURL)
}

func TestStatic_ActiveTab_Empty(t *testing.T) {
	accessor := &Static{}

	_, err := accessor.ActiveTab(context.Background())
	require.Error(t, err)
}

func TestNewChromeAccessor_DefaultDebugURL(t *testing.T) {
	accessor := NewChromeAccessor("")
	assert.Equal(t, "ws://localhost:9222", accessor.DebugURL)
}
