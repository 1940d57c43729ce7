package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_WithMemory(t *testing.T) {
	db, err := New(WithMemory())
	require.NoError(t, err)
	require.NotNil(t, db.Get())
	require.NoError(t, db.Close())
}

func TestNew_WithPath_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "webland.db")
	db, err := New(WithPath(path))
	require.NoError(t, err)
	defer db.Close()

	require.NotNil(t, db.Get())
}

func TestClose_WithoutConnection(t *testing.T) {
	db := &Database{}
	require.NoError(t, db.Close())
}
