package kvstore

import (
	"testing"

	"webland/pkg/database"
	"webland/pkg/types/storage"

	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	db, err := database.New(database.WithMemory())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := New(db.Get())
	require.NoError(t, err)
	return store
}

func TestNew_NilDatabase(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrNilDatabase)
}

func testBackend(t *testing.T, backend storage.Backend) {
	t.Helper()

	_, ok, err := backend.Get("weblandNotes")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, backend.Set("weblandNotes", `[{"id":"a"}]`))
	val, ok, err := backend.Get("weblandNotes")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"a"}]`, val)

	// overwrite replaces the whole blob
	require.NoError(t, backend.Set("weblandNotes", `[]`))
	val, _, err = backend.Get("weblandNotes")
	require.NoError(t, err)
	require.Equal(t, `[]`, val)

	require.NoError(t, backend.Set("theme", "dark"))
	keys, err := backend.Keys()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"weblandNotes", "theme"}, keys)

	require.NoError(t, backend.Delete("theme"))
	_, ok, err = backend.Get("theme")
	require.NoError(t, err)
	require.False(t, ok)

	// deleting an absent key is not an error
	require.NoError(t, backend.Delete("theme"))
}

func TestStore_Backend(t *testing.T) {
	testBackend(t, setupStore(t))
}

func TestMemory_Backend(t *testing.T) {
	testBackend(t, NewMemory())
}

func TestStore_ValueSurvivesReopen(t *testing.T) {
	db, err := database.New(database.WithMemory())
	require.NoError(t, err)
	defer db.Close()

	store, err := New(db.Get())
	require.NoError(t, err)
	require.NoError(t, store.Set("weblandTodos", `[{"id":"t1","completed":true}]`))

	// a second Store over the same connection sees the same rows
	again, err := New(db.Get())
	require.NoError(t, err)
	val, ok, err := again.Get("weblandTodos")
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, val, `"completed":true`)
}
