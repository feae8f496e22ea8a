package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_GetMiss(t *testing.T) {
	s := openTestStore(t)

	_, ok := s.Get("columns:billing:visible")
	assert.False(t, ok)
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("columns:billing:visible", `["id","name"]`))

	v, ok := s.Get("columns:billing:visible")
	require.True(t, ok)
	assert.Equal(t, `["id","name"]`, v)
}

func TestStore_SetOverwrites(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("k", "first"))
	require.NoError(t, s.Set("k", "second"))

	v, _ := s.Get("k")
	assert.Equal(t, "second", v)
}

func TestStore_Delete(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("k", "v"))
	require.NoError(t, s.Delete("k"))
	_, ok := s.Get("k")
	assert.False(t, ok)

	assert.NoError(t, s.Delete("absent"), "deleting an absent key is not an error")
}

func TestStore_DeletePrefixAndKeys(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("columns:billing:visible", "a"))
	require.NoError(t, s.Set("columns:billing:order", "b"))
	require.NoError(t, s.Set("columns:invoices:visible", "c"))
	require.NoError(t, s.Set("funnel:billing", "d"))

	keys, err := s.Keys("columns:billing:")
	require.NoError(t, err)
	assert.Equal(t, []string{"columns:billing:order", "columns:billing:visible"}, keys)

	require.NoError(t, s.DeletePrefix("columns:billing:"))
	keys, err = s.Keys("columns:")
	require.NoError(t, err)
	assert.Equal(t, []string{"columns:invoices:visible"}, keys)

	_, ok := s.Get("funnel:billing")
	assert.True(t, ok, "other concerns are untouched")
}

func TestStore_ReopenPersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "v"))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	v, ok := s2.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}
