package store

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteBlobStoreCRUD(t *testing.T) {
	s, err := NewSQLiteBlobStore()
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put("k", []byte("v1")))
	data, ok, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), data)

	// Put overwrites in place.
	require.NoError(t, s.Put("k", []byte("v2")))
	data, ok, err = s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), data)

	require.NoError(t, s.Delete("k"))
	_, ok, err = s.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteBlobStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blobs.db")

	s, err := NewSQLiteBlobStoreWithDSN(path)
	require.NoError(t, err)

	notes := NewNoteStore(s, "", zerolog.Nop())
	require.NoError(t, notes.Save([]Note{
		{ID: 1, Content: "survives restarts", Timestamp: "2026-08-26T09:00:00Z"},
	}))
	require.NoError(t, s.Close())

	// Simulate a fresh start.
	s2, err := NewSQLiteBlobStoreWithDSN(path)
	require.NoError(t, err)
	defer s2.Close()

	restored := NewNoteStore(s2, "", zerolog.Nop()).Load()
	require.Len(t, restored, 1)
	assert.Equal(t, "survives restarts", restored[0].Content)
}
