package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache", "renders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenInvalidPath(t *testing.T) {
	_, err := Open("")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestPutGet(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, "k", []byte("png-1")))
	img, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("png-1"), img)

	require.NoError(t, s.Put(ctx, "k", []byte("png-2")))
	img, _, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-2"), img)

	hits, err := s.Hits(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestMemory(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Put(context.Background(), "k", []byte{1}))
	_, ok, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPrune(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	base := time.Unix(1_700_000_000, 0)
	s.now = func() time.Time { return base }
	require.NoError(t, s.Put(ctx, "old", []byte{1}))

	s.now = func() time.Time { return base.Add(2 * time.Hour) }
	require.NoError(t, s.Put(ctx, "new", []byte{2}))

	n, err := s.Prune(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, ok, err := s.Get(ctx, "old")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = s.Get(ctx, "new")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClosed(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "r.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Close(), ErrClosed)
	assert.ErrorIs(t, s.Put(context.Background(), "k", nil), ErrClosed)
	_, _, err = s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestKey(t *testing.T) {
	a, err := Key(map[string]any{"b": 1, "a": "x"})
	require.NoError(t, err)
	b, err := Key(map[string]any{"a": "x", "b": 1})
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	c, err := Key(map[string]any{"a": "y", "b": 1})
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	_, err = Key(func() {})
	assert.Error(t, err)
}
