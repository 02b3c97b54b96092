package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*FSStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewFSStore(dir, nil)
	require.NoError(t, err)
	return s, dir
}

func TestFSStoreFetch(t *testing.T) {
	s, dir := newTestStore(t)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "2025"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2025", "w2.pdf"), []byte("%PDF-1.4"), 0o644))

	data, err := s.Fetch(context.Background(), "2025/w2.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)
}

func TestFSStoreFetchMissing(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Fetch(context.Background(), "nope.pdf")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFSStoreRejectsTraversal(t *testing.T) {
	s, _ := newTestStore(t)

	for _, p := range []string{"../etc/passwd", "/etc/passwd", "a/../../b", ""} {
		_, err := s.Fetch(context.Background(), p)
		assert.Error(t, err, "path %q should be rejected", p)
	}
}

func TestNewFSStoreRequiresDirectory(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))

	_, err := NewFSStore(f, nil)
	assert.Error(t, err)
}
