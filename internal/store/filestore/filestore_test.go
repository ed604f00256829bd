package filestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dmitrijs2005/scanbatch/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := Open(dir)
	require.NoError(t, err)

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	got, err := s.Load(ctx, store.CollectionBatches)
	require.NoError(t, err)
	assert.Empty(t, got)

	recs := []json.RawMessage{json.RawMessage(`{"id":"a"}`), json.RawMessage(`{"id":"b"}`)}
	require.NoError(t, s.Save(ctx, store.CollectionBatches, recs))

	got, err = s.Load(ctx, store.CollectionBatches)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.JSONEq(t, `{"id":"a"}`, string(got[0]))

	require.NoError(t, s.Save(ctx, store.CollectionBatches, nil))
	got, err = s.Load(ctx, store.CollectionBatches)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Save(context.Background(), store.CollectionUsers, []json.RawMessage{json.RawMessage(`{}`)}))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "users.json", entries[0].Name())
}

func TestLoad_Corrupt(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("{ not json"), 0o600))

	_, err = s.Load(context.Background(), store.CollectionUsers)
	require.ErrorIs(t, err, store.ErrStorageCorrupt)
}

func TestSave_WriteFailed(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	err = s.Save(context.Background(), store.CollectionUsers, nil)
	require.ErrorIs(t, err, store.ErrStorageWriteFailed)
}

func TestInvalidCollectionName(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	_, err = s.Load(context.Background(), "../etc/passwd")
	require.ErrorIs(t, err, ErrInvalidCollectionName)
	require.ErrorIs(t, s.Save(context.Background(), "a/b", nil), ErrInvalidCollectionName)
}
