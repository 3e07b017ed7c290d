package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "nested", "focusboard.db")
	store, err := Open(dsn, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, dsn
}

func TestStore_SetGetDelete(t *testing.T) {
	// Setup
	ctx := context.Background()
	store, _ := newTestStore(t)

	got, err := store.Get(ctx, "board")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Execute
	require.NoError(t, store.Set(ctx, "board", []byte(`{"version":1}`)))
	require.NoError(t, store.Set(ctx, "board", []byte(`{"version":2}`)))

	// Assert
	got, err = store.Get(ctx, "board")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"version":2}`), got)

	var count int64
	require.NoError(t, store.db.Model(&Entry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "upsert keeps one row per key")

	require.NoError(t, store.Delete(ctx, "board"))
	got, err = store.Get(ctx, "board")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, store.Delete(ctx, "board"))
}

func TestStore_EmptyValue(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Set(ctx, "empty", nil))

	got, err := store.Get(ctx, "empty")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStore_Reopen(t *testing.T) {
	ctx := context.Background()
	store, dsn := newTestStore(t)
	require.NoError(t, store.Set(ctx, "focusboard:timer", []byte("{}")))
	require.NoError(t, store.Close())

	reopened, err := Open(dsn, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Get(ctx, "focusboard:timer")
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), got)
}

func TestOpen_EmptyDSN(t *testing.T) {
	_, err := Open("", nil)
	assert.Error(t, err)
}
