package gitstore

import (
	"context"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) *git.Repository {
	t.Helper()

	repo, err := git.PlainInit(t.TempDir(), false)
	require.NoError(t, err)
	return repo
}

func TestStore_SetGetDelete(t *testing.T) {
	// Setup
	ctx := context.Background()
	store := NewWithRepo(setupTestRepo(t), "focusboard")

	got, err := store.Get(ctx, "board")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Execute
	require.NoError(t, store.Set(ctx, "board", []byte(`{"version":1}`)))

	// Assert
	got, err = store.Get(ctx, "board")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"version":1}`), got)

	require.NoError(t, store.Delete(ctx, "board"))
	got, err = store.Get(ctx, "board")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, store.Delete(ctx, "board"))
}

func TestStore_RefLayout(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)
	store := NewWithRepo(repo, "focusboard")

	require.NoError(t, store.Set(ctx, "focusboard:timer", []byte("{}")))

	ref, err := repo.Reference(plumbing.ReferenceName("refs/focusboard/kv/focusboard%3Atimer"), true)
	require.NoError(t, err)
	blob, err := repo.BlobObject(ref.Hash())
	require.NoError(t, err)
	assert.EqualValues(t, 2, blob.Size)
}

func TestStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := NewWithRepo(setupTestRepo(t), "")

	require.NoError(t, store.Set(ctx, "k", []byte("a much longer first value")))
	require.NoError(t, store.Set(ctx, "k", []byte("second")))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestStore_NamespaceIsolation(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)
	a := NewWithRepo(repo, "alice")
	b := NewWithRepo(repo, "bob")

	require.NoError(t, a.Set(ctx, "board", []byte("alice's")))

	got, err := b.Get(ctx, "board")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNew_OpensFromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	store, err := New(dir, "focusboard")
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), "k", []byte("v")))

	_, err = New(t.TempDir(), "focusboard")
	assert.Error(t, err)
}
