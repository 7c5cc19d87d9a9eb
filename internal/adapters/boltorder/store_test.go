package boltorder

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/termdock/internal/domain"
)

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "orders.db")

	store, err := Open(path)
	require.NoError(t, err)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	orders := map[domain.WorkspaceKey][]string{
		domain.GlobalWorkspace():   {"c", "a"},
		domain.NamedWorkspace("W"): {"b"},
		domain.NamedWorkspace("E"): {},
	}
	require.NoError(t, store.Save(ctx, orders))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err = reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.WorkspaceKey][]string{
		domain.GlobalWorkspace():   {"c", "a"},
		domain.NamedWorkspace("W"): {"b"},
	}, loaded)
}

func TestStore_SaveReplacesPreviousKeys(t *testing.T) {
	ctx := context.Background()
	store, err := Open(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(ctx, map[domain.WorkspaceKey][]string{
		domain.NamedWorkspace("A"): {"x"},
	}))
	require.NoError(t, store.Save(ctx, map[domain.WorkspaceKey][]string{
		domain.NamedWorkspace("B"): {"y"},
	}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.WorkspaceKey][]string{domain.NamedWorkspace("B"): {"y"}}, loaded)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}
