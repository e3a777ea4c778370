package localcache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSet(t *testing.T) {
	ctx := context.Background()

	c, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer c.Close()

	_, ok, err := c.Get(ctx, "agencyos_clients")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "agencyos_clients", []byte(`[{"id":"c1"}]`)))
	require.NoError(t, c.Set(ctx, "agencyos_clients", []byte(`[{"id":"c2"}]`)))

	value, ok, err := c.Get(ctx, "agencyos_clients")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"c2"}]`, string(value))
}

func TestCache_PersisteEntreAberturas(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	c, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, "agencyos_users", []byte(`[]`)))
	require.NoError(t, c.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "agencyos_users")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(value))
}
