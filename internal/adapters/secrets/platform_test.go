package secrets

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/coach-cli/internal/adapters/secrets/chain"
	"github.com/bnema/coach-cli/internal/adapters/secrets/local"
	"github.com/bnema/coach-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]Platform{"": PlatformNative, "native": PlatformNative, " WEB ": PlatformWeb} {
		got, err := ParsePlatform(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParsePlatform("android")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown platform")
}

func TestNewStoreSelectsBacking(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	paths := Paths{SecretsDir: filepath.Join(dir, "secrets"), WebPath: filepath.Join(dir, "local_storage.toml")}

	web, err := NewStore(PlatformWeb, paths)
	require.NoError(t, err)
	assert.IsType(t, &local.Store{}, web)

	require.NoError(t, web.Put(context.Background(), domain.TokenKey, "abc"))
	value, err := web.Get(context.Background(), domain.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	native, err := NewStore(PlatformNative, paths)
	require.NoError(t, err)
	assert.IsType(t, &chain.Store{}, native)
}
