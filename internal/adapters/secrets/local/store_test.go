package local

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/coach-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "local_storage.toml")
	store, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Put(context.Background(), domain.TokenKey, "12|abcdef"))
	require.NoError(t, store.Put(context.Background(), domain.UserDataKey, `{"id":12,"nom":"Durand"}`))

	token, err := store.Get(context.Background(), domain.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "12|abcdef", token)

	userData, err := store.Get(context.Background(), domain.UserDataKey)
	require.NoError(t, err)
	assert.Equal(t, `{"id":12,"nom":"Durand"}`, userData)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(storageFileMode), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
}

func TestStoreMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	store, err := NewStore(filepath.Join(t.TempDir(), "local_storage.toml"))
	require.NoError(t, err)

	_, err = store.Get(context.Background(), domain.TokenKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)

	require.NoError(t, store.Delete(context.Background(), domain.TokenKey))
	_, statErr := os.Stat(store.Path())
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "delete of a missing key must not create the file")
}

func TestStoreDeleteRemovesOnlyThatKey(t *testing.T) {
	t.Parallel()

	store, err := NewStore(filepath.Join(t.TempDir(), "local_storage.toml"))
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), domain.TokenKey, "token"))
	require.NoError(t, store.Put(context.Background(), domain.UserDataKey, "{}"))

	require.NoError(t, store.Delete(context.Background(), domain.TokenKey))

	_, err = store.Get(context.Background(), domain.TokenKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
	value, err := store.Get(context.Background(), domain.UserDataKey)
	require.NoError(t, err)
	assert.Equal(t, "{}", value)
}

func TestStoreMalformedFileReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "local_storage.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [broken"), 0o600))

	store, err := NewStore(path)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), domain.TokenKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode local storage file")
}

func TestStoreFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "local_storage.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 999",
		"",
		"[items]",
		`userToken = "abc"`,
		"",
	}, "\n")), 0o600))

	store, err := NewStore(path)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), domain.TokenKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported local storage schema version")
}

func TestStorePutCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	store, err := NewStore(filepath.Join(t.TempDir(), "local_storage.toml"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = store.Put(ctx, domain.TokenKey, "token")
	require.ErrorIs(t, err, context.Canceled)
}

func TestStoreConcurrentPutsAcrossInstancesKeepAllKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "local_storage.toml")
	storeA, err := NewStore(path)
	require.NoError(t, err)
	storeB, err := NewStore(path)
	require.NoError(t, err)

	const perStoreWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perStoreWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(store *Store, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perStoreWrites; i++ {
			errCh <- store.Put(context.Background(), prefix+string(rune('a'+i%26))+string(rune('a'+i/26)), "v")
		}
	}
	go write(storeA, "a-")
	go write(storeB, "b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	file, err := storeA.readSchema()
	require.NoError(t, err)
	assert.Len(t, file.Items, perStoreWrites*2)
}
