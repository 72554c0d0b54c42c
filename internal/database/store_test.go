package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// STORE SETUP HELPERS
// ============================================================================

// setupSQLiteStore creates a store backed by an in-memory database
func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLiteStore(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// setupRedisStore creates a store backed by an in-process redis server
func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

// storeContract runs the behavior every KVStore must share
func storeContract(t *testing.T, store KVStore) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "kanban-columns")
		assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "kanban-columns", []byte(`{"todo":{}}`)))
		got, err := store.Get(ctx, "kanban-columns")
		require.NoError(t, err)
		assert.Equal(t, `{"todo":{}}`, string(got))
	})

	t.Run("put overwrites", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "kanban-columns", []byte("first")))
		require.NoError(t, store.Put(ctx, "kanban-columns", []byte("second")))
		got, err := store.Get(ctx, "kanban-columns")
		require.NoError(t, err)
		assert.Equal(t, "second", string(got))
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "a", []byte("1")))
		require.NoError(t, store.Put(ctx, "b", []byte("2")))
		got, err := store.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "1", string(got))
	})
}

// ============================================================================
// CONTRACT TESTS
// ============================================================================

func TestSQLiteStore_Contract(t *testing.T) {
	storeContract(t, setupSQLiteStore(t))
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := setupRedisStore(t)
	storeContract(t, store)
}

func TestMemoryStore_Contract(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

// ============================================================================
// BACKEND SPECIFIC TESTS
// ============================================================================

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "kanbanpro.db")

	store, err := OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "kanban-columns", []byte("snapshot")))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get(ctx, "kanban-columns")
	require.NoError(t, err)
	assert.Equal(t, "snapshot", string(got))
}

func TestSQLiteStore_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := InitDB(ctx, ":memory:")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.NoError(t, runMigrations(ctx, db))
	require.NoError(t, runMigrations(ctx, db))
}

func TestSQLiteStore_WriteFailsAfterClose(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLiteStore(ctx, ":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.Error(t, store.Put(ctx, "kanban-columns", []byte("x")))
}

func TestRedisStore_StoresPlainString(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "kanban-columns", []byte("snapshot")))

	got, err := mr.Get("kanban-columns")
	require.NoError(t, err)
	assert.Equal(t, "snapshot", got)
	assert.Zero(t, mr.TTL("kanban-columns"), "snapshot must not expire")
}

func TestRedisStore_ServerDown(t *testing.T) {
	store, mr := setupRedisStore(t)
	mr.Close()

	err := store.Put(context.Background(), "kanban-columns", []byte("x"))
	assert.Error(t, err)

	_, err = store.Get(context.Background(), "kanban-columns")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestOpenRedisStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store, err := OpenRedisStore(context.Background(), mr.Addr(), 0)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	value := []byte("abc")
	require.NoError(t, store.Put(ctx, "k", value))
	value[0] = 'x'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
