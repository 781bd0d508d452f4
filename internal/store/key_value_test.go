package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testKeyValueStorageContract checks the behaviour every tier must share.
func testKeyValueStorageContract(t *testing.T, s KeyValueStorage) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, SessionAPIKey)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, SessionAPIKey, "sk-first"))
	value, err := s.Get(ctx, SessionAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "sk-first", value)

	require.NoError(t, s.Set(ctx, SessionAPIKey, "sk-second"))
	value, err = s.Get(ctx, SessionAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "sk-second", value)

	require.NoError(t, s.Set(ctx, DurableAPIKey, "envelope"))

	require.NoError(t, s.Delete(ctx, SessionAPIKey))
	_, err = s.Get(ctx, SessionAPIKey)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// other keys are untouched
	value, err = s.Get(ctx, DurableAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "envelope", value)

	// deleting twice is fine
	require.NoError(t, s.Delete(ctx, SessionAPIKey))

	_, err = s.Get(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestMemoryKeyValueStorage(t *testing.T) {
	testKeyValueStorageContract(t, NewMemoryKeyValueStorage())
}

func TestMemoryKeyValueStorage_Concurrent(t *testing.T) {
	s := NewMemoryKeyValueStorage()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i%4)
			_ = s.Set(ctx, key, "v")
			_, _ = s.Get(ctx, key)
			_ = s.Delete(ctx, key)
		}()
	}
	wg.Wait()
}

func TestBoltKeyValueStorage(t *testing.T) {
	s, err := NewBoltKeyValueStorage(filepath.Join(t.TempDir(), "run", "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	testKeyValueStorageContract(t, s)
}

func TestBoltKeyValueStorage_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	s, err := NewBoltKeyValueStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, SessionAPIKey, "sk-live"))
	require.NoError(t, s.Close())

	reopened, err := NewBoltKeyValueStorage(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, SessionAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "sk-live", value)
}

func TestBoltKeyValueStorage_Closed(t *testing.T) {
	s, err := NewBoltKeyValueStorage(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.Get(context.Background(), SessionAPIKey)
	assert.ErrorIs(t, err, ErrStorageClosed)
	assert.ErrorIs(t, s.Set(context.Background(), SessionAPIKey, "v"), ErrStorageClosed)
}
