package storage

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// failingStore returns a fixed error from Get.
type failingStore struct {
	err error
}

func (s *failingStore) Get(ctx context.Context, key string) ([]byte, error) { return nil, s.err }
func (s *failingStore) Set(ctx context.Context, key string, value []byte) error {
	return s.err
}
func (s *failingStore) Close() error { return nil }

func TestLoadCollection_AbsentKeyReturnsEmpty(t *testing.T) {
	store := NewMemoryStore()

	items := LoadCollection[sample](context.Background(), store, "missing", slog.Default())

	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestLoadCollection_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	in := []sample{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
	require.NoError(t, SaveCollection(ctx, store, "samples", in))

	out := LoadCollection[sample](ctx, store, "samples", slog.Default())
	assert.Equal(t, in, out)
}

func TestLoadCollection_CorruptPayloadReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "bad", []byte("{not json")))

	items := LoadCollection[sample](ctx, store, "bad", slog.Default())

	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestLoadCollection_ReadErrorReturnsEmpty(t *testing.T) {
	store := &failingStore{err: errors.New("medium unavailable")}

	items := LoadCollection[sample](context.Background(), store, "any", slog.Default())

	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSaveCollection_NilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, SaveCollection[sample](ctx, store, "empty", nil))

	raw, err := store.Get(ctx, "empty")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestSaveCollection_OverwritesPriorContent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, SaveCollection(ctx, store, "k", []sample{{Name: "old"}}))
	require.NoError(t, SaveCollection(ctx, store, "k", []sample{{Name: "new"}}))

	out := LoadCollection[sample](ctx, store, "k", slog.Default())
	require.Len(t, out, 1)
	assert.Equal(t, "new", out[0].Name)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "k", []byte("abc")))

	raw, err := store.Get(ctx, "k")
	require.NoError(t, err)
	raw[0] = 'z'

	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
