// internal/docstore/memory_test.go
package docstore_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bitloft/orgkit/internal/docstore"
	"github.com/bitloft/orgkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getDoc(t *testing.T, s docstore.Store, collection, id string) map[string]any {
	t.Helper()
	raw, err := s.Get(context.Background(), collection, id)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func TestMemoryStoreSet(t *testing.T) {
	ctx := context.Background()

	t.Run("get of a missing document", func(t *testing.T) {
		s := docstore.NewMemoryStore()
		_, err := s.Get(ctx, docstore.Charts, "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("overwrite replaces the whole document", func(t *testing.T) {
		s := docstore.NewMemoryStore()
		require.NoError(t, s.Set(ctx, docstore.Charts, "c1", map[string]any{"a": 1, "b": 2}, false))
		require.NoError(t, s.Set(ctx, docstore.Charts, "c1", map[string]any{"a": 9}, false))

		doc := getDoc(t, s, docstore.Charts, "c1")
		assert.Equal(t, float64(9), doc["a"])
		assert.NotContains(t, doc, "b")
	})

	t.Run("merge is last-writer-wins per top-level field", func(t *testing.T) {
		s := docstore.NewMemoryStore()
		require.NoError(t, s.Set(ctx, docstore.Charts, "c1", map[string]any{"a": 1, "b": 2}, true))
		require.NoError(t, s.Set(ctx, docstore.Charts, "c1", map[string]any{"b": 3, "c": 4}, true))

		doc := getDoc(t, s, docstore.Charts, "c1")
		assert.Equal(t, float64(1), doc["a"])
		assert.Equal(t, float64(3), doc["b"])
		assert.Equal(t, float64(4), doc["c"])
	})

	t.Run("merge does not recurse into nested objects", func(t *testing.T) {
		s := docstore.NewMemoryStore()
		require.NoError(t, s.Set(ctx, docstore.Charts, "c1", map[string]any{
			"meta": map[string]any{"x": 1, "y": 2},
		}, true))
		require.NoError(t, s.Set(ctx, docstore.Charts, "c1", map[string]any{
			"meta": map[string]any{"x": 5},
		}, true))

		doc := getDoc(t, s, docstore.Charts, "c1")
		meta := doc["meta"].(map[string]any)
		assert.Equal(t, float64(5), meta["x"])
		assert.NotContains(t, meta, "y")
	})

	t.Run("non-object documents are rejected", func(t *testing.T) {
		s := docstore.NewMemoryStore()
		assert.Error(t, s.Set(ctx, docstore.Charts, "c1", []string{"not", "an", "object"}, false))
	})

	t.Run("forced write failures surface as store errors", func(t *testing.T) {
		s := docstore.NewMemoryStore()
		s.FailWrites = true
		err := s.Set(ctx, docstore.Charts, "c1", map[string]any{"a": 1}, false)
		assert.ErrorIs(t, err, domain.ErrStore)
	})
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	s := docstore.NewMemoryStore()

	require.NoError(t, s.Set(ctx, docstore.Invites, "BBB", map[string]any{"n": 2}, false))
	require.NoError(t, s.Set(ctx, docstore.Invites, "AAA", map[string]any{"n": 1}, false))
	require.NoError(t, s.Set(ctx, docstore.Charts, "other", map[string]any{}, false))

	docs, err := s.List(ctx, docstore.Invites)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "AAA", docs[0].ID)
	assert.Equal(t, "BBB", docs[1].ID)
}
