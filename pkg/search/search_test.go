package search

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/doc-center/internal/model"
	searchopts "github.com/kart-io/doc-center/pkg/options/search"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()

	opts := searchopts.NewOptions()
	opts.IndexPath = filepath.Join(t.TempDir(), "test.bleve")

	idx, err := Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	return idx
}

func TestOpenCreatesAndReopens(t *testing.T) {
	opts := searchopts.NewOptions()
	opts.IndexPath = filepath.Join(t.TempDir(), "reopen.bleve")

	idx, err := Open(opts)
	require.NoError(t, err)

	require.NoError(t, idx.Index("doc-1", model.SearchDoc{Title: "hello"}))
	require.NoError(t, idx.Close())

	// Reopening an existing index must not fail or lose documents.
	idx, err = Open(opts)
	require.NoError(t, err)
	defer idx.Close()

	count, err := idx.DocCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestSearchMatchesAnyField(t *testing.T) {
	idx := newTestIndex(t)

	require.NoError(t, idx.Index("doc-1", model.SearchDoc{
		Title:       "kubernetes networking",
		Description: "cluster setup guide",
		Content:     "pods communicate over the overlay network",
	}))
	require.NoError(t, idx.Index("doc-2", model.SearchDoc{
		Title:       "cooking basics",
		Description: "a kubernetes free zone",
		Content:     "how to boil pasta",
	}))
	require.NoError(t, idx.Index("doc-3", model.SearchDoc{
		Title:       "unrelated",
		Description: "nothing here",
		Content:     "completely different topic",
	}))

	hits, err := idx.Search(context.Background(), "kubernetes")
	require.NoError(t, err)
	require.Len(t, hits, 2)

	ids := []string{hits[0].ID, hits[1].ID}
	assert.Contains(t, ids, "doc-1")
	assert.Contains(t, ids, "doc-2")
}

func TestSearchReturnsStoredFields(t *testing.T) {
	idx := newTestIndex(t)

	require.NoError(t, idx.Index("doc-1", model.SearchDoc{
		Title:       "gopher handbook",
		Description: "all about gophers",
		Content:     "gophers dig tunnels",
	}))

	hits, err := idx.Search(context.Background(), "gopher")
	require.NoError(t, err)
	require.Len(t, hits, 1)

	assert.Equal(t, "doc-1", hits[0].ID)
	assert.Equal(t, "gopher handbook", hits[0].Title)
	assert.Equal(t, "all about gophers", hits[0].Description)
	assert.Equal(t, "gophers dig tunnels", hits[0].Content)
	assert.Greater(t, hits[0].Score, 0.0)
}

func TestSearchNoMatches(t *testing.T) {
	idx := newTestIndex(t)

	require.NoError(t, idx.Index("doc-1", model.SearchDoc{Title: "alpha", Content: "beta"}))

	hits, err := idx.Search(context.Background(), "zzzznonexistent")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearchRespectsMaxResults(t *testing.T) {
	opts := searchopts.NewOptions()
	opts.IndexPath = filepath.Join(t.TempDir(), "limited.bleve")
	opts.MaxResults = 2

	idx, err := Open(opts)
	require.NoError(t, err)
	defer idx.Close()

	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, idx.Index(id, model.SearchDoc{Content: "shared keyword"}))
	}

	hits, err := idx.Search(context.Background(), "shared")
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestIndexReplacesExistingDocument(t *testing.T) {
	idx := newTestIndex(t)

	require.NoError(t, idx.Index("doc-1", model.SearchDoc{Title: "old title"}))
	require.NoError(t, idx.Index("doc-1", model.SearchDoc{Title: "new title"}))

	count, err := idx.DocCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	hits, err := idx.Search(context.Background(), "new")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "new title", hits[0].Title)
}

func TestDelete(t *testing.T) {
	idx := newTestIndex(t)

	require.NoError(t, idx.Index("doc-1", model.SearchDoc{Title: "ephemeral"}))
	require.NoError(t, idx.Delete("doc-1"))

	hits, err := idx.Search(context.Background(), "ephemeral")
	require.NoError(t, err)
	assert.Empty(t, hits)
}
