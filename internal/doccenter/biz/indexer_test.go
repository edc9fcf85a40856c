package biz

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/doc-center/internal/model"
	"github.com/kart-io/doc-center/pkg/errors"
)

func seedDocuments(t *testing.T, s interface {
	Create(ctx context.Context, doc *model.Document) error
}, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, s.Create(context.Background(), &model.Document{
			ID:       id,
			Title:    "title-" + id,
			FilePath: "https://example.com/" + id,
			Content:  "content " + id,
		}))
	}
}

func TestIndexOne(t *testing.T) {
	engine := newFakeEngine()
	st := newTestStore(t)
	indexer := NewIndexer(st.Documents(), engine)

	doc := &model.Document{ID: "doc-1", Title: "t", Content: "c"}
	require.NoError(t, indexer.IndexOne(context.Background(), doc))

	assert.Equal(t, model.SearchDoc{Title: "t", Content: "c"}, engine.indexed["doc-1"])
}

func TestIndexOneFailFast(t *testing.T) {
	engine := newFakeEngine()
	engine.indexErr = io.ErrUnexpectedEOF
	st := newTestStore(t)
	indexer := NewIndexer(st.Documents(), engine)

	err := indexer.IndexOne(context.Background(), &model.Document{ID: "doc-1"})
	assert.ErrorIs(t, err, errors.ErrIndexing)
}

func TestReindexAll(t *testing.T) {
	engine := newFakeEngine()
	st := newTestStore(t)
	seedDocuments(t, st.Documents(), "a", "b", "c")
	indexer := NewIndexer(st.Documents(), engine)

	report, err := indexer.ReindexAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 3, report.Indexed)
	assert.Zero(t, report.Failed)
	assert.Empty(t, report.Errors)
	assert.Len(t, engine.indexed, 3)
}

func TestReindexAllContinuesPastFailures(t *testing.T) {
	engine := newFakeEngine()
	engine.failIDs["b"] = true
	st := newTestStore(t)
	seedDocuments(t, st.Documents(), "a", "b", "c")
	indexer := NewIndexer(st.Documents(), engine)

	report, err := indexer.ReindexAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Indexed)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "b", report.Errors[0].DocumentID)
	assert.Equal(t, "title-b", report.Errors[0].Title)
	assert.NotEmpty(t, report.Errors[0].Error)
}

func TestReindexAllEmptyStore(t *testing.T) {
	engine := newFakeEngine()
	st := newTestStore(t)
	indexer := NewIndexer(st.Documents(), engine)

	report, err := indexer.ReindexAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.Total)
	assert.Zero(t, report.Indexed)
	assert.Zero(t, report.Failed)
}
