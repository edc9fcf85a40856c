package biz

import (
	"context"

	"github.com/kart-io/logger"

	"github.com/kart-io/doc-center/internal/doccenter/store"
	"github.com/kart-io/doc-center/internal/model"
	"github.com/kart-io/doc-center/pkg/errors"
	"github.com/kart-io/doc-center/pkg/search"
)

// Indexer mirrors persisted documents into the search index.
type Indexer struct {
	docs   store.DocumentStore
	engine search.Engine
}

// NewIndexer creates an Indexer.
func NewIndexer(docs store.DocumentStore, engine search.Engine) *Indexer {
	return &Indexer{docs: docs, engine: engine}
}

// IndexOne indexes a single document. It fails fast: any index error is
// returned to the caller.
func (i *Indexer) IndexOne(_ context.Context, doc *model.Document) error {
	if err := i.engine.Index(doc.ID, doc.SearchRecord()); err != nil {
		return errors.ErrIndexing.WithCause(err)
	}
	return nil
}

// ReindexAll indexes every persisted document. Per-document failures
// are recorded in the report and do not stop the batch.
func (i *Indexer) ReindexAll(ctx context.Context) (*model.IndexReport, error) {
	docs, err := i.docs.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &model.IndexReport{Total: len(docs)}
	for idx := range docs {
		doc := &docs[idx]
		if err := i.engine.Index(doc.ID, doc.SearchRecord()); err != nil {
			logger.Warnf("Failed to index document %s (%s): %v", doc.ID, doc.Title, err)
			report.Failed++
			report.Errors = append(report.Errors, model.IndexError{
				DocumentID: doc.ID,
				Title:      doc.Title,
				Error:      err.Error(),
			})
			continue
		}
		report.Indexed++
	}

	return report, nil
}
