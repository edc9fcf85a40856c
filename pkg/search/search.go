// Package search provides the full-text document index for doc-center.
//
// It wraps a bleve index over the title, description, and content fields
// of documents. Queries match any of the three fields and return ranked
// hits with stored field values.
package search

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/kart-io/doc-center/internal/model"
	searchopts "github.com/kart-io/doc-center/pkg/options/search"
)

// Indexed field names. These match the json tags on model.SearchDoc.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldContent     = "content"
)

// Engine is the document search index.
type Engine interface {
	// Index adds or replaces a document in the index.
	Index(id string, doc model.SearchDoc) error

	// Delete removes a document from the index.
	Delete(id string) error

	// Search returns ranked hits matching the query in any field.
	Search(ctx context.Context, query string) ([]model.SearchHit, error)

	// DocCount returns the number of indexed documents.
	DocCount() (uint64, error)

	// Close releases the index.
	Close() error
}

// Index implements Engine on top of bleve.
type Index struct {
	idx  bleve.Index
	opts *searchopts.Options
}

var _ Engine = (*Index)(nil)

// Open opens the index at opts.IndexPath, creating it with the document
// mapping if it does not exist yet. Opening is idempotent.
func Open(opts *searchopts.Options) (*Index, error) {
	if opts == nil {
		return nil, fmt.Errorf("search options cannot be nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search options: %w", err)
	}

	idx, err := bleve.Open(opts.IndexPath)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(opts.IndexPath, buildIndexMapping())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open index at %s: %w", opts.IndexPath, err)
	}

	return &Index{idx: idx, opts: opts}, nil
}

// buildIndexMapping creates the bleve mapping for document records.
// All fields use the standard analyzer and are stored so search hits
// can be returned without a database round trip.
func buildIndexMapping() mapping.IndexMapping {
	docMapping := bleve.NewDocumentMapping()

	titleField := bleve.NewTextFieldMapping()
	titleField.Analyzer = standard.Name
	titleField.Store = true
	docMapping.AddFieldMappingsAt(FieldTitle, titleField)

	descField := bleve.NewTextFieldMapping()
	descField.Analyzer = standard.Name
	descField.Store = true
	docMapping.AddFieldMappingsAt(FieldDescription, descField)

	contentField := bleve.NewTextFieldMapping()
	contentField.Analyzer = standard.Name
	contentField.Store = true
	contentField.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt(FieldContent, contentField)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping
	indexMapping.DefaultAnalyzer = standard.Name

	return indexMapping
}

// Index adds or replaces a document in the index.
func (i *Index) Index(id string, doc model.SearchDoc) error {
	if err := i.idx.Index(id, doc); err != nil {
		return fmt.Errorf("failed to index document %s: %w", id, err)
	}
	return nil
}

// Delete removes a document from the index.
func (i *Index) Delete(id string) error {
	return i.idx.Delete(id)
}

// Search matches the query against title, description, and content and
// returns ranked hits with their stored field values.
func (i *Index) Search(ctx context.Context, queryText string) ([]model.SearchHit, error) {
	titleQuery := bleve.NewMatchQuery(queryText)
	titleQuery.SetField(FieldTitle)

	descQuery := bleve.NewMatchQuery(queryText)
	descQuery.SetField(FieldDescription)

	contentQuery := bleve.NewMatchQuery(queryText)
	contentQuery.SetField(FieldContent)

	searchQuery := bleve.NewDisjunctionQuery(titleQuery, descQuery, contentQuery)

	req := bleve.NewSearchRequest(searchQuery)
	req.Size = i.opts.MaxResults
	req.Fields = []string{FieldTitle, FieldDescription, FieldContent}

	res, err := i.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]model.SearchHit, 0, len(res.Hits))
	for _, hit := range res.Hits {
		hits = append(hits, model.SearchHit{
			ID:          hit.ID,
			Title:       fieldString(hit.Fields, FieldTitle),
			Description: fieldString(hit.Fields, FieldDescription),
			Content:     fieldString(hit.Fields, FieldContent),
			Score:       hit.Score,
		})
	}
	return hits, nil
}

// DocCount returns the number of indexed documents.
func (i *Index) DocCount() (uint64, error) {
	return i.idx.DocCount()
}

// Close releases the index.
func (i *Index) Close() error {
	return i.idx.Close()
}

func fieldString(fields map[string]interface{}, name string) string {
	if v, ok := fields[name].(string); ok {
		return v
	}
	return ""
}
