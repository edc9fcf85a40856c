package biz

import (
	"context"
	"strings"

	"github.com/kart-io/logger"

	"github.com/kart-io/doc-center/internal/model"
	"github.com/kart-io/doc-center/pkg/errors"
	"github.com/kart-io/doc-center/pkg/qa"
	"github.com/kart-io/doc-center/pkg/search"
)

// NoDocumentsAnswer is returned when a query matches no documents.
const NoDocumentsAnswer = "No relevant documents found."

// TruncationMarker is appended when the assembled context is cut off.
const TruncationMarker = "..."

// QueryService answers questions over the indexed documents.
type QueryService struct {
	engine       search.Engine
	extractor    qa.Extractor
	contextChars int
}

// NewQueryService creates a QueryService. contextChars caps the context
// passage assembled from search hits.
func NewQueryService(engine search.Engine, extractor qa.Extractor, contextChars int) *QueryService {
	return &QueryService{
		engine:       engine,
		extractor:    extractor,
		contextChars: contextChars,
	}
}

// Answer searches for documents matching the question and extracts an
// answer from their combined content.
//
// When no documents match, the fixed NoDocumentsAnswer is returned and
// the QA backend is not called. When the QA backend fails, the error is
// returned to the caller rather than encoded as an answer string.
func (s *QueryService) Answer(ctx context.Context, question string) (*model.QueryResult, error) {
	if strings.TrimSpace(question) == "" {
		return nil, errors.ErrBadRequest.WithMessage("question cannot be empty")
	}

	hits, err := s.engine.Search(ctx, question)
	if err != nil {
		return nil, errors.ErrSearch.WithCause(err)
	}

	if len(hits) == 0 {
		return &model.QueryResult{
			Answer: NoDocumentsAnswer,
			Hits:   []model.SearchHit{},
		}, nil
	}

	passage := s.buildPassage(hits)

	answer, err := s.extractor.Answer(ctx, question, passage)
	if err != nil {
		logger.Errorf("Answer extraction failed for question %q: %v", question, err)
		return nil, errors.ErrAnswerExtraction.WithCause(err)
	}

	return &model.QueryResult{
		Answer: answer,
		Hits:   hits,
	}, nil
}

// buildPassage joins hit contents with single spaces and truncates the
// result to the configured cap, marking the cut. Hits returned to the
// caller keep their full content; only the QA passage is truncated.
func (s *QueryService) buildPassage(hits []model.SearchHit) string {
	parts := make([]string, 0, len(hits))
	for _, hit := range hits {
		parts = append(parts, hit.Content)
	}
	passage := strings.Join(parts, " ")

	runes := []rune(passage)
	if len(runes) > s.contextChars {
		passage = string(runes[:s.contextChars]) + TruncationMarker
	}
	return passage
}
