package model

// QueryRequest carries a retrieval-augmented question.
type QueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// SearchHit is a single ranked result returned by the search index.
// Hits are ephemeral; they are produced per query and never persisted.
type SearchHit struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	Score       float64 `json:"score"`
}

// QueryResult is the outcome of a retrieval-augmented query.
// Answer is the extracted answer text; Hits is the untruncated hit list
// in the search engine's ranking order.
type QueryResult struct {
	Answer string      `json:"generated_answer"`
	Hits   []SearchHit `json:"results"`
}

// IndexError records a single document that failed to index during a
// batch reindex.
type IndexError struct {
	DocumentID string `json:"document_id"`
	Title      string `json:"title"`
	Error      string `json:"error"`
}

// IndexReport summarizes a batch reindex run. Batch indexing is
// best-effort per document; failures are collected here instead of
// aborting the batch.
type IndexReport struct {
	Total   int          `json:"total"`
	Indexed int          `json:"indexed"`
	Failed  int          `json:"failed"`
	Errors  []IndexError `json:"errors,omitempty"`
}
