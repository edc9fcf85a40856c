// Package qa defines the question answering backend interface.
package qa

import "context"

// Extractor answers a question over a context passage. Implementations
// call out to an extractive question answering model.
type Extractor interface {
	// Answer returns the model's answer for the question given the
	// context passage.
	Answer(ctx context.Context, question, passage string) (string, error)
}
