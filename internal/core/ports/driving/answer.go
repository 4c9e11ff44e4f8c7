package driving

import (
	"context"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
)

// AnswerService answers natural-language questions from ingested documents.
type AnswerService interface {
	// Answer retrieves grounding chunks for the question and generates an
	// answer from them. A non-empty docID restricts retrieval to that
	// document. When retrieval finds nothing, a fixed fallback answer with
	// empty context is returned; this is a defined outcome, not an error.
	Answer(ctx context.Context, question, docID string) (*domain.Answer, error)

	// Retrieve returns the nearest chunk texts for the question,
	// nearest first, without calling the generation service.
	Retrieve(ctx context.Context, question, docID string) ([]string, error)
}
