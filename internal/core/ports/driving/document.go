package driving

import (
	"context"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
)

// DocumentService manages ingested documents.
type DocumentService interface {
	// List enumerates all ingested documents with their chunk counts.
	List(ctx context.Context) ([]domain.DocumentInfo, error)

	// Delete removes every chunk of the given document. The boolean reports
	// whether the document existed; a store failure is returned as an error
	// and is never collapsed into "not found".
	Delete(ctx context.Context, docID string) (bool, error)
}
