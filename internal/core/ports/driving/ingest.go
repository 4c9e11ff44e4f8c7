package driving

import (
	"context"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
)

// IngestService runs the full ingestion pipeline for one saved file:
// extract, chunk, embed, persist.
type IngestService interface {
	// Ingest processes the file at path under the given document identity.
	// The filename is the original upload name, kept as chunk metadata.
	// On any failure nothing for this docID is persisted.
	Ingest(ctx context.Context, path, docID, filename string) (*domain.IngestResult, error)
}
