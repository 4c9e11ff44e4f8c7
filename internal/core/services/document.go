package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docqa-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages ingested documents.
type DocumentService struct {
	store driven.VectorStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(store driven.VectorStore) *DocumentService {
	return &DocumentService{store: store}
}

// List enumerates all ingested documents with their chunk counts.
// Documents appear in the store's metadata order; chunks of the same
// document are contiguous there, so grouping preserves it.
func (s *DocumentService) List(ctx context.Context) ([]domain.DocumentInfo, error) {
	metadata, err := s.store.ListMetadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("list metadata: %w", err)
	}

	var docs []domain.DocumentInfo
	index := make(map[string]int)

	for _, m := range metadata {
		if i, ok := index[m.DocID]; ok {
			docs[i].ChunkCount++
			continue
		}
		index[m.DocID] = len(docs)
		docs = append(docs, domain.DocumentInfo{
			DocID:      m.DocID,
			Filename:   m.Filename,
			ChunkCount: 1,
		})
	}

	logger.Debug("Listed %d documents (%d chunks)", len(docs), len(metadata))
	return docs, nil
}

// Delete removes every chunk of the given document. The boolean reports
// whether the document existed. Store failures are returned as errors,
// never reported as "not found".
func (s *DocumentService) Delete(ctx context.Context, docID string) (bool, error) {
	if docID == "" {
		return false, fmt.Errorf("document id is empty: %w", domain.ErrInvalidInput)
	}

	removed, err := s.store.DeleteByDoc(ctx, docID)
	if err != nil {
		return false, fmt.Errorf("delete document %s: %w", docID, err)
	}

	logger.Info("Deleted document %s (%d chunks)", docID, removed)
	return removed > 0, nil
}
