package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/docqa-cli/internal/chunker"
	"github.com/custodia-labs/docqa-cli/internal/core/domain"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docqa-cli/internal/extract"
	"github.com/custodia-labs/docqa-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService runs the ingestion pipeline: extract, chunk, embed, persist.
type IngestService struct {
	chunker  *chunker.Chunker
	embedder driven.EmbeddingService
	store    driven.VectorStore
}

// NewIngestService creates a new ingest service.
func NewIngestService(
	ch *chunker.Chunker,
	embedder driven.EmbeddingService,
	store driven.VectorStore,
) *IngestService {
	return &IngestService{
		chunker:  ch,
		embedder: embedder,
		store:    store,
	}
}

// Ingest processes the file at path under the given document identity.
// The filename carries the original upload name and determines the
// extraction format. On any failure nothing for this docID is persisted.
func (s *IngestService) Ingest(
	ctx context.Context, path, docID, filename string,
) (*domain.IngestResult, error) {
	logger.Section("Ingestion")
	logger.Debug("File: %s (doc %s)", filename, docID)

	format, err := extract.ParseFormat(filepath.Ext(filename))
	if err != nil {
		return nil, err
	}

	text, err := extract.Text(path, format)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", filename, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%s: %w", filename, domain.ErrEmptyDocument)
	}
	textLength := utf8.RuneCountInString(text)
	logger.Debug("Extracted %d characters", textLength)

	chunks := s.chunker.Split(text)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, domain.ErrNoChunks)
	}
	logger.Debug("Split into %d chunks (size %d, overlap %d)",
		len(chunks), s.chunker.Size(), s.chunker.Overlap())

	embeddings, err := s.embedder.EmbedBatch(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("embed chunks: %w", err)
	}
	if len(embeddings) != len(chunks) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d chunks",
			len(embeddings), len(chunks))
	}

	records := make([]driven.Record, len(chunks))
	for i, chunk := range chunks {
		records[i] = driven.Record{
			ID:        domain.ChunkID(docID, i),
			Embedding: embeddings[i],
			Content:   chunk,
			Metadata: domain.ChunkMetadata{
				DocID:      docID,
				Filename:   filename,
				ChunkIndex: i,
			},
		}
	}

	if err := s.store.Add(ctx, records); err != nil {
		return nil, fmt.Errorf("store chunks: %w", err)
	}
	logger.Info("Ingested %s: %d chunks", filename, len(records))

	return &domain.IngestResult{
		DocID:       docID,
		Filename:    filename,
		TotalChunks: len(records),
		TextLength:  textLength,
	}, nil
}
