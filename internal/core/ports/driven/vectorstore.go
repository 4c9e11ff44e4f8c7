package driven

import (
	"context"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
)

// Record is one stored chunk: its identifier, embedding, raw text and
// metadata. Records are immutable once written; they are removed en masse
// when their document is deleted.
type Record struct {
	// ID is the chunk identifier, built by domain.ChunkID.
	ID string

	// Embedding is the chunk's vector representation.
	Embedding []float32

	// Content is the chunk text.
	Content string

	// Metadata identifies the owning document and chunk position.
	Metadata domain.ChunkMetadata
}

// Hit is a similarity search result.
type Hit struct {
	// Content is the matched chunk text.
	Content string

	// Score is the cosine similarity to the query vector (higher is closer).
	Score float64

	// Metadata identifies the matched chunk.
	Metadata domain.ChunkMetadata
}

// VectorStore persists chunk vectors and supports cosine similarity query.
// The store survives process restarts and tolerates concurrent Add, Query
// and DeleteByDoc calls. An Add followed by a Query can always see the new
// records; there is no asynchronous indexing delay.
type VectorStore interface {
	// Add inserts all records. Re-adding an existing id is an upsert;
	// id construction makes collisions between documents impossible anyway.
	Add(ctx context.Context, records []Record) error

	// Query returns up to k records ordered by descending cosine similarity
	// to the given vector. A non-empty docID restricts results to that
	// document's chunks. Fewer than k results is not an error.
	Query(ctx context.Context, embedding []float32, k int, docID string) ([]Hit, error)

	// DeleteByDoc removes every record belonging to docID and reports how
	// many were removed. Removing zero records is not an error.
	DeleteByDoc(ctx context.Context, docID string) (int, error)

	// ListMetadata returns the metadata of every stored record. Used to
	// enumerate and aggregate documents.
	ListMetadata(ctx context.Context) ([]domain.ChunkMetadata, error)

	// Close releases resources.
	Close() error
}
