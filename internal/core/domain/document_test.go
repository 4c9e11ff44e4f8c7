package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkID(t *testing.T) {
	tests := []struct {
		name  string
		docID string
		index int
		want  string
	}{
		{"first chunk", "abc-123", 0, "abc-123_chunk_0"},
		{"later chunk", "abc-123", 41, "abc-123_chunk_41"},
		{"uuid doc id", "550e8400-e29b-41d4-a716-446655440000", 7, "550e8400-e29b-41d4-a716-446655440000_chunk_7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChunkID(tt.docID, tt.index))
		})
	}
}

func TestChunkID_UniqueAcrossDocuments(t *testing.T) {
	// Two documents can never collide because the doc id is part of the key.
	a := ChunkID("doc-a", 0)
	b := ChunkID("doc-b", 0)
	assert.NotEqual(t, a, b)

	// Within one document the index disambiguates.
	assert.NotEqual(t, ChunkID("doc-a", 0), ChunkID("doc-a", 1))
}
