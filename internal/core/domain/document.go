package domain

import "fmt"

// ChunkMetadata identifies a stored chunk and its owning document.
// Every record in the vector store carries one.
type ChunkMetadata struct {
	// DocID is the identifier of the owning document.
	DocID string `json:"doc_id"`

	// Filename is the original name of the uploaded file.
	// All chunks of one document share the same filename.
	Filename string `json:"filename"`

	// ChunkIndex is the zero-based position within the document.
	ChunkIndex int `json:"chunk_index"`
}

// ChunkID builds the store identifier for a chunk. Identifiers are unique
// across all documents because docID is a randomly generated UUID.
func ChunkID(docID string, index int) string {
	return fmt.Sprintf("%s_chunk_%d", docID, index)
}

// IngestResult is the outcome of ingesting one document.
type IngestResult struct {
	// DocID is the generated document identifier.
	DocID string `json:"doc_id"`

	// Filename is the original name of the uploaded file.
	Filename string `json:"filename"`

	// TotalChunks is the number of chunks persisted for the document.
	TotalChunks int `json:"total_chunks"`

	// TextLength is the character count of the extracted text.
	TextLength int `json:"text_length"`
}

// DocumentInfo is the aggregated view of one ingested document,
// built by grouping stored chunk metadata by DocID.
type DocumentInfo struct {
	DocID      string `json:"doc_id"`
	Filename   string `json:"filename"`
	ChunkCount int    `json:"chunk_count"`
}

// Answer is a generated answer together with the retrieved chunk texts
// that were supplied to the model as grounding context. Context is empty
// when retrieval found nothing and the fallback answer was returned.
type Answer struct {
	Text    string   `json:"answer"`
	Context []string `json:"context_used"`
}
