package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates the file extension does not match
	// any known extraction strategy. Raised before anything is persisted.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmptyDocument indicates extraction produced no text.
	// The document is rejected before any store write.
	ErrEmptyDocument = errors.New("document is empty or contains no extractable text")

	// ErrNoChunks indicates chunking produced zero chunks.
	// Defensive check; extraction output that survives the empty-document
	// check should always yield at least one chunk.
	ErrNoChunks = errors.New("document produced no chunks")

	// ErrRetrievalFailed indicates the query embedding or the vector
	// store query failed. Infrastructure error, never silently swallowed.
	ErrRetrievalFailed = errors.New("retrieval failed")

	// ErrGenerationFailed indicates the external generation call failed
	// or the generation service is not configured.
	ErrGenerationFailed = errors.New("answer generation failed")
)
