// Package domain defines the core business entities for docqa.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - IngestResult: The outcome of ingesting one document
//   - ChunkMetadata: Identity of a stored chunk within its document
//   - DocumentInfo: Aggregated view of one ingested document
//   - Answer: A generated answer with its grounding context
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
