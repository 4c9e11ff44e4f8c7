// Package sqlite provides a SQLite-backed implementation of the VectorStore port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. Chunk embeddings are stored
// as little-endian float32 BLOBs; similarity queries load the candidate rows
// and rank them by cosine similarity in Go. At the scale this tool targets
// (personal document collections) a brute-force scan outperforms the
// bookkeeping of a dedicated index.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory and embedded at compile time.
//
// # Data Location
//
// By default, the database is stored at ~/.docqa/data/vectors.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode; a write followed by a read on another
// connection observes the written rows.
package sqlite
