// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - VectorStore: Persistent chunk/vector storage with similarity query
//   - EmbeddingService: Generates vector embeddings for chunks and queries
//   - PromptStore: Provides the grounding prompt template
//
// # Optional Interfaces
//
//   - LLMService: Answer generation. When nil, retrieval still works but
//     ask operations fail with domain.ErrGenerationFailed.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
