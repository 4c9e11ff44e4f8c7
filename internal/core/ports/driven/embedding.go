package driven

import "context"

// EmbeddingService generates vector embeddings from text.
// One fixed model serves the whole process: the service is constructed once
// at startup and reused for every ingestion batch and every query.
//
// Implementations may include:
//   - Ollama (all-minilm, nomic-embed-text)
//   - Any OpenAI-compatible embedding endpoint
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts, order preserving,
	// one vector per input. This is how ingestion embeds a whole document's
	// chunks in a single call.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g., 384, 768).
	// Constant for the lifetime of the process.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable. Run at startup, before the
	// application accepts work, so a missing model fails fast.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
