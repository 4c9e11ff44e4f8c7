package driven

import "context"

// LLMService produces generated text from a prompt. This is an optional
// service - when nil, ask operations report domain.ErrGenerationFailed
// while ingestion and retrieval keep working.
//
// Implementations may include:
//   - Gemini (generative language API)
//   - Any OpenAI-compatible chat completion endpoint
type LLMService interface {
	// Generate produces a text completion from a prompt. One synchronous
	// network round-trip, no built-in retry.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the generation model being used.
	ModelName() string

	// Ping validates the service is reachable.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate. Zero means
	// the provider default.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64
}
