package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values, applied when config.toml is absent or
// leaves a field unset.
const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 50
	DefaultTopK         = 3
)

// Config holds the application configuration, loaded from
// ~/.docqa/config.toml with defaults applied in code.
type Config struct {
	// DataDir is the directory holding the vector database and uploads.
	// Defaults to ~/.docqa.
	DataDir string `toml:"data_dir"`

	// ChunkSize is the chunk window in characters.
	ChunkSize int `toml:"chunk_size"`

	// ChunkOverlap is the character overlap between consecutive chunks.
	// Must be smaller than ChunkSize.
	ChunkOverlap int `toml:"chunk_overlap"`

	// TopK is the number of chunks retrieved per question.
	TopK int `toml:"top_k"`

	Embedding EmbeddingConfig `toml:"embedding"`
	LLM       LLMConfig       `toml:"llm"`
}

// EmbeddingConfig configures the embedding backend.
type EmbeddingConfig struct {
	// BaseURL is the Ollama server URL. Empty uses the adapter default.
	BaseURL string `toml:"base_url"`

	// Model is the embedding model id. Empty uses the adapter default.
	Model string `toml:"model"`
}

// LLMConfig configures the generation backend.
type LLMConfig struct {
	// APIKey is the Gemini API key. The GEMINI_API_KEY environment
	// variable takes precedence over the file.
	APIKey string `toml:"api_key"`

	// BaseURL overrides the Gemini API base URL. Empty uses the
	// adapter default.
	BaseURL string `toml:"base_url"`

	// Model is the generation model id. Empty uses the adapter default.
	Model string `toml:"model"`
}

// LoadConfig reads configuration from configDir/config.toml.
// If configDir is empty, defaults to ~/.docqa. A missing file is not an
// error; defaults are returned.
func LoadConfig(configDir string) (*Config, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".docqa")
	}

	cfg := &Config{
		DataDir:      configDir,
		ChunkSize:    DefaultChunkSize,
		ChunkOverlap: DefaultChunkOverlap,
		TopK:         DefaultTopK,
	}

	path := filepath.Join(configDir, "config.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = configDir
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// applyEnv overlays environment variables onto the configuration.
func (c *Config) applyEnv() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
	}
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 {
		return fmt.Errorf("chunk_overlap must not be negative, got %d", c.ChunkOverlap)
	}
	if c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("chunk_overlap (%d) must be smaller than chunk_size (%d)", c.ChunkOverlap, c.ChunkSize)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("top_k must be positive, got %d", c.TopK)
	}
	return nil
}

// UploadsDir returns the directory where ingested source files are kept.
func (c *Config) UploadsDir() string {
	return filepath.Join(c.DataDir, "uploads")
}
