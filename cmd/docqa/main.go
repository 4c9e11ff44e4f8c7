// Command docqa is a CLI for asking questions about your documents.
// It ingests PDF, DOCX, TXT and PPTX files, indexes their content as
// embeddings in a local SQLite store, and answers questions grounded
// in the indexed text.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/custodia-labs/docqa-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docqa-cli/internal/adapters/driven/embedding/ollama"
	"github.com/custodia-labs/docqa-cli/internal/adapters/driven/llm/gemini"
	"github.com/custodia-labs/docqa-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docqa-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/docqa-cli/internal/chunker"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docqa-cli/internal/core/services"
	"github.com/custodia-labs/docqa-cli/internal/logger"
)

// version is set at build time via
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

const pingTimeout = 10 * time.Second

func main() {
	cli.SetVersion(version)
	cli.SetInitializer(buildServices)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildServices wires the pipeline once the persistent flags are parsed.
func buildServices(dataDir string, _ bool) (*cli.Services, error) {
	cfg, err := file.LoadConfig(dataDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.Debug("Data directory: %s", cfg.DataDir)

	store, err := sqlite.NewStore(filepath.Join(cfg.DataDir, "data"))
	if err != nil {
		return nil, fmt.Errorf("open vector store: %w", err)
	}
	logger.Debug("Vector store: %s", store.Path())

	embedder := ollama.NewService(ollama.Config{
		BaseURL: cfg.Embedding.BaseURL,
		Model:   cfg.Embedding.Model,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := embedder.Ping(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("embedding service unreachable (is Ollama running?): %w", err)
	}
	logger.Debug("Embedding model: %s", embedder.ModelName())

	// Generation is optional. Without a key, ingest and retrieval still
	// work; ask reports that no generation service is configured.
	var llm driven.LLMService
	if cfg.LLM.APIKey != "" {
		llm, err = gemini.NewLLMService(gemini.Config{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
		})
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("configure generation service: %w", err)
		}
		logger.Debug("Generation model: %s", llm.ModelName())
	} else {
		logger.Debug("No GEMINI_API_KEY set, generation disabled")
	}

	prompts, err := file.NewPromptStore(filepath.Join(cfg.DataDir, "prompts"))
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("open prompt store: %w", err)
	}

	ch := chunker.New(
		chunker.WithSize(cfg.ChunkSize),
		chunker.WithOverlap(cfg.ChunkOverlap),
	)

	return &cli.Services{
		Ingest:     services.NewIngestService(ch, embedder, store),
		Answer:     services.NewAnswerService(embedder, store, llm, prompts, cfg.TopK),
		Document:   services.NewDocumentService(store),
		UploadsDir: cfg.UploadsDir(),
		Cleanup: func() {
			if llm != nil {
				llm.Close()
			}
			embedder.Close()
			if err := store.Close(); err != nil {
				logger.Warn("Closing vector store: %v", err)
			}
		},
	}, nil
}
