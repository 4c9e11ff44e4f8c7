package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docqa-cli/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// contextSeparator joins retrieved chunks into one prompt block.
const contextSeparator = "\n\n---\n\n"

// FallbackAnswer is returned when retrieval finds no relevant chunks.
// This is a defined outcome of asking about content that was never
// ingested, not an error.
const FallbackAnswer = "I could not find relevant information in your documents for this question. " +
	"Try a different question or ingest another document."

// defaultAnswerPrompt is used when the prompt store cannot serve the
// answer template.
const defaultAnswerPrompt = `You are a document assistant. Answer the question using ONLY the excerpts below.
If the excerpts do not contain the answer, say "The documents I have do not answer that question."
Be concise. Use a short list when the answer has several parts.

Excerpts:
%s

Question: %s

Answer:`

// AnswerService answers questions grounded in ingested documents.
// The llm may be nil; retrieval still works and Answer reports
// domain.ErrGenerationFailed.
type AnswerService struct {
	embedder driven.EmbeddingService
	store    driven.VectorStore
	llm      driven.LLMService
	prompts  driven.PromptStore
	topK     int
}

// NewAnswerService creates a new answer service. topK values below one
// fall back to 3.
func NewAnswerService(
	embedder driven.EmbeddingService,
	store driven.VectorStore,
	llm driven.LLMService,
	prompts driven.PromptStore,
	topK int,
) *AnswerService {
	if topK < 1 {
		topK = 3
	}
	return &AnswerService{
		embedder: embedder,
		store:    store,
		llm:      llm,
		prompts:  prompts,
		topK:     topK,
	}
}

// Retrieve returns the nearest chunk texts for the question, nearest first.
func (s *AnswerService) Retrieve(ctx context.Context, question, docID string) ([]string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("question is empty: %w", domain.ErrInvalidInput)
	}

	logger.Debug("Embedding question (%d characters)", len(question))
	embedding, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w: %w", domain.ErrRetrievalFailed, err)
	}

	hits, err := s.store.Query(ctx, embedding, s.topK, docID)
	if err != nil {
		return nil, fmt.Errorf("query store: %w: %w", domain.ErrRetrievalFailed, err)
	}
	logger.Debug("Retrieved %d chunks (top_k %d)", len(hits), s.topK)

	texts := make([]string, len(hits))
	for i, hit := range hits {
		texts[i] = hit.Content
	}
	return texts, nil
}

// Answer retrieves grounding chunks for the question and generates an
// answer from them.
func (s *AnswerService) Answer(ctx context.Context, question, docID string) (*domain.Answer, error) {
	logger.Section("Question Answering")

	chunks, err := s.Retrieve(ctx, question, docID)
	if err != nil {
		return nil, err
	}

	if len(chunks) == 0 {
		logger.Info("No relevant chunks found, returning fallback answer")
		return &domain.Answer{
			Text:    FallbackAnswer,
			Context: []string{},
		}, nil
	}

	if s.llm == nil {
		return nil, fmt.Errorf("no generation service configured (set GEMINI_API_KEY): %w",
			domain.ErrGenerationFailed)
	}

	prompt := fmt.Sprintf(s.answerTemplate(), strings.Join(chunks, contextSeparator), question)

	logger.Debug("Generating answer with %s", s.llm.ModelName())
	text, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   1024,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w: %w", domain.ErrGenerationFailed, err)
	}

	return &domain.Answer{
		Text:    strings.TrimSpace(text),
		Context: chunks,
	}, nil
}

// answerTemplate loads the answer prompt, falling back to the embedded
// default when the store is absent or fails.
func (s *AnswerService) answerTemplate() string {
	if s.prompts == nil {
		return defaultAnswerPrompt
	}
	template, err := s.prompts.Load(driven.PromptAnswer)
	if err != nil {
		logger.Warn("Loading answer prompt failed: %v (using default)", err)
		return defaultAnswerPrompt
	}
	return template
}
