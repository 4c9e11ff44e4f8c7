package cli

import (
	"context"
	"testing"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
)

// --- Mock services ---

type mockIngestService struct {
	result    *domain.IngestResult
	err       error
	lastPath  string
	lastDocID string
	lastName  string
}

func (m *mockIngestService) Ingest(_ context.Context, path, docID, filename string) (*domain.IngestResult, error) {
	m.lastPath = path
	m.lastDocID = docID
	m.lastName = filename
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type mockAnswerService struct {
	answer       *domain.Answer
	err          error
	lastQuestion string
	lastDocID    string
}

func (m *mockAnswerService) Answer(_ context.Context, question, docID string) (*domain.Answer, error) {
	m.lastQuestion = question
	m.lastDocID = docID
	if m.err != nil {
		return nil, m.err
	}
	return m.answer, nil
}

func (m *mockAnswerService) Retrieve(_ context.Context, _, _ string) ([]string, error) {
	return nil, nil
}

type mockDocumentService struct {
	docs      []domain.DocumentInfo
	listErr   error
	found     bool
	deleteErr error
	lastDocID string
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.DocumentInfo, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.docs, nil
}

func (m *mockDocumentService) Delete(_ context.Context, docID string) (bool, error) {
	m.lastDocID = docID
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	return m.found, nil
}

// withServices swaps in mock services and restores the originals when
// the test finishes.
func withServices(t *testing.T, svcs *Services) {
	t.Helper()

	oldIngest := ingestService
	oldAnswer := answerService
	oldDocument := documentService
	oldUploads := uploadsDir
	oldCleanup := cleanup

	SetServices(svcs)

	t.Cleanup(func() {
		ingestService = oldIngest
		answerService = oldAnswer
		documentService = oldDocument
		uploadsDir = oldUploads
		cleanup = oldCleanup
	})
}
