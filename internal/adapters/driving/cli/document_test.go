package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
)

func TestDocumentListCmd(t *testing.T) {
	service := &mockDocumentService{docs: []domain.DocumentInfo{
		{DocID: "doc-a", Filename: "report.pdf", ChunkCount: 12},
		{DocID: "doc-b", Filename: "notes.txt", ChunkCount: 3},
	}}
	withServices(t, &Services{Document: service})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"document", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "doc-a")
	assert.Contains(t, buf.String(), "report.pdf")
	assert.Contains(t, buf.String(), "Chunks: 12")
	assert.Contains(t, buf.String(), "Total: 2 documents")
}

func TestDocumentListCmd_Empty(t *testing.T) {
	withServices(t, &Services{Document: &mockDocumentService{}})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"document", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No documents ingested yet.")
}

func TestDocumentListCmd_JSONOutput(t *testing.T) {
	service := &mockDocumentService{docs: []domain.DocumentInfo{
		{DocID: "doc-a", Filename: "report.pdf", ChunkCount: 12},
	}}
	withServices(t, &Services{Document: service})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"document", "list", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		documentListJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)

	var docs []domain.DocumentInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "doc-a", docs[0].DocID)
	assert.Equal(t, 12, docs[0].ChunkCount)
}

func TestDocumentListCmd_ServiceError(t *testing.T) {
	service := &mockDocumentService{listErr: errors.New("database locked")}
	withServices(t, &Services{Document: service})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"document", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list documents")
}

func TestDocumentDeleteCmd_RemovesUploadFile(t *testing.T) {
	service := &mockDocumentService{found: true}
	uploads := t.TempDir()
	withServices(t, &Services{Document: service, UploadsDir: uploads})

	saved := filepath.Join(uploads, "doc-a.pdf")
	require.NoError(t, os.WriteFile(saved, []byte("pdf bytes"), 0600))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"document", "delete", "doc-a"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "doc-a", service.lastDocID)
	assert.Contains(t, buf.String(), "Deleted document doc-a")

	_, statErr := os.Stat(saved)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDocumentDeleteCmd_NotFound(t *testing.T) {
	service := &mockDocumentService{found: false}
	withServices(t, &Services{Document: service, UploadsDir: t.TempDir()})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"document", "delete", "no-such-doc"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Document not found: no-such-doc")
}

func TestDocumentDeleteCmd_ServiceError(t *testing.T) {
	service := &mockDocumentService{deleteErr: errors.New("disk I/O error")}
	withServices(t, &Services{Document: service})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"document", "delete", "doc-a"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete document")
}

func TestDocumentDeleteCmd_ServiceNotConfigured(t *testing.T) {
	withServices(t, &Services{})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"document", "delete", "doc-a"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "document service not configured")
}
