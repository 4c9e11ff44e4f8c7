package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docqa-cli/internal/extract"
	"github.com/custodia-labs/docqa-cli/internal/logger"
)

var ingestJSON bool

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Ingest a document for question answering",
	Long: `Extracts text from the file, splits it into chunks, embeds each chunk
and stores the vectors. Supported formats: pdf, docx, txt, ppt, pptx.

The file is copied into the data directory, so the original can be moved
or deleted afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	path := args[0]
	filename := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(filename))

	// Reject unsupported extensions before touching the data directory.
	if _, err := extract.ParseFormat(ext); err != nil {
		return err
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	docID := uuid.NewString()
	saved, err := saveUpload(path, docID, ext)
	if err != nil {
		return fmt.Errorf("save upload: %w", err)
	}

	result, err := ingestService.Ingest(context.Background(), saved, docID, filename)
	if err != nil {
		// Failed ingests leave no file behind.
		if rmErr := os.Remove(saved); rmErr != nil {
			logger.Warn("Removing failed upload %s: %v", saved, rmErr)
		}
		return fmt.Errorf("ingest failed: %w", err)
	}

	if ingestJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Ingested %s\n\n", result.Filename)
	cmd.Printf("  Document ID: %s\n", result.DocID)
	cmd.Printf("  Chunks:      %d\n", result.TotalChunks)
	cmd.Printf("  Characters:  %d\n", result.TextLength)
	return nil
}

// saveUpload copies the source file into the uploads directory as
// {docID}{ext} and returns the saved path.
func saveUpload(path, docID, ext string) (string, error) {
	if err := os.MkdirAll(uploadsDir, 0700); err != nil {
		return "", err
	}

	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	saved := filepath.Join(uploadsDir, docID+ext)
	dst, err := os.Create(saved)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(saved)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(saved)
		return "", err
	}

	return saved, nil
}
