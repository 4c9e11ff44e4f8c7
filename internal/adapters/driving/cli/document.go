package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docqa-cli/internal/logger"
)

var documentListJSON bool

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage ingested documents",
	Long:  `List or delete ingested documents.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ingested documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete an ingested document",
	Long:  `Removes a document's chunks from the store and deletes its saved upload file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

func init() {
	documentListCmd.Flags().BoolVar(&documentListJSON, "json", false, "output as JSON")

	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if documentListJSON {
		data, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal documents: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(docs) == 0 {
		cmd.Println("No documents ingested yet.")
		return nil
	}

	cmd.Println("Documents:")
	cmd.Println()
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].DocID)
		cmd.Printf("    File:   %s\n", docs[i].Filename)
		cmd.Printf("    Chunks: %d\n", docs[i].ChunkCount)
		cmd.Println()
	}
	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docID := args[0]

	found, err := documentService.Delete(context.Background(), docID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if !found {
		cmd.Printf("Document not found: %s\n", docID)
		return nil
	}

	removeUpload(docID)

	cmd.Printf("Deleted document %s\n", docID)
	return nil
}

// removeUpload deletes the saved {docID}.* upload file, if any.
// The chunks are already gone, so failures here only leak disk space.
func removeUpload(docID string) {
	if uploadsDir == "" {
		return
	}

	matches, err := filepath.Glob(filepath.Join(uploadsDir, docID+".*"))
	if err != nil {
		logger.Warn("Finding upload for %s: %v", docID, err)
		return
	}
	for _, match := range matches {
		if err := os.Remove(match); err != nil {
			logger.Warn("Removing upload %s: %v", match, err)
		}
	}
}
