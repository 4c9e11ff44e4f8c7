// Package cli implements the cobra command surface.
// Commands talk to the core through driving ports; wiring happens in
// cmd/docqa once the persistent flags are parsed.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docqa-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	verbose bool
	dataDir string
)

// Services the commands depend on, injected before Execute.
var (
	ingestService   driving.IngestService
	answerService   driving.AnswerService
	documentService driving.DocumentService

	// uploadsDir is where ingested source files are kept.
	uploadsDir string
)

// Services bundles everything the commands need.
type Services struct {
	Ingest   driving.IngestService
	Answer   driving.AnswerService
	Document driving.DocumentService

	// UploadsDir is the directory holding saved copies of ingested files.
	UploadsDir string

	// Cleanup releases resources (store handles, HTTP clients) after the
	// command finishes. May be nil.
	Cleanup func()
}

// Initializer builds the services once persistent flags are parsed, so
// --data-dir can influence where everything lives.
type Initializer func(dataDir string, verbose bool) (*Services, error)

var (
	initServices Initializer
	cleanup      func()
)

var rootCmd = &cobra.Command{
	Use:   "docqa",
	Short: "Ask questions about your documents",
	Long: `docqa ingests PDF, DOCX, TXT and PPTX files, indexes their content
as embeddings, and answers questions grounded in the indexed text.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)

		// version, help and completion never need the pipeline.
		switch cmd.Name() {
		case "version", "help", "completion":
			return nil
		}

		if initServices == nil || ingestService != nil {
			return nil
		}
		svcs, err := initServices(dataDir, verbose)
		if err != nil {
			return err
		}
		SetServices(svcs)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.docqa)")
}

// SetInitializer registers the wiring function run after flag parsing.
func SetInitializer(fn Initializer) {
	initServices = fn
}

// SetServices injects the driving services directly. Used by the
// initializer and by tests.
func SetServices(svcs *Services) {
	ingestService = svcs.Ingest
	answerService = svcs.Answer
	documentService = svcs.Document
	uploadsDir = svcs.UploadsDir
	cleanup = svcs.Cleanup
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command and releases resources afterwards.
func Execute() error {
	defer func() {
		if cleanup != nil {
			cleanup()
		}
	}()
	return rootCmd.Execute()
}
