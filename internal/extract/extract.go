// Package extract converts source documents into plain text.
//
// Each supported format has one extraction strategy, selected by a closed
// Format enum so that adding a format is a compile-time-checked change.
package extract

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
)

// Format enumerates the supported document formats.
type Format int

const (
	// FormatPDF covers .pdf files.
	FormatPDF Format = iota

	// FormatDOCX covers .docx files.
	FormatDOCX

	// FormatText covers .txt files, read verbatim as UTF-8.
	FormatText

	// FormatPresentation covers .ppt and .pptx files, which share one
	// extraction strategy.
	FormatPresentation
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatDOCX:
		return "docx"
	case FormatText:
		return "text"
	case FormatPresentation:
		return "presentation"
	default:
		return "unknown"
	}
}

// ParseFormat maps a file extension (with leading dot, case-insensitive)
// to its extraction format. Unknown extensions fail with
// domain.ErrUnsupportedFormat before any work happens on the file.
func ParseFormat(ext string) (Format, error) {
	switch strings.ToLower(ext) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	case ".txt":
		return FormatText, nil
	case ".ppt", ".pptx":
		return FormatPresentation, nil
	default:
		return 0, fmt.Errorf("extension %q: %w", ext, domain.ErrUnsupportedFormat)
	}
}

// Text extracts the plain text of the file at path using the strategy for
// the given format. No file handles stay open after it returns.
func Text(path string, format Format) (string, error) {
	switch format {
	case FormatPDF:
		return pdfText(path)
	case FormatDOCX:
		return docxText(path)
	case FormatText:
		return plainText(path)
	case FormatPresentation:
		return presentationText(path)
	default:
		return "", fmt.Errorf("format %v: %w", format, domain.ErrUnsupportedFormat)
	}
}
