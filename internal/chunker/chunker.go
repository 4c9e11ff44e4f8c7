// Package chunker provides fixed-size overlapping text chunking.
package chunker

import "strings"

// DefaultSize is the default number of characters per chunk.
const DefaultSize = 500

// DefaultOverlap is the default number of overlapping characters.
const DefaultOverlap = 50

// Chunker splits text into fixed-size windows with overlap between
// consecutive windows. Split is a pure function of its input and the
// configured sizes.
type Chunker struct {
	size    int
	overlap int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithSize sets the chunk size in characters.
func WithSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.size = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a new chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		size:    DefaultSize,
		overlap: DefaultOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Overlap must stay below the chunk size or the window never advances
	if c.overlap >= c.size {
		c.overlap = c.size / 4
	}

	return c
}

// Size returns the configured chunk size.
func (c *Chunker) Size() int { return c.size }

// Overlap returns the configured overlap.
func (c *Chunker) Overlap() int { return c.overlap }

// Split cuts text into overlapping windows of at most Size characters,
// starting every Size-Overlap characters. Sizes count characters, not
// bytes, so multibyte text chunks the same as ASCII and windows never
// cut a rune apart. Each window is trimmed of surrounding whitespace;
// windows that trim to nothing are dropped. Empty or all-whitespace
// input yields no chunks.
func (c *Chunker) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	runes := []rune(text)
	step := c.size - c.overlap
	chunks := make([]string, 0, len(runes)/step+1)

	for start := 0; start < len(runes); start += step {
		end := start + c.size
		if end > len(runes) {
			end = len(runes)
		}

		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}

	return chunks
}
