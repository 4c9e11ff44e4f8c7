package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		c := New()
		if c.size != DefaultSize {
			t.Errorf("expected size %d, got %d", DefaultSize, c.size)
		}
		if c.overlap != DefaultOverlap {
			t.Errorf("expected overlap %d, got %d", DefaultOverlap, c.overlap)
		}
	})

	t.Run("custom size and overlap", func(t *testing.T) {
		c := New(WithSize(100), WithOverlap(20))
		if c.size != 100 {
			t.Errorf("expected size 100, got %d", c.size)
		}
		if c.overlap != 20 {
			t.Errorf("expected overlap 20, got %d", c.overlap)
		}
	})

	t.Run("overlap exceeds size", func(t *testing.T) {
		c := New(WithSize(100), WithOverlap(150))
		if c.overlap >= c.size {
			t.Error("overlap should be reduced when it exceeds chunk size")
		}
	})

	t.Run("zero values ignored", func(t *testing.T) {
		c := New(WithSize(0), WithOverlap(-1))
		if c.size != DefaultSize {
			t.Errorf("expected default size, got %d", c.size)
		}
		if c.overlap != DefaultOverlap {
			t.Errorf("expected default overlap, got %d", c.overlap)
		}
	})
}

func TestChunker_Split_Empty(t *testing.T) {
	c := New()

	for _, input := range []string{"", "   ", "\n\t\n  "} {
		if got := c.Split(input); len(got) != 0 {
			t.Errorf("Split(%q) = %d chunks, want 0", input, len(got))
		}
	}
}

func TestChunker_Split_SingleChunk(t *testing.T) {
	c := New(WithSize(100), WithOverlap(20))
	text := "This fits comfortably in one chunk."

	chunks := c.Split(text)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("expected chunk to equal input, got %q", chunks[0])
	}
}

func TestChunker_Split_Overlap(t *testing.T) {
	c := New(WithSize(100), WithOverlap(20))
	text := strings.Repeat("x", 250)

	chunks := c.Split(text)
	if len(chunks) != 4 {
		// starts at 0, 80, 160, 240
		t.Fatalf("expected 4 chunks, got %d", len(chunks))
	}

	// Every chunk but the last is exactly size characters; the tail of one
	// chunk reappears at the head of the next.
	for i := 0; i < len(chunks)-1; i++ {
		if len(chunks[i]) != 100 {
			t.Errorf("chunk %d: expected 100 chars, got %d", i, len(chunks[i]))
		}
		tail := chunks[i][len(chunks[i])-20:]
		head := chunks[i+1][:20]
		if tail != head {
			t.Errorf("chunk %d tail does not overlap chunk %d head", i, i+1)
		}
	}

	if len(chunks[3]) != 10 {
		t.Errorf("final chunk: expected 10 chars, got %d", len(chunks[3]))
	}
}

func TestChunker_Split_ChunkCount(t *testing.T) {
	// With no whitespace trimming in play the chunk count follows
	// ceil(max(L-O, 0) / (S-O)).
	tests := []struct {
		length, size, overlap, want int
	}{
		{0, 500, 50, 0},
		{1, 500, 50, 1},
		{500, 500, 50, 2},  // second slice is the 50-char overlap tail
		{450, 500, 50, 1},
		{451, 500, 50, 2},
		{9000, 500, 50, 20},
	}

	for _, tt := range tests {
		c := New(WithSize(tt.size), WithOverlap(tt.overlap))
		got := len(c.Split(strings.Repeat("a", tt.length)))
		if got != tt.want {
			t.Errorf("length %d size %d overlap %d: got %d chunks, want %d",
				tt.length, tt.size, tt.overlap, got, tt.want)
		}
	}
}

func TestChunker_Split_TrimsWhitespace(t *testing.T) {
	c := New(WithSize(10), WithOverlap(0))

	// Second window is all whitespace and must be dropped.
	chunks := c.Split("abcdefghij          k")
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %q", len(chunks), chunks)
	}
	if chunks[0] != "abcdefghij" {
		t.Errorf("unexpected first chunk %q", chunks[0])
	}
	if chunks[1] != "k" {
		t.Errorf("unexpected final chunk %q", chunks[1])
	}
}

func TestChunker_Split_Multibyte(t *testing.T) {
	t.Run("sizes count characters not bytes", func(t *testing.T) {
		c := New(WithSize(500), WithOverlap(50))

		// 301 characters but over 600 bytes. One chunk either way the
		// bytes fall.
		text := "a" + strings.Repeat("ü", 300)
		chunks := c.Split(text)
		if len(chunks) != 1 {
			t.Fatalf("expected 1 chunk for 301 chars, got %d", len(chunks))
		}
		if chunks[0] != text {
			t.Errorf("expected chunk to equal input, got %q", chunks[0])
		}
	})

	t.Run("windows never split a rune", func(t *testing.T) {
		c := New(WithSize(100), WithOverlap(20))
		text := strings.Repeat("ü", 250)

		chunks := c.Split(text)
		if len(chunks) != 4 {
			t.Fatalf("expected 4 chunks, got %d", len(chunks))
		}
		for i, chunk := range chunks {
			if !utf8.ValidString(chunk) {
				t.Errorf("chunk %d is not valid UTF-8: %q", i, chunk)
			}
		}
		for i := 0; i < 3; i++ {
			if n := utf8.RuneCountInString(chunks[i]); n != 100 {
				t.Errorf("chunk %d: expected 100 chars, got %d", i, n)
			}
		}
		if n := utf8.RuneCountInString(chunks[3]); n != 10 {
			t.Errorf("final chunk: expected 10 chars, got %d", n)
		}
	})
}

func TestChunker_Split_Deterministic(t *testing.T) {
	c := New(WithSize(500), WithOverlap(50))
	text := strings.Repeat("Alpha beta gamma. ", 50)

	first := c.Split(text)
	second := c.Split(text)

	if len(first) < 2 {
		t.Fatalf("expected multiple chunks for %d chars, got %d", len(text), len(first))
	}
	if len(first) != len(second) {
		t.Fatalf("same input produced different chunk counts: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}
