package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedFormat", ErrUnsupportedFormat},
		{"ErrEmptyDocument", ErrEmptyDocument},
		{"ErrNoChunks", ErrNoChunks},
		{"ErrRetrievalFailed", ErrRetrievalFailed},
		{"ErrGenerationFailed", ErrGenerationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Distinct tests that the taxonomy sentinels stay distinguishable
// through errors.Is after wrapping.
func TestErrors_Distinct(t *testing.T) {
	wrapped := fmt.Errorf("embed query: %w", ErrRetrievalFailed)
	assert.True(t, errors.Is(wrapped, ErrRetrievalFailed))
	assert.False(t, errors.Is(wrapped, ErrGenerationFailed))

	wrapped = fmt.Errorf("extract %q: %w", ".exe", ErrUnsupportedFormat)
	assert.True(t, errors.Is(wrapped, ErrUnsupportedFormat))
	assert.False(t, errors.Is(wrapped, ErrEmptyDocument))
}
