package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRange(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		offset    int
		wantStart int
		wantEnd   int
	}{
		{"word at start", "soon ago", 0, 0, 4},
		{"word after indent", "  3 days soon", 9, 9, 13},
		{"inside a word", "3 parsecs ago", 5, 2, 9},
		{"illegal rune", "3 days § ago", 7, 7, 9},
		{"end of input", "next", 4, 4, 4},
		{"past the line", "next", 10, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tokenRange(tt.text, tt.offset)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
