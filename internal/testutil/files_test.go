package testutil

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteExpressions(t *testing.T) {
	dir := t.TempDir()
	path := WriteExpressions(t, dir, filepath.Join("nested", "dates.tl"), "tomorrow", "next week")

	assert.Equal(t, filepath.Join(dir, "nested", "dates.tl"), path)
	assert.Equal(t, "tomorrow\nnext week\n", ReadFile(t, path))
}

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger(t)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
	logger.Debug("written through t.Log", "key", "value")
}
