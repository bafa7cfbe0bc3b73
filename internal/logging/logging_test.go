package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := New(Options{Console: &buf})
	logger.Debug("hidden")
	logger.Info("shown", zap.Int("tick", 3))
	require.NoError(t, closeFn())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), `"tick": 3`)
}

func TestVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := New(Options{Console: &buf, Verbose: true})
	logger.Debug("step")
	require.NoError(t, closeFn())

	assert.Contains(t, buf.String(), "DEBUG")
}

func TestFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "motion.log")
	logger, closeFn := New(Options{Console: &buf, File: path})
	logger.Debug("to file only")
	require.NoError(t, closeFn())

	assert.Empty(t, buf.String())
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "to file only")
	assert.Contains(t, string(b), "logging_test.go")
}
