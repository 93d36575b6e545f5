package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruminaider/quotesync/internal/config"
	"github.com/ruminaider/quotesync/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quotesync.log")
	logger, closeFn, err := logging.New(config.LogConfig{Level: "info", File: path}, nil)
	require.NoError(t, err)

	logger.Info("pull complete", zap.Int("added", 2))
	logger.Debug("hidden at info level")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "pull complete", entry["msg"])
	assert.Equal(t, float64(2), entry["added"])
}

func TestNew_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := logging.New(config.LogConfig{Level: "error"}, &buf)
	require.NoError(t, err)

	logger.Debug("debug line")
	require.NoError(t, closeFn())
	assert.Contains(t, buf.String(), "debug line")
}

func TestNew_NoSinksIsNop(t *testing.T) {
	logger, closeFn, err := logging.New(config.LogConfig{Level: "info"}, nil)
	require.NoError(t, err)
	logger.Info("nowhere")
	assert.NoError(t, closeFn())
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := logging.New(config.LogConfig{Level: "chatty"}, nil)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := logging.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, lvl)
}

func TestNewRotatingWriter_Defaults(t *testing.T) {
	w, err := logging.NewRotatingWriter(config.LogConfig{File: filepath.Join(t.TempDir(), "q.log")})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLogMaxSizeMB, w.MaxSize)
	assert.Equal(t, config.DefaultLogMaxFiles, w.MaxBackups)

	_, err = logging.NewRotatingWriter(config.LogConfig{})
	assert.Error(t, err)
}
