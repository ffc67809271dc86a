package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"infinity_api/src/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerRejectsUnknownLevel(t *testing.T) {
	err := InitLogger(model.LogConfig{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestInitWithWriterEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, initWithWriter(model.LogConfig{Level: "info", Format: "json"}, &buf))

	l := With("controllers")
	l.Info().Str("env_id", "abc").Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"controllers"`)
	assert.Contains(t, out, `"env_id":"abc"`)
	assert.Contains(t, out, `"service":"infinity-api"`)
}

func TestInitWithWriterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, initWithWriter(model.LogConfig{Level: "warn"}, &buf))
	t.Cleanup(func() {
		_ = initWithWriter(model.LogConfig{Level: "info"}, &bytes.Buffer{})
	})

	Info().Msg("dropped")
	Warn().Msg("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestFileOutputRequiresPath(t *testing.T) {
	err := InitLogger(model.LogConfig{Level: "info", Output: "file"})
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "logs", "api.log")
	require.NoError(t, InitLogger(model.LogConfig{Level: "info", Output: "file", FilePath: path}))
	assert.FileExists(t, path)
}
