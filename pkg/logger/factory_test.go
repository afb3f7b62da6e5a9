package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundlab/lostfound/pkg/environment"
	"github.com/foundlab/lostfound/pkg/logger"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))
	log.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}

func TestNew_DefaultLevelFiltersDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))
	log.Debug("invisible")
	assert.Empty(t, buf.String())
}

func TestNew_DevelopmentPreset(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithDevelopment("lostfound"), logger.WithOutput(&buf))
	log.Debug("visible")

	out := buf.String()
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "service=lostfound")
	assert.Contains(t, out, "env=development")
	// Text format, not JSON.
	assert.False(t, strings.HasPrefix(out, "{"))
}

func TestNew_ProductionPreset(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithProduction("lostfound"), logger.WithOutput(&buf))
	log.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "lostfound", record["service"])
	assert.Equal(t, "production", record["env"])
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithEnvironment(environment.Parse("prod"), "lostfound"),
		logger.WithOutput(&buf),
	)
	log.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "production", record["env"])
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "error", logger.Error(assert.AnError).Key)
	assert.Equal(t, "item_id", logger.ItemID("abc").Key)
	assert.Equal(t, "recipients", logger.Recipients(3).Key)
	assert.Equal(t, "component", logger.Component("dispatcher").Key)
}
