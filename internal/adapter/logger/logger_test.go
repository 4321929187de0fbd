package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerAdapter_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")

	log.Info("Bike created", map[string]interface{}{"bike_id": "42"})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "Bike created", line["message"])
	assert.Equal(t, "42", line["bike_id"])
}

func TestLoggerAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Debug("hidden", nil)
	log.Info("hidden", nil)
	assert.Empty(t, buf.String())

	log.Warn("shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel_Defaults(t *testing.T) {
	assert.Equal(t, "info", parseLevel("").String())
	assert.Equal(t, "info", parseLevel("loud").String())
	assert.Equal(t, "debug", parseLevel("debug").String())
}
