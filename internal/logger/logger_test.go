package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "text"}, &buf)

	log.Info("server started", "port", "8080")

	out := buf.String()
	assert.Contains(t, out, "server started")
	assert.Contains(t, out, "port=8080")
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json"}, &buf)

	log.Info("server started", "port", "8080")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "server started", entry["msg"])
	assert.Equal(t, "8080", entry["port"])
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Format: "text"}, &buf)

	log.Info("too quiet")
	log.Warn("loud enough")

	out := buf.String()
	assert.NotContains(t, out, "too quiet")
	assert.Contains(t, out, "loud enough")
}

func TestNew_UnknownValuesFallBack(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "shout", Format: "xml"}, &buf)

	log.Info("still works")
	log.Debug("filtered at default info level")

	out := buf.String()
	assert.Contains(t, out, "still works")
	assert.NotContains(t, out, "filtered at default info level")
}
