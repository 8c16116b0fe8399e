package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_EstampaServicio(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(Config{Level: "info", Service: "atelier-api"}, &buf)

	l.Info().Str("evento", "arranque").Msg("listo")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "atelier-api", line["service"])
	assert.Equal(t, "arranque", line["evento"])
	assert.Equal(t, "listo", line["message"])
}

func TestNewWithWriter_SinServicio(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(Config{Level: "info"}, &buf)

	l.Info().Msg("listo")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	_, ok := line["service"]
	assert.False(t, ok)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("cualquier-cosa"))
}
