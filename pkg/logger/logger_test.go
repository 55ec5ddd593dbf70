package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONConNivel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Out: &buf})

	l.Info().Msg("descartado")
	assert.Zero(t, buf.Len(), "info por debajo de warn no se escribe")

	l.Component("sales").Warn().Str("unit_id", "u1").Msg("unidad no disponible")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "sales", line["component"])
	assert.Equal(t, "u1", line["unit_id"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Error().Msg("nada") })
}
