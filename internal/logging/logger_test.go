package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/clinicflow/internal/config"
)

func TestForTagsServiceAndSession(t *testing.T) {
	var buf bytes.Buffer
	log := For(&buf, zerolog.DebugLevel)
	log.Debug().Str("panel", "triage").Msg("panel selected")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "clinicflow", entry["service"])
	require.Equal(t, "triage", entry["panel"])
	_, err := uuid.Parse(entry["session"].(string))
	require.NoError(t, err)
}

func TestForHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	log := For(&buf, zerolog.WarnLevel)
	log.Info().Msg("hidden")
	require.Zero(t, buf.Len())
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "clinicflow.log")
	log, closer, err := New(config.LogConfig{Path: path, Level: "bogus"})
	require.NoError(t, err)
	log.Info().Msg("started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"message":"started"`)
}
