package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CLINICFLOW_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.UI.AltScreen)
	require.Equal(t, "Dr. Smith", cfg.UI.Clinician)
	require.Equal(t, "DR", cfg.UI.ClinicianInitials)
	require.Equal(t, 22, cfg.UI.SidebarWidth)
	require.Equal(t, "info", cfg.Log.Level)
	require.False(t, cfg.Log.Console)
	require.Equal(t, "clinicflow.log", filepath.Base(cfg.Log.Path))
	require.Empty(t, cfg.Keys)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[ui]
clinician = "Dr. Patel"
clinician_initials = "AP"
sidebar_width = 4

[log]
level = "debug"

[keys]
quit = ["x"]
open-command-palette = ["ctrl+p"]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("HOME", dir)
	t.Setenv("CLINICFLOW_CONFIG", path)
	t.Setenv("CLINICFLOW_UI_ALT_SCREEN", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Dr. Patel", cfg.UI.Clinician)
	require.Equal(t, "AP", cfg.UI.ClinicianInitials)
	require.Equal(t, 12, cfg.UI.SidebarWidth, "sidebar width is clamped")
	require.False(t, cfg.UI.AltScreen)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, []string{"x"}, cfg.Keys["quit"])
	require.Equal(t, []string{"ctrl+p"}, cfg.Keys["open-command-palette"])
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CLINICFLOW_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Load()
	require.Error(t, err)
}
