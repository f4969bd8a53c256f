package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 5006, cfg.Port)
	assert.Equal(t, 80, cfg.ChartWidth)
	assert.Equal(t, 12, cfg.ChartHeight)
	assert.Equal(t, "phosphor", cfg.Theme)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9000\ntheme: ocean\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "ocean", cfg.Theme)
	assert.Equal(t, 80, cfg.ChartWidth)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9000\n"), 0644))
	t.Setenv("FIELDVIZ_PORT", "7070")
	t.Setenv("FIELDVIZ_THEME", "minimal")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "minimal", cfg.Theme)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	want := &Config{Port: 8081, ChartWidth: 120, ChartHeight: 20, Theme: "ocean"}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolve(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "metrics.csv", cfg.Resolve("metrics.csv"))

	cfg.DataDir = "/var/fieldviz"
	assert.Equal(t, "/var/fieldviz/metrics.csv", cfg.Resolve("metrics.csv"))
	assert.Equal(t, "/tmp/metrics.csv", cfg.Resolve("/tmp/metrics.csv"))
}
