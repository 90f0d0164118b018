package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "kociemba", cfg.Solver.Command)
	assert.Equal(t, []string{"{facelets}"}, cfg.Solver.Args)
	assert.Equal(t, 21, cfg.Solver.Range)
	assert.Equal(t, 10.0, cfg.Solver.TimeoutSeconds)
	assert.True(t, cfg.Scramble.Apply)
	assert.False(t, cfg.Journal.Enabled)
	assert.NotEmpty(t, cfg.Journal.Path)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[solver]
command = "/opt/twophase"
args = ["-d", "{range}", "{facelets}"]
range = 19
timeout_seconds = 2.5

[scramble]
apply = false

[journal]
enabled = true
path = "/tmp/j.db"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/twophase", cfg.Solver.Command)
	assert.Equal(t, []string{"-d", "{range}", "{facelets}"}, cfg.Solver.Args)
	assert.Equal(t, 19, cfg.Solver.Range)
	assert.Equal(t, 2.5, cfg.Solver.TimeoutSeconds)
	assert.False(t, cfg.Scramble.Apply)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, "/tmp/j.db", cfg.Journal.Path)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CUBESTEP_SOLVER_COMMAND", "min2phase")
	t.Setenv("CUBESTEP_SOLVER_RANGE", "20")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "min2phase", cfg.Solver.Command)
	assert.Equal(t, 20, cfg.Solver.Range)
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[solver\ncommand="), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Config{
		Solver:   SolverConfig{Command: "solve", Args: []string{"{facelets}"}, Range: 18, TimeoutSeconds: 4},
		Scramble: ScrambleConfig{Apply: true},
		Log:      LogConfig{Dir: "/tmp/logs"},
		Journal:  JournalConfig{Enabled: true, Path: "/tmp/x.db"},
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
