// Package config loads cubestep settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Solver   SolverConfig
	Scramble ScrambleConfig
	Log      LogConfig
	Journal  JournalConfig
}

// SolverConfig describes the external solver program.
type SolverConfig struct {
	Command        string
	Args           []string
	Range          int
	TimeoutSeconds float64 `mapstructure:"timeout_seconds"`
}

// ScrambleConfig controls scramble materialization.
type ScrambleConfig struct {
	Apply bool
}

// LogConfig holds the session event log directory. Empty disables logging.
type LogConfig struct {
	Dir string
}

// JournalConfig holds sqlite journal settings.
type JournalConfig struct {
	Enabled bool
	Path    string
}

// DataDir returns ~/.cubestep.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cubestep")
}

// Path returns the config file location: $CUBESTEP_CONFIG or
// ~/.config/cubestep/config.toml.
func Path() string {
	if p := os.Getenv("CUBESTEP_CONFIG"); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cubestep", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("solver.command", "kociemba")
	v.SetDefault("solver.args", []string{"{facelets}"})
	v.SetDefault("solver.range", 21)
	v.SetDefault("solver.timeout_seconds", 10.0)
	v.SetDefault("scramble.apply", true)
	v.SetDefault("log.dir", filepath.Join(DataDir(), "logs"))
	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", filepath.Join(DataDir(), "journal.db"))
}

// Load reads configuration from path (or the default location when path is
// empty) and env. Env var overrides use prefix CUBESTEP_, e.g.
// CUBESTEP_SOLVER_COMMAND. A missing config file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = Path()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("CUBESTEP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Solver.TimeoutSeconds <= 0 {
		c.Solver.TimeoutSeconds = 10
	}
	return c, nil
}

// Save writes cfg as TOML to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("solver.command", cfg.Solver.Command)
	v.Set("solver.args", cfg.Solver.Args)
	v.Set("solver.range", cfg.Solver.Range)
	v.Set("solver.timeout_seconds", cfg.Solver.TimeoutSeconds)
	v.Set("scramble.apply", cfg.Scramble.Apply)
	v.Set("log.dir", cfg.Log.Dir)
	v.Set("journal.enabled", cfg.Journal.Enabled)
	v.Set("journal.path", cfg.Journal.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
