package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestep"
	"github.com/SeamusWaldron/cubestep/internal/config"
	"github.com/SeamusWaldron/cubestep/internal/eventlog"
	"github.com/SeamusWaldron/cubestep/internal/solver"
	"github.com/SeamusWaldron/cubestep/internal/storage"
)

// env is what every command needs: configuration, the event log and the
// optional journal.
type env struct {
	cfg      config.Config
	logger   *eventlog.Logger
	db       *storage.DB
	recorder *storage.Recorder
}

// loadConfig reads the config file and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if noApply {
		cfg.Scramble.Apply = false
	}
	if cmd.Flags().Changed("log-dir") {
		cfg.Log.Dir = logDir
	}
	return cfg, nil
}

// newEnv loads configuration and starts logging. withLog controls whether a
// session log file is created; read-only commands pass false.
func newEnv(cmd *cobra.Command, withLog bool) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg}

	if withLog && cfg.Log.Dir != "" {
		logger, err := eventlog.New(cfg.Log.Dir)
		if err != nil {
			// Logging is optional
			fmt.Fprintln(cmd.ErrOrStderr(), statusStyle.Render(fmt.Sprintf("Warning: could not start logging: %v", err)))
		} else {
			e.logger = logger
		}
	}

	if cfg.Journal.Enabled {
		db, err := storage.Open(cfg.Journal.Path)
		if err != nil {
			e.Close()
			return nil, err
		}
		e.db = db
		e.recorder = storage.NewRecorder(db, solveOptions(cfg))
	}

	return e, nil
}

func solveOptions(cfg config.Config) gocube.SolveOptions {
	return gocube.SolveOptions{
		Range:          cfg.Solver.Range,
		TimeoutSeconds: cfg.Solver.TimeoutSeconds,
	}
}

// solver returns the configured solver, or nil when no command is set.
func (e *env) solver() gocube.Solver {
	if e.cfg.Solver.Command == "" {
		return nil
	}
	return solver.NewCommand(e.cfg.Solver.Command, e.cfg.Solver.Args...)
}

// session builds a Session wired to the log, the journal and the configured
// solver. Extra options are applied last.
func (e *env) session(opts ...gocube.Option) *gocube.Session {
	base := []gocube.Option{
		gocube.WithSolveOptions(solveOptions(e.cfg)),
		gocube.WithObserver(e.logger.Observe),
	}
	if e.cfg.Scramble.Apply {
		base = append(base, gocube.WithMoveApplier(gocube.FaceletApplier{}))
	}
	if e.recorder != nil {
		base = append(base, gocube.WithObserver(e.recorder.Observe))
	}
	return gocube.NewSession(e.solver(), append(base, opts...)...)
}

// Close flushes the log and closes the journal, reporting deferred write
// errors.
func (e *env) Close() error {
	var firstErr error
	if err := e.logger.Err(); err != nil {
		firstErr = fmt.Errorf("event log: %w", err)
	}
	if err := e.logger.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if e.recorder != nil {
		if err := e.recorder.Err(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("journal: %w", err)
		}
	}
	if e.db != nil {
		if err := e.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// openJournal opens the journal for read-only commands.
func (e *env) openJournal() (*storage.DB, error) {
	if e.db != nil {
		return e.db, nil
	}
	return nil, fmt.Errorf("journal is disabled; set journal.enabled = true in %s", config.Path())
}
