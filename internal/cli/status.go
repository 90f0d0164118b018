package cli

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestep/internal/config"
	"github.com/SeamusWaldron/cubestep/internal/eventlog"
	"github.com/SeamusWaldron/cubestep/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration, solver and journal status",
	Long:  `Display the effective configuration, whether the solver program can be found, the event log directory and journal statistics.`,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) (err error) {
	e, err := newEnv(cmd, false)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := e.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	cfg := e.cfg
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, titleStyle.Render("cubestep status"))
	fmt.Fprintln(out)

	path := configPath
	if path == "" {
		path = config.Path()
	}
	fmt.Fprintf(out, "Config: %s\n", path)
	fmt.Fprintln(out)

	// Solver
	switch {
	case cfg.Solver.Command == "":
		fmt.Fprintln(out, errorStyle.Render("Solver: not configured"))
	default:
		resolved, lookErr := exec.LookPath(cfg.Solver.Command)
		if lookErr != nil {
			fmt.Fprintf(out, "Solver: %s %s\n", cfg.Solver.Command, errorStyle.Render("(not found)"))
		} else {
			fmt.Fprintf(out, "Solver: %s\n", resolved)
		}
		fmt.Fprintf(out, "  Args: %v\n", cfg.Solver.Args)
	}
	fmt.Fprintf(out, "  Range: %d  Timeout: %gs\n", cfg.Solver.Range, cfg.Solver.TimeoutSeconds)
	fmt.Fprintf(out, "Scramble apply: %v\n", cfg.Scramble.Apply)
	fmt.Fprintln(out)

	// Event log
	if cfg.Log.Dir == "" {
		fmt.Fprintln(out, "Event log: disabled")
	} else {
		logs, listErr := eventlog.List(cfg.Log.Dir)
		if listErr != nil {
			fmt.Fprintf(out, "Event log: %s %s\n", cfg.Log.Dir, errorStyle.Render(fmt.Sprintf("(unreadable: %v)", listErr)))
		} else {
			fmt.Fprintf(out, "Event log: %s (%d files)\n", cfg.Log.Dir, len(logs))
		}
	}

	// Journal
	if e.db == nil {
		fmt.Fprintln(out, "Journal: disabled")
		return nil
	}
	fmt.Fprintf(out, "Journal: %s\n", e.db.Path())
	attempts := storage.NewAttemptRepository(e.db)
	count, err := attempts.Count()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  Attempts: %d\n", count)
	last, err := attempts.GetLast()
	if err != nil {
		return err
	}
	if last != nil {
		fmt.Fprintf(out, "  Last attempt: %s %s\n", last.CreatedAt.Local().Format("2006-01-02 15:04:05"), formatAttempt(*last))
	}
	return nil
}
