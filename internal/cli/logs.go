package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestep/internal/eventlog"
)

var logsCmd = &cobra.Command{
	Use:   "logs [log-file]",
	Short: "List or show session event logs",
	Long: `List the session event logs, or print the events of one log.

Usage:
  cubestep logs                 # List available logs
  cubestep logs <log-file>      # Show events of one log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Log.Dir == "" {
		return fmt.Errorf("event logging is disabled (log.dir is empty)")
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		files, err := eventlog.List(cfg.Log.Dir)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Fprintf(out, "No logs in %s\n", cfg.Log.Dir)
			return nil
		}
		fmt.Fprintln(out, titleStyle.Render("Session logs"))
		for _, f := range files {
			fmt.Fprintf(out, "  %s\n", filepath.Base(f))
		}
		return nil
	}

	logPath := args[0]
	// If not an absolute path, look in log directory
	if !filepath.IsAbs(logPath) {
		logPath = filepath.Join(cfg.Log.Dir, logPath)
	}

	log, err := eventlog.Load(logPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Log: %s\n", logPath)
	fmt.Fprintf(out, "Created: %s\n", log.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(out, "Events: %d\n\n", len(log.Entries))
	for _, en := range log.Entries {
		fmt.Fprintf(out, "%8.1fs  %-12s %s\n", float64(en.ElapsedMs)/1000, en.EventType, describeEntry(en))
	}
	return nil
}

func describeEntry(en eventlog.Entry) string {
	switch {
	case en.Error != "":
		return errorStyle.Render(en.Error)
	case en.Index != nil:
		return fmt.Sprintf("cell %d = %s", *en.Index, en.Code)
	case en.Cursor != nil:
		return fmt.Sprintf("cursor %d", *en.Cursor)
	case en.Moves != "":
		return moveStyle.Render(en.Moves)
	default:
		return statusStyle.Render(en.Facelets)
	}
}
