// Package cli implements the command-line interface for cubestep.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	noApply    bool
	logDir     string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubestep",
	Short: "Cube facelet editor, scrambler and solution stepper",
	Long: `cubestep - Paint a Rubik's Cube sticker by sticker, generate scrambles,
ask an external two-phase solver for a solution and step through it move by move.

The solver is an external program (kociemba by default). Configure it in
~/.config/cubestep/config.toml or with CUBESTEP_SOLVER_COMMAND.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.config/cubestep/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&noApply, "no-apply", false, "Print scrambles without applying them to the board")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Session event log directory (default: ~/.cubestep/logs)")
}
