package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestep"
	"github.com/SeamusWaldron/cubestep/internal/storage"
)

var (
	exportAttemptID string
	exportFormat    string
	exportOutput    string
	exportLast      bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a journaled solution",
	Long: `Export the move sequence of a journaled solve attempt in text or JSON format.

Examples:
  cubestep export --last
  cubestep export --id <attempt_id> --format json
  cubestep export --id <attempt_id> --format txt -o moves.txt`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportAttemptID, "id", "", "Attempt ID to export (a unique prefix is enough)")
	exportCmd.Flags().BoolVar(&exportLast, "last", false, "Export the last attempt")
	exportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

// exportedMove is the JSON form of one solution move.
type exportedMove struct {
	MoveIndex int    `json:"move_index"`
	Face      string `json:"face"`
	Turn      int    `json:"turn"`
	Notation  string `json:"notation"`
}

// formatSolution renders moves as txt or json.
func formatSolution(moves []gocube.Move, format string) (string, error) {
	switch strings.ToLower(format) {
	case "txt":
		return gocube.FormatMoves(moves), nil

	case "json":
		out := make([]exportedMove, len(moves))
		for i, m := range moves {
			out[i] = exportedMove{
				MoveIndex: i,
				Face:      string(m.Face),
				Turn:      int(m.Turn),
				Notation:  m.Notation(),
			}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("unknown format: %s (use txt or json)", format)
	}
}

// findAttempt resolves --id (full or prefix) or --last.
func findAttempt(repo *storage.AttemptRepository) (*storage.Attempt, error) {
	if exportLast {
		a, err := repo.GetLast()
		if err != nil {
			return nil, fmt.Errorf("failed to get last attempt: %w", err)
		}
		if a == nil {
			return nil, fmt.Errorf("no attempts found")
		}
		return a, nil
	}

	if a, err := repo.Get(exportAttemptID); err != nil || a != nil {
		return a, err
	}

	recent, err := repo.List(1000)
	if err != nil {
		return nil, err
	}
	var match *storage.Attempt
	for i := range recent {
		if strings.HasPrefix(recent[i].AttemptID, exportAttemptID) {
			if match != nil {
				return nil, fmt.Errorf("attempt id %q is ambiguous", exportAttemptID)
			}
			match = &recent[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("attempt %s not found", exportAttemptID)
	}
	return match, nil
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	if exportAttemptID == "" && !exportLast {
		return fmt.Errorf("specify --id or --last")
	}

	e, err := newEnv(cmd, false)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := e.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	db, err := e.openJournal()
	if err != nil {
		return err
	}

	attempt, err := findAttempt(storage.NewAttemptRepository(db))
	if err != nil {
		return err
	}
	if attempt.Failed() {
		return fmt.Errorf("attempt %s failed: %s", attempt.AttemptID, *attempt.ErrorText)
	}

	moves, err := gocube.ParseMoves(*attempt.SolutionText)
	if err != nil {
		return err
	}

	output, err := formatSolution(moves, exportFormat)
	if err != nil {
		return err
	}

	// Write output
	if exportOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d moves to %s\n", len(moves), exportOutput)
	return nil
}
