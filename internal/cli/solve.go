package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var solveStep bool

var solveCmd = &cobra.Command{
	Use:   "solve <facelets>",
	Short: "Solve a cube given as a facelet string",
	Long: `Ask the configured solver for a solution of a 54-character facelet string
(faces U R F D L B, each row by row) and print the moves.

Use --step to open the stepper on the result.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&solveStep, "step", false, "Step through the solution interactively")
}

func runSolve(cmd *cobra.Command, args []string) (err error) {
	e, err := newEnv(cmd, true)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := e.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	session := e.session()
	if err := session.Load(strings.TrimSpace(args[0])); err != nil {
		return err
	}

	if err := session.Solve(cmd.Context()); err != nil {
		return err
	}

	if solveStep {
		model := newEditModel(cmd.Context(), session, e.solver())
		model.status = "Solution loaded - n/p to step"
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	}

	out := cmd.OutOrStdout()
	moves := session.Stepper().Moves()
	if len(moves) == 0 {
		fmt.Fprintln(out, "Already solved.")
		return nil
	}
	fmt.Fprintln(out, renderMoves(moves, -1))
	fmt.Fprintf(out, "%s\n", statusStyle.Render(fmt.Sprintf("%d moves", len(moves))))
	return nil
}
