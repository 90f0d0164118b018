package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestep/internal/storage"
)

var (
	historyLimit int
	historyPrune int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled solve attempts and scrambles",
	Long: `Display recent solve attempts and scrambles from the journal.
The journal is only written when journal.enabled is set.

Use --prune N to keep only the newest N entries of each kind.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of entries to display")
	historyCmd.Flags().IntVar(&historyPrune, "prune", -1, "Delete all but the newest N entries")
}

func runHistory(cmd *cobra.Command, args []string) (err error) {
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

	out := cmd.OutOrStdout()
	if historyPrune >= 0 {
		if err := db.Prune(historyPrune); err != nil {
			return err
		}
		fmt.Fprintf(out, "Pruned journal to the newest %d entries.\n\n", historyPrune)
	}

	attempts, err := storage.NewAttemptRepository(db).List(historyLimit)
	if err != nil {
		return err
	}
	scrambles, err := storage.NewScrambleRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, titleStyle.Render("Solve attempts"))
	if len(attempts) == 0 {
		fmt.Fprintln(out, statusStyle.Render("  none"))
	}
	for _, a := range attempts {
		fmt.Fprintf(out, "  %s  %s  %s\n", a.AttemptID[:8], a.CreatedAt.Local().Format(time.DateTime), formatAttempt(a))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("Scrambles"))
	if len(scrambles) == 0 {
		fmt.Fprintln(out, statusStyle.Render("  none"))
	}
	for _, s := range scrambles {
		applied := ""
		if s.Applied {
			applied = statusStyle.Render(" (applied)")
		}
		fmt.Fprintf(out, "  %s  %s  %s%s\n", s.ScrambleID[:8], s.CreatedAt.Local().Format(time.DateTime), s.MovesText, applied)
	}
	return nil
}

func formatAttempt(a storage.Attempt) string {
	if a.Failed() {
		return errorStyle.Render("failed: " + *a.ErrorText)
	}
	if a.MoveCount == nil || *a.MoveCount == 0 {
		return moveStyle.Render("already solved")
	}
	return fmt.Sprintf("%s %s", moveStyle.Render(*a.SolutionText), statusStyle.Render(fmt.Sprintf("(%d moves)", *a.MoveCount)))
}
