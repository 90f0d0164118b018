package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestep"
)

var scrambleSeed uint64

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a 20-move scramble with no two consecutive moves on the same face.

When scramble.apply is on (the default) the scramble is applied to a solved
cube and the resulting facelet string is printed as well. Use --no-apply to
print the moves only.`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Seed for a reproducible scramble (0 = random)")
}

func runScramble(cmd *cobra.Command, args []string) (err error) {
	e, err := newEnv(cmd, true)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := e.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var opts []gocube.Option
	if scrambleSeed != 0 {
		opts = append(opts, gocube.WithRandSource(rand.NewPCG(scrambleSeed, scrambleSeed)))
	}
	session := e.session(opts...)

	res, err := session.Scramble()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, moveStyle.Render(res.Text))
	if res.Applied {
		fmt.Fprintln(out)
		fmt.Fprintln(out, session.Facelets())
		fmt.Fprintln(out)
		fmt.Fprint(out, renderBoard(session.Facelets(), -1))
	}
	return nil
}
