package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestep"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the six sticker colors",
	Long:  `Display the sticker colors with their face letter, the short code used in facelet strings.`,
	Args:  cobra.NoArgs,
	RunE:  runPalette,
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}

func runPalette(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Palette"))
	fmt.Fprintln(out)
	for i, c := range gocube.Palette() {
		fmt.Fprintf(out, "%d  %s  %-7s %c  %s\n",
			i+1, stickerStyle(c.ShortCode()).Render("   "), c.Name, c.ShortCode(), statusStyle.Render(c.Hex))
	}
	return nil
}
