package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubestep"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stepStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	currentMoveStyle = lipgloss.NewStyle().
				Bold(true).
				Reverse(true).
				Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	unknownSticker = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("238"))
)

// The net is 9 rows by 12 columns of cells:
//
//	      U
//	L  F  R  B
//	      D
const (
	netRows = 9
	netCols = 12
)

// netIndex returns the facelet index drawn at a net cell, or -1 for the
// blank corners of the cross.
func netIndex(row, col int) int {
	if row < 0 || row >= netRows || col < 0 || col >= netCols {
		return -1
	}
	switch {
	case row < 3:
		if col < 3 || col > 5 {
			return -1
		}
		return gocube.FaceletIndex(gocube.FaceU, row*3+col-3)
	case row < 6:
		faces := [4]gocube.Face{gocube.FaceL, gocube.FaceF, gocube.FaceR, gocube.FaceB}
		return gocube.FaceletIndex(faces[col/3], (row-3)*3+col%3)
	default:
		if col < 3 || col > 5 {
			return -1
		}
		return gocube.FaceletIndex(gocube.FaceD, (row-6)*3+col-3)
	}
}

// stickerStyle returns the style for a facelet short code.
func stickerStyle(code byte) lipgloss.Style {
	c, ok := gocube.ColorForCode(code)
	if !ok {
		return unknownSticker
	}
	fg := "#000000"
	if c == gocube.Blue || c == gocube.Red || c == gocube.Green {
		fg = "#ffffff"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex)).
		Foreground(lipgloss.Color(fg))
}

// renderBoard draws facelets as colored stickers. The cell at cursor
// (a facelet index, -1 for none) is marked.
func renderBoard(facelets string, cursor int) string {
	if len(facelets) != gocube.FaceletCount {
		return facelets + "\n"
	}

	var b strings.Builder
	for row := 0; row < netRows; row++ {
		for col := 0; col < netCols; col++ {
			idx := netIndex(row, col)
			if idx < 0 {
				b.WriteString("   ")
				continue
			}
			code := facelets[idx]
			label := " " + string(code) + " "
			if idx == cursor {
				label = "[" + string(code) + "]"
			}
			b.WriteString(stickerStyle(code).Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderMoves shows a solution with the move at cursor highlighted.
func renderMoves(moves []gocube.Move, cursor int) string {
	if len(moves) == 0 {
		return statusStyle.Render("(no moves)")
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		if i == cursor {
			parts[i] = currentMoveStyle.Render(m.Notation())
		} else {
			parts[i] = moveStyle.Render(m.Notation())
		}
	}
	return strings.Join(parts, " ")
}

// renderIndicator formats the stepper position as "cur/total".
func renderIndicator(s *gocube.Stepper) string {
	cur, total := s.Indicator()
	return stepStyle.Render(fmt.Sprintf("%d/%d", cur, total))
}
