package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubestep"
)

var editCmd = &cobra.Command{
	Use:   "edit [facelets]",
	Short: "Interactive facelet editor and solution stepper",
	Long: `Start an interactive TUI for painting a cube sticker by sticker, solving it
and stepping through the solution.

Keyboard shortcuts:
  arrows          - Move the cell cursor
  1-6 / urfdlb    - Paint the cell (1=white 2=red 3=green 4=yellow 5=orange 6=blue)
  s               - Solve the current board
  x               - Scramble
  n / p           - Next / previous solution move
  c               - Reset to solved
  q/Esc           - Quit

An optional facelet string seeds the board.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

// Messages
type solveDoneMsg struct {
	facelets string // board the solver was asked about
	raw      string
	err      error
}

const busyStatus = "Solving... the board is locked until the solver answers"

// Model
type editModel struct {
	ctx     context.Context
	session *gocube.Session
	solver  gocube.Solver
	keys    editKeyMap

	// Cell cursor in net coordinates
	row, col int

	// State
	solving  bool
	scramble string
	status   string
	err      error
	quitting bool
}

func newEditModel(ctx context.Context, session *gocube.Session, solver gocube.Solver) *editModel {
	return &editModel{
		ctx:     ctx,
		session: session,
		solver:  solver,
		keys:    newEditKeyMap(),
		row:     4, // F center
		col:     4,
	}
}

func (m *editModel) Init() tea.Cmd {
	return nil
}

// cursorIndex returns the facelet index under the cursor.
func (m *editModel) cursorIndex() int {
	return netIndex(m.row, m.col)
}

// moveCursor steps the cursor by (dr, dc), skipping the blank corners of the
// net. It stays put when there is no cell in that direction.
func (m *editModel) moveCursor(dr, dc int) {
	r, c := m.row+dr, m.col+dc
	for r >= 0 && r < netRows && c >= 0 && c < netCols {
		if netIndex(r, c) >= 0 {
			m.row, m.col = r, c
			return
		}
		r, c = r+dr, c+dc
	}
}

// solveCmd runs the solver off the UI loop. The result comes back as a
// solveDoneMsg and is handed to the session there.
func (m *editModel) solveCmd() tea.Cmd {
	solver := m.solver
	ctx := m.ctx
	facelets := m.session.Facelets()
	opts := m.session.SolveOptions()
	return func() tea.Msg {
		if solver == nil {
			return solveDoneMsg{facelets: facelets, err: gocube.ErrNoSolver}
		}
		raw, err := solver.Solve(ctx, facelets, opts)
		return solveDoneMsg{facelets: facelets, raw: raw, err: err}
	}
}

func (m *editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case solveDoneMsg:
		m.solving = false
		if msg.facelets != m.session.Facelets() {
			// The solution would describe a board that is no longer shown.
			m.status = "Board changed while solving; result discarded"
			return m, nil
		}
		if err := m.session.ApplySolveResult(msg.raw, msg.err); err != nil {
			m.err = err
			m.status = ""
			return m, nil
		}
		m.err = nil
		if m.session.Stepper().Len() == 0 {
			m.status = "Already solved"
		} else {
			m.status = fmt.Sprintf("Solved in %d moves - n/p to step", m.session.Stepper().Len())
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1, 0)
		case key.Matches(msg, m.keys.Left):
			m.moveCursor(0, -1)
		case key.Matches(msg, m.keys.Right):
			m.moveCursor(0, 1)

		case m.solving && (key.Matches(msg, m.keys.Paint) ||
			key.Matches(msg, m.keys.Scramble) ||
			key.Matches(msg, m.keys.Reset)):
			m.status = busyStatus

		case key.Matches(msg, m.keys.Paint):
			color, ok := paintColor(msg.String())
			if !ok {
				return m, nil
			}
			if err := m.session.Paint(m.cursorIndex(), color); err != nil {
				m.err = err
			}

		case key.Matches(msg, m.keys.Solve):
			if m.solving {
				return m, nil
			}
			m.solving = true
			m.err = nil
			m.status = "Solving..."
			return m, m.solveCmd()

		case key.Matches(msg, m.keys.Scramble):
			res, err := m.session.Scramble()
			if err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.scramble = res.Text
			if res.Applied {
				m.status = "Scrambled"
			} else {
				m.status = "Scramble generated (apply it to your cube and paint the result)"
			}

		case key.Matches(msg, m.keys.Next):
			m.session.Next()
		case key.Matches(msg, m.keys.Prev):
			m.session.Previous()

		case key.Matches(msg, m.keys.Reset):
			m.session.Reset()
			m.scramble = ""
			m.status = "Reset to solved"
			m.err = nil
		}
	}

	return m, nil
}

func (m *editModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("cubestep"))
	b.WriteString("\n\n")

	b.WriteString(renderBoard(m.session.Facelets(), m.cursorIndex()))
	b.WriteString("\n")

	if code, err := m.session.Cell(m.cursorIndex()); err == nil {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Cell %d: %c", m.cursorIndex(), code)))
		b.WriteString("\n")
	}

	if m.scramble != "" {
		b.WriteString(fmt.Sprintf("Scramble: %s\n", moveStyle.Render(m.scramble)))
	}

	stepper := m.session.Stepper()
	b.WriteString(fmt.Sprintf("Solution %s: %s\n", renderIndicator(stepper), renderMoves(stepper.Moves(), stepper.Cursor())))
	if mv, ok := stepper.Current(); ok {
		b.WriteString(fmt.Sprintf("Current move: %s\n", stepStyle.Render(mv.Notation())))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	// Error
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.keys.helpLine()))
	b.WriteString("\n")

	return b.String()
}

func runEdit(cmd *cobra.Command, args []string) (err error) {
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
	if len(args) == 1 {
		if err := session.Load(strings.TrimSpace(args[0])); err != nil {
			return err
		}
	}

	model := newEditModel(cmd.Context(), session, e.solver())
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if path := e.logger.FilePath(); path != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Log saved to: %s\n", path)
	}
	return nil
}
