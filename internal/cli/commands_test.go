package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubestep"
)

// testHome isolates config, logs and journal under a temp HOME.
type testHome struct {
	t       *testing.T
	dir     string
	logDir  string
	journal string
}

func newTestHome(t *testing.T) *testHome {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("CUBESTEP_CONFIG", filepath.Join(dir, "config.toml"))
	return &testHome{
		t:       t,
		dir:     dir,
		logDir:  filepath.Join(dir, "logs"),
		journal: filepath.Join(dir, "journal.db"),
	}
}

// withSolver installs a fake solver program that prints out.
func (h *testHome) withSolver(out string) {
	h.t.Helper()
	script := filepath.Join(h.dir, "fake-solver")
	body := "#!/bin/sh\necho \"" + out + "\"\n"
	require.NoError(h.t, os.WriteFile(script, []byte(body), 0o755))
	h.t.Setenv("CUBESTEP_SOLVER_COMMAND", script)
}

func (h *testHome) withJournal() {
	h.t.Setenv("CUBESTEP_JOURNAL_ENABLED", "true")
	h.t.Setenv("CUBESTEP_JOURNAL_PATH", h.journal)
}

// run executes the root command. Package-level flag variables survive
// between runs, so they are reset first.
func (h *testHome) run(args ...string) (string, error) {
	h.t.Helper()
	configPath, noApply, logDir = "", false, ""
	scrambleSeed, solveStep = 0, false
	historyLimit, historyPrune = 20, -1
	exportAttemptID, exportFormat, exportOutput, exportLast = "", "txt", "", false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append(args, "--log-dir", h.logDir))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestPaletteCommand(t *testing.T) {
	h := newTestHome(t)
	out, err := h.run("palette")
	require.NoError(t, err)
	for _, c := range gocube.Palette() {
		assert.Contains(t, out, c.Name)
		assert.Contains(t, out, c.Hex)
	}
}

func TestScrambleCommandSeeded(t *testing.T) {
	h := newTestHome(t)

	first, err := h.run("scramble", "--seed", "9", "--no-apply")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(first), "\n")
	require.Len(t, lines, 1, "no board without an applier")
	assert.Len(t, strings.Fields(lines[0]), gocube.ScrambleLength)

	second, err := h.run("scramble", "--seed", "9", "--no-apply")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScrambleCommandApplied(t *testing.T) {
	h := newTestHome(t)
	out, err := h.run("scramble", "--seed", "3")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 3)
	moves, err := gocube.ParseMoves(lines[0])
	require.NoError(t, err)

	want, err := gocube.ApplyMoves(gocube.FaceletApplier{}, solved, moves)
	require.NoError(t, err)
	assert.Equal(t, want, lines[2])
}

func TestSolveCommand(t *testing.T) {
	h := newTestHome(t)
	h.withSolver("R U")

	out, err := h.run("solve", solved)
	require.NoError(t, err)
	assert.Contains(t, out, "R U")
	assert.Contains(t, out, "2 moves")
}

func TestSolveCommandAlreadySolved(t *testing.T) {
	h := newTestHome(t)
	h.withSolver("   ")

	out, err := h.run("solve", solved)
	require.NoError(t, err)
	assert.Contains(t, out, "Already solved")
}

func TestSolveCommandBadLength(t *testing.T) {
	h := newTestHome(t)
	h.withSolver("R")
	_, err := h.run("solve", "UUU")
	assert.ErrorIs(t, err, gocube.ErrInvalidLength)
}

func TestSolveCommandSolverError(t *testing.T) {
	h := newTestHome(t)
	h.withSolver("Error 3")
	_, err := h.run("solve", solved)
	assert.ErrorIs(t, err, gocube.ErrSolver)
	assert.Contains(t, err.Error(), "Error 3")
}

func TestJournalHistoryAndExport(t *testing.T) {
	h := newTestHome(t)
	h.withSolver("R2 F'")
	h.withJournal()

	_, err := h.run("solve", solved)
	require.NoError(t, err)
	_, err = h.run("scramble", "--seed", "1")
	require.NoError(t, err)

	out, err := h.run("history")
	require.NoError(t, err)
	assert.Contains(t, out, "R2 F'")
	assert.Contains(t, out, "(applied)")

	out, err = h.run("export", "--last")
	require.NoError(t, err)
	assert.Equal(t, "R2 F'\n", out)

	out, err = h.run("export", "--last", "--format", "json")
	require.NoError(t, err)
	var moves []exportedMove
	require.NoError(t, json.Unmarshal([]byte(out), &moves))
	require.Len(t, moves, 2)
	assert.Equal(t, "F'", moves[1].Notation)
	assert.Equal(t, -1, moves[1].Turn)

	target := filepath.Join(h.dir, "out", "moves.txt")
	_, err = h.run("export", "--last", "-o", target)
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "R2 F'\n", string(data))

	out, err = h.run("status")
	require.NoError(t, err)
	assert.Contains(t, out, "Attempts: 1")
}

func TestHistoryRequiresJournal(t *testing.T) {
	h := newTestHome(t)
	_, err := h.run("history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "journal is disabled")
}

func TestExportRequiresSelector(t *testing.T) {
	h := newTestHome(t)
	_, err := h.run("export")
	assert.EqualError(t, err, "specify --id or --last")
}

func TestLogsCommand(t *testing.T) {
	h := newTestHome(t)
	_, err := h.run("scramble", "--seed", "2", "--no-apply")
	require.NoError(t, err)

	out, err := h.run("logs")
	require.NoError(t, err)
	assert.Contains(t, out, "session_")

	files, err := os.ReadDir(h.logDir)
	require.NoError(t, err)
	require.NotEmpty(t, files)

	out, err = h.run("logs", files[0].Name())
	require.NoError(t, err)
	assert.Contains(t, out, "scramble")
}

func TestFormatSolutionUnknownFormat(t *testing.T) {
	_, err := formatSolution([]gocube.Move{gocube.R}, "xml")
	assert.Error(t, err)
}

func TestStatusReportsUnreadableLogDir(t *testing.T) {
	h := newTestHome(t)
	// A regular file where the log directory should be.
	h.logDir = filepath.Join(h.dir, "not-a-dir")
	require.NoError(t, os.WriteFile(h.logDir, []byte("x"), 0o644))

	out, err := h.run("status")
	require.NoError(t, err)
	assert.Contains(t, out, "unreadable")
	assert.NotContains(t, out, "(0 files)")
}
