// Package solver provides gocube.Solver implementations backed by an
// external program or a plain Go function.
package solver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/SeamusWaldron/cubestep"
)

// Placeholders substituted into Command arguments.
const (
	PlaceholderFacelets = "{facelets}"
	PlaceholderRange    = "{range}"
	PlaceholderTimeout  = "{timeout}"
)

// ErrNoCommand is returned when Command has an empty program path.
var ErrNoCommand = errors.New("solver: no command configured")

// Command runs an external solver program once per request.
//
// Args may contain the placeholders {facelets}, {range} and {timeout}.
// When no argument mentions {facelets} the facelet string is written to
// the program's stdin instead. The program must print the move sequence
// on stdout and exit zero.
type Command struct {
	Path string
	Args []string

	// Grace is added to the requested timeout before the process is killed.
	Grace time.Duration
}

// NewCommand creates a Command for path with the given argument template.
func NewCommand(path string, args ...string) *Command {
	return &Command{Path: path, Args: args, Grace: 2 * time.Second}
}

// Solve implements gocube.Solver.
func (c *Command) Solve(ctx context.Context, facelets string, opts gocube.SolveOptions) (string, error) {
	if c.Path == "" {
		return "", ErrNoCommand
	}

	if opts.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		limit := time.Duration(opts.TimeoutSeconds*float64(time.Second)) + c.Grace
		ctx, cancel = context.WithTimeout(ctx, limit)
		defer cancel()
	}

	args, usesFacelets := expandArgs(c.Args, facelets, opts)
	cmd := exec.CommandContext(ctx, c.Path, args...)
	cmd.WaitDelay = time.Second
	if !usesFacelets {
		cmd.Stdin = strings.NewReader(facelets + "\n")
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("solver timed out after %gs: %w", opts.TimeoutSeconds, ctx.Err())
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		if msg != "" {
			return "", fmt.Errorf("%s: %w: %s", c.Path, err, msg)
		}
		return "", fmt.Errorf("%s: %w", c.Path, err)
	}

	return checkOutput(stdout.String())
}

// checkOutput turns the conventional "Error N" reply of two-phase solvers
// into an error.
func checkOutput(out string) (string, error) {
	trimmed := strings.TrimSpace(out)
	if strings.HasPrefix(strings.ToLower(trimmed), "error") {
		return "", errors.New(trimmed)
	}
	return trimmed, nil
}

func expandArgs(tmpl []string, facelets string, opts gocube.SolveOptions) ([]string, bool) {
	r := strings.NewReplacer(
		PlaceholderFacelets, facelets,
		PlaceholderRange, strconv.Itoa(opts.Range),
		PlaceholderTimeout, strconv.FormatFloat(opts.TimeoutSeconds, 'g', -1, 64),
	)

	uses := false
	args := make([]string, len(tmpl))
	for i, a := range tmpl {
		if strings.Contains(a, PlaceholderFacelets) {
			uses = true
		}
		args[i] = r.Replace(a)
	}
	return args, uses
}

// Func adapts an ordinary function to gocube.Solver.
type Func func(ctx context.Context, facelets string, opts gocube.SolveOptions) (string, error)

// Solve implements gocube.Solver.
func (f Func) Solve(ctx context.Context, facelets string, opts gocube.SolveOptions) (string, error) {
	return f(ctx, facelets, opts)
}
