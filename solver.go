package gocube

import "context"

// SolveOptions are handed to the solver untouched.
type SolveOptions struct {
	Range          int     // Search range / maximum depth, solver-defined
	TimeoutSeconds float64 // Time budget for the search
}

// DefaultSolveOptions matches the usual two-phase solver settings.
var DefaultSolveOptions = SolveOptions{Range: 21, TimeoutSeconds: 10}

// Solver computes the moves that bring a facelet string back to solved.
// The result is a whitespace-separated list of move tokens; an empty or
// blank result means the cube is already solved.
type Solver interface {
	Solve(ctx context.Context, facelets string, opts SolveOptions) (string, error)
}

// ParseSolution converts raw solver output into a move sequence.
// Any token that is not a move is reported as a SolverError.
func ParseSolution(raw string) ([]Move, error) {
	moves, err := ParseMoves(raw)
	if err != nil {
		return nil, &SolverError{Err: err}
	}
	return moves, nil
}
