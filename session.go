package gocube

import (
	"context"
	"fmt"
)

// ScrambleResult is the outcome of Session.Scramble.
type ScrambleResult struct {
	Moves   []Move
	Text    string
	Applied bool // false when no MoveApplier is configured; the board is unchanged
}

// Session owns the board and the stepper for one user.
// It is not safe for concurrent use.
type Session struct {
	cube      *FaceletCube
	stepper   *Stepper
	solver    Solver
	applier   MoveApplier
	scrambler *Scrambler
	solveOpts SolveOptions
	observers []func(Event)
}

// NewSession creates a session with a solved board and an empty stepper.
// solver may be nil, in which case Solve always fails.
func NewSession(solver Solver, opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	src := cfg.source
	if src == nil {
		src = timeSource()
	}

	return &Session{
		cube:      NewFaceletCube(),
		stepper:   NewStepper(),
		solver:    solver,
		applier:   cfg.applier,
		scrambler: NewScrambler(src),
		solveOpts: cfg.solveOpts,
		observers: cfg.observers,
	}
}

// Facelets returns the serialized board.
func (s *Session) Facelets() string {
	return s.cube.Serialize()
}

// Cell returns the short code at index.
func (s *Session) Cell(index int) (byte, error) {
	return s.cube.Cell(index)
}

// Board returns the unfolded net of the board.
func (s *Session) Board() string {
	return s.cube.String()
}

// ColorCounts reports how often each short code appears on the board.
func (s *Session) ColorCounts() map[byte]int {
	return s.cube.ColorCounts()
}

// Stepper returns the stepper holding the current solution.
func (s *Session) Stepper() *Stepper {
	return s.stepper
}

// CanApplyMoves reports whether scrambles will be folded into the board.
func (s *Session) CanApplyMoves() bool {
	return s.applier != nil
}

// SolveOptions returns the options passed to the solver.
func (s *Session) SolveOptions() SolveOptions {
	return s.solveOpts
}

// Paint sets one cell to color.
func (s *Session) Paint(index int, color Color) error {
	if err := s.cube.SetCell(index, color); err != nil {
		return err
	}
	s.emit(Event{Type: EventPaint, Index: index, Code: color.ShortCode(), Facelets: s.cube.Serialize()})
	return nil
}

// Load replaces the whole board with facelets and clears the stepper.
func (s *Session) Load(facelets string) error {
	if err := s.cube.LoadFromSerialized(facelets); err != nil {
		return err
	}
	s.stepper.Reset()
	s.emit(Event{Type: EventLoad, Facelets: facelets})
	return nil
}

// Reset returns the board to solved and clears the stepper.
func (s *Session) Reset() {
	s.cube.InitSolved()
	s.stepper.Reset()
	s.emit(Event{Type: EventReset, Facelets: s.cube.Serialize()})
}

// Scramble generates a new scramble and, when a MoveApplier is set,
// applies it to the board and clears the stepper. If the applier fails the
// board is left as it was.
func (s *Session) Scramble() (ScrambleResult, error) {
	moves := s.scrambler.Generate()
	res := ScrambleResult{Moves: moves, Text: FormatMoves(moves)}

	if s.applier != nil {
		facelets, err := ApplyMoves(s.applier, s.cube.Serialize(), moves)
		if err != nil {
			return res, fmt.Errorf("%w: %w", ErrApplier, err)
		}
		if err := s.cube.LoadFromSerialized(facelets); err != nil {
			return res, fmt.Errorf("%w: %w", ErrApplier, err)
		}
		s.stepper.Reset()
		res.Applied = true
	}

	s.emit(Event{Type: EventScramble, Moves: moves, Applied: res.Applied, Facelets: s.cube.Serialize()})
	return res, nil
}

// Solve asks the solver for a solution of the current board and installs it.
// On failure the stepper is cleared and a *SolverError is returned.
func (s *Session) Solve(ctx context.Context) error {
	if s.solver == nil {
		return s.ApplySolveResult("", ErrNoSolver)
	}
	raw, err := s.solver.Solve(ctx, s.cube.Serialize(), s.solveOpts)
	return s.ApplySolveResult(raw, err)
}

// ApplySolveResult installs the outcome of a solver call that was run
// outside the session, for example on a UI worker. The last result handed
// in wins; there is no cancellation.
func (s *Session) ApplySolveResult(raw string, solveErr error) error {
	if solveErr != nil {
		return s.failSolve(&SolverError{Err: solveErr})
	}

	moves, err := ParseSolution(raw)
	if err != nil {
		return s.failSolve(err)
	}

	s.stepper.Install(moves)
	s.emit(Event{Type: EventSolve, Moves: moves, Facelets: s.cube.Serialize()})
	return nil
}

func (s *Session) failSolve(err error) error {
	s.stepper.Reset()
	s.emit(Event{Type: EventSolveFailed, Err: err, Facelets: s.cube.Serialize()})
	return err
}

// Next advances the stepper.
func (s *Session) Next() bool {
	if !s.stepper.Next() {
		return false
	}
	s.emit(Event{Type: EventStep, Cursor: s.stepper.Cursor(), Facelets: s.cube.Serialize()})
	return true
}

// Previous moves the stepper back.
func (s *Session) Previous() bool {
	if !s.stepper.Previous() {
		return false
	}
	s.emit(Event{Type: EventStep, Cursor: s.stepper.Cursor(), Facelets: s.cube.Serialize()})
	return true
}

func (s *Session) emit(e Event) {
	for _, fn := range s.observers {
		fn(e)
	}
}
