package gocube

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// stubSolver records the last request and returns a canned answer.
type stubSolver struct {
	result   string
	err      error
	calls    int
	facelets string
	opts     SolveOptions
}

func (s *stubSolver) Solve(_ context.Context, facelets string, opts SolveOptions) (string, error) {
	s.calls++
	s.facelets = facelets
	s.opts = opts
	return s.result, s.err
}

// failingApplier fails on the nth call.
type failingApplier struct {
	failAt int
	calls  int
}

func (f *failingApplier) Apply(facelets string, m Move) (string, error) {
	f.calls++
	if f.calls == f.failAt {
		return "", errors.New("jammed")
	}
	return FaceletApplier{}.Apply(facelets, m)
}

type SessionSuite struct {
	suite.Suite
	ctx    context.Context
	solver *stubSolver
	events []Event
}

func (s *SessionSuite) SetupTest() {
	s.ctx = context.Background()
	s.solver = &stubSolver{}
	s.events = nil
}

func (s *SessionSuite) newSession(opts ...Option) *Session {
	opts = append(opts,
		WithRandSource(rand.NewPCG(10, 20)),
		WithObserver(func(e Event) { s.events = append(s.events, e) }),
	)
	return NewSession(s.solver, opts...)
}

func (s *SessionSuite) lastEvent() Event {
	s.Require().NotEmpty(s.events)
	return s.events[len(s.events)-1]
}

func (s *SessionSuite) TestNewSessionSolved() {
	sess := s.newSession()
	s.Equal(solvedFacelets, sess.Facelets())
	cur, total := sess.Stepper().Indicator()
	s.Equal(0, cur)
	s.Equal(0, total)
	s.False(sess.CanApplyMoves())
}

func (s *SessionSuite) TestSolveInstallsMoves() {
	s.solver.result = "R U' F2 "
	sess := s.newSession(WithSolveOptions(SolveOptions{Range: 18, TimeoutSeconds: 2.5}))
	s.Require().NoError(sess.Paint(0, Red))

	s.Require().NoError(sess.Solve(s.ctx))

	s.Equal(1, s.solver.calls)
	s.Equal("R"+solvedFacelets[1:], s.solver.facelets)
	s.Equal(SolveOptions{Range: 18, TimeoutSeconds: 2.5}, s.solver.opts)
	s.Equal([]Move{R, UPrime, F2}, sess.Stepper().Moves())
	s.Equal(-1, sess.Stepper().Cursor())
	s.Equal(EventSolve, s.lastEvent().Type)
}

func (s *SessionSuite) TestSolveSolvedCubeIsEmptyNotFailure() {
	for _, raw := range []string{"", "   ", "\n\t"} {
		s.solver.result = raw
		sess := s.newSession()
		err := sess.Solve(s.ctx)
		s.Require().NoError(err, "raw %q", raw)
		cur, total := sess.Stepper().Indicator()
		s.Equal(0, cur)
		s.Equal(0, total)
	}
}

func (s *SessionSuite) TestSolveFailureClearsStepper() {
	s.solver.result = "R U"
	sess := s.newSession()
	s.Require().NoError(sess.Solve(s.ctx))
	sess.Next()

	cause := errors.New("timed out")
	s.solver.result, s.solver.err = "", cause
	err := sess.Solve(s.ctx)

	var solverErr *SolverError
	s.Require().True(errors.As(err, &solverErr))
	s.ErrorIs(err, ErrSolver)
	s.ErrorIs(err, cause)
	s.Contains(err.Error(), "timed out")
	s.Equal(0, sess.Stepper().Len())
	s.Equal(-1, sess.Stepper().Cursor())
	s.Equal(EventSolveFailed, s.lastEvent().Type)
}

func (s *SessionSuite) TestSolveGarbageOutputIsFailure() {
	s.solver.result = "Error 8"
	sess := s.newSession()
	err := sess.Solve(s.ctx)
	s.ErrorIs(err, ErrSolver)
	s.ErrorIs(err, ErrInvalidNotation)
	s.Equal(0, sess.Stepper().Len())
}

func (s *SessionSuite) TestSolveWithoutSolver() {
	sess := NewSession(nil)
	err := sess.Solve(s.ctx)
	s.ErrorIs(err, ErrSolver)
	s.ErrorIs(err, ErrNoSolver)
}

func (s *SessionSuite) TestApplySolveResultLastWins() {
	sess := s.newSession()
	s.Require().NoError(sess.ApplySolveResult("R U", nil))
	s.Require().NoError(sess.ApplySolveResult("F", nil))
	s.Equal([]Move{F}, sess.Stepper().Moves())
}

func (s *SessionSuite) TestScrambleDegradedWithoutApplier() {
	sess := s.newSession()
	res, err := sess.Scramble()
	s.Require().NoError(err)
	s.False(res.Applied)
	s.Len(res.Moves, ScrambleLength)
	s.Equal(FormatMoves(res.Moves), res.Text)
	s.Equal(solvedFacelets, sess.Facelets(), "board must not change without an applier")
	s.Equal(EventScramble, s.lastEvent().Type)
}

func (s *SessionSuite) TestScrambleApplied() {
	s.solver.result = "R"
	sess := s.newSession(WithMoveApplier(FaceletApplier{}))
	s.Require().NoError(sess.Solve(s.ctx))

	res, err := sess.Scramble()
	s.Require().NoError(err)
	s.True(res.Applied)

	want, err := ApplyMoves(FaceletApplier{}, solvedFacelets, res.Moves)
	s.Require().NoError(err)
	s.Equal(want, sess.Facelets())
	s.Equal(0, sess.Stepper().Len(), "old solution does not describe the scrambled board")
}

func (s *SessionSuite) TestScrambleApplierFailureLeavesBoard() {
	sess := s.newSession(WithMoveApplier(&failingApplier{failAt: 5}))
	_, err := sess.Scramble()
	s.ErrorIs(err, ErrApplier)
	s.Equal(solvedFacelets, sess.Facelets())
}

func (s *SessionSuite) TestPaintAndLoad() {
	sess := s.newSession()
	s.Require().NoError(sess.Paint(53, White))
	code, err := sess.Cell(53)
	s.Require().NoError(err)
	s.Equal(byte('U'), code)
	s.Equal(EventPaint, s.lastEvent().Type)
	s.Equal(53, s.lastEvent().Index)

	s.ErrorIs(sess.Paint(54, White), ErrOutOfRange)

	err = sess.Load(strings.Repeat("U", 53))
	s.ErrorIs(err, ErrInvalidLength)

	s.Require().NoError(sess.Load(strings.Repeat("D", FaceletCount)))
	s.Equal(map[byte]int{'D': FaceletCount}, sess.ColorCounts())
}

func (s *SessionSuite) TestResetClearsEverything() {
	s.solver.result = "R U"
	sess := s.newSession()
	s.Require().NoError(sess.Paint(4, Green))
	s.Require().NoError(sess.Solve(s.ctx))

	sess.Reset()
	s.Equal(solvedFacelets, sess.Facelets())
	s.Equal(0, sess.Stepper().Len())
	s.Equal(EventReset, s.lastEvent().Type)
}

func (s *SessionSuite) TestStepEvents() {
	s.solver.result = "R"
	sess := s.newSession()
	s.Require().NoError(sess.Solve(s.ctx))
	s.events = nil

	s.True(sess.Next())
	s.False(sess.Next())
	s.True(sess.Previous())
	s.False(sess.Previous())

	s.Require().Len(s.events, 2)
	s.Equal(0, s.events[0].Cursor)
	s.Equal(-1, s.events[1].Cursor)
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func TestSolverErrorMessage(t *testing.T) {
	err := &SolverError{Err: errors.New("no solution within range")}
	require.EqualError(t, err, "gocube: solver failed: no solution within range")
	assert.EqualError(t, &SolverError{}, "gocube: solver failed")
}
