package storage

import (
	"github.com/SeamusWaldron/cubestep"
)

// Recorder writes solve attempts and scrambles from session events.
// Register Observe with gocube.WithObserver.
type Recorder struct {
	attempts  *AttemptRepository
	scrambles *ScrambleRepository
	opts      gocube.SolveOptions
	err       error
}

// NewRecorder creates a recorder that stores attempts made with opts.
func NewRecorder(db *DB, opts gocube.SolveOptions) *Recorder {
	return &Recorder{
		attempts:  NewAttemptRepository(db),
		scrambles: NewScrambleRepository(db),
		opts:      opts,
	}
}

// Observe stores scramble and solve events; other events are ignored.
// The first write error is kept and reported by Err.
func (r *Recorder) Observe(e gocube.Event) {
	var err error
	switch e.Type {
	case gocube.EventScramble:
		_, err = r.scrambles.Create(gocube.FormatMoves(e.Moves), e.Applied, e.Facelets)
	case gocube.EventSolve:
		_, err = r.attempts.CreateSolved(e.Facelets, r.opts.Range, r.opts.TimeoutSeconds, gocube.FormatMoves(e.Moves), len(e.Moves))
	case gocube.EventSolveFailed:
		msg := ""
		if e.Err != nil {
			msg = e.Err.Error()
		}
		_, err = r.attempts.CreateFailed(e.Facelets, r.opts.Range, r.opts.TimeoutSeconds, msg)
	}
	if err != nil && r.err == nil {
		r.err = err
	}
}

// Err returns the first write error, if any.
func (r *Recorder) Err() error {
	return r.err
}
