package gocube

// EventType identifies what changed in a Session.
type EventType int

const (
	// EventPaint is a single cell being painted.
	EventPaint EventType = iota

	// EventLoad is the whole board replaced from a facelet string.
	EventLoad

	// EventReset is the board returned to solved and the stepper cleared.
	EventReset

	// EventScramble is a scramble generated, and maybe applied.
	EventScramble

	// EventSolve is a solution installed into the stepper.
	EventSolve

	// EventSolveFailed is a solver failure; the stepper has been cleared.
	EventSolveFailed

	// EventStep is the stepper cursor moving.
	EventStep
)

// String returns a short identifier for the event type.
func (t EventType) String() string {
	switch t {
	case EventPaint:
		return "paint"
	case EventLoad:
		return "load"
	case EventReset:
		return "reset"
	case EventScramble:
		return "scramble"
	case EventSolve:
		return "solve"
	case EventSolveFailed:
		return "solve_failed"
	case EventStep:
		return "step"
	default:
		return "unknown"
	}
}

// Event describes a state change. Only the fields relevant to Type are set.
type Event struct {
	Type     EventType
	Index    int    // EventPaint
	Code     byte   // EventPaint
	Facelets string // board after the change
	Moves    []Move // EventScramble, EventSolve
	Applied  bool   // EventScramble
	Cursor   int    // EventStep
	Err      error  // EventSolveFailed
}
