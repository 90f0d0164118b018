package gocube

// Stepper tracks a cursor over a move sequence so a person can follow the
// moves on a physical cube. Cursor -1 means no move is highlighted yet.
// It never touches the board.
type Stepper struct {
	moves  []Move
	cursor int
}

// NewStepper creates a stepper with no sequence.
func NewStepper() *Stepper {
	return &Stepper{cursor: -1}
}

// Install replaces the sequence and rewinds the cursor to -1.
// An empty sequence means the cube is already solved.
func (s *Stepper) Install(moves []Move) {
	s.moves = make([]Move, len(moves))
	copy(s.moves, moves)
	s.cursor = -1
}

// Reset drops the sequence.
func (s *Stepper) Reset() {
	s.moves = nil
	s.cursor = -1
}

// Next advances the cursor unless it is already on the last move.
// It reports whether the cursor moved.
func (s *Stepper) Next() bool {
	if s.cursor < len(s.moves)-1 {
		s.cursor++
		return true
	}
	return false
}

// Previous steps back unless the cursor is already at -1.
// It reports whether the cursor moved.
func (s *Stepper) Previous() bool {
	if s.cursor > -1 {
		s.cursor--
		return true
	}
	return false
}

// Cursor returns the current position in [-1, Len()-1].
func (s *Stepper) Cursor() int {
	return s.cursor
}

// Len returns the number of installed moves.
func (s *Stepper) Len() int {
	return len(s.moves)
}

// Current returns the highlighted move, if any.
func (s *Stepper) Current() (Move, bool) {
	if s.cursor < 0 {
		return Move{}, false
	}
	return s.moves[s.cursor], true
}

// Moves returns a copy of the installed sequence.
func (s *Stepper) Moves() []Move {
	out := make([]Move, len(s.moves))
	copy(out, s.moves)
	return out
}

// Indicator returns the display pair (cursor+1, length), e.g. "3 / 12".
func (s *Stepper) Indicator() (int, int) {
	return s.cursor + 1, len(s.moves)
}
