package gocube

import (
	"fmt"
	"strings"
)

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceR Face = "R" // Right
	FaceF Face = "F" // Front
	FaceD Face = "D" // Down
	FaceL Face = "L" // Left
	FaceB Face = "B" // Back
)

// Faces lists the faces in facelet string order.
var Faces = [6]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

// Index returns the position of the face in Faces, or -1.
func (f Face) Index() int {
	for i, face := range Faces {
		if face == f {
			return i
		}
	}
	return -1
}

// Code returns the single-byte short code used in the facelet string.
func (f Face) Code() byte {
	if len(f) == 0 {
		return '?'
	}
	return f[0]
}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single face turn.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation string into a Move.
// Accepted tokens match [URFDLB](['2])?. Lower-case letters are wide moves
// in standard notation and are rejected.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	var face Face
	switch s[0] {
	case 'U':
		face = FaceU
	case 'R':
		face = FaceR
	case 'F':
		face = FaceF
	case 'D':
		face = FaceD
	case 'L':
		face = FaceL
	case 'B':
		face = FaceB
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := CW
	if len(s) == 2 {
		switch s[1] {
		case '\'':
			turn = CCW
		case '2':
			turn = Double
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Empty tokens are dropped, so blank input yields an empty sequence.
// The first invalid token aborts parsing.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseMoves returns the sequence that undoes moves.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
