package gocube

import (
	"math/rand/v2"
	"time"
)

// ScrambleLength is the number of moves in a generated scramble.
const ScrambleLength = 20

// Scrambler draws random move sequences in which no two consecutive moves
// turn the same face.
type Scrambler struct {
	rng *rand.Rand
}

// NewScrambler creates a scrambler drawing from src.
func NewScrambler(src rand.Source) *Scrambler {
	return &Scrambler{rng: rand.New(src)}
}

// Generate returns a new scramble of ScrambleLength moves.
//
// Each slot draws uniformly from AllMoves and redraws while the face
// matches the previous accepted move.
func (s *Scrambler) Generate() []Move {
	moves := make([]Move, 0, ScrambleLength)
	for len(moves) < ScrambleLength {
		m := AllMoves[s.rng.IntN(len(AllMoves))]
		if len(moves) > 0 && moves[len(moves)-1].Face == m.Face {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// Scramble returns a scramble from a time-seeded source.
func Scramble() []Move {
	return NewScrambler(timeSource()).Generate()
}

func timeSource() rand.Source {
	now := uint64(time.Now().UnixNano())
	return rand.NewPCG(now, now>>17|now<<47)
}
