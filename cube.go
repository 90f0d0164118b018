package gocube

// MoveApplier turns one face of a serialized cube and returns the new
// serialization. It is an optional collaborator: a Session without one
// still generates scrambles but cannot fold them into the board.
type MoveApplier interface {
	Apply(facelets string, m Move) (string, error)
}

// FaceletApplier is a MoveApplier that permutes the 54 facelets directly.
// Cells are moved as opaque bytes, so boards with unusual alphabets or
// color counts are turned just like real ones.
type FaceletApplier struct{}

// Apply implements MoveApplier.
func (FaceletApplier) Apply(facelets string, m Move) (string, error) {
	if len(facelets) != FaceletCount {
		return "", &InvalidLengthError{Length: len(facelets)}
	}
	if m.Face.Index() < 0 {
		return "", ErrInvalidNotation
	}

	var s turnState
	copy(s[:], facelets)
	s.move(m.Face, m.Turn)
	return string(s[:]), nil
}

// ApplyMoves folds a sequence of moves through applier, starting from facelets.
func ApplyMoves(applier MoveApplier, facelets string, moves []Move) (string, error) {
	var err error
	for _, m := range moves {
		facelets, err = applier.Apply(facelets, m)
		if err != nil {
			return "", err
		}
	}
	return facelets, nil
}

// turnState is a working copy of the facelet string.
type turnState [FaceletCount]byte

// at returns a pointer to position pos on face f.
func (s *turnState) at(f Face, pos int) *byte {
	return &s[FaceletIndex(f, pos)]
}

// move applies a turn: 1 = CW, -1 = CCW, 2 = 180 degrees.
func (s *turnState) move(face Face, turn Turn) {
	switch turn {
	case CW:
		s.moveCW(face)
	case CCW:
		s.moveCW(face)
		s.moveCW(face)
		s.moveCW(face)
	case Double:
		s.moveCW(face)
		s.moveCW(face)
	}
}

func (s *turnState) moveCW(face Face) {
	s.rotateFaceCW(face)
	s.cycleEdgesCW(face)
}

// rotateFaceCW rotates the nine stickers of a face 90 degrees clockwise.
func (s *turnState) rotateFaceCW(face Face) {
	base := face.Index() * FaceletsPerFace
	f := s[base : base+FaceletsPerFace]
	// Corner rotation: 0->2->8->6->0
	// Edge rotation: 1->5->7->3->1
	temp := f[0]
	f[0] = f[6]
	f[6] = f[8]
	f[8] = f[2]
	f[2] = temp

	temp = f[1]
	f[1] = f[3]
	f[3] = f[7]
	f[7] = f[5]
	f[5] = temp
}

// cycleEdgesCW moves the ring of 12 stickers around a face one quarter turn.
// Each strip is listed so that strip n travels to strip n+1.
func (s *turnState) cycleEdgesCW(face Face) {
	switch face {
	case FaceU:
		// F top -> L top -> B top -> R top
		s.cycle4(
			FaceF, [3]int{0, 1, 2},
			FaceL, [3]int{0, 1, 2},
			FaceB, [3]int{0, 1, 2},
			FaceR, [3]int{0, 1, 2},
		)
	case FaceD:
		// F bottom -> R bottom -> B bottom -> L bottom
		s.cycle4(
			FaceF, [3]int{6, 7, 8},
			FaceR, [3]int{6, 7, 8},
			FaceB, [3]int{6, 7, 8},
			FaceL, [3]int{6, 7, 8},
		)
	case FaceF:
		// U bottom -> R left -> D top -> L right
		s.cycle4(
			FaceU, [3]int{6, 7, 8},
			FaceR, [3]int{0, 3, 6},
			FaceD, [3]int{2, 1, 0},
			FaceL, [3]int{8, 5, 2},
		)
	case FaceB:
		// U top -> L left -> D bottom -> R right
		s.cycle4(
			FaceU, [3]int{2, 1, 0},
			FaceL, [3]int{0, 3, 6},
			FaceD, [3]int{6, 7, 8},
			FaceR, [3]int{8, 5, 2},
		)
	case FaceR:
		// U right -> B left -> D right -> F right
		s.cycle4(
			FaceU, [3]int{2, 5, 8},
			FaceB, [3]int{6, 3, 0},
			FaceD, [3]int{2, 5, 8},
			FaceF, [3]int{2, 5, 8},
		)
	case FaceL:
		// U left -> F left -> D left -> B right
		s.cycle4(
			FaceU, [3]int{0, 3, 6},
			FaceF, [3]int{0, 3, 6},
			FaceD, [3]int{0, 3, 6},
			FaceB, [3]int{8, 5, 2},
		)
	}
}

// cycle4 moves strip 1 to 2, 2 to 3, 3 to 4 and 4 to 1.
func (s *turnState) cycle4(f1 Face, i1 [3]int, f2 Face, i2 [3]int, f3 Face, i3 [3]int, f4 Face, i4 [3]int) {
	for k := 0; k < 3; k++ {
		a, b, c, d := s.at(f1, i1[k]), s.at(f2, i2[k]), s.at(f3, i3[k]), s.at(f4, i4[k])
		*a, *b, *c, *d = *d, *a, *b, *c
	}
}
