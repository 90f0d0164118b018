package gocube

import "strings"

const (
	FaceletsPerFace = 9
	FaceletCount    = 6 * FaceletsPerFace
)

// FaceletCube is the 54-cell sticker board entered by the user.
//
// Cells are stored in face order U R F D L B, nine per face, row-major:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Each cell holds a face short code. Nothing checks that the board is a
// reachable cube or even that every color appears nine times.
type FaceletCube struct {
	cells [FaceletCount]byte
}

// NewFaceletCube creates a solved board.
func NewFaceletCube() *FaceletCube {
	c := &FaceletCube{}
	c.InitSolved()
	return c
}

// FaceletIndex returns the string index of position pos (0-8) on face f.
func FaceletIndex(f Face, pos int) int {
	return f.Index()*FaceletsPerFace + pos
}

// InitSolved replaces every cell with its face's own code.
func (c *FaceletCube) InitSolved() {
	for i, face := range Faces {
		for pos := 0; pos < FaceletsPerFace; pos++ {
			c.cells[i*FaceletsPerFace+pos] = face.Code()
		}
	}
}

// SetCell paints a single cell.
func (c *FaceletCube) SetCell(index int, color Color) error {
	if index < 0 || index >= FaceletCount {
		return &OutOfRangeError{Index: index}
	}
	c.cells[index] = color.ShortCode()
	return nil
}

// Cell returns the short code stored at index.
func (c *FaceletCube) Cell(index int) (byte, error) {
	if index < 0 || index >= FaceletCount {
		return 0, &OutOfRangeError{Index: index}
	}
	return c.cells[index], nil
}

// Serialize returns the 54-character facelet string consumed by solvers.
func (c *FaceletCube) Serialize() string {
	return string(c.cells[:])
}

// LoadFromSerialized replaces all cells with s verbatim.
// Only the length is checked.
func (c *FaceletCube) LoadFromSerialized(s string) error {
	if len(s) != FaceletCount {
		return &InvalidLengthError{Length: len(s)}
	}
	copy(c.cells[:], s)
	return nil
}

// IsSolved returns true if every face is a single color matching its identity.
func (c *FaceletCube) IsSolved() bool {
	for i, face := range Faces {
		for pos := 0; pos < FaceletsPerFace; pos++ {
			if c.cells[i*FaceletsPerFace+pos] != face.Code() {
				return false
			}
		}
	}
	return true
}

// ColorCounts returns how many cells carry each short code.
// It is for display; boards with uneven counts are still accepted.
func (c *FaceletCube) ColorCounts() map[byte]int {
	counts := make(map[byte]int, 6)
	for _, b := range c.cells {
		counts[b]++
	}
	return counts
}

// String returns the board as an unfolded net.
func (c *FaceletCube) String() string {
	return RenderNet(c.Serialize())
}

// RenderNet lays out a facelet string as a cross-shaped net:
// U above, L F R B in a row, D below.
func RenderNet(facelets string) string {
	if len(facelets) != FaceletCount {
		return facelets + "\n"
	}
	var b strings.Builder

	cell := func(f Face, pos int) {
		b.WriteByte(facelets[FaceletIndex(f, pos)])
		b.WriteByte(' ')
	}

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			cell(FaceU, row*3+col)
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < 3; col++ {
				cell(face, row*3+col)
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			cell(FaceD, row*3+col)
		}
		b.WriteString("\n")
	}

	return b.String()
}
