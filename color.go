package gocube

// Color is a sticker color bound to the face it belongs to when solved.
type Color struct {
	Name string // Display name
	Code Face   // Face identity, also the facelet string short code
	Hex  string // Display color, #rrggbb
}

// The six sticker colors in the standard scheme (white top, green front).
var (
	White  = Color{Name: "white", Code: FaceU, Hex: "#ffffff"}
	Red    = Color{Name: "red", Code: FaceR, Hex: "#c41e3a"}
	Green  = Color{Name: "green", Code: FaceF, Hex: "#009e60"}
	Yellow = Color{Name: "yellow", Code: FaceD, Hex: "#ffd500"}
	Orange = Color{Name: "orange", Code: FaceL, Hex: "#ff5800"}
	Blue   = Color{Name: "blue", Code: FaceB, Hex: "#0051ba"}
)

var palette = [6]Color{White, Red, Green, Yellow, Orange, Blue}

// Palette returns the six colors in facelet string face order (U R F D L B).
func Palette() []Color {
	out := make([]Color, len(palette))
	copy(out, palette[:])
	return out
}

// ShortCode returns the byte written into the facelet string for this color.
func (c Color) ShortCode() byte {
	return c.Code.Code()
}

func (c Color) String() string {
	return c.Name
}

// ColorForFace returns the color whose solved face is f.
func ColorForFace(f Face) (Color, bool) {
	i := f.Index()
	if i < 0 {
		return Color{}, false
	}
	return palette[i], true
}

// ColorForCode returns the color with the given short code.
func ColorForCode(code byte) (Color, bool) {
	for _, c := range palette {
		if c.ShortCode() == code {
			return c, true
		}
	}
	return Color{}, false
}
