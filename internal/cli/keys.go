package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/SeamusWaldron/cubestep"
)

// editKeyMap defines the editor key bindings.
type editKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Paint    key.Binding
	Solve    key.Binding
	Scramble key.Binding
	Next     key.Binding
	Prev     key.Binding
	Reset    key.Binding
	Quit     key.Binding
}

func newEditKeyMap() editKeyMap {
	return editKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "left")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Paint:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "u", "r", "f", "d", "l", "b", "U", "R", "F", "D", "L", "B"), key.WithHelp("1-6/urfdlb", "paint")),
		Solve:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "solve")),
		Scramble: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "scramble")),
		Next:     key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next")),
		Prev:     key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "prev")),
		Reset:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "reset")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// bindings lists the bindings shown in the help line.
func (k editKeyMap) bindings() []key.Binding {
	return []key.Binding{k.Paint, k.Solve, k.Scramble, k.Next, k.Prev, k.Reset, k.Quit}
}

// helpLine renders the bindings as "key=desc" pairs.
func (k editKeyMap) helpLine() string {
	var parts []string
	for _, b := range k.bindings() {
		h := b.Help()
		parts = append(parts, h.Key+"="+h.Desc)
	}
	return "Keys: arrows=move  " + strings.Join(parts, "  ")
}

// paintColor maps a paint key to its color: 1-6 in palette order, or the
// face letter.
func paintColor(k string) (gocube.Color, bool) {
	if len(k) != 1 {
		return gocube.Color{}, false
	}
	c := k[0]
	if c >= '1' && c <= '6' {
		return gocube.Palette()[c-'1'], true
	}
	return gocube.ColorForCode(strings.ToUpper(k)[0])
}
