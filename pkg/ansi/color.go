// ABOUTME: 24-bit SGR colour escape construction for terminal output
// ABOUTME: Formats an RGB triple as ESC[38;2;R;G;Bm (text) or ESC[48;2;R;G;Bm (background)

package ansi

import "strconv"

// ColorType selects which terminal colour slot an escape sequence sets.
type ColorType int

const (
	Text       ColorType = iota // foreground, SGR 38
	Background                  // background, SGR 48
)

// String returns the colour type name.
func (t ColorType) String() string {
	if t == Text {
		return "text"
	}
	return "background"
}

// Color is an 8-bit-per-channel RGB triple.
type Color struct {
	R, G, B uint8
}

const (
	textIntro       = "\x1b[38;2;"
	backgroundIntro = "\x1b[48;2;"
)

// Format returns the truecolor escape sequence that sets colour c in slot t.
// Channel values are written in decimal without padding. Any ColorType other
// than Text selects the background slot.
func Format(t ColorType, c Color) string {
	intro := backgroundIntro
	if t == Text {
		intro = textIntro
	}

	// Longest form: intro + "255;255;255m"
	b := make([]byte, 0, len(intro)+12)
	b = append(b, intro...)
	b = strconv.AppendUint(b, uint64(c.R), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(c.G), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(c.B), 10)
	b = append(b, 'm')
	return string(b)
}
