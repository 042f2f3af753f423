// ABOUTME: Wraps payload text in a colour escape and an SGR reset
// ABOUTME: Swatch builds the background-coloured run of spaces used for one image cell

package ansi

import "strings"

// Reset clears all SGR attributes.
const Reset = "\x1b[0m"

// Wrap returns payload prefixed with the escape for c in slot t and
// followed by Reset. The payload is copied verbatim.
func Wrap(payload string, t ColorType, c Color) string {
	prefix := Format(t, c)

	var b strings.Builder
	b.Grow(len(prefix) + len(payload) + len(Reset))
	b.WriteString(prefix)
	b.WriteString(payload)
	b.WriteString(Reset)
	return b.String()
}

// Swatch returns n spaces painted with background colour c.
func Swatch(n int, c Color) string {
	if n < 0 {
		n = 0
	}
	return Wrap(strings.Repeat(" ", n), Background, c)
}
