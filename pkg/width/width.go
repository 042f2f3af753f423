// ABOUTME: Display width of terminal strings, ignoring escape sequences
// ABOUTME: Grapheme-aware via uniseg with per-rune widths from go-runewidth

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the number of terminal columns s occupies. Escape
// sequences contribute nothing; wide graphemes (CJK, emoji) count as two.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}

	stripped := StripANSI(s)
	w := 0
	state := -1
	for len(stripped) > 0 {
		var cluster string
		cluster, stripped, _, state = uniseg.FirstGraphemeClusterInString(stripped, state)
		r, _ := utf8.DecodeRuneInString(cluster)
		w += runewidth.RuneWidth(r)
	}
	return w
}

// isPlainASCII reports whether s holds only printable ASCII.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}
