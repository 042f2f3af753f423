// ABOUTME: ANSI escape sequence stripping and extraction for rendered terminal lines
// ABOUTME: Understands CSI and OSC sequences plus plain two-byte ESC sequences

package width

import "strings"

// StripANSI removes all ANSI escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			i = skipSequence(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// ExtractANSI returns the escape sequences in s, in order.
func ExtractANSI(s string) []string {
	var seqs []string
	for i := 0; i < len(s); {
		if s[i] != '\x1b' {
			i++
			continue
		}
		end := skipSequence(s, i)
		seqs = append(seqs, s[i:end])
		i = end
	}
	return seqs
}

// skipSequence returns the index just past the escape sequence at s[i].
func skipSequence(s string, i int) int {
	i++ // ESC
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '[':
		// CSI: parameters, then a final byte in 0x40-0x7E.
		for i++; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return i + 1
			}
		}
		return i
	case ']':
		// OSC: terminated by BEL or ST.
		for i++; i < len(s); i++ {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return i
	default:
		return i + 1
	}
}
