// ABOUTME: Image path resolution tolerant of Unicode variants in shell-pasted names
// ABOUTME: Tries NFC/NFD and space/quote substitutions; x/text/unicode/norm for normalization

package pathutil

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeSpaces replaces non-ASCII Unicode spaces with U+0020.
func NormalizeSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u00A0', r == '\u202F', r == '\u205F', r == '\u3000':
			return ' '
		case r >= '\u2000' && r <= '\u200A':
			return ' '
		}
		return r
	}, s)
}

// Expand replaces a leading "~" with the user's home directory.
func Expand(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}

// Candidates returns the spellings of path worth trying, most literal first,
// without duplicates. Screenshots on macOS use U+202F before "AM"/"PM" and
// HFS+ stores names in NFD, so pasted names often differ from disk names.
func Candidates(path string) []string {
	path = Expand(path)
	straight := strings.ReplaceAll(path, "\u2019", "'")
	variants := []string{
		path,
		NormalizeSpaces(path),
		norm.NFC.String(path),
		norm.NFD.String(path),
		straight,
		norm.NFD.String(straight),
	}

	seen := make(map[string]bool, len(variants))
	out := variants[:0]
	for _, v := range variants {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// ResolveReadPath returns the first candidate spelling of path that exists.
// If none exists the expanded literal path is returned, so the caller's
// open reports the name the user typed.
func ResolveReadPath(path string) string {
	candidates := Candidates(path)
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return filepath.Clean(c)
		}
	}
	return candidates[0]
}
