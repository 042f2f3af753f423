// ABOUTME: Thin wrapper over sahilm/fuzzy for ranking candidate spellings
// ABOUTME: Suggest picks the best candidate for did-you-mean hints on bad flag values

package fuzzy

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match represents a single fuzzy match result.
type Match struct {
	Str   string
	Index int
	Score int
}

// Find performs fuzzy matching of pattern against items, best score first.
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{Str: r.Str, Index: r.Index, Score: r.Score}
	}
	return matches
}

// Suggest returns the best-scoring item for pattern, or "" when nothing
// matches or pattern is blank.
func Suggest(pattern string, items []string) string {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return ""
	}
	matches := Find(strings.ToLower(pattern), items)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
