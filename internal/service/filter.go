package service

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/jask/fruitlist/internal/database/repository"
)

// NameMatcher decides whether a fruit name matches a search query.
type NameMatcher struct {
	// MaxTypoDistance is the largest edit distance still treated as a match.
	MaxTypoDistance int
	// FuzzyMinLength is the shortest query (in runes) that gets typo tolerance.
	FuzzyMinLength int
}

// Match reports whether name matches query. Blank queries match everything.
func (m NameMatcher) Match(name, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	n := strings.ToLower(name)
	if strings.Contains(n, q) {
		return true
	}
	if m.MaxTypoDistance <= 0 || utf8.RuneCountInString(q) < m.FuzzyMinLength {
		return false
	}
	if levenshtein.ComputeDistance(n, q) <= m.MaxTypoDistance {
		return true
	}
	// typo in a prefix, e.g. "straw" vs "strawberry"
	if prefix := runePrefix(n, utf8.RuneCountInString(q)); prefix != n {
		return levenshtein.ComputeDistance(prefix, q) <= m.MaxTypoDistance
	}
	return false
}

func (m NameMatcher) filter(fruits []repository.Fruit, query string) []repository.Fruit {
	out := make([]repository.Fruit, 0, len(fruits))
	for _, f := range fruits {
		if m.Match(f.Name, query) {
			out = append(out, f)
		}
	}
	return out
}

func runePrefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
