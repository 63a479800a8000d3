package suggest

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// Fuzzy score tiers. Exact beats prefix beats substring beats word
// matches; near-miss typos score below every structural match.
const (
	scoreExact     = 100
	scorePrefix    = 90
	scoreSubstring = 80
	scoreWordBase  = 60
	scoreTypoNear  = 50
	scoreTypoFar   = 40
)

// maxTypoDistance bounds the Levenshtein tier
const maxTypoDistance = 2

// Match is a scored spell-name match
type Match struct {
	Name  string
	Score int
}

// ScoreName rates how well query matches a spell name, 0 meaning no match
func ScoreName(query, name string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	n := strings.ToLower(name)
	if q == "" {
		return 0
	}

	if n == q {
		return scoreExact
	}
	if strings.HasPrefix(n, q) {
		return scorePrefix
	}
	if strings.Contains(n, q) {
		return scoreSubstring
	}

	if score := scoreWords(q, n); score > 0 {
		return score
	}

	switch matchr.Levenshtein(q, n) {
	case 1:
		return scoreTypoNear
	case maxTypoDistance:
		return scoreTypoFar
	}
	return 0
}

// scoreWords matches each query word against the name's words; all query
// words must land somewhere for the tier to apply.
func scoreWords(q, n string) int {
	queryWords := strings.Fields(q)
	nameWords := strings.Fields(n)
	if len(queryWords) == 0 || len(nameWords) == 0 {
		return 0
	}

	matched := 0
	for _, nw := range nameWords {
		for _, qw := range queryWords {
			if strings.Contains(nw, qw) {
				matched++
				break
			}
		}
	}
	if matched == 0 {
		return 0
	}

	for _, qw := range queryWords {
		found := false
		for _, nw := range nameWords {
			if strings.Contains(nw, qw) {
				found = true
				break
			}
		}
		if !found {
			return 0
		}
	}

	return scoreWordBase + matched*20/len(nameWords)
}

// RankNames scores every name and returns the top limit matches, best
// first, ties broken alphabetically
func RankNames(query string, names []string, limit int) []Match {
	var matches []Match
	for _, name := range names {
		if score := ScoreName(query, name); score > 0 {
			matches = append(matches, Match{Name: name, Score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Name < matches[j].Name
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
