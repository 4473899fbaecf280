package match

import (
	"cmp"
	"slices"
	"strings"
)

// Levenshtein computes the edit distance between two strings: the minimum
// number of single byte insertions, deletions or substitutions.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	// keep a as the shorter string, only two rows of len(a)+1 are needed
	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Suggest returns up to limit candidates within maxDistance edits of name,
// closest first. Comparison ignores case.
func Suggest(name string, candidates []string, maxDistance, limit int) []string {
	type scored struct {
		name     string
		distance int
	}

	needle := strings.ToLower(name)

	var found []scored
	for _, c := range candidates {
		if d := Levenshtein(needle, strings.ToLower(c)); d <= maxDistance {
			found = append(found, scored{c, d})
		}
	}

	slices.SortFunc(found, func(x, y scored) int {
		return cmp.Or(cmp.Compare(x.distance, y.distance), strings.Compare(x.name, y.name))
	})

	out := make([]string, 0, min(limit, len(found)))
	for _, s := range found {
		if len(out) == limit {
			break
		}
		out = append(out, s.name)
	}

	return out
}
