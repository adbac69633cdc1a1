package main

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestions = 3

// suggest returns the candidates closest to input, best first. Candidates further
// than a third of the input length (minimum two edits) are dropped.
func suggest(input string, candidates []string) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil
	}
	limit := len(input) / 3
	if limit < 2 {
		limit = 2
	}

	type match struct {
		id       string
		distance int
	}
	var matches []match
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(input, strings.ToLower(c))
		if strings.HasPrefix(c, input) || strings.HasPrefix(input, c) {
			d = min(d, 1)
		}
		if d <= limit {
			matches = append(matches, match{id: c, distance: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].id < matches[j].id
	})

	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.id)
	}
	return out
}
