package match

import (
	"sort"
)

// MinScore is the lowest similarity a candidate needs to be suggested.
const MinScore = 0.6

// Candidate is a known name with its similarity to the query.
type Candidate struct {
	Name   string
	Score  float64
	Shared int // Words in common with the query
}

// Rank scores every candidate against name and returns those reaching
// MinScore, best first. Equal scores are ordered by shared words, then by
// input order. A candidate equal to name is skipped.
func Rank(name string, candidates []string) []Candidate {
	query := NormalizeName(name)
	words := Tokens(name)

	var out []Candidate

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(query, NormalizeName(c))
		if score < MinScore {
			continue
		}

		out = append(out, Candidate{Name: c, Score: score, Shared: shared(words, Tokens(c))})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Shared > out[j].Shared
	})

	return out
}

// Suggest returns at most limit candidate names closest to name.
func Suggest(name string, candidates []string, limit int) []string {
	ranked := Rank(name, candidates)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	names := make([]string, 0, len(ranked))
	for _, c := range ranked {
		names = append(names, c.Name)
	}

	return names
}

// shared counts the words of a that also occur in b.
func shared(a, b []string) int {
	in := make(map[string]bool, len(b))
	for _, w := range b {
		in[w] = true
	}

	n := 0
	for _, w := range a {
		if in[w] {
			n++
		}
	}

	return n
}
