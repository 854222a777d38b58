package match

import (
	"sort"
)

// MinSimilarity is the lowest Similarity a candidate needs to be suggested.
const MinSimilarity = 0.5

// Suggest returns up to limit candidates similar to name, best first.
// Ties are broken alphabetically so the result is deterministic.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if s := Similarity(name, c); s >= MinSimilarity {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	result := make([]string, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, r.name)
	}

	return result
}
