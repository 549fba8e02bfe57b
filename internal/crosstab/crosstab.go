package crosstab

import (
	"math"

	"survey-cruncher-go/internal/bases"
	"survey-cruncher-go/internal/scrub"
	"survey-cruncher-go/internal/types"
)

// Counts holds the cross-tab numerators: distinct respondent ids per
// (question, answer), overall and per banner category. Counting ids
// rather than rows keeps a respondent who picked the same option twice
// in one multicode cell from being counted twice.
type Counts struct {
	Overall     map[string]map[string]int            // question -> answer -> distinct ids
	Category    map[string]map[string]map[string]int // question -> answer -> "<col>: <cat>" -> distinct ids
	AnswerOrder []string                             // first appearance across the full record sequence
}

// Count tallies distinct respondents per (question, answer) cell.
func Count(recs []types.LongRecord, demoCols []string) Counts {
	overall := make(map[string]map[string]map[string]struct{})
	category := make(map[string]map[string]map[string]map[string]struct{})
	order := types.NewOrderedSet()

	for _, r := range recs {
		order.Add(r.Answer)
		if overall[r.Question] == nil {
			overall[r.Question] = make(map[string]map[string]struct{})
		}
		if overall[r.Question][r.Answer] == nil {
			overall[r.Question][r.Answer] = make(map[string]struct{})
		}
		overall[r.Question][r.Answer][r.ID] = struct{}{}

		for _, d := range demoCols {
			cat, ok := scrub.Clean(r.Demos[d])
			if !ok {
				continue
			}
			key := bases.ColumnKey(d, cat)
			if category[r.Question] == nil {
				category[r.Question] = make(map[string]map[string]map[string]struct{})
			}
			if category[r.Question][r.Answer] == nil {
				category[r.Question][r.Answer] = make(map[string]map[string]struct{})
			}
			if category[r.Question][r.Answer][key] == nil {
				category[r.Question][r.Answer][key] = make(map[string]struct{})
			}
			category[r.Question][r.Answer][key][r.ID] = struct{}{}
		}
	}

	cts := Counts{
		Overall:     make(map[string]map[string]int, len(overall)),
		Category:    make(map[string]map[string]map[string]int, len(category)),
		AnswerOrder: order.Keys(),
	}
	for q, byAns := range overall {
		cts.Overall[q] = make(map[string]int, len(byAns))
		for ans, ids := range byAns {
			cts.Overall[q][ans] = len(ids)
		}
	}
	for q, byAns := range category {
		cts.Category[q] = make(map[string]map[string]int, len(byAns))
		for ans, byCat := range byAns {
			cts.Category[q][ans] = make(map[string]int, len(byCat))
			for key, ids := range byCat {
				cts.Category[q][ans][key] = len(ids)
			}
		}
	}
	return cts
}

// Percent divides a numerator by a base and rounds to one decimal. A
// zero or missing base yields 0, not an error.
func Percent(numerator, base int) float64 {
	if base <= 0 {
		return 0
	}
	return math.Round(float64(numerator)/float64(base)*100*10) / 10
}
