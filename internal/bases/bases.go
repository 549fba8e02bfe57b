package bases

import (
	"fmt"

	"survey-cruncher-go/internal/scrub"
	"survey-cruncher-go/internal/types"
)

// Sizes holds every percentage denominator, each a count of distinct
// respondent ids, never rows. Category and QuestionCategory are two
// deliberately separate computations: the raw-table category base feeds
// the top base-size row ("how many people are in this group"), while the
// question-specific base divides the in-table percentages so that
// respondents who skipped a question do not dilute it. Do not collapse
// them into one.
type Sizes struct {
	Overall          int
	Category         map[string]int            // "<col>: <cat>" -> distinct ids in raw table
	QuestionOverall  map[string]int            // question -> distinct ids among its long records
	QuestionCategory map[string]map[string]int // question -> "<col>: <cat>" -> distinct ids
	CategoryOrder    map[string][]string       // demo column -> categories, first-seen in raw table
}

// ColumnKey names a banner column for one demographic category.
func ColumnKey(col, cat string) string {
	return fmt.Sprintf("%s: %s", col, cat)
}

// Compute derives all denominators from the raw table and the unpivoted
// records.
func Compute(tbl types.Table, cfg types.CrunchConfig, recs []types.LongRecord) Sizes {
	sz := Sizes{
		Category:         make(map[string]int),
		QuestionOverall:  make(map[string]int),
		QuestionCategory: make(map[string]map[string]int),
		CategoryOrder:    make(map[string][]string),
	}

	// Raw-table side: overall ids and per-category ids, category order
	// by first appearance.
	allIDs := make(map[string]struct{})
	catIDs := make(map[string]map[string]struct{})
	catOrder := make(map[string]*types.OrderedSet)
	for _, d := range cfg.DemoColumns {
		catOrder[d] = types.NewOrderedSet()
	}
	for _, row := range tbl.Rows {
		id := row[cfg.IDColumn]
		allIDs[id] = struct{}{}
		for _, d := range cfg.DemoColumns {
			cat, ok := scrub.Clean(row[d])
			if !ok {
				continue
			}
			catOrder[d].Add(cat)
			key := ColumnKey(d, cat)
			if catIDs[key] == nil {
				catIDs[key] = make(map[string]struct{})
			}
			catIDs[key][id] = struct{}{}
		}
	}
	sz.Overall = len(allIDs)
	for key, ids := range catIDs {
		sz.Category[key] = len(ids)
	}
	for _, d := range cfg.DemoColumns {
		sz.CategoryOrder[d] = catOrder[d].Keys()
	}

	// Long-record side: who actually answered each question, overall and
	// within each category.
	qIDs := make(map[string]map[string]struct{})
	qCatIDs := make(map[string]map[string]map[string]struct{})
	for _, r := range recs {
		if qIDs[r.Question] == nil {
			qIDs[r.Question] = make(map[string]struct{})
		}
		qIDs[r.Question][r.ID] = struct{}{}
		for _, d := range cfg.DemoColumns {
			cat, ok := scrub.Clean(r.Demos[d])
			if !ok {
				continue
			}
			key := ColumnKey(d, cat)
			if qCatIDs[r.Question] == nil {
				qCatIDs[r.Question] = make(map[string]map[string]struct{})
			}
			if qCatIDs[r.Question][key] == nil {
				qCatIDs[r.Question][key] = make(map[string]struct{})
			}
			qCatIDs[r.Question][key][r.ID] = struct{}{}
		}
	}
	for q, ids := range qIDs {
		sz.QuestionOverall[q] = len(ids)
	}
	for q, byCat := range qCatIDs {
		sz.QuestionCategory[q] = make(map[string]int, len(byCat))
		for key, ids := range byCat {
			sz.QuestionCategory[q][key] = len(ids)
		}
	}
	return sz
}
