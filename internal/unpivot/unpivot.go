package unpivot

import (
	"survey-cruncher-go/internal/scrub"
	"survey-cruncher-go/internal/types"
)

// Unpivot reshapes the wide respondent table into long records, one per
// (respondent, question, answer token). A respondent who left a question
// blank contributes no records for it, so they never count toward that
// question's base. With splitMulticode a comma-separated cell fans out
// into one record per non-blank token, all sharing the respondent id and
// demographics.
func Unpivot(tbl types.Table, cfg types.CrunchConfig) []types.LongRecord {
	var out []types.LongRecord
	for _, row := range tbl.Rows {
		id := row[cfg.IDColumn]
		demos := make(map[string]string, len(cfg.DemoColumns))
		for _, d := range cfg.DemoColumns {
			demos[d] = row[d]
		}
		for _, q := range cfg.QuestionCols {
			raw, present := row[q]
			if !present {
				continue
			}
			cleaned, ok := scrub.Clean(raw)
			if !ok {
				continue
			}
			if cfg.SplitMulticode {
				for _, tok := range scrub.CleanTokens(cleaned) {
					out = append(out, types.LongRecord{ID: id, Demos: demos, Question: q, Answer: tok})
				}
			} else {
				out = append(out, types.LongRecord{ID: id, Demos: demos, Question: q, Answer: cleaned})
			}
		}
	}
	return out
}
