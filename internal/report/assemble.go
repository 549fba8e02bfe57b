package report

import (
	"survey-cruncher-go/internal/bases"
	"survey-cruncher-go/internal/crosstab"
	"survey-cruncher-go/internal/types"
)

// Assemble joins the overall and demographic percentage blocks into the
// final banner table. Value columns are "Overall %" then one column per
// (demographic column, category), categories in raw-table first-seen
// order. The first row carries the raw-table base sizes; every later row
// is a (question, answer) percentage row. Questions follow the caller's
// selection order, answers their first appearance in the long data.
func Assemble(cfg types.CrunchConfig, cts crosstab.Counts, sz bases.Sizes) types.Report {
	colKeys := []string{"Overall %"}
	for _, d := range cfg.DemoColumns {
		for _, cat := range sz.CategoryOrder[d] {
			colKeys = append(colKeys, bases.ColumnKey(d, cat))
		}
	}

	rep := types.Report{ValueColumns: colKeys}

	baseCells := make([]float64, len(colKeys))
	baseCells[0] = float64(sz.Overall)
	for i, key := range colKeys[1:] {
		baseCells[i+1] = float64(sz.Category[key])
	}
	rep.Rows = append(rep.Rows, types.ReportRow{
		QuestionKey: types.BaseSizeKey,
		Question:    types.BaseSizeKey,
		Answer:      types.BaseSizeLabel,
		Cells:       baseCells,
	})

	for _, q := range cfg.QuestionCols {
		first := true
		for _, ans := range cts.AnswerOrder {
			num, seen := cts.Overall[q][ans]
			if !seen {
				continue
			}
			rep.Rows = append(rep.Rows, percentageRow(q, ans, num, colKeys, cts, sz, &first))
		}
		if first {
			// Selected question with no usable answers: keep it visible
			// with a zero base and all-zero percentages.
			rep.Rows = append(rep.Rows, types.ReportRow{
				QuestionKey: q,
				Question:    q,
				Answer:      "",
				Cells:       make([]float64, len(colKeys)),
			})
		}
	}
	return rep
}

func percentageRow(q, ans string, overallNum int, colKeys []string, cts crosstab.Counts, sz bases.Sizes, first *bool) types.ReportRow {
	cells := make([]float64, len(colKeys))
	cells[0] = crosstab.Percent(overallNum, sz.QuestionOverall[q])
	for i, key := range colKeys[1:] {
		cells[i+1] = crosstab.Percent(cts.Category[q][ans][key], sz.QuestionCategory[q][key])
	}
	row := types.ReportRow{QuestionKey: q, Answer: ans, Cells: cells}
	if *first {
		row.Question = q
		*first = false
	}
	return row
}
