package dataset

import (
	"survey-cruncher-go/internal/logger"
	"survey-cruncher-go/internal/scrub"
	"survey-cruncher-go/internal/types"
)

// ColumnProfile is a quick shape check for one column: how many rows
// carry a usable value and how many distinct values appear. Helps the
// caller spot id, demographic and question columns before mapping them.
type ColumnProfile struct {
	Name           string `json:"name"`
	NonBlank       int    `json:"non_blank"`
	DistinctValues int    `json:"distinct_values"`
}

type TableSummary struct {
	TotalRespondents int             `json:"total_respondents"`
	TotalColumns     int             `json:"total_columns"`
	Columns          []ColumnProfile `json:"columns"`
}

// Summarize profiles the loaded table.
func Summarize(tbl types.Table) TableSummary {
	log := logger.New().WithComponent("dataset.summary")
	sum := TableSummary{
		TotalRespondents: len(tbl.Rows),
		TotalColumns:     len(tbl.Columns),
	}
	for _, col := range tbl.Columns {
		distinct := map[string]struct{}{}
		nonBlank := 0
		for _, row := range tbl.Rows {
			v, ok := scrub.Clean(row[col])
			if !ok {
				continue
			}
			nonBlank++
			distinct[v] = struct{}{}
		}
		sum.Columns = append(sum.Columns, ColumnProfile{
			Name:           col,
			NonBlank:       nonBlank,
			DistinctValues: len(distinct),
		})
	}
	log.WithFields(map[string]interface{}{
		"respondents": sum.TotalRespondents,
		"columns":     sum.TotalColumns,
	}).Info("table summarized")
	return sum
}
