package types

// BaseSizeKey is the grouping key of the leading base-size row, kept
// distinct from any real question name.
const BaseSizeKey = "BASE SIZE"

// BaseSizeLabel is the answer-column label shown on the base-size row.
const BaseSizeLabel = "Total Survey Participants (n)"

// ReportRow is one row of the finished banner table. QuestionKey is the
// retained grouping key; Question is the display label, blanked on every
// row after the first of a question block. Cells align with
// Report.ValueColumns.
type ReportRow struct {
	QuestionKey string    `json:"question_key"`
	Question    string    `json:"question"`
	Answer      string    `json:"answer"`
	Cells       []float64 `json:"cells"`
}

// Report is the finished cross-tab banner table: one base-size row
// followed by one row per (question, answer), one value column per
// banner category plus "Overall %".
type Report struct {
	ValueColumns []string    `json:"value_columns"`
	Rows         []ReportRow `json:"rows"`
}

// DriverResult is one ranked predictor from a key driver analysis.
type DriverResult struct {
	Driver      string  `json:"driver"`
	Coefficient float64 `json:"coefficient"`
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
}
