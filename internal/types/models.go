package types

// Table is a wide respondent table already parsed from CSV or Excel.
// Rows are keyed by column header; a missing key means the cell was
// absent at the source.
type Table struct {
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

// CrunchConfig carries the caller's column-role selections for one
// cross-tab run.
type CrunchConfig struct {
	IDColumn       string   `json:"id_column"`
	DemoColumns    []string `json:"demographic_columns"`
	QuestionCols   []string `json:"question_columns"`
	SplitMulticode bool     `json:"split_multicode"`
}

// DriverConfig selects the target and predictor columns for a key
// driver analysis.
type DriverConfig struct {
	Target     string   `json:"target_column"`
	DriverCols []string `json:"driver_columns"`
}

// LongRecord is one unpivoted (respondent, question, answer) row. Demos
// holds the respondent's value for every selected demographic column.
type LongRecord struct {
	ID       string
	Demos    map[string]string
	Question string
	Answer   string
}
