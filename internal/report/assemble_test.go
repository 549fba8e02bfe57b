package report

import (
	"reflect"
	"testing"

	"survey-cruncher-go/internal/bases"
	"survey-cruncher-go/internal/crosstab"
	"survey-cruncher-go/internal/types"
	"survey-cruncher-go/internal/unpivot"
)

func assemble(tbl types.Table, cfg types.CrunchConfig) types.Report {
	recs := unpivot.Unpivot(tbl, cfg)
	sz := bases.Compute(tbl, cfg, recs)
	cts := crosstab.Count(recs, cfg.DemoColumns)
	return Assemble(cfg, cts, sz)
}

// The worked example: three respondents, one Region banner, one
// multicode question.
func scenarioTable() (types.Table, types.CrunchConfig) {
	tbl := types.Table{
		Columns: []string{"RID", "Region", "Q1"},
		Rows: []map[string]string{
			{"RID": "r1", "Region": "North", "Q1": "Apple, Banana"},
			{"RID": "r2", "Region": "North", "Q1": "Apple"},
			{"RID": "r3", "Region": "South", "Q1": "Banana"},
		},
	}
	cfg := types.CrunchConfig{
		IDColumn:       "RID",
		DemoColumns:    []string{"Region"},
		QuestionCols:   []string{"Q1"},
		SplitMulticode: true,
	}
	return tbl, cfg
}

func TestAssembleScenario(t *testing.T) {
	tbl, cfg := scenarioTable()
	rep := assemble(tbl, cfg)

	wantCols := []string{"Overall %", "Region: North", "Region: South"}
	if !reflect.DeepEqual(rep.ValueColumns, wantCols) {
		t.Fatalf("value columns = %v, want %v", rep.ValueColumns, wantCols)
	}

	base := rep.Rows[0]
	if base.QuestionKey != types.BaseSizeKey || base.Answer != types.BaseSizeLabel {
		t.Fatalf("first row must be the base-size row, got %+v", base)
	}
	if !reflect.DeepEqual(base.Cells, []float64{3, 2, 1}) {
		t.Errorf("base sizes = %v, want [3 2 1]", base.Cells)
	}

	if len(rep.Rows) != 3 {
		t.Fatalf("expected base row + 2 answer rows, got %d rows", len(rep.Rows))
	}
	apple, banana := rep.Rows[1], rep.Rows[2]
	if apple.Answer != "Apple" || banana.Answer != "Banana" {
		t.Fatalf("answer order wrong: %q then %q", apple.Answer, banana.Answer)
	}
	// Apple: 2 of 3 respondents overall, 2 of 2 in North, 0 of 1 in South
	if !reflect.DeepEqual(apple.Cells, []float64{66.7, 100, 0}) {
		t.Errorf("Apple cells = %v, want [66.7 100 0]", apple.Cells)
	}
	// Banana: 2 of 3 overall, 1 of 2 North, 1 of 1 South
	if !reflect.DeepEqual(banana.Cells, []float64{66.7, 50, 100}) {
		t.Errorf("Banana cells = %v, want [66.7 50 100]", banana.Cells)
	}
}

func TestAssembleBlanksRepeatedQuestionLabels(t *testing.T) {
	tbl, cfg := scenarioTable()
	rep := assemble(tbl, cfg)

	if rep.Rows[1].Question != "Q1" {
		t.Errorf("first row of a question block keeps its label, got %q", rep.Rows[1].Question)
	}
	if rep.Rows[2].Question != "" {
		t.Errorf("repeated question label must be blanked, got %q", rep.Rows[2].Question)
	}
	if rep.Rows[2].QuestionKey != "Q1" {
		t.Errorf("grouping key must be retained, got %q", rep.Rows[2].QuestionKey)
	}
}

func TestAssembleQuestionWithNoAnswers(t *testing.T) {
	tbl := types.Table{
		Columns: []string{"RID", "Region", "Q1", "Q2"},
		Rows: []map[string]string{
			{"RID": "r1", "Region": "North", "Q1": "Apple", "Q2": ""},
			{"RID": "r2", "Region": "South", "Q1": "Apple", "Q2": "-"},
		},
	}
	cfg := types.CrunchConfig{IDColumn: "RID", DemoColumns: []string{"Region"}, QuestionCols: []string{"Q1", "Q2"}}
	rep := assemble(tbl, cfg)

	last := rep.Rows[len(rep.Rows)-1]
	if last.QuestionKey != "Q2" || last.Answer != "" {
		t.Fatalf("selected question without data must still appear, got %+v", last)
	}
	for _, v := range last.Cells {
		if v != 0 {
			t.Errorf("empty question row must be all zero, got %v", last.Cells)
		}
	}
}

func TestAssembleQuestionOrderFollowsSelection(t *testing.T) {
	tbl := types.Table{
		Columns: []string{"RID", "Region", "QA", "QB"},
		Rows: []map[string]string{
			{"RID": "r1", "Region": "North", "QA": "Yes", "QB": "No"},
		},
	}
	cfg := types.CrunchConfig{IDColumn: "RID", DemoColumns: []string{"Region"}, QuestionCols: []string{"QB", "QA"}}
	rep := assemble(tbl, cfg)

	var keys []string
	for _, r := range rep.Rows {
		keys = append(keys, r.QuestionKey)
	}
	want := []string{types.BaseSizeKey, "QB", "QA"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("row order = %v, want %v", keys, want)
	}
}

func TestAssembleRowAndColumnGuarantee(t *testing.T) {
	tbl, cfg := scenarioTable()
	rep := assemble(tbl, cfg)

	// 1 base row + distinct answers per question
	if len(rep.Rows) != 1+2 {
		t.Errorf("row count = %d, want 3", len(rep.Rows))
	}
	// 1 overall column + categories per demographic column
	if len(rep.ValueColumns) != 1+2 {
		t.Errorf("column count = %d, want 3", len(rep.ValueColumns))
	}
	for _, row := range rep.Rows {
		if len(row.Cells) != len(rep.ValueColumns) {
			t.Errorf("row %q has %d cells, want %d", row.Answer, len(row.Cells), len(rep.ValueColumns))
		}
	}
}
