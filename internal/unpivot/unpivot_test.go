package unpivot

import (
	"testing"

	"survey-cruncher-go/internal/types"
)

func sampleTable() types.Table {
	return types.Table{
		Columns: []string{"RID", "Region", "Q1", "Q2"},
		Rows: []map[string]string{
			{"RID": "r1", "Region": "North", "Q1": "Apple, Banana", "Q2": "Agree"},
			{"RID": "r2", "Region": "South", "Q1": "Apple", "Q2": "-"},
			{"RID": "r3", "Region": "North", "Q1": "", "Q2": "Neutral"},
		},
	}
}

func TestUnpivotSingleCode(t *testing.T) {
	cfg := types.CrunchConfig{
		IDColumn:     "RID",
		DemoColumns:  []string{"Region"},
		QuestionCols: []string{"Q1", "Q2"},
	}
	recs := Unpivot(sampleTable(), cfg)

	// r1: Q1 (whole cell) + Q2; r2: Q1 only ("-" is blank); r3: Q2 only
	if len(recs) != 4 {
		t.Fatalf("expected 4 long records, got %d", len(recs))
	}
	if recs[0].Answer != "Apple, Banana" {
		t.Errorf("multicode cell must stay whole without splitting, got %q", recs[0].Answer)
	}
	if recs[0].Demos["Region"] != "North" {
		t.Errorf("demographics not carried: %v", recs[0].Demos)
	}
}

func TestUnpivotMulticodeFanOut(t *testing.T) {
	cfg := types.CrunchConfig{
		IDColumn:       "RID",
		DemoColumns:    []string{"Region"},
		QuestionCols:   []string{"Q1"},
		SplitMulticode: true,
	}
	recs := Unpivot(sampleTable(), cfg)

	// r1 fans out to Apple + Banana, r2 keeps Apple, r3 contributes nothing
	if len(recs) != 3 {
		t.Fatalf("expected 3 long records, got %d", len(recs))
	}
	perID := map[string]int{}
	for _, r := range recs {
		perID[r.ID]++
		if r.Question != "Q1" {
			t.Errorf("unexpected question %q", r.Question)
		}
	}
	if perID["r1"] != 2 || perID["r2"] != 1 || perID["r3"] != 0 {
		t.Errorf("fan-out counts wrong: %v", perID)
	}
	for _, r := range recs[:2] {
		if r.ID != "r1" {
			t.Errorf("fan-out records must share the respondent id, got %q", r.ID)
		}
	}
}

func TestUnpivotDropsBlankAndMissing(t *testing.T) {
	tbl := types.Table{
		Columns: []string{"RID", "Region", "Q1"},
		Rows: []map[string]string{
			{"RID": "r1", "Region": "North"}, // Q1 missing at source
			{"RID": "r2", "Region": "South", "Q1": "nan"},
			{"RID": "r3", "Region": "South", "Q1": "  "},
		},
	}
	cfg := types.CrunchConfig{IDColumn: "RID", DemoColumns: []string{"Region"}, QuestionCols: []string{"Q1"}}
	if recs := Unpivot(tbl, cfg); len(recs) != 0 {
		t.Fatalf("blank answers must yield zero long records, got %d", len(recs))
	}
}

func TestUnpivotMulticodeSeparatorsOnly(t *testing.T) {
	tbl := types.Table{
		Columns: []string{"RID", "Region", "Q1"},
		Rows: []map[string]string{
			{"RID": "r1", "Region": "North", "Q1": ", ,"},
		},
	}
	cfg := types.CrunchConfig{
		IDColumn:       "RID",
		DemoColumns:    []string{"Region"},
		QuestionCols:   []string{"Q1"},
		SplitMulticode: true,
	}
	if recs := Unpivot(tbl, cfg); len(recs) != 0 {
		t.Fatalf("separator-only cell must yield zero records, got %d", len(recs))
	}
}
