package pipeline

import (
	"time"

	"survey-cruncher-go/internal/bases"
	"survey-cruncher-go/internal/crosstab"
	"survey-cruncher-go/internal/logger"
	"survey-cruncher-go/internal/report"
	"survey-cruncher-go/internal/types"
	"survey-cruncher-go/internal/unpivot"
)

// Crunch runs the full cross-tab pipeline for one invocation:
// unpivot -> base sizes -> counts -> assembled banner table. Everything
// in between is transient; either a complete report comes back or an
// error and no report.
func Crunch(tbl types.Table, cfg types.CrunchConfig) (types.Report, error) {
	log := logger.New().WithComponent("pipeline")
	if err := validate(tbl, cfg); err != nil {
		log.WithError(err).Warn("rejected crunch config")
		return types.Report{}, err
	}

	start := time.Now()
	recs := unpivot.Unpivot(tbl, cfg)
	sz := bases.Compute(tbl, cfg, recs)
	cts := crosstab.Count(recs, cfg.DemoColumns)
	rep := report.Assemble(cfg, cts, sz)

	log.WithFields(map[string]interface{}{
		"respondents":  sz.Overall,
		"long_records": len(recs),
		"questions":    len(cfg.QuestionCols),
		"report_rows":  len(rep.Rows),
		"report_cols":  len(rep.ValueColumns),
		"duration_ms":  time.Since(start).Milliseconds(),
	}).Info("crunch complete")
	return rep, nil
}

func validate(tbl types.Table, cfg types.CrunchConfig) error {
	if cfg.IDColumn == "" {
		return types.NewConfigurationError("no response id column selected")
	}
	if len(cfg.DemoColumns) == 0 {
		return types.NewConfigurationError("no demographic columns selected")
	}
	if len(cfg.QuestionCols) == 0 {
		return types.NewConfigurationError("no question columns selected")
	}
	have := make(map[string]struct{}, len(tbl.Columns))
	for _, c := range tbl.Columns {
		have[c] = struct{}{}
	}
	if _, ok := have[cfg.IDColumn]; !ok {
		return types.NewConfigurationError("id column %q not in table", cfg.IDColumn)
	}
	for _, d := range cfg.DemoColumns {
		if _, ok := have[d]; !ok {
			return types.NewConfigurationError("demographic column %q not in table", d)
		}
	}
	for _, q := range cfg.QuestionCols {
		if _, ok := have[q]; !ok {
			return types.NewConfigurationError("question column %q not in table", q)
		}
	}
	return nil
}
