package drivers

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"survey-cruncher-go/internal/types"
)

// MinCompleteRows is the regression floor: fewer complete respondent
// rows than this and the analysis refuses to run.
const MinCompleteRows = 15

// Analyze fits target = intercept + sum(coefficient_i * driver_i) by
// ordinary least squares over the respondents with a recognized ordinal
// answer for the target and every driver, and ranks drivers by
// coefficient. P-values are two-sided t-tests under homoscedastic
// errors; the intercept is not reported.
func Analyze(tbl types.Table, cfg types.DriverConfig) ([]types.DriverResult, error) {
	if err := validate(tbl, cfg); err != nil {
		return nil, err
	}

	// List-wise deletion: a row survives only if target and every driver
	// map onto the ordinal scale.
	var ys []float64
	var xs [][]float64
	for _, row := range tbl.Rows {
		y, ok := ScaleValue(row[cfg.Target])
		if !ok {
			continue
		}
		x := make([]float64, len(cfg.DriverCols))
		complete := true
		for j, d := range cfg.DriverCols {
			v, ok := ScaleValue(row[d])
			if !ok {
				complete = false
				break
			}
			x[j] = v
		}
		if !complete {
			continue
		}
		ys = append(ys, y)
		xs = append(xs, x)
	}

	n := len(ys)
	if n < MinCompleteRows {
		return nil, &types.InsufficientDataError{Needed: MinCompleteRows, Got: n}
	}

	coefs, pvals, err := fitOLS(xs, ys)
	if err != nil {
		return nil, err
	}

	out := make([]types.DriverResult, len(cfg.DriverCols))
	for j, d := range cfg.DriverCols {
		out[j] = types.DriverResult{
			Driver:      d,
			Coefficient: roundTo(coefs[j], 3),
			PValue:      roundTo(pvals[j], 4),
			Significant: pvals[j] < 0.05,
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Coefficient > out[j].Coefficient
	})
	return out, nil
}

func validate(tbl types.Table, cfg types.DriverConfig) error {
	if cfg.Target == "" {
		return types.NewConfigurationError("no target column selected")
	}
	if len(cfg.DriverCols) == 0 {
		return types.NewConfigurationError("no driver columns selected")
	}
	have := make(map[string]struct{}, len(tbl.Columns))
	for _, c := range tbl.Columns {
		have[c] = struct{}{}
	}
	if _, ok := have[cfg.Target]; !ok {
		return types.NewConfigurationError("target column %q not in table", cfg.Target)
	}
	for _, d := range cfg.DriverCols {
		if d == cfg.Target {
			return types.NewConfigurationError("driver column %q duplicates the target", d)
		}
		if _, ok := have[d]; !ok {
			return types.NewConfigurationError("driver column %q not in table", d)
		}
	}
	return nil
}

// fitOLS solves the normal equations via QR and derives two-sided
// t-test p-values for the driver coefficients (intercept excluded from
// the returned slices).
func fitOLS(xs [][]float64, ys []float64) (coefs, pvals []float64, err error) {
	n := len(ys)
	k := len(xs[0])
	p := k + 1

	X := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, 1)
		for j := 0; j < k; j++ {
			X.Set(i, j+1, xs[i][j])
		}
	}
	y := mat.NewVecDense(n, ys)

	dof := n - p
	if dof <= 0 {
		return nil, nil, fmt.Errorf("ols: %d observations cannot support %d coefficients", n, p)
	}

	var qr mat.QR
	qr.Factorize(X)
	beta := mat.NewVecDense(p, nil)
	if err := qr.SolveVecTo(beta, false, y); err != nil {
		return nil, nil, fmt.Errorf("ols solve: %w", err)
	}

	// Residual variance under homoscedastic errors.
	fitted := mat.NewVecDense(n, nil)
	fitted.MulVec(X, beta)
	rss := 0.0
	for i := 0; i < n; i++ {
		r := ys[i] - fitted.AtVec(i)
		rss += r * r
	}
	sigma2 := rss / float64(dof)

	var xtx, xtxInv mat.Dense
	xtx.Mul(X.T(), X)
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, nil, fmt.Errorf("ols covariance: %w", err)
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dof)}
	coefs = make([]float64, k)
	pvals = make([]float64, k)
	for j := 1; j < p; j++ {
		b := beta.AtVec(j)
		se := math.Sqrt(sigma2 * xtxInv.At(j, j))
		pv := 0.0
		if se > 0 {
			pv = 2 * tDist.Survival(math.Abs(b/se))
		}
		coefs[j-1] = b
		pvals[j-1] = pv
	}
	return coefs, pvals, nil
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
