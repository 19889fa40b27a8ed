package fcusum

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Run tests the null of cointegration between y and a single regressor x,
// scanning Fourier frequencies up to kstar. It is a convenience wrapper
// around RunMatrix for the one-column case.
func Run(y, x []float64, kstar float64) (*TestResult, error) {
	if x == nil {
		return nil, &InvalidArgumentError{Reason: "x must be provided"}
	}
	if len(x) == 0 {
		return nil, &InvalidArgumentError{Reason: "x must not be empty"}
	}

	xm := mat.NewDense(len(x), 1, nil)
	for i, v := range x {
		xm.Set(i, 0, v)
	}
	return RunMatrix(y, xm, kstar)
}

// RunMatrix runs the full test pipeline: validate, select the best Fourier
// frequency by corrected AIC, compute the CUSUM statistic of the selected
// model's residuals, look up the critical values for (ncol(x), kstar), and
// apply the decision rule.
//
// Fatal conditions return a typed error and no partial result:
// InvalidArgumentError for rejected inputs, DegenerateFitError when no grid
// candidate has positive residual degrees of freedom, and
// DegenerateVarianceError for constant residuals. A failed critical value
// lookup is non-fatal and is reported on TestResult.Warning.
func RunMatrix(y []float64, x *mat.Dense, kstar float64) (*TestResult, error) {
	if err := validate(y, x, kstar); err != nil {
		return nil, err
	}

	sel, err := SearchFrequencies(y, x, kstar)
	if err != nil {
		return nil, err
	}

	cus, err := CusumStatistic(sel.Model.Residuals)
	if err != nil {
		return nil, err
	}

	_, px := x.Dims()
	cv, pAdj, kAdj, warn := LookupCriticalValues(px, kstar)

	decision, marker := decide(cus, cv)

	return &TestResult{
		Statistic:      cus,
		CriticalValues: cv,
		PAdj:           pAdj,
		KAdj:           kAdj,
		KStar:          kstar,
		BestFrequency:  sel.Frequency,
		Decision:       decision,
		Marker:         marker,
		Model:          sel.Model,
		Warning:        warn,
	}, nil
}

// validate applies the entry checks in order, failing fast on the first
// violated condition.
func validate(y []float64, x *mat.Dense, kstar float64) error {
	if y == nil {
		return &InvalidArgumentError{Reason: "y must be provided"}
	}
	if len(y) == 0 {
		return &InvalidArgumentError{Reason: "y must not be empty"}
	}
	if x == nil {
		return &InvalidArgumentError{Reason: "x must be provided"}
	}
	if math.IsNaN(kstar) || math.IsInf(kstar, 0) || kstar <= 0 {
		return &InvalidArgumentError{Reason: "kstar must be a positive real number"}
	}

	rows, cols := x.Dims()
	if cols < 1 {
		return &InvalidArgumentError{Reason: "x must have at least one column"}
	}
	if rows != len(y) {
		return &InvalidArgumentError{Reason: "y and x must have the same number of rows"}
	}
	if len(y) < 10 {
		return &InvalidArgumentError{Reason: "need at least 10 observations"}
	}
	if kstar < gridOrigin {
		return &InvalidArgumentError{Reason: "kstar must not be below the first grid frequency 0.1"}
	}
	return nil
}

// decide applies the top-down decision rule; the first matching tier wins.
func decide(cus float64, cv CriticalValues) (decision, marker string) {
	switch {
	case cus > cv.OnePct:
		return DecisionReject1, "***"
	case cus > cv.FivePct:
		return DecisionReject5, "**"
	case cus > cv.TenPct:
		return DecisionReject10, "*"
	default:
		return DecisionFailToReject, ""
	}
}
