package fcusum

import "fmt"

// InvalidArgumentError reports a rejected input before any computation runs.
// Reason names the violated condition.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}

// DegenerateFitError reports that every candidate in the frequency grid had
// non-positive residual degrees of freedom, so no model could be selected.
type DegenerateFitError struct {
	N       int // number of observations
	NParams int // parameters per candidate, constant across the grid
}

func (e *DegenerateFitError) Error() string {
	return fmt.Sprintf(
		"degenerate fit: no candidate with positive residual degrees of freedom (n=%d, params=%d)",
		e.N, e.NParams)
}

// DegenerateVarianceError reports that the selected model's residual standard
// deviation is zero or non-finite, so the CUSUM statistic is undefined.
type DegenerateVarianceError struct {
	T      int     // residual count
	StdDev float64 // the offending standard deviation
}

func (e *DegenerateVarianceError) Error() string {
	return fmt.Sprintf(
		"degenerate variance: residual standard deviation %v with %d residuals",
		e.StdDev, e.T)
}

// CriticalValueLookupWarning is non-fatal: the requested (p, kstar)
// combination had no exact table entry after clamping and the lookup fell
// back to the (p=1, k=1) critical values. The test result is still valid,
// just conservative.
type CriticalValueLookupWarning struct {
	P     int     // regressor count as requested
	KStar float64 // frequency bound as requested
}

func (w *CriticalValueLookupWarning) Error() string {
	return fmt.Sprintf(
		"no critical value entry for p=%d, kstar=%v; falling back to the (1, 1) entry",
		w.P, w.KStar)
}
