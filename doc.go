// Package fcusum implements a Fourier-augmented CUSUM test for the null of
// cointegration between two time series.
//
// The test fits one OLS regression of y on x plus a cosine/sine pair for each
// candidate frequency on a fixed grid, picks the frequency that minimizes a
// finite-sample-corrected AIC, and compares the normalized maximum of the
// cumulative residual sums of the selected model against tabulated critical
// values. Smooth structural breaks of unknown form in the long-run relation
// are absorbed by the trigonometric terms, so a rejection signals genuine
// instability rather than a gradual shift.
//
// A basic run with a single regressor:
//
//	result, err := fcusum.Run(y, x, fcusum.DefaultKStar)
//	if err != nil {
//		// typed: InvalidArgumentError, DegenerateFitError, DegenerateVarianceError
//	}
//	fmt.Print(fcusum.Summary(result))
//
// The computation is deterministic and stateless; independent calls may run
// concurrently without coordination.
package fcusum
