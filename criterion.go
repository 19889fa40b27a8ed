package fcusum

import "math"

// correctedAIC scores a fitted model with the finite-sample-corrected AIC:
//
//	AICc = n*ln(RSS/n) + 2p + 2p(p+1)/(n-p-1)
//
// where n is the number of residuals and p the number of estimated
// parameters. When n-p-1 <= 0 the correction is undefined; the score is
// +Inf so such a candidate is never selected, rather than letting a NaN
// leak into the comparisons.
func correctedAIC(m *FittedModel) float64 {
	n := float64(len(m.Residuals))
	p := float64(m.NParams)

	if n-p-1 <= 0 {
		return math.Inf(1)
	}

	aic := n*math.Log(m.RSS/n) + 2*p
	return aic + 2*p*(p+1)/(n-p-1)
}
