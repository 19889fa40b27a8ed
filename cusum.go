package fcusum

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// CusumStatistic computes the normalized CUSUM-of-residuals statistic
//
//	max_i |S_i| / (sd(u) * sqrt(t))
//
// where S_i is the i-th partial sum of the residuals and sd uses Bessel's
// correction (divide by t-1), matching the reference statistical-package
// convention. Returns DegenerateVarianceError when the standard deviation
// is zero or non-finite, which covers constant residuals and t < 2.
func CusumStatistic(residuals []float64) (float64, error) {
	t := len(residuals)
	if t < 2 {
		return 0, &DegenerateVarianceError{T: t}
	}

	lr := math.Sqrt(stat.Variance(residuals, nil))
	if lr == 0 || math.IsNaN(lr) || math.IsInf(lr, 0) {
		return 0, &DegenerateVarianceError{T: t, StdDev: lr}
	}

	maxAbs := 0.0
	sum := 0.0
	for _, u := range residuals {
		sum += u
		if abs := math.Abs(sum); abs > maxAbs {
			maxAbs = abs
		}
	}

	return maxAbs / (lr * math.Sqrt(float64(t))), nil
}
