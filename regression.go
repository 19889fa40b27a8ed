package fcusum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// fourierDesign builds the regression design matrix for one candidate
// frequency f: an intercept column, the columns of x, and the pair
// cos(2*pi*f*t/n), sin(2*pi*f*t/n) for t = 1..n.
func fourierDesign(x *mat.Dense, f float64) *mat.Dense {
	n, px := x.Dims()
	k := 1 + px + 2

	X := mat.NewDense(n, k, nil)
	for t := 0; t < n; t++ {
		col := 0
		X.Set(t, col, 1.0)
		col++

		for j := 0; j < px; j++ {
			X.Set(t, col, x.At(t, j))
			col++
		}

		// t is 1-based in the trigonometric terms
		angle := 2 * math.Pi * f * float64(t+1) / float64(n)
		X.Set(t, col, math.Cos(angle))
		X.Set(t, col+1, math.Sin(angle))
	}
	return X
}

// fitOLS regresses y on the columns of X and returns the fitted model.
//
// It first solves the normal equations beta = (X'X)^(-1) X'y. When X'X is
// singular or badly conditioned it falls back to an SVD-based least-squares
// solve, which yields the minimum-norm solution.
func fitOLS(y []float64, X *mat.Dense) (*FittedModel, error) {
	n, k := X.Dims()
	if len(y) != n {
		return nil, fmt.Errorf("fitOLS: y has %d rows, X has %d", len(y), n)
	}

	yVec := mat.NewVecDense(n, nil)
	for i, v := range y {
		yVec.SetVec(i, v)
	}

	beta := mat.NewVecDense(k, nil)

	var xtx mat.Dense
	xtx.Mul(X.T(), X)

	var xtxInv mat.Dense
	if errInv := xtxInv.Inverse(&xtx); errInv == nil {
		// X'X is invertible: standard OLS
		var xty mat.VecDense
		xty.MulVec(X.T(), yVec)

		var b mat.VecDense
		b.MulVec(&xtxInv, &xty)
		beta.CopyVec(&b)
	} else {
		// Fallback: SVD-based least squares, minimum-norm solution
		var svd mat.SVD
		if ok := svd.Factorize(X, mat.SVDFullU|mat.SVDFullV); !ok {
			return nil, fmt.Errorf("fitOLS: X'X singular and SVD factorization failed: %v", errInv)
		}

		rank := svd.Rank(1e-12)
		if rank > 0 {
			yMat := mat.NewDense(n, 1, nil)
			for i, v := range y {
				yMat.Set(i, 0, v)
			}

			var b mat.Dense
			svd.SolveTo(&b, yMat, rank)
			for i := 0; i < k; i++ {
				beta.SetVec(i, b.At(i, 0))
			}
		}
		// rank == 0 means X is numerically zero; beta stays all zero
	}

	// Residuals u = y - X beta and their sum of squares
	var yHat mat.VecDense
	yHat.MulVec(X, beta)

	residuals := make([]float64, n)
	rss := 0.0
	for i := 0; i < n; i++ {
		u := y[i] - yHat.AtVec(i)
		residuals[i] = u
		rss += u * u
	}

	coeffs := make([]float64, k)
	copy(coeffs, beta.RawVector().Data)

	return &FittedModel{
		Coefficients: coeffs,
		Residuals:    residuals,
		RSS:          rss,
		NParams:      k,
		DF:           n - k,
	}, nil
}
