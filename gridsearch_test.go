package fcusum

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestFrequencyGrid(t *testing.T) {
	grid := FrequencyGrid(3)
	if len(grid) != 291 {
		t.Fatalf("grid length = %d; want 291", len(grid))
	}
	if grid[0] != 0.1 {
		t.Errorf("first grid point = %v; want 0.1", grid[0])
	}
	if grid[len(grid)-1] != 3.0 {
		t.Errorf("last grid point = %v; want 3.0", grid[len(grid)-1])
	}

	for i := 1; i < len(grid); i++ {
		if grid[i] <= grid[i-1] {
			t.Fatalf("grid not strictly increasing at %d: %v <= %v", i, grid[i], grid[i-1])
		}
		if !almostEqual(grid[i]-grid[i-1], 0.01, 1e-9) {
			t.Fatalf("grid step at %d = %v; want 0.01", i, grid[i]-grid[i-1])
		}
	}
}

func TestFrequencyGridPartialStep(t *testing.T) {
	// kstar between grid points: last point is the largest value <= kstar
	grid := FrequencyGrid(0.155)
	if len(grid) == 0 {
		t.Fatal("grid is empty")
	}
	if last := grid[len(grid)-1]; !almostEqual(last, 0.15, 1e-9) {
		t.Errorf("last grid point = %v; want 0.15", last)
	}

	if grid := FrequencyGrid(0.05); grid != nil {
		t.Errorf("grid below the origin = %v; want nil", grid)
	}
}

// gridSeries builds a seeded series pair with a smooth break component so
// the search has a genuine minimum away from the grid edges.
func gridSeries(n int) (y []float64, x *mat.Dense) {
	rng := rand.New(rand.NewSource(11))

	x = mat.NewDense(n, 1, nil)
	y = make([]float64, n)
	level := 0.0
	for i := 0; i < n; i++ {
		level += rng.NormFloat64()
		x.Set(i, 0, level)

		breakTerm := 1.5 * math.Cos(2*math.Pi*1.0*float64(i+1)/float64(n))
		y[i] = 1 + 0.5*level + breakTerm + 0.2*rng.NormFloat64()
	}
	return y, x
}

func TestSearchFrequenciesOptimality(t *testing.T) {
	const kstar = 3.0
	y, x := gridSeries(80)

	sel, err := SearchFrequencies(y, x, kstar)
	if err != nil {
		t.Fatalf("SearchFrequencies: %v", err)
	}

	if sel.Frequency < 0.1 || sel.Frequency > kstar {
		t.Errorf("selected frequency %v outside [0.1, %v]", sel.Frequency, kstar)
	}

	// Recompute every candidate sequentially; the winner must be no worse
	// than any of them, and its stored score must match a direct refit.
	for _, f := range FrequencyGrid(kstar) {
		m, err := fitOLS(y, fourierDesign(x, f))
		if err != nil {
			t.Fatalf("refit at f=%v: %v", f, err)
		}
		score := correctedAIC(m)
		if score < sel.Score && !almostEqual(score, sel.Score, 1e-9) {
			t.Errorf("candidate f=%v scores %v, better than selected %v at f=%v",
				f, score, sel.Score, sel.Frequency)
		}
		if f == sel.Frequency && !almostEqual(score, sel.Score, 1e-9) {
			t.Errorf("stored score %v != refit score %v at selected frequency", sel.Score, score)
		}
	}
}

func TestSearchFrequenciesDeterministic(t *testing.T) {
	// The parallel scoring must not leak completion order into the result
	y, x := gridSeries(60)

	first, err := SearchFrequencies(y, x, 3)
	if err != nil {
		t.Fatalf("SearchFrequencies: %v", err)
	}

	for run := 0; run < 5; run++ {
		sel, err := SearchFrequencies(y, x, 3)
		if err != nil {
			t.Fatalf("run %d: %v", run, err)
		}
		if sel.Frequency != first.Frequency || sel.Score != first.Score {
			t.Fatalf("run %d: selected (%v, %v); first run selected (%v, %v)",
				run, sel.Frequency, sel.Score, first.Frequency, first.Score)
		}
	}
}

func TestSearchFrequenciesDegenerateFit(t *testing.T) {
	// n=10 with 7 regressor columns gives 10 parameters per candidate,
	// so residual degrees of freedom are negative across the whole grid.
	rng := rand.New(rand.NewSource(3))

	n := 10
	x := mat.NewDense(n, 7, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < 7; j++ {
			x.Set(i, j, rng.NormFloat64())
		}
		y[i] = rng.NormFloat64()
	}

	_, err := SearchFrequencies(y, x, 3)
	var degenerate *DegenerateFitError
	if !errors.As(err, &degenerate) {
		t.Fatalf("err = %v; want DegenerateFitError", err)
	}
	if degenerate.N != n || degenerate.NParams != 10 {
		t.Errorf("error fields N=%d NParams=%d; want %d and 10", degenerate.N, degenerate.NParams, n)
	}
}
