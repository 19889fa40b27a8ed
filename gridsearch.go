package fcusum

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// gridOrigin is the first candidate frequency; the grid advances from it
// in steps of 0.01.
const gridOrigin = 0.10

// FrequencyGrid returns the candidate frequencies from 0.1 up to kstar in
// steps of 0.01. When kstar is not an exact grid multiple the last point is
// the largest grid value <= kstar. Frequencies are built as j/100 from
// integer j so the grid does not drift past kstar by accumulation.
func FrequencyGrid(kstar float64) []float64 {
	jMax := int(math.Floor(kstar*100 + 1e-9))
	if jMax < 10 {
		return nil
	}

	grid := make([]float64, 0, jMax-10+1)
	for j := 10; j <= jMax; j++ {
		grid = append(grid, float64(j)/100)
	}
	return grid
}

// SearchFrequencies fits one model per grid frequency and returns the one
// with the minimal corrected-AIC score. Ties resolve to the lowest
// frequency. The per-frequency fits are independent, so they are scored by
// a worker pool; each worker writes to a disjoint index of the score slice
// and the argmin runs sequentially afterwards, which keeps tie-breaking
// deterministic regardless of completion order.
//
// Returns DegenerateFitError when every candidate scores non-finite, e.g.
// when the residual degrees of freedom are non-positive across the grid.
func SearchFrequencies(y []float64, x *mat.Dense, kstar float64) (*SelectionResult, error) {
	grid := FrequencyGrid(kstar)
	if len(grid) == 0 {
		return nil, &InvalidArgumentError{
			Reason: "kstar must not be below the first grid frequency 0.1",
		}
	}

	n, px := x.Dims()
	scores := make([]float64, len(grid))

	numWorkers := runtime.NumCPU()
	if numWorkers > len(grid) {
		numWorkers = len(grid)
	}

	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				X := fourierDesign(x, grid[i])
				m, err := fitOLS(y, X)
				if err != nil {
					// An unsolvable candidate is simply never selected
					scores[i] = math.NaN()
					continue
				}
				scores[i] = correctedAIC(m)
			}
		}()
	}

	go func() {
		for i := range grid {
			jobs <- i
		}
		close(jobs)
	}()

	wg.Wait()

	// Argmin in grid order. NaN and +Inf candidates are skipped; -Inf
	// (a perfect fit) is a legitimate winner and the variance check on
	// its residuals happens downstream.
	bestIdx := -1
	bestScore := math.Inf(1)
	for i, s := range scores {
		if math.IsNaN(s) || math.IsInf(s, 1) {
			continue
		}
		if bestIdx == -1 || s < bestScore {
			bestIdx = i
			bestScore = s
		}
	}

	if bestIdx == -1 {
		return nil, &DegenerateFitError{N: n, NParams: 1 + px + 2}
	}

	// Candidates are discarded once scored; refit the winner so only the
	// selected model's residuals and coefficients survive.
	X := fourierDesign(x, grid[bestIdx])
	m, err := fitOLS(y, X)
	if err != nil {
		return nil, err
	}

	return &SelectionResult{
		Model:     m,
		Frequency: grid[bestIdx],
		Score:     bestScore,
	}, nil
}
