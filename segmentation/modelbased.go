package segmentation

import (
	"fmt"
	"math"

	"github.com/movetk-go/movetk/kernel"
)

// LogLikelihood scores a single trajectory sample against a candidate
// model parameter, used by ModelBasedSegmentation (spec §4.14).
type LogLikelihood[Row, Col any] func(row Row, col Col) float64

// ModelBasedSegmentation assigns each row (trajectory sample) the
// best-scoring column (candidate model parameter) under an information
// criterion that penalizes switching models, then emits the row indices
// where the best-scoring column changes (spec §4.14). penalty is the
// information-criterion's fixed per-segment cost; empty rows or cols are
// reported as an error.
func ModelBasedSegmentation[Row, Col any](rows []Row, cols []Col, ll LogLikelihood[Row, Col], penalty float64) ([]int, error) {
	numRows := len(rows)
	numCols := len(cols)
	if numRows == 0 || numCols == 0 {
		return nil, fmt.Errorf("model-based segmentation requires non-empty rows and columns")
	}

	ic := func(logLikelihood float64) float64 { return -2*logLikelihood + penalty }

	dp := make([][]float64, numRows)
	row0 := make([]float64, numCols)
	for j, c := range cols {
		row0[j] = ic(ll(rows[0], c))
	}
	dp[0] = row0
	minIC := minOf(row0)

	for i := 1; i < numRows; i++ {
		row := make([]float64, numCols)
		for j, c := range cols {
			logL := ll(rows[i], c)
			extend := dp[i-1][j]
			start := minIC + penalty
			row[j] = math.Min(extend, start) - 2*logL
		}
		dp[i] = row
		minIC = minOf(row)
	}

	positions := make([]int, numRows)
	for i, row := range dp {
		positions[i] = argmin(row)
	}

	var breakpoints []int
	for i := 0; i < numRows-1; i++ {
		if positions[i] != positions[i+1] {
			kernel.LogDebugf("segmentation: backtrack at row %d: column %d -> %d", i, positions[i], positions[i+1])
			breakpoints = append(breakpoints, i)
		}
	}
	breakpoints = append(breakpoints, numRows-1)
	return breakpoints, nil
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func argmin(values []float64) int {
	best := 0
	for i, v := range values {
		if v < values[best] {
			best = i
		}
	}
	return best
}
