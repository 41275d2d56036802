package similarity

import (
	"fmt"

	"github.com/movetk-go/movetk/geomutil"
	"github.com/movetk-go/movetk/kernel"
	"github.com/movetk-go/movetk/trajectory"
)

// Match is a matched index pair emitted by LCSS.
type Match struct {
	I, J int
}

// LCSSResult is the outcome of a Longest Common SubSequence computation
// (spec §4.8).
type LCSSResult struct {
	Score   int
	Matches []Match
}

// LCSS computes the epsilon-delta longest common subsequence between
// polylines a and b (spec §4.8), using a single DP row of length m+1. The
// match predicate is ||a_i-b_j|| < epsilon AND |i-j| < delta. For each row
// i, the emitted match is the one realizing that row's running-best DP
// value; on a tie, the earlier (smaller j) match already recorded is kept
// (spec §4.8: "prefer the pair with smaller j").
func LCSS[T kernel.Number](a, b []kernel.Point[T], epsilon T, delta int) (LCSSResult, error) {
	if delta <= 0 {
		return LCSSResult{}, fmt.Errorf("%w: LCSS delta must be positive, got %d", trajectory.ErrInvalidInput, delta)
	}
	if epsilon <= 0 {
		return LCSSResult{}, fmt.Errorf("%w: LCSS epsilon must be positive", trajectory.ErrInvalidInput)
	}
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return LCSSResult{}, fmt.Errorf("%w: LCSS requires non-empty polylines", trajectory.ErrInvalidInput)
	}

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	sqEps := epsilon * epsilon

	var matches []Match
	for i := 1; i <= n; i++ {
		curr[0] = 0
		rowBestVal := -1
		var rowBestMatch Match
		haveRowBest := false
		for j := 1; j <= m; j++ {
			idxDiff := i - j
			if idxDiff < 0 {
				idxDiff = -idxDiff
			}
			matched := idxDiff < delta && geomutil.SqDistPointPoint(a[i-1], b[j-1]) < sqEps
			if matched {
				val := prev[j-1] + 1
				curr[j] = val
				if val > rowBestVal {
					rowBestVal = val
					rowBestMatch = Match{I: i - 1, J: j - 1}
					haveRowBest = true
				}
				// val == rowBestVal: keep the existing, smaller-j match.
			} else {
				val := prev[j]
				if curr[j-1] > val {
					val = curr[j-1]
				}
				curr[j] = val
			}
		}
		if haveRowBest {
			matches = append(matches, rowBestMatch)
		}
		prev, curr = curr, prev
	}

	return LCSSResult{Score: prev[m], Matches: matches}, nil
}
