package outlier

import (
	"fmt"

	"github.com/google/btree"
	"github.com/movetk-go/movetk/trajectory"
)

// frontierItem tracks one candidate chain end: a longest-so-far mutually
// consistent subsequence of the given length terminating at probe index end.
type frontierItem struct {
	length int
	end    int
}

func frontierLess(a, b frontierItem) bool {
	if a.length != b.length {
		return a.length < b.length
	}
	return a.end < b.end
}

// OutputSensitive builds the all-pairs consistency graph implicitly and
// returns a longest chain of indices i1<i2<...<ik with consistent(i_m,
// i_m+1) holding along the chain (spec §4.16). A btree.BTreeG frontier,
// ordered by (chain length, end index), lets each index query the
// longest compatible predecessor by descending length instead of scanning
// every earlier index unconditionally; the search still falls back to a
// full descent when predicates fail for the best-ranked candidates, so
// correctness does not depend on the predicate's structure.
func OutputSensitive(probes []trajectory.Probe, consistent Predicate) ([]int, error) {
	n := len(probes)
	if n == 0 {
		return nil, fmt.Errorf("%w: outlier detection requires at least one probe", trajectory.ErrInvalidInput)
	}

	dp := make([]int, n)
	prev := make([]int, n)
	frontier := btree.NewG[frontierItem](32, frontierLess)

	bestOverall, bestEnd := 0, 0
	for i := 0; i < n; i++ {
		dp[i] = 1
		prev[i] = -1

		bestLen, bestJ := 0, -1
		frontier.Descend(func(it frontierItem) bool {
			if it.length <= bestLen {
				return false
			}
			if consistent(probes[it.end], probes[i]) {
				bestLen, bestJ = it.length, it.end
				return false
			}
			return true
		})
		if bestJ >= 0 {
			dp[i] = bestLen + 1
			prev[i] = bestJ
		}

		frontier.ReplaceOrInsert(frontierItem{length: dp[i], end: i})
		if dp[i] > bestOverall {
			bestOverall, bestEnd = dp[i], i
		}
	}

	chain := make([]int, 0, bestOverall)
	for i := bestEnd; i >= 0; i = prev[i] {
		chain = append(chain, i)
		if prev[i] < 0 {
			break
		}
	}
	for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
		chain[l], chain[r] = chain[r], chain[l]
	}
	return chain, nil
}
