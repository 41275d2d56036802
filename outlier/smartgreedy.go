package outlier

import (
	"fmt"

	"github.com/movetk-go/movetk/trajectory"
)

// SmartGreedy enumerates the maximal greedy sequence starting from every
// probe as a candidate first-kept point, and returns the longest one, ties
// broken by the earliest starting index (spec §4.16). Plain Greedy commits
// to keeping p0 even when a later start would survive longer; this strategy
// avoids that commitment at the cost of trying every start.
func SmartGreedy(probes []trajectory.Probe, consistent Predicate) ([]int, error) {
	if len(probes) == 0 {
		return nil, fmt.Errorf("%w: outlier detection requires at least one probe", trajectory.ErrInvalidInput)
	}
	best := greedyFrom(probes, 0, consistent)
	for start := 1; start < len(probes); start++ {
		candidate := greedyFrom(probes, start, consistent)
		if len(candidate) > len(best) {
			best = candidate
		}
	}
	return best, nil
}
