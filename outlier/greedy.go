package outlier

import (
	"fmt"

	"github.com/movetk-go/movetk/trajectory"
)

// Greedy keeps p0 and then scans left to right, accepting a probe iff it is
// consistent with the last accepted probe (spec §4.16). Returns the kept
// indices in trajectory order.
func Greedy(probes []trajectory.Probe, consistent Predicate) ([]int, error) {
	if len(probes) == 0 {
		return nil, fmt.Errorf("%w: outlier detection requires at least one probe", trajectory.ErrInvalidInput)
	}
	kept := []int{0}
	last := 0
	for i := 1; i < len(probes); i++ {
		if consistent(probes[last], probes[i]) {
			kept = append(kept, i)
			last = i
		}
	}
	return kept, nil
}

// greedyFrom runs the same left-to-right greedy scan starting from anchor,
// used by SmartGreedy to try every possible starting point.
func greedyFrom(probes []trajectory.Probe, anchor int, consistent Predicate) []int {
	kept := []int{anchor}
	last := anchor
	for i := anchor + 1; i < len(probes); i++ {
		if consistent(probes[last], probes[i]) {
			kept = append(kept, i)
			last = i
		}
	}
	return kept
}
