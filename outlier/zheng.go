package outlier

import (
	"fmt"

	"github.com/movetk-go/movetk/trajectory"
)

// Zheng keeps probe i iff it is consistent with at least tau of the probes
// in its trailing and leading window of size w, i.e. indices in
// [i-w, i+w] \ {i} clamped to the trajectory bounds (spec §4.16). Probes at
// the ends of the trajectory are judged against whatever window neighbours
// exist, not padded.
func Zheng(probes []trajectory.Probe, consistent Predicate, w int, tau int) ([]int, error) {
	n := len(probes)
	if n == 0 {
		return nil, fmt.Errorf("%w: outlier detection requires at least one probe", trajectory.ErrInvalidInput)
	}
	if w <= 0 {
		return nil, fmt.Errorf("%w: Zheng sliding window size must be positive, got w=%d", trajectory.ErrInvalidInput, w)
	}

	var kept []int
	for i := 0; i < n; i++ {
		lo := i - w
		if lo < 0 {
			lo = 0
		}
		hi := i + w
		if hi > n-1 {
			hi = n - 1
		}
		count := 0
		for j := lo; j <= hi; j++ {
			if j == i {
				continue
			}
			if consistent(probes[i], probes[j]) {
				count++
			}
		}
		if count >= tau {
			kept = append(kept, i)
		}
	}
	return kept, nil
}
