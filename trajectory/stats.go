package trajectory

import (
	"fmt"
	"sort"

	"github.com/movetk-go/movetk/geoproj"
)

// TimeDiffs returns the n-1 consecutive timestamp differences of probes.
func TimeDiffs(probes []Probe) []float64 {
	if len(probes) < 2 {
		return nil
	}
	out := make([]float64, len(probes)-1)
	for i := 1; i < len(probes); i++ {
		out[i-1] = probes[i].Timestamp - probes[i-1].Timestamp
	}
	return out
}

// Distances returns the n-1 consecutive great-circle distances (metres)
// between probes, via Haversine.
func Distances(probes []Probe) []float64 {
	if len(probes) < 2 {
		return nil
	}
	out := make([]float64, len(probes)-1)
	for i := 1; i < len(probes); i++ {
		out[i-1] = geoproj.Haversine(probes[i-1].Lat, probes[i-1].Lon, probes[i].Lat, probes[i].Lon)
	}
	return out
}

// Speeds returns the n-1 average speeds (metres/second) between
// consecutive probes: Distances(probes)[i] / TimeDiffs(probes)[i].
func Speeds(probes []Probe) []float64 {
	dist := Distances(probes)
	dt := TimeDiffs(probes)
	out := make([]float64, len(dist))
	for i := range dist {
		out[i] = dist[i] / dt[i]
	}
	return out
}

// Headings returns the n-1 initial great-circle bearings between
// consecutive probes, each normalised to [0,360) (spec §4.18).
func Headings(probes []Probe) []float64 {
	if len(probes) < 2 {
		return nil
	}
	out := make([]float64, len(probes)-1)
	for i := 1; i < len(probes); i++ {
		out[i-1] = geoproj.Bearing(probes[i-1].Lat, probes[i-1].Lon, probes[i].Lat, probes[i].Lon)
	}
	return out
}

// IsSequence reports whether vs is a permutation of {1,...,len(vs)} by the
// necessary-condition check of spec §4.18: the sum of vs must equal
// last*(last+1)/2 where last = len(vs).
func IsSequence(vs []int) bool {
	n := len(vs)
	sum := 0
	for _, v := range vs {
		sum += v
	}
	return sum == n*(n+1)/2
}

// MinNonZeroElement returns the smallest strictly-positive element of vs
// and true, or (0, false) if vs has no positive elements.
func MinNonZeroElement(vs []float64) (float64, bool) {
	found := false
	var min float64
	for _, v := range vs {
		if v <= 0 {
			continue
		}
		if !found || v < min {
			min = v
			found = true
		}
	}
	return min, found
}

// Interval is a closed real interval [Start, End].
type Interval struct {
	Start, End float64
}

// MergeIntervals sorts a copy of ivs descending by Start, then sweeps it and
// coalesces overlapping pairs (ivs is not modified), returning the merged, non-overlapping result
// in ascending order of Start (spec §4.18, O(n log n)).
func MergeIntervals(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return ivs
	}
	sorted := make([]Interval, len(ivs))
	copy(sorted, ivs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start > sorted[j].Start })

	// Sweep ascending (reverse the descending sort) coalescing overlaps.
	merged := make([]Interval, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		cur := sorted[i]
		if len(merged) == 0 {
			merged = append(merged, cur)
			continue
		}
		last := &merged[len(merged)-1]
		if cur.Start <= last.End {
			if cur.End > last.End {
				last.End = cur.End
			}
			continue
		}
		merged = append(merged, cur)
	}
	return merged
}

// DominantTimeDifference finds, among the consecutive Δt values of ts, the
// one with the largest count of Δt's (itself included) within tolerance tau. Ties are
// broken by first occurrence (spec §4.18, following the original's forward
// scan in TrajectoryUtils.h — see DESIGN.md).
func DominantTimeDifference(ts []float64, tau float64) (float64, error) {
	diffs := make([]float64, 0, len(ts)-1)
	for i := 1; i < len(ts); i++ {
		diffs = append(diffs, ts[i]-ts[i-1])
	}
	if len(diffs) == 0 {
		return 0, fmt.Errorf("%w: fewer than 2 timestamps", ErrInvalidInput)
	}

	bestIdx := 0
	bestCount := -1
	for i, d := range diffs {
		count := 0
		for _, d2 := range diffs {
			if absf(d-d2) <= tau {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			bestIdx = i
		}
	}
	return diffs[bestIdx], nil
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
