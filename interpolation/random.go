package interpolation

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/movetk-go/movetk/geomutil"
	"github.com/movetk-go/movetk/geoproj"
	"github.com/movetk-go/movetk/kernel"
	"github.com/movetk-go/movetk/trajectory"
)

// Random generates a plausible trajectory between u and v at the given
// interior timestamps by rejection-sampling each interior point inside the
// minimum bounding rectangle of the two speed-bounded disks reachable from
// its already-placed neighbours, visited in a random order (spec §4.17,
// based on Laube & Purves 2014's random trajectory generator). maxSpeed
// bounds how far a point may be from each neighbour, relative to elapsed
// time. rng is supplied by the caller so callers control reproducibility.
func Random(u, v trajectory.Probe, timestamps []float64, maxSpeed float64, rng *rand.Rand) ([]trajectory.Probe, error) {
	if v.Timestamp <= u.Timestamp {
		return nil, fmt.Errorf("%w: interpolation requires v.Timestamp > u.Timestamp", trajectory.ErrInvalidInput)
	}
	n := len(timestamps) + 2
	if n == 2 {
		return []trajectory.Probe{u, v}, nil
	}

	ref := geoproj.NewLocalReference(u.Lat, u.Lon)
	ux, uy := ref.Project(u.Lat, u.Lon)
	vx, vy := ref.Project(v.Lat, v.Lon)

	ts := make([]float64, n)
	ts[0] = u.Timestamp
	ts[n-1] = v.Timestamp
	copy(ts[1:n-1], timestamps)

	placed := make([]kernel.Point[float64], n)
	set := make([]bool, n)
	placed[0], set[0] = kernel.NewPoint2(ux, uy), true
	placed[n-1], set[n-1] = kernel.NewPoint2(vx, vy), true

	order := make([]int, n-2)
	for k := range order {
		order[k] = k + 1 // indices 1..n-2
	}
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, i := range order {
		srcIdx := findSet(set, i, -1)
		dstIdx := findSet(set, i, +1)

		src, dst := placed[srcIdx], placed[dstIdx]
		forward := ts[i] - ts[srcIdx]
		backward := ts[dstIdx] - ts[i]
		radiusU := math.Abs(forward) * maxSpeed
		radiusV := math.Abs(backward) * maxSpeed

		gap := src.Sub(dst)
		if gap.Dot(gap) < 1e-18 {
			continue
		}

		p1, p2 := geomutil.MBR(src, radiusU, dst, radiusV, 1e-9)
		xMin, xMax := minmax(p1.X(), p2.X())
		yMin, yMax := minmax(p1.Y(), p2.Y())
		if xMin == 0 && xMax == 0 && yMin == 0 && yMax == 0 {
			continue
		}

		x, y := sampleInBounds(rng, xMin, xMax, yMin, yMax, src, dst, radiusU, radiusV)
		placed[i] = kernel.NewPoint2(x, y)
		set[i] = true
	}

	out := make([]trajectory.Probe, 0, n)
	for i := 0; i < n; i++ {
		if !set[i] {
			continue
		}
		if i == 0 {
			out = append(out, u)
			continue
		}
		if i == n-1 {
			out = append(out, v)
			continue
		}
		lat, lon := ref.Inverse(placed[i].Y(), placed[i].X())
		out = append(out, trajectory.NewProbe(lat, lon, ts[i]))
	}

	attachSpeedsHeadings(out, u, v)
	return out, nil
}

// findSet scans from i in direction dir (-1 or +1) for the nearest index
// whose position has already been placed.
func findSet(set []bool, i, dir int) int {
	for j := i; j >= 0 && j < len(set); j += dir {
		if set[j] {
			return j
		}
	}
	if dir < 0 {
		return 0
	}
	return len(set) - 1
}

func sampleInBounds(rng *rand.Rand, xMin, xMax, yMin, yMax float64, src, dst kernel.Point[float64], radiusU, radiusV float64) (x, y float64) {
	sqU, sqV := radiusU*radiusU, radiusV*radiusV
	const eps = 1e-9
	for attempt := 0; attempt < 10000; attempt++ {
		x = xMin + rng.Float64()*(xMax-xMin)
		y = yMin + rng.Float64()*(yMax-yMin)
		p := kernel.NewPoint2(x, y)
		pu := p.Sub(src)
		pv := p.Sub(dst)
		if pu.Dot(pu) <= sqU+eps && pv.Dot(pv) <= sqV+eps && math.Abs(x) > 0 && math.Abs(y) > 0 {
			return x, y
		}
	}
	return x, y
}

func minmax(a, b float64) (lo, hi float64) {
	if a < b {
		return a, b
	}
	return b, a
}
