package simplify

import (
	"fmt"

	"github.com/movetk-go/movetk/frechet"
	"github.com/movetk-go/movetk/kernel"
	"github.com/movetk-go/movetk/trajectory"
)

// Agarwal simplifies points so that every discarded run stays within strong
// Fréchet distance epsilon of its replacement chord (spec §4.11), using
// exponential search with a binary-search fallback instead of Douglas-
// Peucker's O(n) farthest-point scan per level.
func Agarwal[T kernel.Number](points []kernel.Point[T], epsilon float64) ([]kernel.Point[T], error) {
	n := len(points)
	if n == 0 {
		return nil, fmt.Errorf("%w: Agarwal requires a non-empty polyline", trajectory.ErrInvalidInput)
	}
	if n == 1 {
		return []kernel.Point[T]{points[0]}, nil
	}

	out := []kernel.Point[T]{points[0]}
	anchor := 0
	k := 2

	decide := func(segEnd int, rangeEnd int) (bool, error) {
		chord := []kernel.Point[T]{points[anchor], points[segEnd]}
		return frechet.StrongFrechetDecision(chord, points[anchor:rangeEnd], epsilon)
	}

	for {
		if anchor+k >= n {
			ok, err := decide(n-1, n)
			if err != nil {
				return nil, err
			}
			if k == 2 || ok {
				out = append(out, points[n-1])
				break
			}
			upper := n - 1 - anchor
			j, err := agarwalBisect(points, anchor, k/2, upper, epsilon)
			if err != nil {
				return nil, err
			}
			out = append(out, points[anchor+j-1])
			anchor += j - 1
			k = 2
			continue
		}

		ok, err := decide(anchor+k, anchor+k+1)
		if err != nil {
			return nil, err
		}
		if ok {
			k *= 2
			continue
		}
		j, err := agarwalBisect(points, anchor, k/2, k, epsilon)
		if err != nil {
			return nil, err
		}
		out = append(out, points[anchor+j-1])
		anchor += j - 1
		k = 2
	}
	return out, nil
}

// agarwalBisect bisects (lower, upper], given that lower is known good and
// upper is known to violate epsilon, and returns the smallest j in that
// range for which the chord (p_anchor, p_{anchor+j}) has strong Fréchet
// distance above epsilon to the sub-polyline p_anchor..p_{anchor+j}; j-1 is
// then the largest good offset found (spec §4.11).
func agarwalBisect[T kernel.Number](points []kernel.Point[T], anchor, lower, upper int, epsilon float64) (int, error) {
	for upper > lower+1 {
		mid := (lower + upper) / 2
		chord := []kernel.Point[T]{points[anchor], points[anchor+mid]}
		ok, err := frechet.StrongFrechetDecision(chord, points[anchor:anchor+mid+1], epsilon)
		if err != nil {
			return 0, err
		}
		if !ok {
			upper = mid
		} else {
			lower = mid
		}
	}
	return upper, nil
}
