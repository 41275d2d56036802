package brownian

import (
	"fmt"
	"math"
	"sort"

	"github.com/movetk-go/movetk/trajectory"
)

// BridgeLogLikelihood returns one bridge's log-likelihood under variance
// sigma2 (spec §4.13): l(sigma2) = -log(2*pi) - log(sigma2*w) -
// d^2/(2*sigma2*w). This is the per-cell scoring function model-based
// segmentation's DP (segmentation.ModelBasedSegmentation) needs.
func BridgeLogLikelihood(b Bridge, sigma2 float64) float64 {
	scale := sigma2 * b.Weight
	return -math.Log(2*math.Pi) - math.Log(scale) - b.SqDisplacement()/(2*scale)
}

// LogLikelihood returns the summed per-bridge log-likelihood of bridges
// under variance sigma2 (spec §4.13).
func LogLikelihood(bridges []Bridge, sigma2 float64) float64 {
	var total float64
	for _, b := range bridges {
		total += BridgeLogLikelihood(b, sigma2)
	}
	return total
}

// MLE estimates the maximum-likelihood variance for bridges via
// golden-section search on [epsilon, upperBound], where upperBound
// defaults to the maximum per-bridge squared displacement if given as
// non-positive (spec §4.13). Search is capped at maxIter iterations, or
// at 1000 iterations when maxIter is non-positive.
func MLE(bridges []Bridge, epsilon, upperBound float64, maxIter int) (float64, error) {
	if len(bridges) == 0 {
		return 0, fmt.Errorf("%w: MLE requires at least one bridge", trajectory.ErrInvalidInput)
	}
	if upperBound <= 0 {
		for _, b := range bridges {
			if d := b.SqDisplacement(); d > upperBound {
				upperBound = d
			}
		}
	}
	if upperBound <= epsilon {
		upperBound = epsilon * 2
	}
	if maxIter <= 0 {
		maxIter = 1000
	}

	f := func(sigma2 float64) float64 { return LogLikelihood(bridges, sigma2) }

	const invPhi = 0.6180339887498949 // (sqrt(5)-1)/2
	a, b := epsilon, upperBound
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc, fd := f(c), f(d)
	for iter := 0; iter < maxIter && math.Abs(b-a) > epsilon; iter++ {
		if fc > fd {
			b = d
			d = c
			fd = fc
			c = b - invPhi*(b-a)
			fc = f(c)
		} else {
			a = c
			c = d
			fc = fd
			d = a + invPhi*(b-a)
			fd = f(d)
		}
	}
	return (a + b) / 2, nil
}

// ParameterSelector clusters n estimated sigma^2 values into k clusters by
// 1-D quantile partition (sorted into k contiguous buckets) and returns the
// k representative values (bucket means), ordered by each bucket's
// earliest-appearing member in sigmas, not by sorted value (spec §4.13).
func ParameterSelector(sigmas []float64, k int) ([]float64, error) {
	n := len(sigmas)
	if n == 0 {
		return nil, fmt.Errorf("%w: parameter selection requires at least one estimate", trajectory.ErrInvalidInput)
	}
	if k <= 0 || k > n {
		return nil, fmt.Errorf("%w: parameter selection requires 0 < k <= n, got k=%d n=%d", trajectory.ErrInvalidInput, k, n)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return sigmas[order[i]] < sigmas[order[j]] })

	bucketOf := make([]int, n)
	base, rem := n/k, n%k
	pos := 0
	for bucket := 0; bucket < k; bucket++ {
		size := base
		if bucket < rem {
			size++
		}
		for c := 0; c < size; c++ {
			bucketOf[order[pos]] = bucket
			pos++
		}
	}

	sums := make([]float64, k)
	counts := make([]int, k)
	firstSeen := make([]int, k)
	for i := range firstSeen {
		firstSeen[i] = -1
	}
	for i, v := range sigmas {
		bucket := bucketOf[i]
		sums[bucket] += v
		counts[bucket]++
		if firstSeen[bucket] == -1 {
			firstSeen[bucket] = i
		}
	}

	buckets := make([]int, k)
	for i := range buckets {
		buckets[i] = i
	}
	sort.Slice(buckets, func(i, j int) bool { return firstSeen[buckets[i]] < firstSeen[buckets[j]] })

	out := make([]float64, 0, k)
	for _, bucket := range buckets {
		if counts[bucket] == 0 {
			continue
		}
		out = append(out, sums[bucket]/float64(counts[bucket]))
	}
	return out, nil
}
