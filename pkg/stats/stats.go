// Package stats computes descriptive statistics over a sample of 64-bit floats.
//
// Every statistic has the StatFn shape: it takes the sample and returns the
// value together with a presence flag. A false flag means the statistic is
// undefined for that sample; it is never reported as an error.
//
// The functions hold no state and never retain or reorder the caller's slice,
// so they are safe to call concurrently as long as the sample is not mutated
// while a call is in flight.
package stats

import (
	"math"
	"slices"
)

// StatFn is the shape shared by every statistic. If the statistic is
// ill-defined for the sample, ok is false and value is 0.
type StatFn func(sample []float64) (value float64, ok bool)

// Mean returns the arithmetic mean of the sample.
// The mean of an empty sample is 0, so the result is always present.
func Mean(sample []float64) (float64, bool) {
	if len(sample) == 0 {
		return 0, true
	}

	var sum float64
	for _, v := range sample {
		sum += v
	}

	return sum / float64(len(sample)), true
}

// StdDev returns the population standard deviation of the sample (divide by n).
// It is undefined for an empty sample and 0 for a single element.
func StdDev(sample []float64) (float64, bool) {
	switch len(sample) {
	case 0:
		return 0, false
	case 1:
		return 0, true
	}

	avg, _ := Mean(sample)

	squares := make([]float64, len(sample))
	for i, v := range sample {
		d := v - avg
		squares[i] = d * d
	}

	variance, _ := Mean(squares)

	return math.Sqrt(variance), true
}

// Median returns the lower median of the sample: the element at index
// (n-1)/2 of the ascending order, so ties between the two central values
// go to the smaller one. The result is always an element of the sample.
//
// The median is undefined for an empty sample and for any sample holding a
// NaN, since NaN has no place in an ascending order.
func Median(sample []float64) (float64, bool) {
	if len(sample) == 0 {
		return 0, false
	}

	sorted := make([]float64, 0, len(sample))
	for _, v := range sample {
		if math.IsNaN(v) {
			return 0, false
		}

		sorted = append(sorted, v)
	}

	slices.Sort(sorted)

	return sorted[(len(sorted)-1)/2], true
}

// L2 returns the Euclidean norm of the sample.
// The norm of an empty sample is 0, so the result is always present.
func L2(sample []float64) (float64, bool) {
	var sum float64
	for _, v := range sample {
		sum += v * v
	}

	return math.Sqrt(sum), true
}
