package features

import "math"

// Mean computes the arithmetic mean, or 0 for an empty series.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Variance computes the population variance, or 0 for an empty series.
func Variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := Mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	v := sum / float64(len(xs))
	if v < 0 {
		v = 0
	}
	return v
}

// StdDev computes the population standard deviation.
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// WeightedMean computes a recency-weighted mean with weight i+1 for the
// i-th element (oldest first), so the newest sample carries the most weight.
func WeightedMean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	weightSum := 0.0
	for i, x := range xs {
		w := float64(i + 1)
		sum += x * w
		weightSum += w
	}
	return sum / weightSum
}

// PctReturns computes percentage returns r_t = (p_t - p_{t-1}) / p_{t-1}.
// It returns a slice of length len(prices)-1, or nil if insufficient data.
// Non-positive previous prices yield a 0 return for that step.
func PctReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	out := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1]
		if prev <= 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, (prices[i]-prev)/prev)
	}
	return out
}

// Deltas computes consecutive differences p_t - p_{t-1}.
func Deltas(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	out := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		out = append(out, prices[i]-prices[i-1])
	}
	return out
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Tail returns the last n elements of xs, or xs itself when shorter.
func Tail(xs []float64, n int) []float64 {
	if n <= 0 || len(xs) <= n {
		return xs
	}
	return xs[len(xs)-n:]
}
