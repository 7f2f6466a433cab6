package anomaly

import (
	"math"
	"sort"
)

// Summarize computes descriptive statistics over a batch's value vector.
// Quantiles use linear interpolation between order statistics. Undefined for
// empty input; the detector guarantees at least minRecords values.
func Summarize(values []float64) Stats {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)

	return Stats{
		Mean:   mean(values),
		Median: quantile(sorted, 0.5),
		StdDev: stdDev(values),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Q1:     q1,
		Q3:     q3,
		IQR:    q3 - q1,
	}
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev is the population standard deviation.
func stdDev(values []float64) float64 {
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// quantile interpolates linearly between order statistics of sorted input.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
