package common

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes one series' y values for diagnostic logging.
type Summary struct {
	N      int
	Mean   float64
	Median float64
	P95    float64
}

func Summarize(samples []float64) Summary {
	n := len(samples)
	if n == 0 {
		return Summary{}
	}
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	return Summary{
		N:      n,
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
}
