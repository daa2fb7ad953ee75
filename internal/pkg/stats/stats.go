// Package stats computes summary statistics over sorted price samples.
package stats

// Summary describes a sorted sample of sale prices.
type Summary struct {
	Count   int     `json:"count"`
	Median  float64 `json:"median"`
	Average float64 `json:"average"`
	Low     float64 `json:"low"`
	High    float64 `json:"high"`
}

// Median returns the middle element of a sorted sample, or the mean of the
// two middle elements for even lengths. The sample must not be empty.
func Median(sorted []float64) float64 {
	n := len(sorted)
	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Mean returns the arithmetic mean. The sample must not be empty.
func Mean(sorted []float64) float64 {
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	return sum / float64(len(sorted))
}

// Trim drops the lowest and highest floor(pct*n) elements by sorted
// position. Samples shorter than 8 are returned unchanged; they are too
// small for positional trimming to mean anything.
func Trim(sorted []float64, pct float64) []float64 {
	if len(sorted) < 8 {
		return sorted
	}
	n := len(sorted)
	cut := int(float64(n) * pct)
	return sorted[cut : n-cut]
}

// Summarize reduces a non-empty sorted sample to its five summary values.
func Summarize(sorted []float64) Summary {
	return Summary{
		Count:   len(sorted),
		Median:  Median(sorted),
		Average: Mean(sorted),
		Low:     sorted[0],
		High:    sorted[len(sorted)-1],
	}
}
