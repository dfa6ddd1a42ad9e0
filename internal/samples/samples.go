// Package samples reduces raw observation sequences to the summary
// statistics the tests consume.
package samples

import (
	"math"

	"github.com/montanaflynn/stats"

	"goabtest/domain/core"
)

// Summary holds the per-group reductions used by the Welch t-test
type Summary struct {
	N        int
	Mean     float64
	Variance float64 // sample variance (Bessel's correction)
	Sum      float64
}

// DropMissing returns values with NaN entries removed. Each group is
// filtered independently; order is preserved.
func DropMissing(values []float64) []float64 {
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

// Describe reduces a cleaned group to its summary statistics. A sample
// variance needs at least 2 observations.
func Describe(values []float64) (Summary, error) {
	if len(values) < 2 {
		return Summary{}, core.ErrInsufficientData
	}

	data := stats.Float64Data(values)
	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, err
	}
	variance, err := stats.SampleVariance(data)
	if err != nil {
		return Summary{}, err
	}
	sum, err := stats.Sum(data)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		N:        len(values),
		Mean:     mean,
		Variance: variance,
		Sum:      sum,
	}, nil
}
