// Package stats provides the uniformity test and the summary statistics
// the reporting layer prints.
package stats

import (
	"errors"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultBins is the bin count used when a workload does not set one.
const DefaultBins = 10

// ErrInvalidBinCount is returned when the bin count is not positive or
// exceeds the sample length.
var ErrInvalidBinCount = errors.New("bin count must be positive and no larger than the sample length")

// UniformityReport carries the Pearson chi-square statistic and its
// right-tail p-value for one tested sequence. A p-value above 0.05 is
// read by the report as "uniformity not rejected"; this package only
// computes the numbers.
type UniformityReport struct {
	Statistic float64
	PValue    float64
}

// TestUniformity partitions [0, 1] into bins equal-width intervals,
// half-open on the right except the last, which is closed so that a
// sample of exactly 1.0 lands in the final bin. It counts seq per bin and
// runs the chi-square goodness-of-fit test against the equal expected
// frequency, with bins-1 degrees of freedom.
func TestUniformity(seq []float64, bins int) (UniformityReport, error) {
	if bins <= 0 || bins > len(seq) {
		return UniformityReport{}, ErrInvalidBinCount
	}

	observed := make([]float64, bins)
	for _, v := range seq {
		i := int(v * float64(bins))
		if i >= bins {
			i = bins - 1
		}
		observed[i]++
	}

	expected := float64(len(seq)) / float64(bins)
	var statistic float64
	for _, obs := range observed {
		d := obs - expected
		statistic += d * d / expected
	}

	dist := distuv.ChiSquared{K: float64(bins - 1)}
	return UniformityReport{
		Statistic: statistic,
		PValue:    dist.Survival(statistic),
	}, nil
}
