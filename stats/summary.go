package stats

import (
	"github.com/bmizerany/perks/quantile"
	"gonum.org/v1/gonum/stat"
)

// Summary condenses one sequence into the headline figures the report
// prints.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	P50    float64
	P95    float64
	P99    float64
	Max    float64
}

// Summarize streams seq through a targeted quantile estimator and
// computes its mean and standard deviation.
func Summarize(seq []float64) Summary {
	q := quantile.NewTargeted(0.50, 0.95, 0.99, 1.0)
	for _, v := range seq {
		q.Insert(v)
	}
	return Summary{
		Count:  len(seq),
		Mean:   stat.Mean(seq, nil),
		StdDev: stat.StdDev(seq, nil),
		P50:    q.Query(0.50),
		P95:    q.Query(0.95),
		P99:    q.Query(0.99),
		Max:    q.Query(1.0),
	}
}
