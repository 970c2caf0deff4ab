package stats

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	seq := make([]float64, 1000)
	for i := range seq {
		seq[i] = float64(i) / 999.0
	}

	s := Summarize(seq)
	if s.Count != 1000 {
		t.Errorf("Count = %d, want 1000", s.Count)
	}
	if math.Abs(s.Mean-0.5) > 1e-9 {
		t.Errorf("Mean = %v, want 0.5", s.Mean)
	}
	// Quantile estimates are approximate by design; allow the targeted
	// stream's error band.
	if math.Abs(s.P50-0.5) > 0.02 {
		t.Errorf("P50 = %v, want ~0.5", s.P50)
	}
	if math.Abs(s.P95-0.95) > 0.02 {
		t.Errorf("P95 = %v, want ~0.95", s.P95)
	}
	if math.Abs(s.Max-1.0) > 0.02 {
		t.Errorf("Max = %v, want ~1.0", s.Max)
	}
}
