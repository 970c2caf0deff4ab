package stats

import (
	"errors"
	"testing"
)

// evenSequence spreads count samples perfectly evenly across bins.
func evenSequence(count, bins int) []float64 {
	seq := make([]float64, 0, count)
	perBin := count / bins
	for b := 0; b < bins; b++ {
		center := (float64(b) + 0.5) / float64(bins)
		for i := 0; i < perBin; i++ {
			seq = append(seq, center)
		}
	}
	return seq
}

func TestPerfectlyUniform(t *testing.T) {
	report, err := TestUniformity(evenSequence(1000, 10), 10)
	if err != nil {
		t.Fatalf("TestUniformity: %v", err)
	}
	if report.Statistic != 0 {
		t.Errorf("statistic = %v, want 0", report.Statistic)
	}
	if report.PValue != 1 {
		t.Errorf("p-value = %v, want 1", report.PValue)
	}
}

func TestMaximallySkewed(t *testing.T) {
	seq := make([]float64, 1000)
	for i := range seq {
		seq[i] = 0.05
	}

	report, err := TestUniformity(seq, 10)
	if err != nil {
		t.Fatalf("TestUniformity: %v", err)
	}
	// All 1000 samples in one bin: statistic is 900^2/100 + 9*100 = 9000.
	if report.Statistic != 9000 {
		t.Errorf("statistic = %v, want 9000", report.Statistic)
	}
	if report.PValue > 1e-9 {
		t.Errorf("p-value = %v, want near 0", report.PValue)
	}
}

func TestLastBinClosed(t *testing.T) {
	// Three samples of exactly 1.0 must land in the final bin, giving
	// observed counts 1,0,1,1,1,1,1,1,0,3 against 1 expected per bin.
	seq := []float64{1, 1, 1, 0, 0.5, 0.2, 0.3, 0.4, 0.6, 0.7}
	report, err := TestUniformity(seq, 10)
	if err != nil {
		t.Fatalf("TestUniformity: %v", err)
	}
	if report.Statistic != 6 {
		t.Errorf("statistic = %v, want 6", report.Statistic)
	}
}

func TestInvalidBinCount(t *testing.T) {
	seq := evenSequence(100, 10)

	tests := []struct {
		name string
		bins int
	}{
		{"zero", 0},
		{"negative", -3},
		{"exceeds samples", 101},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := TestUniformity(seq, tt.bins); !errors.Is(err, ErrInvalidBinCount) {
				t.Errorf("TestUniformity(bins=%d) err = %v, want ErrInvalidBinCount", tt.bins, err)
			}
		})
	}
}

func TestStatisticNonNegative(t *testing.T) {
	seq := []float64{0.1, 0.9, 0.3, 0.3, 0.8, 0.5, 0.05, 0.95, 0.45, 0.55, 0.2, 0.7}
	report, err := TestUniformity(seq, 4)
	if err != nil {
		t.Fatal(err)
	}
	if report.Statistic < 0 {
		t.Errorf("statistic = %v, want >= 0", report.Statistic)
	}
	if report.PValue < 0 || report.PValue > 1 {
		t.Errorf("p-value = %v, want in [0, 1]", report.PValue)
	}
}
