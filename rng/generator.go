package rng

import (
	"errors"
	"io"
	"math"
)

// DefaultCount is the sequence length used when a workload does not set
// one.
const DefaultCount = 1000

// ErrInvalidCount is returned when a sequence length is not positive.
// Counts are rejected before any generation begins, never clamped.
var ErrInvalidCount = errors.New("sequence count must be positive")

// Generator produces finite sequences of normalized samples in [0, 1] by
// driving a State. Sequences are freshly allocated on every call and never
// retained.
type Generator struct {
	state *State
	count int
}

// New seeds a Generator from src and fixes its distribution sequence
// length. Pass crypto/rand.Reader in production.
func New(src io.Reader, count int) (*Generator, error) {
	seed, err := Seed(src)
	if err != nil {
		return nil, err
	}
	return NewSeeded(seed, count)
}

// NewSeeded constructs a Generator with an explicit seed word, skipping
// the entropy source. Intended for tests and replay.
func NewSeeded(seed uint32, count int) (*Generator, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	return &Generator{state: NewState(seed, nil), count: count}, nil
}

// ResetCounter resets the state counter to zero. The state word is left
// alone, so the next sequence follows a fresh-looking trajectory from the
// same seed lineage.
func (g *Generator) ResetCounter() {
	g.state.ResetCounter()
}

// State exposes the underlying generator state for inspection.
func (g *Generator) State() *State { return g.state }

// GenerateUniform returns exactly count samples in [0, 1], each the raw
// mixer output divided by 100. Both endpoints are reachable; the output
// is discrete over 101 values, not a continuous uniform. Two consecutive
// calls continue the same trajectory and therefore differ; reproducing a
// previously seen raw value requires an explicit ResetCounter at the same
// state word.
func (g *Generator) GenerateUniform(count int) ([]float64, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	seq := make([]float64, count)
	for i := range seq {
		seq[i] = float64(g.state.Next()) / float64(RawSampleMax)
	}
	return seq, nil
}

// GenerateBetaLike returns count samples peaked around 0.5, shaped from a
// uniform sequence by a closed-form trigonometric transform that visually
// approximates a Beta(2,2) density. It is an approximation, not
// inverse-CDF or rejection sampling. alpha and beta are accepted for call
// compatibility but only the (2, 2) shaping is implemented; other values
// do not alter the output.
func (g *Generator) GenerateBetaLike(count int, alpha, beta float64) ([]float64, error) {
	u, err := g.GenerateUniform(count)
	if err != nil {
		return nil, err
	}
	seq := make([]float64, count)
	for i, ui := range u {
		seq[i] = betaShape(ui)
	}
	return seq, nil
}

// betaShape maps one uniform sample to the peaked distribution. For
// u = 0.5 the sine term vanishes and the result is exactly 0.5.
func betaShape(u float64) float64 {
	x := 0.5 + 0.4*math.Sin(2*math.Pi*u)*(1-math.Abs(2*u-1))
	return math.Min(1.0, math.Max(0.0, x))
}

// Distributions is the payload handed to the reporting layer: four
// equal-length sequences in generation order.
type Distributions struct {
	UniformX []float64
	UniformY []float64
	BetaX    []float64
	BetaY    []float64
}

// GenerateDistributions produces the four sequences in a fixed order,
// resetting the counter to zero before the second, third and fourth so
// that every sequence starts its trajectory at counter 0. The first
// relies on construction having set the counter to zero. The state word
// is never reset; it carries over between sequences.
func (g *Generator) GenerateDistributions(alpha, beta float64) (*Distributions, error) {
	ux, err := g.GenerateUniform(g.count)
	if err != nil {
		return nil, err
	}
	g.ResetCounter()
	uy, err := g.GenerateUniform(g.count)
	if err != nil {
		return nil, err
	}
	g.ResetCounter()
	bx, err := g.GenerateBetaLike(g.count, alpha, beta)
	if err != nil {
		return nil, err
	}
	g.ResetCounter()
	by, err := g.GenerateBetaLike(g.count, alpha, beta)
	if err != nil {
		return nil, err
	}
	return &Distributions{UniformX: ux, UniformY: uy, BetaX: bx, BetaY: by}, nil
}
