package rng

import (
	"math/big"
	"strconv"
)

// RawSampleMax is the largest raw sample the mixer extracts; raw samples
// cover [0, RawSampleMax] inclusive, so there are 101 discrete outcomes.
const RawSampleMax = 100

var sampleModulus = big.NewInt(RawSampleMax + 1)

// State holds the mutable generator state: a 32-bit xorshift word and a
// monotonic call counter. One State drives one sequence-production session
// at a time; it is not safe for concurrent use.
type State struct {
	word    uint32
	counter uint64
	digest  DigestFunc
}

// NewState returns a State with the given seed word and the counter at
// zero. A nil digest selects DefaultDigest.
func NewState(seed uint32, digest DigestFunc) *State {
	if digest == nil {
		digest = DefaultDigest
	}
	return &State{word: seed, digest: digest}
}

// Next advances the state one step and extracts a raw sample in
// [0, RawSampleMax]. It is a pure function of the (word, counter) pair:
// the same pair always yields the same sample.
//
// The three shifts must run in exactly this order; reordering them
// produces a different sequence.
func (s *State) Next() int {
	x := s.word
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	s.word = x

	scalar := uint64(x) + s.counter
	sum := s.digest([]byte(strconv.FormatUint(scalar, 10)))
	raw := new(big.Int).SetBytes(sum[:])
	raw.Mod(raw, sampleModulus)

	s.counter++
	return int(raw.Int64())
}

// ResetCounter sets the counter back to zero without touching the state
// word. It is the documented way to start an independent-looking
// sub-sequence from the same underlying seed; it is never done
// implicitly.
func (s *State) ResetCounter() {
	s.counter = 0
}

// Counter reports how many times Next has run since construction or the
// last ResetCounter.
func (s *State) Counter() uint64 { return s.counter }

// Word returns the current 32-bit state word.
func (s *State) Word() uint32 { return s.word }
