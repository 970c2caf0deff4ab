// Package rng implements a xorshift32 generator whitened through a
// cryptographic digest, producing normalized samples in [0, 1] and a
// peaked beta-like variant shaped from them.
//
// Despite the internal hash step the generator is not a cryptographic
// RNG and must not be used as one.
package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// entropyBytes is how much OS entropy the seeder consumes, once per
// generator lifetime.
const entropyBytes = 32

// Seed derives a 32-bit initial state word from src.
//
// It reads 32 bytes, digests them with SHA-256 and keeps the low 32 bits
// of the digest. src must be a cryptographically strong source such as
// crypto/rand.Reader in production; tests may substitute any fixed byte
// source. A read failure is the one condition under which a generator
// cannot be constructed.
func Seed(src io.Reader) (uint32, error) {
	var buf [entropyBytes]byte
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return 0, errors.Wrap(err, "read entropy")
	}
	sum := sha256.Sum256(buf[:])
	return binary.BigEndian.Uint32(sum[len(sum)-4:]), nil
}
