package rng

import "crypto/sha256"

// DigestFunc maps a byte string to a 256-bit digest. The mixer uses it as
// a whitening step when extracting samples, not for security.
type DigestFunc func([]byte) [sha256.Size]byte

// DefaultDigest is the extraction digest used when none is injected.
var DefaultDigest DigestFunc = sha256.Sum256
