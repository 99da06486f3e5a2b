// Package ringsrc provides a deterministic, seeded source of residues
// and polynomials for property-based testing and benchmarking, built
// on a SHAKE-256 duplex squeezed on demand. This buys reproducibility:
// the same seed always produces the same stream, so a failing property
// test prints a seed a developer can rerun verbatim.
package ringsrc

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"zpoly/modular"
	"zpoly/poly"
)

// Stream is a single-writer pseudo-random byte source keyed by a seed.
// It is not safe for concurrent use from multiple goroutines, matching
// every other type in this module's single-threaded, exclusively-owned
// concurrency model.
type Stream struct {
	shake sha3.ShakeHash
}

// NewStream derives a stream from seed. Equal seeds always produce
// identical output sequences.
func NewStream(seed []byte) *Stream {
	h := sha3.NewShake256()
	h.Write([]byte("zpoly-ringsrc-v1"))
	h.Write(seed)
	return &Stream{shake: h}
}

// Uint64 squeezes the next 8 bytes of the stream as a little-endian
// uint64, with no rejection or masking.
func (s *Stream) Uint64() uint64 {
	var buf [8]byte
	if _, err := s.shake.Read(buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// Residue draws a uniformly distributed value in [0, p) via rejection
// sampling against the next power-of-two bound above p.
func (s *Stream) Residue(p uint64) uint64 {
	if p == 0 {
		return 0
	}
	if p == 1 {
		return 0
	}
	mask := nextMask(p - 1)
	for {
		v := s.Uint64() & mask
		if v < p {
			return v
		}
	}
}

func nextMask(x uint64) uint64 {
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	return x
}

// Poly draws a random dense polynomial of the given degree over mod,
// with a nonzero leading coefficient (unless degree is 0, where the
// constant term is free to be zero).
func (s *Stream) Poly(mod *modular.Modulus, degree int) *poly.Poly {
	if degree < 0 {
		degree = 0
	}
	coeffs := make([]int64, degree+1)
	for i := 0; i <= degree; i++ {
		coeffs[i] = int64(s.Residue(mod.P))
	}
	if degree > 0 {
		for coeffs[degree] == 0 {
			coeffs[degree] = int64(s.Residue(mod.P))
		}
	}
	return poly.New(mod, coeffs...)
}
