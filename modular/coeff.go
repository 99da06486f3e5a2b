package modular

// This file implements the Coeff ring view of Z/pZ on top of Modulus:
// normalize, negate, add, sub, mul, inverse (extended Euclid) and
// power. Residues are always passed and returned in canonical [0, P)
// form; callers establish that invariant once via Normalize and the
// rest of this file preserves it.

// Neg returns p - a for a != 0, or 0 for a == 0.
func (m *Modulus) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return m.P - a
}

// Add is an alias for AddMod kept for readability at call sites that
// read as ring operations rather than raw word arithmetic.
func (m *Modulus) Add(a, b uint64) uint64 { return m.AddMod(a, b) }

// Sub is an alias for SubMod.
func (m *Modulus) Sub(a, b uint64) uint64 { return m.SubMod(a, b) }

// Mul is an alias for MulMod.
func (m *Modulus) Mul(a, b uint64) uint64 { return m.MulMod(a, b) }

// Inv returns the unique u in [1, P) with a*u ≡ 1 (mod P), via the
// extended Euclidean algorithm. Returns KindDivisionByZero for a == 0.
func (m *Modulus) Inv(a uint64) (uint64, error) {
	if a == 0 {
		return 0, DivisionByZeroError("inverse of zero")
	}
	oldR, r := int64(a), int64(m.P)
	oldS, s := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	u := oldS % int64(m.P)
	if u < 0 {
		u += int64(m.P)
	}
	return uint64(u), nil
}

// Pow returns a^k in the ring. k < 0 is only accepted for k == -1,
// which is Inv(a); any other negative exponent is a precondition
// violation. Pow(0, 0) returns 1 by convention.
func (m *Modulus) Pow(a uint64, k int64) (uint64, error) {
	if k < 0 {
		if k == -1 {
			return m.Inv(a)
		}
		return 0, PreconditionError("negative exponent %d (only -1 is accepted, as Inv)", k)
	}
	if k == 0 {
		return 1 % m.P, nil
	}
	result := uint64(1 % m.P)
	base := a
	for k > 0 {
		if k&1 == 1 {
			result = m.Mul(result, base)
		}
		k >>= 1
		if k > 0 {
			base = m.Mul(base, base)
		}
	}
	return result, nil
}
