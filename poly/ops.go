package poly

import "zpoly/modular"

// This file is the PolyOps surface: the in-place arithmetic operators
// built on top of the shape primitives in poly.go and the
// multiplication kernels in mulkernel.go. Every operator here mutates
// and returns the receiver, so callers can chain without an
// intermediate allocation.

// Add computes self += other in place.
func (p *Poly) Add(other *Poly) *Poly {
	p.EnsureCapacity(other.degree)
	for i := 0; i <= other.degree; i++ {
		p.coeffs[i] = p.mod.Add(p.coeffs[i], other.coeffs[i])
	}
	p.fixDegree()
	return p
}

// Subtract computes self -= other in place.
func (p *Poly) Subtract(other *Poly) *Poly {
	p.EnsureCapacity(other.degree)
	for i := 0; i <= other.degree; i++ {
		p.coeffs[i] = p.mod.Sub(p.coeffs[i], other.coeffs[i])
	}
	p.fixDegree()
	return p
}

// Increment computes self += 1 in place.
func (p *Poly) Increment() *Poly {
	return p.Add(One(p.mod))
}

// Decrement computes self -= 1 in place.
func (p *Poly) Decrement() *Poly {
	return p.Subtract(One(p.mod))
}

// SubtractScaled computes self -= factor*x^shift*other in place, the
// core step of polynomial long division and gcd reduction.
func (p *Poly) SubtractScaled(other *Poly, factor uint64, shift int) *Poly {
	if factor == 0 {
		return p
	}
	p.EnsureCapacity(other.degree + shift)
	for i := 0; i <= other.degree; i++ {
		term := p.mod.Mul(factor, other.coeffs[i])
		idx := i + shift
		p.coeffs[idx] = p.mod.Sub(p.coeffs[idx], term)
	}
	p.fixDegree()
	return p
}

// AddMul computes self += factor*other in place, the counterpart to
// SubtractScaled used by pseudo-division's quotient-term accumulation.
func (p *Poly) AddMul(other *Poly, factor uint64) *Poly {
	if factor == 0 {
		return p
	}
	p.EnsureCapacity(other.degree)
	for i := 0; i <= other.degree; i++ {
		term := p.mod.Mul(factor, other.coeffs[i])
		p.coeffs[i] = p.mod.Add(p.coeffs[i], term)
	}
	p.fixDegree()
	return p
}

// ScalarMultiply computes self *= c in place.
func (p *Poly) ScalarMultiply(c uint64) *Poly {
	if c == 0 {
		return p.toZero()
	}
	if c == 1 {
		return p
	}
	for i := 0; i <= p.degree; i++ {
		p.coeffs[i] = p.mod.Mul(p.coeffs[i], c)
	}
	return p
}

// Negate computes self = -self in place.
func (p *Poly) Negate() *Poly {
	for i := 0; i <= p.degree; i++ {
		p.coeffs[i] = p.mod.Neg(p.coeffs[i])
	}
	return p
}

// Multiply computes self *= other in place, dispatching between the
// classical and Karatsuba kernels by operand size.
func (p *Poly) Multiply(other *Poly) *Poly {
	prod := dispatchMultiply(p.mod, p.coeffs[:p.degree+1], other.coeffs[:other.degree+1])
	p.setCoeffs(prod)
	return p
}

// MultiplyClassical forces the O(n*m) schoolbook kernel, regardless of
// operand size. Exists so tests can assert classical and Karatsuba
// agree on the same inputs independent of the dispatch threshold.
func (p *Poly) MultiplyClassical(other *Poly) *Poly {
	prod := classicalMultiply(p.mod, p.coeffs[:p.degree+1], other.coeffs[:other.degree+1])
	p.setCoeffs(prod)
	return p
}

// MultiplyKaratsuba forces the Karatsuba kernel, which still falls
// back to classical internally for any sub-problem at or below
// karatsubaCutoff.
func (p *Poly) MultiplyKaratsuba(other *Poly) *Poly {
	prod := karatsubaMultiply(p.mod, p.coeffs[:p.degree+1], other.coeffs[:other.degree+1])
	p.setCoeffs(prod)
	return p
}

// Square computes self *= self in place, dispatching by size.
func (p *Poly) Square() *Poly {
	sq := dispatchSquare(p.mod, p.coeffs[:p.degree+1])
	p.setCoeffs(sq)
	return p
}

// SquareClassical forces the classical squaring kernel.
func (p *Poly) SquareClassical() *Poly {
	sq := classicalSquare(p.mod, p.coeffs[:p.degree+1])
	p.setCoeffs(sq)
	return p
}

// SquareKaratsuba forces the Karatsuba squaring kernel.
func (p *Poly) SquareKaratsuba() *Poly {
	sq := karatsubaSquare(p.mod, p.coeffs[:p.degree+1])
	p.setCoeffs(sq)
	return p
}

// Pow computes self = self^k in place via square-and-multiply, using
// the dispatching Multiply/Square kernels. k must be >= 0.
func (p *Poly) Pow(k int) (*Poly, error) {
	if k < 0 {
		return nil, modular.PreconditionError("negative exponent %d", k)
	}
	if k == 0 {
		p.setCoeffs([]uint64{1 % p.mod.P})
		return p, nil
	}
	base := p.Clone()
	result := One(p.mod)
	for k > 0 {
		if k&1 == 1 {
			result.Multiply(base)
		}
		k >>= 1
		if k > 0 {
			base.Square()
		}
	}
	p.setCoeffs(result.coeffs[:result.degree+1])
	return p, nil
}
