// Package poly implements the dense univariate polynomial type over a
// Z/pZ ring: coefficient storage, degree tracking, shape operations
// (shift/truncate/reverse/content), evaluation, comparisons, and the
// in-place arithmetic operators (ops.go) and multiplication kernels
// (mulkernel.go) built on top of it.
//
// Every mutating method returns self so expressions can chain, the way
// the Java source this was ported from returns `this` typed to the
// concrete subclass; here that's just a reborrow of the same pointer.
// Two Polys never alias storage: Clone is the only way to get an
// independent copy, and is also the sole safe way to hand a Poly to
// another goroutine (see spec's concurrency model: a Poly is exclusively
// owned and never concurrently mutated or inspected).
package poly

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"zpoly/modular"
)

// Poly is an ordered dense sequence of residues c[0..degree] in a
// Z/pZ ring, representing c[0] + c[1]x + ... + c[degree]x^degree.
//
// Invariants (preserved by every exported method):
//
//	I1: degree is the largest i with coeffs[i] != 0, or 0 when the
//	    polynomial is zero (in which case coeffs[0] == 0 too).
//	I2: every coeffs[i] for i in [0, degree] lies in [0, mod.P).
//
// Storage beyond degree is always held at zero so shape operations
// never need to scan past it; capacity grows geometrically and never
// shrinks on reduction.
type Poly struct {
	mod    *modular.Modulus
	coeffs []uint64
	degree int
}

// Modulus returns the ring this polynomial's coefficients live in.
func (p *Poly) Modulus() *modular.Modulus { return p.mod }

// Zero returns the zero polynomial over mod.
func Zero(mod *modular.Modulus) *Poly {
	return &Poly{mod: mod, coeffs: []uint64{0}, degree: 0}
}

// One returns the constant polynomial 1 over mod.
func One(mod *modular.Modulus) *Poly {
	return Constant(mod, 1)
}

// Constant returns the degree-0 polynomial with value v, normalized
// into mod's canonical residue range.
func Constant(mod *modular.Modulus, v int64) *Poly {
	return &Poly{mod: mod, coeffs: []uint64{mod.Normalize(v)}, degree: 0}
}

// Monomial returns coefficient*x^degree. degree must be >= 0.
func Monomial(mod *modular.Modulus, coefficient int64, degree int) (*Poly, error) {
	if degree < 0 {
		return nil, modular.PreconditionError("monomial: negative degree %d", degree)
	}
	data := make([]uint64, degree+1)
	data[degree] = mod.Normalize(coefficient)
	p := &Poly{mod: mod, coeffs: data, degree: degree}
	p.fixDegree()
	return p, nil
}

// New builds a polynomial from raw signed coefficients c[0], c[1], ...
// in ascending degree order, normalizing each into mod's residue range.
// With no coefficients it returns the zero polynomial.
func New(mod *modular.Modulus, coeffs ...int64) *Poly {
	if len(coeffs) == 0 {
		return Zero(mod)
	}
	data := make([]uint64, len(coeffs))
	for i, c := range coeffs {
		data[i] = mod.Normalize(c)
	}
	p := &Poly{mod: mod, coeffs: data, degree: len(data) - 1}
	p.fixDegree()
	return p
}

// Degree returns the stored degree (0 for the zero polynomial).
func (p *Poly) Degree() int { return p.degree }

// Lc returns the leading coefficient, c[degree].
func (p *Poly) Lc() uint64 { return p.coeffs[p.degree] }

// Cc returns the constant coefficient, c[0].
func (p *Poly) Cc() uint64 { return p.coeffs[0] }

// Get returns c[i], or 0 for any i outside the stored buffer.
func (p *Poly) Get(i int) uint64 {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// IsZero reports whether this is the zero polynomial. Reading
// coeffs[degree] without checking degree first is safe: the buffer
// always has length >= 1 and the zero polynomial is represented by
// degree=0, coeffs[0]=0.
func (p *Poly) IsZero() bool { return p.coeffs[p.degree] == 0 }

// IsOne reports whether this is the constant polynomial 1.
func (p *Poly) IsOne() bool { return p.degree == 0 && p.coeffs[0] == 1 }

// IsMonic reports whether the leading coefficient is 1.
func (p *Poly) IsMonic() bool { return p.Lc() == 1 }

// IsUnitCC reports whether the constant coefficient is 1.
func (p *Poly) IsUnitCC() bool { return p.Cc() == 1 }

// IsConstant reports whether degree is 0.
func (p *Poly) IsConstant() bool { return p.degree == 0 }

// IsMonomial reports whether every coefficient below degree is zero.
func (p *Poly) IsMonomial() bool {
	for i := p.degree - 1; i >= 0; i-- {
		if p.coeffs[i] != 0 {
			return false
		}
	}
	return true
}

// FirstNonZeroCoefficientPosition returns the smallest i with
// coeffs[i] != 0. The caller must ensure the polynomial is nonzero.
func (p *Poly) FirstNonZeroCoefficientPosition() int {
	i := 0
	for p.coeffs[i] == 0 {
		i++
	}
	return i
}

// Norm1 returns the sum of the (already non-negative) residues.
func (p *Poly) Norm1() float64 {
	var sum float64
	for i := 0; i <= p.degree; i++ {
		sum += float64(p.coeffs[i])
	}
	return sum
}

// Norm2 returns the L2 norm of the residues, rounded up to the nearest
// integer the way lMutablePolynomialAbstract.java's norm2() does.
func (p *Poly) Norm2() float64 {
	var sum float64
	for i := 0; i <= p.degree; i++ {
		c := float64(p.coeffs[i])
		sum += c * c
	}
	return math.Ceil(math.Sqrt(sum))
}

// MaxAbsCoefficient returns the largest residue in the polynomial.
func (p *Poly) MaxAbsCoefficient() uint64 {
	max := p.coeffs[0]
	for i := 1; i <= p.degree; i++ {
		if p.coeffs[i] > max {
			max = p.coeffs[i]
		}
	}
	return max
}

// EnsureCapacity grows the backing buffer (geometrically) so that
// position d is addressable, and raises degree to d if it was smaller,
// so a caller can write coefficients in place afterward.
func (p *Poly) EnsureCapacity(d int) {
	if d < 0 {
		return
	}
	if p.degree < d {
		p.degree = d
	}
	if len(p.coeffs) >= d+1 {
		return
	}
	newCap := len(p.coeffs) * 2
	if newCap < d+1 {
		newCap = d + 1
	}
	grown := make([]uint64, newCap)
	copy(grown, p.coeffs)
	p.coeffs = grown
}

// FixDegree scans downward from the stored degree past trailing
// zeros, lowering degree accordingly and zeroing the vacated tail of
// the buffer. Idempotent.
func (p *Poly) FixDegree() { p.fixDegree() }

func (p *Poly) fixDegree() {
	i := p.degree
	for i > 0 && p.coeffs[i] == 0 {
		i--
	}
	if i != p.degree {
		for j := i + 1; j < len(p.coeffs); j++ {
			p.coeffs[j] = 0
		}
		p.degree = i
	}
}

func (p *Poly) toZero() *Poly {
	for i := 0; i <= p.degree; i++ {
		p.coeffs[i] = 0
	}
	p.degree = 0
	return p
}

// ShiftLeft divides by x^k, discarding the low k terms. k > degree
// produces the zero polynomial.
func (p *Poly) ShiftLeft(k int) *Poly {
	if k == 0 {
		return p
	}
	if k > p.degree {
		return p.toZero()
	}
	copy(p.coeffs[0:], p.coeffs[k:p.degree+1])
	for j := p.degree - k + 1; j <= p.degree; j++ {
		p.coeffs[j] = 0
	}
	p.degree -= k
	p.fixDegree()
	return p
}

// ShiftRight multiplies by x^k, growing the buffer and moving
// coefficients up.
func (p *Poly) ShiftRight(k int) *Poly {
	if k == 0 {
		return p
	}
	degree := p.degree
	p.EnsureCapacity(k + degree)
	copy(p.coeffs[k:k+degree+1], p.coeffs[0:degree+1])
	for j := 0; j < k; j++ {
		p.coeffs[j] = 0
	}
	return p
}

// Truncate zeroes every position above newDeg and re-fixes the degree.
func (p *Poly) Truncate(newDeg int) error {
	if newDeg < 0 {
		return modular.PreconditionError("truncate: negative degree %d", newDeg)
	}
	if newDeg >= p.degree {
		return nil
	}
	for j := newDeg + 1; j <= p.degree; j++ {
		p.coeffs[j] = 0
	}
	p.degree = newDeg
	p.fixDegree()
	return nil
}

// Reverse reverses coeffs[0..degree] in place and re-fixes the degree
// (a polynomial with zero constant term becomes lower-degree after
// reversal).
func (p *Poly) Reverse() *Poly {
	for i, j := 0, p.degree; i < j; i, j = i+1, j-1 {
		p.coeffs[i], p.coeffs[j] = p.coeffs[j], p.coeffs[i]
	}
	p.fixDegree()
	return p
}

// Content returns the integer gcd of the canonical residues
// c[0..degree] (not a ring-theoretic gcd; the residues are treated as
// plain non-negative integers). Content of the zero polynomial is 0;
// content of a nonzero constant is c[0].
func (p *Poly) Content() uint64 {
	if p.degree == 0 {
		return p.coeffs[0]
	}
	vals := make([]int64, p.degree+1)
	for i := range vals {
		vals[i] = int64(p.coeffs[i])
	}
	return uint64(modular.LongGCD(vals, 0, len(vals)))
}

// PrimitivePart divides every coefficient by Content(), if nonzero and
// not already 1. Residues in Z/pZ are always non-negative canonical
// representatives, so there is no leading-sign flip to apply (unlike
// a plain integer-coefficient variant); PrimitivePart and
// PrimitivePartSameSign coincide here.
func (p *Poly) PrimitivePart() *Poly { return p.primitivePart0() }

// PrimitivePartSameSign is PrimitivePart without a sign-normalizing
// step, kept as a distinct name for callers that distinguish the two
// operations generically; for this ring they are identical.
func (p *Poly) PrimitivePartSameSign() *Poly { return p.primitivePart0() }

func (p *Poly) primitivePart0() *Poly {
	c := p.Content()
	if c == 0 || c == 1 {
		return p
	}
	for i := 0; i <= p.degree; i++ {
		p.coeffs[i] /= c
	}
	return p
}

// Evaluate computes p(x) via Horner's method in the coefficient ring.
func (p *Poly) Evaluate(x uint64) uint64 {
	x = p.mod.Mod(x)
	var acc uint64
	for i := p.degree; i >= 0; i-- {
		acc = p.mod.Add(p.mod.Mul(acc, x), p.coeffs[i])
	}
	return acc
}

// Derivative computes c'[i] = (i+1)*c[i+1] in the coefficient ring.
func (p *Poly) Derivative() *Poly {
	if p.degree == 0 {
		return p.toZero()
	}
	newDeg := p.degree - 1
	for i := 0; i <= newDeg; i++ {
		factor := p.mod.Mod(uint64(i + 1))
		p.coeffs[i] = p.mod.Mul(factor, p.coeffs[i+1])
	}
	for j := newDeg + 1; j <= p.degree; j++ {
		p.coeffs[j] = 0
	}
	p.degree = newDeg
	p.fixDegree()
	return p
}

// Monic scales self so the leading coefficient becomes 1. The zero
// polynomial is returned unchanged (monic(0) = 0 by convention).
func (p *Poly) Monic() *Poly {
	if p.IsZero() {
		return p
	}
	lc := p.Lc()
	if lc == 1 {
		return p
	}
	inv, _ := p.mod.Inv(lc) // lc != 0 since the polynomial is nonzero
	return p.ScalarMultiply(inv)
}

// Clone returns an independent copy with its own backing buffer.
func (p *Poly) Clone() *Poly {
	c := make([]uint64, len(p.coeffs))
	copy(c, p.coeffs)
	return &Poly{mod: p.mod, coeffs: c, degree: p.degree}
}

// Equal reports whether p and o have the same degree and coefficients.
func (p *Poly) Equal(o *Poly) bool {
	if p.degree != o.degree {
		return false
	}
	for i := 0; i <= p.degree; i++ {
		if p.coeffs[i] != o.coeffs[i] {
			return false
		}
	}
	return true
}

// Compare orders polynomials lexicographically on (degree, coefficients
// high-to-low): a higher degree sorts greater, and for equal degree the
// first differing coefficient scanning from the leading term decides.
func (p *Poly) Compare(o *Poly) int {
	if p.degree != o.degree {
		if p.degree < o.degree {
			return -1
		}
		return 1
	}
	for i := p.degree; i >= 0; i-- {
		if p.coeffs[i] != o.coeffs[i] {
			if p.coeffs[i] < o.coeffs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Hash returns a content hash suitable for use as a map key alongside
// Equal; it is not cryptographic.
func (p *Poly) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for i := 0; i <= p.degree; i++ {
		binary.LittleEndian.PutUint64(buf[:], p.coeffs[i])
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Coefficients returns a defensive copy of c[0..degree].
func (p *Poly) Coefficients() []uint64 {
	out := make([]uint64, p.degree+1)
	copy(out, p.coeffs[:p.degree+1])
	return out
}

func (p *Poly) setCoeffs(c []uint64) {
	p.coeffs = c
	p.degree = len(c) - 1
	p.fixDegree()
}
