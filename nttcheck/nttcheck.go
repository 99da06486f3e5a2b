// Package nttcheck provides an independent verification oracle for
// polynomial multiplication: it recomputes a product via a Number
// Theoretic Transform over lattigo's ring package and compares against
// a result obtained some other way (classical or Karatsuba). It is
// never on the arithmetic hot path (poly.Poly never imports it); it
// exists purely so tests can cross-check the hand-written convolution
// kernels against an independently implemented transform.
package nttcheck

import (
	"errors"
	"math/bits"

	"github.com/tuneinsight/lattigo/v4/ring"

	"zpoly/internal/wlog"
	"zpoly/modular"
	"zpoly/poly"
)

// ErrUnsupportedModulus is returned when p does not admit an NTT-friendly
// ring at the size this multiplication needs (lattigo's ring package
// requires Q ≡ 1 (mod 2N) for an N-point NTT over Z/QZ). Callers should
// treat this as "verification not applicable here", not a failure of
// the polynomial being checked.
var ErrUnsupportedModulus = errors.New("nttcheck: modulus does not admit an NTT-friendly ring at this size")

// minRingDegree is the smallest ring degree CrossCheck asks lattigo for.
const minRingDegree = 16

// CrossCheck recomputes a*b via a zero-padded negacyclic NTT large
// enough that no wraparound term falls inside the true product's
// degree range, and returns the resulting coefficient vector in
// ascending-degree order (length a.Degree()+b.Degree()+1, i.e. not
// degree-fixed; callers compare against another kernel's raw output).
func CrossCheck(mod *modular.Modulus, a, b *poly.Poly) ([]uint64, error) {
	needed := a.Degree() + b.Degree() + 1
	n := nextPow2(needed)
	// lattigo's ring package rejects ring degrees below 16.
	if n < minRingDegree {
		n = minRingDegree
	}
	wlog.Printf("[nttcheck] crosscheck needed=%d ring size=%d p=%d\n", needed, n, mod.P)

	r, err := ring.NewRing(n, []uint64{mod.P})
	if err != nil {
		wlog.Printf("[nttcheck] p=%d does not admit an NTT-friendly ring at size=%d\n", mod.P, n)
		return nil, ErrUnsupportedModulus
	}

	pa := toRingPoly(r, mod, a, n)
	pb := toRingPoly(r, mod, b, n)
	out := r.NewPoly()

	r.MForm(pa, pa)
	r.MForm(pb, pb)
	r.NTT(pa, pa)
	r.NTT(pb, pb)
	r.MulCoeffsMontgomery(pa, pb, out)
	r.InvNTT(out, out)
	r.InvMForm(out, out)

	return fromRingPoly(out, needed), nil
}

// nextPow2 returns the smallest power of two >= n, with a minimum of 1.
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

func toRingPoly(r *ring.Ring, mod *modular.Modulus, p *poly.Poly, n int) *ring.Poly {
	rp := r.NewPoly()
	for i := 0; i <= p.Degree() && i < n; i++ {
		rp.Coeffs[0][i] = mod.Mod(p.Get(i))
	}
	return rp
}

func fromRingPoly(rp *ring.Poly, length int) []uint64 {
	out := make([]uint64, length)
	copy(out, rp.Coeffs[0][:length])
	return out
}
