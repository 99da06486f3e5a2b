package poly

import "testing"

// Concrete end-to-end scenarios, one test per case, covering
// multiplication agreement, an already-monic polynomial, the zero
// polynomial, a larger random-operand agreement check, squaring, and a
// shift round trip.

func TestScenarioMultiplyAgreement17(t *testing.T) {
	m := mustMod(t, 17)
	// a = 1 + 2x^2 - x^3 + x^5 - x^17
	a := New(m, 1, 0, 2, -1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1)
	// b = x + 3x^2
	b := New(m, 0, 1, 3)

	want := make([]int64, a.degree+b.degree+2)
	for i := 0; i <= a.degree; i++ {
		if a.coeffs[i] == 0 {
			continue
		}
		for j := 0; j <= b.degree; j++ {
			want[i+j] += int64(m.Mod(a.coeffs[i])) * int64(m.Mod(b.coeffs[j]))
		}
	}
	ref := make([]uint64, len(want))
	for i, v := range want {
		ref[i] = m.Normalize(v)
	}
	refPoly := New(m, int64sFromUint64s(ref)...)

	classical := a.Clone().MultiplyClassical(b)
	karatsuba := a.Clone().MultiplyKaratsuba(b)
	if !classical.Equal(karatsuba) {
		t.Fatalf("classical/karatsuba disagree: %v vs %v", classical.Coefficients(), karatsuba.Coefficients())
	}
	if !classical.Equal(refPoly) {
		t.Fatalf("multiply result = %v, want %v", classical.Coefficients(), refPoly.Coefficients())
	}
}

func int64sFromUint64s(u []uint64) []int64 {
	out := make([]int64, len(u))
	for i, v := range u {
		out[i] = int64(v)
	}
	return out
}

func TestScenarioMonicAlreadyMonic(t *testing.T) {
	m := mustMod(t, 17)
	a := New(m, 0, 0, 0, 1, 16, 1) // x^5 + 16x^4 + x^3
	if a.Lc() != 1 {
		t.Fatalf("expected lc = 1, got %d", a.Lc())
	}
	monic := a.Clone().Monic()
	if !monic.Equal(a) {
		t.Fatalf("monic(a) should equal a when already monic, got %v", monic.Coefficients())
	}
}

func TestScenarioZeroPolynomialProperties(t *testing.T) {
	m := mustMod(t, 17)
	a := Zero(m)
	if a.Degree() != 0 || a.Get(0) != 0 || !a.IsZero() {
		t.Fatalf("zero polynomial invariant broken: degree=%d c0=%d isZero=%v", a.Degree(), a.Get(0), a.IsZero())
	}
	powered, err := a.Clone().Pow(5)
	if err != nil {
		t.Fatal(err)
	}
	if !powered.IsZero() {
		t.Fatalf("pow(0, 5) should be zero, got %v", powered.Coefficients())
	}
	monic := a.Clone().Monic()
	if !monic.IsZero() {
		t.Fatalf("monic(0) should be zero, got %v", monic.Coefficients())
	}
}

func TestScenarioClassicalKaratsubaAgreeDegree500(t *testing.T) {
	m := mustMod(t, 59)
	s := splitmix64(500)
	a := randomPoly(&s, m, 500)
	b := randomPoly(&s, m, 500)
	classical := a.Clone().MultiplyClassical(b)
	karatsuba := a.Clone().MultiplyKaratsuba(b)
	if !classical.Equal(karatsuba) {
		t.Fatalf("classical/karatsuba disagree on degree-500 operands")
	}
}

func TestScenarioSquareOfXPlusOne(t *testing.T) {
	m := mustMod(t, 17)
	a := New(m, 1, 1) // x + 1
	got := a.Clone().Square()
	want := New(m, 1, 2, 1) // 1 + 2x + x^2
	if !got.Equal(want) {
		t.Fatalf("square(x+1) = %v, want %v", got.Coefficients(), want.Coefficients())
	}
}

func TestScenarioShiftRightThenLeft(t *testing.T) {
	m := mustMod(t, 17)
	a := New(m, 5, 2, 1) // x^2 + 2x + 5
	shifted := a.Clone().ShiftRight(3)
	wantShifted := New(m, 0, 0, 0, 5, 2, 1) // 5x^3 + 2x^4 + x^5
	if !shifted.Equal(wantShifted) {
		t.Fatalf("shiftRight(3, a) = %v, want %v", shifted.Coefficients(), wantShifted.Coefficients())
	}
	back := shifted.Clone().ShiftLeft(2)
	wantBack := New(m, 0, 5, 2, 1) // 5x + 2x^2 + x^3
	if !back.Equal(wantBack) {
		t.Fatalf("shiftLeft(2, shiftRight(3, a)) = %v, want %v", back.Coefficients(), wantBack.Coefficients())
	}
}
