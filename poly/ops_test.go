package poly

import (
	"testing"

	"zpoly/modular"
)

// splitmix64 is a tiny deterministic PRNG used only by this package's
// own tests; ringsrc (the module's real seeded source) imports poly,
// so poly's internal tests cannot import it back without a cycle.
type splitmix64 uint64

func (s *splitmix64) next() uint64 {
	*s += 0x9e3779b97f4a7c15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func randomPoly(s *splitmix64, m *modular.Modulus, degree int) *Poly {
	coeffs := make([]int64, degree+1)
	for i := range coeffs {
		coeffs[i] = int64(s.next() % m.P)
	}
	if degree > 0 {
		for coeffs[degree] == 0 {
			coeffs[degree] = int64(s.next() % m.P)
		}
	}
	return New(m, coeffs...)
}

func TestAddSubtractRoundTrip(t *testing.T) {
	m := mustMod(t, 1009)
	a := New(m, 1, 2, 3, 4)
	b := New(m, 5, 6, 7)
	sum := a.Clone().Add(b)
	back := sum.Subtract(b)
	if !back.Equal(a) {
		t.Fatalf("Add/Subtract round trip: got %v, want %v", back.Coefficients(), a.Coefficients())
	}
}

func TestAddMulAccumulates(t *testing.T) {
	m := mustMod(t, 1009)
	acc := New(m, 1, 2)
	other := New(m, 1, 1)
	acc.AddMul(other, 3) // (1+2x) + 3*(1+x) = 4 + 5x
	if acc.Get(0) != 4 || acc.Get(1) != 5 {
		t.Fatalf("AddMul wrong: %v", acc.Coefficients())
	}
}

func TestIncrementDecrementRoundTrip(t *testing.T) {
	m := mustMod(t, 1009)
	a := New(m, 3, 4, 5)
	got := a.Clone().Increment().Decrement()
	if !got.Equal(a) {
		t.Fatalf("Increment/Decrement round trip: got %v, want %v", got.Coefficients(), a.Coefficients())
	}
}

func TestIncrementOfMinusOneIsZero(t *testing.T) {
	m := mustMod(t, 97)
	a := Zero(m).Decrement() // -1
	got := a.Increment()
	if !got.IsZero() {
		t.Fatalf("expected zero, got %v", got.Coefficients())
	}
}

func TestNegateIsAdditiveInverse(t *testing.T) {
	m := mustMod(t, 1009)
	a := New(m, 1, 2, 3)
	n := a.Clone().Negate()
	sum := a.Clone().Add(n)
	if !sum.IsZero() {
		t.Fatalf("a + (-a) should be zero, got %v", sum.Coefficients())
	}
}

func TestScalarMultiplyByZeroIsZero(t *testing.T) {
	m := mustMod(t, 97)
	a := New(m, 1, 2, 3)
	a.ScalarMultiply(0)
	if !a.IsZero() {
		t.Fatal("expected zero after scalar multiply by 0")
	}
}

func TestClassicalKaratsubaAgreeSmall(t *testing.T) {
	m := mustMod(t, 1009)
	s := splitmix64(1)
	for trial := 0; trial < 20; trial++ {
		da := 1 + trial%7
		db := 1 + (trial*3)%11
		a := randomPoly(&s, m, da)
		b := randomPoly(&s, m, db)
		c := a.Clone().MultiplyClassical(b)
		k := a.Clone().MultiplyKaratsuba(b)
		if !c.Equal(k) {
			t.Fatalf("classical/karatsuba disagree at degrees (%d,%d): classical=%v karatsuba=%v", da, db, c.Coefficients(), k.Coefficients())
		}
	}
}

func TestClassicalKaratsubaAgreeAcrossCutoff(t *testing.T) {
	m := mustMod(t, (1<<31)-1)
	s := splitmix64(2)
	degrees := []int{karatsubaCutoff - 1, karatsubaCutoff, karatsubaCutoff + 1, karatsubaCutoff * 3}
	for _, d := range degrees {
		a := randomPoly(&s, m, d)
		b := randomPoly(&s, m, d+1)
		c := a.Clone().MultiplyClassical(b)
		k := a.Clone().MultiplyKaratsuba(b)
		if !c.Equal(k) {
			t.Fatalf("disagreement at degree %d", d)
		}
	}
}

func TestSquareMatchesSelfMultiply(t *testing.T) {
	m := mustMod(t, 1009)
	s := splitmix64(3)
	for _, d := range []int{0, 1, 5, 40, karatsubaCutoff + 5} {
		a := randomPoly(&s, m, d)
		sq := a.Clone().Square()
		mul := a.Clone().Multiply(a)
		if !sq.Equal(mul) {
			t.Fatalf("Square/Multiply disagree at degree %d", d)
		}
	}
}

func TestMultiplyIdentity(t *testing.T) {
	m := mustMod(t, 1009)
	one := One(m)
	a := New(m, 3, 4, 5)
	got := a.Clone().Multiply(one)
	if !got.Equal(a) {
		t.Fatalf("a*1 should equal a, got %v", got.Coefficients())
	}
}

func TestMultiplyByZeroIsZero(t *testing.T) {
	m := mustMod(t, 1009)
	zero := Zero(m)
	a := New(m, 3, 4, 5)
	got := a.Clone().Multiply(zero)
	if !got.IsZero() {
		t.Fatal("a*0 should be zero")
	}
}

func TestMultiplyDistributesOverAdd(t *testing.T) {
	m := mustMod(t, 1009)
	s := splitmix64(4)
	for trial := 0; trial < 10; trial++ {
		a := randomPoly(&s, m, 6)
		b := randomPoly(&s, m, 6)
		c := randomPoly(&s, m, 6)
		lhs := a.Clone().Multiply(b.Clone().Add(c))
		rhs := a.Clone().Multiply(b)
		rhs.Add(a.Clone().Multiply(c))
		if !lhs.Equal(rhs) {
			t.Fatalf("a*(b+c) != a*b + a*c on trial %d", trial)
		}
	}
}

func TestPowAgreesWithRepeatedMultiply(t *testing.T) {
	m := mustMod(t, 1009)
	a := New(m, 1, 1) // 1+x
	got, err := a.Clone().Pow(5)
	if err != nil {
		t.Fatal(err)
	}
	want := One(m)
	for i := 0; i < 5; i++ {
		want.Multiply(a)
	}
	if !got.Equal(want) {
		t.Fatalf("Pow(5) disagrees with repeated multiply: %v vs %v", got.Coefficients(), want.Coefficients())
	}
}

func TestPowZeroIsOne(t *testing.T) {
	m := mustMod(t, 1009)
	a := New(m, 3, 4, 5)
	got, err := a.Clone().Pow(0)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsOne() {
		t.Fatalf("Pow(0) should be 1, got %v", got.Coefficients())
	}
}

func TestPowNegativeRejected(t *testing.T) {
	m := mustMod(t, 97)
	a := New(m, 1, 1)
	if _, err := a.Pow(-1); err == nil {
		t.Fatal("expected precondition error")
	}
}
