package ringsrc

import (
	"testing"

	"zpoly/modular"
)

func TestSameSeedProducesSameStream(t *testing.T) {
	a := NewStream([]byte("seed-1"))
	b := NewStream([]byte("seed-1"))
	for i := 0; i < 100; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("streams diverged at index %d", i)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := NewStream([]byte("seed-a"))
	b := NewStream([]byte("seed-b"))
	same := true
	for i := 0; i < 16; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("distinct seeds produced identical streams")
	}
}

func TestResidueInRange(t *testing.T) {
	s := NewStream([]byte("residue-range"))
	const p = 97
	for i := 0; i < 1000; i++ {
		if r := s.Residue(p); r >= p {
			t.Fatalf("Residue(%d) out of range: %d", p, r)
		}
	}
}

func TestResidueOfOneIsZero(t *testing.T) {
	s := NewStream([]byte("residue-one"))
	if r := s.Residue(1); r != 0 {
		t.Fatalf("Residue(1) = %d, want 0", r)
	}
}

func TestPolyRespectsDegreeAndModulus(t *testing.T) {
	mod, err := modular.New(1009)
	if err != nil {
		t.Fatal(err)
	}
	s := NewStream([]byte("poly-gen"))
	for _, d := range []int{0, 1, 5, 20} {
		p := s.Poly(mod, d)
		if p.Degree() != d {
			t.Fatalf("Poly(degree=%d).Degree() = %d", d, p.Degree())
		}
		for i := 0; i <= d; i++ {
			if p.Get(i) >= 1009 {
				t.Fatalf("coefficient %d out of range: %d", i, p.Get(i))
			}
		}
	}
}
