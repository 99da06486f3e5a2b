package poly

import (
	"zpoly/internal/wlog"
	"zpoly/modular"
)

// karatsubaCutoff is the operand length (in coefficients) at or below
// which Karatsuba recursion bottoms out into the classical kernel, at every
// level of the recursion, not just the top. It's a constant validated
// by benchmarking rather than derived analytically; cmd/polybench
// exists to let that benchmark be rerun against a different machine.
const karatsubaCutoff = 48

// classicalMultiply computes the convolution of a and b (lengths la,
// lb, in ascending-degree order) into a fresh coefficient slice of
// length la+lb-1. Zero multiplier entries are skipped, since a sparse
// operand (common for small test polynomials and for shifted terms
// produced by Karatsuba's own recursion) then costs O(nnz*m) instead
// of O(n*m).
func classicalMultiply(mod *modular.Modulus, a, b []uint64) []uint64 {
	la, lb := len(a), len(b)
	out := make([]uint64, la+lb-1)
	if la <= lb {
		convolve(mod, out, a, b)
	} else {
		convolve(mod, out, b, a)
	}
	return out
}

// convolve accumulates short (x) against long (y) into out, picking
// the safe (reduce-every-step) or unsafe (reduce-once-per-output-slot)
// accumulation strategy based on how many raw products can land in a
// single output slot without overflowing a uint64 accumulator.
func convolve(mod *modular.Modulus, out, short, long []uint64) {
	n := uint64(len(short))
	if n <= mod.SafeAccumLimit {
		wlog.Printf("[mulkernel] convolve unsafe n=%d limit=%d\n", n, mod.SafeAccumLimit)
		convolveUnsafe(mod, out, short, long)
	} else {
		wlog.Printf("[mulkernel] convolve safe n=%d limit=%d\n", n, mod.SafeAccumLimit)
		convolveSafe(mod, out, short, long)
	}
}

func convolveSafe(mod *modular.Modulus, out, short, long []uint64) {
	for i, ai := range short {
		if ai == 0 {
			continue
		}
		for j, bj := range long {
			if bj == 0 {
				continue
			}
			out[i+j] = mod.Add(out[i+j], mod.Mul(ai, bj))
		}
	}
}

// convolveUnsafe sums raw (unreduced) 64-bit products for a single
// output slot and reduces once at the end, paying one 128-by-64
// division per output slot instead of one per product. Valid only
// while the number of terms landing in any one slot stays within
// mod.SafeAccumLimit, which the caller has already checked: each raw
// product ai*bj is at most (p-1)^2, and SafeAccumLimit is exactly
// floor((2^64-1)/(p-1)^2), so up to that many such products can be
// summed in a uint64 accumulator without overflow.
func convolveUnsafe(mod *modular.Modulus, out, short, long []uint64) {
	accum := make([]uint64, len(out))
	for i, ai := range short {
		if ai == 0 {
			continue
		}
		for j, bj := range long {
			if bj == 0 {
				continue
			}
			accum[i+j] += ai * bj
		}
	}
	for i, v := range accum {
		out[i] = mod.Mod(v)
	}
}

// classicalSquare is classicalMultiply(a, a) specialized to exploit
// the symmetry of squaring: cross terms a[i]*a[j] (i != j) are
// computed once and doubled instead of computed twice.
func classicalSquare(mod *modular.Modulus, a []uint64) []uint64 {
	n := len(a)
	out := make([]uint64, 2*n-1)
	for i := 0; i < n; i++ {
		ai := a[i]
		if ai == 0 {
			continue
		}
		out[2*i] = mod.Add(out[2*i], mod.Mul(ai, ai))
		for j := i + 1; j < n; j++ {
			aj := a[j]
			if aj == 0 {
				continue
			}
			cross := mod.Mul(ai, aj)
			cross = mod.Add(cross, cross)
			out[i+j] = mod.Add(out[i+j], cross)
		}
	}
	return out
}

// karatsubaMultiply computes the convolution of a and b via the
// split-recombine scheme, falling back to classicalMultiply for
// either operand once it drops at or below karatsubaCutoff, at every
// recursion level, not only the outermost call.
func karatsubaMultiply(mod *modular.Modulus, a, b []uint64) []uint64 {
	la, lb := len(a), len(b)
	if la <= karatsubaCutoff || lb <= karatsubaCutoff {
		wlog.Printf("[mulkernel] karatsuba falls back to classical la=%d lb=%d cutoff=%d\n", la, lb, karatsubaCutoff)
		return classicalMultiply(mod, a, b)
	}

	m := (max(la, lb) + 1) / 2
	if m >= la || m >= lb {
		return classicalMultiply(mod, a, b)
	}

	aLo, aHi := splitAt(a, m)
	bLo, bHi := splitAt(b, m)

	z0 := karatsubaMultiply(mod, aLo, bLo)
	z2 := karatsubaMultiply(mod, aHi, bHi)

	aSum := addCoeffs(mod, aLo, aHi)
	bSum := addCoeffs(mod, bLo, bHi)
	z1 := karatsubaMultiply(mod, aSum, bSum)
	z1 = subCoeffsInto(mod, z1, z0)
	z1 = subCoeffsInto(mod, z1, z2)

	out := make([]uint64, la+lb-1)
	addAt(mod, out, z0, 0)
	addAt(mod, out, z1, m)
	addAt(mod, out, z2, 2*m)
	return out
}

// karatsubaSquare is karatsubaMultiply(a, a) with the middle product
// computed as a square too, so every recursive call stays on the
// cheaper squaring path instead of degrading to general multiply.
func karatsubaSquare(mod *modular.Modulus, a []uint64) []uint64 {
	n := len(a)
	if n <= karatsubaCutoff {
		return classicalSquare(mod, a)
	}

	m := (n + 1) / 2
	if m >= n {
		return classicalSquare(mod, a)
	}

	aLo, aHi := splitAt(a, m)

	z0 := karatsubaSquare(mod, aLo)
	z2 := karatsubaSquare(mod, aHi)

	aSum := addCoeffs(mod, aLo, aHi)
	z1 := karatsubaSquare(mod, aSum)
	z1 = subCoeffsInto(mod, z1, z0)
	z1 = subCoeffsInto(mod, z1, z2)

	out := make([]uint64, 2*n-1)
	addAt(mod, out, z0, 0)
	addAt(mod, out, z1, m)
	addAt(mod, out, z2, 2*m)
	return out
}

func splitAt(a []uint64, m int) (lo, hi []uint64) {
	if m >= len(a) {
		return a, nil
	}
	return a[:m], a[m:]
}

func addCoeffs(mod *modular.Modulus, a, b []uint64) []uint64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint64, n)
	for i := range out {
		var av, bv uint64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = mod.Add(av, bv)
	}
	return out
}

// subCoeffsInto returns dst - sub, trimmed/zero-extended to len(dst).
func subCoeffsInto(mod *modular.Modulus, dst, sub []uint64) []uint64 {
	for i := range dst {
		if i < len(sub) {
			dst[i] = mod.Sub(dst[i], sub[i])
		}
	}
	return dst
}

func addAt(mod *modular.Modulus, out, part []uint64, offset int) {
	for i, v := range part {
		if v == 0 {
			continue
		}
		out[offset+i] = mod.Add(out[offset+i], v)
	}
}

// dispatchMultiply picks Karatsuba when both operands clear the
// cutoff, else goes straight to classical, the same threshold
// karatsubaMultiply itself re-applies at each recursion level.
func dispatchMultiply(mod *modular.Modulus, a, b []uint64) []uint64 {
	if len(a) > karatsubaCutoff && len(b) > karatsubaCutoff {
		wlog.Printf("[mulkernel] dispatch karatsuba la=%d lb=%d\n", len(a), len(b))
		return karatsubaMultiply(mod, a, b)
	}
	wlog.Printf("[mulkernel] dispatch classical la=%d lb=%d\n", len(a), len(b))
	return classicalMultiply(mod, a, b)
}

func dispatchSquare(mod *modular.Modulus, a []uint64) []uint64 {
	if len(a) > karatsubaCutoff {
		wlog.Printf("[mulkernel] dispatch square karatsuba n=%d\n", len(a))
		return karatsubaSquare(mod, a)
	}
	wlog.Printf("[mulkernel] dispatch square classical n=%d\n", len(a))
	return classicalSquare(mod, a)
}
