package modular

import "math/bits"

// MultiplyHighLow returns the full 128-bit product of a and b as
// (hi, lo), hi being the more significant word.
func MultiplyHighLow(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

// AddHighLow adds two 128-bit values, each given as (hi, lo), and
// returns the 128-bit sum with the same representation. A carry out of
// the top word is silently discarded; callers that need overflow
// detection should bound n·(p-1)^2 against SafeAccumLimit beforehand.
func AddHighLow(h1, l1, h2, l2 uint64) (hi, lo uint64) {
	lo, carry := bits.Add64(l1, l2, 0)
	hi, _ = bits.Add64(h1, h2, carry)
	return hi, lo
}

// SafeAdd adds two signed 64-bit integers, returning a KindOverflow
// error instead of silently wrapping.
func SafeAdd(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, newError(KindOverflow, "signed add overflow: %d + %d", a, b)
	}
	return sum, nil
}

// LongGCD returns the gcd of the absolute values of arr[from:to] using
// the binary (Stein's) algorithm, mirroring the original Java source's
// LongArithmetics.gcd(data, from, to) used by DensePoly.content().
// Entries equal to zero are skipped; an all-zero range has gcd 0.
func LongGCD(arr []int64, from, to int) int64 {
	var g uint64
	for i := from; i < to; i++ {
		v := absU64(arr[i])
		if v == 0 {
			continue
		}
		if g == 0 {
			g = v
			continue
		}
		g = binaryGCD(g, v)
		if g == 1 {
			return 1
		}
	}
	return int64(g)
}

func absU64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// binaryGCD computes gcd(a, b) for a, b > 0 using Stein's algorithm,
// avoiding the division instruction the Euclidean algorithm needs.
func binaryGCD(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	shift := bits.TrailingZeros64(a | b)
	a >>= bits.TrailingZeros64(a)
	for b != 0 {
		b >>= bits.TrailingZeros64(b)
		if a > b {
			a, b = b, a
		}
		b -= a
	}
	return a << uint(shift)
}
