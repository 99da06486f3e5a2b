// Package polytext implements the canonical textual form of a
// polynomial and its parser, kept separate from package poly so the
// hot arithmetic path never pays for string allocation. The grammar
// mirrors the Java source's toString()/parse() pair (lMutablePolynomialZp):
// a sum of terms, each an optional coefficient times an optional
// x^exponent, with the usual human shorthands (bare "x", omitted "^1",
// omitted "*", dropped zero terms).
package polytext

import (
	"strconv"
	"strings"

	"zpoly/modular"
	"zpoly/poly"
)

// Format renders p in canonical form: "c0+c1*x+c2*x^2+...", skipping
// zero terms, writing the degree-1 term without "^1" and the constant
// term as the bare coefficient, and omitting a unit coefficient's "1*"
// before "x".
// The zero polynomial renders as "0".
func Format(p *poly.Poly) string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := 0; i <= p.Degree(); i++ {
		c := p.Get(i)
		if c == 0 {
			continue
		}
		if !first {
			b.WriteByte('+')
		}
		first = false
		writeTerm(&b, c, i)
	}
	return b.String()
}

func writeTerm(b *strings.Builder, c uint64, degree int) {
	switch {
	case degree == 0:
		b.WriteString(strconv.FormatUint(c, 10))
	case degree == 1:
		if c != 1 {
			b.WriteString(strconv.FormatUint(c, 10))
			b.WriteByte('*')
		}
		b.WriteByte('x')
	default:
		if c != 1 {
			b.WriteString(strconv.FormatUint(c, 10))
			b.WriteByte('*')
		}
		b.WriteString("x^")
		b.WriteString(strconv.Itoa(degree))
	}
}

// Parse reads the grammar `term (('+'|'-') term)*` where
// `term = coef | coef '*' var ('^' exp)? | var ('^' exp)?`, whitespace
// ignored, and constructs the resulting polynomial over mod.
func Parse(s string, mod *modular.Modulus) (*poly.Poly, error) {
	s = stripSpace(s)
	if s == "" {
		return nil, modular.ParseErrorf("empty input")
	}

	result := poly.Zero(mod)
	i := 0
	n := len(s)
	sign := int64(1)

	for i < n {
		if s[i] == '+' || s[i] == '-' {
			if s[i] == '-' {
				sign = -sign
			}
			i++
			continue
		}
		coefStart := i
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		hasCoef := i > coefStart

		var coef uint64 = 1
		if hasCoef {
			v, err := strconv.ParseUint(s[coefStart:i], 10, 64)
			if err != nil {
				return nil, modular.ParseErrorf("bad coefficient %q", s[coefStart:i])
			}
			coef = mod.Mod(v)
		}

		degree := 0
		hasVar := false
		if i < n && s[i] == '*' {
			if !hasCoef {
				return nil, modular.ParseErrorf("unexpected '*' at position %d", i)
			}
			i++
			if i >= n || s[i] != 'x' {
				return nil, modular.ParseErrorf("expected 'x' after '*' at position %d", i)
			}
		}
		if i < n && s[i] == 'x' {
			hasVar = true
			i++
			degree = 1
			if i < n && s[i] == '^' {
				i++
				expStart := i
				for i < n && s[i] >= '0' && s[i] <= '9' {
					i++
				}
				if i == expStart {
					return nil, modular.ParseErrorf("expected exponent at position %d", i)
				}
				e, err := strconv.Atoi(s[expStart:i])
				if err != nil {
					return nil, modular.ParseErrorf("bad exponent %q", s[expStart:i])
				}
				degree = e
			}
		}

		if !hasCoef && !hasVar {
			return nil, modular.ParseErrorf("expected term at position %d", i)
		}
		if degree < 0 {
			return nil, modular.PreconditionError("negative exponent in term at position %d", i)
		}

		termVal := mod.Normalize(sign * int64(coef))
		term, err := poly.Monomial(mod, int64(termVal), degree)
		if err != nil {
			return nil, err
		}
		result.Add(term)
		sign = 1

		if i < n && s[i] != '+' && s[i] != '-' {
			return nil, modular.ParseErrorf("unexpected character %q at position %d", s[i], i)
		}
	}

	return result, nil
}

func stripSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
