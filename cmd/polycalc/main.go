// Command polycalc is a thin arithmetic driver over package poly: it
// evaluates a single operation on one or two textual polynomials and
// prints the textual result. It is deliberately not a REPL or
// expression language: each invocation performs exactly one operator
// application and exits.
package main

import (
	"flag"
	"fmt"
	"os"

	"zpoly/internal/wlog"
	"zpoly/modular"
	"zpoly/poly"
	"zpoly/polytext"
)

func usage() {
	fmt.Println(`usage: polycalc -p <prime> -op <add|sub|mul|mulk|mulc|square|eval|pow|monic|content> -a <poly> [-b <poly>] [-x <value>] [-k <exponent>]

Flags:
  -p     <uint64>   prime modulus
  -op    <string>   operation to perform (default: mul)
  -a     <string>   first operand, in the textual polynomial grammar
  -b     <string>   second operand (add/sub/mul/mulk/mulc)
  -x     <uint64>   evaluation point (op=eval)
  -k     <int>      exponent (op=pow)`)
	os.Exit(1)
}

func main() {
	p := flag.Uint64("p", 0, "prime modulus")
	op := flag.String("op", "mul", "operation")
	aStr := flag.String("a", "", "first operand")
	bStr := flag.String("b", "", "second operand")
	x := flag.Uint64("x", 0, "evaluation point")
	k := flag.Int("k", 0, "exponent")
	flag.Parse()

	if *p == 0 || *aStr == "" {
		usage()
	}

	mod, err := modular.New(*p)
	if err != nil {
		fmt.Fprintln(os.Stderr, "polycalc:", err)
		os.Exit(1)
	}

	a, err := polytext.Parse(*aStr, mod)
	if err != nil {
		fmt.Fprintln(os.Stderr, "polycalc: parsing -a:", err)
		os.Exit(1)
	}

	var b *poly.Poly
	if *bStr != "" {
		b, err = polytext.Parse(*bStr, mod)
		if err != nil {
			fmt.Fprintln(os.Stderr, "polycalc: parsing -b:", err)
			os.Exit(1)
		}
	}

	wlog.Printf("[polycalc] op=%s p=%d a.degree=%d\n", *op, *p, a.Degree())

	result, err := run(*op, mod, a, b, *x, *k)
	if err != nil {
		fmt.Fprintln(os.Stderr, "polycalc:", err)
		os.Exit(1)
	}
	fmt.Println(result)
}

func run(op string, mod *modular.Modulus, a, b *poly.Poly, x uint64, k int) (string, error) {
	switch op {
	case "add":
		if b == nil {
			return "", usageErr("op=add requires -b")
		}
		return polytext.Format(a.Clone().Add(b)), nil
	case "sub":
		if b == nil {
			return "", usageErr("op=sub requires -b")
		}
		return polytext.Format(a.Clone().Subtract(b)), nil
	case "mul":
		if b == nil {
			return "", usageErr("op=mul requires -b")
		}
		return polytext.Format(a.Clone().Multiply(b)), nil
	case "mulc":
		if b == nil {
			return "", usageErr("op=mulc requires -b")
		}
		return polytext.Format(a.Clone().MultiplyClassical(b)), nil
	case "mulk":
		if b == nil {
			return "", usageErr("op=mulk requires -b")
		}
		return polytext.Format(a.Clone().MultiplyKaratsuba(b)), nil
	case "square":
		return polytext.Format(a.Clone().Square()), nil
	case "eval":
		return fmt.Sprintf("%d", a.Evaluate(x)), nil
	case "pow":
		res, err := a.Clone().Pow(k)
		if err != nil {
			return "", err
		}
		return polytext.Format(res), nil
	case "monic":
		return polytext.Format(a.Clone().Monic()), nil
	case "content":
		return fmt.Sprintf("%d", a.Content()), nil
	default:
		return "", usageErr(fmt.Sprintf("unknown op %q", op))
	}
}

func usageErr(msg string) error {
	return modular.PreconditionError("%s", msg)
}
