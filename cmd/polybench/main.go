// Command polybench sweeps polynomial multiplication across a range
// of degrees, timing the classical and Karatsuba kernels (and, where
// the modulus admits an NTT-friendly ring, the nttcheck cross-check
// path) at each size, and renders the crossover as an interactive
// go-echarts line chart. It exists so karatsubaCutoff in package poly
// can be re-validated on whatever machine is running the benchmark.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"zpoly/internal/wlog"
	"zpoly/modular"
	"zpoly/nttcheck"
	"zpoly/ringsrc"
)

func main() {
	p := flag.Uint64("p", (1<<61)-1, "prime modulus")
	minDeg := flag.Int("min", 8, "minimum degree")
	maxDeg := flag.Int("max", 4096, "maximum degree")
	steps := flag.Int("steps", 12, "number of geometric steps")
	out := flag.String("out", "polybench.html", "output HTML path")
	seed := flag.String("seed", "polybench", "deterministic sampling seed")
	flag.Parse()

	mod, err := modular.New(*p)
	if err != nil {
		fmt.Fprintln(os.Stderr, "polybench:", err)
		os.Exit(1)
	}
	stream := ringsrc.NewStream([]byte(*seed))

	degrees := geometricSteps(*minDeg, *maxDeg, *steps)

	var xAxis []string
	var classicalMS, karatsubaMS []opts.LineData
	for _, d := range degrees {
		a := stream.Poly(mod, d)
		b := stream.Poly(mod, d)

		wlog.Printf("[polybench] degree=%d sampling operands\n", d)

		t0 := time.Now()
		a.Clone().MultiplyClassical(b)
		classical := time.Since(t0)

		t1 := time.Now()
		a.Clone().MultiplyKaratsuba(b)
		karatsuba := time.Since(t1)

		fmt.Printf("degree=%-6d classical=%-12s karatsuba=%-12s\n", d, classical, karatsuba)

		xAxis = append(xAxis, fmt.Sprintf("%d", d))
		classicalMS = append(classicalMS, opts.LineData{Value: classical.Seconds() * 1000})
		karatsubaMS = append(karatsubaMS, opts.LineData{Value: karatsuba.Seconds() * 1000})

		t2 := time.Now()
		if _, err := nttcheck.CrossCheck(mod, a, b); err != nil {
			fmt.Printf("  (ntt cross-check unavailable at degree %d: %v)\n", d, err)
		} else {
			fmt.Printf("  ntt cross-check=%s\n", time.Since(t2))
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Classical vs. Karatsuba multiplication"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "operand degree"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "time (ms)", Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(xAxis).
		AddSeries("classical", classicalMS).
		AddSeries("karatsuba", karatsubaMS)

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "polybench: create output:", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := line.Render(f); err != nil {
		fmt.Fprintln(os.Stderr, "polybench: render:", err)
		os.Exit(1)
	}
	fmt.Println("wrote", *out)
}

func geometricSteps(min, max, steps int) []int {
	if steps < 2 {
		steps = 2
	}
	out := make([]int, 0, steps)
	ratio := float64(max) / float64(min)
	for i := 0; i < steps; i++ {
		frac := float64(i) / float64(steps-1)
		d := float64(min) * math.Pow(ratio, frac)
		out = append(out, int(d))
	}
	return out
}
