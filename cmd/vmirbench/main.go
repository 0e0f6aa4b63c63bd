// Command vmirbench measures how parse throughput scales with function
// size and plots the result.
//
// It generates synthetic function bodies of increasing instruction
// count, drives each one through the real build.Context dispatcher the
// way a bitcode reader would, and times the run. Results are summarized
// with median/stddev over repeated runs and rendered as an SVG line
// plot, the same pipeline the teacher's benchplot tool uses for
// benchmark visualization.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/vmir-go/vmir/bitcode"
	"github.com/vmir-go/vmir/build"
	"github.com/vmir-go/vmir/ir"
	"github.com/vmir-go/vmir/typetab"
	"github.com/vmir-go/vmir/valuetab"
)

// sample is one plotted row: a function size and its timing summary.
// Exported fields only — table.TableFromStructs reads them by name.
type sample struct {
	Instructions int
	MedianNs     float64
	StdDevNs     float64
}

func main() {
	log.SetPrefix("vmirbench: ")
	log.SetFlags(0)

	var (
		flagSizes = flag.String("sizes", "10,100,1000,10000", "comma-separated instruction counts to benchmark")
		flagReps  = flag.Int("reps", 15, "number of timed runs per size")
		flagOut   = flag.String("o", "vmirbench.svg", "write plot to `file`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	sizes, err := parseSizes(*flagSizes)
	if err != nil {
		log.Fatal(err)
	}

	var samples []sample
	for _, n := range sizes {
		xs := make([]float64, *flagReps)
		for i := range xs {
			xs[i] = timeParse(n).Seconds() * 1e9
		}
		samp := stats.Sample{Xs: xs}
		samples = append(samples, sample{
			Instructions: n,
			MedianNs:     samp.Percentile(0.5),
			StdDevNs:     samp.StdDev(),
		})
		log.Printf("n=%d median=%.0fns stddev=%.0fns", n, samp.Percentile(0.5), samp.StdDev())
	}

	tab := table.TableFromStructs(samples)
	plot := gg.NewPlot(tab)
	plot.Add(gg.LayerLines{X: "Instructions", Y: "MedianNs"})
	plot.Add(gg.LayerPoints{X: "Instructions", Y: "MedianNs"})
	plot.Add(gg.Title("parse time vs. function size"))

	f, err := os.Create(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := plot.WriteSVG(f, 700, 450); err != nil {
		log.Fatal(err)
	}
}

func parseSizes(spec string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("vmirbench: bad size %q: %w", part, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// timeParse builds a fresh unit containing a single function with n
// chained binop instructions followed by a ret, and returns how long the
// whole function body took to parse.
func timeParse(n int) time.Duration {
	unit := ir.NewUnit()
	i32 := typetab.ID(3) // seeded by typetab.New(): void, i1, i8, i32, i64
	unit.Values.Alloc(valuetab.Value{Class: valuetab.Constant, Type: int(i32), ConstBits: 1})

	start := time.Now()

	c := build.NewContext(unit, "bench", 0)
	if err := c.DeclareBlocks(1); err != nil {
		log.Fatalf("DeclareBlocks: %v", err)
	}

	for i := 0; i < n; i++ {
		next := int64(unit.Values.NextValue())
		rec := bitcode.Record{
			Op:   int(bitcode.InstBinop),
			Args: []int64{1, next, 0}, // lhs: previous result; rhs: the constant at v0; op: add
		}
		if err := c.Handle(rec); err != nil {
			log.Fatalf("binop %d: %v", i, err)
		}
	}
	if err := c.Handle(bitcode.Record{Op: int(bitcode.InstRet), Args: []int64{1}}); err != nil {
		log.Fatalf("ret: %v", err)
	}

	return time.Since(start)
}
