// next-float shows the neighbouring representable values of a float in both
// precisions, mostly for eyeballing how wide one ulp is at a given
// magnitude.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/pfcm/efloat"
)

var bitsFlag = flag.Bool("bits", false, "also show the raw bit patterns in hex")

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		fail("Need at least one argument.")
	}

	w := tabwriter.NewWriter(os.Stdout, 14, 1, 1, ' ', 0)
	for _, arg := range flag.Args() {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fail(err.Error())
		}
		show32(w, float32(f))
		show64(w, f)
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		fail(err.Error())
	}
}

func show32(w io.Writer, f float32) {
	row := func(name string, v float32) {
		if *bitsFlag {
			fmt.Fprintf(w, "%s\t%g\t%#08x\n", name, v, math.Float32bits(v))
			return
		}
		fmt.Fprintf(w, "%s\t%g\n", name, v)
	}
	row("float32", f)
	row("next up", efloat.NextUp32(f))
	row("next down", efloat.NextDown32(f))
}

func show64(w io.Writer, f float64) {
	row := func(name string, v float64) {
		if *bitsFlag {
			fmt.Fprintf(w, "%s\t%g\t%#016x\n", name, v, math.Float64bits(v))
			return
		}
		fmt.Fprintf(w, "%s\t%g\n", name, v)
	}
	row("float64", f)
	row("next up", efloat.NextUp64(f))
	row("next down", efloat.NextDown64(f))
}

func fail(reason string) {
	fmt.Fprintln(os.Stderr, reason)
	fmt.Fprint(os.Stderr, help)
	os.Exit(1)
}

const help = `next-float shows the neighbouring representable values of a float.
Usage:
	next-float num [num...]

Where num is a floating point literal in Go syntax. Each number is shown at
both 32 and 64 bit precision.
`
