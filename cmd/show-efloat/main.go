// show-efloat shows the error intervals that result from operations between
// floats, mostly for debugging bound propagation.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pfcm/efloat"
)

var (
	aerrFlag = flag.Float64("aerr", 0, "absolute error `magnitude` attached to the first number")
	berrFlag = flag.Float64("berr", 0, "absolute error `magnitude` attached to the second number")
	opsFlag  = flag.String("ops", "", "comma separated list of `operations` to show. Available operations are: "+strings.Join(opKeys, ", ")+". Defaults to all operations")
)

var (
	unaryOps = map[string]func(efloat.EFloat32) (efloat.EFloat32, error){
		"neg":  func(a efloat.EFloat32) (efloat.EFloat32, error) { return a.Neg(), nil },
		"abs":  func(a efloat.EFloat32) (efloat.EFloat32, error) { return a.Abs(), nil },
		"sqrt": func(a efloat.EFloat32) (efloat.EFloat32, error) { return a.Sqrt() },
	}
	binaryOps = map[string]func(a, b efloat.EFloat32) (efloat.EFloat32, error){
		"add": func(a, b efloat.EFloat32) (efloat.EFloat32, error) { return a.Add(b), nil },
		"sub": func(a, b efloat.EFloat32) (efloat.EFloat32, error) { return a.Sub(b), nil },
		"mul": func(a, b efloat.EFloat32) (efloat.EFloat32, error) { return a.Mul(b), nil },
		"div": func(a, b efloat.EFloat32) (efloat.EFloat32, error) { return a.Div(b) },
		"mod": func(a, b efloat.EFloat32) (efloat.EFloat32, error) { return a.Mod(b) },
	}
	opKeys = []string{"neg", "abs", "sqrt", "add", "sub", "mul", "div", "mod"}
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if n := flag.NArg(); n < 1 || n > 2 {
		fail("Need exactly one or two arguments.")
	}

	ops, err := parseOps(*opsFlag)
	if err != nil {
		fail(err.Error())
	}

	a, err := parse(flag.Arg(0), *aerrFlag)
	if err != nil {
		fail(err.Error())
	}

	w := tabwriter.NewWriter(os.Stdout, 14, 1, 1, ' ', 0)
	showValue(w, "a", a)
	showUnary(w, ops, a)

	if flag.NArg() == 2 {
		b, err := parse(flag.Arg(1), *berrFlag)
		if err != nil {
			fail(err.Error())
		}
		fmt.Fprintln(w)
		showValue(w, "b", b)
		showUnary(w, ops, b)
		fmt.Fprintln(w)
		showBinary(w, ops, a, b)
	}

	if err := w.Flush(); err != nil {
		fail(err.Error())
	}
}

func parseOps(os string) (map[string]bool, error) {
	all := make(map[string]bool)
	for _, o := range opKeys {
		all[o] = true
	}
	if os == "" {
		return all, nil
	}
	result := make(map[string]bool)
	for _, o := range strings.Split(os, ",") {
		if !all[o] {
			return nil, fmt.Errorf("unknown op %q", o)
		}
		result[o] = true
	}
	return result, nil
}

func parse(s string, abserr float64) (efloat.EFloat32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return efloat.EFloat32{}, err
	}
	return efloat.New32WithErr(float32(f), float32(abserr))
}

func showValue(w io.Writer, name string, e efloat.EFloat32) {
	fmt.Fprintf(w, "%s\t%g\t[%g,\t%g]\twidth %g\n",
		name, e.Value(), e.LowerBound(), e.UpperBound(), e.AbsoluteError())
}

func showUnary(w io.Writer, ops map[string]bool, a efloat.EFloat32) {
	for _, k := range opKeys {
		f, ok := unaryOps[k]
		if !ok || !ops[k] {
			continue
		}
		e, err := f(a)
		showResult(w, k, e, err)
	}
}

func showBinary(w io.Writer, ops map[string]bool, a, b efloat.EFloat32) {
	for _, k := range opKeys {
		f, ok := binaryOps[k]
		if !ok || !ops[k] {
			continue
		}
		e, err := f(a, b)
		showResult(w, k, e, err)
	}
}

func showResult(w io.Writer, name string, e efloat.EFloat32, err error) {
	if err != nil {
		fmt.Fprintf(w, "%s\t%v\n", name, err)
		return
	}
	fmt.Fprintf(w, "%s\t%g\t[%g,\t%g]\twidth %g\n",
		name, e.Value(), e.LowerBound(), e.UpperBound(), e.AbsoluteError())
}

func fail(reason string) {
	fmt.Fprintln(os.Stderr, reason)
	fmt.Fprint(os.Stderr, help)
	os.Exit(1)
}

const help = `show-efloat shows the error intervals produced by operations on
error-bounded floats.
Usage:
	show-efloat [-aerr e] [-berr e] num [num]

Where num is a floating point literal in Go syntax. The -aerr and -berr flags
attach an initial absolute error to the first and second number. If a second
number is provided, also shows the results of the binary operations between
them.
`
