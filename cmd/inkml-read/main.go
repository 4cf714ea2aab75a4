// Command inkml-read is an illustrative CLI wrapping Decode: it reads an
// InkML file and, for each trace, prints a "trace #N" header line, then
// the trace's X, Y, T channels as decimals with three fractional digits,
// one sample per line, then a blank line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/willabides/inkml"
)

func main() {
	assumeLocalRefs := pflag.Bool("assume-local-refs", false, "treat every id reference as local even without a leading '#'")
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: inkml-read [--assume-local-refs] <path>")
		os.Exit(2)
	}

	if err := run(pflag.Arg(0), *assumeLocalRefs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, assumeLocalRefs bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("inkml-read: %w", err)
	}
	defer f.Close()

	doc, err := inkml.Decode(f, inkml.WithAssumeLocalRefs(assumeLocalRefs))
	if err != nil {
		return fmt.Errorf("inkml-read: %w", err)
	}

	index := 0
	for _, item := range doc.Traces {
		printTraces(item, &index)
	}
	return nil
}

// printTraces walks a TraceItem, printing every Trace it contains
// (including those nested inside trace groups) in document order. Only
// samples present in all three of X, Y, and T are printed.
func printTraces(item inkml.TraceItem, index *int) {
	switch v := item.(type) {
	case *inkml.Trace:
		fmt.Printf("trace #%d\n", *index)
		*index++
		x := v.Channels["X"]
		y := v.Channels["Y"]
		t := v.Channels["T"]
		n := min(len(x), len(y), len(t))
		for i := 0; i < n; i++ {
			fmt.Printf("%.3f, %.3f, %.3f\n", x[i], y[i], t[i])
		}
		fmt.Println()
	case *inkml.TraceGroup:
		for _, child := range v.Traces {
			printTraces(child, index)
		}
	}
}
