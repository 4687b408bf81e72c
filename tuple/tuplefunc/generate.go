//go:build ignore

package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"

	"github.com/rogpeppe/parjoin/tuple"
)

var (
	maxArity = flag.Int("n", tuple.MaxArity, "maximum number of results; must not exceed tuple.MaxArity")
	outFile  = flag.String("o", "tuplefunc_gen.go", "output file")
)

func main() {
	flag.Parse()
	if *maxArity < 2 {
		log.Fatalf("invalid arity %d", *maxArity)
	}
	if *maxArity > tuple.MaxArity {
		log.Fatalf("arity %d exceeds tuple.MaxArity (%d); regenerate the tuple package first", *maxArity, tuple.MaxArity)
	}
	var buf bytes.Buffer
	buf.WriteString(`// Code generated by generate.go; DO NOT EDIT.

package tuplefunc

import (
	"context"

	"github.com/rogpeppe/parjoin/tuple"
)
`)
	for n := 2; n <= *maxArity; n++ {
		gen(&buf, n)
	}
	data, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated code: %v\n%s", err, buf.Bytes())
	}
	if err := os.WriteFile(*outFile, data, 0o666); err != nil {
		log.Fatal(err)
	}
}

func gen(buf *bytes.Buffer, n int) {
	types := list("R$", n)
	vars := list("r$", n)
	tn := fmt.Sprintf("tuple.T%d[%s]", n, types)
	fmt.Fprintf(buf, `
// ToR_0_%[1]d converts a function with %[1]d results into
// a function returning a single T%[1]d.
func ToR_0_%[1]d[%[2]s any](f func() (%[2]s)) func() %[3]s {
	return func() %[3]s {
		return tuple.MkT%[1]d[%[2]s](f())
	}
}

// ToCRE_0_%[1]d converts a function with %[1]d results and an error into
// a function returning a single T%[1]d and the error.
func ToCRE_0_%[1]d[%[2]s any](f func(context.Context) (%[2]s, error)) func(context.Context) (%[3]s, error) {
	return func(ctx context.Context) (%[3]s, error) {
		%[4]s, err := f(ctx)
		return tuple.MkT%[1]d(%[4]s), err
	}
}
`, n, types, tn, vars)
}

// list returns a comma-separated list holding format for each
// i in [0, n), with every $ in format replaced by i.
func list(format string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strings.ReplaceAll(format, "$", fmt.Sprint(i))
	}
	return strings.Join(parts, ", ")
}
