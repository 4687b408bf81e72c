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
	maxArity = flag.Int("n", tuple.MaxArity, "maximum join arity; must not exceed tuple.MaxArity")
	outFile  = flag.String("o", "join_gen.go", "output file")
)

// minJoinArity holds the smallest arity with a JoinN function.
// Smaller joins are served by Pair or by calling the function directly.
const minJoinArity = 3

func main() {
	flag.Parse()
	if *maxArity < minJoinArity {
		log.Fatalf("invalid arity %d", *maxArity)
	}
	if *maxArity > tuple.MaxArity {
		log.Fatalf("arity %d exceeds tuple.MaxArity (%d); regenerate the tuple package first", *maxArity, tuple.MaxArity)
	}
	var buf bytes.Buffer
	buf.WriteString(`// Code generated by generate.go; DO NOT EDIT.

package fork

import (
	"context"

	"github.com/rogpeppe/parjoin/tuple"
)
`)
	for n := minJoinArity; n <= *maxArity; n++ {
		genJoin(&buf, n)
	}
	genNest1(&buf)
	for n := 2; n <= *maxArity; n++ {
		genNest(&buf, n)
	}
	data, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated code: %v\n%s", err, buf.Bytes())
	}
	if err := os.WriteFile(*outFile, data, 0o666); err != nil {
		log.Fatal(err)
	}
}

// sig holds the fragments of Go source that differ
// between arities.
type sig struct {
	N int
	// Types holds the type parameter names, for example "A0, A1, A2".
	Types string
	// Funcs holds the function parameters of a plain join.
	Funcs string
	// FuncsE holds the function parameters of an error-returning join.
	FuncsE string
	// Args holds the function argument names, for example "f0, f1, f2".
	Args string
	// TailTypes and TailArgs are as for Types and Args
	// but omit the first element.
	TailTypes string
	TailArgs  string
}

func newSig(n int) sig {
	return sig{
		N:         n,
		Types:     list("A$", 0, n),
		Funcs:     list("f$ func() A$", 0, n),
		FuncsE:    list("f$ func(context.Context) (A$, error)", 0, n),
		Args:      list("f$", 0, n),
		TailTypes: list("A$", 1, n),
		TailArgs:  list("f$", 1, n),
	}
}

func genJoin(buf *bytes.Buffer, n int) {
	s := newSig(n)
	fmt.Fprintf(buf, `
// Join%[1]d calls the given functions concurrently and returns
// their results in argument order.
// It is equivalent to JoinWith%[1]d(Concurrent(), %[5]s).
func Join%[1]d[%[2]s any](%[3]s) (%[2]s) {
	return JoinWith%[1]d(Concurrent(), %[5]s)
}

// JoinWith%[1]d uses fk to call the given functions and returns
// their results in argument order. If any of the functions panics,
// JoinWith%[1]d panics with the same value; see PairWith.
func JoinWith%[1]d[%[2]s any](fk Forker, %[3]s) (%[2]s) {
	return tuple.Flatten%[1]d[%[2]s](nest%[1]d(fk, %[5]s)).T()
}

// JoinE%[1]d calls the given functions concurrently and returns
// their results in argument order. The context passed to the
// functions is canceled as soon as any of them fails. If any function
// returns an error, JoinE%[1]d returns the first such error and zero
// values for all the other results.
func JoinE%[1]d[%[2]s any](ctx context.Context, %[4]s) (%[2]s, error) {
	n, err := nestE%[1]d(ctx, %[5]s)
	if err != nil {
		var zero tuple.T%[1]d[%[2]s]
		return %[6]s, err
	}
	t := tuple.Flatten%[1]d[%[2]s](n)
	return %[7]s, nil
}
`, n, s.Types, s.Funcs, s.FuncsE, s.Args, list("zero.A$", 0, n), list("t.A$", 0, n))
}

func genNest1(buf *bytes.Buffer) {
	buf.WriteString(`
func nest1[A0 any](f0 func() A0) tuple.Nested1[A0] {
	return tuple.MkT1(f0())
}

func nestE1[A0 any](ctx context.Context, f0 func(context.Context) (A0, error)) (tuple.Nested1[A0], error) {
	a0, err := f0(ctx)
	return tuple.MkT1(a0), err
}
`)
}

func genNest(buf *bytes.Buffer, n int) {
	s := newSig(n)
	tailCall := fmt.Sprintf("nest%d(fk, %s)", n-1, s.TailArgs)
	if n == 2 {
		tailCall = "nest1(f1)"
	}
	fmt.Fprintf(buf, `
func nest%[1]d[%[2]s any](fk Forker, %[3]s) tuple.Nested%[1]d[%[2]s] {
	a0, rest := PairWith(fk, f0, func() tuple.Nested%[6]d[%[7]s] {
		return %[8]s
	})
	return tuple.MkCons(a0, rest)
}

func nestE%[1]d[%[2]s any](ctx context.Context, %[4]s) (tuple.Nested%[1]d[%[2]s], error) {
	a0, rest, err := PairE(ctx, f0, func(ctx context.Context) (tuple.Nested%[6]d[%[7]s], error) {
		return nestE%[6]d(ctx, %[5]s)
	})
	return tuple.MkCons(a0, rest), err
}
`, n, s.Types, s.Funcs, s.FuncsE, s.TailArgs, n-1, s.TailTypes, tailCall)
}

// list returns a comma-separated list holding format for each
// i in [from, to), with every $ in format replaced by i.
func list(format string, from, to int) string {
	var parts []string
	for i := from; i < to; i++ {
		parts = append(parts, strings.ReplaceAll(format, "$", fmt.Sprint(i)))
	}
	return strings.Join(parts, ", ")
}
