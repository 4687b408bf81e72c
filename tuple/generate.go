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
)

var (
	maxArity = flag.Int("n", 8, "maximum tuple arity")
	outFile  = flag.String("o", "tuple_gen.go", "output file")
)

func main() {
	flag.Parse()
	if *maxArity < 1 {
		log.Fatalf("invalid arity %d", *maxArity)
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `// Code generated by generate.go; DO NOT EDIT.

package tuple

// MaxArity holds the largest tuple arity supported by this package.
const MaxArity = %d
`, *maxArity)
	for n := 1; n <= *maxArity; n++ {
		genTuple(&buf, n)
		if n == 1 {
			genNested1(&buf)
		} else {
			genNested(&buf, n)
		}
	}
	data, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated code: %v\n%s", err, buf.Bytes())
	}
	if err := os.WriteFile(*outFile, data, 0o666); err != nil {
		log.Fatal(err)
	}
}

func genTuple(buf *bytes.Buffer, n int) {
	types := list("A$", 0, n)
	plural := "s"
	results := "(" + types + ")"
	if n == 1 {
		plural = ""
		results = types
	}
	fields := make([]string, n)
	for i := range fields {
		fields[i] = fmt.Sprintf("\tA%d A%d", i, i)
	}
	fmt.Fprintf(buf, `
// T%[1]d holds a tuple of %[1]d value%[2]s.
type T%[1]d[%[3]s any] struct {
%[4]s
}

// MkT%[1]d returns a T%[1]d holding the given value%[2]s.
func MkT%[1]d[%[3]s any](%[5]s) T%[1]d[%[3]s] {
	return T%[1]d[%[3]s]{%[6]s}
}

// T returns the value%[2]s held in the tuple.
func (t T%[1]d[%[3]s]) T() %[7]s {
	return %[8]s
}
`, n, plural, types, strings.Join(fields, "\n"), list("a$ A$", 0, n), list("a$", 0, n), results, list("t.A$", 0, n))
}

func genNested1(buf *bytes.Buffer) {
	buf.WriteString(`
// Nested1 is the nested form of T1. A tuple of a single
// value has no pairs, so it is its own nested form.
type Nested1[A0 any] = T1[A0]

// Flatten1 returns the flat form of c, which is c itself.
func Flatten1[A0 any](c Nested1[A0]) T1[A0] {
	return c
}

// Nest1 returns the nested form of t, which is t itself.
func Nest1[A0 any](t T1[A0]) Nested1[A0] {
	return t
}
`)
}

func genNested(buf *bytes.Buffer, n int) {
	fmt.Fprintf(buf, `
// Nested%[1]d is the nested form of T%[1]d.
type Nested%[1]d[%[2]s any] = Cons[A0, Nested%[3]d[%[4]s]]

// Flatten%[1]d returns the flat form of c.
func Flatten%[1]d[%[2]s any](c Nested%[1]d[%[2]s]) T%[1]d[%[2]s] {
	r := Flatten%[3]d[%[4]s](c.Tail)
	return T%[1]d[%[2]s]{c.Head, %[5]s}
}

// Nest%[1]d returns the nested form of t.
func Nest%[1]d[%[2]s any](t T%[1]d[%[2]s]) Nested%[1]d[%[2]s] {
	return MkCons(t.A0, Nest%[3]d(MkT%[3]d(%[6]s)))
}
`, n, list("A$", 0, n), n-1, list("A$", 1, n), list("r.A$", 0, n-1), list("t.A$", 1, n))
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
