// Package tuple holds a collection of generic struct types
// that hold a specific number of values, along with the
// right-nested pair form of each of them.
//
// A flat tuple of arity k is represented by Tk. The equivalent nested
// form, as produced by a recursive binary computation, is represented
// by Nestedk:
//
//	Nested1[A0]         = T1[A0]
//	Nested2[A0, A1]     = Cons[A0, T1[A1]]
//	Nested3[A0, A1, A2] = Cons[A0, Cons[A1, T1[A2]]]
//
// Flattenk converts from the nested form to the flat form and Nestk
// converts back again. A value with a shape that does not match any
// supported arity has no conversion, so the mistake shows up as a
// compile error rather than at run time.
//
// The largest supported arity is MaxArity. The code for each arity is
// produced by generate.go; run it with a larger -n flag to support
// more.
//
// See the tuple/tuplefunc package for a way to convert between
// multiple-result functions and their single-result equivalents.
package tuple

//go:generate go run generate.go -n 8
