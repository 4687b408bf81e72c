// Package tuplefunc provides functions that convert multiple-result
// functions into functions that return a single tuple value.
// This makes it possible to pass such functions to generic operations
// that are designed to operate on single-result functions, such as
// the fork.Join family.
//
// The names of the functions in this package match the following regular expression:
//
//	ToC?RE?_0_[0-9]+
//
// Each optional letter represents one aspect of the function that's being converted.
//
//	C - context.Context argument
//	R - return parameters
//	E - error return
//
// The first number is the number of argument parameters (not including
// context.Context for a C function), which is always zero here;
// the second number is the number of return parameters (not including error for an E function).
//
// So, for example:
//
//	ToCRE_0_3
//
// converts from (for some types R0, R1 and R2)
//
//	func(context.Context) (R0, R1, R2, error)
//
// to:
//
//	func(context.Context) (tuple.T3[R0, R1, R2], error)
package tuplefunc

// The generated code covers arities up to tuple.MaxArity,
// so the tuple package must be generated first.
//go:generate go run generate.go
