// Package fork runs a small, fixed number of independent functions
// in parallel and returns all their results at once.
//
// The basic operation is Pair, which calls two functions, possibly
// concurrently, and returns when both have completed. JoinN (for N
// from 3 to tuple.MaxArity) extends that to N functions of
// arbitrary result types:
//
//	sum, s, fact := fork.Join3(
//		func() int { return sumTo(50) },
//		func() string { return strings.Repeat("abc", 3) },
//		func() uint64 { return factorial(8) },
//	)
//
// The calls are arranged as a chain of pairs: the first function runs
// alongside the join of the remaining ones. The nested results that
// produces are flattened with the tuple package, so the results are
// always returned in argument order, whatever order the functions
// finish in.
//
// If any function panics, the join panics with the same value in the
// calling goroutine once the functions already started alongside it
// have returned. The JoinEN variants take functions that return an error
// and a context that is cancelled when the first of them fails.
//
// How the two halves of each pair are run is decided by a Forker.
// The JoinWithN variants take an explicit Forker; the others use
// Concurrent.
package fork

// The generated code covers arities up to tuple.MaxArity,
// so the tuple package must be generated first.
//go:generate go run generate.go
