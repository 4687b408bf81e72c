// Package benchmarks compares the fork package against other
// ways of running a fixed set of functions in parallel.
// Run with: go test -bench=. -benchmem
package benchmarks

import (
	"time"
)

// work is the amount of simulated work done by each function.
const work = 10 * time.Microsecond

func task(i int) func() int {
	return func() int {
		time.Sleep(work)
		return i
	}
}

func tasks(n int) []func() int {
	fs := make([]func() int, n)
	for i := range fs {
		fs[i] = task(i)
	}
	return fs
}
