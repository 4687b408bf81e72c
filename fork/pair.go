package fork

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// errPanicked is used to cancel the sibling of a
// PairE branch that panicked. It is never returned.
var errPanicked = errors.New("fork: function panicked")

// Pair calls fa and fb concurrently and returns their results.
// It is equivalent to PairWith(Concurrent(), fa, fb).
func Pair[A, B any](fa func() A, fb func() B) (A, B) {
	return PairWith(Concurrent(), fa, fb)
}

// PairWith uses fk to call fa and fb and returns their results.
//
// If either function panics, PairWith waits for the other one to
// return and then panics with the same value. If both panic,
// the value from fa is used.
//
// A function that calls runtime.Goexit is treated in the same way:
// PairWith calls runtime.Goexit instead of returning. Goexit cannot
// be stopped, so when the function runs in the calling goroutine
// (always fa for Concurrent, and both for Sequential), that goroutine
// exits straight away without waiting for the other function.
func PairWith[A, B any](fk Forker, fa func() A, fb func() B) (a A, b B) {
	var pa, pb *panicked
	fk.Fork(func() {
		catch(&pa, nil, func() {
			a = fa()
		})
	}, func() {
		catch(&pb, nil, func() {
			b = fb()
		})
	})
	pa.repanic()
	pb.repanic()
	return a, b
}

// PairE calls fa and fb concurrently and returns their results.
// The context passed to each function is derived from ctx
// and is canceled when either function returns an error,
// panics or calls runtime.Goexit.
//
// PairE returns when both functions have returned. If either
// returned an error, PairE returns the first such error
// and zero values for both results. Panics and calls to
// runtime.Goexit are treated as for PairWith.
func PairE[A, B any](ctx context.Context, fa func(context.Context) (A, error), fb func(context.Context) (B, error)) (A, B, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	var (
		a      A
		b      B
		pa, pb *panicked
	)
	g.Go(func() error {
		var err error
		if catch(&pa, cancel, func() {
			a, err = fa(ctx)
		}) {
			return errPanicked
		}
		return err
	})
	g.Go(func() error {
		var err error
		if catch(&pb, cancel, func() {
			b, err = fb(ctx)
		}) {
			return errPanicked
		}
		return err
	})
	err := g.Wait()
	pa.repanic()
	pb.repanic()
	if err != nil {
		return *new(A), *new(B), err
	}
	return a, b, nil
}

// panicked records a function that did not return normally:
// either it panicked with val or it called runtime.Goexit.
type panicked struct {
	val    any
	goexit bool
}

// catch calls f. If f panics or calls runtime.Goexit, catch stores
// that in *p and calls abort if it is non-nil. A call to Goexit
// still ends the current goroutine, so *p is set from a deferred
// function rather than returned.
//
// catch reports whether f failed to return normally.
func catch(p **panicked, abort func(), f func()) (failed bool) {
	returned := false
	defer func() {
		if e := recover(); e != nil {
			*p = &panicked{val: e}
		} else if !returned {
			*p = &panicked{goexit: true}
		} else {
			return
		}
		failed = true
		if abort != nil {
			abort()
		}
	}()
	f()
	returned = true
	return false
}

// repanic panics with the recovered value, or calls
// runtime.Goexit if that is how the function ended.
// It does nothing if p is nil.
func (p *panicked) repanic() {
	switch {
	case p == nil:
	case p.goexit:
		runtime.Goexit()
	default:
		panic(p.val)
	}
}
