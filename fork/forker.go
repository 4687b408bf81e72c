package fork

import (
	"sync"

	"golang.org/x/sync/semaphore"
)

// Forker is the primitive that all the operations in this package
// are built on.
type Forker interface {
	// Fork calls f0 and f1, possibly concurrently, and returns when
	// both have returned. The functions passed to Fork by this
	// package never panic.
	Fork(f0, f1 func())
}

// Concurrent returns a Forker that runs f1 in a new goroutine
// and f0 in the calling goroutine.
func Concurrent() Forker {
	return concurrent{}
}

type concurrent struct{}

func (concurrent) Fork(f0, f1 func()) {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f1()
	}()
	f0()
	wg.Wait()
}

// Sequential returns a Forker that calls f0 and then f1
// in the calling goroutine. It can be useful for
// testing and debugging.
func Sequential() Forker {
	return sequential{}
}

type sequential struct{}

func (sequential) Fork(f0, f1 func()) {
	f0()
	f1()
}

// Limit returns a Forker that behaves like Concurrent
// except that no more than n goroutines started by it
// will be running at any one time. When that many are running,
// Fork calls both functions in the calling goroutine instead
// of waiting, so nested forks cannot deadlock.
//
// If n <= 0, Limit is equivalent to Sequential.
func Limit(n int) Forker {
	if n <= 0 {
		return sequential{}
	}
	return &limited{
		sem: semaphore.NewWeighted(int64(n)),
	}
}

type limited struct {
	sem *semaphore.Weighted
}

func (l *limited) Fork(f0, f1 func()) {
	if !l.sem.TryAcquire(1) {
		f0()
		f1()
		return
	}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer l.sem.Release(1)
		f1()
	}()
	f0()
	wg.Wait()
}
