package benchmarks

import (
	"context"
	"sync"
	"testing"

	"github.com/destel/rill"
	"github.com/go-quicktest/qt"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/rogpeppe/parjoin/fork"
)

func BenchmarkJoin8_Fork(b *testing.B) {
	fs := tasks(8)
	for b.Loop() {
		fork.Join8(fs[0], fs[1], fs[2], fs[3], fs[4], fs[5], fs[6], fs[7])
	}
}

func BenchmarkJoin8_ForkLimit4(b *testing.B) {
	fs := tasks(8)
	fk := fork.Limit(4)
	for b.Loop() {
		fork.JoinWith8(fk, fs[0], fs[1], fs[2], fs[3], fs[4], fs[5], fs[6], fs[7])
	}
}

func BenchmarkJoin8_ForkE(b *testing.B) {
	fs := tasks(8)
	e := func(f func() int) func(context.Context) (int, error) {
		return func(context.Context) (int, error) {
			return f(), nil
		}
	}
	ctx := context.Background()
	for b.Loop() {
		fork.JoinE8(ctx, e(fs[0]), e(fs[1]), e(fs[2]), e(fs[3]), e(fs[4]), e(fs[5]), e(fs[6]), e(fs[7]))
	}
}

func BenchmarkJoin8_Lo(b *testing.B) {
	fs := tasks(8)
	for b.Loop() {
		chans := make([]<-chan int, len(fs))
		for i, f := range fs {
			chans[i] = lo.Async(f)
		}
		results := make([]int, len(fs))
		for i, c := range chans {
			results[i] = <-c
		}
	}
}

func BenchmarkJoin8_Rill(b *testing.B) {
	fs := tasks(8)
	for b.Loop() {
		in := rill.FromSlice(fs, nil)
		out := rill.OrderedMap(in, len(fs), func(f func() int) (int, error) {
			return f(), nil
		})
		if _, err := rill.ToSlice(out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkJoin8_Errgroup(b *testing.B) {
	fs := tasks(8)
	for b.Loop() {
		var g errgroup.Group
		results := make([]int, len(fs))
		for i, f := range fs {
			g.Go(func() error {
				results[i] = f()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkJoin8_WaitGroup(b *testing.B) {
	fs := tasks(8)
	for b.Loop() {
		var wg sync.WaitGroup
		results := make([]int, len(fs))
		wg.Add(len(fs))
		for i, f := range fs {
			go func() {
				defer wg.Done()
				results[i] = f()
			}()
		}
		wg.Wait()
	}
}

func BenchmarkJoin8_Sequential(b *testing.B) {
	fs := tasks(8)
	for b.Loop() {
		fork.JoinWith8(fork.Sequential(), fs[0], fs[1], fs[2], fs[3], fs[4], fs[5], fs[6], fs[7])
	}
}

// TestImplementationsAgree checks that every benchmarked implementation
// produces the same results in the same order.
func TestImplementationsAgree(t *testing.T) {
	fs := tasks(8)
	want := []int{0, 1, 2, 3, 4, 5, 6, 7}

	a0, a1, a2, a3, a4, a5, a6, a7 := fork.Join8(fs[0], fs[1], fs[2], fs[3], fs[4], fs[5], fs[6], fs[7])
	qt.Assert(t, qt.DeepEquals([]int{a0, a1, a2, a3, a4, a5, a6, a7}, want), qt.Commentf("fork"))

	got, err := rill.ToSlice(rill.OrderedMap(rill.FromSlice(fs, nil), len(fs), func(f func() int) (int, error) {
		return f(), nil
	}))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(got, want), qt.Commentf("rill"))

	got = lo.Map(fs, func(f func() int, _ int) int {
		return <-lo.Async(f)
	})
	qt.Assert(t, qt.DeepEquals(got, want), qt.Commentf("lo"))
}
