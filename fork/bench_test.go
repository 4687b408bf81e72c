package fork_test

import (
	"context"
	"testing"

	"github.com/rogpeppe/parjoin/fork"
)

func BenchmarkPair(b *testing.B) {
	for b.Loop() {
		fork.Pair(
			func() int { return sumTo(100) },
			func() int { return sumTo(100) },
		)
	}
}

func BenchmarkJoin8Concurrent(b *testing.B) {
	benchmarkJoin8(b, fork.Concurrent())
}

func BenchmarkJoin8Sequential(b *testing.B) {
	benchmarkJoin8(b, fork.Sequential())
}

func BenchmarkJoin8Limit2(b *testing.B) {
	benchmarkJoin8(b, fork.Limit(2))
}

func benchmarkJoin8(b *testing.B, fk fork.Forker) {
	f := func() int { return sumTo(1000) }
	for b.Loop() {
		fork.JoinWith8(fk, f, f, f, f, f, f, f, f)
	}
}

func BenchmarkJoinE8(b *testing.B) {
	ctx := context.Background()
	f := func(context.Context) (int, error) { return sumTo(1000), nil }
	for b.Loop() {
		fork.JoinE8(ctx, f, f, f, f, f, f, f, f)
	}
}
