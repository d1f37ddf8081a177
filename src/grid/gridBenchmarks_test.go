package grid

import (
	"math/rand"
	"testing"
)

const (
	benchRows = 200
	benchCols = 200
)

func newBenchGrid(historyLimit int) *Grid {
	g := New(benchRows, benchCols, historyLimit)
	g.SettleRandom(rand.New(rand.NewSource(42)), 0.3)
	for i := 0; i < benchRows; i += 7 {
		g.Set(i, i, Obstacle)
	}
	return g
}

func Benchmark_Update(b *testing.B) {
	for _, bc := range []struct {
		name  string
		limit int
	}{
		{"limit1000", 1000},
		{"limit100", 100},
		{"limit1", 1},
	} {
		b.Run(bc.name, func(b *testing.B) {
			g := newBenchGrid(bc.limit)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.Update()
			}
		})
	}
}

func Benchmark_UpdateUndo(b *testing.B) {
	g := newBenchGrid(DefHistoryLimit)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Update()
		g.Undo()
	}
}

func Benchmark_HasStableState(b *testing.B) {
	g := newBenchGrid(DefHistoryLimit)
	g.Update()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HasStableState()
	}
}
