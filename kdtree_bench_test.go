package kdgo_test

import (
	"math/rand"
	"testing"

	"github.com/hupe1980/kdgo"
)

func benchStations(n int) []station {
	rng := rand.New(rand.NewSource(42))
	return randomStations(rng, n)
}

func BenchmarkNew(b *testing.B) {
	src := benchStations(100_000)
	work := make([]station, len(src))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, src)
		_ = kdgo.New[kdgo.Point2](work)
	}
}

func BenchmarkNewParallel(b *testing.B) {
	src := benchStations(100_000)
	work := make([]station, len(src))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, src)
		_ = kdgo.NewParallel[kdgo.Point2](work)
	}
}

func BenchmarkLookUp(b *testing.B) {
	tree := kdgo.New[kdgo.Point2](benchStations(100_000))
	q := kdgo.NewWithinDistance(kdgo.Point2{0.5, 0.5}, 0.05)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.LookUp(q, func(int, *station) bool { return true })
	}
}

func BenchmarkNearest(b *testing.B) {
	tree := kdgo.New[kdgo.Point2](benchStations(100_000))
	rng := rand.New(rand.NewSource(7))

	targets := make([]kdgo.Point2, 1024)
	for i := range targets {
		targets[i] = kdgo.Point2{rng.Float64(), rng.Float64()}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Nearest(targets[i%len(targets)])
	}
}
