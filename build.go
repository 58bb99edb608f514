package kdgo

import (
	"math/bits"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/kdgo/internal/selection"
)

// BuildOptions contains configuration options for parallel construction.
type BuildOptions struct {
	// Parallelism caps the number of concurrently building subtrees.
	// Values < 1 select runtime.GOMAXPROCS(0).
	Parallelism int
}

// DefaultBuildOptions contains the default configuration options for
// parallel construction.
var DefaultBuildOptions = BuildOptions{
	Parallelism: 0,
}

// WithParallelism configures the worker bound for NewParallel.
func WithParallelism(n int) func(*BuildOptions) {
	return func(o *BuildOptions) {
		o.Parallelism = n
	}
}

// NewParallel builds an index like New, dispatching the two halves of
// every split as fork/join tasks until the parallelism budget is spent.
//
// For distinct coordinate values the resulting layout is identical to the
// sequential build. When several objects share a coordinate on the split
// axis, their placement among each other may differ between runs; the k-d
// layout and the stored multiset are unaffected.
func NewParallel[P Point[P], O Object[P]](objects []O, optFns ...func(*BuildOptions)) *KdTree[P, O] {
	opts := DefaultBuildOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	// Each fork level doubles the number of in-flight subtrees, so a
	// budget of log2(parallelism)+1 levels saturates the worker count.
	budget := bits.Len(uint(parallelism))

	parSortObjects[P](objects, 0, budget)

	return &KdTree[P, O]{objects: objects}
}

// sortObjects arranges objects into the k-d layout: the median on the
// current axis lands in the middle, then both halves are arranged
// recursively on the next axis.
func sortObjects[P Point[P], O Object[P]](objects []O, axis int) {
	if len(objects) <= 1 {
		return
	}

	left, right, nextAxis := sortAxis[P](objects, axis)

	sortObjects[P](left, nextAxis)
	sortObjects[P](right, nextAxis)
}

func parSortObjects[P Point[P], O Object[P]](objects []O, axis, budget int) {
	if len(objects) <= 1 {
		return
	}

	if budget <= 0 {
		sortObjects[P](objects, axis)
		return
	}

	left, right, nextAxis := sortAxis[P](objects, axis)

	var g errgroup.Group
	g.Go(func() error {
		parSortObjects[P](left, nextAxis, budget-1)
		return nil
	})
	parSortObjects[P](right, nextAxis, budget-1)

	// The subtree tasks cannot fail; Wait only joins them.
	_ = g.Wait()
}

// sortAxis places the median for the given axis at the midpoint of
// objects and returns the two untouched halves together with the next
// axis. The halves are disjoint subslices, so the recursive calls may
// run concurrently without synchronization.
func sortAxis[P Point[P], O Object[P]](objects []O, axis int) (left, right []O, nextAxis int) {
	mid := len(objects) / 2

	selection.Select(objects, mid, func(a, b O) bool {
		return a.Position().Coord(axis) < b.Position().Coord(axis)
	})

	nextAxis = (axis + 1) % objects[mid].Position().Dims()

	return objects[:mid], objects[mid+1:], nextAxis
}
