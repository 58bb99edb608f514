package kdgo

import (
	"math/bits"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Query defines a spatial range query by an axis-aligned bounding box
// and a refinement test for single positions.
//
// The bounding box is a conservative superset of all matching positions
// and drives the subtree pruning; the tighter it is, the fewer positions
// reach Test. Test itself may be arbitrarily expensive, e.g. a distance
// to a polygon.
type Query[P Point[P]] interface {
	// AABB returns the corners of the bounding box, first the one with
	// the smallest and then the one with the largest coordinate values.
	// It is called once per search and is assumed to be cheap.
	AABB() (lower, upper P)

	// Test reports whether a position inside the bounding box matches
	// the query.
	Test(pos P) bool
}

// OffsetPoint is the extra point capability needed to derive a distance
// query's bounding box from its center.
type OffsetPoint[P any] interface {
	Point[P]

	// Offset returns a copy of the point translated by delta on every axis.
	Offset(delta float64) P
}

// WithinBoundingBox yields all objects inside an axis-aligned box.
type WithinBoundingBox[P Point[P]] struct {
	lower P
	upper P
}

// NewWithinBoundingBox constructs a box query from first the corner with
// the smallest and then the corner with the largest coordinate values.
func NewWithinBoundingBox[P Point[P]](lower, upper P) *WithinBoundingBox[P] {
	return &WithinBoundingBox[P]{lower: lower, upper: upper}
}

// AABB returns the corners of the box.
func (q *WithinBoundingBox[P]) AABB() (P, P) { return q.lower, q.upper }

// Test always reports true; the bounding box is the whole query.
func (q *WithinBoundingBox[P]) Test(P) bool { return true }

// WithinDistance yields all objects within a Euclidean distance of a
// center point.
type WithinDistance[P Point[P]] struct {
	lower     P
	upper     P
	center    P
	distance2 float64
}

// NewWithinDistance constructs a distance query from the center and the
// largest allowed Euclidean distance to it.
func NewWithinDistance[P OffsetPoint[P]](center P, distance float64) *WithinDistance[P] {
	return &WithinDistance[P]{
		lower:     center.Offset(-distance),
		upper:     center.Offset(distance),
		center:    center,
		distance2: distance * distance,
	}
}

// AABB returns the box circumscribing the query sphere.
func (q *WithinDistance[P]) AABB() (P, P) { return q.lower, q.upper }

// Test reports whether pos lies within the query distance of the center.
func (q *WithinDistance[P]) Test(pos P) bool {
	return q.center.SquaredDistance(pos) <= q.distance2
}

// Visitor receives matching objects during a range search together with
// their tree ordinal (the position in Objects). Returning false stops
// the search.
type Visitor[O any] func(i int, o *O) bool

// SearchOptions contains configuration options for parallel range search.
type SearchOptions struct {
	// Parallelism caps the number of concurrently searching subtrees.
	// Values < 1 select runtime.GOMAXPROCS(0).
	Parallelism int
}

// DefaultSearchOptions contains the default configuration options for
// parallel range search.
var DefaultSearchOptions = SearchOptions{
	Parallelism: 0,
}

// WithSearchParallelism configures the worker bound for ParLookUp.
func WithSearchParallelism(n int) func(*SearchOptions) {
	return func(o *SearchOptions) {
		o.Parallelism = n
	}
}

// LookUp finds all objects matching the query and passes them to visit
// as they are found, in an unspecified order.
//
// If visit returns false the search stops immediately and LookUp returns
// the object it stopped on; the visitor's closure typically captures
// whatever result the caller wants to carry out of the search. If the
// search exhausts the tree, LookUp returns nil.
func (t *KdTree[P, O]) LookUp(q Query[P], visit Visitor[O]) *O {
	if len(t.objects) == 0 {
		return nil
	}

	lower, upper := q.AABB()

	return t.lookUp(q, visit, lower, upper, 0, len(t.objects), 0)
}

func (t *KdTree[P, O]) lookUp(q Query[P], visit Visitor[O], lower, upper P, lo, hi, axis int) *O {
	// The left descent recurses, the right descent loops; a balanced
	// subrange then keeps the stack logarithmic.
	for {
		mid := lo + (hi-lo)/2
		pos := t.objects[mid].Position()

		if contains(lower, upper, pos) && q.Test(pos) {
			if !visit(mid, &t.objects[mid]) {
				return &t.objects[mid]
			}
		}

		c := pos.Coord(axis)
		nextAxis := (axis + 1) % pos.Dims()

		// Everything left of mid is <= c on this axis; skip the subtree
		// unless the box reaches down to it. Symmetric on the right.
		if lo < mid && lower.Coord(axis) <= c {
			if stopped := t.lookUp(q, visit, lower, upper, lo, mid, nextAxis); stopped != nil {
				return stopped
			}
		}

		if mid+1 < hi && c <= upper.Coord(axis) {
			lo = mid + 1
			axis = nextAxis
		} else {
			return nil
		}
	}
}

// ParLookUp finds all objects matching the query like LookUp, descending
// eligible sibling subtrees as fork/join tasks.
//
// The visitor may be called from multiple goroutines concurrently and
// must synchronize any shared state itself (see CollectBitmapLocked).
// Early stop is supported, but when several branches stop near
// simultaneously it is unspecified which branch's object is returned;
// this is deliberately looser than the sequential leftmost-first
// discovery order of LookUp.
func (t *KdTree[P, O]) ParLookUp(q Query[P], visit Visitor[O], optFns ...func(*SearchOptions)) *O {
	if len(t.objects) == 0 {
		return nil
	}

	opts := DefaultSearchOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	budget := bits.Len(uint(parallelism))

	lower, upper := q.AABB()

	var stopped atomic.Pointer[O]
	t.parLookUp(q, visit, lower, upper, 0, len(t.objects), 0, budget, &stopped)

	return stopped.Load()
}

func (t *KdTree[P, O]) parLookUp(q Query[P], visit Visitor[O], lower, upper P, lo, hi, axis, budget int, stopped *atomic.Pointer[O]) {
	for {
		if stopped.Load() != nil {
			return
		}

		mid := lo + (hi-lo)/2
		pos := t.objects[mid].Position()

		if contains(lower, upper, pos) && q.Test(pos) {
			if !visit(mid, &t.objects[mid]) {
				// First stop wins; concurrent branches race here on purpose.
				stopped.CompareAndSwap(nil, &t.objects[mid])
				return
			}
		}

		c := pos.Coord(axis)
		nextAxis := (axis + 1) % pos.Dims()

		descendLeft := lo < mid && lower.Coord(axis) <= c
		descendRight := mid+1 < hi && c <= upper.Coord(axis)

		if descendLeft && descendRight && budget > 0 {
			var g errgroup.Group
			g.Go(func() error {
				t.parLookUp(q, visit, lower, upper, lo, mid, nextAxis, budget-1, stopped)
				return nil
			})
			t.parLookUp(q, visit, lower, upper, mid+1, hi, nextAxis, budget-1, stopped)
			_ = g.Wait()
			return
		}

		if descendLeft {
			t.parLookUp(q, visit, lower, upper, lo, mid, nextAxis, budget, stopped)
		}

		if !descendRight {
			return
		}

		lo = mid + 1
		axis = nextAxis
	}
}
