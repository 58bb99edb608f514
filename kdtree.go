package kdgo

// Compile-time checks that the built-in point types satisfy the interfaces.
var (
	_ Point[Point2]  = Point2{}
	_ Point[Point3]  = Point3{}
	_ Object[Point2] = Point2{}
	_ Object[Point3] = Point3{}
)

// KdTree is an immutable spatial index over a fixed set of objects.
//
// The backing slice is an implicit, pointer-free k-d tree: for every
// subrange [lo, hi) visited at depth d, the element at mid = lo+(hi-lo)/2
// splits the subrange along axis d mod Dims. Parent/child relationships
// are pure index arithmetic; no per-node allocation exists.
//
// A KdTree is read-only after construction and safe for concurrent
// queries. There is no way to insert, delete, or rebalance; build a new
// tree instead.
type KdTree[P Point[P], O Object[P]] struct {
	objects []O
}

// New builds an index from the given objects.
//
// The slice is reordered in place and owned by the returned tree; the
// caller must not modify it (or any object's position) afterwards.
//
// The first type parameter usually has to be spelled out, the second is
// inferred from the argument:
//
//	tree := kdgo.New[kdgo.Point2](cities)
func New[P Point[P], O Object[P]](objects []O) *KdTree[P, O] {
	sortObjects[P](objects, 0)

	return &KdTree[P, O]{objects: objects}
}

// FromOrdered wraps a slice that is trusted to already satisfy the k-d
// layout, skipping the build step entirely.
//
// This is the entry point for externally produced data, e.g. a decoded
// snapshot or a memory-mapped region. No validation is performed: if the
// layout does not actually hold, queries return silently wrong results.
func FromOrdered[P Point[P], O Object[P]](objects []O) *KdTree[P, O] {
	return &KdTree[P, O]{objects: objects}
}

// Len returns the number of indexed objects.
func (t *KdTree[P, O]) Len() int { return len(t.objects) }

// Objects returns the backing slice in tree order.
//
// The slice is shared with the index and must be treated as read-only.
// Iterating it visits every indexed object exactly once, which is the
// cheapest way to enumerate the full set.
func (t *KdTree[P, O]) Objects() []O { return t.objects }

// At returns a pointer to the object at tree ordinal i.
func (t *KdTree[P, O]) At(i int) *O { return &t.objects[i] }
