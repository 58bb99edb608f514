package kdgo

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Collect returns a visitor that appends every match to out and never
// stops the search.
func Collect[O any](out *[]*O) Visitor[O] {
	return func(_ int, o *O) bool {
		*out = append(*out, o)
		return true
	}
}

// CollectLocked is the mutex-guarded variant of Collect for use with
// ParLookUp.
func CollectLocked[O any](mu *sync.Mutex, out *[]*O) Visitor[O] {
	return func(_ int, o *O) bool {
		mu.Lock()
		*out = append(*out, o)
		mu.Unlock()
		return true
	}
}

// CollectBitmap returns a visitor that records the tree ordinals of all
// matches in bm.
//
// Ordinal bitmaps are cheap to intersect and union, which makes them the
// natural currency for combining several range queries over the same
// tree before touching any object.
func CollectBitmap[O any](bm *roaring.Bitmap) Visitor[O] {
	return func(i int, _ *O) bool {
		bm.Add(uint32(i))
		return true
	}
}

// CollectBitmapLocked is the mutex-guarded variant of CollectBitmap for
// use with ParLookUp.
func CollectBitmapLocked[O any](mu *sync.Mutex, bm *roaring.Bitmap) Visitor[O] {
	return func(i int, _ *O) bool {
		mu.Lock()
		bm.Add(uint32(i))
		mu.Unlock()
		return true
	}
}

// FilterBitmap wraps a visitor so that only objects whose tree ordinal
// is contained in allowed pass through. Objects outside the bitmap are
// skipped without stopping the search.
func FilterBitmap[O any](allowed *roaring.Bitmap, visit Visitor[O]) Visitor[O] {
	return func(i int, o *O) bool {
		if !allowed.Contains(uint32(i)) {
			return true
		}
		return visit(i, o)
	}
}
