package kdgo

import "math"

// Nearest returns the indexed object closest to target by squared
// Euclidean distance, or nil if the index is empty.
//
// When several objects are equally close, the one found first by the
// descent wins; which one that is may change between builds of the same
// input and is not guaranteed stable.
func (t *KdTree[P, O]) Nearest(target P) *O {
	if len(t.objects) == 0 {
		return nil
	}

	s := nearestState[P, O]{
		target:    target,
		distance2: math.Inf(1),
	}
	t.nearest(&s, 0, len(t.objects), 0)

	return s.best
}

// nearestState is owned by a single descent; the running best bound must
// be tightened in visitation order, which is why there is no parallel
// variant of Nearest.
type nearestState[P Point[P], O Object[P]] struct {
	target    P
	distance2 float64
	best      *O
}

func (t *KdTree[P, O]) nearest(s *nearestState[P, O], lo, hi, axis int) {
	for {
		mid := lo + (hi-lo)/2
		pos := t.objects[mid].Position()

		if d2 := s.target.SquaredDistance(pos); d2 < s.distance2 {
			s.distance2 = d2
			s.best = &t.objects[mid]
		}

		offset := s.target.Coord(axis) - pos.Coord(axis)

		// The subtree on the target's side of the splitting plane is
		// searched first so the bound is as tight as possible before the
		// far side's pruning test.
		nearLo, nearHi := lo, mid
		farLo, farHi := mid+1, hi
		if offset >= 0 {
			nearLo, nearHi, farLo, farHi = farLo, farHi, nearLo, nearHi
		}

		nextAxis := (axis + 1) % pos.Dims()

		if nearLo < nearHi {
			t.nearest(s, nearLo, nearHi, nextAxis)
		}

		// The far subtree can only hold a closer object if the sphere
		// around the target with the current best radius crosses the
		// splitting plane.
		if farLo >= farHi || s.distance2 <= offset*offset {
			return
		}

		lo, hi, axis = farLo, farHi, nextAxis
	}
}
