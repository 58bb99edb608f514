package kdgo

// Point describes a fixed-dimension coordinate vector.
//
// The type parameter P is the implementing type itself, so that
// SquaredDistance can be expressed without interface boxing:
//
//	type GeoPoint [2]float64
//
//	func (p GeoPoint) Dims() int { ... }
//
// Coordinates must be totally ordered under < for every axis. Feeding
// NaN coordinates into the index breaks the comparisons the build and
// query descents rely on; the resulting layout and query answers are
// unspecified (never memory-unsafe).
type Point[P any] interface {
	// Dims returns the number of dimensions.
	// It must be constant for the lifetime of the value.
	Dims() int

	// Coord returns the coordinate along the given axis, 0 <= axis < Dims().
	Coord(axis int) float64

	// SquaredDistance returns the squared Euclidean distance to other.
	// It must be symmetric and non-negative.
	SquaredDistance(other P) float64
}

// Object is anything positioned in space that can be stored in a KdTree.
//
// Position must be cheap and must return the same point for as long as the
// object is inside an index. Mutating an object's position after the index
// is built silently invalidates query results; it is a documented caller
// contract, not a checked error.
type Object[P any] interface {
	Position() P
}

// Point2 is a ready-made two-dimensional point.
type Point2 [2]float64

// Dims returns 2.
func (p Point2) Dims() int { return 2 }

// Coord returns the coordinate along the given axis.
func (p Point2) Coord(axis int) float64 { return p[axis] }

// SquaredDistance returns the squared Euclidean distance to other.
func (p Point2) SquaredDistance(other Point2) float64 {
	dx := p[0] - other[0]
	dy := p[1] - other[1]
	return dx*dx + dy*dy
}

// Offset returns a copy of p translated by delta on every axis.
func (p Point2) Offset(delta float64) Point2 {
	return Point2{p[0] + delta, p[1] + delta}
}

// Position makes a bare Point2 usable as an Object.
func (p Point2) Position() Point2 { return p }

// Point3 is a ready-made three-dimensional point.
type Point3 [3]float64

// Dims returns 3.
func (p Point3) Dims() int { return 3 }

// Coord returns the coordinate along the given axis.
func (p Point3) Coord(axis int) float64 { return p[axis] }

// SquaredDistance returns the squared Euclidean distance to other.
func (p Point3) SquaredDistance(other Point3) float64 {
	dx := p[0] - other[0]
	dy := p[1] - other[1]
	dz := p[2] - other[2]
	return dx*dx + dy*dy + dz*dz
}

// Offset returns a copy of p translated by delta on every axis.
func (p Point3) Offset(delta float64) Point3 {
	return Point3{p[0] + delta, p[1] + delta, p[2] + delta}
}

// Position makes a bare Point3 usable as an Object.
func (p Point3) Position() Point3 { return p }

// contains reports whether pos lies inside the axis-aligned box [lower, upper]
// on every axis.
func contains[P Point[P]](lower, upper, pos P) bool {
	for axis := 0; axis < pos.Dims(); axis++ {
		c := pos.Coord(axis)
		if lower.Coord(axis) > c || upper.Coord(axis) < c {
			return false
		}
	}
	return true
}
