// Package kdgo provides an immutable, flat, in-memory k-d tree for Go.
//
// A KdTree indexes a fixed set of positioned objects and answers
// box-pruned range queries and nearest-neighbor lookups. The tree is
// implicit: objects live in one contiguous slice arranged so that index
// arithmetic replaces node pointers, which keeps the index allocation-free
// and cache-dense.
//
// # Quick Start
//
//	type City struct {
//	    Name string
//	    Pos  kdgo.Point2
//	}
//
//	func (c City) Position() kdgo.Point2 { return c.Pos }
//
//	tree := kdgo.New[kdgo.Point2](cities)
//
//	// Range query: everything within 100 of the origin.
//	query := kdgo.NewWithinDistance(kdgo.Point2{0, 0}, 100)
//	tree.LookUp(query, func(i int, c *City) bool {
//	    fmt.Println(c.Name)
//	    return true
//	})
//
//	// Nearest neighbor.
//	if c := tree.Nearest(kdgo.Point2{13, 37}); c != nil {
//	    fmt.Println(c.Name)
//	}
//
// # Construction Modes
//
// kdgo provides three ways to obtain a tree:
//
//	// 1. SEQUENTIAL BUILD — reorders the slice in place.
//	tree := kdgo.New[kdgo.Point2](objects)
//
//	// 2. PARALLEL BUILD — fork/join over subtree halves.
//	tree := kdgo.NewParallel[kdgo.Point2](objects)
//
//	// 3. TRUSTED WRAP — for data that already has the k-d layout
//	//    (snapshots, memory-mapped storage). No validation happens.
//	tree := kdgo.FromOrdered[kdgo.Point2](objects)
//
// # Immutability
//
// A tree never changes after construction. All query methods are safe
// for unlimited concurrent use; there is no write path and nothing to
// lock. The price is that updates require building a new tree.
//
// # Caller Contracts
//
// Two preconditions are trusted, not checked: coordinates must be free
// of NaN (the build compares them during selection), and an object's
// position must not change while it is indexed. Violating either yields
// wrong query answers, never a crash or memory corruption.
//
// # Persistence
//
// Save and Load serialize the backing slice through a pluggable codec
// with optional compression to any blobstore.Store, including local
// files (memory-mapped on read) and S3-compatible object storage:
//
//	store := blobstore.NewLocalStore("./data")
//	_ = kdgo.Save(ctx, store, "cities.kd", tree)
//	tree, _ = kdgo.Load[kdgo.Point2, City](ctx, store, "cities.kd")
//
// Load trusts the decoded order; it is equivalent to FromOrdered and
// carries the same invariant risk for bytes of unknown provenance.
package kdgo
