// Package arborx implements the traversal core of a bounding-volume
// hierarchy (BVH) query engine: given a pre-built BVH and a batch of
// independent query predicates, it evaluates every predicate against
// the tree and reports hits to a caller-supplied callback.
//
// Two query families are supported. TraverseSpatial runs a stack-based
// (or rope-linked) descent per query and calls back once per leaf
// whose bounding volume satisfies a yes/no predicate; result
// cardinality is unbounded. TraverseNearest runs a best-first descent
// pruned by a bounded max-heap and calls back exactly min(k, N) times
// per query, in nondecreasing distance order.
//
// BVH construction, bounding-volume arithmetic, and predicate/callback
// authoring are the caller's concern: see the geom subpackage for
// ready-made Box/Point geometry, predicates, and two reference BVH
// builders (one per supported node encoding). This package only
// traverses whatever satisfies the BVH contract in bvh.go.
//
// Basic usage:
//
//	bvh := geom.BuildTwoChild(points)
//	predicates := geom.SpatialSlice[geom.Box]{geom.BoxQuery{Region: queryBox}}
//	err := arborx.TraverseSpatial[geom.Box](ctx, bvh, predicates,
//		func(p arborx.SpatialPredicate[geom.Box], leaf int) {
//			fmt.Println("hit", leaf)
//		}, arborx.DefaultConfig())
package arborx
