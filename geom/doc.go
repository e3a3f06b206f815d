// Package geom supplies concrete bounding volumes, predicates, and BVH
// builders that plug into package arborx's traversal core. Points are
// gonum.org/v1/gonum/spatial/r3.Vec; bounding volumes are axis-aligned
// Boxes.
//
// Two builders are provided: BuildTwoChild produces a tree in the
// explicit-child encoding, BuildRope produces one in the
// left-child-plus-rope encoding. Both build over the same input points
// and are interchangeable wherever arborx.BVH is expected.
package geom
