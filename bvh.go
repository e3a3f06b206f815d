package arborx

// NodeID identifies a node within a BVH. Identifiers are stable for
// the duration of a traversal.
type NodeID int32

// NoNode is the sentinel node identifier: the stack-bottom marker for
// two-child traversals and the rope terminator for rope traversals.
const NoNode NodeID = -1

// Encoding distinguishes the two node layouts the traversal kernels
// understand. A BVH reports its Encoding once; Traverse* inspects it a
// single time per call, outside the per-query loop, and picks the
// matching kernel specialization: the two layouts never branch
// against each other inside a query's inner loop.
type Encoding int

const (
	// TwoChild nodes carry explicit left and right child identifiers.
	TwoChild Encoding = iota
	// LeftChildRope nodes carry a left child and a rope: the next
	// node to visit in DFS order when the current subtree is skipped
	// (a right sibling, or an ancestor's right sibling; NoNode at the
	// end of the traversal).
	LeftChildRope
)

// BVH is the read-only contract the traversal core requires of a
// bounding-volume hierarchy over bounding volumes of type B. Internal
// nodes number N-1 for N >= 2 leaves; a BVH built from this package's
// geom builders satisfies both BVH and exactly one of TwoChildBVH or
// RopeBVH below.
type BVH[B any] interface {
	Empty() bool
	Size() int
	Root() NodeID
	BoundingVolume(id NodeID) B
	Encoding() Encoding
}

// TwoChildBVH is a BVH encoded with explicit left/right child
// pointers per node.
type TwoChildBVH[B any] interface {
	BVH[B]
	IsLeaf(id NodeID) bool
	LeftChild(id NodeID) NodeID
	RightChild(id NodeID) NodeID
	LeafIndex(id NodeID) int
}

// RopeBVH is a BVH encoded with a left child plus a rope used to skip
// a rejected subtree without a stack. The "right child" of an
// internal node under this encoding is Rope(LeftChild(node)).
type RopeBVH[B any] interface {
	BVH[B]
	IsLeaf(id NodeID) bool
	LeftChild(id NodeID) NodeID
	Rope(id NodeID) NodeID
	LeafIndex(id NodeID) int
}
