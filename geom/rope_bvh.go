package geom

import (
	"sort"

	arborx "github.com/Mildol5/arborx-go"
)

// RopeBVH is a bounding-volume hierarchy over Points, encoded with a
// left child plus a rope per node (the stackless encoding). Built by
// BuildRope over the same median-split strategy as TwoChildBVH, then
// flattened into rope form: a node's right child is Rope(LeftChild),
// and a rejected subtree's rope points at the next node a depth-first
// walk would visit, all the way up to NoNode at the end of the tree.
// Grounded on TrevorS/hdbscan's ball-tree build (centroid/spread
// splitting over a flat array), adapted to a pointer-free,
// depth-first flattening pass.
type RopeBVH struct {
	boxes  []Box
	left   []arborx.NodeID
	rope   []arborx.NodeID
	leaf   []int
	isLeaf []bool
	root   arborx.NodeID
	size   int
}

type ropeTemp struct {
	box         Box
	left, right *ropeTemp
	isLeaf      bool
	leafIdx     int
}

// BuildRope builds a RopeBVH over points. Points must be non-empty.
func BuildRope(points []Point) *RopeBVH {
	t := &RopeBVH{size: len(points)}
	if len(points) == 0 {
		t.root = arborx.NoNode
		return t
	}
	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	temp := buildRopeTemp(points, idx)
	t.root = t.flatten(temp, arborx.NoNode)
	return t
}

func buildRopeTemp(points []Point, idx []int) *ropeTemp {
	box := emptyBox()
	for _, i := range idx {
		box = Union(box, BoxFromPoint(points[i]))
	}
	if len(idx) == 1 {
		return &ropeTemp{box: box, isLeaf: true, leafIdx: idx[0]}
	}

	axis := box.WidestAxis()
	sort.Slice(idx, func(a, b int) bool {
		return axisValue(points[idx[a]], axis) < axisValue(points[idx[b]], axis)
	})
	mid := len(idx) / 2

	return &ropeTemp{
		box:   box,
		left:  buildRopeTemp(points, idx[:mid]),
		right: buildRopeTemp(points, idx[mid:]),
	}
}

// flatten assigns node identifiers depth-first, children before
// parents, so that a left child's rope (next, passed down) can be set
// to its sibling's identifier before the parent itself is allocated.
func (t *RopeBVH) flatten(node *ropeTemp, next arborx.NodeID) arborx.NodeID {
	if node.isLeaf {
		id := t.newNode(node.box, next)
		t.isLeaf[id] = true
		t.leaf[id] = node.leafIdx
		return id
	}
	rightID := t.flatten(node.right, next)
	leftID := t.flatten(node.left, rightID)
	id := t.newNode(node.box, next)
	t.left[id] = leftID
	return id
}

func (t *RopeBVH) newNode(box Box, rope arborx.NodeID) arborx.NodeID {
	id := arborx.NodeID(len(t.boxes))
	t.boxes = append(t.boxes, box)
	t.left = append(t.left, arborx.NoNode)
	t.rope = append(t.rope, rope)
	t.leaf = append(t.leaf, -1)
	t.isLeaf = append(t.isLeaf, false)
	return id
}

func (t *RopeBVH) Empty() bool                        { return t.size == 0 }
func (t *RopeBVH) Size() int                           { return t.size }
func (t *RopeBVH) Root() arborx.NodeID                 { return t.root }
func (t *RopeBVH) BoundingVolume(id arborx.NodeID) Box { return t.boxes[id] }
func (t *RopeBVH) Encoding() arborx.Encoding           { return arborx.LeftChildRope }
func (t *RopeBVH) IsLeaf(id arborx.NodeID) bool        { return t.isLeaf[id] }
func (t *RopeBVH) LeftChild(id arborx.NodeID) arborx.NodeID { return t.left[id] }
func (t *RopeBVH) Rope(id arborx.NodeID) arborx.NodeID      { return t.rope[id] }
func (t *RopeBVH) LeafIndex(id arborx.NodeID) int      { return t.leaf[id] }

var (
	_ arborx.BVH[Box]     = (*RopeBVH)(nil)
	_ arborx.RopeBVH[Box] = (*RopeBVH)(nil)
)
