package geom

import (
	"sort"

	arborx "github.com/Mildol5/arborx-go"
)

// TwoChildBVH is a bounding-volume hierarchy over Points, encoded with
// explicit left/right child identifiers per internal node. Built by
// BuildTwoChild; the node layout mirrors the flat, array-backed trees
// TrevorS/hdbscan builds for its KD-tree and ball-tree indexes, but
// nodes are appended depth-first instead of addressed by the
// complete-binary-tree formula, since a median split over an arbitrary
// point count does not keep that formula dense.
type TwoChildBVH struct {
	boxes  []Box
	left   []arborx.NodeID
	right  []arborx.NodeID
	leaf   []int // original point index; valid only for leaf nodes
	isLeaf []bool
	root   arborx.NodeID
	size   int // number of points (leaves)
}

// BuildTwoChild builds a TwoChildBVH over points. Points must be
// non-empty.
func BuildTwoChild(points []Point) *TwoChildBVH {
	t := &TwoChildBVH{size: len(points)}
	if len(points) == 0 {
		t.root = arborx.NoNode
		return t
	}
	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	t.root = t.build(points, idx)
	return t
}

func (t *TwoChildBVH) build(points []Point, idx []int) arborx.NodeID {
	box := emptyBox()
	for _, i := range idx {
		box = Union(box, BoxFromPoint(points[i]))
	}

	if len(idx) == 1 {
		id := t.newNode(box)
		t.isLeaf[id] = true
		t.leaf[id] = idx[0]
		return arborx.NodeID(id)
	}

	axis := box.WidestAxis()
	sort.Slice(idx, func(a, b int) bool {
		return axisValue(points[idx[a]], axis) < axisValue(points[idx[b]], axis)
	})
	mid := len(idx) / 2

	id := t.newNode(box)
	leftID := t.build(points, idx[:mid])
	rightID := t.build(points, idx[mid:])
	t.left[id] = leftID
	t.right[id] = rightID
	return arborx.NodeID(id)
}

func (t *TwoChildBVH) newNode(box Box) int {
	id := len(t.boxes)
	t.boxes = append(t.boxes, box)
	t.left = append(t.left, arborx.NoNode)
	t.right = append(t.right, arborx.NoNode)
	t.leaf = append(t.leaf, -1)
	t.isLeaf = append(t.isLeaf, false)
	return id
}

func (t *TwoChildBVH) Empty() bool                          { return t.size == 0 }
func (t *TwoChildBVH) Size() int                             { return t.size }
func (t *TwoChildBVH) Root() arborx.NodeID                   { return t.root }
func (t *TwoChildBVH) BoundingVolume(id arborx.NodeID) Box   { return t.boxes[id] }
func (t *TwoChildBVH) Encoding() arborx.Encoding             { return arborx.TwoChild }
func (t *TwoChildBVH) IsLeaf(id arborx.NodeID) bool          { return t.isLeaf[id] }
func (t *TwoChildBVH) LeftChild(id arborx.NodeID) arborx.NodeID  { return t.left[id] }
func (t *TwoChildBVH) RightChild(id arborx.NodeID) arborx.NodeID { return t.right[id] }
func (t *TwoChildBVH) LeafIndex(id arborx.NodeID) int        { return t.leaf[id] }

var (
	_ arborx.BVH[Box]         = (*TwoChildBVH)(nil)
	_ arborx.TwoChildBVH[Box] = (*TwoChildBVH)(nil)
)
