package arborx

// testInterval is a 1-D bounding volume used by the in-package tests,
// letting them build tiny hand-constructed trees without depending on
// the geom package.
type testInterval struct{ lo, hi float64 }

func union(a, b testInterval) testInterval {
	lo, hi := a.lo, a.hi
	if b.lo < lo {
		lo = b.lo
	}
	if b.hi > hi {
		hi = b.hi
	}
	return testInterval{lo, hi}
}

// countLeaves returns the number of leaf nodes, the BVH's Size.
func countLeaves(isLeaf []bool) int {
	n := 0
	for _, l := range isLeaf {
		if l {
			n++
		}
	}
	return n
}

// testTwoChildTree is a hand-built, array-backed TwoChildBVH[testInterval]
// for exercising the spatial and nearest two-child kernels directly.
type testTwoChildTree struct {
	bv     []testInterval
	left   []NodeID
	right  []NodeID
	leaf   []bool
	leafOf []int
	root   NodeID
}

func (t *testTwoChildTree) Empty() bool                    { return len(t.bv) == 0 }
func (t *testTwoChildTree) Size() int                       { return countLeaves(t.leaf) }
func (t *testTwoChildTree) Root() NodeID                    { return t.root }
func (t *testTwoChildTree) BoundingVolume(id NodeID) testInterval { return t.bv[id] }
func (t *testTwoChildTree) Encoding() Encoding              { return TwoChild }
func (t *testTwoChildTree) IsLeaf(id NodeID) bool           { return t.leaf[id] }
func (t *testTwoChildTree) LeftChild(id NodeID) NodeID      { return t.left[id] }
func (t *testTwoChildTree) RightChild(id NodeID) NodeID     { return t.right[id] }
func (t *testTwoChildTree) LeafIndex(id NodeID) int         { return t.leafOf[id] }

// buildTestTwoChildTree builds a balanced binary tree over the given
// per-leaf intervals, useful for deterministic kernel tests.
func buildTestTwoChildTree(leaves []testInterval) *testTwoChildTree {
	t := &testTwoChildTree{}
	ids := make([]NodeID, len(leaves))
	for i, iv := range leaves {
		ids[i] = t.newLeaf(iv, i)
	}
	if len(ids) == 0 {
		t.root = NoNode
		return t
	}
	t.root = t.buildInternal(ids)
	return t
}

func (t *testTwoChildTree) newLeaf(iv testInterval, leafIdx int) NodeID {
	id := NodeID(len(t.bv))
	t.bv = append(t.bv, iv)
	t.left = append(t.left, NoNode)
	t.right = append(t.right, NoNode)
	t.leaf = append(t.leaf, true)
	t.leafOf = append(t.leafOf, leafIdx)
	return id
}

func (t *testTwoChildTree) buildInternal(ids []NodeID) NodeID {
	if len(ids) == 1 {
		return ids[0]
	}
	mid := len(ids) / 2
	leftID := t.buildInternal(ids[:mid])
	rightID := t.buildInternal(ids[mid:])
	bv := union(t.bv[leftID], t.bv[rightID])

	id := NodeID(len(t.bv))
	t.bv = append(t.bv, bv)
	t.left = append(t.left, leftID)
	t.right = append(t.right, rightID)
	t.leaf = append(t.leaf, false)
	t.leafOf = append(t.leafOf, -1)
	return id
}

// testRopeTree is a RopeBVH[testInterval] flattened from the same
// shape testTwoChildTree builds, for cross-checking the two kernels
// against each other.
type testRopeTree struct {
	bv     []testInterval
	left   []NodeID
	rope   []NodeID
	leaf   []bool
	leafOf []int
	root   NodeID
}

func (t *testRopeTree) Empty() bool                    { return len(t.bv) == 0 }
func (t *testRopeTree) Size() int                       { return countLeaves(t.leaf) }
func (t *testRopeTree) Root() NodeID                    { return t.root }
func (t *testRopeTree) BoundingVolume(id NodeID) testInterval { return t.bv[id] }
func (t *testRopeTree) Encoding() Encoding              { return LeftChildRope }
func (t *testRopeTree) IsLeaf(id NodeID) bool           { return t.leaf[id] }
func (t *testRopeTree) LeftChild(id NodeID) NodeID      { return t.left[id] }
func (t *testRopeTree) Rope(id NodeID) NodeID           { return t.rope[id] }
func (t *testRopeTree) LeafIndex(id NodeID) int         { return t.leafOf[id] }

func buildTestRopeTree(leaves []testInterval) *testRopeTree {
	tc := buildTestTwoChildTree(leaves)
	rt := &testRopeTree{}
	if tc.Empty() {
		rt.root = NoNode
		return rt
	}
	rt.root = flattenTestTree(tc, rt, tc.root, NoNode)
	return rt
}

func flattenTestTree(tc *testTwoChildTree, rt *testRopeTree, node, next NodeID) NodeID {
	if tc.IsLeaf(node) {
		return rt.newNode(tc.BoundingVolume(node), true, tc.LeafIndex(node), NoNode, next)
	}
	rightID := flattenTestTree(tc, rt, tc.RightChild(node), next)
	leftID := flattenTestTree(tc, rt, tc.LeftChild(node), rightID)
	return rt.newNode(tc.BoundingVolume(node), false, -1, leftID, next)
}

func (rt *testRopeTree) newNode(bv testInterval, isLeaf bool, leafIdx int, left, rope NodeID) NodeID {
	id := NodeID(len(rt.bv))
	rt.bv = append(rt.bv, bv)
	rt.left = append(rt.left, left)
	rt.rope = append(rt.rope, rope)
	rt.leaf = append(rt.leaf, isLeaf)
	rt.leafOf = append(rt.leafOf, leafIdx)
	return id
}

// overlapPredicate is a SpatialPredicate[testInterval] that accepts
// any bounding volume overlapping Region.
type overlapPredicate struct{ region testInterval }

func (p overlapPredicate) Overlaps(bv testInterval) bool {
	return bv.lo <= p.region.hi && bv.hi >= p.region.lo
}

type spatialSliceT []SpatialPredicate[testInterval]

func (s spatialSliceT) Len() int                               { return len(s) }
func (s spatialSliceT) Get(i int) SpatialPredicate[testInterval] { return s[i] }

// pointNearestPredicate requests the K leaves closest to At, under
// pointIntervalMetric below.
type pointNearestPredicate struct {
	at float64
	k  int
}

func (p pointNearestPredicate) K() int        { return p.k }
func (p pointNearestPredicate) Geometry() float64 { return p.at }

type nearestSliceT []NearestPredicate[float64, testInterval]

func (s nearestSliceT) Len() int { return len(s) }
func (s nearestSliceT) Get(i int) NearestPredicate[float64, testInterval] { return s[i] }

type pointIntervalMetric struct{}

func (pointIntervalMetric) Distance(g float64, bv testInterval) float64 {
	if g < bv.lo {
		return bv.lo - g
	}
	if g > bv.hi {
		return g - bv.hi
	}
	return 0
}
