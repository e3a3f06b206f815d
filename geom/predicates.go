package geom

import arborx "github.com/Mildol5/arborx-go"

// BoxQuery is a spatial predicate that accepts bounding volumes
// overlapping Region.
type BoxQuery struct {
	Region Box
}

func (q BoxQuery) Overlaps(bv Box) bool { return Intersects(bv, q.Region) }

// SphereQuery is a spatial predicate that accepts bounding volumes
// within Radius of Center.
type SphereQuery struct {
	Center Point
	Radius float64
}

func (q SphereQuery) Overlaps(bv Box) bool {
	return DistanceToBox(q.Center, bv) <= q.Radius
}

// PointQuery is a spatial predicate that accepts bounding volumes
// containing At.
type PointQuery struct {
	At Point
}

func (q PointQuery) Overlaps(bv Box) bool { return ContainsPoint(bv, q.At) }

// FuncPredicate adapts a plain function into an arborx.SpatialPredicate.
type FuncPredicate[B any] func(bv B) bool

func (f FuncPredicate[B]) Overlaps(bv B) bool { return f(bv) }

// NearestQuery is a nearest predicate requesting the K leaves closest
// to At.
type NearestQuery struct {
	At    Point
	Count int
}

func (q NearestQuery) K() int         { return q.Count }
func (q NearestQuery) Geometry() Point { return q.At }

// PointBoxMetric measures the Euclidean distance from a query point to
// a Box, satisfying arborx.DistanceMetric[Point, Box]. It is monotone:
// a child box nested inside a parent box is never nearer to any
// external point than the parent.
type PointBoxMetric struct{}

func (PointBoxMetric) Distance(g Point, bv Box) float64 { return DistanceToBox(g, bv) }

var (
	_ arborx.SpatialPredicate[Box]        = BoxQuery{}
	_ arborx.SpatialPredicate[Box]        = SphereQuery{}
	_ arborx.SpatialPredicate[Box]        = PointQuery{}
	_ arborx.NearestPredicate[Point, Box] = NearestQuery{}
	_ arborx.DistanceMetric[Point, Box]   = PointBoxMetric{}
)
