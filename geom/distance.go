package geom

import (
	"math"

	arborx "github.com/Mildol5/arborx-go"
)

// ChebyshevBoxMetric measures the Chebyshev (L-infinity) distance from
// a query point to a Box: the largest per-axis gap rather than their
// Euclidean combination. Still monotone under containment, so it
// prunes correctly in the nearest kernel.
type ChebyshevBoxMetric struct{}

func (ChebyshevBoxMetric) Distance(g Point, bv Box) float64 {
	dx := axisGap(g.X, bv.Min.X, bv.Max.X)
	dy := axisGap(g.Y, bv.Min.Y, bv.Max.Y)
	dz := axisGap(g.Z, bv.Min.Z, bv.Max.Z)
	return math.Max(dx, math.Max(dy, dz))
}

// ManhattanBoxMetric measures the Manhattan (L1) distance from a query
// point to a Box: the sum of per-axis gaps. Still monotone under
// containment.
type ManhattanBoxMetric struct{}

func (ManhattanBoxMetric) Distance(g Point, bv Box) float64 {
	dx := axisGap(g.X, bv.Min.X, bv.Max.X)
	dy := axisGap(g.Y, bv.Min.Y, bv.Max.Y)
	dz := axisGap(g.Z, bv.Min.Z, bv.Max.Z)
	return dx + dy + dz
}

var (
	_ arborx.DistanceMetric[Point, Box] = ChebyshevBoxMetric{}
	_ arborx.DistanceMetric[Point, Box] = ManhattanBoxMetric{}
)
