package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a location in 3-space.
type Point = r3.Vec

// Box is an axis-aligned bounding box. The empty Box returned by
// emptyBox has Min > Max on every axis and Union-s in as whatever it is
// unioned with; the zero value is not empty but the degenerate box at
// the origin.
type Box struct {
	Min, Max Point
}

// emptyBox returns a Box that acts as the identity element for Union.
func emptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: Point{X: inf, Y: inf, Z: inf},
		Max: Point{X: -inf, Y: -inf, Z: -inf},
	}
}

// BoxFromPoint returns the degenerate box containing exactly p.
func BoxFromPoint(p Point) Box {
	return Box{Min: p, Max: p}
}

// Union returns the smallest Box containing both a and b.
func Union(a, b Box) Box {
	return Box{
		Min: Point{X: math.Min(a.Min.X, b.Min.X), Y: math.Min(a.Min.Y, b.Min.Y), Z: math.Min(a.Min.Z, b.Min.Z)},
		Max: Point{X: math.Max(a.Max.X, b.Max.X), Y: math.Max(a.Max.Y, b.Max.Y), Z: math.Max(a.Max.Z, b.Max.Z)},
	}
}

// Center returns the midpoint of the box, used as the build-time
// splitting key.
func (b Box) Center() Point {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// Spread returns the box's extent along axis (0=X, 1=Y, 2=Z).
func (b Box) Spread(axis int) float64 {
	switch axis {
	case 0:
		return b.Max.X - b.Min.X
	case 1:
		return b.Max.Y - b.Min.Y
	default:
		return b.Max.Z - b.Min.Z
	}
}

// WidestAxis returns the axis (0, 1, or 2) along which b is widest.
func (b Box) WidestAxis() int {
	axis := 0
	widest := b.Spread(0)
	for a := 1; a < 3; a++ {
		if s := b.Spread(a); s > widest {
			widest = s
			axis = a
		}
	}
	return axis
}

func axisValue(p Point, axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// Intersects reports whether two boxes overlap, including touching at
// a boundary.
func Intersects(a, b Box) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// ContainsPoint reports whether p lies within b, inclusive of the
// boundary.
func ContainsPoint(b Box, p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// DistanceToBox returns the Euclidean distance from p to the nearest
// point of b, 0 if p is inside b.
func DistanceToBox(p Point, b Box) float64 {
	dx := axisGap(p.X, b.Min.X, b.Max.X)
	dy := axisGap(p.Y, b.Min.Y, b.Max.Y)
	dz := axisGap(p.Z, b.Min.Z, b.Max.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func axisGap(v, lo, hi float64) float64 {
	if v < lo {
		return lo - v
	}
	if v > hi {
		return v - hi
	}
	return 0
}
