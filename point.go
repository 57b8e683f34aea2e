package cst

import (
	"fmt"
	"math"
)

// Point is a single airfoil surface coordinate. X is the chordwise position,
// normalized to [0, 1]; Y is the thickness/camber offset.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// XY converts an ordered point sequence to parallel x and y slices, the
// representation used by the split and fitting routines.
func XY(pts []Point) (x, y []float64) {
	x = make([]float64, len(pts))
	y = make([]float64, len(pts))
	for i, pt := range pts {
		x[i], y[i] = pt.Splat()
	}
	return x, y
}

// PointsFromXY converts parallel x and y slices to an ordered point sequence.
// The slices must have the same length.
func PointsFromXY(x, y []float64) ([]Point, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	pts := make([]Point, len(x))
	for i := range x {
		pts[i] = Pt(x[i], y[i])
	}
	return pts, nil
}
