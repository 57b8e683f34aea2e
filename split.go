package cst

import "math"

// SplitSurfaces splits an ordered airfoil point sequence into its upper and
// lower surfaces. The point whose x has minimum absolute value is taken as
// the leading edge; the sequence is split there into two contiguous slices,
// with the leading-edge point assigned to the first slice. The y values of
// the points immediately after and before the leading edge decide which
// slice is which: the side with the smaller y is the lower surface.
//
// The input must contain at least three points, and the leading edge must
// not be the first or last point; otherwise one surface would be empty and
// SplitSurfaces returns ErrLeadingEdgeAtBoundary.
//
// The returned slices share backing storage with the inputs.
func SplitSurfaces(x, y []float64) (xu, xl, yu, yl []float64, err error) {
	if len(x) != len(y) {
		return nil, nil, nil, nil, ErrLengthMismatch
	}
	if len(x) < 3 {
		return nil, nil, nil, nil, ErrTooFewPoints
	}
	le := 0
	for i, xi := range x {
		if math.IsNaN(xi) || math.IsNaN(y[i]) {
			return nil, nil, nil, nil, ErrDegenerateInput
		}
		if math.Abs(xi) < math.Abs(x[le]) {
			le = i
		}
	}
	if le == 0 || le == len(x)-1 {
		return nil, nil, nil, nil, ErrLeadingEdgeAtBoundary
	}
	if y[le+1] < y[le-1] {
		// The side following the leading edge is the lower surface.
		return x[:le+1], x[le+1:], y[:le+1], y[le+1:], nil
	}
	return x[le+1:], x[:le+1], y[le+1:], y[:le+1], nil
}
