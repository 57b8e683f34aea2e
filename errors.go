package cst

import "errors"

var (
	// ErrTooFewPoints indicates a point sequence too short to locate a
	// leading edge and split into two surfaces.
	ErrTooFewPoints = errors.New("cst: need at least three points to locate a leading edge")

	// ErrLengthMismatch indicates parallel x and y sequences of different
	// lengths.
	ErrLengthMismatch = errors.New("cst: x and y sequences differ in length")

	// ErrLeadingEdgeAtBoundary indicates that the point closest to x=0 is
	// the first or last point of the sequence, leaving no points for one of
	// the two surfaces.
	ErrLeadingEdgeAtBoundary = errors.New("cst: leading edge lies at the sequence boundary")

	// ErrDegenerateInput indicates empty or non-finite numeric input that
	// would otherwise propagate NaN through the computation.
	ErrDegenerateInput = errors.New("cst: degenerate numeric input")

	// ErrInvalidPointFile indicates a malformed coordinate file: missing
	// x/y columns, non-numeric fields, or too few rows.
	ErrInvalidPointFile = errors.New("cst: invalid point file")
)
