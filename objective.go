package cst

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// RMSError returns the root-mean-square of the pointwise differences between
// two same-length sequences. It is symmetric, non-negative, and zero exactly
// when the sequences are equal.
//
// Sequences of different lengths return ErrLengthMismatch; empty sequences
// or sequences containing non-finite values return ErrDegenerateInput.
func RMSError(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	if len(a) == 0 {
		return 0, ErrDegenerateInput
	}
	rms := floats.Distance(a, b, 2) / math.Sqrt(float64(len(a)))
	if math.IsNaN(rms) || math.IsInf(rms, 0) {
		return 0, ErrDegenerateInput
	}
	return rms, nil
}

// SplitWeights splits a flat weight vector into the upper-surface subset
// w[:k] and the lower-surface subset w[k:]. The returned slices are copies;
// concatenating them reproduces w exactly.
func SplitWeights(w []float64, k int) (upper, lower []float64) {
	if k < 0 {
		k = 0
	}
	if k > len(w) {
		k = len(w)
	}
	upper = append([]float64(nil), w[:k]...)
	lower = append([]float64(nil), w[k:]...)
	return upper, lower
}

// splitIndex derives the fixed upper/lower split position from a seed
// vector's sign pattern: the upper subset is as long as the count of
// positive seed entries. The index stays constant across all evaluations of
// one fit.
func splitIndex(seed []float64) int {
	k := 0
	for _, v := range seed {
		if v > 0 {
			k++
		}
	}
	return k
}

// objective is the fixed parameter bundle evaluated by the fit driver. Both
// the resampling fit and the weights-only fit share it; only the bounds
// handed to the minimizer differ.
type objective struct {
	split  int
	n1, n2 float64
	xu, xl []float64
	dz     float64
	target []float64 // upper y followed by lower y
}

func newObjective(xu, xl, yu, yl []float64, seed []float64, dz, n1, n2 float64) *objective {
	target := make([]float64, 0, len(yu)+len(yl))
	target = append(target, yu...)
	target = append(target, yl...)
	return &objective{
		split:  splitIndex(seed),
		n1:     n1,
		n2:     n2,
		xu:     xu,
		xl:     xl,
		dz:     dz,
		target: target,
	}
}

// eval reconstructs both surfaces from a trial weight vector and returns the
// RMS error against the target ordinates. Deterministic for identical
// inputs. Trial vectors that drive the evaluator into degenerate territory
// score +Inf so the minimizer moves away from them.
func (ob *objective) eval(w []float64) float64 {
	wu, wl := SplitWeights(w, ob.split)
	yu, err := EvalSurface(wu, ob.dz, ob.xu, ob.n1, ob.n2)
	if err != nil {
		return math.Inf(1)
	}
	yl, err := EvalSurface(wl, -ob.dz, ob.xl, ob.n1, ob.n2)
	if err != nil {
		return math.Inf(1)
	}
	cand := make([]float64, 0, len(yu)+len(yl))
	cand = append(cand, yu...)
	cand = append(cand, yl...)
	rms, err := RMSError(ob.target, cand)
	if err != nil {
		return math.Inf(1)
	}
	return rms
}
