package cst

import "math"

// Default class-function exponents for round-nose, sharp-aft airfoil shapes.
const (
	DefaultN1 = 0.5
	DefaultN2 = 1.0
)

// binomial returns the binomial coefficient C(n, k) as a float64.
func binomial(n, k int) float64 {
	if k > n-k {
		k = n - k
	}
	c := 1.0
	for i := 0; i < k; i++ {
		c = c * float64(n-i) / float64(i+1)
	}
	return c
}

// classFn evaluates the class function x^n1 * (1-x)^n2, which fixes the
// overall teardrop shape of the profile.
func classFn(x, n1, n2 float64) float64 {
	return math.Pow(x, n1) * math.Pow(1-x, n2)
}

// shapeFn evaluates the Bernstein-weighted shape function
// Σ w[i] * C(n,i) * x^i * (1-x)^(n-i) with n = len(w)-1.
func shapeFn(w []float64, x float64) float64 {
	n := len(w) - 1
	s := 0.0
	for i, wi := range w {
		s += wi * binomial(n, i) * math.Pow(x, float64(i)) * math.Pow(1-x, float64(n-i))
	}
	return s
}

// EvalSurface evaluates one surface of the Class-Shape Transformation curve
// at the given chordwise positions:
//
//	y(x) = x^n1 (1-x)^n2 · Σ w[i] C(n,i) x^i (1-x)^(n-i)  +  x·dz
//
// dz is the trailing-edge half-thickness term for this surface: pass the
// positive half-gap for the upper surface and its negation for the lower
// surface. All x must lie in [0, 1].
//
// EvalSurface returns ErrDegenerateInput for empty weights, empty x, or any
// non-finite input, rather than letting NaN propagate into the fit.
func EvalSurface(w []float64, dz float64, x []float64, n1, n2 float64) ([]float64, error) {
	if len(w) == 0 || len(x) == 0 {
		return nil, ErrDegenerateInput
	}
	for _, wi := range w {
		if math.IsNaN(wi) || math.IsInf(wi, 0) {
			return nil, ErrDegenerateInput
		}
	}
	y := make([]float64, len(x))
	for i, xi := range x {
		if math.IsNaN(xi) || xi < 0 || xi > 1 {
			return nil, ErrDegenerateInput
		}
		y[i] = classFn(xi, n1, n2)*shapeFn(w, xi) + xi*dz
	}
	return y, nil
}

// ChordSpacing returns n chordwise positions on [0, 1] with half-cosine
// clustering, so that samples concentrate near the leading edge where
// surface curvature is highest:
//
//	x[i] = (1 - cos(πi/(n-1))) / 2
//
// For n == 1 the single position is 0. n must be positive.
func ChordSpacing(n int) []float64 {
	if n <= 0 {
		return nil
	}
	x := make([]float64, n)
	if n == 1 {
		return x
	}
	for i := range x {
		x[i] = 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(n-1)))
	}
	// Pin the endpoints; the cosine can leave the last position a hair
	// below 1.
	x[0] = 0
	x[n-1] = 1
	return x
}
