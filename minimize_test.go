package cst

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sphere(center []float64) func([]float64) float64 {
	return func(x []float64) float64 {
		s := 0.0
		for i, xi := range x {
			d := xi - center[i]
			s += d * d
		}
		return s
	}
}

func unitBox(n int) Bounds {
	lo := make([]float64, n)
	hi := make([]float64, n)
	for i := range hi {
		hi[i] = 1
	}
	return Bounds{Lower: lo, Upper: hi}
}

func TestGonumMinimizerNelderMead(t *testing.T) {
	gm := &GonumMinimizer{Method: MethodNelderMead}
	res, err := gm.Minimize(sphere([]float64{0.2, 0.7}), []float64{0.5, 0.5}, unitBox(2), Budget{MaxIterations: 500, MaxRuntime: 10 * time.Second})
	require.NoError(t, err)
	diff(t, []float64{0.2, 0.7}, res.X, approx(1e-3))
	if res.F > 1e-6 {
		t.Errorf("F = %g, want < 1e-6", res.F)
	}
	if res.FuncEvaluations == 0 {
		t.Error("no function evaluations recorded")
	}
}

func TestGonumMinimizerCMAES(t *testing.T) {
	gm := &GonumMinimizer{}
	res, err := gm.Minimize(sphere([]float64{0.3, 0.6, 0.4}), []float64{0.5, 0.5, 0.5}, unitBox(3), Budget{MaxIterations: 2000, MaxRuntime: 20 * time.Second})
	require.NoError(t, err)
	if res.F > 1e-2 {
		t.Errorf("F = %g, want < 1e-2", res.F)
	}
	for i, v := range res.X {
		b := unitBox(3)
		if v < b.Lower[i] || v > b.Upper[i] {
			t.Errorf("X[%d] = %g outside bounds", i, v)
		}
	}
}

func TestGonumMinimizerRespectsBounds(t *testing.T) {
	// Linear objective with its unconstrained minimum far outside the box;
	// the best feasible point is the lower corner.
	f := func(x []float64) float64 { return x[0] + x[1] }
	gm := &GonumMinimizer{Method: MethodNelderMead}
	res, err := gm.Minimize(f, []float64{0.5, 0.5}, unitBox(2), Budget{MaxIterations: 1000, MaxRuntime: 10 * time.Second})
	require.NoError(t, err)
	diff(t, []float64{0, 0}, res.X, approx(1e-2))
}

func TestGonumMinimizerBudgetExhaustion(t *testing.T) {
	gm := &GonumMinimizer{Method: MethodNelderMead}
	res, err := gm.Minimize(sphere([]float64{0.2, 0.7}), []float64{0.9, 0.1}, unitBox(2), Budget{MaxIterations: 1, MaxRuntime: 10 * time.Second})
	require.NoError(t, err)
	// Budget exhaustion is not an error; the best candidate so far comes
	// back flagged as non-converged.
	if res.Converged {
		t.Errorf("Converged = true after a single iteration, status %s", res.Status)
	}
	if len(res.X) != 2 {
		t.Fatalf("X has length %d", len(res.X))
	}
}

func TestGonumMinimizerInputErrors(t *testing.T) {
	gm := &GonumMinimizer{Method: MethodNelderMead}
	f := sphere([]float64{0})

	_, err := gm.Minimize(f, nil, unitBox(0), Budget{MaxIterations: 10})
	require.ErrorIs(t, err, ErrDegenerateInput)

	_, err = gm.Minimize(f, []float64{0.5}, unitBox(2), Budget{MaxIterations: 10})
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = gm.Minimize(f, []float64{0.5}, Bounds{Lower: []float64{1}, Upper: []float64{0}}, Budget{MaxIterations: 10})
	require.Error(t, err)
}

func TestParseMethod(t *testing.T) {
	for in, want := range map[string]Method{
		"":            MethodCMAES,
		"cma-es":      MethodCMAES,
		"nelder-mead": MethodNelderMead,
	} {
		got, err := ParseMethod(in)
		require.NoError(t, err)
		if got != want {
			t.Errorf("ParseMethod(%q) = %v, want %v", in, got, want)
		}
	}
	_, err := ParseMethod("simulated-annealing")
	require.Error(t, err)
}

func TestSeedSignBounds(t *testing.T) {
	b := SeedSignBounds([]float64{0.2, -0.3, 0})
	diff(t, []float64{0, -1, -1}, b.Lower)
	diff(t, []float64{1, 0, 1}, b.Upper)

	s := SymmetricBounds(2)
	diff(t, []float64{-1, -1}, s.Lower)
	diff(t, []float64{1, 1}, s.Upper)
}
