package cst

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/optimize"
)

// Bounds is a box constraint: Lower[i] <= x[i] <= Upper[i].
type Bounds struct {
	Lower []float64
	Upper []float64
}

// SeedSignBounds derives per-weight bounds from the sign of each seed entry:
// positive seeds are bounded to [0, 1], negative seeds to [-1, 0], and zero
// seeds to [-1, 1].
func SeedSignBounds(seed []float64) Bounds {
	lo := make([]float64, len(seed))
	hi := make([]float64, len(seed))
	for i, v := range seed {
		switch {
		case v > 0:
			lo[i], hi[i] = 0, 1
		case v < 0:
			lo[i], hi[i] = -1, 0
		default:
			lo[i], hi[i] = -1, 1
		}
	}
	return Bounds{Lower: lo, Upper: hi}
}

// SymmetricBounds bounds every one of n weights to [-1, 1].
func SymmetricBounds(n int) Bounds {
	lo := make([]float64, n)
	hi := make([]float64, n)
	for i := range lo {
		lo[i], hi[i] = -1, 1
	}
	return Bounds{Lower: lo, Upper: hi}
}

func (b Bounds) validate(dim int) error {
	if len(b.Lower) != dim || len(b.Upper) != dim {
		return ErrLengthMismatch
	}
	for i := range b.Lower {
		if b.Lower[i] > b.Upper[i] {
			return fmt.Errorf("cst: bounds inverted at index %d", i)
		}
	}
	return nil
}

// clamp projects x onto the box and reports the squared violation distance.
func (b Bounds) clamp(x []float64) (clamped []float64, violation float64) {
	clamped = make([]float64, len(x))
	for i, v := range x {
		c := v
		if c < b.Lower[i] {
			c = b.Lower[i]
		} else if c > b.Upper[i] {
			c = b.Upper[i]
		}
		d := v - c
		violation += d * d
		clamped[i] = c
	}
	return clamped, violation
}

// Budget limits a minimization run. Whichever of the two limits triggers
// first ends the search; the best candidate found so far is returned.
type Budget struct {
	MaxIterations int
	MaxRuntime    time.Duration
}

// MinimizeResult is the outcome of one bounded minimization. Converged is
// false when the search stopped only because the budget ran out, in which
// case X is still the best point found within it.
type MinimizeResult struct {
	X               []float64
	F               float64
	Converged       bool
	Status          string
	FuncEvaluations int
	Runtime         time.Duration
}

// Minimizer searches a box-constrained region for the point minimizing a
// scalar black-box objective within a budget. Implementations need only
// function values; the objective is generally non-convex.
type Minimizer interface {
	Minimize(f func([]float64) float64, seed []float64, bounds Bounds, budget Budget) (*MinimizeResult, error)
}

// Method selects the search algorithm used by GonumMinimizer.
type Method int

const (
	// MethodCMAES is covariance matrix adaptation evolution strategy, a
	// population-based derivative-free search. The default.
	MethodCMAES Method = iota
	// MethodNelderMead is downhill simplex search. Deterministic, best for
	// refining from a seed already close to a minimum.
	MethodNelderMead
)

func (m Method) String() string {
	switch m {
	case MethodCMAES:
		return "cma-es"
	case MethodNelderMead:
		return "nelder-mead"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a method name, as used in fit profiles, to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "cma-es", "cmaes":
		return MethodCMAES, nil
	case "nelder-mead", "neldermead":
		return MethodNelderMead, nil
	default:
		return 0, fmt.Errorf("cst: unknown method %q", s)
	}
}

func (m Method) gonum(initStep float64) optimize.Method {
	switch m {
	case MethodNelderMead:
		return &optimize.NelderMead{}
	default:
		return &optimize.CmaEsChol{InitStepSize: initStep}
	}
}

// Weight of the quadratic penalty that keeps the unconstrained search
// methods inside the box. The objective is evaluated at the projected point,
// so the penalty only has to make leaving the box unattractive, not model
// the objective outside it.
const boundsPenalty = 1e3

// GonumMinimizer is the default Minimizer, backed by gonum's optimize
// package. Box constraints are enforced by projecting trial points onto the
// box before evaluation and penalizing the projection distance.
//
// The zero value uses CMA-ES with its default population size.
type GonumMinimizer struct {
	Method Method
	// InitStepSize is the initial CMA-ES step size. Zero selects a step
	// sized for unit-width weight bounds.
	InitStepSize float64
}

func (gm *GonumMinimizer) Minimize(f func([]float64) float64, seed []float64, bounds Bounds, budget Budget) (*MinimizeResult, error) {
	if len(seed) == 0 {
		return nil, ErrDegenerateInput
	}
	if err := bounds.validate(len(seed)); err != nil {
		return nil, err
	}

	penalized := func(x []float64) float64 {
		proj, viol := bounds.clamp(x)
		return f(proj) + boundsPenalty*viol
	}

	settings := &optimize.Settings{}
	if budget.MaxIterations > 0 {
		settings.MajorIterations = budget.MaxIterations
	}
	if budget.MaxRuntime > 0 {
		settings.Runtime = budget.MaxRuntime
	}

	initStep := gm.InitStepSize
	if initStep == 0 {
		initStep = 0.3
	}
	start := append([]float64(nil), seed...)
	start, _ = bounds.clamp(start)

	res, err := optimize.Minimize(optimize.Problem{Func: penalized}, start, settings, gm.Method.gonum(initStep))
	if res == nil || len(res.X) != len(seed) {
		return nil, fmt.Errorf("cst: minimize: %w", err)
	}
	// A search that merely ran out of budget is not an error; the best
	// point found is still the answer.
	best, _ := bounds.clamp(res.X)
	out := &MinimizeResult{
		X:               best,
		F:               f(best),
		Converged:       res.Status != optimize.IterationLimit && res.Status != optimize.RuntimeLimit && res.Status != optimize.FunctionEvaluationLimit,
		Status:          res.Status.String(),
		FuncEvaluations: res.Stats.FuncEvaluations,
		Runtime:         res.Stats.Runtime,
	}
	if math.IsNaN(out.F) {
		return nil, ErrDegenerateInput
	}
	return out, nil
}
