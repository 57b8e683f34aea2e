package cst

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// Default search budget for a fit. Whichever limit triggers first ends the
// search.
const (
	DefaultMaxIterations = 2500
	DefaultMaxRuntime    = 60 * time.Second
)

// DefaultSeed returns the default initial weight guess: three positive
// upper-surface weights followed by three negative lower-surface weights.
// The sign pattern fixes the upper/lower split index for the whole fit. The
// returned slice is fresh on every call.
func DefaultSeed() []float64 {
	return []float64{0.25, 0.25, 0.25, -0.25, -0.25, -0.25}
}

// BoundsMode selects how per-weight box constraints are derived from the
// seed vector.
type BoundsMode int

const (
	// BoundsSeedSign bounds each weight to [0,1] or [-1,0] according to
	// the sign of its seed entry. Used by Fit.
	BoundsSeedSign BoundsMode = iota
	// BoundsSymmetric bounds every weight to [-1,1] regardless of seed
	// sign. Used by FitWeights.
	BoundsSymmetric
)

// ParseBoundsMode maps a bounds-mode name, as used in fit profiles, to a
// BoundsMode.
func ParseBoundsMode(s string) (BoundsMode, error) {
	switch s {
	case "", "seed-sign":
		return BoundsSeedSign, nil
	case "symmetric":
		return BoundsSymmetric, nil
	default:
		return 0, fmt.Errorf("cst: unknown bounds mode %q", s)
	}
}

func (m BoundsMode) bounds(seed []float64) Bounds {
	if m == BoundsSymmetric {
		return SymmetricBounds(len(seed))
	}
	return SeedSignBounds(seed)
}

// Options configures a fit. The zero value fits with the default seed,
// default class exponents, a derived trailing-edge half-thickness, and the
// default budget.
type Options struct {
	// Seed is the initial weight guess. Its sign pattern fixes the
	// upper/lower split. Nil selects DefaultSeed.
	Seed []float64

	// N1 and N2 are the class-function exponents. Zero selects DefaultN1
	// respectively DefaultN2.
	N1, N2 float64

	// DZ is the trailing-edge half-thickness. Nil derives it from the
	// target points as (first upper y) - (last lower y).
	DZ *float64

	// MaxIterations and MaxRuntime bound the search. Zero selects the
	// package defaults.
	MaxIterations int
	MaxRuntime    time.Duration

	// BoundsMode overrides the per-operation default bound convention.
	// Nil keeps the default: seed-sign for Fit, symmetric for FitWeights.
	BoundsMode *BoundsMode

	// Method selects the search algorithm of the default minimizer.
	Method Method

	// Minimizer overrides the search implementation entirely. When set,
	// Method is ignored.
	Minimizer Minimizer

	// OutputPath, when non-empty, makes Fit persist the resampled
	// coordinates as a CSV point file.
	OutputPath string

	// Logger receives fit progress. Nil disables logging.
	Logger *zap.Logger
}

func (o Options) seed() []float64 {
	if o.Seed != nil {
		return append([]float64(nil), o.Seed...)
	}
	return DefaultSeed()
}

func (o Options) exponents() (n1, n2 float64) {
	n1, n2 = o.N1, o.N2
	if n1 == 0 {
		n1 = DefaultN1
	}
	if n2 == 0 {
		n2 = DefaultN2
	}
	return n1, n2
}

func (o Options) budget() Budget {
	b := Budget{MaxIterations: o.MaxIterations, MaxRuntime: o.MaxRuntime}
	if b.MaxIterations == 0 {
		b.MaxIterations = DefaultMaxIterations
	}
	if b.MaxRuntime == 0 {
		b.MaxRuntime = DefaultMaxRuntime
	}
	return b
}

func (o Options) minimizer() Minimizer {
	if o.Minimizer != nil {
		return o.Minimizer
	}
	return &GonumMinimizer{Method: o.Method}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) dz(yu, yl []float64) float64 {
	if o.DZ != nil {
		return *o.DZ
	}
	return yu[0] - yl[len(yl)-1]
}

// FitResult is the immutable outcome of a fit. RMS is always the final
// reconstruction error, so callers can judge quality when Converged is
// false (the search stopped on its budget rather than on its own
// convergence test).
type FitResult struct {
	WUpper []float64
	WLower []float64
	RMS    float64

	Converged       bool
	Status          string
	FuncEvaluations int
	Runtime         time.Duration

	// XNew and YNew hold the resampled coordinates, upper surface first.
	// Only Fit populates them.
	XNew []float64
	YNew []float64
}

func checkSurfaces(xu, xl, yu, yl []float64) error {
	if len(xu) != len(yu) || len(xl) != len(yl) {
		return ErrLengthMismatch
	}
	if len(xu) == 0 || len(xl) == 0 {
		return ErrDegenerateInput
	}
	for _, s := range [][]float64{xu, xl} {
		for _, v := range s {
			if math.IsNaN(v) || v < 0 || v > 1 {
				return ErrDegenerateInput
			}
		}
	}
	for _, s := range [][]float64{yu, yl} {
		for _, v := range s {
			if math.IsNaN(v) {
				return ErrDegenerateInput
			}
		}
	}
	return nil
}

func fitWeights(xu, xl, yu, yl []float64, opts Options, defaultMode BoundsMode) (*FitResult, float64, float64, float64, error) {
	if err := checkSurfaces(xu, xl, yu, yl); err != nil {
		return nil, 0, 0, 0, err
	}
	seed := opts.seed()
	n1, n2 := opts.exponents()
	dz := opts.dz(yu, yl)
	mode := defaultMode
	if opts.BoundsMode != nil {
		mode = *opts.BoundsMode
	}
	budget := opts.budget()
	logger := opts.logger()

	ob := newObjective(xu, xl, yu, yl, seed, dz, n1, n2)
	logger.Debug("starting fit",
		zap.Int("weights", len(seed)),
		zap.Int("upper_weights", ob.split),
		zap.Int("target_points", len(ob.target)),
		zap.Float64("dz", dz),
		zap.Stringer("method", opts.Method),
		zap.Int("max_iterations", budget.MaxIterations),
		zap.Duration("max_runtime", budget.MaxRuntime),
	)

	mres, err := opts.minimizer().Minimize(ob.eval, seed, mode.bounds(seed), budget)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("cst: fit: %w", err)
	}

	wu, wl := SplitWeights(mres.X, ob.split)
	res := &FitResult{
		WUpper:          wu,
		WLower:          wl,
		RMS:             mres.F,
		Converged:       mres.Converged,
		Status:          mres.Status,
		FuncEvaluations: mres.FuncEvaluations,
		Runtime:         mres.Runtime,
	}
	logger.Info("fit complete",
		zap.Float64("rms", res.RMS),
		zap.Bool("converged", res.Converged),
		zap.String("status", res.Status),
		zap.Int("evaluations", res.FuncEvaluations),
		zap.Duration("runtime", res.Runtime),
	)
	return res, dz, n1, n2, nil
}

// Fit searches for the CST weight vector that best reconstructs the given
// upper and lower surface points, then resamples the fitted curve to n
// total coordinate points (see Resample for the split convention). Weights
// whose seed entry is positive are bounded to [0,1] and negative ones to
// [-1,0], unless Options.BoundsMode says otherwise.
//
// The search stops when either budget limit triggers; the best weight
// vector found by then is returned along with its RMS error, never an
// error, so a non-converged fit can still be inspected.
func Fit(xu, xl, yu, yl []float64, n int, opts Options) (*FitResult, error) {
	res, dz, n1, n2, err := fitWeights(xu, xl, yu, yl, opts, BoundsSeedSign)
	if err != nil {
		return nil, err
	}
	res.XNew, res.YNew, err = Resample(res.WUpper, res.WLower, dz, n, n1, n2)
	if err != nil {
		return nil, fmt.Errorf("cst: resample: %w", err)
	}
	if opts.OutputPath != "" {
		pts, err := PointsFromXY(res.XNew, res.YNew)
		if err != nil {
			return nil, err
		}
		if err := WritePoints(pts, opts.OutputPath); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// FitWeights is the weights-only fit: it returns the fitted weight subsets
// and RMS error without resampling. Unlike Fit, it bounds every weight to
// [-1,1] by default, so the seed's sign pattern constrains only the
// upper/lower split, not the search region.
func FitWeights(xu, xl, yu, yl []float64, opts Options) (*FitResult, error) {
	res, _, _, _, err := fitWeights(xu, xl, yu, yl, opts, BoundsSymmetric)
	return res, err
}

// Resample evaluates the fitted curve at n total coordinate points: the
// upper surface gets ceil(n/2) cosine-spaced chord positions and the lower
// surface the remaining floor(n/2). Both surfaces run from the leading edge
// to the trailing edge, upper first. A pure forward pass; no optimization.
func Resample(wu, wl []float64, dz float64, n int, n1, n2 float64) (x, y []float64, err error) {
	if n < 2 {
		return nil, nil, ErrDegenerateInput
	}
	nu := (n + 1) / 2
	nl := n - nu
	xu := ChordSpacing(nu)
	xl := ChordSpacing(nl)
	yu, err := EvalSurface(wu, dz, xu, n1, n2)
	if err != nil {
		return nil, nil, err
	}
	yl, err := EvalSurface(wl, -dz, xl, n1, n2)
	if err != nil {
		return nil, nil, err
	}
	x = append(append(make([]float64, 0, n), xu...), xl...)
	y = append(append(make([]float64, 0, n), yu...), yl...)
	return x, y, nil
}
