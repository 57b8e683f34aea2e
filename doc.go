// Package cst fits the Class-Shape Transformation ("CST") parametric
// airfoil model to discrete coordinate data and resamples the fitted curve
// at arbitrary resolution.
//
// # The CST model
//
// The Class-Shape Transformation of Kulfan expresses a surface ordinate as
// the product of a class function x^N1·(1−x)^N2, which fixes the overall
// teardrop shape (N1=0.5, N2=1 for the standard airfoil class), and a shape
// function, a Bernstein-polynomial sum weighted by a small vector of real
// coefficients that controls local surface detail, plus a linear
// trailing-edge thickening term x·dz. A handful of weights per surface
// reproduces most practical airfoils to within manufacturing tolerance.
//
// # Features
//
// We provide the following notable features:
//
//   - Splitting an ordered coordinate sequence into upper and lower
//     surfaces at the leading edge (see [SplitSurfaces])
//   - Forward evaluation of a CST surface from a weight vector (see
//     [EvalSurface])
//   - Fitting a weight vector to target points with a bounded
//     derivative-free search, then resampling (see [Fit])
//   - A weights-only fit with symmetric bounds (see [FitWeights])
//   - Deterministic resampling at arbitrary resolution (see [Resample])
//   - CSV coordinate I/O (see [ReadPoints] and [WritePoints]) and YAML fit
//     profiles (see [LoadProfile])
//
// # Fitting
//
// The fit minimizes the root-mean-square error between target ordinates and
// the reconstruction, a scalar, non-convex, black-box objective. The search
// is box-constrained by the sign pattern of the initial guess and runs
// under a dual budget of iterations and wall time; whichever triggers first
// ends the search and the best candidate found is returned, with its final
// RMS error exposed so callers can judge quality. The search algorithm is
// swappable behind [Minimizer]; the default is CMA-ES from gonum's optimize
// package, with Nelder-Mead available for refining a good initial guess.
// Because the wall-time budget can cut the search at different points, two
// runs with identical inputs may return different weight vectors of similar
// error.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [Universal Parametric Geometry Representation Method] by Brenda Kulfan
//   - [The CMA Evolution Strategy: A Tutorial] by Nikolaus Hansen
//
// [Universal Parametric Geometry Representation Method]: https://arc.aiaa.org/doi/10.2514/1.29958
// [The CMA Evolution Strategy: A Tutorial]: https://arxiv.org/abs/1604.00772
package cst
