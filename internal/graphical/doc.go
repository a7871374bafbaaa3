// Package graphical implements graphical functions: user-authored piecewise
// functions given as sampled points.
//
// A Table has one of two shapes:
//
//   - UniformScale: an x-scale (min, max) and N y samples placed at N evenly
//     spaced x positions, position(i) = min + i*(max-min)/(N-1).
//
//   - ExplicitPairs: N ascending x positions and N y samples.
//
// Positions must be non-decreasing. Two equal adjacent positions describe a
// step discontinuity; evaluation is right-continuous there.
//
// Evaluate applies one of three policies:
//
//	Continuous   linear interpolation inside, clamp to the end values outside
//	Extrapolate  linear interpolation inside, extend the end segments outside
//	Discrete     y of the bracketing sample on the left, clamp outside
//
// A Table is immutable once built; Evaluate, Lookup and the aggregates are
// safe for any number of concurrent callers.
package graphical
