package dtwbd

import "gonum.org/v1/gonum/floats"

// FrameDistance returns the Euclidean distance between two equal-length
// feature frames: √Σ(xₖ−yₖ)². It is pure, commutative, and nonnegative.
//
// Delegated to gonum/floats.Distance with the L2 norm rather than a
// hand-rolled loop: floats.Distance(x, y, 2) is exactly the Minkowski-2
// (Euclidean) distance this package's recurrence needs, and is already
// the numeric vector-distance primitive other repos in this codebase's
// lineage reach for over stdlib math.
func FrameDistance(x, y []float64) float64 {
	return floats.Distance(x, y, 2)
}
