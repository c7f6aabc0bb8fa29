// Package dtwbd computes Dynamic Time Warping with Boundary Detection
// (DTWBD) between two sequences of real-valued feature frames, with
// optional head/tail/interior skipping and an optional search window.
//
// 🚀 What is DTWBD?
//
//	Classical DTW aligns two sequences end-to-end. DTWBD adds a per-frame
//	skip penalty σ that may be paid at the start, the end, or anywhere a
//	cell is treated as a path origin, so a prefix or suffix of either
//	sequence can be left unaligned — useful when one sequence is a
//	fragment embedded in noise, as with narrated-audio-to-reference-text
//	alignment.
//
// ✨ Key features:
//   - banded or hash-sparse DP cell storage, chosen per predicted density
//   - explicit back-pointer tags for exact path reconstruction
//   - Euclidean frame distance via gonum/floats
//   - optional Window to restrict the search band (used by fastdtwbd)
//
// ⚙️ Usage:
//
//	import "github.com/arborwave/forcedalign/dtwbd"
//
//	opts := dtwbd.DefaultOptions()
//	opts.SkipPenalty = 0.5
//
//	path, dist, err := dtwbd.DTWBD(s, t, opts, nil) // nil window = full matrix
//
// Performance:
//
//   - Time:   O(bandwidth * n) with a window, O(n*m) without
//   - Memory: O(bandwidth * n) banded, O(filled cells) sparse
package dtwbd
