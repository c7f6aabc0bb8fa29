// Package fastdtwbd implements FastDTWBD, a coarse-to-fine accelerator
// over dtwbd.DTWBD: solve at a halved resolution, project that coarse
// path into a banded window at the finer resolution, then refine. The
// recursion bottoms out once either sequence is too short to coarsen
// further, at which point it falls back to an unwindowed DTWBD.
//
// 🚀 Quick start
//
//	opts := dtwbd.DefaultOptions()
//	opts.SkipPenalty = 0.1
//	path, dist, err := fastdtwbd.FastDTWBD(s, t, opts, 5)
//
// ✨ Why multi-resolution
//
// A direct DTWBD call is O(n·m) time and memory. Coarsening both
// sequences by half at each level and projecting a narrow band back
// down makes the total cost linear in the finest-level length for a
// fixed radius, at the cost of an approximate (rather than globally
// exact) alignment — invariant 6 guarantees widening the radius never
// makes the result worse, and invariant 7 guarantees exactness once the
// radius covers the whole matrix.
//
// ⚙️ Radius
//
// radius controls the Chebyshev neighborhood expanded around each
// projected coarse cell (see Project). radius=0 gives the narrowest
// possible band; larger radius trades speed for closer-to-exact
// alignment.
package fastdtwbd
