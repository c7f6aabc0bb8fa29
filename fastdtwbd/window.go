package fastdtwbd

import "github.com/arborwave/forcedalign/dtwbd"

// Project builds the refined-resolution search window from a path
// computed at half resolution (spec.md §4.E). For every coarse cell
// (ic, jc) and every refined row `2*ic + delta` with delta in
// [-radius, radius+1) (clamped to [0,n)), the window's interval on that
// row is widened to include columns [2*jc-radius, 2*(jc+1)+radius)
// (clamped to [0,m)).
//
// Deliberately does NOT reproduce original_source/helper.c's
// update_window double-indexing bug (spec.md §9.iii): the refined
// coordinates below are derived directly from the coarse path, never
// re-doubled.
func Project(coarsePath []dtwbd.Coord, radius, n, m int) *dtwbd.Window {
	w := dtwbd.NewWindow(n, m)

	for _, c := range coarsePath {
		lo := 2*c.J - radius
		hiInclusive := 2*(c.J+1) + radius - 1

		for delta := -radius; delta < radius+1; delta++ {
			row := 2*c.I + delta
			if row < 0 || row >= n {
				continue
			}
			w.Expand(row, lo)
			w.Expand(row, hiInclusive)
		}
	}

	repairContiguity(w, n)

	return w
}

// repairContiguity restores the row-to-row contiguity the banded DP
// recurrence needs (spec.md §4.E step 3): every row's interval must
// overlap or touch its predecessor's. A row the coarse path never
// touched directly (possible whenever consecutive coarse rows are more
// than 2*radius+1 apart in refined space) inherits its nearest
// predecessor's interval; a genuine gap between two non-empty rows is
// closed by widening whichever interval is narrower.
func repairContiguity(w *dtwbd.Window, n int) {
	havePrev := false
	prevLo, prevHi := 0, 0

	for i := 0; i < n; i++ {
		lo, hi := w.Bounds(i)
		if hi <= lo {
			if !havePrev {
				continue
			}
			w.Expand(i, prevLo)
			w.Expand(i, prevHi-1)
			lo, hi = w.Bounds(i)
		} else if havePrev {
			if lo > prevHi {
				if prevHi-prevLo <= hi-lo {
					w.Expand(i-1, lo-1)
				} else {
					w.Expand(i, prevHi)
				}
				lo, hi = w.Bounds(i)
			} else if hi < prevLo {
				if prevHi-prevLo <= hi-lo {
					w.Expand(i-1, hi)
				} else {
					w.Expand(i, prevLo-1)
				}
				lo, hi = w.Bounds(i)
			}
		}

		prevLo, prevHi = lo, hi
		havePrev = true
	}
}
