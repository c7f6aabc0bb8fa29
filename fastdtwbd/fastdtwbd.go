package fastdtwbd

import "github.com/arborwave/forcedalign/dtwbd"

// FastDTWBD aligns s and t via coarse-to-fine recursion (spec.md §4.F):
// below the base length MIN = 2*(radius+1)+1 it falls back directly to
// dtwbd.DTWBD over the full matrix; otherwise it coarsens both
// sequences by half, recurses, projects the coarse path into a window
// at the current resolution (Project), and refines with that window.
//
// The coarse level's distance is discarded by construction — only the
// refined-level distance from the final dtwbd.DTWBD call is returned.
// ReturnPath is forced to true for every intermediate (coarse) solve
// regardless of opts.ReturnPath, since Project needs a path; the
// caller's ReturnPath preference is honored only at the finest level.
func FastDTWBD(s, t [][]float64, opts dtwbd.Options, radius int) (path []dtwbd.Coord, distance float64, err error) {
	if radius < 0 {
		return nil, 0, ErrInvalidRadius
	}
	if err = opts.Validate(); err != nil {
		return nil, 0, err
	}

	n, m := len(s), len(t)
	if n == 0 || m == 0 {
		return nil, 0, dtwbd.ErrEmptyInput
	}

	if opts.Sink != nil {
		opts.Sink.Debugf("FastDTWBD: n=%d m=%d radius=%d", n, m, radius)
	}

	minLen := 2*(radius+1) + 1
	if n < minLen || m < minLen {
		return dtwbd.DTWBD(s, t, opts, nil)
	}

	sCoarse := Coarsen(s)
	tCoarse := Coarsen(t)

	coarseOpts := opts
	coarseOpts.ReturnPath = true

	coarsePath, _, err := FastDTWBD(sCoarse, tCoarse, coarseOpts, radius)
	if err != nil {
		return nil, 0, err
	}

	window := Project(coarsePath, radius, n, m)

	return dtwbd.DTWBD(s, t, opts, window)
}
