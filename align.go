package forcedalign

import (
	"github.com/arborwave/forcedalign/dtwbd"
	"github.com/arborwave/forcedalign/fastdtwbd"
)

// Align computes the minimal-cost warping path between s (n frames) and
// t (m frames), both of equal frame width l, under opts and FastDTWBD
// radius radius. It is a thin wrapper over fastdtwbd.FastDTWBD
// (spec.md §6: "An inner entry point may also expose
// dtw_bd_windowed(...) — the driver is then a thin wrapper"); opts
// (skip penalty, path reconstruction, and an optional diagnostic Sink)
// is passed straight through, exactly as dtwbd.DTWBD already takes it.
//
// Preconditions: n >= 1, m >= 1, l >= 1, opts.SkipPenalty >= 0, radius >= 0.
func Align(s, t [][]float64, opts dtwbd.Options, radius int) (path []dtwbd.Coord, distance float64, err error) {
	return fastdtwbd.FastDTWBD(s, t, opts, radius)
}

// AlignWindowed computes the minimal-cost warping path under an
// explicit window instead of FastDTWBD's coarse-to-fine radius,
// delegating directly to dtwbd.DTWBD. This is the unaccelerated inner
// entry point spec.md §6 names alongside Align.
func AlignWindowed(s, t [][]float64, opts dtwbd.Options, window *dtwbd.Window) (path []dtwbd.Coord, distance float64, err error) {
	return dtwbd.DTWBD(s, t, opts, window)
}
