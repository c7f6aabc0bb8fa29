// Package forcedalign computes a time-warped correspondence between
// two feature sequences — for example acoustic frames of a narrated
// audio track and synthesized frames of a reference text — and exposes
// a single entry point, Align, that wraps the coarse-to-fine FastDTWBD
// accelerator over the dtwbd.DTWBD recurrence.
//
// 🚀 Quick start
//
//	opts := dtwbd.DefaultOptions()
//	opts.SkipPenalty = 0.1
//	path, dist, err := forcedalign.Align(s, t, opts, 5)
//	if err != nil {
//		// handle forcedalign/dtwbd/fastdtwbd sentinel errors
//	}
//
// ✨ Package layout
//
//   - dtwbd     - the DP recurrence, windowed store, and path reconstruction
//   - fastdtwbd - coarsening, window projection, and the recursive driver
//   - forcedalign (this package) - the one public entry point callers need
//
// Feature extraction, segment-to-path conversion, file I/O, and CLI
// plumbing are external collaborators this module does not provide;
// Align accepts two dense feature matrices and parameters, and returns
// a warping path and its distance.
package forcedalign
