// Package dtwbd: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All functions in
// this package MUST return these sentinels and tests MUST check them via
// errors.Is. The package never panics on user-triggered error conditions.

package dtwbd

import "errors"

var (
	// ErrEmptyInput indicates one or both input sequences are empty.
	ErrEmptyInput = errors.New("dtwbd: input sequences must be non-empty")

	// ErrFrameWidthMismatch indicates the two sequences carry different
	// feature widths (l).
	ErrFrameWidthMismatch = errors.New("dtwbd: frame widths must match")

	// ErrInvalidOptions indicates an invalid combination of Options
	// fields (a negative SkipPenalty).
	ErrInvalidOptions = errors.New("dtwbd: invalid options")

	// ErrInvalidWindow indicates a malformed window (hi < lo other than
	// NewWindow's untouched empty row, hi > m, or a window whose row or
	// column count does not match the inputs). Malformed windows are a
	// caller bug and must be reported, not silently clamped.
	ErrInvalidWindow = errors.New("dtwbd: invalid window")

	// ErrOutOfMemory indicates a DP store allocation failed.
	ErrOutOfMemory = errors.New("dtwbd: allocation failed")

	// ErrNoPath indicates the window was so restrictive that no cell
	// could be filled (every row empty). Distinguishable from a well-formed
	// empty result, which cannot occur for well-formed non-empty inputs.
	ErrNoPath = errors.New("dtwbd: no reachable path under window")
)
