package dtwbd

// Window is a per-row column interval [Lo(i), Hi(i)) constraining which
// (i,j) cells of the DP store may be filled. It is built by
// fastdtwbd.Project from a coarse-resolution path, but callers may
// construct one directly (e.g. a Sakoe–Chiba band).
//
// A nil *Window is equivalent to Lo(i)=0, Hi(i)=m for every row (a full
// matrix). Hi(i) == Lo(i) means row i is empty: legal, but then no path
// can traverse row i.
type Window struct {
	lo, hi []int // length n, one interval per row
	n, m   int
}

// NewWindow allocates a Window over n rows and m columns with every row
// initialized to the empty interval [m, 0) — the same "not yet touched"
// sentinel original_source/helper.c's get_window initializes to before
// expanding intervals from a coarse path.
func NewWindow(n, m int) *Window {
	w := &Window{
		lo: make([]int, n),
		hi: make([]int, n),
		n:  n,
		m:  m,
	}
	for i := 0; i < n; i++ {
		w.lo[i] = m
		w.hi[i] = 0
	}

	return w
}

// Rows reports the number of rows the window covers.
func (w *Window) Rows() int { return w.n }

// Cols reports the number of columns the window covers.
func (w *Window) Cols() int { return w.m }

// Bounds returns the [lo,hi) interval for row i.
func (w *Window) Bounds(i int) (lo, hi int) {
	return w.lo[i], w.hi[i]
}

// Contains reports whether (i,j) lies inside the window.
func (w *Window) Contains(i, j int) bool {
	if i < 0 || i >= w.n {
		return false
	}

	return j >= w.lo[i] && j < w.hi[i]
}

// Expand widens row i's interval to include column j, clamped to [0,m).
// This is the Go counterpart of original_source/helper.c's update_window,
// minus the double-indexing bug spec.md §9.iii calls out: callers here
// always pass already-refined (i,j) coordinates, never re-doubled ones.
func (w *Window) Expand(i, j int) {
	if i < 0 || i >= w.n {
		return
	}
	if j < 0 {
		j = 0
	}
	if j > w.m-1 {
		j = w.m - 1
	}
	if j < w.lo[i] {
		w.lo[i] = j
	}
	if j+1 > w.hi[i] {
		w.hi[i] = j + 1
	}
}

// bandwidth returns max_i (hi(i) - lo(i)). The store constructors do not
// call it; newBandedStore computes the same maximum from the row bounds.
func (w *Window) bandwidth() int {
	b := 0
	for i := 0; i < w.n; i++ {
		if width := w.hi[i] - w.lo[i]; width > b {
			b = width
		}
	}

	return b
}

// validate reports ErrInvalidWindow if the window is malformed: a row
// count mismatch, or any row with hi < lo or hi > m. A row still holding
// NewWindow's untouched [m, 0) interval is an empty row, not a malformed
// one. A malformed window is a caller bug (spec.md §4.C "Failures") and
// must be reported, not silently clamped.
func (w *Window) validate(n, m int) error {
	if w.n != n || w.m != m {
		return ErrInvalidWindow
	}
	for i := 0; i < w.n; i++ {
		if w.lo[i] == w.m && w.hi[i] == 0 {
			continue // untouched row: empty
		}
		if w.lo[i] < 0 || w.hi[i] < w.lo[i] || w.hi[i] > w.m {
			return ErrInvalidWindow
		}
	}

	return nil
}
