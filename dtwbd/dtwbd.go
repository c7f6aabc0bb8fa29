package dtwbd

import "math"

// DTWBD computes the minimal-cost alignment between two sequences of
// feature frames s (n frames) and t (m frames), both of frame length l,
// under a per-frame skip penalty σ and an optional search window.
//
// Unlike classical DTW, DTWBD allows the path to start and end anywhere
// in the matrix: the cost of skipping a head/tail prefix is charged
// explicitly (spec.md §4.C), so a fragment of s embedded in noisy t (or
// vice versa) is still found.
//
// Preconditions:
//   - len(s) >= 1, len(t) >= 1, and every frame has the same length l >= 1.
//   - opts.Validate() must pass (checked internally).
//   - window, if non-nil, must cover exactly (len(s), len(t)) rows/cols.
//
// Time complexity:   O(bandwidth * n) with a window, O(n*m) without.
// Memory complexity: O(bandwidth * n) banded, O(filled cells) sparse.
func DTWBD(s, t [][]float64, opts Options, window *Window) (path []Coord, distance float64, err error) {
	log := sinkOrNoop(opts.Sink)

	n, m := len(s), len(t)
	if n == 0 || m == 0 {
		return nil, 0, ErrEmptyInput
	}

	l := len(s[0])
	if l == 0 {
		return nil, 0, ErrEmptyInput
	}
	if len(t[0]) != l {
		return nil, 0, ErrFrameWidthMismatch
	}
	for _, frame := range s {
		if len(frame) != l {
			return nil, 0, ErrFrameWidthMismatch
		}
	}
	for _, frame := range t {
		if len(frame) != l {
			return nil, 0, ErrFrameWidthMismatch
		}
	}

	if err = opts.Validate(); err != nil {
		return nil, 0, err
	}

	if window != nil {
		if err = window.validate(n, m); err != nil {
			return nil, 0, err
		}
	}

	log.Debugf("DTWBD: n=%d m=%d l=%d skipPenalty=%f windowed=%v", n, m, l, opts.SkipPenalty, window != nil)

	st, err := newStore(n, m, window)
	if err != nil {
		return nil, 0, err
	}

	rowBounds := func(i int) (int, int) {
		if window == nil {
			return 0, m
		}

		return window.Bounds(i)
	}

	penalty := opts.SkipPenalty

	// Row-major fill, left-to-right within each row: required so the
	// (i,j-1) predecessor is always already written (spec.md §5
	// "Ordering").
	for i := 0; i < n; i++ {
		lo, hi := rowBounds(i)
		for j := lo; j < hi; j++ {
			localCost := FrameDistance(s[i], t[j])

			// Candidates are gathered in tie-break priority order —
			// diagonal, skip-in-s, skip-in-t, START — so the first
			// candidate in the list is the initial "best", and later
			// candidates only displace it on a strictly lower cost.
			// That makes equal-cost ties resolve toward the
			// earlier-listed (higher-priority) move, per spec.md §4.C.
			bestMove := MoveNone
			bestCost := penalty * float64(i+j) // START, always available
			set := false

			if i > 0 && j > 0 {
				if c, ok := st.get(i-1, j-1); ok {
					bestCost, bestMove, set = c.Distance, MoveDiag, true
				}
			}
			if i > 0 {
				if c, ok := st.get(i-1, j); ok {
					if cand := c.Distance + penalty; !set || cand < bestCost {
						bestCost, bestMove, set = cand, MoveSkipS, true
					}
				}
			}
			if j > 0 {
				if c, ok := st.get(i, j-1); ok {
					if cand := c.Distance + penalty; !set || cand < bestCost {
						bestCost, bestMove, set = cand, MoveSkipT, true
					}
				}
			}
			if startCost := penalty * float64(i+j); !set || startCost < bestCost {
				bestCost, bestMove = startCost, MoveNone
			}

			st.put(i, j, Cell{Distance: localCost + bestCost, Back: bestMove, set: true})
		}
	}

	// Endpoint selection: every filled cell pays for its unaligned
	// suffix too (spec.md §4.C), so the minimum total — not necessarily
	// the bottom-right corner — decides where the path ends. On a tie
	// (common at σ=0, where every diagonal cell of an identity alignment
	// has total=0), prefer the cell covering the most of the matrix —
	// i.e. the last one visited in row-major order — so the path spans
	// as much of s and t as the cost allows rather than stopping at the
	// first equally-cheap cell.
	endI, endJ := -1, -1
	best := math.Inf(1)
	for i := 0; i < n; i++ {
		lo, hi := rowBounds(i)
		for j := lo; j < hi; j++ {
			c, ok := st.get(i, j)
			if !ok {
				continue
			}
			total := c.Distance + penalty*float64(n-i+m-j-2)
			if total <= best {
				best = total
				endI, endJ = i, j
			}
		}
	}

	if endI < 0 {
		log.Debugf("DTWBD: no filled cell under window, returning ErrNoPath")

		return nil, 0, ErrNoPath
	}

	distance = best

	if !opts.ReturnPath {
		return nil, distance, nil
	}

	path = backtrack(st, endI, endJ)

	return path, distance, nil
}

// backtrack walks Back pointers from (i,j) until MoveNone, then reverses
// the accumulated points so the path runs start -> end.
func backtrack(st store, i, j int) []Coord {
	path := make([]Coord, 0, i+j+1)

	for {
		c, ok := st.get(i, j)
		if !ok {
			break
		}
		path = append(path, Coord{I: i, J: j})
		switch c.Back {
		case MoveDiag:
			i, j = i-1, j-1
		case MoveSkipS:
			i--
		case MoveSkipT:
			j--
		case MoveNone:
			reverseCoords(path)

			return path
		}
	}

	reverseCoords(path)

	return path
}

func reverseCoords(path []Coord) {
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
}
