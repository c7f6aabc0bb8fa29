package fastdtwbd_test

import (
	"testing"

	"github.com/arborwave/forcedalign/dtwbd"
	"github.com/arborwave/forcedalign/fastdtwbd"
	"github.com/stretchr/testify/assert"
)

func seqFrom(vals ...float64) [][]float64 {
	out := make([][]float64, len(vals))
	for i, v := range vals {
		out[i] = []float64{v}
	}

	return out
}

// TestFastDTWBD_NegativeRadius verifies the radius precondition.
func TestFastDTWBD_NegativeRadius(t *testing.T) {
	opts := dtwbd.DefaultOptions()
	_, _, err := fastdtwbd.FastDTWBD(seqFrom(0, 1), seqFrom(0, 1), opts, -1)
	assert.ErrorIs(t, err, fastdtwbd.ErrInvalidRadius)
}

// TestFastDTWBD_EmptyInput verifies the empty-sequence precondition.
func TestFastDTWBD_EmptyInput(t *testing.T) {
	opts := dtwbd.DefaultOptions()
	_, _, err := fastdtwbd.FastDTWBD([][]float64{}, seqFrom(0, 1), opts, 1)
	assert.ErrorIs(t, err, dtwbd.ErrEmptyInput)
}

// TestFastDTWBD_Identity reproduces S1 at full FastDTWBD resolution:
// aligning a sequence with itself always yields the zero-cost diagonal.
func TestFastDTWBD_Identity(t *testing.T) {
	s := seqFrom(0, 1, 2, 3, 4, 5, 6, 7)
	opts := dtwbd.DefaultOptions()
	opts.SkipPenalty = 1

	path, dist, err := fastdtwbd.FastDTWBD(s, s, opts, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	for i, c := range path {
		assert.Equal(t, dtwbd.Coord{I: i, J: i}, c)
	}
}

// TestFastDTWBD_BelowBaseFallsBackToPlainDTWBD verifies that sequences
// shorter than MIN=2*(radius+1)+1 skip the recursion entirely and match
// a direct, unwindowed DTWBD call exactly.
func TestFastDTWBD_BelowBaseFallsBackToPlainDTWBD(t *testing.T) {
	s := seqFrom(1, 2)
	ti := seqFrom(9, 9, 1, 2)
	opts := dtwbd.DefaultOptions()
	opts.SkipPenalty = 1

	fastPath, fastDist, err := fastdtwbd.FastDTWBD(s, ti, opts, 2)
	assert.NoError(t, err)

	directPath, directDist, err := dtwbd.DTWBD(s, ti, opts, nil)
	assert.NoError(t, err)

	assert.InDelta(t, directDist, fastDist, 1e-9)
	assert.Equal(t, directPath, fastPath)
}

// TestFastDTWBD_ExactAtFullWidth reproduces invariant 7 / S5: once the
// radius covers the whole matrix, FastDTWBD's recursion bottoms out on
// its very first call (MIN exceeds both lengths), so its distance
// matches an unwindowed DTWBD call exactly.
func TestFastDTWBD_ExactAtFullWidth(t *testing.T) {
	s := seqFrom(1, 5, 2, 9, 3, 7, 4, 8, 6, 0)
	ti := seqFrom(1, 2, 5, 9, 9, 2, 3, 7, 4, 8, 6, 0)
	opts := dtwbd.DefaultOptions()
	opts.SkipPenalty = 0.1

	n, m := len(s), len(ti)
	radius := n
	if m > radius {
		radius = m
	}

	fastPath, fastDist, err := fastdtwbd.FastDTWBD(s, ti, opts, radius)
	assert.NoError(t, err)

	directPath, directDist, err := dtwbd.DTWBD(s, ti, opts, nil)
	assert.NoError(t, err)

	assert.InDelta(t, directDist, fastDist, 1e-9)
	assert.Equal(t, directPath, fastPath)
}

// TestFastDTWBD_RadiusMonotonicity verifies invariant 6: widening the
// radius never increases the returned distance.
func TestFastDTWBD_RadiusMonotonicity(t *testing.T) {
	s := seqFrom(1, 5, 2, 9, 3, 7, 4, 8, 6, 0, 3, 5, 1, 2)
	ti := seqFrom(1, 2, 5, 9, 9, 2, 3, 7, 4, 8, 6, 0, 1, 3, 5, 2)
	opts := dtwbd.DefaultOptions()
	opts.SkipPenalty = 0.2
	opts.ReturnPath = false

	_, dist1, err := fastdtwbd.FastDTWBD(s, ti, opts, 1)
	assert.NoError(t, err)

	_, dist2, err := fastdtwbd.FastDTWBD(s, ti, opts, 3)
	assert.NoError(t, err)

	assert.True(t, dist2 <= dist1+1e-9, "wider radius (dist=%v) should not exceed narrower radius (dist=%v)", dist2, dist1)
}

// TestFastDTWBD_PrefixRobustness reproduces invariant 9: a sequence
// embedded after k noise frames aligns with distance bounded by sigma*k.
func TestFastDTWBD_PrefixRobustness(t *testing.T) {
	s := seqFrom(1, 2, 3, 4, 5, 6, 7, 8)
	noise := seqFrom(100, 101)
	ti := append(append([][]float64{}, noise...), s...)

	opts := dtwbd.DefaultOptions()
	opts.SkipPenalty = 0.5

	path, dist, err := fastdtwbd.FastDTWBD(s, ti, opts, 1)
	assert.NoError(t, err)
	assert.True(t, dist <= 0.5*float64(len(noise))+1e-6)

	minI, maxI := path[0].I, path[0].I
	for _, c := range path {
		if c.I < minI {
			minI = c.I
		}
		if c.I > maxI {
			maxI = c.I
		}
	}
	assert.Equal(t, 0, minI)
	assert.Equal(t, len(s)-1, maxI)
}

// TestFastDTWBD_BadOptions verifies Options validation runs before any
// recursion.
func TestFastDTWBD_BadOptions(t *testing.T) {
	opts := dtwbd.DefaultOptions()
	opts.SkipPenalty = -1

	_, _, err := fastdtwbd.FastDTWBD(seqFrom(0, 1), seqFrom(0, 1), opts, 1)
	assert.ErrorIs(t, err, dtwbd.ErrInvalidOptions)
}
