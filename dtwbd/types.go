package dtwbd

// Coord represents a single point (i,j) in the optimal warping path.
// I denotes the index in sequence s, J denotes the index in sequence t.
type Coord struct {
	I, J int
}

// Move tags the predecessor a filled cell was reached from, so that path
// reconstruction never has to re-derive a move from floating-point
// equality (the teacher's DTW package does that; DTWBD's skip-penalty
// recurrence has more candidate moves and ties are common enough at
// σ-boundaries that an explicit tag is required for exactness).
type Move uint8

const (
	// MoveNone marks a cell with no predecessor: either never filled, or
	// a path start reached via the START candidate.
	MoveNone Move = iota
	// MoveDiag is the (i-1,j-1) match step.
	MoveDiag
	// MoveSkipS is the (i-1,j) step: advance in s only.
	MoveSkipS
	// MoveSkipT is the (i,j-1) step: advance in t only.
	MoveSkipT
)

// Cell holds one entry of the DP store: the accumulated cost at (i,j) and
// the move that produced it. A Cell is considered absent (equivalent to
// +∞) until written.
type Cell struct {
	Distance float64
	Back     Move
	// set is false until the cell has been written once; distinguishes
	// a genuine zero-cost cell from an unwritten one.
	set bool
}

// Options configures DTWBD.
//
// Fields:
//
//	SkipPenalty - σ ≥ 0, per-frame cost of leaving a frame unaligned,
//	              charged at the head, the tail, and at any interior
//	              skip-in-s / skip-in-t step.
//	ReturnPath  - if true, DTWBD reconstructs and returns the warping
//	              path; otherwise only the distance is computed.
//	Sink        - optional diagnostic collaborator (nil is safe); see
//	              sink.go.
type Options struct {
	SkipPenalty float64
	ReturnPath  bool
	Sink        Sink
}

// DefaultOptions returns an Options struct pre-populated with safe
// defaults.
//
//	SkipPenalty: 0.0   // free boundary skipping
//	ReturnPath:  true   // reconstruct the alignment path
//	Sink:        nil    // no diagnostic output
func DefaultOptions() Options {
	return Options{
		SkipPenalty: 0.0,
		ReturnPath:  true,
		Sink:        nil,
	}
}

// Validate checks that Options fields hold a valid combination.
func (o *Options) Validate() error {
	if o.SkipPenalty < 0 {
		return ErrInvalidOptions
	}

	return nil
}
