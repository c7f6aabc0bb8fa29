package fastdtwbd

// Coarsen halves seq by pairwise averaging: out[k] = (seq[2k] +
// seq[2k+1]) / 2 for k = 0 .. len(seq)/2-1. An odd trailing frame is
// discarded (spec.md §9.ii: earlier variants both discarded and carried
// the odd frame forward; discard is simpler and stable under repeated
// recursion). Grounded on original_source/helper.c's
// get_coarsed_sequence.
func Coarsen(seq [][]float64) [][]float64 {
	half := len(seq) / 2
	out := make([][]float64, half)
	for k := 0; k < half; k++ {
		a, b := seq[2*k], seq[2*k+1]
		avg := make([]float64, len(a))
		for d := range a {
			avg[d] = (a[d] + b[d]) / 2
		}
		out[k] = avg
	}

	return out
}
