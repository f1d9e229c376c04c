package dcg

// Stats aggregates run counters across a graph and all of its clones: the
// verification machinery works on structural copies, so the counters live
// behind a shared pointer rather than on each copy.
type Stats struct {
	// CandidatesVerified counts boundary edges submitted to walk
	// verification. A candidate rejected and later resubmitted counts
	// each time.
	CandidatesVerified int

	// ExtendedByVerification counts edges admitted through walk
	// verification rather than direct extension.
	ExtendedByVerification int

	// RemovedDisjointEdges counts edges discarded as disjoint from every
	// feasible walk.
	RemovedDisjointEdges int

	// PrunedWalks counts merge-point prunes applied during verification.
	PrunedWalks int

	// HaltingEdges counts extensions that reached a halting state.
	HaltingEdges int

	// ExtendedWalks counts maximal computation walks extended directly,
	// and WalkLengthSum accumulates their lengths for averaging.
	ExtendedWalks int
	WalkLengthSum int
}

// AverageWalkLength returns the mean length of directly extended walks, or
// 0 before any walk was extended.
func (s *Stats) AverageWalkLength() float64 {
	if s.ExtendedWalks == 0 {
		return 0
	}
	return float64(s.WalkLengthSum) / float64(s.ExtendedWalks)
}
