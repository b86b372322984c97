package route

import "math"

// The delta_* queries are pure, non-mutating "what-if" evaluators used by
// move generation (package neighborhood) to screen candidates before
// paying for a full incremental re-evaluation. Per spec §9 open question
// (b), every delta query here runs the full forward-prefix time-window
// check rather than only inspecting the edited position — a cheaper,
// adjacent-only check is known to miss violations further down the
// route and is explicitly rejected by this spec.
//
// Each function returns (delta, feasible). feasible == false is the
// "infeasible" marker from spec §4.B; delta is meaningless in that case
// and callers must not use it.

// DeltaTimeInsert reports the change in cum_travel(last) if nodeID were
// inserted immediately before pos, or feasible == false if doing so would
// create a new time-window violation detectable by a forward scan.
func (r *Route) DeltaTimeInsert(nodeID, pos int) (delta float64, feasible bool) {
	if err := r.checkInsertable(pos); err != nil {
		return 0, false
	}
	shadow := make([]int, len(r.nodes)+1)
	copy(shadow, r.nodes[:pos])
	shadow[pos] = nodeID
	copy(shadow[pos+1:], r.nodes[pos:])

	return r.shadowDelta(shadow, pos)
}

// DeltaTimeReplace reports the change in cum_travel(last) if the node at
// pos were overwritten by nodeID, or feasible == false on a new
// time-window violation. Used for inter-route swap screening on each
// side independently.
func (r *Route) DeltaTimeReplace(nodeID, pos int) (delta float64, feasible bool) {
	if err := r.checkInterior(pos); err != nil {
		return 0, false
	}
	shadow := make([]int, len(r.nodes))
	copy(shadow, r.nodes)
	shadow[pos] = nodeID

	return r.shadowDelta(shadow, pos)
}

// DeltaTimeSwap reports the change in cum_travel(last) if the interior
// nodes at pos1 and pos2 were exchanged, or feasible == false on a new
// time-window violation. Adjacent and non-adjacent pairs both run the
// same full forward scan from the earlier of the two positions.
func (r *Route) DeltaTimeSwap(pos1, pos2 int) (delta float64, feasible bool) {
	if err := r.checkInterior(pos1); err != nil {
		return 0, false
	}
	if err := r.checkInterior(pos2); err != nil {
		return 0, false
	}
	if pos1 == pos2 {
		return 0, true
	}
	shadow := make([]int, len(r.nodes))
	copy(shadow, r.nodes)
	shadow[pos1], shadow[pos2] = shadow[pos2], shadow[pos1]

	from := pos1
	if pos2 < from {
		from = pos2
	}
	return r.shadowDelta(shadow, from)
}

// shadowDelta walks shadow[from:] forward, seeded from the real
// (unchanged) state at shadow[from-1], and reports the change in total
// cum_travel versus the real route plus whether every position in the
// suffix still meets its close. It never mutates r.
func (r *Route) shadowDelta(shadow []int, from int) (delta float64, feasible bool) {
	prevDeparture := r.st[from-1].departure
	prevID := shadow[from-1]

	var newSuffixTravel float64
	for i := from; i < len(shadow); i++ {
		curID := shadow[i]
		node := r.cat.Node(curID)

		travel, err := r.mat.Travel(prevID, curID)
		if err != nil {
			return 0, false
		}
		arrival := prevDeparture + travel
		if arrival > node.Window.Close {
			return 0, false
		}
		departure := math.Max(arrival, node.Window.Open) + node.Service

		newSuffixTravel += travel
		prevDeparture = departure
		prevID = curID
	}

	// oldSuffixTravel sums travel(i) for i in the *real* route's matching
	// index range. When shadow is longer than r.nodes (insert), the real
	// route's suffix runs from `from` to its own end; the comparison is
	// still correct because cumTravel is a running sum of travel() only.
	realLast := len(r.nodes) - 1
	var oldSuffixTravel float64
	if from-1 <= realLast {
		oldSuffixTravel = r.st[realLast].cumTravel - r.st[from-1].cumTravel
	}

	delta = newSuffixTravel - oldSuffixTravel
	return delta, true
}
