package route

import (
	"github.com/trashroute/vrptrash/catalog"
)

// Weights holds the three penalty coefficients from spec §3/§4.B:
// w1 scales total travel time, w2 scales capacity violations, w3 scales
// time-window violations.
type Weights struct {
	Travel   float64
	Capacity float64
	Window   float64
}

// state is the per-position cumulative evaluation record (spec §3).
type state struct {
	nodeID int // internal catalog id occupying this position

	travel      float64 // matrix[prev][cur] for this position; 0 at position 0
	arrival     float64
	wait        float64
	departure   float64
	carriedLoad float64

	cumTravel  float64
	cumWait    float64
	cumService float64
	dumpVisits int

	twViolations  int // running count, positions 0..i
	capViolations int // running count, positions 0..i
}

// Route is an evaluated, position-indexed sequence of visits for one
// vehicle: v0 (start depot), interior pickups/dumps, D (dump), E (end
// depot). See package doc for the dump-sandwich invariant.
type Route struct {
	cat      *catalog.Catalog
	mat      *catalog.TravelTimeMatrix
	capacity float64
	weights  Weights

	vehicleID string
	nodes     []int // internal catalog ids, position-indexed
	st        []state
}

// New constructs a route already containing the mandatory dump sandwich:
// [startDepot, dump, endDepot]. Per spec §9 open question (a), the
// sandwich is created at construction time; there is no route state
// without it.
func New(vehicleID string, cat *catalog.Catalog, mat *catalog.TravelTimeMatrix, capacity float64, weights Weights, startDepot, dump, endDepot int) *Route {
	r := &Route{
		cat:       cat,
		mat:       mat,
		capacity:  capacity,
		weights:   weights,
		vehicleID: vehicleID,
		nodes:     []int{startDepot, dump, endDepot},
		st:        make([]state, 3),
	}
	r.evalFrom(0)
	return r
}

// VehicleID returns the owning vehicle's stable id.
func (r *Route) VehicleID() string { return r.vehicleID }

// Len returns the number of positions, including the start depot and the
// trailing dump-sandwich.
func (r *Route) Len() int { return len(r.nodes) }

// NodeAt returns the internal catalog id occupying pos.
func (r *Route) NodeAt(pos int) int { return r.nodes[pos] }

// dumpPos and endPos are the indices of the trailing sandwich.
func (r *Route) dumpPos() int { return len(r.nodes) - 2 }
func (r *Route) endPos() int  { return len(r.nodes) - 1 }

// interiorLast is the last valid interior index, or 0 if there are none
// (an empty route has interiorLast == 0, making [1, interiorLast] empty
// since 1 > 0).
func (r *Route) interiorLast() int { return r.dumpPos() - 1 }

// NumPickups reports how many interior positions hold a Pickup node.
// Cost() special-cases zero pickups to a flat 0, per spec §3 invariant 5.
func (r *Route) NumPickups() int {
	n := 0
	for i := 1; i <= r.interiorLast(); i++ {
		if r.cat.Node(r.nodes[i]).Kind == catalog.Pickup {
			n++
		}
	}
	return n
}

// PickupPositions returns the interior positions holding Pickup nodes, in
// ascending order.
func (r *Route) PickupPositions() []int {
	var out []int
	for i := 1; i <= r.interiorLast(); i++ {
		if r.cat.Node(r.nodes[i]).Kind == catalog.Pickup {
			out = append(out, i)
		}
	}
	return out
}

func (r *Route) checkInterior(pos int) error {
	if pos < 1 || pos > r.interiorLast() {
		return ErrSandwichViolation
	}
	return nil
}

// checkInsertable allows pos up to dumpPos (inserting right before the
// current dump, pushing the sandwich one position to the right).
func (r *Route) checkInsertable(pos int) error {
	if pos < 1 || pos > r.dumpPos() {
		return ErrSandwichViolation
	}
	return nil
}

// HasDumpSandwichInvariant verifies the trailing two positions are a
// Dump followed by a Depot.
func (r *Route) HasDumpSandwichInvariant() bool {
	n := len(r.nodes)
	if n < 3 {
		return false
	}
	dump := r.cat.Node(r.nodes[n-2])
	end := r.cat.Node(r.nodes[n-1])
	return dump.Kind == catalog.Dump && end.Kind == catalog.Depot
}

// Cost returns w1*cum_travel(last) + w2*cap_violations(last) +
// w3*tw_violations(last); an empty route (no pickups) is always 0.
func (r *Route) Cost() float64 {
	if r.NumPickups() == 0 {
		return 0
	}
	last := r.st[len(r.st)-1]
	return r.weights.Travel*last.cumTravel +
		r.weights.Capacity*float64(last.capViolations) +
		r.weights.Window*float64(last.twViolations)
}

// TravelTime returns cum_travel at the last position.
func (r *Route) TravelTime() float64 { return r.st[len(r.st)-1].cumTravel }

// TWViolations returns tw_violations at the last position.
func (r *Route) TWViolations() int { return r.st[len(r.st)-1].twViolations }

// CapViolations returns cap_violations at the last position.
func (r *Route) CapViolations() int { return r.st[len(r.st)-1].capViolations }

// Feasible reports whether both violation counters are zero at the last
// position.
func (r *Route) Feasible() bool {
	last := r.st[len(r.st)-1]
	return last.twViolations == 0 && last.capViolations == 0
}

// Clone returns a deep copy of r that shares the read-only catalog and
// matrix handles but owns independent position and state slices. Used by
// the neighborhood generator to compute exact candidate savings via
// apply-then-discard without touching the live route.
func (r *Route) Clone() *Route {
	out := &Route{
		cat:       r.cat,
		mat:       r.mat,
		capacity:  r.capacity,
		weights:   r.weights,
		vehicleID: r.vehicleID,
		nodes:     append([]int(nil), r.nodes...),
		st:        append([]state(nil), r.st...),
	}
	return out
}

// ArrivalAt, DepartureAt, CarriedLoadAt expose per-position cumulative
// state for callers (output emission, property tests) that need it
// without reaching into the unexported state slice.
func (r *Route) ArrivalAt(pos int) float64     { return r.st[pos].arrival }
func (r *Route) DepartureAt(pos int) float64   { return r.st[pos].departure }
func (r *Route) CarriedLoadAt(pos int) float64 { return r.st[pos].carriedLoad }
