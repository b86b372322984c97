package construct

import (
	"math"
	"sort"

	"github.com/trashroute/vrptrash/catalog"
	"github.com/trashroute/vrptrash/route"
	"github.com/trashroute/vrptrash/solution"
	"github.com/trashroute/vrptrash/twc"
)

// VehicleSpec is the input to the builder: one vehicle's capacity,
// sandwich node ids, shift window, and per-objective weights (spec §6
// vehicle lines, §4.G).
type VehicleSpec struct {
	ID         string
	Capacity   float64
	StartDepot int
	Dump       int
	EndDepot   int
	ShiftOpen  float64
	ShiftClose float64
	Weights    route.Weights
}

// Build runs the seeded greedy construction over every pickup in cat,
// producing an initial Solution. Vehicles are processed in shift-open
// order; each is filled by repeatedly appending the oracle-pruned,
// delta-screened cheapest-fit pickup, inserting an interior dump visit
// when nothing fits, and moving to the next vehicle once two consecutive
// attempts (pickup scan, then dump, then pickup scan again) find
// nothing. Containers that never fit anywhere are left unassigned.
func Build(cat *catalog.Catalog, mat *catalog.TravelTimeMatrix, oracle *twc.Oracle, vehicles []VehicleSpec) (*solution.Solution, error) {
	if len(vehicles) == 0 {
		return nil, ErrNoVehicles
	}

	ordered := append([]VehicleSpec(nil), vehicles...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ShiftOpen < ordered[j].ShiftOpen
	})

	remaining := make(map[int]struct{})
	for _, id := range cat.ByKind(catalog.Pickup) {
		remaining[id] = struct{}{}
	}

	routes := make([]*route.Route, 0, len(ordered))
	for _, vs := range ordered {
		r := route.New(vs.ID, cat, mat, vs.Capacity, vs.Weights, vs.StartDepot, vs.Dump, vs.EndDepot)
		fillRoute(r, vs, cat, oracle, remaining)
		routes = append(routes, r)
	}

	unassigned := make([]int, 0, len(remaining))
	for id := range remaining {
		unassigned = append(unassigned, id)
	}
	return solution.New(routes, unassigned), nil
}

func fillRoute(r *route.Route, vs VehicleSpec, cat *catalog.Catalog, oracle *twc.Oracle, remaining map[int]struct{}) {
	justDumped := false
	for len(remaining) > 0 {
		endPos := r.Len() - 2
		lastPos := r.Len() - 3
		lastNode := r.NodeAt(lastPos)
		currentLoad := r.CarriedLoadAt(lastPos)

		best, ok := bestFit(r, cat, lastNode, endPos, vs.Capacity, currentLoad, oracle, remaining)
		if ok {
			_ = r.Insert(best, endPos)
			delete(remaining, best)
			justDumped = false
			continue
		}

		if justDumped {
			return // two consecutive misses: this vehicle is exhausted
		}
		_ = r.Insert(vs.Dump, endPos)
		justDumped = true
	}
}

// bestFit returns the pickup in remaining, compatible with lastNode per
// the oracle, whose screened insertion delta at endPos is smallest, among
// those whose demand fits within the vehicle's remaining capacity
// (currentLoad + demand <= capacity). Candidates that would overflow
// capacity are rejected here so the caller falls back to a dump visit,
// per spec §4.G ("when no pickup fits before capacity ... insert a dump
// visit"). Ties are broken by the smaller internal id for determinism.
func bestFit(r *route.Route, cat *catalog.Catalog, lastNode, endPos int, capacity, currentLoad float64, oracle *twc.Oracle, remaining map[int]struct{}) (int, bool) {
	ids := make([]int, 0, len(remaining))
	for id := range remaining {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	best := -1
	bestDelta := math.Inf(1)
	for _, id := range ids {
		if currentLoad+cat.Node(id).Demand > capacity {
			continue
		}
		if !oracle.Compatible(lastNode, id) {
			continue
		}
		delta, feasible := r.DeltaTimeInsert(id, endPos)
		if !feasible {
			continue
		}
		if delta < bestDelta {
			bestDelta, best = delta, id
		}
	}
	return best, best >= 0
}
