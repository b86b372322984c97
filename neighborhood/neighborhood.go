package neighborhood

import (
	"math"

	"github.com/trashroute/vrptrash/move"
	"github.com/trashroute/vrptrash/route"
	"github.com/trashroute/vrptrash/solution"
	"github.com/trashroute/vrptrash/twc"
)

// Generator produces bounded candidate move lists for one family at a
// time (spec §4.E). It holds no mutable state of its own; the
// compatibility oracle is shared, read-only reference data also used by
// the initial-solution builder.
type Generator struct {
	oracle *twc.Oracle
}

// New builds a Generator backed by oracle.
func New(oracle *twc.Oracle) *Generator {
	return &Generator{oracle: oracle}
}

// Ins proposes, for every container (assigned or in the unassigned
// bucket) and every route other than its current one, a single best
// insertion candidate — the position with the smallest screened delta,
// ties won by the smaller position index (spec §4.B, §4.E).
func (g *Generator) Ins(s *solution.Solution) []move.Move {
	var out []move.Move
	routes := s.Routes()

	type source struct {
		nid    int
		fromVD string
		fromP  int
	}

	var sources []source
	for _, r := range routes {
		for _, p := range r.PickupPositions() {
			sources = append(sources, source{nid: r.NodeAt(p), fromVD: r.VehicleID(), fromP: p})
		}
	}
	for _, id := range s.Unassigned() {
		sources = append(sources, source{nid: id, fromVD: move.Unassigned, fromP: 0})
	}

	for _, src := range sources {
		for _, r2 := range routes {
			if src.fromVD == r2.VehicleID() {
				continue
			}
			pos, ok := bestInsertPosition(r2, src.nid, g.oracle)
			if !ok {
				continue
			}

			var fromRoute *route.Route
			if src.fromVD != move.Unassigned {
				fromRoute, _ = s.RouteByVehicle(src.fromVD)
			}
			savings := exactInsSavings(fromRoute, src.fromP, r2, src.nid, pos)

			out = append(out, move.NewIns(src.nid, src.fromVD, src.fromP, r2.VehicleID(), pos, savings))
		}
	}
	return out
}

// bestInsertPosition scans every insertable position in r for nid and
// returns the one with the smallest screened delta. Positions whose
// predecessor the oracle already knows is incompatible with nid are
// skipped before paying for the (more expensive) delta screen, mirroring
// package construct's use of the same oracle for pruning (spec §4.H: "used
// by E and G"). Ties keep the smaller position index because positions
// are scanned ascending and a strict less-than is required to replace the
// incumbent.
func bestInsertPosition(r *route.Route, nid int, oracle *twc.Oracle) (pos int, ok bool) {
	best := math.Inf(1)
	for p := 1; p <= r.Len()-2; p++ {
		if !oracle.Compatible(r.NodeAt(p-1), nid) {
			continue
		}
		d, feasible := r.DeltaTimeInsert(nid, p)
		if !feasible {
			continue
		}
		if d < best {
			best, pos, ok = d, p, true
		}
	}
	return pos, ok
}

func exactInsSavings(fromRoute *route.Route, fromPos int, toRoute *route.Route, nid, toPos int) float64 {
	current := toRoute.Cost()
	toClone := toRoute.Clone()

	if fromRoute == nil {
		_ = toClone.Insert(nid, toPos)
		return current - toClone.Cost()
	}

	current += fromRoute.Cost()
	fromClone := fromRoute.Clone()
	_ = fromClone.Erase(fromPos)
	_ = toClone.Insert(nid, toPos)
	return current - (fromClone.Cost() + toClone.Cost())
}

// IntraSw proposes, for every route with at least two pickups, one
// candidate per unordered pair of pickup positions whose screened swap
// delta is finite.
func (g *Generator) IntraSw(s *solution.Solution) []move.Move {
	var out []move.Move
	for _, r := range s.Routes() {
		positions := r.PickupPositions()
		if len(positions) < 2 {
			continue
		}
		for a := 0; a < len(positions); a++ {
			for b := a + 1; b < len(positions); b++ {
				i, j := positions[a], positions[b]
				if !oracleAllowsSwap(r, i, j, g.oracle) {
					continue
				}
				if _, feasible := r.DeltaTimeSwap(i, j); !feasible {
					continue
				}
				savings := exactIntraSwSavings(r, i, j)
				out = append(out, move.NewIntraSw(r.VehicleID(), i, j, r.NodeAt(i), r.NodeAt(j), savings))
			}
		}
	}
	return out
}

func exactIntraSwSavings(r *route.Route, i, j int) float64 {
	current := r.Cost()
	clone := r.Clone()
	_ = clone.SwapPositions(i, j)
	return current - clone.Cost()
}

// oracleAllowsSwap reports whether every new adjacency created by
// swapping positions i < j within r is a priori time-window compatible,
// per the oracle's precomputed pairwise relation. A cheap necessary-
// condition prefilter before the full delta screen (spec §4.H).
func oracleAllowsSwap(r *route.Route, i, j int, oracle *twc.Oracle) bool {
	nodeI, nodeJ := r.NodeAt(i), r.NodeAt(j)
	if j == i+1 {
		return oracle.Compatible(r.NodeAt(i-1), nodeJ) &&
			oracle.Compatible(nodeJ, nodeI) &&
			oracle.Compatible(nodeI, r.NodeAt(j+1))
	}
	return oracle.Compatible(r.NodeAt(i-1), nodeJ) &&
		oracle.Compatible(nodeJ, r.NodeAt(i+1)) &&
		oracle.Compatible(r.NodeAt(j-1), nodeI) &&
		oracle.Compatible(nodeI, r.NodeAt(j+1))
}

// InterSw proposes, for every unordered pair of routes and every pair of
// pickup positions (one per route), a candidate when both single-side
// replacement screens are finite.
func (g *Generator) InterSw(s *solution.Solution) []move.Move {
	var out []move.Move
	routes := s.Routes()
	for a := 0; a < len(routes); a++ {
		for b := a + 1; b < len(routes); b++ {
			r1, r2 := routes[a], routes[b]
			for _, i := range r1.PickupPositions() {
				for _, j := range r2.PickupPositions() {
					nid1, nid2 := r1.NodeAt(i), r2.NodeAt(j)
					if !oracleAllowsReplace(r1, i, nid2, g.oracle) || !oracleAllowsReplace(r2, j, nid1, g.oracle) {
						continue
					}
					if _, feasible := r1.DeltaTimeReplace(nid2, i); !feasible {
						continue
					}
					if _, feasible := r2.DeltaTimeReplace(nid1, j); !feasible {
						continue
					}
					savings := exactInterSwSavings(r1, i, r2, j)
					out = append(out, move.NewInterSw(nid1, r1.VehicleID(), i, nid2, r2.VehicleID(), j, savings))
				}
			}
		}
	}
	return out
}

// oracleAllowsReplace reports whether the two new adjacencies created by
// overwriting position pos of r with newNid are a priori time-window
// compatible, the same cheap prefilter oracleAllowsSwap applies to
// IntraSw, used here to screen each side of an InterSw independently.
func oracleAllowsReplace(r *route.Route, pos, newNid int, oracle *twc.Oracle) bool {
	return oracle.Compatible(r.NodeAt(pos-1), newNid) && oracle.Compatible(newNid, r.NodeAt(pos+1))
}

func exactInterSwSavings(r1 *route.Route, i int, r2 *route.Route, j int) float64 {
	current := r1.Cost() + r2.Cost()
	c1, c2 := r1.Clone(), r2.Clone()
	_ = c1.SwapWith(c2, i, j)
	return current - (c1.Cost() + c2.Cost())
}
