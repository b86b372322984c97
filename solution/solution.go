package solution

import (
	"sort"

	"github.com/trashroute/vrptrash/move"
	"github.com/trashroute/vrptrash/route"
)

// Solution aggregates an ordered list of routes plus the set of
// container ids not yet assigned to any route. Cost is a cached sum of
// per-route costs; Apply keeps the cache current by recomputing only the
// routes a Move actually touched.
type Solution struct {
	routes     []*route.Route
	byVID      map[string]int // vehicle id -> index into routes
	unassigned map[int]struct{}

	routeCost []float64
	total     float64
}

// New builds a Solution from already-constructed routes (one per
// vehicle) and the set of container internal ids not placed in any of
// them.
func New(routes []*route.Route, unassignedIDs []int) *Solution {
	s := &Solution{
		routes:     routes,
		byVID:      make(map[string]int, len(routes)),
		unassigned: make(map[int]struct{}, len(unassignedIDs)),
		routeCost:  make([]float64, len(routes)),
	}
	for i, r := range routes {
		s.byVID[r.VehicleID()] = i
		s.routeCost[i] = r.Cost()
		s.total += s.routeCost[i]
	}
	for _, id := range unassignedIDs {
		s.unassigned[id] = struct{}{}
	}
	return s
}

// Routes returns the solution's routes in vehicle order. The returned
// slice must not be mutated by callers; use Apply to change route
// contents.
func (s *Solution) Routes() []*route.Route { return s.routes }

// RouteByVehicle returns the route owned by vid, if any.
func (s *Solution) RouteByVehicle(vid string) (*route.Route, bool) {
	i, ok := s.byVID[vid]
	if !ok {
		return nil, false
	}
	return s.routes[i], true
}

// Cost returns the cached sum of per-route costs.
func (s *Solution) Cost() float64 { return s.total }

// Unassigned returns the internal ids of containers not yet placed in
// any route, in ascending order.
func (s *Solution) Unassigned() []int {
	ids := make([]int, 0, len(s.unassigned))
	for id := range s.unassigned {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// IsUnassigned reports whether id is currently in the unassigned bucket.
func (s *Solution) IsUnassigned(id int) bool {
	_, ok := s.unassigned[id]
	return ok
}

// MarkAssigned removes id from the unassigned bucket. It is a no-op if
// id was not present.
func (s *Solution) MarkAssigned(id int) { delete(s.unassigned, id) }

// MarkUnassigned adds id to the unassigned bucket.
func (s *Solution) MarkUnassigned(id int) { s.unassigned[id] = struct{}{} }

// Clone returns a deep copy: every route is cloned independently and the
// unassigned set and cost cache are copied, so mutating the clone (via
// Apply) never touches the original. Used by the tabu driver to snapshot
// the best-known solution without aliasing the one under active search.
func (s *Solution) Clone() *Solution {
	routes := make([]*route.Route, len(s.routes))
	byVID := make(map[string]int, len(s.byVID))
	for i, r := range s.routes {
		routes[i] = r.Clone()
		byVID[routes[i].VehicleID()] = i
	}
	unassigned := make(map[int]struct{}, len(s.unassigned))
	for id := range s.unassigned {
		unassigned[id] = struct{}{}
	}
	return &Solution{
		routes:     routes,
		byVID:      byVID,
		unassigned: unassigned,
		routeCost:  append([]float64(nil), s.routeCost...),
		total:      s.total,
	}
}

// recomputeRoute refreshes the cached cost for route index i and folds
// the delta into the running total. Apart from New, this is the only
// place Solution reads route costs — every other read is O(1) against
// the cache.
func (s *Solution) recomputeRoute(i int) {
	old := s.routeCost[i]
	next := s.routes[i].Cost()
	s.routeCost[i] = next
	s.total += next - old
}

// Apply dispatches m to the route operation(s) it requires and
// recomputes the cost of every route it touched. VID1 == move.Unassigned
// signals that an Ins move's source is the unassigned bucket rather than
// a route.
func (s *Solution) Apply(m move.Move) error {
	switch m.Kind {
	case move.Ins:
		return s.applyIns(m)
	case move.IntraSw:
		return s.applyIntraSw(m)
	case move.InterSw:
		return s.applyInterSw(m)
	default:
		return ErrUnknownMoveKind
	}
}

func (s *Solution) applyIns(m move.Move) error {
	if m.VID1 != move.Unassigned {
		i, ok := s.byVID[m.VID1]
		if !ok {
			return ErrUnknownVehicle
		}
		if err := s.routes[i].Erase(m.Pos1); err != nil {
			return err
		}
		s.recomputeRoute(i)
	} else {
		s.MarkAssigned(m.NID1)
	}

	j, ok := s.byVID[m.VID2]
	if !ok {
		return ErrUnknownVehicle
	}
	if err := s.routes[j].Insert(m.NID1, m.Pos2); err != nil {
		return err
	}
	s.recomputeRoute(j)
	return nil
}

func (s *Solution) applyIntraSw(m move.Move) error {
	i, ok := s.byVID[m.VID1]
	if !ok {
		return ErrUnknownVehicle
	}
	if err := s.routes[i].SwapPositions(m.Pos1, m.Pos2); err != nil {
		return err
	}
	s.recomputeRoute(i)
	return nil
}

func (s *Solution) applyInterSw(m move.Move) error {
	i, ok := s.byVID[m.VID1]
	if !ok {
		return ErrUnknownVehicle
	}
	j, ok := s.byVID[m.VID2]
	if !ok {
		return ErrUnknownVehicle
	}
	if err := s.routes[i].SwapWith(s.routes[j], m.Pos1, m.Pos2); err != nil {
		return err
	}
	s.recomputeRoute(i)
	s.recomputeRoute(j)
	return nil
}
