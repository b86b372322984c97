package twc

import (
	"math"

	"github.com/trashroute/vrptrash/catalog"
)

// Oracle precomputes, for every ordered pair (i, j) of internal node ids,
// whether serving j directly after i is time-window feasible: departing i
// at the earliest possible moment (its window's Open plus its service
// duration) and traveling to j arrives no later than j's Close.
//
// This is a necessary, not sufficient, condition for a full route to be
// feasible (later positions can still push a later arrival past its
// close), but it is cheap and precomputed, so the initial-solution
// builder (package construct) and the neighborhood generator both use it
// to prune candidates before paying for a full incremental evaluation.
type Oracle struct {
	n         int
	compatible []bool // row-major n*n, true iff i->j is admissible
	cat       *catalog.Catalog
	mat       *catalog.TravelTimeMatrix
}

// Build precomputes the oracle for every ordered pair of nodes in cat,
// using mat for travel durations. O(n^2) time and space.
func Build(cat *catalog.Catalog, mat *catalog.TravelTimeMatrix) *Oracle {
	n := cat.N()
	o := &Oracle{
		n:          n,
		compatible: make([]bool, n*n),
		cat:        cat,
		mat:        mat,
	}

	for i := 0; i < n; i++ {
		ni := cat.Node(i)
		earliestDeparture := ni.Window.Open + ni.Service
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			nj := cat.Node(j)
			d, err := mat.Travel(i, j)
			if err != nil {
				continue // unreachable pairs default to false
			}
			earliestArrival := earliestDeparture + d
			if earliestArrival <= nj.Window.Close {
				o.compatible[i*n+j] = true
			}
		}
	}
	return o
}

// Compatible reports whether j may be served directly after i without an
// a-priori time-window violation.
func (o *Oracle) Compatible(i, j int) bool {
	if i < 0 || i >= o.n || j < 0 || j >= o.n {
		return false
	}
	if i == j {
		return false
	}
	return o.compatible[i*o.n+j]
}

// NearestCompatible returns the id of the compatible candidate in ids
// whose travel time from i is smallest, along with that duration. Returns
// (-1, +Inf, false) if none of ids is compatible with i. Ties keep the
// earliest candidate in ids.
func (o *Oracle) NearestCompatible(i int, ids []int) (best int, duration float64, ok bool) {
	best = -1
	duration = math.Inf(1)
	for _, j := range ids {
		if !o.Compatible(i, j) {
			continue
		}
		d, err := o.mat.Travel(i, j)
		if err != nil {
			continue
		}
		if d < duration {
			duration = d
			best = j
			ok = true
		}
	}
	return best, duration, ok
}
