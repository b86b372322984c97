package route

import (
	"math"

	"github.com/trashroute/vrptrash/catalog"
)

// evalFrom recomputes state for positions [p, end] in order, per the
// evaluation algorithm in spec §4.B. Position 0 is a special case: its
// arrival/departure derive from the start depot's own window, not from a
// predecessor.
func (r *Route) evalFrom(p int) {
	if p <= 0 {
		r.evalPos0()
		p = 1
	}
	for i := p; i < len(r.nodes); i++ {
		r.evalPos(i)
	}
}

func (r *Route) evalPos0() {
	n := r.cat.Node(r.nodes[0])
	arrival := n.Window.Open
	departure := arrival + n.Service
	tw := 0
	if arrival > n.Window.Close {
		tw = 1
	}
	cap := 0
	// Depots carry zero demand; carriedLoad(0) == 0 by construction.
	if 0 > r.capacity {
		cap = 1
	}
	r.st[0] = state{
		nodeID:        r.nodes[0],
		travel:        0,
		arrival:       arrival,
		wait:          0,
		departure:     departure,
		carriedLoad:   0,
		cumTravel:     0,
		cumWait:       0,
		cumService:    n.Service,
		dumpVisits:    0,
		twViolations:  tw,
		capViolations: cap,
	}
}

func (r *Route) evalPos(i int) {
	prev := r.st[i-1]
	prevID := r.nodes[i-1]
	curID := r.nodes[i]
	node := r.cat.Node(curID)

	travel, err := r.mat.Travel(prevID, curID)
	if err != nil {
		travel = math.Inf(1)
	}
	arrival := prev.departure + travel

	tw := prev.twViolations
	if arrival > node.Window.Close {
		tw++
	}

	wait := math.Max(0, node.Window.Open-arrival)
	departure := math.Max(arrival, node.Window.Open) + node.Service

	carried := prev.carriedLoad
	if node.Kind == catalog.Dump {
		carried = 0
	}
	carried += node.Demand

	capV := prev.capViolations
	if carried > r.capacity {
		capV++
	}

	dumps := prev.dumpVisits
	if node.Kind == catalog.Dump {
		dumps++
	}

	r.st[i] = state{
		nodeID:        curID,
		travel:        travel,
		arrival:       arrival,
		wait:          wait,
		departure:     departure,
		carriedLoad:   carried,
		cumTravel:     prev.cumTravel + travel,
		cumWait:       prev.cumWait + wait,
		cumService:    prev.cumService + node.Service,
		dumpVisits:    dumps,
		twViolations:  tw,
		capViolations: capV,
	}
}
