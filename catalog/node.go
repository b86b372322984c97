package catalog

// Kind tags a Node as a depot, a dump (unload) site, or a pickup container.
type Kind int

const (
	// Depot is a vehicle's fixed starting or ending node. Demand is always 0.
	Depot Kind = iota

	// Dump is an intermediate unload stop. Demand is always 0; serving a
	// Dump resets the route's carried load to zero on departure.
	Dump

	// Pickup is a container visit with positive demand.
	Pickup
)

// String renders the Kind for diagnostics and log lines.
func (k Kind) String() string {
	switch k {
	case Depot:
		return "Depot"
	case Dump:
		return "Dump"
	case Pickup:
		return "Pickup"
	default:
		return "Unknown"
	}
}

// Window is a closed time interval [Open, Close] in seconds since the
// start of the planning horizon.
type Window struct {
	Open  float64
	Close float64
}

// Contains reports whether t falls within [w.Open, w.Close].
func (w Window) Contains(t float64) bool {
	return t >= w.Open && t <= w.Close
}

// Node is an immutable catalog entry: a depot, dump, or pickup container.
//
// ID is the stable, user-facing identifier (as read from input files);
// Internal is the dense [0, N) index used to address the travel-time
// matrix. The two are deliberately kept distinct so that sparse or
// non-contiguous user ids never leak into hot-path array indexing.
type Node struct {
	ID       string
	Internal int
	X, Y     float64
	Kind     Kind
	Demand   float64
	Window   Window
	Service  float64
}

// IsDepotOrDump reports whether the node carries zero demand by
// construction (depots and dumps never contribute load).
func (n Node) IsDepotOrDump() bool {
	return n.Kind == Depot || n.Kind == Dump
}
