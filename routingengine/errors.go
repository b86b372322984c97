package routingengine

import "errors"

// ErrUnavailable is returned when the routing engine cannot be reached
// or returns a malformed response. Spec §7's RoutingEngineUnavailable.
var ErrUnavailable = errors.New("routingengine: engine unavailable")
