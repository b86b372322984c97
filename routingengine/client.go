package routingengine

import (
	"context"
	"time"
)

// Point is a geographic coordinate in the same (longitude, latitude)
// order OsrmClient's coordinate.hpp expects.
type Point struct {
	Lon, Lat float64
}

// Bearing narrows a query to road segments whose heading falls within
// [Value-Range, Value+Range] degrees, mirroring OSRM's bearing filter
// (used by the phantom-node snapping original_source/src/baseClasses
// relies on).
type Bearing struct {
	Value float64
	Range float64
}

// Client is the collaborator interface the matrix-build path consults.
// No package outside routingengine and the CLI's matrix-build command
// may import an implementation of it — the search core never calls out
// to a live service (spec §9, "borrowed handle, not a global").
type Client interface {
	Duration(ctx context.Context, from, to Point, bearings ...Bearing) (time.Duration, error)
}
