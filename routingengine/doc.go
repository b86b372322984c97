// Package routingengine defines the external routing-engine collaborator
// interface (spec §6, EXPANSION §4.J): consulted exclusively by the
// matrix-build path (--calculateTM), never during optimization. The HTTP
// client's request/response shape is modeled on
// original_source/src/baseClasses/osrmclient.h's OSRM route query.
package routingengine
