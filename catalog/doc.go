// Package catalog holds the immutable inputs to a CVRPTW-D search: the
// node table (depots, dumps, pickups) and the dense travel-time matrix
// between them.
//
// Both types are built once per problem and never mutated afterwards;
// callers share them by pointer across the lifetime of a search instead
// of reaching for a package-level global, so a single process can solve
// more than one problem without cross-contamination.
package catalog
