// Package twc implements the time-window compatibility oracle (spec §4.H):
// a precomputed, immutable answer to "can j be served directly after i
// without missing j's time window", plus a helper that finds the nearest
// compatible successor of a node among a set of candidates.
//
// The oracle is built once from a Catalog and a TravelTimeMatrix and never
// mutated; it holds no reference to any Route or Solution.
package twc
