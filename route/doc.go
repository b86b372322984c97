// Package route implements the evaluated route (spec §3, §4.B): an
// ordered sequence of visits with per-position cumulative state
// (arrival, wait, departure, carried load, running violation counts),
// supporting structural edits with incremental re-evaluation and
// non-mutating "what-if" delta queries used to screen candidate moves.
//
// A Route always ends with its vehicle's dump and ending depot, in that
// order (the "dump sandwich" invariant, spec §9); callers must never
// target those two trailing positions with a structural edit.
//
// Every exported mutator re-evaluates only the suffix that could have
// changed, starting from the earliest position whose predecessor
// changed; this keeps edits close to O(route length) instead of O(1)
// lookups plus a full rescan, which matters at the perturbation rates
// the tabu search driver (package tabu) runs at.
package route
