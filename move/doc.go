// Package move defines the typed edit descriptors (spec §3 Move, §4.D)
// produced by the neighborhood generator and applied by the tabu search
// driver: Ins, IntraSw, and InterSw. Moves are value records — they never
// alias route storage — and carry enough identifying information to
// compute tabu-equivalence and a deterministic total order without
// consulting the route they were generated against.
package move
