// Package tabu implements the token-ring tabu search driver (spec
// §4.F): three inner passes — Ins, IntraSw, InterSw — run in fixed
// rotation each outer iteration, each stagnation-bounded, with an
// aspiration criterion that overrides an active tabu entry whenever the
// candidate would beat the best-known solution.
package tabu
