package tabu

import (
	"context"
	"time"

	"github.com/trashroute/vrptrash/metrics"
	"github.com/trashroute/vrptrash/move"
	"github.com/trashroute/vrptrash/neighborhood"
	"github.com/trashroute/vrptrash/solution"
)

// family binds one move kind to its candidate generator and stagnation
// bound for the token-ring loop.
type family struct {
	name          string
	maxStagnation int
	generate      func(*neighborhood.Generator, *solution.Solution) []move.Move
}

// Driver runs the token-ring tabu search described in spec §4.F: one
// outer iteration invokes the Ins, IntraSw, and InterSw inner passes in
// sequence, each seeded from the current Solution and stagnation-bounded
// independently. The outer loop stops when a full round makes no change,
// the iteration cap is hit, or the wall-clock budget expires.
type Driver struct {
	gen      *neighborhood.Generator
	params   Params
	recorder metrics.Recorder

	tabuList map[string]int // TabuKey -> expiration iteration (exclusive)
	iter     int
}

// NewDriver builds a Driver. recorder may be nil to disable
// instrumentation.
func NewDriver(gen *neighborhood.Generator, params Params, recorder metrics.Recorder) *Driver {
	return &Driver{
		gen:      gen,
		params:   params,
		recorder: recorder,
		tabuList: make(map[string]int),
	}
}

func (d *Driver) families() []family {
	return []family{
		{name: "Ins", maxStagnation: d.params.StagnationIns, generate: (*neighborhood.Generator).Ins},
		{name: "IntraSw", maxStagnation: d.params.StagnationIntraSw, generate: (*neighborhood.Generator).IntraSw},
		{name: "InterSw", maxStagnation: d.params.StagnationInterSw, generate: (*neighborhood.Generator).InterSw},
	}
}

// Run searches starting from start (which is cloned; the caller's
// Solution is never mutated) and returns the best Solution found plus
// its cost.
func (d *Driver) Run(ctx context.Context, start *solution.Solution) (*solution.Solution, float64) {
	sol := start.Clone()
	best := start.Clone()
	bestCost := best.Cost()

	deadline := time.Time{}
	if d.params.WallClockBudget > 0 {
		deadline = time.Now().Add(d.params.WallClockBudget)
	}

	families := d.families()
	for outer := 0; outer < d.params.MaxOuterIterations; outer++ {
		if ctx.Err() != nil {
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}

		roundChanged := false
		for _, f := range families {
			if d.innerPass(f, sol, &best, &bestCost) {
				roundChanged = true
			}
		}
		if !roundChanged {
			break
		}
	}
	return best, bestCost
}

// innerPass runs family f to stagnation or candidate exhaustion,
// mutating sol in place and updating best/bestCost whenever aspiration
// fires. Returns whether any move was applied.
func (d *Driver) innerPass(f family, sol *solution.Solution, best **solution.Solution, bestCost *float64) bool {
	stagnation := 0
	appliedAny := false

	for stagnation < f.maxStagnation {
		candidates := f.generate(d.gen, sol)
		if len(candidates) == 0 {
			break
		}
		move.BySavingsDesc(candidates)

		applied, aspirated := d.tryApplyOne(f.name, candidates, sol, best, bestCost)
		if !applied {
			break
		}
		appliedAny = true

		// Spec §4.F step 2/4: aspiration always resets stagnation (it
		// updates best by definition); otherwise stagnation advances.
		if aspirated {
			stagnation = 0
		} else {
			stagnation++
		}
		if d.recorder != nil {
			d.recorder.Iteration(f.name)
			d.recorder.Stagnation(f.name, stagnation)
		}
	}
	return appliedAny
}

// tryApplyOne walks candidates in savings-descending order and applies
// the first one admitted by aspiration or non-tabu exploration (spec
// §4.F step 2). Returns (applied, aspirated): aspirated is true only when
// the applied move was accepted via the aspiration branch.
func (d *Driver) tryApplyOne(familyName string, candidates []move.Move, sol *solution.Solution, best **solution.Solution, bestCost *float64) (applied, aspirated bool) {
	current := sol.Cost()
	d.iter++

	for _, m := range candidates {
		predicted := current - m.Savings
		key := m.TabuKey()
		active := d.tabuActive(key)

		if predicted < *bestCost {
			if err := sol.Apply(m); err != nil {
				continue
			}
			d.tabuList[key] = d.iter + d.params.Tenure
			*best = sol.Clone()
			*bestCost = sol.Cost()
			if d.recorder != nil {
				d.recorder.AcceptedSavings(m.Savings)
			}
			d.sweepExpired()
			return true, true
		}

		if !active {
			if err := sol.Apply(m); err != nil {
				continue
			}
			d.tabuList[key] = d.iter + d.params.Tenure
			if d.recorder != nil {
				d.recorder.AcceptedSavings(m.Savings)
			}
			d.sweepExpired()
			return true, false
		}
	}
	return false, false
}

// tabuActive reports whether key is still within its tenure window. An
// entry set at iteration k with tenure T expires at k+T (exclusive): it
// is active for iterations in [k, k+T), matching spec §4.F/§8 invariant 5.
func (d *Driver) tabuActive(key string) bool {
	exp, ok := d.tabuList[key]
	return ok && d.iter < exp
}

// sweepExpired drops tabu entries whose expiration has already passed,
// bounding the list's memory footprint (spec §9 "tabu list growth").
func (d *Driver) sweepExpired() {
	for k, exp := range d.tabuList {
		if exp <= d.iter {
			delete(d.tabuList, k)
		}
	}
}
