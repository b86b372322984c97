package tabu

import "time"

// Params holds the tunables named in spec §4.F. Defaults follow the
// spec's example values for per-family stagnation; the tenure and
// iteration cap are this implementation's own choice (recorded in the
// grounding ledger) since the source left them unspecified.
type Params struct {
	// Tenure is the number of iterations a tabu entry stays active.
	Tenure int

	// StagnationIns, StagnationIntraSw, StagnationInterSw bound how many
	// consecutive non-improving iterations an inner pass tolerates
	// before giving up for this outer round.
	StagnationIns     int
	StagnationIntraSw int
	StagnationInterSw int

	// MaxOuterIterations caps the token-ring loop regardless of
	// progress.
	MaxOuterIterations int

	// WallClockBudget bounds total run time, checked between outer
	// iterations only (spec §5: "no kill points inside an inner pass").
	// Zero disables the check.
	WallClockBudget time.Duration
}

// DefaultParams returns the spec's example stagnation caps (S_Ins=500,
// S_IntraSw=300, S_InterSw=300) plus a tenure and iteration cap sized for
// interactive use.
func DefaultParams() Params {
	return Params{
		Tenure:             50,
		StagnationIns:      500,
		StagnationIntraSw:  300,
		StagnationInterSw:  300,
		MaxOuterIterations: 1000,
		WallClockBudget:    30 * time.Second,
	}
}
