package route

import "errors"

// Sentinel errors. Hot-path evaluation and delta queries never wrap these
// with fmt.Errorf; they are compared with errors.Is/errors.As by callers.
var (
	// ErrPositionOutOfRange is returned by the range edits (EraseRange,
	// Reverse, MoveReverse) when the range's start is after its end.
	// Positions outside the interior are reported as ErrSandwichViolation.
	ErrPositionOutOfRange = errors.New("route: position out of range")

	// ErrSandwichViolation is returned when an edit would touch or
	// displace the trailing (dump, end depot) pair.
	ErrSandwichViolation = errors.New("route: edit would violate dump-sandwich invariant")

	// ErrEmptyRoute is returned by operations that require at least one
	// interior position (between the start depot and the dump sandwich).
	ErrEmptyRoute = errors.New("route: no interior positions")

	// ErrInfeasibleDelta names the "what-if" screen's infeasible outcome.
	// The DeltaTime* functions do not return it: they report that outcome
	// as feasible == false.
	ErrInfeasibleDelta = errors.New("route: delta screen infeasible")

	// ErrNotDump is returned by operations that require the targeted
	// position to hold a Dump node.
	ErrNotDump = errors.New("route: position does not hold a dump node")
)
