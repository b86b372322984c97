package solution

import "errors"

var (
	// ErrUnknownVehicle is returned when a Move names a vehicle id with no
	// corresponding route in the Solution.
	ErrUnknownVehicle = errors.New("solution: unknown vehicle id")

	// ErrUnknownMoveKind is returned when Apply is given a move.Move with
	// an unrecognized Kind.
	ErrUnknownMoveKind = errors.New("solution: unknown move kind")
)
