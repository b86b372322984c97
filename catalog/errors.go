package catalog

import "errors"

// Sentinel errors for catalog construction and lookup. Do not wrap these
// with fmt.Errorf where the sentinel alone is sufficient; reserve wrapping
// for call sites that must attach a file/line diagnostic (see package input).
var (
	// ErrInvalidID is returned when an internal id falls outside [0, N).
	ErrInvalidID = errors.New("catalog: internal id out of range")

	// ErrDuplicateID is returned when two nodes share the same internal id.
	ErrDuplicateID = errors.New("catalog: duplicate internal id")

	// ErrDimensionMismatch is returned by NewTravelTimeMatrix when the
	// requested order is not positive.
	ErrDimensionMismatch = errors.New("catalog: matrix dimension mismatch")

	// ErrNegativeDuration is returned when a matrix entry is negative.
	ErrNegativeDuration = errors.New("catalog: negative travel duration")

	// ErrUnreachable is returned by Travel when the (i,j) pair was never
	// populated or was explicitly marked invalid. Not a construction-time
	// error: it is the normal signal that a pair is unusable.
	ErrUnreachable = errors.New("catalog: unreachable pair")

	// ErrUnknownKind is returned when a Kind value outside the enum is used.
	ErrUnknownKind = errors.New("catalog: unknown node kind")
)
