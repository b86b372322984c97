package input

import "errors"

var (
	// ErrMalformedLine is the sentinel behind every line-parse failure
	// (wrong field count, unparsable number, unknown kind tag). Spec §7's
	// InputMalformed.
	ErrMalformedLine = errors.New("input: malformed line")

	// ErrSemanticInvalid is the sentinel behind every value that parses
	// but violates a domain rule (nonzero demand on a depot or dump,
	// non-positive capacity, a vehicle naming an unknown depot or dump, a
	// matrix line naming an unknown node). Spec §7's
	// SemanticInvalid.
	ErrSemanticInvalid = errors.New("input: semantically invalid value")
)
