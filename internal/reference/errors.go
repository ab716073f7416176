package reference

import "errors"

var (
	// ErrConfiguration marks reference tables that cannot be served:
	// bad bin bounds, gaps or overlaps, zero-count distributions, duplicates.
	ErrConfiguration = errors.New("invalid reference configuration")
	// ErrSourceFailure wraps I/O failures of a reference source.
	ErrSourceFailure = errors.New("reference source failure")
)
