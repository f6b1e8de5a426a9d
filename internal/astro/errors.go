package astro

import "errors"

var (
	// ErrInvalidTimestamp is returned when a calendar field is out of range.
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrInvalidCoordinate is returned for unparseable or out-of-range
	// latitude/longitude values.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrNonFiniteResult is returned when a formula produced NaN or ±Inf.
	ErrNonFiniteResult = errors.New("non-finite result")
)
