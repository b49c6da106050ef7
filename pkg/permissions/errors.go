package permissions

import "errors"

var (
	// ErrUnknownFlag is returned when a flag name is not part of a codec's table.
	ErrUnknownFlag = errors.New("unknown flag")

	// ErrNegativeLevel is returned when a signed level below zero is supplied.
	ErrNegativeLevel = errors.New("level cannot be negative")

	// ErrInvalidLevel is returned when a level cannot be parsed as an integer.
	ErrInvalidLevel = errors.New("invalid level")

	// ErrInvalidTable is returned by NewCodec for malformed flag tables.
	ErrInvalidTable = errors.New("invalid flag table")
)
