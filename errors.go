package convacolor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the class of every input validation failure. Use errors.Is to
	// check for it; the more specific sentinels below all wrap it.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned when a channel value is outside [0, 255].
	ErrOutOfRange = fmt.Errorf("%w: channel value out of range", ErrInvalidArgument)

	// ErrInvalidMode is returned when an output mode is neither "i" nor "f".
	ErrInvalidMode = fmt.Errorf("%w: output mode must be 'i' or 'f'", ErrInvalidArgument)

	// ErrInvalidHex is returned by ParseHex for malformed input.
	ErrInvalidHex = fmt.Errorf("%w: malformed hex color", ErrInvalidArgument)

	// ErrNoCandidates signals that the reference table has no sample for a hue sector.
	// A complete table never produces it.
	ErrNoCandidates = errors.New("no reference samples for hue sector")
)
