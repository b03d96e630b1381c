package convacolor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Mode selects how CMYK and HSV components are expressed.
type Mode string

const (
	// ModeInteger expresses components as whole percentages and degrees.
	ModeInteger Mode = "i"
	// ModeFraction expresses components as fractions in [0, 1], rounded to 4 decimals.
	ModeFraction Mode = "f"
)

// fractionPlaces is the number of decimals kept in fractional mode.
const fractionPlaces = 4

// ParseMode maps a user supplied token to a Mode. Besides the canonical "i" and "f" it accepts
// the spelled-out forms "integer", "fraction" and "fractional".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "i", "int", "integer":
		return ModeInteger, nil
	case "f", "fraction", "fractional":
		return ModeFraction, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidMode, s)
	}
}

// Validate returns an error wrapping ErrInvalidMode unless m is ModeInteger or ModeFraction.
func (m Mode) Validate() error {
	switch m {
	case ModeInteger, ModeFraction:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidMode, string(m))
	}
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeInteger:
		return "integer"
	case ModeFraction:
		return "fraction"
	default:
		return "unknown(" + string(m) + ")"
	}
}

// roundInt rounds to the nearest integer, ties to even.
func roundInt(x float64) int {
	return int(math.RoundToEven(x))
}

// roundPlaces rounds x to the given number of decimals. The decision is taken on the exact
// decimal expansion of x with ties to even, so 2.675 (stored as 2.67499...) rounds down.
func roundPlaces(x float64, places int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// formatComponent prints a component without trailing zeros.
func formatComponent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
