package convacolor

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// maxChannel is the largest value of an 8-bit color channel.
const maxChannel = 255

// RGB is an 8-bit sRGB color. Every value of the type is a valid color, use NewRGB to build
// one from unchecked integers.
type RGB struct {
	R, G, B uint8
}

// NewRGB validates the channel values and returns the corresponding color. Channels outside
// [0, 255] yield an error wrapping ErrOutOfRange.
func NewRGB(r, g, b int) (RGB, error) {
	if err := validateChannels(r, g, b); err != nil {
		return RGB{}, err
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// validateChannels is the shared precondition of every public operation taking raw integers.
func validateChannels(r, g, b int) error {
	channels := []struct {
		name  string
		value int
	}{
		{"r", r},
		{"g", g},
		{"b", b},
	}
	for _, ch := range channels {
		if ch.value < 0 {
			return fmt.Errorf("%w: %s=%d cannot be negative", ErrOutOfRange, ch.name, ch.value)
		}
		if ch.value > maxChannel {
			return fmt.Errorf("%w: %s=%d cannot be greater than %d",
				ErrOutOfRange, ch.name, ch.value, maxChannel)
		}
	}
	return nil
}

// Hex returns the color as "#RRGGBB" with uppercase digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// vector returns the channels as a float slice for distance computations.
func (c RGB) vector() []float64 {
	return []float64{float64(c.R), float64(c.G), float64(c.B)}
}

// ParseHex parses "#RRGGBB", "RRGGBB", "#RGB" or "RGB" (case-insensitive) into a color.
func ParseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(digits) != 3 && len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: %q must have 3 or 6 digits", ErrInvalidHex, s)
	}
	if i := strings.IndexFunc(digits, notHexDigit); i >= 0 {
		return RGB{}, fmt.Errorf("%w: %q has non-hex character %q", ErrInvalidHex, s, digits[i])
	}

	col, err := colorful.Hex("#" + digits)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func notHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		return false
	default:
		return true
	}
}

// absDiff returns |a - b|.
func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
