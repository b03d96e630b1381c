package convacolor

import "fmt"

const (
	degreesScale = 360.0
	percentScale = 100.0
)

// HSVColor holds hue, saturation and value. In ModeInteger H is in whole degrees [0, 360) and
// S and V are whole percentages; in ModeFraction all three are fractions in [0, 1].
type HSVColor struct {
	H, S, V float64
	Mode    Mode
}

// String implements fmt.Stringer.
func (c HSVColor) String() string {
	return fmt.Sprintf("hsv(%s, %s, %s)",
		formatComponent(c.H), formatComponent(c.S), formatComponent(c.V))
}

// HSV converts the color to HSV. The hue is the same angle used for NCS matching.
func (c RGB) HSV(mode Mode) (HSVColor, error) {
	if err := mode.Validate(); err != nil {
		return HSVColor{}, err
	}

	h, s, v := hueAngle(c), saturation(c), lightness(c)
	if mode == ModeInteger {
		return HSVColor{H: float64(h), S: float64(s), V: float64(v), Mode: mode}, nil
	}
	return HSVColor{
		H:    roundPlaces(float64(h)/degreesScale, fractionPlaces),
		S:    roundPlaces(float64(s)/percentScale, fractionPlaces),
		V:    roundPlaces(float64(v)/percentScale, fractionPlaces),
		Mode: mode,
	}, nil
}

// saturation rounds the 0-1 ratio to two places before scaling to percent, which is not the
// same as rounding the percentage directly.
func saturation(c RGB) int {
	hi := max(c.R, c.G, c.B)
	if hi == 0 {
		return 0
	}
	lo := min(c.R, c.G, c.B)
	return roundInt(roundPlaces(1-float64(lo)/float64(hi), 2) * percentScale)
}
