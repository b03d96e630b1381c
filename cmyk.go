package convacolor

import "fmt"

const (
	rgbScale  = 255.0
	cmykScale = 100.0
)

// CMYKColor holds the cyan, magenta, yellow and key (black) components of a color. In
// ModeInteger they are whole percentages in [0, 100], in ModeFraction fractions in [0, 1].
type CMYKColor struct {
	C, M, Y, K float64
	Mode       Mode
}

// String implements fmt.Stringer.
func (c CMYKColor) String() string {
	return fmt.Sprintf("cmyk(%s, %s, %s, %s)",
		formatComponent(c.C), formatComponent(c.M), formatComponent(c.Y), formatComponent(c.K))
}

// CMYK converts the color to CMYK using the common-denominator formula.
func (c RGB) CMYK(mode Mode) (CMYKColor, error) {
	if err := mode.Validate(); err != nil {
		return CMYKColor{}, err
	}

	percent := cmykPercent(c)
	if mode == ModeInteger {
		return CMYKColor{
			C:    float64(percent[0]),
			M:    float64(percent[1]),
			Y:    float64(percent[2]),
			K:    float64(percent[3]),
			Mode: mode,
		}, nil
	}
	return CMYKColor{
		C:    roundPlaces(float64(percent[0])/cmykScale, fractionPlaces),
		M:    roundPlaces(float64(percent[1])/cmykScale, fractionPlaces),
		Y:    roundPlaces(float64(percent[2])/cmykScale, fractionPlaces),
		K:    roundPlaces(float64(percent[3])/cmykScale, fractionPlaces),
		Mode: mode,
	}, nil
}

// cmykPercent returns the rounded integer percentages of c.
func cmykPercent(c RGB) [4]int {
	if c == (RGB{}) {
		return [4]int{0, 0, 0, cmykScale}
	}

	cy := 1 - float64(c.R)/rgbScale
	mg := 1 - float64(c.G)/rgbScale
	ye := 1 - float64(c.B)/rgbScale

	k := min(cy, mg, ye)
	cy = (cy - k) / (1 - k)
	mg = (mg - k) / (1 - k)
	ye = (ye - k) / (1 - k)

	return [4]int{
		roundInt(cy * cmykScale),
		roundInt(mg * cmykScale),
		roundInt(ye * cmykScale),
		roundInt(k * cmykScale),
	}
}
