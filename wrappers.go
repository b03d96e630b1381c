package convacolor

// defaultConverter serves the package-level functions.
var defaultConverter = New()

// CMYK converts r, g, b to CMYK. Channels are validated before mode; both failures wrap
// ErrInvalidArgument.
func CMYK(r, g, b int, mode Mode) (CMYKColor, error) {
	c, err := NewRGB(r, g, b)
	if err != nil {
		return CMYKColor{}, err
	}
	return c.CMYK(mode)
}

// HSV converts r, g, b to HSV. Channels are validated before mode; both failures wrap
// ErrInvalidArgument.
func HSV(r, g, b int, mode Mode) (HSVColor, error) {
	c, err := NewRGB(r, g, b)
	if err != nil {
		return HSVColor{}, err
	}
	return c.HSV(mode)
}

// Hex formats r, g, b as "#RRGGBB".
func Hex(r, g, b int) (string, error) {
	c, err := NewRGB(r, g, b)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// NCS returns the NCS code nearest to r, g, b, matched against the default table.
func NCS(r, g, b int) (string, error) {
	c, err := NewRGB(r, g, b)
	if err != nil {
		return "", err
	}
	return defaultConverter.NCS(c)
}
