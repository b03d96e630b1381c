package convacolor

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Conversion holds every representation of a color computed by Converter.Convert.
type Conversion struct {
	RGB  RGB       // Input color
	Mode Mode      // Mode of CMYK and HSV
	CMYK CMYKColor // CMYK components
	HSV  HSVColor  // HSV components
	Hex  string    // "#RRGGBB"
	NCS  Match     // NCS code and how it was matched
}

// Format formats the Conversion. %+v prints a multi-line view including the NCS match
// details, every other verb the single-line view.
func (c *Conversion) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			c.formatVerbosePlus(s)
			return
		}
		fallthrough
	default:
		c.formatCompact(s)
	}
}

// formatCompact prints the single-line comma-separated view.
func (c *Conversion) formatCompact(s fmt.State) {
	list := []string{
		"RGB: " + c.RGB.String(),
		"Hex: " + c.Hex,
		"CMYK: " + c.CMYK.String(),
		"HSV: " + c.HSV.String(),
		"NCS: " + c.NCS.Code,
	}
	io.WriteString(s, strings.Join(list, ", "))
}

// formatVerbosePlus prints the multi-line view used by %+v.
func (c *Conversion) formatVerbosePlus(s fmt.State) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "RGB:  %s\n", c.RGB)
	fmt.Fprintf(&buf, "Hex:  %s\n", c.Hex)
	fmt.Fprintf(&buf, "CMYK: %s (%s)\n", c.CMYK, c.Mode)
	fmt.Fprintf(&buf, "HSV:  %s (%s)\n", c.HSV, c.Mode)
	fmt.Fprintf(&buf, "NCS:  %s\n", c.NCS.Code)
	if c.NCS.Achromatic {
		fmt.Fprintf(&buf, "  Achromatic, lightness %d\n", c.NCS.Lightness)
	} else {
		fmt.Fprintf(&buf, "  Hue: %d deg, sector %s\n", c.NCS.Hue, c.NCS.Sector)
		fmt.Fprintf(&buf, "  Sample: %s %s\n", c.NCS.Sample.RGB, c.NCS.Sample.RGB.Hex())
		fmt.Fprintf(&buf, "  Distance: %d\n", c.NCS.Distance)
	}
	io.WriteString(s, buf.String())
}
