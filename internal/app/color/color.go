// Package color provides ANSI color support for terminal output.
package color

import (
	"fmt"
	"strings"
)

// RGB represents an RGB color value
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	Heading = RGB{255, 211, 0} // NCS yellow (#ffd300)
	Label   = RGB{0, 136, 191} // NCS blue (#0088bf)
)

// Sprint returns the text with ANSI color codes applied
func (c RGB) Sprint(text string) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm%s\033[0m", c.R, c.G, c.B, text)
}

// Swatch returns width cells painted with c as background color.
func (c RGB) Swatch(width int) string {
	if width <= 0 {
		return ""
	}
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", c.R, c.G, c.B, strings.Repeat(" ", width))
}
