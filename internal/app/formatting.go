package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jkbrsn/convacolor"
)

// swatchWidth is the number of cells a color swatch occupies.
const swatchWidth = 6

func formatPadRight(label string, width int) string {
	return fmt.Sprintf("%-*s", width, label)
}

// formatValues prints components separated by a single space.
func formatValues(values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, " ")
}

func intPtr(v int) *int {
	return &v
}

func rgbArray(c convacolor.RGB) [3]int {
	return [3]int{int(c.R), int(c.G), int(c.B)}
}
