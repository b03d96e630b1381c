package convacolor

import "fmt"

const (
	// nearBlackCode is returned for every color with all channels at or below nearBlackLimit.
	nearBlackCode  = "S9000-N"
	nearBlackLimit = 10

	// grayTolerance is the largest pairwise channel difference still treated as achromatic.
	grayTolerance = 5

	minBlackness = 5
	maxBlackness = 90
)

// gate resolves near-black and achromatic colors without a table search. ok is false when the
// color has a hue that needs matching. v is the lightness of c.
func gate(c RGB, v int) (code string, ok bool) {
	if c.R <= nearBlackLimit && c.G <= nearBlackLimit && c.B <= nearBlackLimit {
		return nearBlackCode, true
	}

	if absDiff(c.R, c.G) > grayTolerance ||
		absDiff(c.R, c.B) > grayTolerance ||
		absDiff(c.G, c.B) > grayTolerance {
		return "", false
	}
	return fmt.Sprintf("S%02d00-N", blackness(v)), true
}

// blackness estimates the NCS blackness of a gray with lightness v, in steps of ten, clamped
// so the code keeps two digits.
func blackness(v int) int {
	bl := roundInt(float64(100-v)/10) * 10
	return min(max(bl, minBlackness), maxBlackness)
}
