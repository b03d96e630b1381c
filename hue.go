package convacolor

import (
	"fmt"
	"math"
)

// Length is the character count of the NCS codes that belong to a hue sector.
type Length int

const (
	// Pure sectors hold elementary hues such as "S1050-Y".
	Pure Length = 7
	// Relative sectors hold hues between two elementaries such as "S1050-Y90R".
	Relative Length = 10
)

// String implements fmt.Stringer.
func (l Length) String() string {
	switch l {
	case Pure:
		return "pure"
	case Relative:
		return "relative"
	default:
		return fmt.Sprintf("length(%d)", int(l))
	}
}

// Sector is a band of the hue wheel. Letter is the trailing hue letter (R, Y, G or B) of the
// codes in the band and Length their character count.
type Sector struct {
	Letter byte
	Length Length
}

// String implements fmt.Stringer.
func (s Sector) String() string {
	return fmt.Sprintf("%c/%s", s.Letter, s.Length)
}

// Admits reports whether an NCS code belongs to the sector's code family.
func (s Sector) Admits(code string) bool {
	return len(code) == int(s.Length) && code[len(code)-1] == s.Letter
}

// sectorRows maps inclusive ranges of whole degrees to sectors. The relative red band wraps
// through 0 and is split in two rows.
var sectorRows = [...]struct {
	lo, hi int
	sector Sector
}{
	{0, 46, Sector{'R', Relative}},
	{47, 53, Sector{'Y', Pure}},
	{54, 156, Sector{'Y', Relative}},
	{157, 163, Sector{'G', Pure}},
	{164, 193, Sector{'G', Relative}},
	{194, 200, Sector{'B', Pure}},
	{201, 341, Sector{'B', Relative}},
	{342, 348, Sector{'R', Pure}},
	{349, 359, Sector{'R', Relative}},
}

// Sectors returns the eight distinct hue sectors in wheel order.
func Sectors() []Sector {
	sectors := make([]Sector, 0, len(sectorRows))
	seen := make(map[Sector]bool, len(sectorRows))
	for _, row := range sectorRows {
		if seen[row.sector] {
			continue
		}
		seen[row.sector] = true
		sectors = append(sectors, row.sector)
	}
	return sectors
}

// ClassifyHue returns the sector containing the hue angle deg. Angles outside [0, 360) are
// normalized first.
func ClassifyHue(deg int) Sector {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	for _, row := range sectorRows {
		if deg >= row.lo && deg <= row.hi {
			return row.sector
		}
	}
	panic(fmt.Sprintf("convacolor: hue %d not covered by sector table", deg))
}

// SectorOf returns the sector whose code family contains code.
func SectorOf(code string) (Sector, bool) {
	for _, row := range sectorRows {
		if row.sector.Admits(code) {
			return row.sector, true
		}
	}
	return Sector{}, false
}

// lightness maps the brightest channel onto 0-100.
func lightness(c RGB) int {
	return roundInt(float64(max(c.R, c.G, c.B)) / 2.55)
}

// hueAngle returns the hue of c in whole degrees, from the law-of-cosines formula. The
// denominator carries a +1 so grays (r = g = b) resolve to 90 degrees. HSV reports the same
// angle.
func hueAngle(c RGB) int {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	den := math.Sqrt(r*r+g*g+b*b-r*g-r*b-g*b) + 1
	theta := math.Acos((r-g/2-b/2)/den) * 180 / math.Pi
	if c.G >= c.B {
		return roundInt(theta)
	}
	return roundInt(360 - theta)
}
