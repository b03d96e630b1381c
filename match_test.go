package convacolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rgb      RGB
		code     string
		sample   RGB
		distance int
	}{
		{RGB{255, 0, 0}, "S1060-Y90R", RGB{230, 94, 111}, 230},
		{RGB{200, 100, 50}, "S2050-Y80R", RGB{204, 103, 102}, 59},
		{RGB{0, 159, 107}, "S2050-G", RGB{76, 156, 130}, 102},
	}

	table := DefaultTable()
	for _, tt := range tests {
		t.Run(tt.rgb.String(), func(t *testing.T) {
			sample, dist, err := table.Nearest(tt.rgb, ClassifyHue(hueAngle(tt.rgb)))
			require.NoError(t, err)
			assert.Equal(t, tt.code, sample.Code)
			assert.Equal(t, tt.sample, sample.RGB)
			assert.Equal(t, tt.distance, dist)
		})
	}
}

// TestNearestIsMinimum compares the chosen sample with a linear scan over the candidates.
func TestNearestIsMinimum(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	manhattan := func(a, b RGB) int {
		return absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B)
	}

	for r := 0; r <= maxChannel; r += 17 {
		for g := 0; g <= maxChannel; g += 17 {
			for b := 0; b <= maxChannel; b += 17 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				sector := ClassifyHue(hueAngle(c))

				want := -1
				var wantCode string
				for _, s := range table.Candidates(sector) {
					if d := manhattan(c, s.RGB); want < 0 || d < want {
						want, wantCode = d, s.Code
					}
				}

				sample, dist, err := table.Nearest(c, sector)
				require.NoError(t, err)
				require.Equal(t, want, dist, "%s", c)
				require.Equal(t, wantCode, sample.Code, "%s", c)
			}
		}
	}
}

func TestNearestTieBreak(t *testing.T) {
	t.Parallel()

	samples := append(DefaultTable().Samples(),
		Sample{Code: "S0000-Y", RGB: RGB{110, 100, 0}},
		Sample{Code: "S0001-Y", RGB: RGB{90, 100, 0}},
	)
	table, err := NewTable(samples)
	require.NoError(t, err)

	// Both appended samples are at distance 10; the one listed first wins.
	query := RGB{100, 100, 0}
	sample, dist, err := table.Nearest(query, Sector{'Y', Pure})
	require.NoError(t, err)
	assert.Equal(t, 10, dist)
	assert.Equal(t, "S0000-Y", sample.Code)

	reordered, err := NewTable(append(DefaultTable().Samples(),
		Sample{Code: "S0001-Y", RGB: RGB{90, 100, 0}},
		Sample{Code: "S0000-Y", RGB: RGB{110, 100, 0}},
	))
	require.NoError(t, err)
	sample, _, err = reordered.Nearest(query, Sector{'Y', Pure})
	require.NoError(t, err)
	assert.Equal(t, "S0001-Y", sample.Code)
}

// TestNearestPureYellow engineers colors whose hue falls in the pure yellow band and checks
// that only 7-character Y codes come back.
func TestNearestPureYellow(t *testing.T) {
	t.Parallel()

	for _, c := range []RGB{{21, 15, 0}, {39, 33, 0}, {255, 211, 0}, {240, 200, 40}} {
		h := hueAngle(c)
		require.GreaterOrEqual(t, h, 47, "%s", c)
		require.LessOrEqual(t, h, 53, "%s", c)

		sample, _, err := DefaultTable().Nearest(c, ClassifyHue(h))
		require.NoError(t, err)
		assert.Len(t, sample.Code, 7)
		assert.Equal(t, byte('Y'), sample.Code[6])
	}
}

func TestNearestEmptySector(t *testing.T) {
	t.Parallel()

	table := &Table{}
	_, _, err := table.Nearest(RGB{255, 0, 0}, Sector{'R', Relative})
	require.ErrorIs(t, err, ErrNoCandidates)
	assert.Contains(t, err.Error(), "R/relative")
}
