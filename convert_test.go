package convacolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCMYK(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rgb        RGB
		integer    CMYKColor
		fractional CMYKColor
	}{
		{RGB{0, 0, 0}, CMYKColor{0, 0, 0, 100, ModeInteger}, CMYKColor{0, 0, 0, 1, ModeFraction}},
		{RGB{255, 255, 255}, CMYKColor{0, 0, 0, 0, ModeInteger}, CMYKColor{0, 0, 0, 0, ModeFraction}},
		{RGB{255, 0, 0}, CMYKColor{0, 100, 100, 0, ModeInteger}, CMYKColor{0, 1, 1, 0, ModeFraction}},
		{
			RGB{196, 2, 51},
			CMYKColor{0, 99, 74, 23, ModeInteger},
			CMYKColor{0, 0.99, 0.74, 0.23, ModeFraction},
		},
		{
			RGB{12, 34, 56},
			CMYKColor{79, 39, 0, 78, ModeInteger},
			CMYKColor{0.79, 0.39, 0, 0.78, ModeFraction},
		},
		{
			RGB{229, 122, 36},
			CMYKColor{0, 47, 84, 10, ModeInteger},
			CMYKColor{0, 0.47, 0.84, 0.1, ModeFraction},
		},
		{
			RGB{10, 10, 10},
			CMYKColor{0, 0, 0, 96, ModeInteger},
			CMYKColor{0, 0, 0, 0.96, ModeFraction},
		},
	}

	for _, tt := range tests {
		t.Run(tt.rgb.String(), func(t *testing.T) {
			integer, err := tt.rgb.CMYK(ModeInteger)
			require.NoError(t, err)
			assert.Equal(t, tt.integer, integer)

			fractional, err := tt.rgb.CMYK(ModeFraction)
			require.NoError(t, err)
			assert.Equal(t, tt.fractional, fractional)
		})
	}
}

// TestCMYKProperties checks ranges and the integer/fraction relation over a grid of the cube.
func TestCMYKProperties(t *testing.T) {
	t.Parallel()

	for r := 0; r <= maxChannel; r += 15 {
		for g := 0; g <= maxChannel; g += 15 {
			for b := 0; b <= maxChannel; b += 15 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				integer, err := c.CMYK(ModeInteger)
				require.NoError(t, err)
				fractional, err := c.CMYK(ModeFraction)
				require.NoError(t, err)

				ints := []float64{integer.C, integer.M, integer.Y, integer.K}
				fracs := []float64{fractional.C, fractional.M, fractional.Y, fractional.K}
				for i := range ints {
					require.GreaterOrEqual(t, ints[i], 0.0, "%s", c)
					require.LessOrEqual(t, ints[i], 100.0, "%s", c)
					require.Equal(t, float64(int(ints[i])), ints[i], "%s", c)
					require.Equal(t, roundPlaces(ints[i]/100, 4), fracs[i], "%s", c)
				}
			}
		}
	}
}

func TestHSV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rgb        RGB
		integer    HSVColor
		fractional HSVColor
	}{
		{RGB{255, 0, 0}, HSVColor{5, 100, 100, ModeInteger}, HSVColor{0.0139, 1, 1, ModeFraction}},
		{RGB{0, 255, 0}, HSVColor{120, 100, 100, ModeInteger}, HSVColor{0.3333, 1, 1, ModeFraction}},
		{RGB{0, 0, 255}, HSVColor{240, 100, 100, ModeInteger}, HSVColor{0.6667, 1, 1, ModeFraction}},
		{RGB{0, 0, 0}, HSVColor{90, 0, 0, ModeInteger}, HSVColor{0.25, 0, 0, ModeFraction}},
		{RGB{128, 128, 128}, HSVColor{90, 0, 50, ModeInteger}, HSVColor{0.25, 0, 0.5, ModeFraction}},
		{
			RGB{200, 100, 50},
			HSVColor{20, 75, 78, ModeInteger},
			HSVColor{0.0556, 0.75, 0.78, ModeFraction},
		},
		{
			RGB{0, 136, 191},
			HSVColor{197, 100, 75, ModeInteger},
			HSVColor{0.5472, 1, 0.75, ModeFraction},
		},
		{
			RGB{229, 122, 36},
			HSVColor{27, 84, 90, ModeInteger},
			HSVColor{0.075, 0.84, 0.9, ModeFraction},
		},
		{
			RGB{11, 10, 10},
			HSVColor{60, 9, 4, ModeInteger},
			HSVColor{0.1667, 0.09, 0.04, ModeFraction},
		},
	}

	for _, tt := range tests {
		t.Run(tt.rgb.String(), func(t *testing.T) {
			integer, err := tt.rgb.HSV(ModeInteger)
			require.NoError(t, err)
			assert.Equal(t, tt.integer, integer)

			fractional, err := tt.rgb.HSV(ModeFraction)
			require.NoError(t, err)
			assert.Equal(t, tt.fractional, fractional)
		})
	}
}

func TestHSVRanges(t *testing.T) {
	t.Parallel()

	for r := 0; r <= maxChannel; r += 15 {
		for g := 0; g <= maxChannel; g += 15 {
			for b := 0; b <= maxChannel; b += 15 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				hsv, err := c.HSV(ModeInteger)
				require.NoError(t, err)
				require.GreaterOrEqual(t, hsv.H, 0.0)
				require.Less(t, hsv.H, 360.0)
				require.GreaterOrEqual(t, hsv.S, 0.0)
				require.LessOrEqual(t, hsv.S, 100.0)
				require.GreaterOrEqual(t, hsv.V, 0.0)
				require.LessOrEqual(t, hsv.V, 100.0)
			}
		}
	}
}

// TestSaturationRoundingOrder pins the ratio-first rounding: 1 - 1/40 = 0.975 is stored just
// below 0.975 and rounds to 0.97, while rounding the percentage 97.5 directly gives 98.
func TestSaturationRoundingOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 97, saturation(RGB{40, 1, 20}))
	assert.Equal(t, 93, saturation(RGB{40, 3, 20}))
}

func TestRoundPlaces(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.12, roundPlaces(0.125, 2))
	assert.Equal(t, 0.68, roundPlaces(0.675, 2))
	assert.Equal(t, 2.67, roundPlaces(2.675, 2))
	assert.Equal(t, 0.0139, roundPlaces(5.0/360, 4))
	assert.Equal(t, 1.0, roundPlaces(0.99996, 4))
}

func TestModeValidation(t *testing.T) {
	t.Parallel()

	for _, mode := range []Mode{"", "x", "I", "integer"} {
		_, err := RGB{1, 2, 3}.CMYK(mode)
		assert.ErrorIs(t, err, ErrInvalidMode, "mode %q", mode)
		_, err = RGB{1, 2, 3}.HSV(mode)
		assert.ErrorIs(t, err, ErrInvalidMode, "mode %q", mode)
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Mode
		wantErr  bool
	}{
		{"i", ModeInteger, false},
		{"Integer", ModeInteger, false},
		{"f", ModeFraction, false},
		{" fractional ", ModeFraction, false},
		{"x", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		mode, err := ParseMode(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidArgument, "input %q", tt.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.expected, mode)
	}
}

func TestComponentStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cmyk(0, 47, 84, 10)", CMYKColor{0, 47, 84, 10, ModeInteger}.String())
	assert.Equal(t, "cmyk(0, 0.47, 0.84, 0.1)", CMYKColor{0, 0.47, 0.84, 0.1, ModeFraction}.String())
	assert.Equal(t, "hsv(27, 84, 90)", HSVColor{27, 84, 90, ModeInteger}.String())
	assert.Equal(t, "integer", ModeInteger.String())
	assert.Equal(t, "fraction", ModeFraction.String())
}
