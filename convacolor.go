// Package convacolor converts 8-bit RGB colors to CMYK, HSV, hexadecimal notation and the
// nearest code of the Natural Color System (NCS).
// NCS codes are found by classifying the hue of a color into one of eight sectors and picking
// the closest sample of that sector from a reference table.
package convacolor

import (
	"github.com/rs/zerolog"
)

// Converter computes color representations against a reference table. A Converter is
// immutable and safe for concurrent use.
type Converter struct {
	log   zerolog.Logger
	table *Table
}

// New creates and returns a new Converter. Without options it matches against the default
// table and logs nothing.
func New(opts ...Option) *Converter {
	cfg := options{
		logger: zerolog.Nop(),
		table:  defaultTable,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.table == nil {
		cfg.table = defaultTable
	}

	return &Converter{
		log:   cfg.logger.With().Str("pkg", "convacolor").Logger(),
		table: cfg.table,
	}
}

// Match describes how an NCS code was chosen for a color.
type Match struct {
	Code      string // Resulting NCS code
	Lightness int    // Brightest channel on a 0-100 scale

	// Achromatic is set when the code was produced without a table search, in which case
	// the fields below are zero.
	Achromatic bool

	Hue      int    // Hue angle in whole degrees
	Sector   Sector // Sector of Hue
	Sample   Sample // Closest reference sample
	Distance int    // Manhattan distance between the color and Sample
}

// MatchNCS finds the NCS code of c and reports how it was chosen. The only error is
// ErrNoCandidates, returned when the table has no sample for the color's hue sector.
func (cv *Converter) MatchNCS(c RGB) (Match, error) {
	v := lightness(c)
	if code, ok := gate(c, v); ok {
		cv.log.Debug().
			Stringer("rgb", c).
			Str("code", code).
			Msg("Achromatic color, skipping table search")
		return Match{Code: code, Lightness: v, Achromatic: true}, nil
	}

	h := hueAngle(c)
	sector := ClassifyHue(h)
	cv.log.Trace().
		Stringer("rgb", c).
		Int("hue", h).
		Stringer("sector", sector).
		Int("candidates", len(cv.table.buckets[sector])).
		Msg("Classified hue")

	sample, dist, err := cv.table.Nearest(c, sector)
	if err != nil {
		cv.log.Error().Err(err).Stringer("rgb", c).Int("hue", h).Msg("Reference table incomplete")
		return Match{}, err
	}

	cv.log.Debug().
		Stringer("rgb", c).
		Int("hue", h).
		Stringer("sector", sector).
		Str("code", sample.Code).
		Stringer("sample", sample.RGB).
		Int("distance", dist).
		Msg("Matched reference sample")

	return Match{
		Code:      sample.Code,
		Lightness: v,
		Hue:       h,
		Sector:    sector,
		Sample:    sample,
		Distance:  dist,
	}, nil
}

// NCS returns the NCS code of c.
func (cv *Converter) NCS(c RGB) (string, error) {
	m, err := cv.MatchNCS(c)
	if err != nil {
		return "", err
	}
	return m.Code, nil
}

// Convert computes every representation of c at once. CMYK and HSV use mode.
func (cv *Converter) Convert(c RGB, mode Mode) (*Conversion, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	conv := &Conversion{RGB: c, Mode: mode, Hex: c.Hex()}
	var err error
	if conv.CMYK, err = c.CMYK(mode); err != nil {
		return nil, err
	}
	if conv.HSV, err = c.HSV(mode); err != nil {
		return nil, err
	}
	if conv.NCS, err = cv.MatchNCS(c); err != nil {
		return nil, err
	}
	return conv, nil
}

// Option configures a Converter.
type Option func(*options)

// options stores the configuration for a Converter.
type options struct {
	logger zerolog.Logger
	table  *Table
}

// WithLogger sets the logger for the Converter.
func WithLogger(logger zerolog.Logger) Option { return func(o *options) { o.logger = logger } }

// WithTable sets the reference table NCS codes are matched against.
func WithTable(t *Table) Option { return func(o *options) { o.table = t } }
