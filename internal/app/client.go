// Package app uses the convacolor package to construct a client that converts a single color
// and prints the result.
package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jkbrsn/convacolor"
)

// Settings carries the user-facing options of a Client.
type Settings struct {
	Mode           convacolor.Mode // Scale of CMYK and HSV components
	Targets        []string        // Representations to print; empty means all
	Format         string          // Output formatting mode: "auto", "json" or "raw"
	ColorMode      string          // Color behavior: "auto", "always", or "never"
	Quiet          bool            // print values without labels
	VerbosityLevel int             // 0 = summary, >=1 = NCS match details
}

// Client converts a color and prints its representations, applying different layouts based on
// the settings passed to it.
type Client struct {
	converter *convacolor.Converter

	// Input
	mode    convacolor.Mode
	targets []string

	// Output
	format    string
	colorMode string

	// Verbosity
	quiet          bool
	verbosityLevel int

	// The result of a Convert call. Is overwritten if the function is called again.
	result *convacolor.Conversion
}

// NewClient creates a Client that converts with converter. Validate replaces a nil converter
// with one using default settings.
func NewClient(converter *convacolor.Converter, s Settings) *Client {
	return &Client{
		converter:      converter,
		mode:           s.Mode,
		targets:        append([]string(nil), s.Targets...),
		format:         s.Format,
		colorMode:      s.ColorMode,
		quiet:          s.Quiet,
		verbosityLevel: s.VerbosityLevel,
	}
}

// Validate checks that the client is ready for conversion and normalizes its settings.
func (c *Client) Validate() error {
	if c.mode == "" {
		c.mode = convacolor.ModeInteger
	}
	if err := c.mode.Validate(); err != nil {
		return err
	}

	if len(c.targets) == 0 {
		c.targets = append([]string(nil), AllTargets...)
	}
	for i, target := range c.targets {
		target = strings.TrimSpace(strings.ToLower(target))
		if !slices.Contains(AllTargets, target) {
			return fmt.Errorf("unknown target %q", target)
		}
		c.targets[i] = target
	}

	c.format = strings.TrimSpace(strings.ToLower(c.format))
	if c.format == "" {
		c.format = formatAuto
	}
	if c.format != formatAuto && c.format != formatRaw && c.format != formatJSON {
		return errors.New("format must be \"auto\", \"json\", or \"raw\"")
	}

	c.colorMode = strings.TrimSpace(strings.ToLower(c.colorMode))
	if c.colorMode == "" {
		c.colorMode = "auto"
	}
	if c.colorMode != "auto" && c.colorMode != "always" && c.colorMode != "never" {
		return errors.New("color must be \"auto\", \"always\", or \"never\"")
	}

	if c.quiet && c.verbosityLevel > 0 {
		return errors.New("quiet cannot be combined with verbose output")
	}

	if c.verbosityLevel < 0 {
		return errors.New("verbosity must be zero or greater")
	}

	if c.converter == nil {
		c.converter = convacolor.New()
	}
	return nil
}

// Convert computes every representation of rgb and stores the result on the client.
func (c *Client) Convert(rgb convacolor.RGB) error {
	if c.converter == nil {
		return errors.New("client not validated")
	}
	conv, err := c.converter.Convert(rgb, c.mode)
	if err != nil {
		return fmt.Errorf("converting %s: %w", rgb, err)
	}
	c.result = conv
	return nil
}

// Format returns the normalized output format.
func (c *Client) Format() string { return c.format }

// Mode returns the component scale.
func (c *Client) Mode() convacolor.Mode { return c.mode }

// Result returns the conversion of the last Convert call, or nil.
func (c *Client) Result() *convacolor.Conversion { return c.result }

// Targets returns a copy of the selected representations.
func (c *Client) Targets() []string { return append([]string(nil), c.targets...) }

// wants reports whether target was selected.
func (c *Client) wants(target string) bool {
	return slices.Contains(c.targets, target)
}
