package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jkbrsn/convacolor"
	"github.com/jkbrsn/convacolor/internal/app/color"
	"github.com/mattn/go-isatty"
)

var (
	printValueTemp         = "%s: %s\n"
	printIndentedValueTemp = "  %s %s\n"
)

// labelWidth aligns the values printed below a heading.
const labelWidth = len("Lightness:")

// PrintResult prints the result of the last Convert call in the configured format.
func (c *Client) PrintResult() error {
	if c.result == nil {
		return errors.New("no conversion to print")
	}

	switch {
	case c.format == formatJSON:
		return c.printJSONLine(buildConversionJSON(c.result, c.targets))
	case c.format == formatRaw || c.quiet:
		c.printRaw()
	default:
		c.printText()
		if c.verbosityLevel >= 1 && c.wants(TargetNCS) {
			c.printMatchDetails()
		}
	}
	return nil
}

// printRaw prints one line per selected representation, values only.
func (c *Client) printRaw() {
	conv := c.result
	for _, target := range c.targets {
		switch target {
		case TargetCMYK:
			fmt.Println(formatValues(conv.CMYK.C, conv.CMYK.M, conv.CMYK.Y, conv.CMYK.K))
		case TargetHSV:
			fmt.Println(formatValues(conv.HSV.H, conv.HSV.S, conv.HSV.V))
		case TargetHex:
			fmt.Println(conv.Hex)
		case TargetNCS:
			fmt.Println(conv.NCS.Code)
		}
	}
}

// printText prints the labeled summary of the conversion.
func (c *Client) printText() {
	conv := c.result
	fmt.Printf(printValueTemp, c.colorizeHeading("Color"), conv.RGB.String()+c.swatch(conv.RGB))
	for _, target := range c.targets {
		switch target {
		case TargetCMYK:
			c.printIndentedValue("CMYK", conv.CMYK.String())
		case TargetHSV:
			c.printIndentedValue("HSV", conv.HSV.String())
		case TargetHex:
			c.printIndentedValue("Hex", conv.Hex)
		case TargetNCS:
			c.printIndentedValue("NCS", conv.NCS.Code)
		}
	}
}

// printMatchDetails prints how the NCS code was chosen.
func (c *Client) printMatchDetails() {
	m := c.result.NCS
	fmt.Println(c.colorizeHeading("NCS match"))
	c.printIndentedValue("Lightness", fmt.Sprintf("%d", m.Lightness))
	if m.Achromatic {
		c.printIndentedValue("Hue", "none, gray or near black")
		return
	}
	c.printIndentedValue("Hue", fmt.Sprintf("%d deg", m.Hue))
	c.printIndentedValue("Sector", m.Sector.String())
	c.printIndentedValue("Sample",
		fmt.Sprintf("%s %s %s", m.Sample.Code, m.Sample.RGB, m.Sample.RGB.Hex())+
			c.swatch(m.Sample.RGB))
	c.printIndentedValue("Distance", fmt.Sprintf("%d", m.Distance))
}

func (c *Client) printIndentedValue(label, value string) {
	fmt.Printf(printIndentedValueTemp, c.colorizeLabel(formatPadRight(label+":", labelWidth)), value)
}

// printJSONLine prints a JSON line.
func (*Client) printJSONLine(payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON output: %w", err)
	}
	_, err = os.Stdout.Write(append(data, '\n'))
	return err
}

// colorEnabled returns true if color output is enabled, based on both color mode and terminal
// detection.
func (c *Client) colorEnabled() bool {
	switch c.colorMode {
	case "always":
		return true
	case "never":
		return false
	case "auto", "":
	default:
		return false
	}

	if _, disabled := os.LookupEnv("NO_COLOR"); disabled {
		return false
	}

	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// colorizeHeading returns the text with the heading color applied if color output is enabled.
func (c *Client) colorizeHeading(text string) string {
	if !c.colorEnabled() {
		return text
	}
	return color.Heading.Sprint(text)
}

// colorizeLabel returns the text with the label color applied if color output is enabled.
func (c *Client) colorizeLabel(text string) string {
	if !c.colorEnabled() {
		return text
	}
	return color.Label.Sprint(text)
}

// swatch returns a space and a block painted in rgb, or nothing when color is disabled.
func (c *Client) swatch(rgb convacolor.RGB) string {
	if !c.colorEnabled() {
		return ""
	}
	return " " + color.RGB{R: rgb.R, G: rgb.G, B: rgb.B}.Swatch(swatchWidth)
}
