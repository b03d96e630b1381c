// Package main parses and validates the flags and color passed to the program, and then
// prints the color as CMYK, HSV, hex and NCS using the internal client.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jkbrsn/convacolor/internal/app"
)

var (
	// Input
	modeArg = flag.String("mode", "i",
		"component scale for CMYK and HSV: i for whole numbers, f for fractions")
	tablePath = flag.String("table", "", "path to a TOML reference table replacing the built-in one")
	// Output
	formatOption = flag.String("format", "auto", "output format: auto, json, or raw")
	colorArg     = flag.String("color", "auto", "color output: auto, always, or never")
	showVersion  = flag.Bool("version", false, "print the program version")
	version      = "unknown"
	// Verbosity
	quiet = flag.Bool("q", false, "print the converted values only")

	targetArguments targetList
	verbosityLevel  = newVerbosityCounter()
)

func init() {
	flag.Var(&targetArguments, "to",
		"comma-separated representations to print (cmyk, hsv, hex, ncs); repeatable; default all")
	flag.Var(verbosityLevel, "v", "increase verbosity; repeat as -vv for trace logging")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:  convacolor [options] <R G B | R,G,B | #RRGGBB>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Conversion options:")
		fmt.Fprintln(os.Stderr, "  -mode     "+flag.Lookup("mode").Usage)
		fmt.Fprintln(os.Stderr, "  -to       "+flag.Lookup("to").Usage)
		fmt.Fprintln(os.Stderr, "  -table    "+flag.Lookup("table").Usage)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Mutually exclusive output options:")
		fmt.Fprintln(os.Stderr, "  -q  "+flag.Lookup("q").Usage)
		fmt.Fprintln(os.Stderr, "  -v  "+flag.Lookup("v").Usage)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Other options:")
		fmt.Fprintln(os.Stderr, "  -format   "+flag.Lookup("format").Usage)
		fmt.Fprintln(os.Stderr, "  -color    "+flag.Lookup("color").Usage)
		fmt.Fprintln(os.Stderr, "  -version  "+flag.Lookup("version").Usage)
	}
}

func main() {
	preprocessVerbosityArgs()

	cfg, err := parseConfig()
	if err != nil {
		if errors.Is(err, errVersionRequested) {
			return
		}
		fmt.Printf("Error parsing input: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, cfg.Verbosity, cfg.ColorMode == "never")
	converter, err := newConverter(cfg, logger)
	if err != nil {
		fmt.Printf("Error in input settings: %v\n", err)
		os.Exit(1)
	}

	client := app.NewClient(converter, app.Settings{
		Mode:           cfg.Mode,
		Targets:        cfg.Targets,
		Format:         cfg.Format,
		ColorMode:      cfg.ColorMode,
		Quiet:          cfg.Quiet,
		VerbosityLevel: cfg.Verbosity,
	})

	if err := client.Validate(); err != nil {
		fmt.Printf("Error in input settings: %v\n", err)
		os.Exit(1)
	}

	if err := client.Convert(cfg.Color); err != nil {
		fmt.Printf("Error converting color: %v\n", err)
		os.Exit(1)
	}

	if err := client.PrintResult(); err != nil {
		fmt.Printf("Error printing result: %v\n", err)
		os.Exit(1)
	}
}
