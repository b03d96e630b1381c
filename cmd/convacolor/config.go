package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jkbrsn/convacolor"
	"github.com/rs/zerolog"
)

// Config holds all configuration parsed from command-line flags.
type Config struct {
	Color     convacolor.RGB
	Mode      convacolor.Mode
	Targets   []string
	TablePath string
	Format    string
	ColorMode string
	Quiet     bool
	Verbosity int
}

// parseConfig parses command-line flags and returns a validated Config.
func parseConfig() (*Config, error) {
	flag.Parse()

	if *showVersion {
		fmt.Printf("Version: %s\n", version)
		return nil, errVersionRequested
	}

	if *quiet && verbosityLevel.Value() > 0 {
		return nil, errors.New("-q cannot be combined with -v")
	}

	switch strings.ToLower(*colorArg) {
	case "auto", "always", "never":
		// valid
	default:
		return nil, errors.New("-color must be auto, always, or never")
	}

	mode, err := convacolor.ParseMode(*modeArg)
	if err != nil {
		return nil, fmt.Errorf("error parsing -mode: %w", err)
	}

	rgb, err := parseColorArgs(flag.Args())
	if err != nil {
		return nil, fmt.Errorf("error parsing input color: %w", err)
	}

	cfg := &Config{
		Color:     rgb,
		Mode:      mode,
		Targets:   targetArguments.Values(),
		TablePath: strings.TrimSpace(*tablePath),
		Format:    strings.ToLower(*formatOption),
		ColorMode: strings.ToLower(*colorArg),
		Quiet:     *quiet,
		Verbosity: verbosityLevel.Value(),
	}

	return cfg, nil
}

// parseColorArgs reads the input color from the positional arguments. Accepted forms are
// "R G B" as three arguments, "R,G,B" as one, or a hex string such as "#C86432" or "fff".
func parseColorArgs(args []string) (convacolor.RGB, error) {
	switch len(args) {
	case 1:
		if strings.Contains(args[0], ",") {
			return parseChannels(strings.Split(args[0], ","))
		}
		return convacolor.ParseHex(args[0])
	case 3:
		return parseChannels(args)
	default:
		return convacolor.RGB{}, errors.New("invalid number of arguments")
	}
}

// parseChannels converts three decimal channel strings to an RGB value.
func parseChannels(parts []string) (convacolor.RGB, error) {
	const channels = 3
	if len(parts) != channels {
		return convacolor.RGB{}, fmt.Errorf("expected %d channels, got %d", channels, len(parts))
	}

	var values [channels]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return convacolor.RGB{}, fmt.Errorf("%w: channel %d is not an integer: %q",
				convacolor.ErrInvalidArgument, i+1, part)
		}
		values[i] = v
	}
	return convacolor.NewRGB(values[0], values[1], values[2])
}

// newLogger returns a console logger writing to out. Warnings and errors are always shown, -v
// adds debug and -vv trace output.
func newLogger(out io.Writer, verbosity int, noColor bool) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case verbosity >= 2:
		level = zerolog.TraceLevel
	case verbosity == 1:
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: noColor}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// newConverter builds the converter for cfg, loading a custom reference table if one was given.
func newConverter(cfg *Config, logger zerolog.Logger) (*convacolor.Converter, error) {
	opts := []convacolor.Option{convacolor.WithLogger(logger)}
	if cfg.TablePath != "" {
		data, err := os.ReadFile(cfg.TablePath)
		if err != nil {
			return nil, fmt.Errorf("reading reference table: %w", err)
		}
		table, err := convacolor.ParseTable(data)
		if err != nil {
			return nil, fmt.Errorf("loading reference table %s: %w", cfg.TablePath, err)
		}
		logger.Debug().Str("path", cfg.TablePath).Int("samples", table.Len()).
			Msg("Loaded reference table")
		opts = append(opts, convacolor.WithTable(table))
	}
	return convacolor.New(opts...), nil
}

// errVersionRequested is returned when -version flag is used.
var errVersionRequested = errors.New("version requested")

// onlyRune returns true if the string consists solely of the provided rune.
func onlyRune(s string, r rune) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch != r {
			return false
		}
	}
	return true
}

// preprocessVerbosityArgs rewrites os.Args so that shorthand -v/-vv translates to
// canonical -v=N forms before flag parsing.
func preprocessVerbosityArgs() {
	if len(os.Args) <= 1 {
		return
	}

	filtered := make([]string, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "-v" || arg == "--verbose":
			filtered = append(filtered, "-v=1")
		case strings.HasPrefix(arg, "-v="):
			filtered = append(filtered, arg)
		case strings.HasPrefix(arg, "-vv") && onlyRune(arg[1:], 'v'):
			filtered = append(filtered, fmt.Sprintf("-v=%d", len(arg)-1))
		default:
			filtered = append(filtered, arg)
		}
	}

	os.Args = append([]string{os.Args[0]}, filtered...)
}
