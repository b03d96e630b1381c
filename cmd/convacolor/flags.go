package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jkbrsn/convacolor/internal/app"
)

// targetList is a flag.Value implementation that accumulates repeated -to entries. Each entry
// may itself be a comma-separated list.
type targetList []string

// Set validates and appends the targets in value, skipping duplicates.
func (l *targetList) Set(value string) error {
	for part := range strings.SplitSeq(value, ",") {
		target := strings.ToLower(strings.TrimSpace(part))
		if target == "" {
			return errors.New("target must not be empty")
		}
		if !slices.Contains(app.AllTargets, target) {
			return fmt.Errorf("unknown target %q, want one of %s",
				target, strings.Join(app.AllTargets, ", "))
		}
		if !slices.Contains(*l, target) {
			*l = append(*l, target)
		}
	}
	return nil
}

// String returns the string representation of the flag value.
func (l *targetList) String() string {
	return strings.Join(*l, ",")
}

// Values returns the selected targets, or every target when none was selected.
func (l *targetList) Values() []string {
	if len(*l) == 0 {
		return append([]string(nil), app.AllTargets...)
	}
	return append([]string(nil), *l...)
}

// verbosityCounter is a flag.Value that counts repeated -v flags.
type verbosityCounter struct {
	count int
}

// newVerbosityCounter creates a counter starting at zero.
func newVerbosityCounter() *verbosityCounter {
	return &verbosityCounter{}
}

// IsBoolFlag lets -v be passed without a value.
func (*verbosityCounter) IsBoolFlag() bool { return true }

// Set adds to the count. An empty value or "true" counts as one.
func (v *verbosityCounter) Set(s string) error {
	if s == "" || s == "true" {
		v.count++
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid verbosity value %q: %w", s, err)
	}
	if n < 0 {
		return errors.New("verbosity must be non-negative")
	}
	v.count += n
	return nil
}

// String returns the count as a string.
func (v *verbosityCounter) String() string {
	return strconv.Itoa(v.count)
}

// Value returns the count.
func (v *verbosityCounter) Value() int {
	return v.count
}
