package convacolor

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed ncs_table.toml
var defaultTableData []byte

// defaultTable is built once at package initialization and never mutated.
var defaultTable = MustParseTable(defaultTableData)

// Sample is one reference color of an NCS table.
type Sample struct {
	Code string
	RGB  RGB
}

// Table is an immutable set of NCS reference samples, indexed by hue sector. It is safe for
// concurrent use.
type Table struct {
	samples []Sample
	vectors [][]float64

	// buckets holds, per sector, the indexes of the samples admitted by it in table order.
	buckets map[Sector][]int
}

// tableFile is the TOML layout of a reference table.
type tableFile struct {
	Samples []struct {
		Code string `toml:"code"`
		RGB  [3]int `toml:"rgb"`
	} `toml:"samples"`
}

// DefaultTable returns the reference table shipped with the package.
func DefaultTable() *Table {
	return defaultTable
}

// ParseTable decodes a TOML reference table of the form
//
//	samples = [
//	  { code = "S1050-Y90R", rgb = [226, 103, 33] },
//	]
//
// and indexes it with NewTable.
func ParseTable(data []byte) (*Table, error) {
	var file tableFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("decoding reference table: %w", err)
	}

	samples := make([]Sample, 0, len(file.Samples))
	for i, entry := range file.Samples {
		c, err := NewRGB(entry.RGB[0], entry.RGB[1], entry.RGB[2])
		if err != nil {
			return nil, fmt.Errorf("sample %d (%s): %w", i, entry.Code, err)
		}
		samples = append(samples, Sample{Code: entry.Code, RGB: c})
	}
	return NewTable(samples)
}

// MustParseTable is like ParseTable but panics on error.
func MustParseTable(data []byte) *Table {
	t, err := ParseTable(data)
	if err != nil {
		panic("convacolor: " + err.Error())
	}
	return t
}

// NewTable indexes samples by sector. Samples whose code matches no sector are kept but never
// offered as candidates. It fails when any sector would be left without candidates.
func NewTable(samples []Sample) (*Table, error) {
	t := &Table{
		samples: append([]Sample(nil), samples...),
		vectors: make([][]float64, len(samples)),
		buckets: make(map[Sector][]int),
	}
	for i, s := range t.samples {
		t.vectors[i] = s.RGB.vector()
		if sector, ok := SectorOf(s.Code); ok {
			t.buckets[sector] = append(t.buckets[sector], i)
		}
	}

	var errs []error
	for _, sector := range Sectors() {
		if len(t.buckets[sector]) == 0 {
			errs = append(errs, fmt.Errorf("%w: %s", ErrNoCandidates, sector))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return t, nil
}

// Len returns the number of samples in the table.
func (t *Table) Len() int {
	return len(t.samples)
}

// Samples returns a copy of the samples in table order.
func (t *Table) Samples() []Sample {
	return append([]Sample(nil), t.samples...)
}

// Candidates returns the samples a color in sector s is matched against, in table order.
func (t *Table) Candidates(s Sector) []Sample {
	idx := t.buckets[s]
	out := make([]Sample, len(idx))
	for i, j := range idx {
		out[i] = t.samples[j]
	}
	return out
}
