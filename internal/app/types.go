package app

import "github.com/jkbrsn/convacolor"

const (
	formatAuto = "auto"
	formatRaw  = "raw"
	formatJSON = "json"

	// JSONSchemaVersion is the schema version for JSON output
	JSONSchemaVersion = "1.0"
)

// Representations the client can print.
const (
	TargetCMYK = "cmyk"
	TargetHSV  = "hsv"
	TargetHex  = "hex"
	TargetNCS  = "ncs"
)

// AllTargets lists every representation in print order.
var AllTargets = []string{TargetCMYK, TargetHSV, TargetHex, TargetNCS}

type conversionJSON struct {
	Schema string    `json:"schema_version"`
	Type   string    `json:"type"`
	Input  inputJSON `json:"input"`
	Mode   string    `json:"mode"`
	CMYK   []float64 `json:"cmyk,omitempty"`
	HSV    []float64 `json:"hsv,omitempty"`
	Hex    string    `json:"hex,omitempty"`
	NCS    *ncsJSON  `json:"ncs,omitempty"`
}

type inputJSON struct {
	RGB [3]int `json:"rgb"`
}

type ncsJSON struct {
	Code       string      `json:"code"`
	Achromatic bool        `json:"achromatic"`
	Lightness  int         `json:"lightness"`
	Hue        *int        `json:"hue,omitempty"`
	Sector     string      `json:"sector,omitempty"`
	Sample     *sampleJSON `json:"sample,omitempty"`
	Distance   *int        `json:"distance,omitempty"`
}

type sampleJSON struct {
	Code string `json:"code"`
	RGB  [3]int `json:"rgb"`
	Hex  string `json:"hex"`
}

// buildConversionJSON builds the JSON document for conv, keeping only the selected targets.
func buildConversionJSON(conv *convacolor.Conversion, targets []string) conversionJSON {
	doc := conversionJSON{
		Schema: JSONSchemaVersion,
		Type:   "conversion",
		Input:  inputJSON{RGB: rgbArray(conv.RGB)},
		Mode:   conv.Mode.String(),
	}
	for _, target := range targets {
		switch target {
		case TargetCMYK:
			doc.CMYK = []float64{conv.CMYK.C, conv.CMYK.M, conv.CMYK.Y, conv.CMYK.K}
		case TargetHSV:
			doc.HSV = []float64{conv.HSV.H, conv.HSV.S, conv.HSV.V}
		case TargetHex:
			doc.Hex = conv.Hex
		case TargetNCS:
			doc.NCS = buildNCSJSON(conv.NCS)
		}
	}
	return doc
}

func buildNCSJSON(m convacolor.Match) *ncsJSON {
	out := &ncsJSON{
		Code:       m.Code,
		Achromatic: m.Achromatic,
		Lightness:  m.Lightness,
	}
	if m.Achromatic {
		return out
	}
	out.Hue = intPtr(m.Hue)
	out.Sector = m.Sector.String()
	out.Sample = &sampleJSON{
		Code: m.Sample.Code,
		RGB:  rgbArray(m.Sample.RGB),
		Hex:  m.Sample.RGB.Hex(),
	}
	out.Distance = intPtr(m.Distance)
	return out
}
