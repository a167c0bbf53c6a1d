package wireway

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"Wirefill/internal/calc/tables"
)

// Form field names shared by the HTML shell, the PDF export link and the
// spreadsheet header.
const (
	KeyFLA               = "fla"
	KeyOCPD              = "ocpd"
	KeyParallel          = "parallel"
	KeyWireways          = "wireways"
	KeyTempCorrection    = "temp_correction"
	KeyBaseAmpacity      = "base_ampacity"
	KeyPhaseDiameter     = "phase_diameter"
	KeyGroundDiameter    = "ground_diameter"
	KeyGroundsPerRaceway = "grounds"
	KeyWirewayArea       = "wireway_area"

	KeyPhaseSize  = "phase_size"
	KeyTempRating = "temp_rating"
	KeyGroundSize = "ground_size"
	prevPrefix    = "prev_"
)

// InputKeys lists the numeric fields in display order.
var InputKeys = []string{
	KeyFLA, KeyOCPD, KeyParallel, KeyWireways, KeyTempCorrection,
	KeyBaseAmpacity, KeyPhaseDiameter, KeyGroundDiameter,
	KeyGroundsPerRaceway, KeyWirewayArea,
}

var InputLabels = map[string]string{
	KeyFLA:               "Full-load amperage (A)",
	KeyOCPD:              "OCPD trip setting (A)",
	KeyParallel:          "Parallel conductors per phase",
	KeyWireways:          "Number of wireways",
	KeyTempCorrection:    "Temperature correction factor",
	KeyBaseAmpacity:      "Cable ampacity (A)",
	KeyPhaseDiameter:     "Phase conductor diameter (in)",
	KeyGroundDiameter:    "Ground conductor diameter (in)",
	KeyGroundsPerRaceway: "Grounds per raceway",
	KeyWirewayArea:       "Wireway internal area (in²)",
}

func (in *Input) field(key string) **float64 {
	switch key {
	case KeyFLA:
		return &in.FLA
	case KeyOCPD:
		return &in.OCPD
	case KeyParallel:
		return &in.Parallel
	case KeyWireways:
		return &in.Wireways
	case KeyTempCorrection:
		return &in.TempCorrection
	case KeyBaseAmpacity:
		return &in.BaseAmpacity
	case KeyPhaseDiameter:
		return &in.PhaseDiameter
	case KeyGroundDiameter:
		return &in.GroundDiameter
	case KeyGroundsPerRaceway:
		return &in.GroundsPerRaceway
	case KeyWirewayArea:
		return &in.WirewayArea
	}
	return nil
}

// Get returns the value for a field key, nil when unset or unknown.
func (in Input) Get(key string) *float64 {
	if p := in.field(key); p != nil {
		return *p
	}
	return nil
}

// Set assigns a field by key and reports whether the key exists.
func (in *Input) Set(key string, v *float64) bool {
	p := in.field(key)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// ParseNumber treats blank, unparsable or non-finite text (NaN, Inf) as a
// missing value.
func ParseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func FormatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// ParseValues reads a full calculator snapshot from query or form values.
// The returned Selection is the one the previous render was made with.
func ParseValues(v url.Values) (Form, Selection) {
	var f Form
	for _, key := range InputKeys {
		f.Input.Set(key, ParseNumber(v.Get(key)))
	}
	f.Selection = parseSelection(v, "")
	return f, parseSelection(v, prevPrefix)
}

func parseSelection(v url.Values, prefix string) Selection {
	var s Selection
	if size, ok := tables.ParseSize(v.Get(prefix + KeyPhaseSize)); ok {
		s.PhaseSize = size
	}
	if t, ok := tables.ParseTempRating(v.Get(prefix + KeyTempRating)); ok {
		s.TempRating = t
	}
	if size, ok := tables.ParseSize(v.Get(prefix + KeyGroundSize)); ok {
		s.GroundSize = size
	}
	return s
}

// Values encodes the form so that a later ParseValues sees its own selection
// as the previous one.
func (f Form) Values() url.Values {
	v := url.Values{}
	for _, key := range InputKeys {
		if n := f.Input.Get(key); n != nil {
			v.Set(key, FormatNumber(n))
		}
	}
	for _, prefix := range []string{"", prevPrefix} {
		if f.Selection.PhaseSize != "" {
			v.Set(prefix+KeyPhaseSize, string(f.Selection.PhaseSize))
		}
		if f.Selection.TempRating != 0 {
			v.Set(prefix+KeyTempRating, f.Selection.TempRating.String())
		}
		if f.Selection.GroundSize != "" {
			v.Set(prefix+KeyGroundSize, string(f.Selection.GroundSize))
		}
	}
	return v
}
