package wireway

import "Wirefill/internal/calc/tables"

// Selection is the dropdown state that drives table-derived defaults.
type Selection struct {
	PhaseSize  tables.Size       `json:"phase_size,omitempty"`
	TempRating tables.TempRating `json:"temp_rating,omitempty"`
	GroundSize tables.Size       `json:"ground_size,omitempty"`
}

type Form struct {
	Selection Selection `json:"selection"`
	Input     Input     `json:"input"`
}

// ApplySelection refreshes the table-derived fields whose selection differs
// from prev. Fields whose selection did not change keep the user's value, and
// a table miss leaves the field untouched.
func (f Form) ApplySelection(prev Selection) Form {
	cur := f.Selection
	phaseChanged := cur.PhaseSize != prev.PhaseSize
	tempChanged := cur.TempRating != prev.TempRating

	if phaseChanged || tempChanged {
		if a, ok := tables.Ampacity(cur.PhaseSize, cur.TempRating); ok {
			f.Input.BaseAmpacity = F(a)
		}
	}
	if phaseChanged {
		if d, ok := tables.Diameter(cur.PhaseSize); ok {
			f.Input.PhaseDiameter = F(d)
		}
	}
	if cur.GroundSize != prev.GroundSize {
		if d, ok := tables.Diameter(cur.GroundSize); ok {
			f.Input.GroundDiameter = F(d)
		}
	}
	return f
}
