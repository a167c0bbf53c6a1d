package recommend

import (
	"errors"
	"fmt"
	"math"

	"Wirefill/internal/calc/tables"
	"Wirefill/internal/calc/wireway"
)

var ErrNoSize = errors.New("no conductor size in the table satisfies the OCPD trip setting")

// Input is a sizing snapshot without the phase conductor: the recommender
// fills ampacity and diameter from each table size in turn.
type Input struct {
	FLA               float64           `json:"fla"`
	OCPD              float64           `json:"ocpd"`
	Parallel          float64           `json:"parallel"`
	Wireways          float64           `json:"wireways"`
	TempCorrection    float64           `json:"temp_correction"`
	TempRating        tables.TempRating `json:"temp_rating"`
	GroundSize        tables.Size       `json:"ground_size"`
	GroundsPerRaceway float64           `json:"grounds_per_raceway"`
	WirewayArea       float64           `json:"wireway_area_in2"`
}

type Result struct {
	PhaseSize tables.Size     `json:"phase_size"`
	Label     string          `json:"label"`
	Input     wireway.Input   `json:"input"`
	Outcome   wireway.Outcome `json:"outcome"`
	Display   wireway.Display `json:"display"`
	Notes     string          `json:"notes"`
}

func (in Input) validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"fla", in.FLA}, {"ocpd", in.OCPD}, {"parallel", in.Parallel}, {"wireways", in.Wireways},
		{"temp_correction", in.TempCorrection}, {"grounds_per_raceway", in.GroundsPerRaceway},
		{"wireway_area_in2", in.WirewayArea},
	}
	for _, f := range fields {
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s must be greater than zero", f.name)
		}
	}
	if _, ok := tables.ParseTempRating(in.TempRating.String()); !ok {
		return fmt.Errorf("unknown temperature rating %d", int(in.TempRating))
	}
	if _, ok := tables.Diameter(in.GroundSize); !ok {
		return fmt.Errorf("unknown ground size %q", in.GroundSize)
	}
	return nil
}

// PhaseConductor returns the smallest phase size whose derated ampacity
// exceeds the OCPD trip setting. The fill check is reported but does not
// disqualify a size.
func PhaseConductor(in Input) (Result, error) {
	if err := in.validate(); err != nil {
		return Result{}, err
	}
	groundDia, _ := tables.Diameter(in.GroundSize)

	for _, size := range tables.Sizes() {
		amp, ok := tables.Ampacity(size, in.TempRating)
		if !ok {
			continue
		}
		dia, _ := tables.Diameter(size)
		snap := wireway.Input{
			FLA:               wireway.F(in.FLA),
			OCPD:              wireway.F(in.OCPD),
			Parallel:          wireway.F(in.Parallel),
			Wireways:          wireway.F(in.Wireways),
			TempCorrection:    wireway.F(in.TempCorrection),
			BaseAmpacity:      wireway.F(amp),
			PhaseDiameter:     wireway.F(dia),
			GroundDiameter:    wireway.F(groundDia),
			GroundsPerRaceway: wireway.F(in.GroundsPerRaceway),
			WirewayArea:       wireway.F(in.WirewayArea),
		}
		out := wireway.Evaluate(snap)
		res, ok := out.Result()
		if !ok || !res.AmpacityPass {
			continue
		}
		notes := "Smallest size meeting the ampacity check; wireway fill is within the limit."
		if !res.FillPass {
			notes = "Smallest size meeting the ampacity check; wireway fill exceeds the limit, use a larger wireway or more wireways."
		}
		return Result{
			PhaseSize: size,
			Label:     size.Label(),
			Input:     snap,
			Outcome:   out,
			Display:   wireway.Format(out, snap),
			Notes:     notes,
		}, nil
	}
	return Result{}, ErrNoSize
}
