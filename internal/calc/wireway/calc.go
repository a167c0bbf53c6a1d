package wireway

import "math"

const (
	// FillLimitPercent is the maximum share of a wireway's cross-section
	// conductors may occupy.
	FillLimitPercent = 20.0
	PhasesPerSet     = 3.0
)

// Input is one complete snapshot of the calculator fields. A nil pointer is
// a field the user has not filled in yet.
type Input struct {
	FLA               *float64 `json:"fla"`
	OCPD              *float64 `json:"ocpd"`
	Parallel          *float64 `json:"parallel"`
	Wireways          *float64 `json:"wireways"`
	TempCorrection    *float64 `json:"temp_correction"`
	BaseAmpacity      *float64 `json:"base_ampacity"`
	PhaseDiameter     *float64 `json:"phase_diameter_in"`
	GroundDiameter    *float64 `json:"ground_diameter_in"`
	GroundsPerRaceway *float64 `json:"grounds_per_raceway"`
	WirewayArea       *float64 `json:"wireway_area_in2"`
}

type Result struct {
	CalculatedAmpacity   float64 `json:"calculated_ampacity"`
	AmpacityPass         bool    `json:"ampacity_pass"`
	ConductorsPerRaceway float64 `json:"conductors_per_raceway"`
	PhaseArea            float64 `json:"phase_area_in2"`
	GroundArea           float64 `json:"ground_area_in2"`
	TotalPhaseArea       float64 `json:"total_phase_area_in2"`
	TotalGroundArea      float64 `json:"total_ground_area_in2"`
	TotalFillArea        float64 `json:"total_fill_area_in2"`
	FillPercentage       float64 `json:"fill_percentage"`
	FillPass             bool    `json:"fill_pass"`
}

type Status string

const (
	StatusOK      Status = "ok"
	StatusPending Status = "pending"
)

// Outcome is either a computed Result or Pending when the input snapshot is
// incomplete.
type Outcome struct {
	Status Status  `json:"status"`
	Res    *Result `json:"result,omitempty"`
}

func Pending() Outcome {
	return Outcome{Status: StatusPending}
}

func (o Outcome) Result() (Result, bool) {
	if o.Status != StatusOK || o.Res == nil {
		return Result{}, false
	}
	return *o.Res, true
}

func (o Outcome) Pending() bool {
	return o.Status != StatusOK
}

// Complete reports whether every field is present, finite and non-zero.
func (in Input) Complete() bool {
	for _, f := range in.fields() {
		if f == nil || *f == 0 || math.IsNaN(*f) || math.IsInf(*f, 0) {
			return false
		}
	}
	return true
}

func (in Input) fields() []*float64 {
	return []*float64{
		in.FLA, in.OCPD, in.Parallel, in.Wireways, in.TempCorrection,
		in.BaseAmpacity, in.PhaseDiameter, in.GroundDiameter,
		in.GroundsPerRaceway, in.WirewayArea,
	}
}

// Evaluate recomputes every derived value from the snapshot. It has no side
// effects and returns Pending for incomplete input.
func Evaluate(in Input) Outcome {
	if !in.Complete() {
		return Pending()
	}

	ampacity := *in.BaseAmpacity * *in.Parallel * *in.TempCorrection

	perRaceway := (*in.Parallel / *in.Wireways) * PhasesPerSet
	phaseArea := circleArea(*in.PhaseDiameter)
	groundArea := circleArea(*in.GroundDiameter)

	totalPhase := perRaceway * phaseArea
	totalGround := *in.GroundsPerRaceway * groundArea
	totalFill := totalPhase + totalGround
	fill := totalFill / *in.WirewayArea * 100

	return Outcome{
		Status: StatusOK,
		Res: &Result{
			CalculatedAmpacity:   ampacity,
			AmpacityPass:         ampacity > *in.OCPD,
			ConductorsPerRaceway: perRaceway,
			PhaseArea:            phaseArea,
			GroundArea:           groundArea,
			TotalPhaseArea:       totalPhase,
			TotalGroundArea:      totalGround,
			TotalFillArea:        totalFill,
			FillPercentage:       fill,
			FillPass:             withinFillLimit(fill),
		},
	}
}

func withinFillLimit(pct float64) bool {
	return pct <= FillLimitPercent
}

func circleArea(diameter float64) float64 {
	r := diameter / 2
	return math.Pi * r * r
}

// F is a small helper for building inputs from literals.
func F(v float64) *float64 {
	return &v
}
