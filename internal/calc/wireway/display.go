package wireway

import "fmt"

const Placeholder = "-"

type Tone string

const (
	ToneSuccess   Tone = "success"
	ToneDanger    Tone = "danger"
	ToneSecondary Tone = "secondary"
)

type Banner struct {
	Tone    Tone   `json:"tone"`
	Message string `json:"message"`
}

// Display is the rounded, human-facing rendering of an Outcome. Rounding
// happens only here.
type Display struct {
	CalculatedAmpacity string `json:"calculated_ampacity"`
	TotalPhaseArea     string `json:"total_phase_area"`
	TotalGroundArea    string `json:"total_ground_area"`
	TotalFillArea      string `json:"total_fill_area"`
	FillPercentage     string `json:"fill_percentage"`
	AmpacityBanner     Banner `json:"ampacity_banner"`
	FillBanner         Banner `json:"fill_banner"`
}

func Format(o Outcome, in Input) Display {
	res, ok := o.Result()
	if !ok {
		pending := Banner{Tone: ToneSecondary, Message: Placeholder}
		return Display{
			CalculatedAmpacity: Placeholder,
			TotalPhaseArea:     Placeholder,
			TotalGroundArea:    Placeholder,
			TotalFillArea:      Placeholder,
			FillPercentage:     Placeholder,
			AmpacityBanner:     pending,
			FillBanner:         pending,
		}
	}

	d := Display{
		CalculatedAmpacity: fmt.Sprintf("%.1f A", res.CalculatedAmpacity),
		TotalPhaseArea:     fmt.Sprintf("%.2f in²", res.TotalPhaseArea),
		TotalGroundArea:    fmt.Sprintf("%.2f in²", res.TotalGroundArea),
		TotalFillArea:      fmt.Sprintf("%.2f in²", res.TotalFillArea),
		FillPercentage:     fmt.Sprintf("%.1f%%", res.FillPercentage),
	}

	ocpd := 0.0
	if in.OCPD != nil {
		ocpd = *in.OCPD
	}
	if res.AmpacityPass {
		d.AmpacityBanner = Banner{ToneSuccess, fmt.Sprintf("PASS: %.1f A exceeds the %.0f A OCPD trip setting", res.CalculatedAmpacity, ocpd)}
	} else {
		d.AmpacityBanner = Banner{ToneDanger, fmt.Sprintf("FAIL: %.1f A does not exceed the %.0f A OCPD trip setting", res.CalculatedAmpacity, ocpd)}
	}
	if res.FillPass {
		d.FillBanner = Banner{ToneSuccess, fmt.Sprintf("PASS: %.1f%% fill is within the %.0f%% limit", res.FillPercentage, FillLimitPercent)}
	} else {
		d.FillBanner = Banner{ToneDanger, fmt.Sprintf("FAIL: %.1f%% fill exceeds the %.0f%% limit", res.FillPercentage, FillLimitPercent)}
	}
	return d
}
