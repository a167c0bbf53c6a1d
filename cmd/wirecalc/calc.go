package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"Wirefill/internal/calc/tables"
	"Wirefill/internal/calc/wireway"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	exitPass    = 0
	exitFail    = 1
	exitPending = 2
)

var (
	phaseSize  string
	tempRating string
	groundSize string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Evaluate one sizing snapshot",
	Long: `Evaluate one sizing snapshot and print the results.

Exit codes:
  0 - Ampacity and fill checks passed
  1 - One or both checks failed
  2 - Input incomplete, results undetermined`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := formFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		code, err := runCalc(os.Stdout, form, jsonOutput)
		if err != nil {
			return err
		}
		if code != exitPass {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
	flags := calcCmd.Flags()
	flags.StringVar(&phaseSize, "phase-size", "", "Phase conductor size (e.g. 4/0, 750)")
	flags.StringVar(&tempRating, "temp", "", "Insulation temperature rating: 60, 75 or 90")
	flags.StringVar(&groundSize, "ground-size", "", "Ground conductor size")
	for _, key := range wireway.InputKeys {
		flags.Float64(flagName(key), 0, wireway.InputLabels[key])
	}
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// formFromFlags applies table defaults for the selected sizes, then lets
// explicitly set numeric flags override them.
func formFromFlags(flags *pflag.FlagSet) (wireway.Form, error) {
	var f wireway.Form
	if phaseSize != "" {
		s, ok := tables.ParseSize(phaseSize)
		if !ok {
			return f, fmt.Errorf("unknown phase size %q", phaseSize)
		}
		f.Selection.PhaseSize = s
	}
	if tempRating != "" {
		t, ok := tables.ParseTempRating(tempRating)
		if !ok {
			return f, fmt.Errorf("unknown temperature rating %q", tempRating)
		}
		f.Selection.TempRating = t
	}
	if groundSize != "" {
		s, ok := tables.ParseSize(groundSize)
		if !ok {
			return f, fmt.Errorf("unknown ground size %q", groundSize)
		}
		f.Selection.GroundSize = s
	}
	f = f.ApplySelection(wireway.Selection{})

	for _, key := range wireway.InputKeys {
		name := flagName(key)
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetFloat64(name)
		if err != nil {
			return f, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return f, fmt.Errorf("--%s must be a finite number", name)
		}
		f.Input.Set(key, wireway.F(v))
	}
	return f, nil
}

func runCalc(w io.Writer, f wireway.Form, asJSON bool) (int, error) {
	out := wireway.Evaluate(f.Input)
	disp := wireway.Format(out, f.Input)

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(wireway.CalcResponse{Outcome: out, Input: f.Input, Display: disp}); err != nil {
			return exitPending, fmt.Errorf("encode result: %w", err)
		}
	} else if _, err := fmt.Fprintln(w, renderResult(disp)); err != nil {
		return exitPending, fmt.Errorf("write result: %w", err)
	}
	return exitCode(out), nil
}

func exitCode(o wireway.Outcome) int {
	res, ok := o.Result()
	if !ok {
		return exitPending
	}
	if !res.AmpacityPass || !res.FillPass {
		return exitFail
	}
	return exitPass
}

func renderResult(d wireway.Display) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Wireway sizing") + "\n")
	for _, r := range [][2]string{
		{"Calculated ampacity", d.CalculatedAmpacity},
		{"Total phase conductor area", d.TotalPhaseArea},
		{"Total ground conductor area", d.TotalGroundArea},
		{"Total fill area", d.TotalFillArea},
		{"Wireway fill", d.FillPercentage},
	} {
		b.WriteString(labelStyle.Render(r[0]) + valueStyle.Render(r[1]) + "\n")
	}
	b.WriteString("\n" + renderBanner(d.AmpacityBanner) + "\n")
	b.WriteString(renderBanner(d.FillBanner))
	return b.String()
}
