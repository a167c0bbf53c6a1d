package report

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	tables "Wirefill/internal/calc/tables"
	wireway "Wirefill/internal/calc/wireway"
	"Wirefill/internal/httputil"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string       `json:"project"`
	Author  string       `json:"author"`
	Title   string       `json:"title"`
	Notes   string       `json:"notes"`
	Form    wireway.Form `json:"form"`
}

type Handler struct{}

// Generate accepts either a JSON body (POST) or the calculator's query
// string (GET) and returns a PDF.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if r.Method == http.MethodGet {
		q := r.URL.Query()
		f, prev := wireway.ParseValues(q)
		input = Input{
			Project: q.Get("project"),
			Author:  q.Get("author"),
			Title:   q.Get("title"),
			Form:    f.ApplySelection(prev),
		}
	} else if err := httputil.DecodeJSON(w, r, &input); err != nil {
		httputil.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"wireway-sizing.pdf\"")
	if err := Write(w, input, time.Now()); err != nil {
		slog.Error("Report generation failed", "error", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func Write(w io.Writer, input Input, now time.Time) error {
	if input.Title == "" {
		input.Title = "Wireway Sizing Report"
	}
	out := wireway.Evaluate(input.Form.Input)
	disp := wireway.Format(out, input.Form.Input)

	pdf := gofpdf.New("P", "mm", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(input.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if input.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", input.Project)))
		pdf.Ln(6)
	}
	if input.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Prepared by: %s", input.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Conductor selection")
	sel := input.Form.Selection
	row(pdf, tr, "Phase conductor size", sizeLabel(sel.PhaseSize))
	row(pdf, tr, "Insulation temperature rating", tempLabel(sel.TempRating))
	row(pdf, tr, "Ground conductor size", sizeLabel(sel.GroundSize))
	pdf.Ln(4)

	section(pdf, "Inputs")
	for _, key := range wireway.InputKeys {
		v := wireway.FormatNumber(input.Form.Input.Get(key))
		if v == "" {
			v = wireway.Placeholder
		}
		row(pdf, tr, wireway.InputLabels[key], v)
	}
	pdf.Ln(4)

	section(pdf, "Results")
	row(pdf, tr, "Calculated ampacity", disp.CalculatedAmpacity)
	row(pdf, tr, "Total phase conductor area", disp.TotalPhaseArea)
	row(pdf, tr, "Total ground conductor area", disp.TotalGroundArea)
	row(pdf, tr, "Total fill area", disp.TotalFillArea)
	row(pdf, tr, "Wireway fill", disp.FillPercentage)
	pdf.Ln(4)

	banner(pdf, tr, disp.AmpacityBanner)
	banner(pdf, tr, disp.FillBanner)

	if input.Notes != "" {
		pdf.Ln(6)
		section(pdf, "Notes")
		pdf.MultiCell(0, 6, tr(input.Notes), "", "L", false)
	}

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func row(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.CellFormat(100, 6, tr(label), "B", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, tr(value), "B", 1, "R", false, 0, "")
}

func banner(pdf *gofpdf.Fpdf, tr func(string) string, b wireway.Banner) {
	switch b.Tone {
	case wireway.ToneSuccess:
		pdf.SetFillColor(209, 231, 221)
		pdf.SetTextColor(15, 81, 50)
	case wireway.ToneDanger:
		pdf.SetFillColor(248, 215, 218)
		pdf.SetTextColor(132, 32, 41)
	default:
		pdf.SetFillColor(226, 227, 229)
		pdf.SetTextColor(65, 70, 75)
	}
	msg := b.Message
	if msg == wireway.Placeholder {
		msg = "Incomplete input: results undetermined"
	}
	pdf.CellFormat(0, 8, tr(msg), "", 1, "L", true, 0, "")
	pdf.Ln(2)
	pdf.SetTextColor(0, 0, 0)
}

func sizeLabel(s tables.Size) string {
	if s == "" {
		return wireway.Placeholder
	}
	return s.Label()
}

func tempLabel(t tables.TempRating) string {
	if t == 0 {
		return wireway.Placeholder
	}
	return fmt.Sprintf("%d°C", int(t))
}
