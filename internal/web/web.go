package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"Wirefill/internal/calc/tables"
	"Wirefill/internal/calc/wireway"
	"Wirefill/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const psLine = "PS - Handcrafted this website from scratch, no templates, just caffeine and code. I'd love to hear what you think, so feel free to drop me a note."

// Site is the owner-facing content of the landing page.
type Site struct {
	Owner        string
	Tagline      string
	Links        []config.Link
	NotesEnabled bool
}

type Handler struct {
	Site  Site
	pages map[string]*template.Template
}

// NewHandler parses the embedded page templates.
func NewHandler(site Site) (*Handler, error) {
	h := &Handler{Site: site, pages: make(map[string]*template.Template)}
	for _, name := range []string{"index.html", "calculator.html"} {
		t, err := template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		h.pages[name] = t
	}
	return h, nil
}

type indexData struct {
	Title string
	Site  Site
	PS    string
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type field struct {
	Key   string
	Label string
	Value string
}

type calculatorData struct {
	Title       string
	Owner       string
	PhaseSizes  []option
	TempRatings []option
	GroundSizes []option
	Selection   wireway.Selection
	Fields      []field
	Pending     bool
	Display     wireway.Display
	ExportURL   string
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	h.render(w, "index.html", indexData{Title: h.Site.Owner, Site: h.Site, PS: psLine})
}

// Calculator renders the sizing page for the snapshot in the query string.
// Every change on the page re-submits the whole form.
func (h *Handler) Calculator(w http.ResponseWriter, r *http.Request) {
	form, prev := wireway.ParseValues(r.URL.Query())
	form = form.ApplySelection(prev)
	h.render(w, "calculator.html", h.calculatorData(form))
}

func (h *Handler) calculatorData(form wireway.Form) calculatorData {
	out := wireway.Evaluate(form.Input)
	data := calculatorData{
		Title:       "Wireway Sizing Calculator",
		Owner:       h.Site.Owner,
		PhaseSizes:  sizeOptions(form.Selection.PhaseSize),
		TempRatings: tempOptions(form.Selection.TempRating),
		GroundSizes: sizeOptions(form.Selection.GroundSize),
		Selection:   form.Selection,
		Pending:     out.Pending(),
		Display:     wireway.Format(out, form.Input),
		ExportURL:   "/api/wireway/report.pdf?" + form.Values().Encode(),
	}
	for _, key := range wireway.InputKeys {
		data.Fields = append(data.Fields, field{
			Key:   key,
			Label: wireway.InputLabels[key],
			Value: wireway.FormatNumber(form.Input.Get(key)),
		})
	}
	return data
}

func sizeOptions(selected tables.Size) []option {
	sizes := tables.Sizes()
	opts := make([]option, 0, len(sizes))
	for _, s := range sizes {
		opts = append(opts, option{Value: string(s), Label: s.Label(), Selected: s == selected})
	}
	return opts
}

func tempOptions(selected tables.TempRating) []option {
	opts := make([]option, 0, len(tables.TempRatings))
	for _, t := range tables.TempRatings {
		opts = append(opts, option{Value: t.String(), Label: t.String() + "°C", Selected: t == selected})
	}
	return opts
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := h.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Error("Template render failed", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
