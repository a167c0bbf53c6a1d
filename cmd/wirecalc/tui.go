package main

import (
	"strings"

	"Wirefill/internal/calc/tables"
	"Wirefill/internal/calc/wireway"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive calculator that recomputes on every keystroke",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := tea.NewProgram(newModel()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

var selectionLabels = map[string]string{
	wireway.KeyPhaseSize:  "Phase conductor size",
	wireway.KeyTempRating: "Temperature rating (60/75/90)",
	wireway.KeyGroundSize: "Ground conductor size",
}

// model holds one text input per form field. The selection fields come
// first, followed by the numeric fields in display order.
type model struct {
	keys    []string
	inputs  []textinput.Model
	focus   int
	prev    wireway.Selection
	form    wireway.Form
	outcome wireway.Outcome
	display wireway.Display
}

func newModel() *model {
	keys := append([]string{wireway.KeyPhaseSize, wireway.KeyTempRating, wireway.KeyGroundSize}, wireway.InputKeys...)
	m := &model{keys: keys, inputs: make([]textinput.Model, len(keys))}
	for i := range keys {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = wireway.Placeholder
		ti.CharLimit = 16
		ti.Width = 16
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	m.recalc()
	return m
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down", "enter":
		return m, m.move(1)
	case "shift+tab", "up":
		return m, m.move(-1)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recalc()
	return m, cmd
}

func (m *model) move(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m *model) value(key string) string {
	for i, k := range m.keys {
		if k == key {
			return m.inputs[i].Value()
		}
	}
	return ""
}

func (m *model) readForm() wireway.Form {
	var f wireway.Form
	if s, ok := tables.ParseSize(strings.TrimSpace(m.value(wireway.KeyPhaseSize))); ok {
		f.Selection.PhaseSize = s
	}
	if t, ok := tables.ParseTempRating(strings.TrimSpace(m.value(wireway.KeyTempRating))); ok {
		f.Selection.TempRating = t
	}
	if s, ok := tables.ParseSize(strings.TrimSpace(m.value(wireway.KeyGroundSize))); ok {
		f.Selection.GroundSize = s
	}
	for _, key := range wireway.InputKeys {
		f.Input.Set(key, wireway.ParseNumber(m.value(key)))
	}
	return f
}

// recalc re-reads the whole snapshot, refreshes table-derived fields when a
// selection changed, and re-evaluates.
func (m *model) recalc() {
	read := m.readForm()
	applied := read.ApplySelection(m.prev)
	for i, key := range m.keys {
		before, after := read.Input.Get(key), applied.Input.Get(key)
		if after != nil && (before == nil || *before != *after) {
			m.inputs[i].SetValue(wireway.FormatNumber(after))
		}
	}
	m.prev = read.Selection
	m.form = applied
	m.outcome = wireway.Evaluate(applied.Input)
	m.display = wireway.Format(m.outcome, applied.Input)
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Wireway sizing") + "\n")
	for i, key := range m.keys {
		label, ok := selectionLabels[key]
		if !ok {
			label = wireway.InputLabels[key]
		}
		style := labelStyle
		if i == m.focus {
			style = focusStyle
		}
		b.WriteString(style.Render(label) + m.inputs[i].View() + "\n")
	}
	b.WriteString("\n")
	b.WriteString(renderResult(m.display))
	b.WriteString(helpStyle.Render("tab/↓ next • shift+tab/↑ previous • esc quit"))
	return b.String()
}
