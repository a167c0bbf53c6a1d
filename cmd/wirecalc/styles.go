package main

import (
	"github.com/charmbracelet/lipgloss"

	"Wirefill/internal/calc/wireway"
)

var (
	primary = lipgloss.Color("#7C3AED")
	success = lipgloss.Color("#10B981")
	danger  = lipgloss.Color("#EF4444")
	muted   = lipgloss.Color("#6B7280")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(muted).Width(34)
	valueStyle   = lipgloss.NewStyle().Bold(true)
	focusStyle   = lipgloss.NewStyle().Foreground(primary).Width(34)
	helpStyle    = lipgloss.NewStyle().Foreground(muted).MarginTop(1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(primary).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	bannerStyles = map[wireway.Tone]lipgloss.Style{
		wireway.ToneSuccess:   lipgloss.NewStyle().Foreground(success).Bold(true),
		wireway.ToneDanger:    lipgloss.NewStyle().Foreground(danger).Bold(true),
		wireway.ToneSecondary: lipgloss.NewStyle().Foreground(muted),
	}
)

func renderBanner(b wireway.Banner) string {
	msg := b.Message
	if msg == wireway.Placeholder {
		msg = "Incomplete input: results undetermined"
	}
	return bannerStyles[b.Tone].Render(msg)
}
