package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"Wirefill/internal/calc/tables"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the conductor ampacity and diameter tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTables(os.Stdout, jsonOutput)
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func runTables(w io.Writer, asJSON bool) error {
	rows := tables.Rows()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(muted)).
		Headers("Size", "60°C (A)", "75°C (A)", "90°C (A)", "Diameter (in)").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range rows {
		t.Row(
			r.Size.Label(),
			fmt.Sprintf("%.0f", r.Ampacity60),
			fmt.Sprintf("%.0f", r.Ampacity75),
			fmt.Sprintf("%.0f", r.Ampacity90),
			fmt.Sprintf("%.3f", r.DiameterIn),
		)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
