// Command wirecalc is a terminal front end for the wireway sizing engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "wirecalc",
	Short: "Wireway conductor ampacity and fill calculator",
	Long: `wirecalc checks a feeder's derated ampacity against its OCPD trip setting
and the wireway fill against the 20% limit.

Selecting a phase size, temperature rating or ground size fills the matching
ampacity and diameter fields from the reference tables; explicit values win.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
