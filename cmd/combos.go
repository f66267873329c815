package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gogate/internal/astm"
	"github.com/spf13/cobra"
)

var (
	combosDead float64
	combosLive float64
	combosWind float64
)

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "Evaluate the load combination table for given loads",
	Long: `Evaluate every service and LRFD load combination for the given
unfactored dead, live and wind loads and report the governing combination.

Inputs and outputs share units; distributed loads in N/mm are typical.

Examples:
  # Dead 10, live 0, wind 5 (N/mm)
  gogate combos --dead 10 --wind 5

  # All three load types
  gogate combos -d 10 -l 4 -w 5`,
	Run: runCombos,
}

func init() {
	rootCmd.AddCommand(combosCmd)

	combosCmd.Flags().Float64VarP(&combosDead, "dead", "d", 0, "Dead load [required]")
	combosCmd.Flags().Float64VarP(&combosLive, "live", "l", 0, "Live load")
	combosCmd.Flags().Float64VarP(&combosWind, "wind", "w", 0, "Wind load")

	combosCmd.MarkFlagRequired("dead")
}

func runCombos(cmd *cobra.Command, args []string) {
	governing, combo := astm.Governing(combosDead, combosLive, combosWind)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     LOAD COMBINATIONS - ASCE 7 STRENGTH DESIGN")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Dead: %.3f   Live: %.3f   Wind: %.3f\n\n", combosDead, combosLive, combosWind)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Combination\tFormula\tValue\t\n")
	for _, lc := range astm.LoadCombinations {
		marker := ""
		if lc.Label == combo.Label {
			marker = "◄ governing"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.3f\t%s\n", lc.Label, lc.Description, lc.Factored(combosDead, combosLive, combosWind), marker)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  Governing: %s (%s) = %.3f\n", combo.Label, combo.Description, governing)
	fmt.Println()
}
