package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gogate/internal/astm"
	"github.com/alexiusacademia/gogate/internal/beam"
	"github.com/alexiusacademia/gogate/internal/section"
	"github.com/spf13/cobra"
)

var (
	selectLength float64
	selectUDL    float64
	selectPoints []string
	selectGrade  string
)

var sectionSelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select the lightest adequate catalog section",
	Long: `Analyze every section in the standard catalog for the given
cantilever loading and report the lightest one that passes both the stress
and deflection checks.

Examples:
  # 4 m cantilever under 2.5 N/mm distributed load
  gogate section select --length 4000 --udl 2.5

  # With a 2 kN drive load at 3.2 m
  gogate section select --length 4000 --udl 2.5 --point 3200:2000`,
	Run: runSectionSelect,
}

func init() {
	sectionCmd.AddCommand(sectionSelectCmd)

	sectionSelectCmd.Flags().Float64VarP(&selectLength, "length", "L", 0, "Cantilever length (mm) [required]")
	sectionSelectCmd.Flags().Float64VarP(&selectUDL, "udl", "u", 0, "Uniform distributed load (N/mm)")
	sectionSelectCmd.Flags().StringArrayVarP(&selectPoints, "point", "p", nil, "Point load as position:load (mm:N), repeatable")
	sectionSelectCmd.Flags().StringVarP(&selectGrade, "grade", "g", "A572_50", "Steel grade")

	sectionSelectCmd.MarkFlagRequired("length")
}

func runSectionSelect(cmd *cobra.Command, args []string) {
	pointLoads, err := parsePointLoads(selectPoints)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	analyzer, err := beam.NewAnalyzer(selectGrade)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	best, result, err := analyzer.SelectOptimalSection(selectLength, selectUDL, pointLoads, section.StandardCatalog())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     OPTIMAL SECTION SELECTION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Selected Section:\t%s\n", best.Name)
	fmt.Fprintf(w, "  Unit Weight:\t%.1f kg/m\n", best.WeightKgPerM(astm.SteelDensityKgM3))
	fmt.Fprintf(w, "  Max Stress:\t%.1f MPa (allowable %.1f MPa)\n", result.MaxStressPa/1e6, result.AllowableStressPa/1e6)
	fmt.Fprintf(w, "  Max Deflection:\t%.2f mm (limit %.2f mm)\n", result.MaxDeflectionMM, result.DeflectionLimitMM)
	fmt.Fprintf(w, "  Stress Ratio:\t%.3f\n", result.StressRatio)
	fmt.Fprintf(w, "  Deflection Ratio:\t%.3f\n", result.DeflectionRatio)
	w.Flush()
	fmt.Println()
}
