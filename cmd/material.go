package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gogate/internal/astm"
	"github.com/spf13/cobra"
)

var materialApplication string

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "ASTM steel grade table and selection checks",
	Long: `List the supported ASTM structural steel grades or show the full
material properties of one grade, with advisory selection checks.

Examples:
  # List all supported grades
  gogate material list

  # Show A572 Grade 50 properties
  gogate material show A572_50

  # Check a grade for an exposed (weathering) application
  gogate material show A36 --application weathering`,
}

var materialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the supported steel grades",
	Run:   runMaterialList,
}

var materialShowCmd = &cobra.Command{
	Use:   "show <grade>",
	Short: "Show material properties for a steel grade",
	Args:  cobra.ExactArgs(1),
	Run:   runMaterialShow,
}

func init() {
	rootCmd.AddCommand(materialCmd)
	materialCmd.AddCommand(materialListCmd)
	materialCmd.AddCommand(materialShowCmd)

	materialShowCmd.Flags().StringVar(&materialApplication, "application", "",
		"Application context for selection checks (weathering, high_strength)")
}

func runMaterialList(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("SUPPORTED ASTM STEEL GRADES")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Grade\tFy (MPa)\tFu (MPa)\tDescription\n")
	for _, grade := range astm.Grades() {
		props, _ := astm.Lookup(string(grade))
		fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%s\n",
			grade, props.YieldStrengthMPa(), props.UltimateStrengthMPa(), astm.GradeDescriptions[grade])
	}
	w.Flush()
	fmt.Println()
}

func runMaterialShow(cmd *cobra.Command, args []string) {
	props, err := astm.Lookup(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", props.Grade)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Yield Strength (Fy):\t%.0f MPa\n", props.YieldStrengthMPa())
	fmt.Fprintf(w, "  Ultimate Strength (Fu):\t%.0f MPa\n", props.UltimateStrengthMPa())
	fmt.Fprintf(w, "  Elastic Modulus (E):\t%.0f GPa\n", props.ElasticModulusGPa())
	fmt.Fprintf(w, "  Density:\t%.0f kg/m³\n", props.DensityKgM3)
	fmt.Fprintf(w, "  Poisson Ratio:\t%.2f\n", props.PoissonRatio)
	fmt.Fprintf(w, "  Thermal Expansion:\t%.1e /°C\n", props.ThermalExpansionPerC)
	w.Flush()
	fmt.Println()

	report, err := astm.ValidateSelection(args[0], materialApplication)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(report.Warnings) > 0 || len(report.Recommendations) > 0 {
		fmt.Println("SELECTION CHECKS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, warning := range report.Warnings {
			fmt.Printf("  ⚠ %s\n", warning)
		}
		for _, rec := range report.Recommendations {
			fmt.Printf("  → %s\n", rec)
		}
		fmt.Println()
	}
}
