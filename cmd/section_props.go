package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gogate/internal/astm"
	"github.com/alexiusacademia/gogate/internal/section"
	"github.com/spf13/cobra"
)

var sectionPropsCmd = &cobra.Command{
	Use:   "props [DxWxT]",
	Short: "Calculate HSS section properties",
	Long: `Calculate the cross-sectional properties of a rectangular HSS
section from its depth, width and wall thickness (mm). With no argument the
full standard catalog is listed.

Examples:
  gogate section props 150x150x6
  gogate section props 200x100x8
  gogate section props`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSectionProps,
}

func init() {
	sectionCmd.AddCommand(sectionPropsCmd)
}

func runSectionProps(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		printCatalog()
		return
	}

	s, err := parseSectionSpec(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     SECTION PROPERTIES - %s\n", s.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Depth:\t%.0f mm\n", s.DepthMM)
	fmt.Fprintf(w, "  Width:\t%.0f mm\n", s.WidthMM)
	fmt.Fprintf(w, "  Wall Thickness:\t%.1f mm\n", s.ThicknessMM)
	fmt.Fprintf(w, "  Area (A):\t%.0f mm²\n", s.AreaMM2)
	fmt.Fprintf(w, "  Ix:\t%.4e mm⁴\n", s.IxMM4)
	fmt.Fprintf(w, "  Iy:\t%.4e mm⁴\n", s.IyMM4)
	fmt.Fprintf(w, "  Sx:\t%.4e mm³\n", s.SxMM3)
	fmt.Fprintf(w, "  Sy:\t%.4e mm³\n", s.SyMM3)
	fmt.Fprintf(w, "  rx:\t%.1f mm\n", s.RxMM)
	fmt.Fprintf(w, "  ry:\t%.1f mm\n", s.RyMM)
	fmt.Fprintf(w, "  Unit Weight:\t%.1f kg/m\n", s.WeightKgPerM(astm.SteelDensityKgM3))
	w.Flush()
	fmt.Println()
}

func printCatalog() {
	fmt.Println()
	fmt.Println("STANDARD HSS CATALOG")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section\tA (mm²)\tIx (mm⁴)\tSx (mm³)\tkg/m\n")
	for _, s := range section.StandardCatalog() {
		fmt.Fprintf(w, "  %s\t%.0f\t%.3e\t%.3e\t%.1f\n", s.Name, s.AreaMM2, s.IxMM4, s.SxMM3, s.WeightKgPerM(astm.SteelDensityKgM3))
	}
	w.Flush()
	fmt.Println()
}
