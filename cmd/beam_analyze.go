package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/alexiusacademia/gogate/internal/beam"
	"github.com/alexiusacademia/gogate/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	beamLength  float64
	beamUDL     float64
	beamPoints  []string
	beamSection string
	beamGrade   string
	beamDiagram bool
	beamOutput  string
	beamJSON    bool
)

var beamAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a cantilever beam",
	Long: `Compute the bending moment, shear and deflection distributions of a
cantilever beam under a uniform distributed load and optional point loads,
and check stress and deflection adequacy.

Examples:
  # 8 m cantilever, 1.5 N/mm distributed load, HSS 150x150x6
  gogate beam analyze --length 8000 --udl 1.5 --section 150x150x6

  # With point loads and terminal diagrams
  gogate beam analyze -L 8000 -u 1.5 -s 150x150x6 -p 6400:2000 -p 7200:1000 --diagram

  # Export diagrams to files
  gogate beam analyze -L 8000 -u 1.5 -s 150x150x6 --output diagrams/`,
	Run: runBeamAnalyze,
}

func init() {
	beamCmd.AddCommand(beamAnalyzeCmd)

	beamAnalyzeCmd.Flags().Float64VarP(&beamLength, "length", "L", 0, "Beam length (mm) [required]")
	beamAnalyzeCmd.Flags().Float64VarP(&beamUDL, "udl", "u", 0, "Uniform distributed load (N/mm)")
	beamAnalyzeCmd.Flags().StringArrayVarP(&beamPoints, "point", "p", nil, "Point load as position:load (mm:N), repeatable")
	beamAnalyzeCmd.Flags().StringVarP(&beamSection, "section", "s", "", "HSS section as DxWxT (mm) [required]")
	beamAnalyzeCmd.Flags().StringVarP(&beamGrade, "grade", "g", "A572_50", "Steel grade")
	beamAnalyzeCmd.Flags().BoolVar(&beamDiagram, "diagram", false, "Draw terminal diagrams")
	beamAnalyzeCmd.Flags().StringVarP(&beamOutput, "output", "o", "", "Directory for diagram image export")
	beamAnalyzeCmd.Flags().BoolVar(&beamJSON, "json", false, "Print the full result as JSON")

	beamAnalyzeCmd.MarkFlagRequired("length")
	beamAnalyzeCmd.MarkFlagRequired("section")
}

func runBeamAnalyze(cmd *cobra.Command, args []string) {
	sec, err := parseSectionSpec(beamSection)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	pointLoads, err := parsePointLoads(beamPoints)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	analyzer, err := beam.NewAnalyzer(beamGrade)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := analyzer.Analyze(beamLength, beamUDL, pointLoads, sec)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if beamJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(string(data))
		return
	}

	printBeamResult(result)

	if beamDiagram {
		fmt.Println(diagram.DrawLoadingDiagram(beamLength, beamUDL, pointLoads))
		fmt.Println(diagram.DrawMomentGraph(result))
		fmt.Println(diagram.DrawShearGraph(result))
		fmt.Println(diagram.DrawDeflectionGraph(result))
	}

	if beamOutput != "" {
		exports := []struct {
			name string
			fn   func(*beam.AnalysisResult, string) error
		}{
			{"moment.png", diagram.ExportMomentDiagram},
			{"shear.png", diagram.ExportShearDiagram},
			{"deflection.png", diagram.ExportDeflectionDiagram},
		}
		for _, e := range exports {
			path := filepath.Join(beamOutput, e.name)
			if err := e.fn(result, path); err != nil {
				fmt.Printf("Error exporting %s: %v\n", e.name, err)
				return
			}
			fmt.Printf("  Exported %s\n", path)
		}
	}
}

func printBeamResult(result *beam.AnalysisResult) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CANTILEVER BEAM ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section:\t%s\n", result.SectionName)
	fmt.Fprintf(w, "  Material:\t%s\n", result.MaterialGrade)
	fmt.Fprintf(w, "  Yield Strength:\t%.0f MPa\n", result.YieldStrengthPa/1e6)
	fmt.Fprintf(w, "  Safety Factor:\t%.1f\n", result.SafetyFactor)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max Moment:\t%.4e N·mm\n", result.MaxMomentNmm)
	fmt.Fprintf(w, "  Max Shear:\t%.1f N\n", result.MaxShearN)
	fmt.Fprintf(w, "  Max Stress:\t%.2f MPa\n", result.MaxStressPa/1e6)
	fmt.Fprintf(w, "  Allowable Stress:\t%.2f MPa\n", result.AllowableStressPa/1e6)
	fmt.Fprintf(w, "  Stress Ratio:\t%.3f\n", result.StressRatio)
	fmt.Fprintf(w, "  Max Deflection:\t%.3f mm\n", result.MaxDeflectionMM)
	fmt.Fprintf(w, "  Deflection Limit:\t%.3f mm\n", result.DeflectionLimitMM)
	fmt.Fprintf(w, "  Deflection Ratio:\t%.3f\n", result.DeflectionRatio)
	w.Flush()
	fmt.Println()

	if result.SafetyAdequate {
		fmt.Println("  ✓ SECTION IS ADEQUATE")
	} else {
		fmt.Println("  ✗ SECTION IS NOT ADEQUATE")
	}
	fmt.Println()
}
