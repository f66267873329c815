package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/alexiusacademia/gogate/internal/config"
	"github.com/alexiusacademia/gogate/internal/diagram"
	"github.com/alexiusacademia/gogate/internal/gate"
	"github.com/alexiusacademia/gogate/internal/report"
	"github.com/spf13/cobra"
)

var (
	designWidth  float64
	designHeight float64
	designWind   float64
	designGrade  string
	designInfill string
	designOut    string
	designConfig string
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Run the complete gate design pipeline",
	Long: `Design a complete cantilever slide gate: geometry derivation, gate
weight and wind loads, governing load combination, counterweight and track
sizing, detailed frame verification, and the bill of materials.

Report and diagram files are written to the output directory. Defaults for
wind speed, steel grade and infill come from config.json when flags are not
given.

Examples:
  # 6 m x 2 m gate with defaults
  gogate design --width 6000 --height 2000

  # Full inputs with report output
  gogate design -W 6000 -H 2000 --wind 40 --grade A588 --infill solid_plate --out work/gate1`,
	Run: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	designCmd.Flags().Float64VarP(&designWidth, "width", "W", 0, "Gate opening width (mm) [required]")
	designCmd.Flags().Float64VarP(&designHeight, "height", "H", 0, "Gate opening height (mm) [required]")
	designCmd.Flags().Float64Var(&designWind, "wind", 0, "Design wind speed (m/s)")
	designCmd.Flags().StringVarP(&designGrade, "grade", "g", "", "Steel grade")
	designCmd.Flags().StringVarP(&designInfill, "infill", "i", "", "Infill type (chain_link, expanded_metal, solid_plate)")
	designCmd.Flags().StringVarP(&designOut, "out", "o", "gate_design", "Output directory for reports and diagrams")
	designCmd.Flags().StringVar(&designConfig, "config", "config.json", "Configuration file")

	designCmd.MarkFlagRequired("width")
	designCmd.MarkFlagRequired("height")
}

func runDesign(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(designConfig)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}
	if designWind == 0 {
		designWind = cfg.DesignParameters.WindSpeedMS
	}
	if designGrade == "" {
		designGrade = cfg.DefaultMaterials.SteelGrade
	}
	if designInfill == "" {
		designInfill = cfg.DefaultMaterials.InfillType
	}

	designer := gate.NewDesigner()
	design, err := designer.CreateDesign(gate.Requirements{
		GateWidthMM:  designWidth,
		GateHeightMM: designHeight,
		WindSpeedMS:  designWind,
		SteelGrade:   designGrade,
		InfillType:   designInfill,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printDesignSummary(design)

	if err := writeDesignOutputs(design, cfg, designOut); err != nil {
		fmt.Printf("Error writing outputs: %v\n", err)
		return
	}
	fmt.Printf("  Reports written to %s\n\n", designOut)
}

func printDesignSummary(design *gate.Design) {
	r := design.Results

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CANTILEVER SLIDE GATE DESIGN")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Gate Opening:\t%.0f x %.0f mm\n", design.Requirements.GateWidthMM, design.Requirements.GateHeightMM)
	fmt.Fprintf(w, "  Cantilever Length:\t%.0f mm\n", design.Geometry.CantileverLengthMM)
	fmt.Fprintf(w, "  Track Length:\t%.0f mm\n", design.Geometry.TrackLengthMM)
	fmt.Fprintf(w, "  Counterweight Arm:\t%.0f mm\n", design.Geometry.CounterweightArmMM)
	fmt.Fprintf(w, "  Frame Section:\t%s\n", design.FrameSection.Name)
	fmt.Fprintf(w, "  Steel Grade:\t%s\n", design.Steel.Grade)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Gate Weight:\t%.1f kg\n", r.GateWeightKg)
	fmt.Fprintf(w, "  Wind Load:\t%.1f N\n", r.WindLoadN)
	fmt.Fprintf(w, "  Overturning Moment:\t%.4e N·mm\n", r.OverturningNmm)
	fmt.Fprintf(w, "  Counterweight:\t%.1f kg\n", r.CounterweightKg)
	fmt.Fprintf(w, "  Front Wheel Load:\t%.1f N\n", r.FrontWheelN)
	fmt.Fprintf(w, "  Rear Wheel Load:\t%.1f N\n", r.RearWheelN)
	fmt.Fprintf(w, "  Governing Combo:\t%s (%.3f N/mm)\n", r.GoverningCombination, r.GoverningLoadNPerMM)
	fmt.Fprintf(w, "  Beam Stress:\t%.1f MPa\n", r.BeamStressMPa)
	fmt.Fprintf(w, "  Tip Deflection:\t%.2f mm\n", r.DeflectionMM)
	w.Flush()
	fmt.Println()

	if design.IsAdequate {
		fmt.Println("  ✓ DESIGN IS ADEQUATE")
	} else {
		fmt.Println("  ✗ DESIGN IS NOT ADEQUATE")
	}
	for _, note := range design.DesignNotes {
		fmt.Printf("  Note: %s\n", note)
	}
	fmt.Println()

	fmt.Println("BILL OF MATERIALS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, item := range design.MaterialList {
		fmt.Fprintf(w, "  %s\t%s\t%.1f kg\t%s\n", item.Item, item.Size, item.WeightKg, item.Material)
	}
	w.Flush()
	fmt.Println()
}

func writeDesignOutputs(design *gate.Design, cfg config.Config, outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	if err := report.WriteJSON(design, filepath.Join(outDir, "design.json")); err != nil {
		return err
	}
	if cfg.OutputSettings.GenerateCalculations {
		if err := report.WriteCalculationSummary(design, filepath.Join(outDir, "calculation_summary.txt")); err != nil {
			return err
		}
		if err := report.WriteExcel(design, filepath.Join(outDir, "calculations.xlsx")); err != nil {
			return err
		}
		if err := report.WritePDF(design, filepath.Join(outDir, "report.pdf")); err != nil {
			return err
		}
	}
	if cfg.OutputSettings.GenerateSpecifications {
		if err := report.WriteSpecifications(design, filepath.Join(outDir, "specifications.txt")); err != nil {
			return err
		}
	}
	if cfg.OutputSettings.GenerateDrawings {
		if err := diagram.ExportGateElevation(design.Geometry, filepath.Join(outDir, "elevation.png")); err != nil {
			return err
		}
		if design.Analysis != nil {
			if err := diagram.ExportMomentDiagram(design.Analysis, filepath.Join(outDir, "moment.png")); err != nil {
				return err
			}
			if err := diagram.ExportDeflectionDiagram(design.Analysis, filepath.Join(outDir, "deflection.png")); err != nil {
				return err
			}
		}
	}

	log.Printf("design outputs written to %s", outDir)
	return nil
}
