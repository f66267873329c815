package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alexiusacademia/gogate/internal/gate"
)

// WriteCalculationSummary writes the plain-text calculation summary: inputs,
// geometry, loads, counterweight, track reactions and adequacy checks.
func WriteCalculationSummary(design *gate.Design, filename string) error {
	if err := ensureDir(filename); err != nil {
		return err
	}

	var b strings.Builder
	r := design.Results

	line := strings.Repeat("=", 64)
	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, "CANTILEVER SLIDE GATE - STRUCTURAL CALCULATION SUMMARY")
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Date: %s\n\n", time.Now().Format("2006-01-02"))

	fmt.Fprintln(&b, "DESIGN REQUIREMENTS")
	fmt.Fprintf(&b, "  Gate opening:       %.0f x %.0f mm\n", design.Requirements.GateWidthMM, design.Requirements.GateHeightMM)
	fmt.Fprintf(&b, "  Wind speed:         %.1f m/s\n", design.Requirements.WindSpeedMS)
	fmt.Fprintf(&b, "  Steel grade:        %s\n", design.Steel.Grade)
	fmt.Fprintf(&b, "  Infill type:        %s\n\n", design.Requirements.InfillType)

	fmt.Fprintln(&b, "GEOMETRY")
	fmt.Fprintf(&b, "  Cantilever length:  %.0f mm\n", design.Geometry.CantileverLengthMM)
	fmt.Fprintf(&b, "  Track length:       %.0f mm\n", design.Geometry.TrackLengthMM)
	fmt.Fprintf(&b, "  Counterweight arm:  %.0f mm\n", design.Geometry.CounterweightArmMM)
	fmt.Fprintf(&b, "  Frame section:      %s\n\n", design.FrameSection.Name)

	fmt.Fprintln(&b, "LOADS")
	fmt.Fprintf(&b, "  Gate weight:        %.1f N (%.1f kg)\n", r.GateWeightN, r.GateWeightKg)
	fmt.Fprintf(&b, "  Wind load:          %.1f N\n", r.WindLoadN)
	fmt.Fprintf(&b, "  Dead moment:        %.3e N-mm\n", r.DeadMomentNmm)
	fmt.Fprintf(&b, "  Wind moment:        %.3e N-mm\n", r.WindMomentNmm)
	fmt.Fprintf(&b, "  Overturning moment: %.3e N-mm\n", r.OverturningNmm)
	fmt.Fprintf(&b, "  Governing combo:    %s (%.3f N/mm)\n\n", r.GoverningCombination, r.GoverningLoadNPerMM)

	fmt.Fprintln(&b, "COUNTERWEIGHT AND TRACK")
	fmt.Fprintf(&b, "  Counterweight:      %.1f N (%.1f kg)\n", r.CounterweightN, r.CounterweightKg)
	fmt.Fprintf(&b, "  Front wheel load:   %.1f N\n", r.FrontWheelN)
	fmt.Fprintf(&b, "  Rear wheel load:    %.1f N\n", r.RearWheelN)
	fmt.Fprintf(&b, "  Horizontal load:    %.1f N\n\n", r.HorizontalN)

	fmt.Fprintln(&b, "ADEQUACY CHECKS")
	fmt.Fprintf(&b, "  Beam stress:        %.1f MPa (limit 200 MPa)\n", r.BeamStressMPa)
	fmt.Fprintf(&b, "  Tip deflection:     %.2f mm (limit 50 mm)\n", r.DeflectionMM)
	fmt.Fprintf(&b, "  Stress ratio:       %.3f\n", r.StressRatio)
	if design.Analysis != nil {
		fmt.Fprintf(&b, "  Frame max moment:   %.3e N-mm\n", design.Analysis.MaxMomentNmm)
		fmt.Fprintf(&b, "  Frame max shear:    %.1f N\n", design.Analysis.MaxShearN)
		fmt.Fprintf(&b, "  Frame deflection:   %.2f mm (limit %.2f mm)\n",
			design.Analysis.MaxDeflectionMM, design.Analysis.DeflectionLimitMM)
	}
	fmt.Fprintf(&b, "  Overall:            %s\n", verdict(design.IsAdequate))
	for _, note := range design.DesignNotes {
		fmt.Fprintf(&b, "  Note: %s\n", note)
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, line)

	return os.WriteFile(filename, []byte(b.String()), 0644)
}

// WriteSpecifications writes the specifications sheet: material grade data and
// the bill of materials.
func WriteSpecifications(design *gate.Design, filename string) error {
	if err := ensureDir(filename); err != nil {
		return err
	}

	var b strings.Builder
	line := strings.Repeat("=", 64)
	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, "CANTILEVER SLIDE GATE - SPECIFICATIONS")
	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "MATERIAL PROPERTIES")
	fmt.Fprintf(&b, "  Grade:              %s\n", design.Steel.Grade)
	fmt.Fprintf(&b, "  Yield strength:     %.0f MPa\n", design.Steel.YieldStrengthMPa())
	fmt.Fprintf(&b, "  Ultimate strength:  %.0f MPa\n", design.Steel.UltimateStrengthMPa())
	fmt.Fprintf(&b, "  Elastic modulus:    %.0f GPa\n", design.Steel.ElasticModulusGPa())
	fmt.Fprintf(&b, "  Density:            %.0f kg/m3\n\n", design.Steel.DensityKgM3)

	fmt.Fprintln(&b, "FRAME SECTION")
	s := design.FrameSection
	fmt.Fprintf(&b, "  Designation:        %s\n", s.Name)
	fmt.Fprintf(&b, "  Area:               %.0f mm2\n", s.AreaMM2)
	fmt.Fprintf(&b, "  Ix:                 %.0f mm4\n", s.IxMM4)
	fmt.Fprintf(&b, "  Sx:                 %.0f mm3\n\n", s.SxMM3)

	fmt.Fprintln(&b, "BILL OF MATERIALS")
	for _, item := range design.MaterialList {
		fmt.Fprintf(&b, "  %-18s %-16s", item.Item, item.Size)
		if item.LengthMM > 0 {
			fmt.Fprintf(&b, " L=%.0f mm", item.LengthMM)
		}
		fmt.Fprintf(&b, "  %.1f kg  (%s)\n", item.WeightKg, item.Material)
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, line)

	return os.WriteFile(filename, []byte(b.String()), 0644)
}

func verdict(adequate bool) string {
	if adequate {
		return "ADEQUATE"
	}
	return "NOT ADEQUATE"
}
