package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gogate/internal/gate"
)

// sampleStride thins the 1000-sample analysis arrays down to at most 100 rows
// on the detailed calculations sheet.
const sampleStride = 10

// WriteExcel writes the full calculation workbook: executive summary, sampled
// detailed calculations, material properties, loading conditions and design
// criteria sheets.
func WriteExcel(design *gate.Design, filename string) error {
	if err := ensureDir(filename); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}

	if err := writeSummarySheet(f, design, headerStyle); err != nil {
		return err
	}
	if err := writeCalculationsSheet(f, design, headerStyle); err != nil {
		return err
	}
	if err := writeMaterialSheet(f, design, headerStyle); err != nil {
		return err
	}
	if err := writeLoadingSheet(f, design, headerStyle); err != nil {
		return err
	}
	if err := writeCriteriaSheet(f, design, headerStyle); err != nil {
		return err
	}

	f.DeleteSheet("Sheet1")
	return f.SaveAs(filename)
}

func writeSummarySheet(f *excelize.File, design *gate.Design, headerStyle int) error {
	const sheet = "Executive Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	r := design.Results

	rows := [][]interface{}{
		{"Cantilever Slide Gate - Structural Design Summary", ""},
		{"Date", time.Now().Format("2006-01-02")},
		{"", ""},
		{"Parameter", "Value"},
		{"Gate opening (mm)", fmt.Sprintf("%.0f x %.0f", design.Requirements.GateWidthMM, design.Requirements.GateHeightMM)},
		{"Frame section", design.FrameSection.Name},
		{"Steel grade", design.Steel.Grade},
		{"Gate weight (kg)", r.GateWeightKg},
		{"Counterweight (kg)", r.CounterweightKg},
		{"Beam stress (MPa)", r.BeamStressMPa},
		{"Tip deflection (mm)", r.DeflectionMM},
		{"Governing combination", r.GoverningCombination},
		{"Overall adequacy", verdict(design.IsAdequate)},
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A4", "B4", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "A", 28)
}

func writeCalculationsSheet(f *excelize.File, design *gate.Design, headerStyle int) error {
	const sheet = "Detailed Calculations"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := writeRows(f, sheet, [][]interface{}{
		{"Position (mm)", "Moment (N-mm)", "Shear (N)", "Deflection (mm)", "Stress (MPa)"},
	}); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", headerStyle); err != nil {
		return err
	}

	a := design.Analysis
	if a == nil {
		return nil
	}
	sx := design.FrameSection.SxMM3
	row := 2
	for i := 0; i < len(a.PositionsMM); i += sampleStride {
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{
			a.PositionsMM[i], a.MomentsNmm[i], a.ShearsN[i], a.DeflectionsMM[i], a.MomentsNmm[i] / sx,
		}); err != nil {
			return err
		}
		row++
	}
	return f.SetColWidth(sheet, "A", "E", 18)
}

func writeMaterialSheet(f *excelize.File, design *gate.Design, headerStyle int) error {
	const sheet = "Material Properties"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	s := design.Steel
	sec := design.FrameSection
	rows := [][]interface{}{
		{"Property", "Value", "Unit"},
		{"Grade", s.Grade, ""},
		{"Yield strength", s.YieldStrengthMPa(), "MPa"},
		{"Ultimate strength", s.UltimateStrengthMPa(), "MPa"},
		{"Elastic modulus", s.ElasticModulusGPa(), "GPa"},
		{"Density", s.DensityKgM3, "kg/m3"},
		{"Poisson ratio", s.PoissonRatio, ""},
		{"", "", ""},
		{"Section", sec.Name, ""},
		{"Area", sec.AreaMM2, "mm2"},
		{"Ix", sec.IxMM4, "mm4"},
		{"Sx", sec.SxMM3, "mm3"},
		{"rx", sec.RxMM, "mm"},
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "A", 22)
}

func writeLoadingSheet(f *excelize.File, design *gate.Design, headerStyle int) error {
	const sheet = "Loading Conditions"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	r := design.Results
	rows := [][]interface{}{
		{"Load", "Value", "Unit"},
		{"Gate weight", r.GateWeightN, "N"},
		{"Wind load", r.WindLoadN, "N"},
		{"Dead moment", r.DeadMomentNmm, "N-mm"},
		{"Wind moment", r.WindMomentNmm, "N-mm"},
		{"Total overturning moment", r.OverturningNmm, "N-mm"},
		{"Counterweight", r.CounterweightN, "N"},
		{"Front wheel load", r.FrontWheelN, "N"},
		{"Rear wheel load", r.RearWheelN, "N"},
		{"Horizontal track load", r.HorizontalN, "N"},
		{"Governing combination", r.GoverningCombination, ""},
		{"Governing distributed load", r.GoverningLoadNPerMM, "N/mm"},
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "A", 28)
}

func writeCriteriaSheet(f *excelize.File, design *gate.Design, headerStyle int) error {
	const sheet = "Design Criteria"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Criterion", "Limit", "Actual", "Status"},
		{"Beam stress (MPa)", 200.0, design.Results.BeamStressMPa, passFail(design.Results.BeamStressMPa <= 200)},
		{"Tip deflection (mm)", 50.0, design.Results.DeflectionMM, passFail(design.Results.DeflectionMM <= 50)},
	}
	if design.Analysis != nil {
		a := design.Analysis
		rows = append(rows,
			[]interface{}{"Frame stress (MPa)", a.AllowableStressPa / 1e6, a.MaxStressPa / 1e6, passFail(a.StressRatio <= 1)},
			[]interface{}{"Frame deflection (mm)", a.DeflectionLimitMM, a.MaxDeflectionMM, passFail(a.DeflectionRatio <= 1)},
		)
	}
	for _, note := range design.DesignNotes {
		rows = append(rows, []interface{}{"Note", note, "", ""})
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", headerStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "B", 24)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
