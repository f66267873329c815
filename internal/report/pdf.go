package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gogate/internal/gate"
)

// WritePDF writes the one-page design report.
func WritePDF(design *gate.Design, filename string) error {
	if err := ensureDir(filename); err != nil {
		return err
	}
	r := design.Results

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Cantilever Slide Gate - Structural Design Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Gate opening: %.0f x %.0f mm", design.Requirements.GateWidthMM, design.Requirements.GateHeightMM))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Steel grade: %s    Frame section: %s", design.Steel.Grade, design.FrameSection.Name))
	pdf.Ln(10)

	pdfSection(pdf, "Loads")
	pdfRow(pdf, "Gate weight", fmt.Sprintf("%.1f N (%.1f kg)", r.GateWeightN, r.GateWeightKg))
	pdfRow(pdf, "Wind load", fmt.Sprintf("%.1f N", r.WindLoadN))
	pdfRow(pdf, "Overturning moment", fmt.Sprintf("%.3e N-mm", r.OverturningNmm))
	pdfRow(pdf, "Governing combination", fmt.Sprintf("%s (%.3f N/mm)", r.GoverningCombination, r.GoverningLoadNPerMM))
	pdf.Ln(4)

	pdfSection(pdf, "Counterweight and Track")
	pdfRow(pdf, "Counterweight", fmt.Sprintf("%.1f N (%.1f kg)", r.CounterweightN, r.CounterweightKg))
	pdfRow(pdf, "Front wheel load", fmt.Sprintf("%.1f N", r.FrontWheelN))
	pdfRow(pdf, "Rear wheel load", fmt.Sprintf("%.1f N", r.RearWheelN))
	pdfRow(pdf, "Horizontal track load", fmt.Sprintf("%.1f N", r.HorizontalN))
	pdf.Ln(4)

	pdfSection(pdf, "Adequacy Checks")
	pdfRow(pdf, "Beam stress", fmt.Sprintf("%.1f MPa (limit 200 MPa)", r.BeamStressMPa))
	pdfRow(pdf, "Tip deflection", fmt.Sprintf("%.2f mm (limit 50 mm)", r.DeflectionMM))
	if a := design.Analysis; a != nil {
		pdfRow(pdf, "Frame max moment", fmt.Sprintf("%.3e N-mm", a.MaxMomentNmm))
		pdfRow(pdf, "Frame deflection", fmt.Sprintf("%.2f mm (limit %.2f mm)", a.MaxDeflectionMM, a.DeflectionLimitMM))
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Overall: %s", verdict(design.IsAdequate)))
	pdf.Ln(10)

	if len(design.DesignNotes) > 0 {
		pdf.SetFont("Helvetica", "I", 10)
		for _, note := range design.DesignNotes {
			pdf.MultiCell(0, 5, "Note: "+note, "", "L", false)
		}
	}

	return pdf.OutputFileAndClose(filename)
}

func pdfSection(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func pdfRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.Cell(60, 5, label)
	pdf.Cell(0, 5, value)
	pdf.Ln(5)
}
