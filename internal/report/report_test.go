package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gogate/internal/gate"
)

func testDesign(t *testing.T) *gate.Design {
	t.Helper()
	design, err := gate.NewDesigner().CreateDesign(gate.Requirements{
		GateWidthMM:  6000,
		GateHeightMM: 2000,
	})
	if err != nil {
		t.Fatalf("CreateDesign: %v", err)
	}
	return design
}

func TestWriteJSON(t *testing.T) {
	design := testDesign(t)
	path := filepath.Join(t.TempDir(), "out", "design.json")

	if err := WriteJSON(design, path); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var decoded gate.Design
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.FrameSection.Name != design.FrameSection.Name {
		t.Errorf("frame section = %q, want %q", decoded.FrameSection.Name, design.FrameSection.Name)
	}
	if len(decoded.Analysis.PositionsMM) != 1000 {
		t.Errorf("analysis samples = %d, want 1000", len(decoded.Analysis.PositionsMM))
	}
}

func TestWriteCalculationSummary(t *testing.T) {
	design := testDesign(t)
	path := filepath.Join(t.TempDir(), "calculation_summary.txt")

	if err := WriteCalculationSummary(design, path); err != nil {
		t.Fatalf("WriteCalculationSummary: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	text := string(data)
	for _, want := range []string{
		"STRUCTURAL CALCULATION SUMMARY",
		"DESIGN REQUIREMENTS",
		"COUNTERWEIGHT AND TRACK",
		"ADEQUACY CHECKS",
		design.FrameSection.Name,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestWriteSpecifications(t *testing.T) {
	design := testDesign(t)
	path := filepath.Join(t.TempDir(), "specifications.txt")

	if err := WriteSpecifications(design, path); err != nil {
		t.Fatalf("WriteSpecifications: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	text := string(data)
	for _, want := range []string{"MATERIAL PROPERTIES", "BILL OF MATERIALS", "Main Frame HSS", "Counterweight"} {
		if !strings.Contains(text, want) {
			t.Errorf("specifications missing %q", want)
		}
	}
}

func TestWriteExcel(t *testing.T) {
	design := testDesign(t)
	path := filepath.Join(t.TempDir(), "calculations.xlsx")

	if err := WriteExcel(design, path); err != nil {
		t.Fatalf("WriteExcel: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("workbook not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("workbook is empty")
	}
}

func TestWritePDF(t *testing.T) {
	design := testDesign(t)
	path := filepath.Join(t.TempDir(), "report.pdf")

	if err := WritePDF(design, path); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Error("output does not start with a PDF header")
	}
}
