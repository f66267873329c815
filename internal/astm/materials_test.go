package astm

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestLookupA36(t *testing.T) {
	props, err := Lookup("A36")
	if err != nil {
		t.Fatalf("Lookup(A36) error: %v", err)
	}
	if props.YieldStrengthPa != 248e6 {
		t.Errorf("A36 yield = %v, want 248e6", props.YieldStrengthPa)
	}
	if props.UltimateStrengthPa != 400e6 {
		t.Errorf("A36 ultimate = %v, want 400e6", props.UltimateStrengthPa)
	}
	if props.ElasticModulusPa != 200e9 {
		t.Errorf("A36 modulus = %v, want 200e9", props.ElasticModulusPa)
	}
	if props.DensityKgM3 != 7850 {
		t.Errorf("A36 density = %v, want 7850", props.DensityKgM3)
	}
}

func TestLookupAliases(t *testing.T) {
	canonical, err := Lookup("A572_50")
	if err != nil {
		t.Fatalf("Lookup(A572_50) error: %v", err)
	}
	for _, alias := range []string{"A572-50", "a572_50", " A572 Grade 50 ", "a572-50"} {
		props, err := Lookup(alias)
		if err != nil {
			t.Errorf("Lookup(%q) error: %v", alias, err)
			continue
		}
		if props.Grade != canonical.Grade {
			t.Errorf("Lookup(%q) = %q, want %q", alias, props.Grade, canonical.Grade)
		}
	}
}

func TestLookupUnknownGrade(t *testing.T) {
	_, err := Lookup("A500")
	if err == nil {
		t.Fatal("expected error for unknown grade")
	}
	var unknown *UnknownGradeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownGradeError, got %T", err)
	}
	if unknown.Name != "A500" {
		t.Errorf("error name = %q, want A500", unknown.Name)
	}
}

func TestUnitConversions(t *testing.T) {
	props, _ := Lookup("A572_50")
	if !approxEqual(props.YieldStrengthMPa(), 345, tolerance) {
		t.Errorf("yield MPa = %v, want 345", props.YieldStrengthMPa())
	}
	if !approxEqual(props.UltimateStrengthMPa(), 450, tolerance) {
		t.Errorf("ultimate MPa = %v, want 450", props.UltimateStrengthMPa())
	}
	if !approxEqual(props.ElasticModulusGPa(), 200, tolerance) {
		t.Errorf("modulus GPa = %v, want 200", props.ElasticModulusGPa())
	}
}

func TestGradesOrder(t *testing.T) {
	grades := Grades()
	want := []SteelGrade{GradeA36, GradeA572_50, GradeA588, GradeA992}
	if len(grades) != len(want) {
		t.Fatalf("len(Grades()) = %d, want %d", len(grades), len(want))
	}
	for i, g := range want {
		if grades[i] != g {
			t.Errorf("Grades()[%d] = %v, want %v", i, grades[i], g)
		}
	}
}

func TestValidateSelectionSuitable(t *testing.T) {
	report, err := ValidateSelection("A572_50", "")
	if err != nil {
		t.Fatalf("ValidateSelection error: %v", err)
	}
	if !report.Suitable {
		t.Errorf("A572_50 should be suitable, warnings: %v", report.Warnings)
	}
}

func TestValidateSelectionLowYield(t *testing.T) {
	report, err := ValidateSelection("A36", "")
	if err != nil {
		t.Fatalf("ValidateSelection error: %v", err)
	}
	if report.Suitable {
		t.Error("A36 (248 MPa) should carry a low-yield warning")
	}
	if len(report.Warnings) == 0 {
		t.Error("expected at least one warning for A36")
	}
}

func TestValidateSelectionWeathering(t *testing.T) {
	report, err := ValidateSelection("A992", "weathering")
	if err != nil {
		t.Fatalf("ValidateSelection error: %v", err)
	}
	if len(report.Recommendations) == 0 {
		t.Error("expected weathering recommendation for non-A588 grade")
	}

	report, err = ValidateSelection("A588", "weathering")
	if err != nil {
		t.Fatalf("ValidateSelection error: %v", err)
	}
	if len(report.Recommendations) != 0 {
		t.Errorf("A588 needs no weathering recommendation, got %v", report.Recommendations)
	}
}
