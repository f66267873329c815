package gate

import (
	"testing"

	"github.com/alexiusacademia/gogate/internal/astm"
)

func TestCreateDesignDefaults(t *testing.T) {
	designer := NewDesigner()
	design, err := designer.CreateDesign(Requirements{GateWidthMM: 6000, GateHeightMM: 2000})
	if err != nil {
		t.Fatalf("CreateDesign: %v", err)
	}

	if design.Requirements.WindSpeedMS != astm.DefaultWindSpeedMS {
		t.Errorf("wind speed = %v, want default %v", design.Requirements.WindSpeedMS, astm.DefaultWindSpeedMS)
	}
	if design.Requirements.SteelGrade != "A572_50" {
		t.Errorf("steel grade = %q, want A572_50", design.Requirements.SteelGrade)
	}
	if design.Requirements.InfillType != "chain_link" {
		t.Errorf("infill = %q, want chain_link", design.Requirements.InfillType)
	}
	if design.FrameSection.Name != "HSS150x150x6" {
		t.Errorf("frame section = %s, want HSS150x150x6 for a 6 m gate", design.FrameSection.Name)
	}
}

func TestCreateDesignPipeline(t *testing.T) {
	designer := NewDesigner()
	design, err := designer.CreateDesign(Requirements{
		GateWidthMM:  6000,
		GateHeightMM: 2000,
		WindSpeedMS:  33.5,
		SteelGrade:   "A572_50",
		InfillType:   "chain_link",
	})
	if err != nil {
		t.Fatalf("CreateDesign: %v", err)
	}
	r := design.Results

	if r.GateWeightN <= 0 {
		t.Errorf("gate weight = %v, want positive", r.GateWeightN)
	}
	if r.WindLoadN <= 0 {
		t.Errorf("wind load = %v, want positive", r.WindLoadN)
	}
	if r.OverturningNmm != r.DeadMomentNmm+r.WindMomentNmm {
		t.Errorf("overturning = %v, want dead + wind = %v", r.OverturningNmm, r.DeadMomentNmm+r.WindMomentNmm)
	}
	if r.CounterweightN <= 0 {
		t.Errorf("counterweight = %v, want positive", r.CounterweightN)
	}
	if r.RearWheelN <= r.FrontWheelN {
		t.Errorf("rear wheel (%v) should exceed front wheel (%v), it carries the counterweight",
			r.RearWheelN, r.FrontWheelN)
	}
	if r.GoverningCombination == "" {
		t.Error("missing governing combination")
	}
	if design.Analysis == nil {
		t.Fatal("missing detailed frame analysis")
	}
	if len(design.Analysis.PositionsMM) != 1000 {
		t.Errorf("analysis samples = %d, want 1000", len(design.Analysis.PositionsMM))
	}
	if len(design.MaterialList) != 3 {
		t.Fatalf("material list = %d items, want 3", len(design.MaterialList))
	}
	if design.MaterialList[0].Item != "Main Frame HSS" {
		t.Errorf("first material item = %q, want Main Frame HSS", design.MaterialList[0].Item)
	}
}

func TestCreateDesignGoverningIncludesWind(t *testing.T) {
	designer := NewDesigner()
	design, err := designer.CreateDesign(Requirements{
		GateWidthMM:  6000,
		GateHeightMM: 2000,
		WindSpeedMS:  50,
	})
	if err != nil {
		t.Fatalf("CreateDesign: %v", err)
	}

	// With no live load, only wind-bearing strength combinations can govern
	switch design.Results.GoverningCombination {
	case "LRFD_1", "LRFD_3", "LRFD_4":
	default:
		t.Errorf("governing = %s, want a strength combination", design.Results.GoverningCombination)
	}
	if design.Results.GoverningLoadNPerMM <= 0 {
		t.Errorf("governing load = %v, want positive", design.Results.GoverningLoadNPerMM)
	}
}

func TestCreateDesignInvalidInputs(t *testing.T) {
	designer := NewDesigner()

	if _, err := designer.CreateDesign(Requirements{GateWidthMM: 0, GateHeightMM: 2000}); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := designer.CreateDesign(Requirements{GateWidthMM: 6000, GateHeightMM: -1}); err == nil {
		t.Error("expected error for negative height")
	}
	if _, err := designer.CreateDesign(Requirements{GateWidthMM: 6000, GateHeightMM: 2000, WindSpeedMS: -5}); err == nil {
		t.Error("expected error for negative wind speed")
	}
	if _, err := designer.CreateDesign(Requirements{GateWidthMM: 6000, GateHeightMM: 2000, SteelGrade: "A000"}); err == nil {
		t.Error("expected error for unknown grade")
	}
}

func TestCheckAdequacyLimits(t *testing.T) {
	ok, notes := checkAdequacy(&StructuralResults{BeamStressMPa: 150, DeflectionMM: 20, GateWeightKg: 500, CounterweightKg: 600})
	if !ok {
		t.Errorf("150 MPa / 20 mm should pass, notes: %v", notes)
	}
	if len(notes) != 0 {
		t.Errorf("unexpected notes: %v", notes)
	}

	ok, notes = checkAdequacy(&StructuralResults{BeamStressMPa: 250, DeflectionMM: 20})
	if ok {
		t.Error("250 MPa should fail")
	}
	if len(notes) != 1 {
		t.Errorf("notes = %v, want one stress note", notes)
	}

	ok, notes = checkAdequacy(&StructuralResults{BeamStressMPa: 100, DeflectionMM: 60})
	if ok {
		t.Error("60 mm deflection should fail")
	}

	// Oversized counterweight is advisory only
	ok, notes = checkAdequacy(&StructuralResults{BeamStressMPa: 100, DeflectionMM: 10, GateWeightKg: 500, CounterweightKg: 1200})
	if !ok {
		t.Error("heavy counterweight alone must not fail the design")
	}
	if len(notes) != 1 {
		t.Errorf("notes = %v, want one counterweight advisory", notes)
	}
}

func TestFrameSectionFor(t *testing.T) {
	if s := FrameSectionFor(6000); s.Name != "HSS150x150x6" {
		t.Errorf("6 m gate section = %s, want HSS150x150x6", s.Name)
	}
	if s := FrameSectionFor(12000); s.Name != "HSS150x150x6" {
		t.Errorf("12 m gate section = %s, want HSS150x150x6", s.Name)
	}
	if s := FrameSectionFor(15000); s.Name != "HSS200x200x10" {
		t.Errorf("15 m gate section = %s, want HSS200x200x10", s.Name)
	}
}
