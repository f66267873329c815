package gate

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gogate/internal/astm"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func testCalc(t *testing.T) *Calculations {
	t.Helper()
	steel, err := astm.Lookup("A572_50")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	return NewCalculations(steel)
}

func TestGateWeight(t *testing.T) {
	calc := testCalc(t)
	geom := DeriveGeometry(6000, 2000)

	// Frame: perimeter 16000 mm x 3456 mm² x 7850 kg/m³ / 1e9 = 434.07 kg
	// Infill: 12 m² x 25 kg/m² = 300 kg
	got := calc.GateWeightN(geom, 3456, 25)
	want := (16000*3456*7850/1e9 + 12*25) * astm.GravityMS2
	if !approxEqual(got, want, 1e-6) {
		t.Errorf("gate weight = %v N, want %v N", got, want)
	}
}

func TestWindLoad(t *testing.T) {
	calc := testCalc(t)
	geom := DeriveGeometry(6000, 2000)

	// q = 0.613 V², F = q Cd A, A = 12 m²
	got := calc.WindLoadN(geom, 33.5)
	want := 0.613 * 33.5 * 33.5 * 1.2 * 12
	if !approxEqual(got, want, 1e-9) {
		t.Errorf("wind load = %v N, want %v N", got, want)
	}
}

func TestOverturningMoments(t *testing.T) {
	calc := testCalc(t)
	geom := DeriveGeometry(6000, 2000)

	m := calc.OverturningMoments(geom, 10000, 5000)
	// Dead at half the cantilever (1500 mm), wind at half the height (1000 mm)
	if !approxEqual(m.DeadNmm, 10000*1500, 1e-9) {
		t.Errorf("dead moment = %v, want 1.5e7", m.DeadNmm)
	}
	if !approxEqual(m.WindNmm, 5000*1000, 1e-9) {
		t.Errorf("wind moment = %v, want 5e6", m.WindNmm)
	}
	if !approxEqual(m.TotalNmm, m.DeadNmm+m.WindNmm, 1e-9) {
		t.Errorf("total moment = %v, want sum of components", m.TotalNmm)
	}
}

func TestCounterweight(t *testing.T) {
	calc := testCalc(t)
	geom := DeriveGeometry(6000, 2000)

	// overturning x 2.5 / arm (1800 mm)
	got := calc.CounterweightN(geom, 18e6)
	if !approxEqual(got, 18e6*2.5/1800, 1e-6) {
		t.Errorf("counterweight = %v N, want 25000 N", got)
	}
}

func TestTrackReactions(t *testing.T) {
	calc := testCalc(t)

	track := calc.TrackReactions(8000, 10000)
	if !approxEqual(track.FrontWheelN, 4000, 1e-9) {
		t.Errorf("front wheel = %v, want 4000", track.FrontWheelN)
	}
	if !approxEqual(track.RearWheelN, 14000, 1e-9) {
		t.Errorf("rear wheel = %v, want 14000", track.RearWheelN)
	}
	if !approxEqual(track.HorizontalN, 800, 1e-9) {
		t.Errorf("horizontal = %v, want 800", track.HorizontalN)
	}
}

func TestBeamStress(t *testing.T) {
	calc := testCalc(t)

	// M = 48e6 N·mm, S = 159528.96 mm³ -> 300.886 MPa
	got := calc.BeamStressPa(48e6, 159528.96)
	want := 48e6 / 159528.96 * 1e6
	if !approxEqual(got, want, 1e-3) {
		t.Errorf("beam stress = %v Pa, want %v Pa", got, want)
	}
}

func TestCheckBeamAdequacy(t *testing.T) {
	calc := testCalc(t)

	ok := calc.CheckBeamAdequacy(100e6, 138e6)
	if !ok.IsAdequate {
		t.Error("100 MPa against 138 MPa allowable should pass")
	}
	if ok.MarginPercent <= 0 {
		t.Errorf("margin = %v, want positive", ok.MarginPercent)
	}

	bad := calc.CheckBeamAdequacy(200e6, 138e6)
	if bad.IsAdequate {
		t.Error("200 MPa against 138 MPa allowable should fail")
	}
	if bad.StressRatio <= 1 {
		t.Errorf("stress ratio = %v, want > 1", bad.StressRatio)
	}
}

func TestTipDeflection(t *testing.T) {
	calc := testCalc(t)

	// PL³/(3EI), E = 200000 N/mm²
	got := calc.TipDeflectionMM(1000, 3000, 11964672)
	want := 1000 * math.Pow(3000, 3) / (3 * 200000 * 11964672)
	if !approxEqual(got, want, 1e-9) {
		t.Errorf("tip deflection = %v mm, want %v mm", got, want)
	}
}

func TestInfillWeightFallback(t *testing.T) {
	if got := InfillWeight("solid_plate"); got != 62.0 {
		t.Errorf("solid_plate = %v, want 62", got)
	}
	if got := InfillWeight("no_such_type"); got != InfillWeightsKgM2["chain_link"] {
		t.Errorf("unknown infill = %v, want chain link default", got)
	}
}

func TestDeriveGeometryRatios(t *testing.T) {
	geom := DeriveGeometry(6000, 2000)
	if geom.CantileverLengthMM != 3000 {
		t.Errorf("cantilever = %v, want 3000", geom.CantileverLengthMM)
	}
	if geom.TrackLengthMM != 9000 {
		t.Errorf("track = %v, want 9000", geom.TrackLengthMM)
	}
	if geom.CounterweightArmMM != 1800 {
		t.Errorf("counterweight arm = %v, want 1800", geom.CounterweightArmMM)
	}
	if geom.FrameDepthMM != 200 {
		t.Errorf("frame depth = %v, want capped at 200", geom.FrameDepthMM)
	}

	low := DeriveGeometry(6000, 1500)
	if low.FrameDepthMM != 150 {
		t.Errorf("frame depth = %v, want 150 (10%% of height)", low.FrameDepthMM)
	}
}
