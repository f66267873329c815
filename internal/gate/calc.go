package gate

import (
	"github.com/alexiusacademia/gogate/internal/astm"
)

// InfillWeightsKgM2 maps infill type to areal weight. Chain link is the
// reference value; the others are engineering defaults for the heavier
// infills.
var InfillWeightsKgM2 = map[string]float64{
	"chain_link":     25.0,
	"expanded_metal": 35.0,
	"solid_plate":    62.0, // 8 mm steel plate
	"custom":         25.0,
}

// InfillWeight returns the areal weight (kg/m²) for an infill type,
// defaulting to chain link for unknown types.
func InfillWeight(infillType string) float64 {
	if w, ok := InfillWeightsKgM2[infillType]; ok {
		return w
	}
	return InfillWeightsKgM2["chain_link"]
}

// Calculations performs the whole-gate scaling formulas: weight, wind load,
// overturning, counterweight and track reactions, plus the quick scalar beam
// checks. The detailed distribution analysis lives in the beam package.
type Calculations struct {
	Steel        astm.SteelProperties
	SafetyFactor float64
}

// NewCalculations returns a calculator for the given steel with the standard
// structural safety factor.
func NewCalculations(steel astm.SteelProperties) *Calculations {
	return &Calculations{Steel: steel, SafetyFactor: astm.StructuralSafetyFactor}
}

// GateWeightN computes the total gate self weight in Newtons: frame members
// over the panel perimeter plus the infill panel.
func (c *Calculations) GateWeightN(geom Geometry, frameAreaMM2, infillKgM2 float64) float64 {
	framePerimeterMM := 2 * (geom.WidthMM + geom.HeightMM)
	frameVolumeMM3 := framePerimeterMM * frameAreaMM2
	frameWeightKg := frameVolumeMM3 * c.Steel.DensityKgM3 / 1e9

	infillAreaM2 := geom.WidthMM * geom.HeightMM / 1e6
	infillWeightKg := infillAreaM2 * infillKgM2

	return (frameWeightKg + infillWeightKg) * astm.GravityMS2
}

// WindLoadN computes the wind force on the gate panel for a design wind
// speed (m/s): dynamic pressure × drag coefficient × exposed area.
func (c *Calculations) WindLoadN(geom Geometry, windSpeedMS float64) float64 {
	dynamicPressurePa := astm.DynamicPressureCoeff * windSpeedMS * windSpeedMS
	exposedAreaM2 := geom.WidthMM * geom.HeightMM / 1e6
	return dynamicPressurePa * astm.DragCoefficient * exposedAreaM2
}

// Moments holds the overturning moment components (N·mm).
type Moments struct {
	DeadNmm  float64 `json:"dead_moment_Nmm"`
	WindNmm  float64 `json:"wind_moment_Nmm"`
	TotalNmm float64 `json:"total_overturning_Nmm"`
}

// OverturningMoments computes the cantilever overturning moments: gate weight
// acting at half the cantilever length, wind at half the gate height.
func (c *Calculations) OverturningMoments(geom Geometry, gateWeightN, windLoadN float64) Moments {
	dead := gateWeightN * geom.CantileverLengthMM / 2
	wind := windLoadN * geom.HeightMM / 2
	return Moments{DeadNmm: dead, WindNmm: wind, TotalNmm: dead + wind}
}

// CounterweightN computes the required counterweight force, applying the
// safety factor to the overturning moment over the counterweight arm.
func (c *Calculations) CounterweightN(geom Geometry, overturningNmm float64) float64 {
	return overturningNmm * c.SafetyFactor / geom.CounterweightArmMM
}

// TrackLoads holds the track wheel reactions (N).
type TrackLoads struct {
	FrontWheelN float64 `json:"front_wheel_load_N"`
	RearWheelN  float64 `json:"rear_wheel_load_N"`
	HorizontalN float64 `json:"horizontal_load_N"`
}

// TrackReactions distributes the gate and counterweight forces to the track:
// two front wheels carry half the gate, the rear wheels carry the other half
// plus the counterweight, and rolling friction gives the horizontal reaction.
func (c *Calculations) TrackReactions(gateWeightN, counterweightN float64) TrackLoads {
	return TrackLoads{
		FrontWheelN: gateWeightN / 2,
		RearWheelN:  gateWeightN/2 + counterweightN,
		HorizontalN: gateWeightN * astm.TrackFrictionCoeff,
	}
}

// BeamStressPa is the quick scalar bending check: stress = M/S, reported in
// Pa (M in N·mm and S in mm³ give N/mm²).
func (c *Calculations) BeamStressPa(momentNmm, sectionModulusMM3 float64) float64 {
	return momentNmm / sectionModulusMM3 * 1e6
}

// AdequacyCheck is the result of a scalar stress comparison.
type AdequacyCheck struct {
	StressRatio   float64 `json:"stress_ratio"`
	IsAdequate    bool    `json:"is_adequate"`
	MarginPercent float64 `json:"margin_percent"`
}

// CheckBeamAdequacy compares an applied stress against an allowable stress.
func (c *Calculations) CheckBeamAdequacy(appliedPa, allowablePa float64) AdequacyCheck {
	ratio := appliedPa / allowablePa
	return AdequacyCheck{
		StressRatio:   ratio,
		IsAdequate:    ratio <= 1.0,
		MarginPercent: (1.0 - ratio) * 100,
	}
}

// TipDeflectionMM is the quick cantilever deflection check for a single load
// at the tip: PL³/(3EI). This is a simplified scalar check distinct from the
// full distribution integration in the beam package; both serve different
// call sites.
func (c *Calculations) TipDeflectionMM(loadN, lengthMM, momentOfInertiaMM4 float64) float64 {
	eMPa := c.Steel.ElasticModulusPa / 1e6
	return loadN * lengthMM * lengthMM * lengthMM / (3 * eMPa * momentOfInertiaMM4)
}
