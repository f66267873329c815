package gate

import (
	"fmt"

	"github.com/alexiusacademia/gogate/internal/astm"
	"github.com/alexiusacademia/gogate/internal/beam"
	"github.com/alexiusacademia/gogate/internal/section"
)

// Requirements are the user inputs for a gate design.
type Requirements struct {
	GateWidthMM  float64 `json:"gate_width_mm"`
	GateHeightMM float64 `json:"gate_height_mm"`
	WindSpeedMS  float64 `json:"wind_speed_ms"`
	SteelGrade   string  `json:"steel_grade"`
	InfillType   string  `json:"infill_type"`
}

// StructuralResults collects the whole-gate calculation outputs. Field names
// are fixed; the report writers serialize them as-is.
type StructuralResults struct {
	GateWeightN     float64 `json:"gate_weight_N"`
	GateWeightKg    float64 `json:"gate_weight_kg"`
	WindLoadN       float64 `json:"wind_load_N"`
	DeadMomentNmm   float64 `json:"dead_moment_Nmm"`
	WindMomentNmm   float64 `json:"wind_moment_Nmm"`
	OverturningNmm  float64 `json:"total_overturning_Nmm"`
	CounterweightN  float64 `json:"counterweight_N"`
	CounterweightKg float64 `json:"counterweight_kg"`
	FrontWheelN     float64 `json:"front_wheel_load_N"`
	RearWheelN      float64 `json:"rear_wheel_load_N"`
	HorizontalN     float64 `json:"horizontal_load_N"`
	BeamStressPa    float64 `json:"beam_stress_Pa"`
	BeamStressMPa   float64 `json:"beam_stress_MPa"`
	DeflectionMM    float64 `json:"deflection_mm"`
	StressRatio     float64 `json:"stress_ratio"`
	SafetyAdequate  bool    `json:"safety_adequate"`

	GoverningCombination string  `json:"governing_combination"`
	GoverningLoadNPerMM  float64 `json:"governing_load_N_per_mm"`
}

// MaterialItem is one line of the bill of materials.
type MaterialItem struct {
	Item     string  `json:"item"`
	Size     string  `json:"size"`
	LengthMM float64 `json:"length_mm,omitempty"`
	WeightKg float64 `json:"weight_kg"`
	Material string  `json:"material"`
}

// Design is a complete gate design: requirements, derived geometry, the
// whole-gate results, the detailed frame verification, and the bill of
// materials.
type Design struct {
	Requirements Requirements            `json:"requirements"`
	Geometry     Geometry                `json:"geometry"`
	Steel        astm.SteelProperties    `json:"steel"`
	FrameSection *section.RectangularHSS `json:"frame_section"`
	Results      StructuralResults       `json:"structural_results"`
	Analysis     *beam.AnalysisResult    `json:"frame_analysis,omitempty"`
	MaterialList []MaterialItem          `json:"material_list"`
	IsAdequate   bool                    `json:"is_adequate"`
	DesignNotes  []string                `json:"design_notes,omitempty"`
}

// Point loads applied along the frame during the detailed verification:
// drive mechanism at 80% of the span, safety systems at 90%.
const (
	driveLoadN         = 2000.0
	safetySystemLoadN  = 1000.0
	drivePositionFrac  = 0.8
	safetyPositionFrac = 0.9
)

// Designer builds complete cantilever slide gate designs.
type Designer struct{}

// NewDesigner returns a gate designer.
func NewDesigner() *Designer { return &Designer{} }

// CreateDesign runs the full design pipeline: geometry derivation, gate-level
// loads, governing load combination, counterweight and track reactions, quick
// scalar checks, and the detailed cantilever frame verification.
func (d *Designer) CreateDesign(req Requirements) (*Design, error) {
	if req.GateWidthMM <= 0 || req.GateHeightMM <= 0 {
		return nil, fmt.Errorf("invalid gate dimensions: %gx%g mm", req.GateWidthMM, req.GateHeightMM)
	}
	if req.WindSpeedMS < 0 {
		return nil, fmt.Errorf("invalid wind speed: %g m/s", req.WindSpeedMS)
	}
	if req.WindSpeedMS == 0 {
		req.WindSpeedMS = astm.DefaultWindSpeedMS
	}
	if req.SteelGrade == "" {
		req.SteelGrade = string(astm.GradeA572_50)
	}
	if req.InfillType == "" {
		req.InfillType = "chain_link"
	}

	steel, err := astm.Lookup(req.SteelGrade)
	if err != nil {
		return nil, err
	}

	geom := DeriveGeometry(req.GateWidthMM, req.GateHeightMM)
	frame := FrameSectionFor(req.GateWidthMM)
	calc := NewCalculations(steel)

	var results StructuralResults

	results.GateWeightN = calc.GateWeightN(geom, frame.AreaMM2, InfillWeight(req.InfillType))
	results.GateWeightKg = results.GateWeightN / astm.GravityMS2

	results.WindLoadN = calc.WindLoadN(geom, req.WindSpeedMS)

	moments := calc.OverturningMoments(geom, results.GateWeightN, results.WindLoadN)
	results.DeadMomentNmm = moments.DeadNmm
	results.WindMomentNmm = moments.WindNmm
	results.OverturningNmm = moments.TotalNmm

	results.CounterweightN = calc.CounterweightN(geom, moments.TotalNmm)
	results.CounterweightKg = results.CounterweightN / astm.GravityMS2

	track := calc.TrackReactions(results.GateWeightN, results.CounterweightN)
	results.FrontWheelN = track.FrontWheelN
	results.RearWheelN = track.RearWheelN
	results.HorizontalN = track.HorizontalN

	// Quick scalar checks on the frame section
	results.BeamStressPa = calc.BeamStressPa(moments.TotalNmm, frame.SxMM3)
	results.BeamStressMPa = results.BeamStressPa / 1e6
	results.DeflectionMM = calc.TipDeflectionMM(results.GateWeightN, geom.CantileverLengthMM, frame.IxMM4)

	allowablePa := steel.YieldStrengthPa / calc.SafetyFactor
	results.StressRatio = results.BeamStressPa / allowablePa

	// Detailed frame verification under the governing combination
	deadPerMM := results.GateWeightN / geom.WidthMM
	windPressurePa := astm.DynamicPressureCoeff * req.WindSpeedMS * req.WindSpeedMS * astm.DragCoefficient
	windPerMM := windPressurePa * (geom.HeightMM / 1000) / 1000

	governing, combo := astm.Governing(deadPerMM, 0, windPerMM)
	results.GoverningCombination = combo.Label
	results.GoverningLoadNPerMM = governing

	analyzer := &beam.Analyzer{
		Material:             steel,
		SafetyFactor:         calc.SafetyFactor,
		DeflectionLimitRatio: astm.DeflectionLimitRatio,
	}
	pointLoads := []beam.PointLoad{
		{PositionMM: geom.WidthMM * drivePositionFrac, LoadN: driveLoadN},
		{PositionMM: geom.WidthMM * safetyPositionFrac, LoadN: safetySystemLoadN},
	}
	analysis, err := analyzer.Analyze(geom.WidthMM, governing, pointLoads, frame)
	if err != nil {
		return nil, fmt.Errorf("frame analysis: %w", err)
	}

	design := &Design{
		Requirements: req,
		Geometry:     geom,
		Steel:        steel,
		FrameSection: frame,
		Results:      results,
		Analysis:     analysis,
	}
	design.IsAdequate, design.DesignNotes = checkAdequacy(&design.Results)
	design.MaterialList = buildMaterialList(geom, frame, steel, results.CounterweightKg)
	design.Results.SafetyAdequate = design.IsAdequate

	return design, nil
}

// checkAdequacy applies the whole-gate limits: 200 MPa on beam stress, 50 mm
// on deflection. An oversized counterweight only adds an advisory note.
func checkAdequacy(r *StructuralResults) (bool, []string) {
	adequate := true
	var notes []string

	if r.BeamStressMPa > 200 {
		adequate = false
		notes = append(notes, "Beam stress exceeds allowable limits")
	}
	if r.DeflectionMM > 50 {
		adequate = false
		notes = append(notes, "Deflection exceeds allowable limits")
	}
	if r.CounterweightKg > r.GateWeightKg*2 {
		notes = append(notes, "Counterweight is very heavy - consider design optimization")
	}

	return adequate, notes
}

func buildMaterialList(geom Geometry, frame *section.RectangularHSS, steel astm.SteelProperties, counterweightKg float64) []MaterialItem {
	perimeterMM := 2 * (geom.WidthMM + geom.HeightMM)
	return []MaterialItem{
		{
			Item:     "Main Frame HSS",
			Size:     frame.Name,
			LengthMM: perimeterMM,
			WeightKg: frame.WeightKg(perimeterMM, steel.DensityKgM3),
			Material: steel.Grade,
		},
		{
			Item:     "Track Rail",
			Size:     "CR135",
			LengthMM: geom.TrackLengthMM,
			WeightKg: 135 * geom.TrackLengthMM / 1000,
			Material: steel.Grade,
		},
		{
			Item:     "Counterweight",
			Size:     "Concrete Block",
			WeightKg: counterweightKg,
			Material: "Concrete",
		},
	}
}
