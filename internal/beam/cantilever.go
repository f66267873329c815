package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gogate/internal/astm"
	"github.com/alexiusacademia/gogate/internal/section"
)

// numSamples is the fixed number of evenly spaced positions along the span.
const numSamples = 1000

// PointLoad is a discrete transverse load on the beam. Position is measured
// from the fixed end (mm); the load acts in the same direction as the
// distributed load. Uplift (negative) loads are out of scope.
type PointLoad struct {
	PositionMM float64 `json:"position_mm"`
	LoadN      float64 `json:"load_N"`
}

// InvalidInputError describes malformed beam analysis inputs. Inputs are
// validated before any computation; values are never silently clamped.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string { return e.Reason }

// Analyzer performs cantilever beam analysis for a fixed material and set of
// design criteria. The beam is fixed (zero slope, zero deflection) at
// position 0 and free at the far end; the uniform distributed load covers the
// full span and all loads act in one transverse direction.
type Analyzer struct {
	Material             astm.SteelProperties
	SafetyFactor         float64
	DeflectionLimitRatio float64
}

// NewAnalyzer creates an analyzer for the given steel grade with the standard
// cantilever design criteria (safety factor 2.5, deflection limit L/240).
func NewAnalyzer(gradeName string) (*Analyzer, error) {
	material, err := astm.Lookup(gradeName)
	if err != nil {
		return nil, err
	}
	return &Analyzer{
		Material:             material,
		SafetyFactor:         astm.StructuralSafetyFactor,
		DeflectionLimitRatio: astm.DeflectionLimitRatio,
	}, nil
}

// AnalysisResult is the full output of a cantilever analysis: the sampled
// internal force and deflection distributions plus the derived adequacy
// checks. Field names match the report layer's serialized output.
type AnalysisResult struct {
	PositionsMM   []float64 `json:"positions_mm"`
	MomentsNmm    []float64 `json:"moments_Nmm"`
	ShearsN       []float64 `json:"shears_N"`
	DeflectionsMM []float64 `json:"deflections_mm"`

	MaxMomentNmm    float64 `json:"max_moment_Nmm"`
	MaxShearN       float64 `json:"max_shear_N"`
	MaxStressPa     float64 `json:"max_stress_Pa"`
	MaxDeflectionMM float64 `json:"max_deflection_mm"`

	AllowableStressPa  float64 `json:"allowable_stress_Pa"`
	DeflectionLimitMM  float64 `json:"deflection_limit_mm"`
	StressRatio        float64 `json:"stress_ratio"`
	DeflectionRatio    float64 `json:"deflection_ratio"`
	SafetyAdequate     bool    `json:"safety_adequate"`

	MaterialGrade      string  `json:"material_grade"`
	SafetyFactor       float64 `json:"safety_factor"`
	YieldStrengthPa    float64 `json:"yield_strength_Pa"`
	UltimateStrengthPa float64 `json:"ultimate_strength_Pa"`
	ElasticModulusPa   float64 `json:"elastic_modulus_Pa"`
	SectionName        string  `json:"section_name"`
}

// Analyze computes position-resolved bending moment, shear and deflection for
// a cantilever of the given length (mm) under a uniform distributed load
// (N/mm) and discrete point loads, then derives the stress and deflection
// adequacy checks against the analyzer's material and criteria.
func (a *Analyzer) Analyze(lengthMM, distributedLoadNPerMM float64, pointLoads []PointLoad, sec *section.RectangularHSS) (*AnalysisResult, error) {
	if lengthMM <= 0 {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("invalid beam length: %g mm", lengthMM)}
	}
	if distributedLoadNPerMM < 0 {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("invalid distributed load: %g N/mm", distributedLoadNPerMM)}
	}
	for _, pl := range pointLoads {
		if pl.PositionMM < 0 || pl.PositionMM > lengthMM {
			return nil, &InvalidInputError{Reason: fmt.Sprintf(
				"point load position %g mm outside beam length %g mm", pl.PositionMM, lengthMM)}
		}
		if pl.LoadN < 0 {
			return nil, &InvalidInputError{Reason: fmt.Sprintf(
				"invalid point load: %g N (uplift loads not supported)", pl.LoadN)}
		}
	}
	if sec == nil {
		return nil, &InvalidInputError{Reason: "nil beam section"}
	}

	dx := lengthMM / float64(numSamples-1)
	positions := make([]float64, numSamples)
	moments := make([]float64, numSamples)
	shears := make([]float64, numSamples)

	// Statics at a cut: contributions come from loads outboard of the cut,
	// toward the free end. Maximum moment and shear occur at the fixed end.
	for i := range positions {
		p := dx * float64(i)
		positions[i] = p

		remaining := lengthMM - p
		m := distributedLoadNPerMM * remaining * remaining / 2
		v := distributedLoadNPerMM * remaining
		for _, pl := range pointLoads {
			if pl.PositionMM >= p {
				m += pl.LoadN * (pl.PositionMM - p)
				v += pl.LoadN
			}
		}
		moments[i] = m
		shears[i] = v
	}

	deflections := a.integrateDeflection(moments, dx, sec.IxMM4)

	maxMoment := maxAbs(moments)
	maxShear := maxAbs(shears)
	maxDeflection := maxAbs(deflections)

	// M/S gives N/mm² (MPa); report stress in Pa.
	maxStressPa := maxMoment / sec.SxMM3 * 1e6

	allowableStressPa := a.Material.YieldStrengthPa / a.SafetyFactor
	deflectionLimit := lengthMM / a.DeflectionLimitRatio

	stressRatio := maxStressPa / allowableStressPa
	deflectionRatio := maxDeflection / deflectionLimit

	return &AnalysisResult{
		PositionsMM:   positions,
		MomentsNmm:    moments,
		ShearsN:       shears,
		DeflectionsMM: deflections,

		MaxMomentNmm:    maxMoment,
		MaxShearN:       maxShear,
		MaxStressPa:     maxStressPa,
		MaxDeflectionMM: maxDeflection,

		AllowableStressPa: allowableStressPa,
		DeflectionLimitMM: deflectionLimit,
		StressRatio:       stressRatio,
		DeflectionRatio:   deflectionRatio,
		SafetyAdequate:    stressRatio <= 1.0 && deflectionRatio <= 1.0,

		MaterialGrade:      a.Material.Grade,
		SafetyFactor:       a.SafetyFactor,
		YieldStrengthPa:    a.Material.YieldStrengthPa,
		UltimateStrengthPa: a.Material.UltimateStrengthPa,
		ElasticModulusPa:   a.Material.ElasticModulusPa,
		SectionName:        sec.Name,
	}, nil
}

// integrateDeflection performs the double trapezoidal integration of
// curvature M/(EI): curvature -> slope -> deflection, starting from zero
// slope and zero deflection at the fixed-end sample. The free end carries
// the extreme deflection.
func (a *Analyzer) integrateDeflection(moments []float64, dx, ixMM4 float64) []float64 {
	// E in N/mm² keeps curvature in 1/mm with moments in N·mm and I in mm⁴.
	ei := a.Material.ElasticModulusPa / 1e6 * ixMM4

	curvature := make([]float64, len(moments))
	for i, m := range moments {
		curvature[i] = m / ei
	}

	slope := make([]float64, len(moments))
	deflection := make([]float64, len(moments))
	for i := 1; i < len(moments); i++ {
		slope[i] = slope[i-1] + (curvature[i-1]+curvature[i])/2*dx
		deflection[i] = deflection[i-1] + (slope[i-1]+slope[i])/2*dx
	}
	return deflection
}

func maxAbs(values []float64) float64 {
	max := 0.0
	for _, v := range values {
		if abs := math.Abs(v); abs > max {
			max = abs
		}
	}
	return max
}
