package astm

import (
	"fmt"
	"strings"
)

// SteelGrade identifies a structural steel grade per ASTM specifications.
type SteelGrade string

const (
	GradeA36     SteelGrade = "A36"
	GradeA572_50 SteelGrade = "A572_50"
	GradeA588    SteelGrade = "A588"
	GradeA992    SteelGrade = "A992"
)

// SteelProperties holds material properties for a structural steel grade.
// Values are ASTM minimum specified properties.
type SteelProperties struct {
	Grade                string  `json:"grade"`
	YieldStrengthPa      float64 `json:"yield_strength_Pa"`
	UltimateStrengthPa   float64 `json:"ultimate_strength_Pa"`
	ElasticModulusPa     float64 `json:"elastic_modulus_Pa"`
	DensityKgM3          float64 `json:"density_kg_m3"`
	PoissonRatio         float64 `json:"poisson_ratio"`
	ThermalExpansionPerC float64 `json:"thermal_expansion_per_C"`
}

// YieldStrengthMPa returns the yield strength in MPa.
func (p SteelProperties) YieldStrengthMPa() float64 { return p.YieldStrengthPa / 1e6 }

// UltimateStrengthMPa returns the ultimate tensile strength in MPa.
func (p SteelProperties) UltimateStrengthMPa() float64 { return p.UltimateStrengthPa / 1e6 }

// ElasticModulusGPa returns the elastic modulus in GPa.
func (p SteelProperties) ElasticModulusGPa() float64 { return p.ElasticModulusPa / 1e9 }

// steelProperties is the fixed grade table per ASTM A36/A572/A588/A992.
var steelProperties = map[SteelGrade]SteelProperties{
	GradeA36: {
		Grade:                "ASTM A36",
		YieldStrengthPa:      248e6, // 36 ksi
		UltimateStrengthPa:   400e6, // 58 ksi minimum
		ElasticModulusPa:     200e9,
		DensityKgM3:          7850,
		PoissonRatio:         0.30,
		ThermalExpansionPerC: 12e-6,
	},
	GradeA572_50: {
		Grade:                "ASTM A572 Grade 50",
		YieldStrengthPa:      345e6, // 50 ksi
		UltimateStrengthPa:   450e6, // 65 ksi
		ElasticModulusPa:     200e9,
		DensityKgM3:          7850,
		PoissonRatio:         0.30,
		ThermalExpansionPerC: 12e-6,
	},
	GradeA588: {
		Grade:                "ASTM A588 (Weathering Steel)",
		YieldStrengthPa:      345e6, // 50 ksi
		UltimateStrengthPa:   485e6, // 70 ksi
		ElasticModulusPa:     200e9,
		DensityKgM3:          7850,
		PoissonRatio:         0.30,
		ThermalExpansionPerC: 12e-6,
	},
	GradeA992: {
		Grade:                "ASTM A992 (Wide Flange)",
		YieldStrengthPa:      345e6, // 50 ksi
		UltimateStrengthPa:   450e6, // 65 ksi
		ElasticModulusPa:     200e9,
		DensityKgM3:          7850,
		PoissonRatio:         0.30,
		ThermalExpansionPerC: 12e-6,
	},
}

// gradeAliases maps accepted grade spellings to the canonical grade.
var gradeAliases = map[string]SteelGrade{
	"A36":           GradeA36,
	"A572_50":       GradeA572_50,
	"A572-50":       GradeA572_50,
	"A572 GRADE 50": GradeA572_50,
	"A588":          GradeA588,
	"A992":          GradeA992,
}

// GradeDescriptions lists the supported grades with short usage notes.
var GradeDescriptions = map[SteelGrade]string{
	GradeA36:     "General purpose structural steel",
	GradeA572_50: "High-strength low-alloy steel (recommended for gates)",
	GradeA588:    "Weathering steel for outdoor applications",
	GradeA992:    "Wide flange beam steel",
}

// UnknownGradeError is returned when a grade name is not in the fixed table.
type UnknownGradeError struct {
	Name string
}

func (e *UnknownGradeError) Error() string {
	available := make([]string, 0, len(gradeAliases))
	for name := range gradeAliases {
		available = append(available, name)
	}
	return fmt.Sprintf("unknown steel grade %q (supported: A36, A572_50, A588, A992)", e.Name)
}

// Lookup returns the material properties for a grade name. Common alias
// spellings for A572 Grade 50 (hyphen, underscore, spaced) are accepted.
func Lookup(gradeName string) (SteelProperties, error) {
	grade, ok := gradeAliases[strings.ToUpper(strings.TrimSpace(gradeName))]
	if !ok {
		return SteelProperties{}, &UnknownGradeError{Name: gradeName}
	}
	return steelProperties[grade], nil
}

// Grades returns the canonical grade identifiers in a stable order.
func Grades() []SteelGrade {
	return []SteelGrade{GradeA36, GradeA572_50, GradeA588, GradeA992}
}

// SelectionReport carries advisory findings from ValidateSelection.
type SelectionReport struct {
	Grade           string   `json:"grade"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
	Suitable        bool     `json:"suitable"`
}

// ValidateSelection checks a grade choice for an application and returns
// advisory warnings. A low ultimate/yield ratio (< 1.2) is flagged for
// ductility but never rejected.
func ValidateSelection(gradeName, application string) (SelectionReport, error) {
	props, err := Lookup(gradeName)
	if err != nil {
		return SelectionReport{}, err
	}

	report := SelectionReport{Grade: props.Grade}

	if props.YieldStrengthMPa() < 250 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("low yield strength (%.0f MPa) - consider a higher grade", props.YieldStrengthMPa()))
	}
	if ratio := props.UltimateStrengthPa / props.YieldStrengthPa; ratio < 1.2 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("low ultimate/yield ratio (%.2f) - check ductility requirements", ratio))
	}

	switch application {
	case "weathering":
		if props.Grade != steelProperties[GradeA588].Grade {
			report.Recommendations = append(report.Recommendations,
				"consider A588 weathering steel for exposed applications")
		}
	case "high_strength":
		if props.YieldStrengthMPa() < 345 {
			report.Recommendations = append(report.Recommendations,
				"consider A572 Grade 50 or higher for high-strength applications")
		}
	}

	report.Suitable = len(report.Warnings) == 0
	return report, nil
}
