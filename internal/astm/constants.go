package astm

// Physical constants and design factors used across the gate calculations.

const (
	// GravityMS2 is the acceleration due to gravity (m/s²).
	GravityMS2 = 9.81

	// SteelDensityKgM3 is the density of structural steel (kg/m³).
	SteelDensityKgM3 = 7850.0

	// ConcreteDensityKgM3 is the density of normal-weight concrete (kg/m³).
	ConcreteDensityKgM3 = 2400.0

	// DynamicPressureCoeff converts wind speed squared (m/s)² to dynamic
	// pressure (Pa): q = 0.613 V². Encodes standard sea-level air density
	// per ASCE 7-16 Eq. 26.10-1; not a configurable physical parameter.
	DynamicPressureCoeff = 0.613

	// DragCoefficient for a flat rectangular gate panel.
	DragCoefficient = 1.2

	// StructuralSafetyFactor is applied to yield strength for cantilever
	// gate structures.
	StructuralSafetyFactor = 2.5

	// FoundationSafetyFactor for foundation checks.
	FoundationSafetyFactor = 3.0

	// DeflectionLimitRatio is the span-over limit (L/240).
	DeflectionLimitRatio = 240.0

	// TrackFrictionCoeff is the assumed wheel friction coefficient for the
	// horizontal track reaction.
	TrackFrictionCoeff = 0.1

	// DefaultWindSpeedMS is the default design wind speed (33.5 m/s = 75 mph).
	DefaultWindSpeedMS = 33.5
)
