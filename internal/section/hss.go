package section

import (
	"fmt"
	"math"
)

// RectangularHSS represents a rectangular Hollow Structural Section with its
// derived properties per the AISC Steel Construction Manual. All derived
// values are computed once at construction and never mutated.
type RectangularHSS struct {
	Name        string  `json:"name"`
	DepthMM     float64 `json:"depth_mm"`     // Overall depth
	WidthMM     float64 `json:"width_mm"`     // Overall width
	ThicknessMM float64 `json:"thickness_mm"` // Wall thickness

	AreaMM2 float64 `json:"area_mm2"` // Cross-sectional area
	IxMM4   float64 `json:"Ix_mm4"`   // Moment of inertia, strong axis
	IyMM4   float64 `json:"Iy_mm4"`   // Moment of inertia, weak axis
	SxMM3   float64 `json:"Sx_mm3"`   // Section modulus, strong axis
	SyMM3   float64 `json:"Sy_mm3"`   // Section modulus, weak axis
	RxMM    float64 `json:"rx_mm"`    // Radius of gyration, strong axis
	RyMM    float64 `json:"ry_mm"`    // Radius of gyration, weak axis
}

// InvalidSectionError describes section dimensions that would produce a
// non-physical hollow section.
type InvalidSectionError struct {
	DepthMM     float64
	WidthMM     float64
	ThicknessMM float64
	Reason      string
}

func (e *InvalidSectionError) Error() string {
	return fmt.Sprintf("invalid section %gx%gx%g mm: %s",
		e.DepthMM, e.WidthMM, e.ThicknessMM, e.Reason)
}

// NewRectangularHSS derives the section properties of a rectangular HSS from
// its outer depth, outer width and wall thickness (all mm). The wall thickness
// must be strictly less than half the smaller outer dimension, otherwise the
// inner cavity would close on itself.
func NewRectangularHSS(name string, depthMM, widthMM, thicknessMM float64) (*RectangularHSS, error) {
	if depthMM <= 0 || widthMM <= 0 || thicknessMM <= 0 {
		return nil, &InvalidSectionError{
			DepthMM: depthMM, WidthMM: widthMM, ThicknessMM: thicknessMM,
			Reason: "all dimensions must be positive",
		}
	}
	if thicknessMM >= math.Min(depthMM, widthMM)/2 {
		return nil, &InvalidSectionError{
			DepthMM: depthMM, WidthMM: widthMM, ThicknessMM: thicknessMM,
			Reason: "wall thickness too large for outer dimensions",
		}
	}

	innerDepth := depthMM - 2*thicknessMM
	innerWidth := widthMM - 2*thicknessMM

	area := depthMM*widthMM - innerDepth*innerWidth

	// Strong axis: bending about the width axis
	ix := depthMM*math.Pow(widthMM, 3)/12 - innerDepth*math.Pow(innerWidth, 3)/12

	// Weak axis: bending about the depth axis
	iy := widthMM*math.Pow(depthMM, 3)/12 - innerWidth*math.Pow(innerDepth, 3)/12

	s := &RectangularHSS{
		Name:        name,
		DepthMM:     depthMM,
		WidthMM:     widthMM,
		ThicknessMM: thicknessMM,
		AreaMM2:     area,
		IxMM4:       ix,
		IyMM4:       iy,
		SxMM3:       ix / (widthMM / 2),
		SyMM3:       iy / (depthMM / 2),
		RxMM:        math.Sqrt(ix / area),
		RyMM:        math.Sqrt(iy / area),
	}
	return s, nil
}

// WeightKg estimates the member weight for a given length (mm) and material
// density (kg/m³).
func (s *RectangularHSS) WeightKg(lengthMM, densityKgM3 float64) float64 {
	return s.AreaMM2 * lengthMM * densityKgM3 / 1e9
}

// WeightKgPerM is the member weight per meter of length (kg/m).
func (s *RectangularHSS) WeightKgPerM(densityKgM3 float64) float64 {
	return s.WeightKg(1000, densityKgM3)
}
