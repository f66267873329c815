package section

import (
	"errors"
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestHSS150x150x6Properties(t *testing.T) {
	s, err := NewRectangularHSS("HSS150x150x6", 150, 150, 6)
	if err != nil {
		t.Fatalf("NewRectangularHSS error: %v", err)
	}

	if !approxEqual(s.AreaMM2, 3456, 1e-9) {
		t.Errorf("area = %v, want 3456", s.AreaMM2)
	}
	if !approxEqual(s.IxMM4, 11964672, 1e-6) {
		t.Errorf("Ix = %v, want 11964672", s.IxMM4)
	}
	if !approxEqual(s.SxMM3, 159528.96, 1e-6) {
		t.Errorf("Sx = %v, want 159528.96", s.SxMM3)
	}
	// Square section: both axes identical
	if !approxEqual(s.IxMM4, s.IyMM4, 1e-9) {
		t.Errorf("square HSS Ix (%v) != Iy (%v)", s.IxMM4, s.IyMM4)
	}
	if !approxEqual(s.RxMM, math.Sqrt(s.IxMM4/s.AreaMM2), 1e-9) {
		t.Errorf("rx = %v, want sqrt(Ix/A)", s.RxMM)
	}
}

func TestSectionModulusConsistency(t *testing.T) {
	s, err := NewRectangularHSS("HSS200x100x8", 200, 100, 8)
	if err != nil {
		t.Fatalf("NewRectangularHSS error: %v", err)
	}
	if !approxEqual(s.SxMM3*s.WidthMM/2, s.IxMM4, 1e-6) {
		t.Errorf("Sx * W/2 = %v, want Ix = %v", s.SxMM3*s.WidthMM/2, s.IxMM4)
	}
	if !approxEqual(s.SyMM3*s.DepthMM/2, s.IyMM4, 1e-6) {
		t.Errorf("Sy * D/2 = %v, want Iy = %v", s.SyMM3*s.DepthMM/2, s.IyMM4)
	}
}

func TestInvalidDimensions(t *testing.T) {
	cases := []struct {
		name                    string
		depth, width, thickness float64
	}{
		{"zero depth", 0, 150, 6},
		{"negative width", 150, -150, 6},
		{"zero thickness", 150, 150, 0},
		{"wall closes cavity", 150, 150, 75},
		{"wall beyond half", 100, 200, 60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRectangularHSS("bad", tc.depth, tc.width, tc.thickness)
			if err == nil {
				t.Fatalf("expected error for %gx%gx%g", tc.depth, tc.width, tc.thickness)
			}
			var invalid *InvalidSectionError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidSectionError, got %T", err)
			}
		})
	}
}

func TestWeight(t *testing.T) {
	s, err := NewRectangularHSS("HSS150x150x6", 150, 150, 6)
	if err != nil {
		t.Fatalf("NewRectangularHSS error: %v", err)
	}
	// 3456 mm² × 1000 mm × 7850 kg/m³ / 1e9 = 27.1296 kg/m
	if !approxEqual(s.WeightKgPerM(7850), 27.1296, 1e-9) {
		t.Errorf("weight per m = %v, want 27.1296", s.WeightKgPerM(7850))
	}
	if !approxEqual(s.WeightKg(2000, 7850), 2*s.WeightKgPerM(7850), 1e-9) {
		t.Errorf("weight scaling mismatch")
	}
}

func TestStandardCatalog(t *testing.T) {
	catalog := StandardCatalog()
	if len(catalog) != 9 {
		t.Fatalf("catalog size = %d, want 9", len(catalog))
	}
	// Ordered light to heavy
	for i := 1; i < len(catalog); i++ {
		if catalog[i].AreaMM2 < catalog[i-1].AreaMM2 {
			t.Errorf("catalog not ordered by weight at %s (%v < %v)",
				catalog[i].Name, catalog[i].AreaMM2, catalog[i-1].AreaMM2)
		}
	}
	if catalog[0].Name != "HSS100x100x4" {
		t.Errorf("first catalog entry = %s, want HSS100x100x4", catalog[0].Name)
	}
}
