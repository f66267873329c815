package astm

import (
	"math"
	"testing"
)

func TestCombineReferenceValues(t *testing.T) {
	// dead=10, live=0, wind=5
	combined := Combine(10, 0, 5)

	want := map[string]float64{
		"Service":     10,
		"Dead + Wind": 15,
		"LRFD_1":      14,
		"LRFD_2":      12,
		"LRFD_3":      17,
		"LRFD_4":      20,
		"LRFD_5":      17,
	}
	if len(combined) != len(want) {
		t.Fatalf("len(Combine()) = %d, want %d", len(combined), len(want))
	}
	for label, value := range want {
		got, ok := combined[label]
		if !ok {
			t.Errorf("missing combination %q", label)
			continue
		}
		if math.Abs(got-value) > 1e-12 {
			t.Errorf("%s = %v, want %v", label, got, value)
		}
	}
}

func TestGoverningCombination(t *testing.T) {
	value, combo := Governing(10, 0, 5)
	if combo.Label != "LRFD_4" {
		t.Errorf("governing = %s, want LRFD_4", combo.Label)
	}
	if math.Abs(value-20) > 1e-12 {
		t.Errorf("governing value = %v, want 20", value)
	}
}

func TestGoverningTieBreaksToFirst(t *testing.T) {
	// dead only: LRFD_1 (1.4D) governs over everything, no tie
	_, combo := Governing(10, 0, 0)
	if combo.Label != "LRFD_1" {
		t.Errorf("dead-only governing = %s, want LRFD_1", combo.Label)
	}

	// all zero: every combination evaluates to 0, first in table order wins
	value, combo := Governing(0, 0, 0)
	if value != 0 {
		t.Errorf("zero-load governing value = %v, want 0", value)
	}
	if combo.Label != "Service" {
		t.Errorf("zero-load governing = %s, want Service", combo.Label)
	}
}

func TestFactored(t *testing.T) {
	lc := LoadCombination{Label: "x", Dead: 1.2, Live: 1.6, Wind: 0.5}
	if got := lc.Factored(10, 5, 4); math.Abs(got-22) > 1e-12 {
		t.Errorf("Factored = %v, want 22", got)
	}
}
