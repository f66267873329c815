package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Units != "metric" {
		t.Errorf("units = %q, want metric", cfg.Units)
	}
	if cfg.SafetyFactors.Structural != 2.5 {
		t.Errorf("structural factor = %v, want 2.5", cfg.SafetyFactors.Structural)
	}
	if cfg.DefaultMaterials.SteelGrade != "A572_50" {
		t.Errorf("default grade = %q, want A572_50", cfg.DefaultMaterials.SteelGrade)
	}
	if cfg.DesignParameters.WindSpeedMS != 33.5 {
		t.Errorf("default wind speed = %v, want 33.5", cfg.DesignParameters.WindSpeedMS)
	}

	// First load must have written the default file
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config not written: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.DesignParameters.WindSpeedMS = 45
	cfg.DefaultMaterials.SteelGrade = "A588"
	cfg.OutputSettings.GenerateDrawings = false

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.DesignParameters.WindSpeedMS != 45 {
		t.Errorf("wind speed = %v, want 45", loaded.DesignParameters.WindSpeedMS)
	}
	if loaded.DefaultMaterials.SteelGrade != "A588" {
		t.Errorf("grade = %q, want A588", loaded.DefaultMaterials.SteelGrade)
	}
	if loaded.OutputSettings.GenerateDrawings {
		t.Error("GenerateDrawings should round-trip as false")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
