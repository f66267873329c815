package config

import (
	"encoding/json"
	"os"
)

// Config holds the tool-wide settings. Missing config files are replaced with
// defaults; a default file is written on first load.
type Config struct {
	Units            string           `json:"units"`
	SafetyFactors    SafetyFactors    `json:"safety_factors"`
	DefaultMaterials DefaultMaterials `json:"default_materials"`
	DesignParameters DesignParameters `json:"design_parameters"`
	OutputSettings   OutputSettings   `json:"output_settings"`
}

type SafetyFactors struct {
	Structural float64 `json:"structural"`
	Foundation float64 `json:"foundation"`
	Fatigue    float64 `json:"fatigue"`
}

type DefaultMaterials struct {
	SteelGrade string `json:"steel_grade"`
	InfillType string `json:"infill_type"`
}

type DesignParameters struct {
	WindSpeedMS      float64 `json:"wind_speed_ms"`
	SeismicZone      string  `json:"seismic_zone"`
	ExposureCategory string  `json:"exposure_category"`
}

type OutputSettings struct {
	GenerateDrawings       bool `json:"generate_drawings"`
	GenerateCalculations   bool `json:"generate_calculations"`
	GenerateSpecifications bool `json:"generate_specifications"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Units: "metric",
		SafetyFactors: SafetyFactors{
			Structural: 2.5,
			Foundation: 3.0,
			Fatigue:    2.0,
		},
		DefaultMaterials: DefaultMaterials{
			SteelGrade: "A572_50",
			InfillType: "chain_link",
		},
		DesignParameters: DesignParameters{
			WindSpeedMS:      33.5,
			SeismicZone:      "low",
			ExposureCategory: "C",
		},
		OutputSettings: OutputSettings{
			GenerateDrawings:       true,
			GenerateCalculations:   true,
			GenerateSpecifications: true,
		},
	}
}

// Load reads the configuration file, creating it with defaults when absent.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		cfg := Default()
		if err := Save(cfg, filename); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the configuration as indented JSON.
func Save(cfg Config, filename string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
