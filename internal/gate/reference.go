package gate

import "github.com/alexiusacademia/gogate/internal/section"

// ProductSpec describes a reference commercial cantilever gate product line.
// Used to suggest geometry ratios and default frame sections, never as logic.
type ProductSpec struct {
	Model             string     `json:"model"`
	WidthRangeMM      [2]float64 `json:"width_range_mm"`
	HeightRangeMM     [2]float64 `json:"height_range_mm"`
	FrameSection      string     `json:"frame_section"`
	TrackType         string     `json:"track_type"`
	CounterweightType string     `json:"counterweight_type"`
	Features          []string   `json:"features"`
}

// ProductLines is the fixed reference specification table.
var ProductLines = map[string]ProductSpec{
	"fortress_12": {
		Model:             "Fortress 12",
		WidthRangeMM:      [2]float64{3600, 12000},
		HeightRangeMM:     [2]float64{1800, 3600},
		FrameSection:      "HSS150x150x6",
		TrackType:         "Crane Rail 135lb",
		CounterweightType: "Concrete Block",
		Features: []string{
			"Galvanized construction",
			"Adjustable carrier wheels",
			"Guide wheels",
			"Weather seals",
			"Manual override capability",
		},
	},
	"fortress_20": {
		Model:             "Fortress 20",
		WidthRangeMM:      [2]float64{6000, 20000},
		HeightRangeMM:     [2]float64{1800, 4800},
		FrameSection:      "HSS200x200x10",
		TrackType:         "Crane Rail 175lb",
		CounterweightType: "Steel Plate with Concrete",
		Features: []string{
			"Heavy-duty galvanized construction",
			"Sealed bearing assemblies",
			"Adjustable guide system",
			"Weather protection",
			"Emergency manual operation",
		},
	},
}

// ReferenceGeometry returns the standard reference proportions for a gate of
// the given width.
func ReferenceGeometry(widthMM float64) Geometry {
	return Geometry{
		WidthMM:            widthMM,
		HeightMM:           widthMM * 0.4,
		CantileverLengthMM: widthMM * 0.5,
		TrackLengthMM:      widthMM * 1.5,
		CounterweightArmMM: widthMM * 0.3,
		FrameDepthMM:       200,
	}
}

// FrameSectionFor suggests a frame section for the gate width from the
// reference product lines: the lighter section up to 12 m openings, the
// heavier one beyond.
func FrameSectionFor(widthMM float64) *section.RectangularHSS {
	if widthMM <= 12000 {
		s, _ := section.NewRectangularHSS("HSS150x150x6", 150, 150, 6)
		return s
	}
	s, _ := section.NewRectangularHSS("HSS200x200x10", 200, 200, 10)
	return s
}

// DesignGuidelines collects the reference design rules of thumb.
var DesignGuidelines = map[string]string{
	"cantilever_ratio":    "Cantilever length should be 40-60% of gate width",
	"counterweight_ratio": "Counterweight should be 80-120% of gate weight",
	"track_length":        "Track length should be 120-150% of gate width",
	"foundation":          "Foundation should extend 150% of counterweight length",
	"clearances":          "Maintain 150mm minimum clearance around moving parts",
	"materials":           "Use hot-dip galvanized steel for corrosion protection",
	"connections":         "Use high-strength bolts for all structural connections",
	"maintenance":         "Provide access for lubrication and adjustment",
}
