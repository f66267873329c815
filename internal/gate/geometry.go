package gate

// Geometry holds the gate layout dimensions (all mm).
type Geometry struct {
	WidthMM            float64 `json:"width_mm"`
	HeightMM           float64 `json:"height_mm"`
	CantileverLengthMM float64 `json:"cantilever_length_mm"`
	TrackLengthMM      float64 `json:"track_length_mm"`
	CounterweightArmMM float64 `json:"counterweight_length_mm"`
	FrameDepthMM       float64 `json:"frame_depth_mm"`
}

// DeriveGeometry scales the full gate layout from the opening width and
// height using the standard cantilever gate proportions: cantilever 50% of
// width, track 150%, counterweight arm 30%, frame depth 10% of height capped
// at 200 mm.
func DeriveGeometry(widthMM, heightMM float64) Geometry {
	frameDepth := heightMM * 0.1
	if frameDepth > 200 {
		frameDepth = 200
	}
	return Geometry{
		WidthMM:            widthMM,
		HeightMM:           heightMM,
		CantileverLengthMM: widthMM * 0.5,
		TrackLengthMM:      widthMM * 1.5,
		CounterweightArmMM: widthMM * 0.3,
		FrameDepthMM:       frameDepth,
	}
}
