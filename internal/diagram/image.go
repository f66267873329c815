package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gogate/internal/beam"
	"github.com/alexiusacademia/gogate/internal/gate"
)

// ExportMomentDiagram exports the bending moment diagram to an image file.
func ExportMomentDiagram(result *beam.AnalysisResult, filename string) error {
	return exportDistribution(result.PositionsMM, result.MomentsNmm, 1e-6,
		"Bending Moment Diagram", "Moment (kN·m)",
		color.RGBA{B: 200, A: 255}, color.RGBA{B: 200, A: 60},
		"kN·m", filename)
}

// ExportShearDiagram exports the shear force diagram to an image file.
func ExportShearDiagram(result *beam.AnalysisResult, filename string) error {
	return exportDistribution(result.PositionsMM, result.ShearsN, 1e-3,
		"Shear Force Diagram", "Shear (kN)",
		color.RGBA{G: 140, A: 255}, color.RGBA{G: 140, A: 60},
		"kN", filename)
}

// ExportDeflectionDiagram exports the deflection diagram to an image file.
func ExportDeflectionDiagram(result *beam.AnalysisResult, filename string) error {
	return exportDistribution(result.PositionsMM, result.DeflectionsMM, 1,
		"Deflection Diagram", "Deflection (mm)",
		color.RGBA{R: 180, A: 255}, color.RGBA{R: 180, A: 60},
		"mm", filename)
}

// exportDistribution draws one position-resolved distribution with a filled
// area under the curve and the extreme value marked.
func exportDistribution(positionsMM, values []float64, factor float64, title, yLabel string, lineColor, fillColor color.Color, unit, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(values))
	area := make(plotter.XYs, 0, len(values)+2)
	area = append(area, plotter.XY{X: positionsMM[0] / 1000, Y: 0})
	maxIdx := 0
	for i, v := range values {
		pts[i] = plotter.XY{X: positionsMM[i] / 1000, Y: v * factor}
		area = append(area, pts[i])
		if math.Abs(v) > math.Abs(values[maxIdx]) {
			maxIdx = i
		}
	}
	area = append(area, plotter.XY{X: positionsMM[len(positionsMM)-1] / 1000, Y: 0})

	fill, err := plotter.NewPolygon(area)
	if err != nil {
		return err
	}
	fill.Color = fillColor
	fill.LineStyle.Color = color.Transparent
	p.Add(fill)

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = lineColor
	p.Add(line)

	// Mark the extreme value
	peak, err := plotter.NewScatter(plotter.XYs{pts[maxIdx]})
	if err != nil {
		return err
	}
	peak.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	peak.GlyphStyle.Radius = vg.Points(4)
	peak.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(peak)

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{pts[maxIdx]},
		Labels: []string{fmt.Sprintf("max %.1f %s", values[maxIdx]*factor, unit)},
	})
	if err != nil {
		return err
	}
	p.Add(label)

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

// ExportGateElevation draws the gate elevation: panel outline, cantilever
// overhang, track line and counterweight arm.
func ExportGateElevation(geom gate.Geometry, filename string) error {
	p := plot.New()
	p.Title.Text = "Gate Elevation"
	p.X.Label.Text = "Length (mm)"
	p.Y.Label.Text = "Height (mm)"

	panel := plotter.XYs{
		{X: 0, Y: 0},
		{X: geom.WidthMM, Y: 0},
		{X: geom.WidthMM, Y: geom.HeightMM},
		{X: 0, Y: geom.HeightMM},
		{X: 0, Y: 0},
	}
	panelLine, err := plotter.NewLine(panel)
	if err != nil {
		return err
	}
	panelLine.LineStyle.Width = vg.Points(2)
	panelLine.LineStyle.Color = color.Black
	p.Add(panelLine)

	// Cantilever overhang beyond the panel at track level
	overhang := plotter.XYs{
		{X: geom.WidthMM, Y: 0},
		{X: geom.WidthMM + geom.CantileverLengthMM, Y: 0},
	}
	overhangLine, err := plotter.NewLine(overhang)
	if err != nil {
		return err
	}
	overhangLine.LineStyle.Width = vg.Points(2)
	overhangLine.LineStyle.Color = color.RGBA{B: 200, A: 255}
	p.Add(overhangLine)

	// Counterweight arm behind the panel
	arm := plotter.XYs{
		{X: -geom.CounterweightArmMM, Y: 0},
		{X: 0, Y: 0},
	}
	armLine, err := plotter.NewLine(arm)
	if err != nil {
		return err
	}
	armLine.LineStyle.Width = vg.Points(2)
	armLine.LineStyle.Color = color.RGBA{R: 180, A: 255}
	p.Add(armLine)

	// Track line
	track := plotter.XYs{
		{X: -geom.CounterweightArmMM, Y: -geom.FrameDepthMM},
		{X: -geom.CounterweightArmMM + geom.TrackLengthMM, Y: -geom.FrameDepthMM},
	}
	trackLine, err := plotter.NewLine(track)
	if err != nil {
		return err
	}
	trackLine.LineStyle.Width = vg.Points(1.5)
	trackLine.LineStyle.Color = color.Gray{Y: 100}
	trackLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(trackLine)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: geom.WidthMM / 2, Y: geom.HeightMM / 2},
			{X: geom.WidthMM + geom.CantileverLengthMM/2, Y: geom.HeightMM * 0.05},
			{X: -geom.CounterweightArmMM / 2, Y: geom.HeightMM * 0.05},
		},
		Labels: []string{"gate panel", "cantilever", "counterweight arm"},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	return save(p, 10*vg.Inch, 5*vg.Inch, filename)
}

// save writes the plot, creating the target directory and defaulting to PNG
// for unrecognized extensions.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
