package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gogate/internal/beam"
)

// plotWidth/plotHeight size the terminal distribution graphs.
const (
	plotWidth  = 64
	plotHeight = 10
)

// DrawMomentGraph renders the bending moment distribution (kN·m) as a
// terminal graph, fixed end on the left.
func DrawMomentGraph(result *beam.AnalysisResult) string {
	return asciigraph.Plot(scale(result.MomentsNmm, 1e-6),
		asciigraph.Width(plotWidth),
		asciigraph.Height(plotHeight),
		asciigraph.Caption("Bending Moment (kN·m), fixed end → free end"),
	)
}

// DrawShearGraph renders the shear force distribution (kN) as a terminal
// graph.
func DrawShearGraph(result *beam.AnalysisResult) string {
	return asciigraph.Plot(scale(result.ShearsN, 1e-3),
		asciigraph.Width(plotWidth),
		asciigraph.Height(plotHeight),
		asciigraph.Caption("Shear Force (kN), fixed end → free end"),
	)
}

// DrawDeflectionGraph renders the deflection distribution (mm) as a terminal
// graph.
func DrawDeflectionGraph(result *beam.AnalysisResult) string {
	return asciigraph.Plot(result.DeflectionsMM,
		asciigraph.Width(plotWidth),
		asciigraph.Height(plotHeight),
		asciigraph.Caption("Deflection (mm), fixed end → free end"),
	)
}

// DrawLoadingDiagram sketches the cantilever loading: distributed load over
// the span, point loads marked at their positions, the fixed support on the
// left and the free end on the right.
func DrawLoadingDiagram(lengthMM, distributedNPerMM float64, pointLoads []beam.PointLoad) string {
	var sb strings.Builder

	const span = 50

	sb.WriteString("\n")
	if distributedNPerMM > 0 {
		sb.WriteString("     " + strings.Repeat("↓ ", span/2) + "\n")
		sb.WriteString(fmt.Sprintf("     w = %.2f N/mm\n", distributedNPerMM))
	}

	line := []rune("  ▌" + strings.Repeat("═", span) + "○")
	for _, pl := range pointLoads {
		idx := 3 + int(pl.PositionMM/lengthMM*float64(span-1))
		if idx >= 3 && idx < len(line)-1 {
			line[idx] = '▼'
		}
	}
	sb.WriteString(string(line) + "\n")
	sb.WriteString("  ▌fixed" + strings.Repeat(" ", span-9) + "free\n")

	for _, pl := range pointLoads {
		sb.WriteString(fmt.Sprintf("  ▼ %.0f N @ %.0f mm\n", pl.LoadN, pl.PositionMM))
	}
	sb.WriteString(fmt.Sprintf("  L = %.0f mm\n", lengthMM))

	return sb.String()
}

// DrawSummaryBox frames a titled list of result lines.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func scale(values []float64, factor float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * factor
	}
	return out
}
