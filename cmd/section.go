package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gogate/internal/beam"
	"github.com/alexiusacademia/gogate/internal/section"
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "HSS section property calculation and selection",
	Long: `Calculate rectangular HSS section properties or select the lightest
adequate section from the standard catalog for a loading.

Examples:
  # Properties of HSS 150x150x6
  gogate section props 150x150x6

  # Lightest adequate catalog section for a 4 m cantilever
  gogate section select --length 4000 --udl 2.5 --grade A572_50`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}

// parseSectionSpec parses a DxWxT designation like "150x150x6" into a
// rectangular HSS.
func parseSectionSpec(spec string) (*section.RectangularHSS, error) {
	parts := strings.Split(strings.ToLower(spec), "x")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid section %q (expected DxWxT, e.g. 150x150x6)", spec)
	}
	dims := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid section %q: %v", spec, err)
		}
		dims[i] = v
	}
	name := fmt.Sprintf("HSS%gx%gx%g", dims[0], dims[1], dims[2])
	return section.NewRectangularHSS(name, dims[0], dims[1], dims[2])
}

// parsePointLoads parses repeated "position:load" flags (mm and N) into
// point loads.
func parsePointLoads(specs []string) ([]beam.PointLoad, error) {
	loads := make([]beam.PointLoad, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid point load %q (expected position:load, e.g. 3200:2000)", spec)
		}
		pos, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point load position %q: %v", parts[0], err)
		}
		load, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point load value %q: %v", parts[1], err)
		}
		loads = append(loads, beam.PointLoad{PositionMM: pos, LoadN: load})
	}
	return loads, nil
}
