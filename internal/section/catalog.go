package section

import "fmt"

// standardDims lists the square HSS sizes stocked for gate frames,
// smallest first so optimal-section searches scan light to heavy.
var standardDims = []struct {
	depth, width, thickness float64
}{
	{100, 100, 4},
	{100, 100, 6},
	{125, 125, 5},
	{150, 150, 6},
	{150, 150, 8},
	{200, 200, 8},
	{200, 200, 10},
	{250, 250, 10},
	{300, 300, 12},
}

// StandardCatalog constructs the standard HSS candidate list. All catalog
// dimensions are valid by construction.
func StandardCatalog() []*RectangularHSS {
	sections := make([]*RectangularHSS, 0, len(standardDims))
	for _, d := range standardDims {
		name := fmt.Sprintf("HSS%.0fx%.0fx%.0f", d.depth, d.width, d.thickness)
		s, err := NewRectangularHSS(name, d.depth, d.width, d.thickness)
		if err != nil {
			continue
		}
		sections = append(sections, s)
	}
	return sections
}
