package astm

// LoadCombination represents an ASCE 7 load combination.
// Based on ASCE 7-16 Section 2.3 - Load Combinations for Strength Design,
// plus the two unfactored service checks used for gate design.
type LoadCombination struct {
	Label       string
	Description string
	// Load factors for each load type
	Dead float64 // D - Dead load
	Live float64 // L - Live load
	Wind float64 // W - Wind load
}

// Factored returns the combined value for the given unfactored loads.
// Inputs and output share units (typically N/mm distributed load).
func (lc LoadCombination) Factored(dead, live, wind float64) float64 {
	return lc.Dead*dead + lc.Live*live + lc.Wind*wind
}

// LoadCombinations is the fixed combination table in governing-check order.
// The order matters: Governing breaks ties by first occurrence.
var LoadCombinations = []LoadCombination{
	{
		Label:       "Service",
		Description: "D + L",
		Dead:        1.0,
		Live:        1.0,
	},
	{
		Label:       "Dead + Wind",
		Description: "D + W",
		Dead:        1.0,
		Wind:        1.0,
	},
	{
		Label:       "LRFD_1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		Label:       "LRFD_2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
	{
		Label:       "LRFD_3",
		Description: "1.2D + 1.0L + 1.0W",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
	},
	{
		Label:       "LRFD_4",
		Description: "1.2D + 1.6W",
		Dead:        1.2,
		Wind:        1.6,
	},
	{
		Label:       "LRFD_5",
		Description: "0.9D + 1.6W",
		Dead:        0.9,
		Wind:        1.6,
	},
}

// Combine evaluates every combination for the given dead, live and wind
// distributed loads (N/mm) and returns label -> combined value.
func Combine(dead, live, wind float64) map[string]float64 {
	out := make(map[string]float64, len(LoadCombinations))
	for _, lc := range LoadCombinations {
		out[lc.Label] = lc.Factored(dead, live, wind)
	}
	return out
}

// Governing returns the maximum combined value and its combination.
// Ties resolve to the first combination in table order (strict comparison).
func Governing(dead, live, wind float64) (float64, LoadCombination) {
	var governing LoadCombination
	max := 0.0
	first := true

	for _, lc := range LoadCombinations {
		v := lc.Factored(dead, live, wind)
		if first || v > max {
			max = v
			governing = lc
			first = false
		}
	}

	return max, governing
}
