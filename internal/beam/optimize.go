package beam

import (
	"fmt"
	"log"

	"github.com/alexiusacademia/gogate/internal/section"
)

// NoAdequateSectionError is returned when an optimal-section search finds no
// candidate passing the adequacy checks.
type NoAdequateSectionError struct {
	Candidates int
}

func (e *NoAdequateSectionError) Error() string {
	return fmt.Sprintf("no adequate section found among %d candidates", e.Candidates)
}

// SelectOptimalSection analyzes every candidate under the given loading and
// returns the adequate section with the minimum estimated weight
// (area × length × density), together with its analysis. Candidates that fail
// analysis are logged and skipped so one bad candidate does not abort the
// batch; NoAdequateSectionError is returned when nothing survives.
func (a *Analyzer) SelectOptimalSection(lengthMM, distributedLoadNPerMM float64, pointLoads []PointLoad, candidates []*section.RectangularHSS) (*section.RectangularHSS, *AnalysisResult, error) {
	var (
		best       *section.RectangularHSS
		bestResult *AnalysisResult
		bestWeight float64
	)

	for _, sec := range candidates {
		result, err := a.Analyze(lengthMM, distributedLoadNPerMM, pointLoads, sec)
		if err != nil {
			log.Printf("section %s skipped: %v", sec.Name, err)
			continue
		}
		if !result.SafetyAdequate {
			continue
		}
		weight := sec.WeightKg(lengthMM, a.Material.DensityKgM3)
		if best == nil || weight < bestWeight {
			best = sec
			bestResult = result
			bestWeight = weight
		}
	}

	if best == nil {
		return nil, nil, &NoAdequateSectionError{Candidates: len(candidates)}
	}
	return best, bestResult, nil
}
