package calculator

import (
	"fairvalue/internal/domain"
	"fmt"
	"math"
	"strings"

	"github.com/montanaflynn/stats"
)

// sectors that price off similar multiples get partial credit even when
// the labels don't match exactly
var sectorGroups = [][]string{
	{"technology", "information technology", "software", "saas"},
	{"consumer cyclical", "consumer defensive", "retail"},
	{"healthcare", "biotechnology", "pharmaceuticals"},
	{"financial services", "fintech", "insurance"},
}

// ComparableScorer filters candidate comparables against a target company
// and prices the target off the surviving EV/Revenue multiples. The
// weights and threshold are fixed in practice but kept overridable for
// experimentation.
type ComparableScorer struct {
	SectorWeight      float64
	SizeWeight        float64
	DataQualityWeight float64
	MinCompositeScore float64
}

func NewComparableScorer() ComparableScorer {
	return ComparableScorer{
		SectorWeight:      0.3,
		SizeWeight:        0.4,
		DataQualityWeight: 0.3,
		MinCompositeScore: 0.3,
	}
}

type CompsValuationInput struct {
	Comparables   []domain.ComparableCompany
	TargetRevenue float64
	TargetSector  string
	// IsEstimated marks that the target revenue came from an enrichment
	// estimate rather than the caller
	IsEstimated bool
}

// Score evaluates every candidate and returns the included subset plus one
// selection record per input, included or not.
func (s ComparableScorer) Score(comps []domain.ComparableCompany, targetRevenue float64, targetSector string) ([]domain.ComparableCompany, []domain.CompSelectionScore) {
	included := []domain.ComparableCompany{}
	scores := make([]domain.CompSelectionScore, 0, len(comps))

	for _, comp := range comps {
		secScore := sectorScore(targetSector, comp.Sector)

		// with no usable target revenue, size is unknowable - score it
		// neutral and don't exclude on it
		sizeScore := 0.5
		if targetRevenue > 0 {
			sizeScore = sizeProximityScore(targetRevenue, comp.Revenue)
		}

		quality := dataQualityScore(comp)
		composite := s.SectorWeight*secScore + s.SizeWeight*sizeScore + s.DataQualityWeight*quality

		record := domain.CompSelectionScore{
			Ticker:           comp.Ticker,
			SectorScore:      round2(secScore),
			SizeScore:        round2(sizeScore),
			DataQualityScore: round2(quality),
			CompositeScore:   round2(composite),
		}

		switch {
		case quality == 0:
			record.ExclusionReason = "Missing EV/Revenue data"
		case sizeScore == 0 && targetRevenue > 0:
			record.ExclusionReason = "Revenue outside 0.1x-10x range of target"
		case composite < s.MinCompositeScore:
			record.ExclusionReason = fmt.Sprintf("Composite score %.2f below %.2f threshold", composite, s.MinCompositeScore)
		default:
			record.Included = true
			included = append(included, comp)
		}

		scores = append(scores, record)
	}

	return included, scores
}

// Valuate runs selection and prices the target at the median EV/Revenue of
// the valid comparables. An empty valid set is not an error - it returns a
// zero-value result with a warning so the blender can skip the method.
func (s ComparableScorer) Valuate(in CompsValuationInput) (*domain.CompsResult, error) {
	var (
		filtered []domain.ComparableCompany
		scores   []domain.CompSelectionScore
		criteria *domain.SelectionCriteria
	)

	if in.TargetSector != "" {
		filtered, scores = s.Score(in.Comparables, in.TargetRevenue, in.TargetSector)
		criteria = &domain.SelectionCriteria{
			SectorWeight:      s.SectorWeight,
			SizeWeight:        s.SizeWeight,
			DataQualityWeight: s.DataQualityWeight,
			MinCompositeScore: s.MinCompositeScore,
			TargetSector:      in.TargetSector,
		}
	} else {
		// no sector to score against - lenient path keeps every candidate
		filtered = in.Comparables
	}

	result := &domain.CompsResult{
		Comparables:       filtered,
		SelectionScores:   scores,
		SelectionCriteria: criteria,
		IsEstimated:       in.IsEstimated,
	}

	valid := make([]domain.ComparableCompany, 0, len(filtered))
	multiples := []float64{}
	for _, comp := range filtered {
		if comp.EVToRevenue != nil && *comp.EVToRevenue > 0 {
			valid = append(valid, comp)
			multiples = append(multiples, *comp.EVToRevenue)
		}
	}

	if len(valid) == 0 {
		result.Warnings = append(result.Warnings, "No valid comparables available")
		return result, nil
	}

	medianMultiple, err := stats.Median(multiples)
	if err != nil {
		return nil, fmt.Errorf("failed to compute median EV/Revenue: %w", err)
	}
	meanMultiple, err := stats.Mean(multiples)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean EV/Revenue: %w", err)
	}

	result.MedianEVToRevenue = medianMultiple
	result.MeanEVToRevenue = meanMultiple
	result.ComparableCount = len(valid)
	result.EnterpriseValue = in.TargetRevenue * medianMultiple

	if len(valid) < 2 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Only %d valid comparable(s) with EV/Revenue data", len(valid)))
	}

	// EV/EBITDA stats run over the filtered set, not the valid one, so a
	// comp lacking an EV/Revenue multiple can still inform them
	ebitdaMultiples := []float64{}
	for _, comp := range filtered {
		if comp.EVToEBITDA != nil && *comp.EVToEBITDA > 0 {
			ebitdaMultiples = append(ebitdaMultiples, *comp.EVToEBITDA)
		}
	}
	if len(ebitdaMultiples) > 0 {
		medianEbitda, err := stats.Median(ebitdaMultiples)
		if err != nil {
			return nil, fmt.Errorf("failed to compute median EV/EBITDA: %w", err)
		}
		meanEbitda, err := stats.Mean(ebitdaMultiples)
		if err != nil {
			return nil, fmt.Errorf("failed to compute mean EV/EBITDA: %w", err)
		}
		result.MedianEVToEBITDA = &medianEbitda
		result.MeanEVToEBITDA = &meanEbitda
	}

	return result, nil
}

func sectorScore(targetSector, compSector string) float64 {
	if strings.TrimSpace(targetSector) == "" || strings.TrimSpace(compSector) == "" {
		return 0.5
	}

	target := strings.ToLower(strings.TrimSpace(targetSector))
	comp := strings.ToLower(strings.TrimSpace(compSector))
	if target == comp {
		return 1.0
	}

	for _, group := range sectorGroups {
		if containsString(group, target) && containsString(group, comp) {
			return 0.5
		}
	}

	return 0.0
}

// sizeProximityScore decays symmetrically in log-space: an exact revenue
// match scores 1, a 10x mismatch in either direction scores 0.
func sizeProximityScore(targetRevenue float64, compRevenue *float64) float64 {
	if compRevenue == nil || *compRevenue <= 0 || targetRevenue <= 0 {
		return 0
	}

	ratio := *compRevenue / targetRevenue
	if ratio < 0.1 || ratio > 10 {
		return 0
	}

	return math.Max(0, 1-math.Abs(math.Log10(ratio)))
}

// dataQualityScore is 0 without a usable EV/Revenue multiple (hard
// requirement), otherwise the fraction of the six pricing fields present.
func dataQualityScore(comp domain.ComparableCompany) float64 {
	if comp.EVToRevenue == nil || *comp.EVToRevenue <= 0 {
		return 0
	}

	fields := []*float64{
		comp.MarketCap,
		comp.EnterpriseValue,
		comp.Revenue,
		comp.EBITDA,
		comp.EVToRevenue,
		comp.EVToEBITDA,
	}
	present := 0
	for _, field := range fields {
		if field != nil {
			present++
		}
	}

	return float64(present) / float64(len(fields))
}

func containsString(list []string, s string) bool {
	for _, candidate := range list {
		if candidate == s {
			return true
		}
	}
	return false
}
