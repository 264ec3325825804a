package calculator

import (
	"fairvalue/internal/domain"
	"fmt"
)

// ValuationBlender combines whatever methods produced a positive
// enterprise value into one fair-value estimate. Weights come from the
// caller when supplied, otherwise from deterministic heuristics; either
// way every weight carries a rationale reproducible from the same inputs.
type ValuationBlender struct{}

func NewValuationBlender() ValuationBlender {
	return ValuationBlender{}
}

type BlendInput struct {
	Comps         *domain.CompsResult
	DCF           *domain.DCFResult
	LastRound     *domain.LastRoundResult
	CustomWeights map[string]float64
}

type methodContribution struct {
	method string
	value  float64
}

// Blend returns a zero-valued BlendedValuation with empty weights when no
// method contributed - a valid terminal state the caller must check for,
// not an error.
func (b ValuationBlender) Blend(in BlendInput) *domain.BlendedValuation {
	out := &domain.BlendedValuation{
		Weights:   []domain.MethodologyWeight{},
		Comps:     in.Comps,
		DCF:       in.DCF,
		LastRound: in.LastRound,
	}

	contributions := []methodContribution{}
	if in.Comps != nil && in.Comps.EnterpriseValue > 0 {
		contributions = append(contributions, methodContribution{domain.MethodComps, in.Comps.EnterpriseValue})
	}
	if in.DCF != nil && in.DCF.EnterpriseValue > 0 {
		contributions = append(contributions, methodContribution{domain.MethodDCF, in.DCF.EnterpriseValue})
	}
	if in.LastRound != nil && in.LastRound.EnterpriseValue > 0 {
		contributions = append(contributions, methodContribution{domain.MethodLastRound, in.LastRound.EnterpriseValue})
	}

	if len(contributions) == 0 {
		return out
	}

	var entries []domain.MethodologyWeight
	if len(in.CustomWeights) > 0 {
		entries = b.customWeights(in.CustomWeights, contributions)
	} else {
		entries = b.heuristicWeights(in, contributions)
	}

	total := 0.0
	for _, entry := range entries {
		total += entry.Weight
	}
	if total <= 0 {
		return out
	}

	valueByMethod := map[string]float64{}
	for _, c := range contributions {
		valueByMethod[c.method] = c.value
	}

	fairValue := 0.0
	for i := range entries {
		entries[i].Weight = entries[i].Weight / total
		fairValue += entries[i].Weight * valueByMethod[entries[i].Method]
	}

	// more comparables means more market corroboration, so the band tightens
	rangePct := 0.20
	if in.Comps != nil && in.Comps.EnterpriseValue > 0 && in.Comps.ComparableCount >= 5 {
		rangePct = 0.15
	}

	out.FairValue = fairValue
	out.RangeLow = fairValue * (1 - rangePct)
	out.RangeHigh = fairValue * (1 + rangePct)
	out.Weights = entries

	return out
}

// customWeights keeps only the caller's entries for methods that actually
// contributed; the rationale records the raw supplied value while the
// Weight field gets normalized by the caller.
func (b ValuationBlender) customWeights(weights map[string]float64, contributions []methodContribution) []domain.MethodologyWeight {
	entries := []domain.MethodologyWeight{}
	for _, c := range contributions {
		supplied, ok := weights[c.method]
		if !ok || supplied <= 0 {
			continue
		}
		entries = append(entries, domain.MethodologyWeight{
			Method:    c.method,
			Weight:    supplied,
			Rationale: fmt.Sprintf("Custom weight %.2f", supplied),
		})
	}
	return entries
}

func (b ValuationBlender) heuristicWeights(in BlendInput, contributions []methodContribution) []domain.MethodologyWeight {
	entries := []domain.MethodologyWeight{}
	for _, c := range contributions {
		var (
			weight    float64
			rationale string
		)
		switch c.method {
		case domain.MethodComps:
			weight, rationale = compsWeight(in.Comps)
		case domain.MethodDCF:
			weight, rationale = dcfWeight(in.DCF)
		case domain.MethodLastRound:
			weight, rationale = lastRoundWeight(in.LastRound)
		}
		entries = append(entries, domain.MethodologyWeight{
			Method:    c.method,
			Weight:    weight,
			Rationale: rationale,
		})
	}
	return entries
}

func compsWeight(comps *domain.CompsResult) (float64, string) {
	if comps.ComparableCount >= 3 {
		return 0.40, fmt.Sprintf("Weight 0.40: comparable_count (%d) >= 3 threshold, strong market signal", comps.ComparableCount)
	}
	return 0.25, fmt.Sprintf("Weight 0.25: comparable_count (%d) < 3, limited market data", comps.ComparableCount)
}

func dcfWeight(dcf *domain.DCFResult) (float64, string) {
	if dcf.IsEstimated {
		return 0.15, fmt.Sprintf("Weight 0.15: DCF with %d-year projections, model-estimated inputs - significantly reduced weight", dcf.ProjectionYears)
	}
	return 0.35, fmt.Sprintf("Weight 0.35: DCF with %d-year projections, intrinsic value anchor", dcf.ProjectionYears)
}

// lastRoundWeight checks the estimation flag before staleness, so an
// estimated round that is also stale never picks up the staleness penalty.
func lastRoundWeight(lastRound *domain.LastRoundResult) (float64, string) {
	if lastRound.IsEstimated {
		return 0.10, "Weight 0.10: last-round valuation was model-estimated - minimal weight"
	}

	if lastRound.IsStale {
		months := 0
		if lastRound.MonthsSinceRound != nil {
			months = *lastRound.MonthsSinceRound
		}
		return 0.15, fmt.Sprintf("Weight 0.15: last round %dmo ago > 18mo staleness threshold, reduced weight", months)
	}

	monthsStr := "date unknown"
	if lastRound.MonthsSinceRound != nil {
		monthsStr = fmt.Sprintf("%dmo ago", *lastRound.MonthsSinceRound)
	}
	return 0.25, fmt.Sprintf("Weight 0.25: last round %s, within 18mo freshness window", monthsStr)
}
