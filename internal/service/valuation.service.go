package service

import (
	"context"
	"fairvalue/internal/calculator"
	"fairvalue/internal/domain"
	"fairvalue/internal/logger"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValuationService decides which methods can run for a request, runs them
// in isolation, annotates cross-method disagreements, and blends the
// survivors into a single fair value. It owns no I/O - enrichment and
// market data arrive already fetched.
type ValuationService interface {
	Valuate(ctx context.Context, req domain.ValuationRequest, enriched *domain.EnrichedCompanyData, marketData *domain.MarketData) (*ValuationOutcome, error)
	Reblend(valuation *domain.BlendedValuation, weights map[string]float64) (*domain.BlendedValuation, error)
}

// ValuationOutcome pairs the blended result with a provenance record of
// where each resolved input came from.
type ValuationOutcome struct {
	Valuation   *domain.BlendedValuation
	Assumptions map[string]string
}

type valuationServiceHandler struct {
	Scorer    calculator.ComparableScorer
	DCFEngine calculator.DCFEngine
	Adjuster  calculator.LastRoundAdjuster
	Blender   calculator.ValuationBlender
}

func NewValuationService() ValuationService {
	return valuationServiceHandler{
		Scorer:    calculator.NewComparableScorer(),
		DCFEngine: calculator.NewDCFEngine(),
		Adjuster:  calculator.NewLastRoundAdjuster(),
		Blender:   calculator.NewValuationBlender(),
	}
}

// resolvedInputs is the request merged with enrichment estimates. User
// values always win; estimated fields are flagged so downstream weighting
// and warnings can discount them.
type resolvedInputs struct {
	revenue              *float64
	revenueSource        string
	revenueEstimated     bool
	ebitda               *float64
	ebitdaSource         string
	lastRoundValuation   *float64
	lastRoundDate        string
	lastRoundEstimated   bool
	projections          *domain.FinancialProjections
	projectionsEstimated bool
}

func (h valuationServiceHandler) Valuate(ctx context.Context, req domain.ValuationRequest, enriched *domain.EnrichedCompanyData, marketData *domain.MarketData) (*ValuationOutcome, error) {
	log := logger.FromContext(ctx)
	if enriched == nil {
		enriched = &domain.EnrichedCompanyData{ApplicableMethods: []string{domain.MethodComps}}
	}
	if marketData == nil {
		marketData = &domain.MarketData{}
	}

	resolved := resolveInputs(ctx, req, enriched)
	sourceLinks := formatSourceLinks(enriched.Sources)

	canRunComps := enriched.HasMethod(domain.MethodComps) &&
		resolved.revenue != nil && *resolved.revenue > 0 &&
		len(marketData.Comparables) > 0
	canRunDCF := enriched.HasMethod(domain.MethodDCF) && resolved.projections != nil
	canRunLastRound := enriched.HasMethod(domain.MethodLastRound) &&
		resolved.lastRoundValuation != nil && *resolved.lastRoundValuation > 0 &&
		resolved.lastRoundDate != ""

	if !canRunComps && !canRunDCF && !canRunLastRound {
		missing := identifyMissing(resolved, marketData)
		log.Errorf("no valuation method runnable for %q, missing: %v", req.CompanyName, missing)
		return nil, domain.InsufficientDataError{MissingFields: missing}
	}

	var (
		compsResult     *domain.CompsResult
		dcfResult       *domain.DCFResult
		lastRoundResult *domain.LastRoundResult
	)

	if canRunComps {
		result, err := h.Scorer.Valuate(calculator.CompsValuationInput{
			Comparables:   marketData.Comparables,
			TargetRevenue: *resolved.revenue,
			TargetSector:  enriched.Sector,
			IsEstimated:   resolved.revenueEstimated,
		})
		if err != nil {
			log.Errorf("%v", domain.MethodComputationError{Method: domain.MethodComps, Err: err})
		} else {
			compsResult = result
			if resolved.revenueEstimated {
				compsResult.Warnings = append(compsResult.Warnings,
					fmt.Sprintf("Revenue source: %s.%s", resolved.revenueSource, sourceLinks))
			}
			log.Infof("comps: EV=$%s from %d comparables", withCommas(compsResult.EnterpriseValue), compsResult.ComparableCount)
		}
	}

	if canRunDCF {
		dcfResult = h.DCFEngine.Valuate(calculator.DCFValuationInput{
			Projections: *resolved.projections,
			IsEstimated: resolved.projectionsEstimated,
		})
		if resolved.projectionsEstimated {
			dcfResult.Warnings = append(dcfResult.Warnings,
				fmt.Sprintf("DCF inputs are model-estimated (%s confidence). Growth rates, margins, WACC, and terminal growth were inferred from company research.%s",
					confidenceLabel(enriched), sourceLinks))
		}
		log.Infof("dcf: EV=$%s over %d years", withCommas(dcfResult.EnterpriseValue), dcfResult.ProjectionYears)
	}

	if canRunLastRound {
		lastRoundResult = h.Adjuster.Valuate(calculator.LastRoundInput{
			Valuation:   *resolved.lastRoundValuation,
			RoundDate:   resolved.lastRoundDate,
			Index:       marketData.Index,
			IsEstimated: resolved.lastRoundEstimated,
		})
		if resolved.lastRoundEstimated {
			lastRoundResult.Warnings = append(lastRoundResult.Warnings,
				fmt.Sprintf("Last round data is model-estimated (%s confidence).%s", confidenceLabel(enriched), sourceLinks))
		}
		log.Infof("last round: EV=$%s", withCommas(lastRoundResult.EnterpriseValue))
	}

	appendMismatchWarnings(req, enriched, dcfResult, lastRoundResult, sourceLinks)

	blended := h.Blender.Blend(calculator.BlendInput{
		Comps:         compsResult,
		DCF:           dcfResult,
		LastRound:     lastRoundResult,
		CustomWeights: req.CustomWeights,
	})

	// every method that ran priced the company at zero - operationally the
	// same as nothing having run
	if blended.FairValue == 0 {
		missing := identifyMissing(resolved, marketData)
		log.Errorf("all valuation methods produced $0 for %q", req.CompanyName)
		return nil, domain.InsufficientDataError{MissingFields: missing}
	}

	return &ValuationOutcome{
		Valuation:   blended,
		Assumptions: buildAssumptions(resolved, marketData),
	}, nil
}

// Reblend recomputes the blend from already-computed method results with
// caller-supplied weights. No data is re-fetched and no method is re-run.
func (h valuationServiceHandler) Reblend(valuation *domain.BlendedValuation, weights map[string]float64) (*domain.BlendedValuation, error) {
	if valuation == nil || (valuation.Comps == nil && valuation.DCF == nil && valuation.LastRound == nil) {
		return nil, fmt.Errorf("no valuation results available to reweight")
	}
	return h.Blender.Blend(calculator.BlendInput{
		Comps:         valuation.Comps,
		DCF:           valuation.DCF,
		LastRound:     valuation.LastRound,
		CustomWeights: weights,
	}), nil
}

func resolveInputs(ctx context.Context, req domain.ValuationRequest, enriched *domain.EnrichedCompanyData) resolvedInputs {
	log := logger.FromContext(ctx)

	resolved := resolvedInputs{
		revenue:            req.Revenue,
		revenueSource:      "user-provided",
		ebitda:             req.EBITDA,
		ebitdaSource:       "user-provided",
		lastRoundValuation: req.LastRoundValuation,
		lastRoundDate:      req.LastRoundDate,
		projections:        req.Projections,
	}

	if resolved.revenue == nil && enriched.EstimatedRevenue != nil && *enriched.EstimatedRevenue > 0 {
		resolved.revenue = enriched.EstimatedRevenue
		resolved.revenueSource = fmt.Sprintf("model estimate (%s confidence)", confidenceLabel(enriched))
		resolved.revenueEstimated = true
		log.Infof("using estimated revenue $%s", withCommas(*resolved.revenue))
	}
	if resolved.ebitda == nil && enriched.EstimatedEBITDA != nil {
		resolved.ebitda = enriched.EstimatedEBITDA
		resolved.ebitdaSource = fmt.Sprintf("model estimate (%s confidence)", confidenceLabel(enriched))
		log.Infof("using estimated EBITDA $%s", withCommas(*resolved.ebitda))
	}

	if (resolved.lastRoundValuation == nil || resolved.lastRoundDate == "") &&
		enriched.EstimatedLastRoundValuation != nil && *enriched.EstimatedLastRoundValuation > 0 &&
		enriched.EstimatedLastRoundDate != "" {
		resolved.lastRoundValuation = enriched.EstimatedLastRoundValuation
		resolved.lastRoundDate = enriched.EstimatedLastRoundDate
		resolved.lastRoundEstimated = true
		log.Infof("using estimated last round $%s on %s", withCommas(*resolved.lastRoundValuation), resolved.lastRoundDate)
	}

	if resolved.projections == nil && len(enriched.EstimatedGrowthRates) > 0 &&
		resolved.revenue != nil && *resolved.revenue > 0 {
		resolved.projections = buildEstimatedProjections(*resolved.revenue, enriched)
		resolved.projectionsEstimated = true
		log.Infof("derived %d-year projections from estimated growth rates", resolved.projections.Years())
	} else if resolved.projections != nil {
		if err := resolved.projections.SetDefaults(); err != nil {
			log.Warnf("failed to apply projection defaults: %v", err)
		}
	}

	return resolved
}

// buildEstimatedProjections compounds the resolved base revenue over the
// estimated growth rates and pads margins to match.
func buildEstimatedProjections(baseRevenue float64, enriched *domain.EnrichedCompanyData) *domain.FinancialProjections {
	revenues := make([]float64, 0, len(enriched.EstimatedGrowthRates))
	revenue := baseRevenue
	for _, rate := range enriched.EstimatedGrowthRates {
		revenue = revenue * (1 + rate)
		revenues = append(revenues, revenue)
	}

	margins := append([]float64{}, enriched.EstimatedMargins...)
	for len(margins) < len(revenues) {
		if len(margins) == 0 {
			margins = append(margins, 0.20)
		} else {
			margins = append(margins, margins[len(margins)-1])
		}
	}

	proj := &domain.FinancialProjections{
		RevenueProjections: revenues,
		EBITDAMargins:      margins[:len(revenues)],
	}
	if enriched.EstimatedWACC != nil {
		proj.WACC = *enriched.EstimatedWACC
	}
	if enriched.EstimatedTerminalGrowth != nil {
		proj.TerminalGrowthRate = *enriched.EstimatedTerminalGrowth
	}
	// fills whatever the estimates left at zero (capex, NWC, tax, and WACC
	// or terminal growth when the research produced none)
	_ = proj.SetDefaults()
	return proj
}

// appendMismatchWarnings compares user inputs against research estimates
// and annotates the relevant results. Warnings never block computation.
func appendMismatchWarnings(req domain.ValuationRequest, enriched *domain.EnrichedCompanyData, dcfResult *domain.DCFResult, lastRoundResult *domain.LastRoundResult, sourceLinks string) {
	if req.Projections != nil && len(enriched.EstimatedGrowthRates) > 0 && dcfResult != nil {
		userWACC := req.Projections.WACC
		if enriched.EstimatedWACC != nil && math.Abs(userWACC-*enriched.EstimatedWACC) >= 0.02 {
			dcfResult.Warnings = append(dcfResult.Warnings,
				fmt.Sprintf("WACC mismatch: user provided %s vs research estimate %s (difference: %s).%s",
					formatPercent(userWACC), formatPercent(*enriched.EstimatedWACC),
					formatPercent(math.Abs(userWACC-*enriched.EstimatedWACC)), sourceLinks))
		}
		userTGR := req.Projections.TerminalGrowthRate
		if enriched.EstimatedTerminalGrowth != nil && math.Abs(userTGR-*enriched.EstimatedTerminalGrowth) >= 0.01 {
			dcfResult.Warnings = append(dcfResult.Warnings,
				fmt.Sprintf("Terminal growth rate mismatch: user provided %s vs research estimate %s (difference: %s).%s",
					formatPercent(userTGR), formatPercent(*enriched.EstimatedTerminalGrowth),
					formatPercent(math.Abs(userTGR-*enriched.EstimatedTerminalGrowth)), sourceLinks))
		}

		if avgUser, ok := averageImpliedGrowth(req.Projections.RevenueProjections); ok {
			avgEst := average(enriched.EstimatedGrowthRates)
			if avgEst != 0 && math.Abs(avgUser-avgEst)/math.Abs(avgEst) > 0.20 {
				dcfResult.Warnings = append(dcfResult.Warnings,
					fmt.Sprintf("Growth rate mismatch: user implied avg %s/yr vs research estimate avg %s/yr (>20%% relative difference).%s",
						formatPercent(avgUser), formatPercent(avgEst), sourceLinks))
			}
		}
	}

	if req.LastRoundValuation != nil && enriched.EstimatedLastRoundValuation != nil &&
		*enriched.EstimatedLastRoundValuation > 0 && lastRoundResult != nil {
		userVal := *req.LastRoundValuation
		estVal := *enriched.EstimatedLastRoundValuation
		if math.Abs(userVal-estVal)/estVal > 0.30 {
			lastRoundResult.Warnings = append(lastRoundResult.Warnings,
				fmt.Sprintf("Last round valuation mismatch: user provided $%s vs research estimate $%s (>30%% relative difference).%s",
					withCommas(userVal), withCommas(estVal), sourceLinks))
		}
	}
}

// identifyMissing names the prerequisites that kept methods from running,
// phrased for the end user. Revenue for comps is the primary path, so it
// leads and is the floor.
func identifyMissing(resolved resolvedInputs, marketData *domain.MarketData) []string {
	missing := []string{}
	if resolved.revenue == nil || *resolved.revenue <= 0 {
		missing = append(missing, "revenue (required for comparable valuation)")
	} else if len(marketData.Comparables) == 0 {
		missing = append(missing, "comparable companies data")
	}
	if resolved.projections == nil {
		missing = append(missing, "financial projections for DCF")
	}
	if resolved.lastRoundValuation == nil || *resolved.lastRoundValuation <= 0 || resolved.lastRoundDate == "" {
		missing = append(missing, "last funding round valuation and date")
	}
	if len(missing) == 0 {
		missing = append(missing, "revenue (required for comparable valuation)")
	}
	return missing
}

func buildAssumptions(resolved resolvedInputs, marketData *domain.MarketData) map[string]string {
	assumptions := map[string]string{}

	if resolved.revenue != nil {
		assumptions["revenue"] = resolved.revenueSource
	} else {
		assumptions["revenue"] = "unavailable"
	}
	if resolved.ebitda != nil {
		assumptions["ebitda"] = resolved.ebitdaSource
	}
	if resolved.projections != nil {
		if resolved.projectionsEstimated {
			assumptions["projections"] = "derived from estimated growth rates"
		} else {
			assumptions["projections"] = "user-provided"
		}
		assumptions["wacc"] = strconv.FormatFloat(resolved.projections.WACC, 'f', 4, 64)
		assumptions["terminalGrowthRate"] = strconv.FormatFloat(resolved.projections.TerminalGrowthRate, 'f', 4, 64)
	}
	if resolved.lastRoundValuation != nil {
		if resolved.lastRoundEstimated {
			assumptions["lastRound"] = "model estimate"
		} else {
			assumptions["lastRound"] = "user-provided"
		}
	}
	assumptions["comparables"] = fmt.Sprintf("%d candidates from market data", len(marketData.Comparables))

	return assumptions
}

func formatSourceLinks(sources []domain.ResearchSource) string {
	if len(sources) == 0 {
		return ""
	}
	capped := sources
	if len(capped) > 5 {
		capped = capped[:5]
	}
	parts := make([]string, 0, len(capped))
	for _, s := range capped {
		title := s.Title
		if title == "" {
			title = "Link"
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", title, s.URL))
	}
	return " Sources: " + strings.Join(parts, ", ")
}

func averageImpliedGrowth(revenues []float64) (float64, bool) {
	if len(revenues) < 2 {
		return 0, false
	}
	rates := []float64{}
	for i := 1; i < len(revenues); i++ {
		if revenues[i-1] > 0 {
			rates = append(rates, revenues[i]/revenues[i-1]-1)
		}
	}
	if len(rates) == 0 {
		return 0, false
	}
	return average(rates), true
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func confidenceLabel(enriched *domain.EnrichedCompanyData) string {
	if enriched == nil || enriched.Confidence == "" {
		return "unknown"
	}
	return enriched.Confidence
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// withCommas renders a dollar amount with thousands separators, e.g.
// 2500000000 -> "2,500,000,000".
func withCommas(v float64) string {
	negative := v < 0
	digits := strconv.FormatInt(int64(math.Round(math.Abs(v))), 10)

	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}
