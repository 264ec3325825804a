package service

import (
	"context"
	"testing"
	"time"

	"fairvalue/internal/calculator"
	"fairvalue/internal/domain"
	"fairvalue/internal/util"

	"github.com/stretchr/testify/require"
)

func newValuationHandler() valuationServiceHandler {
	return valuationServiceHandler{
		Scorer:    calculator.NewComparableScorer(),
		DCFEngine: calculator.NewDCFEngine(),
		Adjuster:  calculator.NewLastRoundAdjuster(),
		Blender:   calculator.NewValuationBlender(),
	}
}

func softwareComp(ticker string, evToRevenue float64) domain.ComparableCompany {
	revenue := 100_000_000.0
	ebitda := 25_000_000.0
	ev := revenue * evToRevenue
	return domain.ComparableCompany{
		Ticker:          ticker,
		Name:            ticker + " Inc",
		Sector:          "Software",
		Revenue:         util.FloatPointer(revenue),
		EBITDA:          util.FloatPointer(ebitda),
		MarketCap:       util.FloatPointer(ev * 0.95),
		EnterpriseValue: util.FloatPointer(ev),
		EVToRevenue:     util.FloatPointer(evToRevenue),
		EVToEBITDA:      util.FloatPointer(ev / ebitda),
	}
}

func TestValuate(t *testing.T) {
	ctx := context.Background()
	svc := newValuationHandler()

	t.Run("comps only from user revenue", func(t *testing.T) {
		req := domain.ValuationRequest{
			CompanyName: "Acme Software",
			Revenue:     util.FloatPointer(50_000_000),
		}
		enriched := &domain.EnrichedCompanyData{
			Sector:            "Software",
			ApplicableMethods: []string{domain.MethodComps},
		}
		marketData := &domain.MarketData{Comparables: []domain.ComparableCompany{
			softwareComp("AAA", 8),
			softwareComp("BBB", 10),
			softwareComp("CCC", 12),
		}}

		out, err := svc.Valuate(ctx, req, enriched, marketData)
		require.NoError(t, err)
		require.NotNil(t, out.Valuation.Comps)
		require.Nil(t, out.Valuation.DCF)
		require.Nil(t, out.Valuation.LastRound)

		// 50M revenue at the median 10x multiple
		require.InDelta(t, 500_000_000, out.Valuation.FairValue, 0.01)
		require.InDelta(t, 400_000_000, out.Valuation.RangeLow, 0.01)
		require.InDelta(t, 600_000_000, out.Valuation.RangeHigh, 0.01)
		require.Len(t, out.Valuation.Weights, 1)
		require.InDelta(t, 1.0, out.Valuation.Weights[0].Weight, 0.0001)
		require.False(t, out.Valuation.Comps.IsEstimated)
		require.Equal(t, "user-provided", out.Assumptions["revenue"])
	})

	t.Run("three methods blend with heuristic weights", func(t *testing.T) {
		roundDate := time.Now().UTC().AddDate(0, -8, 0).Format(util.DateLayout)
		req := domain.ValuationRequest{
			CompanyName: "Acme Software",
			Revenue:     util.FloatPointer(50_000_000),
			Projections: &domain.FinancialProjections{
				RevenueProjections: []float64{60_000_000, 72_000_000, 86_000_000},
				EBITDAMargins:      []float64{0.25},
				WACC:               0.12,
				TerminalGrowthRate: 0.03,
			},
			LastRoundValuation: util.FloatPointer(450_000_000),
			LastRoundDate:      roundDate,
		}
		enriched := &domain.EnrichedCompanyData{
			Sector:            "Software",
			ApplicableMethods: []string{domain.MethodComps, domain.MethodDCF, domain.MethodLastRound},
		}
		marketData := &domain.MarketData{Comparables: []domain.ComparableCompany{
			softwareComp("AAA", 8),
			softwareComp("BBB", 10),
			softwareComp("CCC", 12),
		}}

		out, err := svc.Valuate(ctx, req, enriched, marketData)
		require.NoError(t, err)
		require.NotNil(t, out.Valuation.Comps)
		require.NotNil(t, out.Valuation.DCF)
		require.NotNil(t, out.Valuation.LastRound)
		require.Greater(t, out.Valuation.FairValue, 0.0)
		require.Len(t, out.Valuation.Weights, 3)

		total := 0.0
		for _, w := range out.Valuation.Weights {
			total += w.Weight
		}
		require.InDelta(t, 1.0, total, 0.0001)

		// defaults filled in during resolution
		require.InDelta(t, 0.05, req.Projections.CapexPercent, 0.0001)
		require.InDelta(t, 0.25, req.Projections.TaxRate, 0.0001)

		require.Equal(t, "user-provided", out.Assumptions["revenue"])
		require.Equal(t, "user-provided", out.Assumptions["projections"])
		require.Equal(t, "user-provided", out.Assumptions["lastRound"])
	})

	t.Run("resolves revenue from research estimate", func(t *testing.T) {
		req := domain.ValuationRequest{CompanyName: "Acme Software"}
		enriched := &domain.EnrichedCompanyData{
			Sector:            "Software",
			ApplicableMethods: []string{domain.MethodComps},
			EstimatedRevenue:  util.FloatPointer(80_000_000),
			Confidence:        domain.ConfidenceMedium,
			Sources:           []domain.ResearchSource{{Title: "Company profile", URL: "https://example.com/acme"}},
		}
		marketData := &domain.MarketData{Comparables: []domain.ComparableCompany{
			softwareComp("AAA", 10),
			softwareComp("BBB", 10),
			softwareComp("CCC", 10),
		}}

		out, err := svc.Valuate(ctx, req, enriched, marketData)
		require.NoError(t, err)
		require.True(t, out.Valuation.Comps.IsEstimated)
		require.InDelta(t, 800_000_000, out.Valuation.FairValue, 0.01)
		require.Contains(t, out.Assumptions["revenue"], "model estimate")
		require.Contains(t, out.Assumptions["revenue"], "medium confidence")

		var sourced bool
		for _, w := range out.Valuation.Comps.Warnings {
			if w == "Revenue source: model estimate (medium confidence). Sources: Company profile (https://example.com/acme)" {
				sourced = true
			}
		}
		require.True(t, sourced, "expected revenue provenance warning, got %v", out.Valuation.Comps.Warnings)
	})

	t.Run("derives projections from estimated growth rates", func(t *testing.T) {
		req := domain.ValuationRequest{
			CompanyName: "Acme Software",
			Revenue:     util.FloatPointer(100),
		}
		enriched := &domain.EnrichedCompanyData{
			ApplicableMethods:    []string{domain.MethodDCF},
			EstimatedGrowthRates: []float64{0.5, 0.2},
			EstimatedMargins:     []float64{0.3},
			Confidence:           domain.ConfidenceLow,
		}

		out, err := svc.Valuate(ctx, req, enriched, &domain.MarketData{})
		require.NoError(t, err)
		require.NotNil(t, out.Valuation.DCF)
		require.True(t, out.Valuation.DCF.IsEstimated)
		require.Equal(t, 2, out.Valuation.DCF.ProjectionYears)
		// defaults kick in when the research had no discount rate
		require.InDelta(t, 0.12, out.Valuation.DCF.WACC, 0.0001)
		require.InDelta(t, 0.03, out.Valuation.DCF.TerminalGrowthRate, 0.0001)
		require.Equal(t, "derived from estimated growth rates", out.Assumptions["projections"])

		var flagged bool
		for _, w := range out.Valuation.DCF.Warnings {
			if w == "DCF inputs are model-estimated (low confidence). Growth rates, margins, WACC, and terminal growth were inferred from company research." {
				flagged = true
			}
		}
		require.True(t, flagged, "expected model-estimated warning, got %v", out.Valuation.DCF.Warnings)
	})

	t.Run("fails with missing prerequisites when nothing is runnable", func(t *testing.T) {
		req := domain.ValuationRequest{CompanyName: "Mystery Co"}
		enriched := &domain.EnrichedCompanyData{
			ApplicableMethods: []string{domain.MethodComps, domain.MethodDCF, domain.MethodLastRound},
		}

		out, err := svc.Valuate(ctx, req, enriched, &domain.MarketData{})
		require.Nil(t, out)
		require.Error(t, err)

		ide, ok := domain.AsInsufficientData(err)
		require.True(t, ok)
		require.Contains(t, ide.MissingFields, "revenue (required for comparable valuation)")
		require.Contains(t, ide.MissingFields, "financial projections for DCF")
		require.Contains(t, ide.MissingFields, "last funding round valuation and date")
	})

	t.Run("treats all-zero methods as insufficient data", func(t *testing.T) {
		req := domain.ValuationRequest{
			CompanyName: "Acme Software",
			Revenue:     util.FloatPointer(50_000_000),
		}
		enriched := &domain.EnrichedCompanyData{
			Sector:            "Software",
			ApplicableMethods: []string{domain.MethodComps},
		}
		// the lone comparable has no EV/Revenue, so comps prices at zero
		marketData := &domain.MarketData{Comparables: []domain.ComparableCompany{
			{Ticker: "JUNK", Name: "Junk Data Corp", Sector: "Software"},
		}}

		out, err := svc.Valuate(ctx, req, enriched, marketData)
		require.Nil(t, out)
		require.Error(t, err)
		_, ok := domain.AsInsufficientData(err)
		require.True(t, ok)
	})

	t.Run("appends mismatch warnings without blocking", func(t *testing.T) {
		roundDate := time.Now().UTC().AddDate(0, -6, 0).Format(util.DateLayout)
		req := domain.ValuationRequest{
			CompanyName: "Acme Software",
			Revenue:     util.FloatPointer(50_000_000),
			Projections: &domain.FinancialProjections{
				RevenueProjections: []float64{100, 110, 121},
				EBITDAMargins:      []float64{0.25},
				WACC:               0.12,
				TerminalGrowthRate: 0.03,
			},
			LastRoundValuation: util.FloatPointer(100_000_000),
			LastRoundDate:      roundDate,
		}
		enriched := &domain.EnrichedCompanyData{
			Sector:                      "Software",
			ApplicableMethods:           []string{domain.MethodDCF, domain.MethodLastRound},
			EstimatedGrowthRates:        []float64{0.40, 0.40},
			EstimatedWACC:               util.FloatPointer(0.15),
			EstimatedTerminalGrowth:     util.FloatPointer(0.045),
			EstimatedLastRoundValuation: util.FloatPointer(200_000_000),
			Confidence:                  domain.ConfidenceHigh,
		}

		out, err := svc.Valuate(ctx, req, enriched, &domain.MarketData{})
		require.NoError(t, err)
		require.Greater(t, out.Valuation.FairValue, 0.0)

		requireWarningContaining(t, out.Valuation.DCF.Warnings, "WACC mismatch: user provided 12.0% vs research estimate 15.0% (difference: 3.0%)")
		requireWarningContaining(t, out.Valuation.DCF.Warnings, "Terminal growth rate mismatch: user provided 3.0% vs research estimate 4.5% (difference: 1.5%)")
		requireWarningContaining(t, out.Valuation.DCF.Warnings, "Growth rate mismatch: user implied avg 10.0%/yr vs research estimate avg 40.0%/yr (>20% relative difference)")
		requireWarningContaining(t, out.Valuation.LastRound.Warnings, "Last round valuation mismatch: user provided $100,000,000 vs research estimate $200,000,000 (>30% relative difference)")
	})
}

func requireWarningContaining(t *testing.T, warnings []string, fragment string) {
	t.Helper()
	for _, w := range warnings {
		if len(w) >= len(fragment) && w[:len(fragment)] == fragment {
			return
		}
	}
	require.Failf(t, "warning not found", "wanted prefix %q in %v", fragment, warnings)
}

func TestReblend(t *testing.T) {
	svc := newValuationHandler()

	t.Run("recomputes blend with new weights", func(t *testing.T) {
		previous := &domain.BlendedValuation{
			FairValue: 140,
			Comps:     &domain.CompsResult{EnterpriseValue: 100, ComparableCount: 4},
			DCF:       &domain.DCFResult{EnterpriseValue: 200, ProjectionYears: 5},
		}

		out, err := svc.Reblend(previous, map[string]float64{
			domain.MethodComps: 0.25,
			domain.MethodDCF:   0.75,
		})
		require.NoError(t, err)
		require.InDelta(t, 175, out.FairValue, 0.01)
		require.Len(t, out.Weights, 2)
	})

	t.Run("rejects reweight without prior results", func(t *testing.T) {
		_, err := svc.Reblend(nil, map[string]float64{domain.MethodComps: 1})
		require.Error(t, err)

		_, err = svc.Reblend(&domain.BlendedValuation{FairValue: 10}, map[string]float64{domain.MethodComps: 1})
		require.Error(t, err)
	})
}
