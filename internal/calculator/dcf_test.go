package calculator

import (
	"fairvalue/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func baseProjections() domain.FinancialProjections {
	return domain.FinancialProjections{
		RevenueProjections: []float64{1000},
		EBITDAMargins:      []float64{0.30},
		CapexPercent:       0.05,
		NWCChangePercent:   0.02,
		TaxRate:            0.25,
		WACC:               0.12,
		TerminalGrowthRate: 0.03,
	}
}

func TestDCFValuate(t *testing.T) {
	engine := NewDCFEngine()

	t.Run("single year free cash flow", func(t *testing.T) {
		result := engine.Valuate(DCFValuationInput{Projections: baseProjections()})

		// 300 EBITDA - 75 tax - 50 capex - 20 NWC
		require.Equal(t, 1, len(result.YearlyFCF))
		require.InDelta(t, 155.0, result.YearlyFCF[0], 1e-9)
		require.Greater(t, result.EnterpriseValue, 0.0)
		require.InDelta(t, result.PresentValueSum+result.TerminalValue, result.EnterpriseValue, 1e-9)
	})

	t.Run("depreciation shields taxes and raises FCF", func(t *testing.T) {
		withDep := baseProjections()
		withDep.DepreciationPercent = 0.10

		plain := engine.Valuate(DCFValuationInput{Projections: baseProjections()})
		shielded := engine.Valuate(DCFValuationInput{Projections: withDep})

		require.Greater(t, shielded.YearlyFCF[0], plain.YearlyFCF[0])
	})

	t.Run("negative EBIT pays no tax", func(t *testing.T) {
		proj := baseProjections()
		proj.EBITDAMargins = []float64{0.05}
		proj.DepreciationPercent = 0.10

		result := engine.Valuate(DCFValuationInput{Projections: proj})

		// EBITDA 50, D&A 100, EBIT -50: tax clamps at zero so
		// FCF = 50 - 0 - 50 - 20
		require.InDelta(t, -20.0, result.YearlyFCF[0], 1e-9)
	})

	t.Run("WACC at or under terminal growth returns zero value", func(t *testing.T) {
		proj := baseProjections()
		proj.WACC = 0.02
		proj.TerminalGrowthRate = 0.03

		result := engine.Valuate(DCFValuationInput{Projections: proj})

		require.Equal(t, 0.0, result.EnterpriseValue)
		require.Equal(t, 1, len(result.Warnings))
		require.Contains(t, result.Warnings[0], "WACC")
		require.Empty(t, result.Sensitivity)
	})

	t.Run("no projections returns zero value", func(t *testing.T) {
		proj := baseProjections()
		proj.RevenueProjections = nil

		result := engine.Valuate(DCFValuationInput{Projections: proj})

		require.Equal(t, 0.0, result.EnterpriseValue)
		require.Contains(t, result.Warnings, "No revenue projections provided")
	})

	t.Run("margins pad with the last value", func(t *testing.T) {
		proj := baseProjections()
		proj.RevenueProjections = []float64{100, 200, 300}
		proj.EBITDAMargins = []float64{0.40, 0.30}

		result := engine.Valuate(DCFValuationInput{Projections: proj})

		require.Equal(t, 3, len(result.YearlyFCF))
		// year 3 reuses the 0.30 margin:
		// 90 EBITDA - 22.5 tax - 15 capex - 6 NWC
		require.InDelta(t, 46.5, result.YearlyFCF[2], 1e-9)
	})

	t.Run("estimation flag passes through", func(t *testing.T) {
		result := engine.Valuate(DCFValuationInput{Projections: baseProjections(), IsEstimated: true})
		require.True(t, result.IsEstimated)
	})
}

func TestDCFSensitivity(t *testing.T) {
	engine := NewDCFEngine()

	t.Run("base pair cell matches the primary valuation", func(t *testing.T) {
		result := engine.Valuate(DCFValuationInput{Projections: baseProjections()})

		// base assumptions are clear of every invalid pair, all 25 survive
		require.Equal(t, 25, len(result.Sensitivity))

		var baseCell *domain.SensitivityCell
		for i := range result.Sensitivity {
			cell := result.Sensitivity[i]
			if cell.WACC == 0.12 && cell.TerminalGrowth == 0.03 {
				baseCell = &result.Sensitivity[i]
				break
			}
		}
		require.NotNil(t, baseCell)
		require.InDelta(t, result.EnterpriseValue, baseCell.EnterpriseValue, 1.0)
	})

	t.Run("invalid discounting pairs are omitted", func(t *testing.T) {
		proj := baseProjections()
		proj.WACC = 0.04
		proj.TerminalGrowthRate = 0.03

		result := engine.Valuate(DCFValuationInput{Projections: proj})

		require.NotEmpty(t, result.Sensitivity)
		require.Less(t, len(result.Sensitivity), 25)
		foundBase := false
		for _, cell := range result.Sensitivity {
			require.Greater(t, cell.WACC, cell.TerminalGrowth)
			require.Greater(t, cell.WACC, 0.0)
			if cell.WACC == 0.04 && cell.TerminalGrowth == 0.03 {
				foundBase = true
			}
		}
		require.True(t, foundBase)
	})
}
