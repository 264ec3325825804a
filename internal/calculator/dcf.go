package calculator

import (
	"fairvalue/internal/domain"
	"fmt"
	"math"
)

// offsets swept by the sensitivity grid, centered on the base assumptions
var (
	waccOffsets   = []float64{-0.02, -0.01, 0, 0.01, 0.02}
	growthOffsets = []float64{-0.01, -0.005, 0, 0.005, 0.01}
)

// fallbackMargin is applied when a projection arrives with no margins at
// all; resolution upstream normally prevents that.
const fallbackMargin = 0.20

// DCFEngine projects free cash flow from revenue and margin assumptions
// and discounts it back, Gordon-growth terminal value included. Bad input
// combinations (no projections, WACC at or under terminal growth) are
// expected outcomes, not errors: they produce a zero-value result with a
// warning.
type DCFEngine struct{}

func NewDCFEngine() DCFEngine {
	return DCFEngine{}
}

type DCFValuationInput struct {
	Projections domain.FinancialProjections
	// IsEstimated marks projections derived from enrichment estimates
	// rather than supplied by the caller
	IsEstimated bool
}

func (e DCFEngine) Valuate(in DCFValuationInput) *domain.DCFResult {
	proj := in.Projections
	result := &domain.DCFResult{
		ProjectionYears:    proj.Years(),
		WACC:               proj.WACC,
		TerminalGrowthRate: proj.TerminalGrowthRate,
		IsEstimated:        in.IsEstimated,
	}

	if proj.Years() == 0 {
		result.Warnings = append(result.Warnings, "No revenue projections provided")
		return result
	}

	// the terminal value formula divides by WACC - g
	if proj.WACC <= proj.TerminalGrowthRate {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"WACC (%g) must be greater than terminal growth rate (%g)", proj.WACC, proj.TerminalGrowthRate))
		return result
	}

	fcf := projectFreeCashFlows(proj)
	pvSum, pvTerminal := discountCashFlows(fcf, proj.WACC, proj.TerminalGrowthRate)

	result.YearlyFCF = fcf
	result.PresentValueSum = pvSum
	result.TerminalValue = pvTerminal
	result.EnterpriseValue = pvSum + pvTerminal
	result.Sensitivity = sensitivityGrid(fcf, proj.WACC, proj.TerminalGrowthRate)

	return result
}

// projectFreeCashFlows converts per-year revenue and margin into FCF.
// Tax is computed on EBIT so depreciation shields it, but the D&A
// add-back is implicit because the cash flow starts from EBITDA.
func projectFreeCashFlows(proj domain.FinancialProjections) []float64 {
	margins := padMargins(proj.EBITDAMargins, proj.Years())

	fcf := make([]float64, proj.Years())
	for i, revenue := range proj.RevenueProjections {
		ebitda := revenue * margins[i]
		depreciation := revenue * proj.DepreciationPercent
		ebit := ebitda - depreciation
		tax := math.Max(0, ebit*proj.TaxRate)
		capex := revenue * proj.CapexPercent
		nwcChange := revenue * proj.NWCChangePercent
		fcf[i] = ebitda - tax - capex - nwcChange
	}

	return fcf
}

// padMargins extends margins to n years by repeating the last value.
func padMargins(margins []float64, n int) []float64 {
	padded := make([]float64, n)
	for i := 0; i < n; i++ {
		switch {
		case i < len(margins):
			padded[i] = margins[i]
		case len(margins) > 0:
			padded[i] = margins[len(margins)-1]
		default:
			padded[i] = fallbackMargin
		}
	}
	return padded
}

// discountCashFlows returns the PV of the explicit years and the PV of the
// terminal value separately. Callers must guarantee wacc > growth and a
// non-empty fcf slice.
func discountCashFlows(fcf []float64, wacc, growth float64) (float64, float64) {
	pvSum := 0.0
	for i, cashFlow := range fcf {
		pvSum += cashFlow / math.Pow(1+wacc, float64(i+1))
	}

	n := len(fcf)
	terminal := fcf[n-1] * (1 + growth) / (wacc - growth)
	pvTerminal := terminal / math.Pow(1+wacc, float64(n))

	return pvSum, pvTerminal
}

// sensitivityGrid re-discounts the same cash flows across a 5x5 sweep of
// WACC and terminal growth. Pairs that can't be discounted (WACC at or
// under growth, non-positive WACC) are omitted rather than zeroed; the
// base pair always survives because the caller already validated it.
func sensitivityGrid(fcf []float64, baseWACC, baseGrowth float64) []domain.SensitivityCell {
	cells := []domain.SensitivityCell{}
	for _, dw := range waccOffsets {
		for _, dg := range growthOffsets {
			// round before the validity check: offset arithmetic can leave
			// a pair like (0.02, 0.02) a few ulps apart, and discounting
			// across that sliver would emit an absurd cell
			wacc := round4(baseWACC + dw)
			growth := round4(baseGrowth + dg)
			if wacc <= growth || wacc <= 0 {
				continue
			}

			pvSum, pvTerminal := discountCashFlows(fcf, wacc, growth)
			cells = append(cells, domain.SensitivityCell{
				WACC:            wacc,
				TerminalGrowth:  growth,
				EnterpriseValue: round2(pvSum + pvTerminal),
			})
		}
	}
	return cells
}
