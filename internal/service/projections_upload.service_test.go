package service

import (
	"testing"

	"fairvalue/internal/util"

	"github.com/stretchr/testify/require"
)

const sectionedCSVFixture = `Section,Year,Revenue ($M),EBITDA Margin,Metric,Value
Projections,2025,150,0.22,,
Projections,2026,180,0.24,,
Projections,2027,210,,,
Assumptions,,,,WACC,0.11
Assumptions,,,,Terminal Growth,0.025
Assumptions,,,,Capex % Revenue,0.04
`

const dcfModelCSVFixture = `Acme DCF Model,,,,,,
,,Historical:,,Projected:,,
,,FY22,FY23,FY24,FY25,FY26
Total Revenue:,,"$ 500","$ 550","$ 600","$ 660","$ 726"
EBITDA:,,100,110,150,165,181.5
Discount Rate (WACC):,10.0%,,,,,
Effective Tax Rate:,21.0%,,,,,
Baseline Terminal FCF Growth Rate:,2.5%,,,,,
Depreciation & Amortization:,,,,,,
% Revenue:,,3.0%,3.0%,3.0%,3.0%,3.0%
Capital Expenditures:,,,,,,
% Revenue:,,(5.0%),(5.0%),(5.0%),(5.0%),(5.0%)
Change in Working Capital:,,(10),(11),(12),(13.2),(14.52)
`

func TestParseProjections(t *testing.T) {
	parser := NewProjectionsParser()

	t.Run("json upload", func(t *testing.T) {
		content := []byte(`{"revenueProjections": [100, 120], "ebitdaMargins": [0.25], "wacc": 0.14}`)

		proj, err := parser.Parse("model.json", content)
		require.NoError(t, err)
		require.Equal(t, []float64{100, 120}, proj.RevenueProjections)
		require.InDelta(t, 0.14, proj.WACC, 0.0001)
		// unset scalars take standard defaults
		require.InDelta(t, 0.25, proj.TaxRate, 0.0001)
		require.InDelta(t, 0.05, proj.CapexPercent, 0.0001)
		require.InDelta(t, 0.03, proj.TerminalGrowthRate, 0.0001)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := parser.Parse("model.json", []byte(`{"revenueProjections": [100,`))
		require.Error(t, err)
	})

	t.Run("simple csv", func(t *testing.T) {
		content := []byte("revenue,ebitda_margin,wacc,terminal_growth_rate\n1000000,0.25,0.13,0.035\n1200000,0.27,,\n")

		proj, err := parser.Parse("projections.csv", content)
		require.NoError(t, err)
		require.Equal(t, []float64{1_000_000, 1_200_000}, proj.RevenueProjections)
		require.Equal(t, []float64{0.25, 0.27}, proj.EBITDAMargins)
		require.InDelta(t, 0.13, proj.WACC, 0.0001)
		require.InDelta(t, 0.035, proj.TerminalGrowthRate, 0.0001)
		require.InDelta(t, 0.25, proj.TaxRate, 0.0001)
	})

	t.Run("sectioned csv with unit multiplier", func(t *testing.T) {
		proj, err := parser.Parse("sheet.csv", []byte(sectionedCSVFixture))
		require.NoError(t, err)
		require.Equal(t, []float64{150_000_000, 180_000_000, 210_000_000}, proj.RevenueProjections)
		// missing margin cells default to 0.2
		require.Equal(t, []float64{0.22, 0.24, 0.2}, proj.EBITDAMargins)
		require.InDelta(t, 0.11, proj.WACC, 0.0001)
		require.InDelta(t, 0.025, proj.TerminalGrowthRate, 0.0001)
		require.InDelta(t, 0.04, proj.CapexPercent, 0.0001)
	})

	t.Run("dcf model export csv", func(t *testing.T) {
		proj, err := parser.Parse("dcf_export.csv", []byte(dcfModelCSVFixture))
		require.NoError(t, err)
		require.Equal(t, []float64{600, 660, 726}, proj.RevenueProjections)
		require.Len(t, proj.EBITDAMargins, 3)
		require.InDelta(t, 0.25, proj.EBITDAMargins[0], 0.0001)
		require.InDelta(t, 0.10, proj.WACC, 0.0001)
		require.InDelta(t, 0.21, proj.TaxRate, 0.0001)
		require.InDelta(t, 0.025, proj.TerminalGrowthRate, 0.0001)
		require.InDelta(t, 0.03, proj.DepreciationPercent, 0.0001)
		require.InDelta(t, 0.05, proj.CapexPercent, 0.0001)
		require.InDelta(t, 0.02, proj.NWCChangePercent, 0.0001)
	})

	t.Run("unrecognized csv", func(t *testing.T) {
		_, err := parser.Parse("random.csv", []byte("a,b,c\n1,2,3\n"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "unrecognized CSV format")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := parser.Parse("model.xlsx", []byte("whatever"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "unsupported file type")
	})
}

func TestParseFinancialValue(t *testing.T) {
	cases := []struct {
		in   string
		want *float64
	}{
		{"$ 587,363", util.FloatPointer(587363)},
		{"(6,963)", util.FloatPointer(-6963)},
		{"31.7%", util.FloatPointer(0.317)},
		{"(5.0%)", util.FloatPointer(-0.05)},
		{"12.5x", nil},
		{"-", nil},
		{"N/A", nil},
		{"#N/A", nil},
		{"", nil},
		{"FY24", nil},
	}
	for _, tc := range cases {
		got := parseFinancialValue(tc.in)
		if tc.want == nil {
			require.Nil(t, got, "input %q", tc.in)
		} else {
			require.NotNil(t, got, "input %q", tc.in)
			require.InDelta(t, *tc.want, *got, 0.0001, "input %q", tc.in)
		}
	}
}
