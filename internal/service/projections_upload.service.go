package service

import (
	"encoding/csv"
	"encoding/json"
	"fairvalue/internal/domain"
	"fairvalue/internal/logger"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

var fiscalYearRegex = regexp.MustCompile(`^FY\d{2}`)

// ProjectionsParser turns an uploaded projections file into
// FinancialProjections. Three CSV layouts are recognized, tried in order:
// a plain revenue/ebitda_margin table, a sectioned Section/Metric/Value
// sheet, and an Excel DCF-model export with a "Projected:" column marker.
type ProjectionsParser interface {
	Parse(filename string, content []byte) (*domain.FinancialProjections, error)
}

type projectionsParserHandler struct{}

func NewProjectionsParser() ProjectionsParser {
	return projectionsParserHandler{}
}

func (h projectionsParserHandler) Parse(filename string, content []byte) (*domain.FinancialProjections, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".json"):
		proj := &domain.FinancialProjections{}
		if err := json.Unmarshal(content, proj); err != nil {
			return nil, fmt.Errorf("failed to parse projections JSON: %w", err)
		}
		if err := proj.SetDefaults(); err != nil {
			logger.Warn("failed to apply projection defaults: %v", err)
		}
		return proj, nil

	case strings.HasSuffix(name, ".csv"):
		text := string(content)
		proj := trySimpleCSV(text)
		if proj == nil {
			proj = trySectionedCSV(text)
		}
		if proj == nil {
			proj = tryDCFModelCSV(text)
		}
		if proj == nil {
			return nil, fmt.Errorf("unrecognized CSV format: expected revenue/ebitda_margin columns, a sectioned Section/Metric/Value sheet, or a DCF model export")
		}
		if err := proj.SetDefaults(); err != nil {
			logger.Warn("failed to apply projection defaults: %v", err)
		}
		return proj, nil

	default:
		return nil, fmt.Errorf("unsupported file type: upload .json or .csv")
	}
}

type simpleProjectionRow struct {
	Revenue             string `csv:"revenue"`
	EBITDAMargin        string `csv:"ebitda_margin"`
	WACC                string `csv:"wacc"`
	TaxRate             string `csv:"tax_rate"`
	CapexPercent        string `csv:"capex_percent"`
	NWCChangePercent    string `csv:"nwc_change_percent"`
	TerminalGrowthRate  string `csv:"terminal_growth_rate"`
	DepreciationPercent string `csv:"depreciation_percent"`
}

// trySimpleCSV parses the plain layout: one row per projection year with
// revenue and ebitda_margin columns, scalar assumptions read off the first
// row when present.
func trySimpleCSV(text string) *domain.FinancialProjections {
	headers, err := csv.NewReader(strings.NewReader(text)).Read()
	if err != nil {
		return nil
	}
	seen := map[string]bool{}
	for _, header := range headers {
		seen[strings.TrimSpace(header)] = true
	}
	if !seen["revenue"] || !seen["ebitda_margin"] {
		return nil
	}

	rows := []simpleProjectionRow{}
	if err := gocsv.UnmarshalString(text, &rows); err != nil || len(rows) == 0 {
		return nil
	}

	proj := &domain.FinancialProjections{}
	for _, row := range rows {
		revenue, err := strconv.ParseFloat(strings.TrimSpace(row.Revenue), 64)
		if err != nil {
			return nil
		}
		margin, err := strconv.ParseFloat(strings.TrimSpace(row.EBITDAMargin), 64)
		if err != nil {
			return nil
		}
		proj.RevenueProjections = append(proj.RevenueProjections, revenue)
		proj.EBITDAMargins = append(proj.EBITDAMargins, margin)
	}

	first := rows[0]
	if !setScalarFromString(&proj.WACC, first.WACC) ||
		!setScalarFromString(&proj.TaxRate, first.TaxRate) ||
		!setScalarFromString(&proj.CapexPercent, first.CapexPercent) ||
		!setScalarFromString(&proj.NWCChangePercent, first.NWCChangePercent) ||
		!setScalarFromString(&proj.TerminalGrowthRate, first.TerminalGrowthRate) ||
		!setScalarFromString(&proj.DepreciationPercent, first.DepreciationPercent) {
		return nil
	}

	return proj
}

// setScalarFromString assigns a parsed float when the cell is non-empty.
// Returns false only on a malformed non-empty cell.
func setScalarFromString(dst *float64, cell string) bool {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return true
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return false
	}
	*dst = v
	return true
}

// trySectionedCSV parses the Section/Metric/Value layout. The revenue
// column header may carry a unit suffix like "Revenue ($M)".
func trySectionedCSV(text string) *domain.FinancialProjections {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil || len(rows) < 2 {
		return nil
	}

	headers := rows[0]
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	sectionCol, revCol, marginCol, metricCol, valueCol := -1, -1, -1, -1, -1
	for i, header := range headers {
		lower := strings.ToLower(header)
		switch {
		case header == "Section":
			sectionCol = i
		case revCol < 0 && strings.Contains(lower, "revenue"):
			revCol = i
		case marginCol < 0 && strings.Contains(lower, "ebitda") && strings.Contains(lower, "margin"):
			marginCol = i
		case lower == "metric":
			metricCol = i
		case lower == "value":
			valueCol = i
		}
	}
	if sectionCol < 0 || revCol < 0 || marginCol < 0 {
		return nil
	}

	multiplier := 1.0
	revLower := strings.ToLower(headers[revCol])
	switch {
	case strings.Contains(revLower, "($b)") || strings.Contains(revLower, "(b)"):
		multiplier = 1e9
	case strings.Contains(revLower, "($m)") || strings.Contains(revLower, "(m)") || strings.Contains(revLower, "($mm)"):
		multiplier = 1e6
	case strings.Contains(revLower, "($k)") || strings.Contains(revLower, "(k)"):
		multiplier = 1e3
	}

	cell := func(row []string, col int) string {
		if col < 0 || col >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[col])
	}

	proj := &domain.FinancialProjections{}
	for _, row := range rows[1:] {
		switch strings.ToLower(cell(row, sectionCol)) {
		case "projections":
			revStr := cell(row, revCol)
			if revStr == "" {
				continue
			}
			revenue, err := strconv.ParseFloat(revStr, 64)
			if err != nil {
				return nil
			}
			margin := 0.2
			if marginStr := cell(row, marginCol); marginStr != "" {
				margin, err = strconv.ParseFloat(marginStr, 64)
				if err != nil {
					return nil
				}
			}
			proj.RevenueProjections = append(proj.RevenueProjections, revenue*multiplier)
			proj.EBITDAMargins = append(proj.EBITDAMargins, margin)

		case "assumptions":
			metric := strings.ToLower(cell(row, metricCol))
			valStr := cell(row, valueCol)
			if metric == "" || valStr == "" {
				continue
			}
			v, err := strconv.ParseFloat(valStr, 64)
			if err != nil {
				return nil
			}
			applyAssumptionMetric(proj, metric, v)
		}
	}

	if len(proj.RevenueProjections) == 0 {
		return nil
	}
	return proj
}

func applyAssumptionMetric(proj *domain.FinancialProjections, metric string, v float64) {
	switch metric {
	case "wacc":
		proj.WACC = v
	case "terminal growth", "terminal growth rate":
		proj.TerminalGrowthRate = v
	case "tax rate":
		proj.TaxRate = v
	case "capex % revenue", "capex percent":
		proj.CapexPercent = v
	case "nwc change % revenue", "nwc change percent":
		proj.NWCChangePercent = v
	case "d&a % revenue", "depreciation % revenue", "depreciation percent":
		proj.DepreciationPercent = v
	}
}

// tryDCFModelCSV parses an Excel DCF-model export. The projected year
// columns sit to the right of a "Projected:" marker cell, bounded by the
// last FYnn column header; metric rows are located by label.
func tryDCFModelCSV(text string) *domain.FinancialProjections {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil || len(rows) < 10 {
		return nil
	}

	projStart, projEnd := -1, -1
	for _, row := range rows {
		for j, c := range row {
			if strings.HasPrefix(strings.ToLower(strings.TrimSpace(c)), "projected") {
				projStart = j
				break
			}
		}
		if projStart >= 0 {
			break
		}
	}
	if projStart < 0 {
		return nil
	}
	for _, row := range rows {
		for j, c := range row {
			if fiscalYearRegex.MatchString(strings.TrimSpace(c)) && j > projEnd {
				projEnd = j
			}
		}
	}
	if projEnd <= projStart {
		return nil
	}

	revenues := findProjectedRow(rows, projStart, projEnd, "total revenue:")
	if len(revenues) == 0 {
		revenues = findProjectedRow(rows, projStart, projEnd, "net sales:", "membership")
	}
	if len(revenues) == 0 {
		return nil
	}

	ebitda := findProjectedRow(rows, projStart, projEnd, "ebitda:", "tev", "margin", "multiple")
	margins := make([]float64, 0, len(revenues))
	for i, revenue := range revenues {
		if i < len(ebitda) && revenue > 0 {
			margins = append(margins, ebitda[i]/revenue)
		} else {
			margins = append(margins, 0.2)
		}
	}

	proj := &domain.FinancialProjections{
		RevenueProjections: revenues,
		EBITDAMargins:      margins,
	}

	if wacc := findScalarByLabel(rows, "discount rate (wacc)"); wacc != nil && *wacc > 0 && *wacc < 1 {
		proj.WACC = *wacc
	}
	tax := findScalarByLabel(rows, "effective tax rate")
	if tax == nil {
		tax = findScalarByLabel(rows, "tax rate:")
	}
	if tax != nil && *tax > 0 && *tax < 1 {
		proj.TaxRate = *tax
	}
	tgr := findScalarByLabel(rows, "baseline terminal fcf growth rate")
	if tgr == nil {
		tgr = findScalarByLabel(rows, "terminal fcf growth rate")
	}
	if tgr == nil {
		tgr = findScalarByLabel(rows, "terminal growth rate")
	}
	if tgr != nil && *tgr >= -0.1 && *tgr <= 0.2 {
		proj.TerminalGrowthRate = *tgr
	}

	// capex and D&A percentages come from "% Revenue:" rows scoped to the
	// section header above them
	section := ""
	for _, row := range rows {
		rowText := strings.ToLower(strings.Join(row, " "))
		switch {
		case strings.Contains(rowText, "depreciation & amortization:") || strings.Contains(rowText, "depreciation:"):
			section = "da"
		case strings.Contains(rowText, "capital expenditure"):
			section = "capex"
		case strings.Contains(rowText, "% revenue:"):
			vals := extractProjected(row, projStart, projEnd)
			if len(vals) > 0 {
				if section == "da" && proj.DepreciationPercent == 0 {
					proj.DepreciationPercent = math.Abs(vals[0])
				} else if section == "capex" && proj.CapexPercent == 0 {
					proj.CapexPercent = math.Abs(vals[0])
				}
			}
			section = ""
		}
	}

	for _, row := range rows {
		if !rowContainsLabel(row, "change in working capital") {
			continue
		}
		wcVals := extractProjected(row, projStart, projEnd)
		ratios := []float64{}
		for i := 0; i < len(wcVals) && i < len(revenues); i++ {
			if revenues[i] > 0 {
				ratios = append(ratios, math.Abs(wcVals[i])/revenues[i])
			}
		}
		if len(ratios) > 0 {
			proj.NWCChangePercent = average(ratios)
			break
		}
	}

	return proj
}

// findProjectedRow locates the first row containing label (and none of the
// exclusion labels) and extracts its projected-column values.
func findProjectedRow(rows [][]string, start, end int, label string, exclude ...string) []float64 {
	for _, row := range rows {
		if !rowContainsLabel(row, label) {
			continue
		}
		skip := false
		for _, ex := range exclude {
			if rowContainsLabel(row, ex) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		return extractProjected(row, start, end)
	}
	return nil
}

func findScalarByLabel(rows [][]string, label string) *float64 {
	for _, row := range rows {
		if !rowContainsLabel(row, label) {
			continue
		}
		for _, c := range row {
			if v := parseFinancialValue(c); v != nil {
				return v
			}
		}
	}
	return nil
}

func rowContainsLabel(row []string, label string) bool {
	for _, c := range row {
		if strings.Contains(strings.ToLower(strings.TrimSpace(c)), label) {
			return true
		}
	}
	return false
}

func extractProjected(row []string, start, end int) []float64 {
	vals := []float64{}
	for j := start; j <= end && j < len(row); j++ {
		if v := parseFinancialValue(row[j]); v != nil {
			vals = append(vals, *v)
		}
	}
	return vals
}

// parseFinancialValue handles spreadsheet-flavored numbers: "$ 587,363",
// "(6,963)" as negative, "31.7%" as a fraction. Multiples like "12.5x"
// and placeholders parse as nothing.
func parseFinancialValue(s string) *float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimSpace(s)
	if s == "" || s == "-" || s == "–" || strings.EqualFold(s, "N/A") || strings.EqualFold(s, "#N/A") {
		return nil
	}

	negative := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
	if negative {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	var v float64
	var err error
	switch {
	case strings.HasSuffix(s, "%"):
		v, err = strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		v = v / 100
	case strings.HasSuffix(s, "x"):
		return nil
	default:
		v, err = strconv.ParseFloat(s, 64)
	}
	if err != nil {
		return nil
	}
	if negative {
		v = -v
	}
	return &v
}
