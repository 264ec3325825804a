package domain

import "time"

// IndexData captures a benchmark index's return between a past date and
// now, used to mark a stale financing round to market.
type IndexData struct {
	Symbol          string    `json:"symbol"`
	ReturnSinceDate float64   `json:"returnSinceDate"`
	AsOf            time.Time `json:"asOf"`
}

// MarketData is everything the fetch step hands the valuation engine.
type MarketData struct {
	Comparables []ComparableCompany `json:"comparables"`
	Index       *IndexData          `json:"index,omitempty"`
	// Warnings describes any degradation that happened while fetching,
	// e.g. falling back to snapshot quotes for an unreachable ticker.
	Warnings []string `json:"warnings,omitempty"`
}
