package domain

// confidence levels the enrichment model is allowed to claim
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// ResearchSource is one citation pulled out of a research completion.
type ResearchSource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// EnrichedCompanyData is what the enrichment step adds on top of the raw
// request: a sector, peer tickers, which methods look applicable, and
// model estimates for anything the caller left blank. Estimates are only
// estimates - everything derived from them is flagged downstream.
type EnrichedCompanyData struct {
	Sector                      string           `json:"sector,omitempty"`
	ComparableTickers           []string         `json:"comparableTickers,omitempty"`
	ApplicableMethods           []string         `json:"applicableMethods,omitempty"`
	EstimatedRevenue            *float64         `json:"estimatedRevenue,omitempty"`
	EstimatedEBITDA             *float64         `json:"estimatedEbitda,omitempty"`
	EstimatedGrowthRates        []float64        `json:"estimatedGrowthRates,omitempty"`
	EstimatedMargins            []float64        `json:"estimatedMargins,omitempty"`
	EstimatedWACC               *float64         `json:"estimatedWacc,omitempty"`
	EstimatedTerminalGrowth     *float64         `json:"estimatedTerminalGrowth,omitempty"`
	EstimatedLastRoundValuation *float64         `json:"estimatedLastRoundValuation,omitempty"`
	EstimatedLastRoundDate      string           `json:"estimatedLastRoundDate,omitempty"`
	Confidence                  string           `json:"confidence,omitempty"`
	Reasoning                   string           `json:"reasoning,omitempty"`
	Sources                     []ResearchSource `json:"sources,omitempty"`
}

// HasMethod reports whether the enrichment marked a method applicable.
func (e EnrichedCompanyData) HasMethod(method string) bool {
	for _, m := range e.ApplicableMethods {
		if m == method {
			return true
		}
	}
	return false
}
