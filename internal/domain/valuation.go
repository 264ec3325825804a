package domain

import (
	"github.com/creasty/defaults"
)

// method names used in applicable-method lists, weight maps, and audit output
const (
	MethodComps     = "comps"
	MethodDCF       = "dcf"
	MethodLastRound = "last_round"
)

// ValuationRequest is everything the caller tells us about the company.
// Most fields are optional - enrichment fills the gaps it can, and the
// engine decides which methods are runnable from whatever survives.
type ValuationRequest struct {
	CompanyName        string                `json:"companyName" binding:"required"`
	Description        string                `json:"description"`
	Sector             string                `json:"sector"`
	Revenue            *float64              `json:"revenue"`
	EBITDA             *float64              `json:"ebitda"`
	LastRoundValuation *float64              `json:"lastRoundValuation"`
	LastRoundDate      string                `json:"lastRoundDate"`
	Projections        *FinancialProjections `json:"projections"`
	CustomWeights      map[string]float64    `json:"customWeights"`
	// optional goval expression applied per comparable before scoring,
	// e.g. "evToRevenue < 15 && revenue > 1000000"
	CompFilter  string `json:"compFilter"`
	NotifyEmail string `json:"notifyEmail"`
}

// FinancialProjections drives the DCF. Margins shorter than the revenue
// horizon are padded by repeating the last value. Scalar assumptions left
// at zero are filled by SetDefaults; depreciation intentionally has no
// default because most early-stage models omit it.
type FinancialProjections struct {
	RevenueProjections  []float64 `json:"revenueProjections"`
	EBITDAMargins       []float64 `json:"ebitdaMargins"`
	CapexPercent        float64   `json:"capexPercent" default:"0.05"`
	NWCChangePercent    float64   `json:"nwcChangePercent" default:"0.02"`
	TaxRate             float64   `json:"taxRate" default:"0.25"`
	WACC                float64   `json:"wacc" default:"0.12"`
	TerminalGrowthRate  float64   `json:"terminalGrowthRate" default:"0.03"`
	DepreciationPercent float64   `json:"depreciationPercent"`
}

func (p *FinancialProjections) SetDefaults() error {
	return defaults.Set(p)
}

func (p FinancialProjections) Years() int {
	return len(p.RevenueProjections)
}

// ComparableCompany is an immutable per-run snapshot of a public peer.
// Pointer fields distinguish "provider had no number" from zero.
type ComparableCompany struct {
	Ticker          string   `json:"ticker"`
	Name            string   `json:"name,omitempty"`
	Sector          string   `json:"sector,omitempty"`
	Revenue         *float64 `json:"revenue"`
	EBITDA          *float64 `json:"ebitda"`
	MarketCap       *float64 `json:"marketCap"`
	EnterpriseValue *float64 `json:"enterpriseValue"`
	EVToRevenue     *float64 `json:"evToRevenue"`
	EVToEBITDA      *float64 `json:"evToEbitda"`
}

// CompSelectionScore records how one comparable scored against the target.
// Every candidate produces exactly one, included or not.
type CompSelectionScore struct {
	Ticker           string  `json:"ticker"`
	SectorScore      float64 `json:"sectorScore"`
	SizeScore        float64 `json:"sizeScore"`
	DataQualityScore float64 `json:"dataQualityScore"`
	CompositeScore   float64 `json:"compositeScore"`
	Included         bool    `json:"included"`
	ExclusionReason  string  `json:"exclusionReason,omitempty"`
}

// SelectionCriteria echoes the scoring parameters a comps run used, so the
// stored report can explain its own selection. Nil on the lenient path
// where no target sector was known and scoring was skipped.
type SelectionCriteria struct {
	SectorWeight      float64 `json:"sectorWeight"`
	SizeWeight        float64 `json:"sizeWeight"`
	DataQualityWeight float64 `json:"dataQualityWeight"`
	MinCompositeScore float64 `json:"minCompositeScore"`
	TargetSector      string  `json:"targetSector"`
}

type CompsResult struct {
	EnterpriseValue   float64              `json:"enterpriseValue"`
	MedianEVToRevenue float64              `json:"medianEvToRevenue"`
	MeanEVToRevenue   float64              `json:"meanEvToRevenue"`
	MedianEVToEBITDA  *float64             `json:"medianEvToEbitda,omitempty"`
	MeanEVToEBITDA    *float64             `json:"meanEvToEbitda,omitempty"`
	ComparableCount   int                  `json:"comparableCount"`
	Comparables       []ComparableCompany  `json:"comparables"`
	SelectionScores   []CompSelectionScore `json:"selectionScores,omitempty"`
	SelectionCriteria *SelectionCriteria   `json:"selectionCriteria,omitempty"`
	IsEstimated       bool                 `json:"isEstimated"`
	Warnings          []string             `json:"warnings,omitempty"`
}

type SensitivityCell struct {
	WACC            float64 `json:"wacc"`
	TerminalGrowth  float64 `json:"terminalGrowth"`
	EnterpriseValue float64 `json:"enterpriseValue"`
}

type DCFResult struct {
	EnterpriseValue float64 `json:"enterpriseValue"`
	// PresentValueSum and TerminalValue are both already discounted;
	// EnterpriseValue is their sum.
	PresentValueSum    float64           `json:"presentValueSum"`
	TerminalValue      float64           `json:"terminalValue"`
	ProjectionYears    int               `json:"projectionYears"`
	YearlyFCF          []float64         `json:"yearlyFcf,omitempty"`
	WACC               float64           `json:"wacc"`
	TerminalGrowthRate float64           `json:"terminalGrowthRate"`
	Sensitivity        []SensitivityCell `json:"sensitivity,omitempty"`
	IsEstimated        bool              `json:"isEstimated"`
	Warnings           []string          `json:"warnings,omitempty"`
}

type LastRoundResult struct {
	EnterpriseValue  float64  `json:"enterpriseValue"`
	RoundValuation   float64  `json:"roundValuation"`
	RoundDate        string   `json:"roundDate"`
	MonthsSinceRound *int     `json:"monthsSinceRound"`
	IndexAdjustment  float64  `json:"indexAdjustment"`
	IsStale          bool     `json:"isStale"`
	IsEstimated      bool     `json:"isEstimated"`
	Warnings         []string `json:"warnings,omitempty"`
}

// MethodologyWeight is one entry of the blend. Rationale must be
// reproducible from the same inputs - it is audit material, not logging.
type MethodologyWeight struct {
	Method    string  `json:"method"`
	Weight    float64 `json:"weight"`
	Rationale string  `json:"rationale"`
}

// BlendedValuation is the terminal output of a valuation run. A FairValue
// of 0 with empty Weights means no method produced a usable estimate;
// callers must branch on that rather than expect an error.
type BlendedValuation struct {
	FairValue float64             `json:"fairValue"`
	RangeLow  float64             `json:"rangeLow"`
	RangeHigh float64             `json:"rangeHigh"`
	Weights   []MethodologyWeight `json:"weights"`
	Comps     *CompsResult        `json:"comps"`
	DCF       *DCFResult          `json:"dcf"`
	LastRound *LastRoundResult    `json:"lastRound"`
}
