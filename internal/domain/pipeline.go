package domain

import (
	"time"

	"github.com/google/uuid"
)

type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusRunning   StepStatus = "running"
	StepStatusCompleted StepStatus = "completed"
	StepStatusFailed    StepStatus = "failed"
	StepStatusSkipped   StepStatus = "skipped"
)

const (
	StepValidate = "validate"
	StepEnrich   = "enrich"
	StepFetch    = "fetch"
	StepValuate  = "valuate"
	StepNarrate  = "narrate"
	StepPersist  = "persist"
)

// PipelineStepOrder is the fixed execution sequence. Steps never run out
// of order and never run twice within one report.
var PipelineStepOrder = []string{
	StepValidate,
	StepEnrich,
	StepFetch,
	StepValuate,
	StepNarrate,
	StepPersist,
}

type PipelineStep struct {
	StepName    string     `json:"stepName"`
	Status      StepStatus `json:"status"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	DurationMS  *int64     `json:"durationMs,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// StepEvent is the wire form of a PipelineStep transition. Appended to a
// run's event log and never mutated afterwards.
type StepEvent struct {
	StepName   string     `json:"stepName"`
	Status     StepStatus `json:"status"`
	Timestamp  time.Time  `json:"timestamp"`
	DurationMS *int64     `json:"durationMs,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// ValuationReport is the one artifact a run leaves behind. It always
// exists, even for failed valuations - failure lives in Error and
// MissingFields, never in a transport error.
type ValuationReport struct {
	ID            uuid.UUID            `json:"id"`
	CompanyName   string               `json:"companyName"`
	Request       ValuationRequest     `json:"request"`
	Enriched      *EnrichedCompanyData `json:"enriched,omitempty"`
	Valuation     *BlendedValuation    `json:"valuation"`
	Narrative     string               `json:"narrative,omitempty"`
	Assumptions   map[string]string    `json:"assumptions,omitempty"`
	Steps         []PipelineStep       `json:"steps"`
	Error         string               `json:"error,omitempty"`
	MissingFields []string             `json:"missingFields,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ReportSummary is the list-endpoint projection of a stored report.
type ReportSummary struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"companyName"`
	FairValue   float64   `json:"fairValue"`
	CreatedAt   time.Time `json:"createdAt"`
}
