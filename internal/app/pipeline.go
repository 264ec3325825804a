package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"fairvalue/internal/db/models/postgres/public/model"
	"fairvalue/internal/domain"
	"fairvalue/internal/logger"
	"fairvalue/internal/metrics"
	"fairvalue/internal/repository"
	"fairvalue/internal/service"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// report-level status stored on the valuation_report row
const (
	ReportStatusCompleted = "completed"
	ReportStatusFailed    = "failed"
)

type ValuationPipelineHandler struct {
	Db                        *sql.DB
	EnrichmentService         service.EnrichmentService
	MarketDataService         service.MarketDataService
	CompFilterService         service.CompFilterService
	ValuationService          service.ValuationService
	NarrativeService          service.NarrativeService
	NotificationService       service.NotificationService
	RunStatusRegistry         *service.RunStatusRegistry
	ValuationReportRepository repository.ValuationReportRepository
	AuditLogRepository        repository.AuditLogRepository
}

type RunValuationInput struct {
	// ReportID lets async callers hand out a stream URL before the run
	// starts. Zero means the pipeline assigns one.
	ReportID uuid.UUID
	Request  domain.ValuationRequest
}

// Run executes the fixed step sequence - validate, enrich, fetch, valuate,
// narrate, persist - and always returns a finished report. Step failures
// degrade or surface on the report instead of aborting the run. The
// returned error is non-nil only when the persist step could not store the
// report. Runs with a caller-assigned ReportID keep their sealed event log
// until the streaming consumer removes it; runs that let the pipeline
// assign the ID have no possible consumer, so their log is dropped on
// completion.
func (h ValuationPipelineHandler) Run(ctx context.Context, input RunValuationInput) (*domain.ValuationReport, error) {
	log := logger.FromContext(ctx)

	callerAssignedID := input.ReportID != uuid.Nil
	reportID := input.ReportID
	if !callerAssignedID {
		reportID = uuid.New()
	}
	h.RunStatusRegistry.Register(reportID)

	req := input.Request
	report := &domain.ValuationReport{
		ID:          reportID,
		CompanyName: req.CompanyName,
		Request:     req,
		CreatedAt:   time.Now().UTC(),
	}

	rec := &stepRecorder{
		registry: h.RunStatusRegistry,
		runID:    reportID,
		profile:  domain.GetPerformanceProfile(ctx),
	}

	log.Infof("pipeline started for %q (report %s)", req.CompanyName, reportID.String())

	// validate - gin binding already rejected malformed payloads, so the
	// step exists to anchor the audit trail
	rec.finish(domain.StepValidate, time.Now().UTC(), domain.StepStatusCompleted, "")

	// enrich - a research failure downgrades to fallback enrichment built
	// from the raw request
	startedAt := rec.begin(domain.StepEnrich)
	enriched, err := h.EnrichmentService.Enrich(ctx, req, reportID)
	if err != nil {
		if enriched == nil {
			enriched = h.EnrichmentService.FallbackEnrichment(req)
		}
		log.Warnf("enrichment failed for %q, continuing with fallback: %v", req.CompanyName, err)
		rec.finish(domain.StepEnrich, startedAt, domain.StepStatusFailed, err.Error())
	} else {
		rec.finish(domain.StepEnrich, startedAt, domain.StepStatusCompleted, "")
	}
	report.Enriched = enriched

	// fetch - the service degrades internally, so data is always usable;
	// an error means nothing could be fetched live
	startedAt = rec.begin(domain.StepFetch)
	marketData, err := h.MarketDataService.FetchMarketData(ctx, enriched.ComparableTickers, req.LastRoundDate)
	if req.CompFilter != "" {
		kept, filterWarnings := h.CompFilterService.Apply(ctx, req.CompFilter, marketData.Comparables)
		marketData.Comparables = kept
		marketData.Warnings = append(marketData.Warnings, filterWarnings...)
	}
	if err != nil {
		log.Warnf("market data fetch degraded for %q: %v", req.CompanyName, err)
		rec.finish(domain.StepFetch, startedAt, domain.StepStatusFailed, err.Error())
	} else {
		rec.finish(domain.StepFetch, startedAt, domain.StepStatusCompleted, "")
	}

	// valuate - insufficient data fails the step and annotates the report,
	// but the run continues so the failure itself gets persisted
	startedAt = rec.begin(domain.StepValuate)
	outcome, err := h.ValuationService.Valuate(ctx, req, enriched, marketData)
	if err != nil {
		if insufficient, ok := domain.AsInsufficientData(err); ok {
			report.Error = insufficient.Error()
			report.MissingFields = insufficient.MissingFields
		} else {
			report.Error = fmt.Sprintf("valuation step encountered an unexpected error: %v", err)
		}
		log.Errorf("valuation failed for %q: %v", req.CompanyName, err)
		rec.finish(domain.StepValuate, startedAt, domain.StepStatusFailed, err.Error())
	} else {
		report.Valuation = outcome.Valuation
		report.Assumptions = outcome.Assumptions
		rec.finish(domain.StepValuate, startedAt, domain.StepStatusCompleted, "")
	}

	// narrate - only when there is a positive fair value to explain; a
	// model failure downgrades to the deterministic fallback text
	if report.Valuation != nil && report.Valuation.FairValue > 0 {
		startedAt = rec.begin(domain.StepNarrate)
		narrative, err := h.NarrativeService.GenerateNarrative(ctx, req, report.Valuation, report.Assumptions, reportID)
		if err != nil {
			log.Warnf("narrative generation failed for %q, using fallback: %v", req.CompanyName, err)
			narrative = h.NarrativeService.FallbackNarrative(report.Valuation)
		}
		report.Narrative = narrative
		rec.finish(domain.StepNarrate, startedAt, domain.StepStatusCompleted, "")
	} else {
		rec.skip(domain.StepNarrate, "Skipped - no valuation results to narrate")
	}

	// persist - always runs, even for failed valuations, so the audit
	// trail survives. The stored body carries the steps up to this point;
	// the returned report additionally carries the persist step itself.
	report.Steps = rec.steps
	startedAt = rec.begin(domain.StepPersist)
	persistErr := h.persist(report, rec.steps)
	if persistErr != nil {
		log.Errorf("failed to persist report %s: %v", reportID.String(), persistErr)
		rec.finish(domain.StepPersist, startedAt, domain.StepStatusFailed, persistErr.Error())
	} else {
		rec.finish(domain.StepPersist, startedAt, domain.StepStatusCompleted, "")
	}
	report.Steps = rec.steps

	if callerAssignedID {
		h.RunStatusRegistry.MarkComplete(reportID)
	} else {
		// nobody knows this ID until the report is returned, so no
		// streamer will ever drain the log
		h.RunStatusRegistry.Remove(reportID)
	}

	outcomeLabel := ReportStatusCompleted
	if report.Error != "" {
		outcomeLabel = ReportStatusFailed
	}
	metrics.PipelineRuns.WithLabelValues(outcomeLabel).Inc()

	if report.Valuation != nil {
		log.Infof("pipeline completed for %q: fair value %.0f", req.CompanyName, report.Valuation.FairValue)
	} else {
		log.Infof("pipeline completed for %q without a valuation", req.CompanyName)
	}

	if err := h.NotificationService.SendCompletionEmail(report); err != nil {
		log.Warnf("failed to send completion email for report %s: %v", reportID.String(), err)
	}

	return report, persistErr
}

// persist stores the report row, then the audit trail. Either write
// failing fails the step; the caller still returns the in-memory report.
func (h ValuationPipelineHandler) persist(report *domain.ValuationReport, steps []domain.PipelineStep) error {
	reportBody, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report %s: %w", report.ID.String(), err)
	}
	requestBody, err := json.Marshal(report.Request)
	if err != nil {
		return fmt.Errorf("failed to serialize request for report %s: %w", report.ID.String(), err)
	}

	row := model.ValuationReport{
		ValuationReportID: report.ID,
		CompanyName:       report.CompanyName,
		Status:            ReportStatusCompleted,
		RequestBody:       string(requestBody),
		ReportBody:        string(reportBody),
	}
	if report.Error != "" {
		row.Status = ReportStatusFailed
		failureReason := report.Error
		row.FailureReason = &failureReason
	}
	if report.Valuation != nil {
		row.FairValue = &report.Valuation.FairValue
		row.RangeLow = &report.Valuation.RangeLow
		row.RangeHigh = &report.Valuation.RangeHigh
	}
	if report.Narrative != "" {
		narrative := report.Narrative
		row.Narrative = &narrative
	}

	if _, err := h.ValuationReportRepository.Add(h.Db, row); err != nil {
		return err
	}
	if err := h.AuditLogRepository.AddMany(h.Db, auditEntries(report.ID, steps)); err != nil {
		return err
	}

	return nil
}

func auditEntries(reportID uuid.UUID, steps []domain.PipelineStep) []model.PipelineAuditLog {
	entries := make([]model.PipelineAuditLog, 0, len(steps))
	for _, step := range steps {
		entry := model.PipelineAuditLog{
			ValuationReportID: reportID,
			StepName:          step.StepName,
			Status:            string(step.Status),
		}
		if step.DurationMS != nil {
			entry.DurationMs = *step.DurationMS
		}
		if step.Error != "" {
			detail := step.Error
			entry.Detail = &detail
		}
		entries = append(entries, entry)
	}
	return entries
}

// stepRecorder tracks one run's step transitions, mirroring each to the
// status registry, the prometheus histograms, and the request profile.
type stepRecorder struct {
	registry *service.RunStatusRegistry
	runID    uuid.UUID
	profile  *domain.PerformanceProfile
	steps    []domain.PipelineStep
}

func (r *stepRecorder) begin(stepName string) time.Time {
	startedAt := time.Now().UTC()
	r.registry.Publish(r.runID, domain.StepEvent{
		StepName:  stepName,
		Status:    domain.StepStatusRunning,
		Timestamp: startedAt,
	})
	return startedAt
}

func (r *stepRecorder) finish(stepName string, startedAt time.Time, status domain.StepStatus, stepErr string) {
	completedAt := time.Now().UTC()
	durationMs := completedAt.Sub(startedAt).Milliseconds()
	r.steps = append(r.steps, domain.PipelineStep{
		StepName:    stepName,
		Status:      status,
		StartedAt:   &startedAt,
		CompletedAt: &completedAt,
		DurationMS:  &durationMs,
		Error:       stepErr,
	})
	r.registry.Publish(r.runID, domain.StepEvent{
		StepName:   stepName,
		Status:     status,
		Timestamp:  completedAt,
		DurationMS: &durationMs,
		Error:      stepErr,
	})
	metrics.PipelineStepDuration.WithLabelValues(stepName, string(status)).Observe(float64(durationMs) / 1000)
	r.profile.Add(fmt.Sprintf("pipeline step %s: %s", stepName, status))
}

func (r *stepRecorder) skip(stepName string, reason string) {
	now := time.Now().UTC()
	durationMs := int64(0)
	r.steps = append(r.steps, domain.PipelineStep{
		StepName:    stepName,
		Status:      domain.StepStatusSkipped,
		StartedAt:   &now,
		CompletedAt: &now,
		DurationMS:  &durationMs,
		Error:       reason,
	})
	r.registry.Publish(r.runID, domain.StepEvent{
		StepName:  stepName,
		Status:    domain.StepStatusSkipped,
		Timestamp: now,
		Error:     reason,
	})
	metrics.PipelineStepDuration.WithLabelValues(stepName, string(domain.StepStatusSkipped)).Observe(0)
}
