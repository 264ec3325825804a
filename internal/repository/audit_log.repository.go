package repository

import (
	"fairvalue/internal/db/models/postgres/public/model"
	"fairvalue/internal/db/models/postgres/public/table"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type AuditLogRepository interface {
	AddMany(db qrm.Executable, entries []model.PipelineAuditLog) error
	ListForReport(db qrm.Queryable, valuationReportID uuid.UUID) ([]model.PipelineAuditLog, error)
}

type AuditLogRepositoryHandler struct{}

func (h AuditLogRepositoryHandler) AddMany(db qrm.Executable, entries []model.PipelineAuditLog) error {
	if len(entries) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for i := range entries {
		entries[i].PipelineAuditLogID = uuid.New()
		entries[i].CreatedAt = now
	}

	query := table.PipelineAuditLog.
		INSERT(table.PipelineAuditLog.MutableColumns).
		MODELS(entries)

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert pipeline audit log: %w", err)
	}

	return nil
}

func (h AuditLogRepositoryHandler) ListForReport(db qrm.Queryable, valuationReportID uuid.UUID) ([]model.PipelineAuditLog, error) {
	query := table.PipelineAuditLog.
		SELECT(table.PipelineAuditLog.AllColumns).
		WHERE(table.PipelineAuditLog.ValuationReportID.EQ(postgres.UUID(valuationReportID))).
		ORDER_BY(table.PipelineAuditLog.CreatedAt.ASC())

	out := []model.PipelineAuditLog{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log entries: %w", err)
	}

	return out, nil
}
