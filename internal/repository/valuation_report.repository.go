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

type ValuationReportRepository interface {
	Add(db qrm.Queryable, vr model.ValuationReport) (*model.ValuationReport, error)
	Get(db qrm.Queryable, valuationReportID uuid.UUID) (*model.ValuationReport, error)
	List(db qrm.Queryable) ([]model.ValuationReport, error)
	UpdateBlend(db qrm.Executable, vr model.ValuationReport) error
	Delete(db qrm.Executable, valuationReportID uuid.UUID) error
}

type ValuationReportRepositoryHandler struct{}

func (h ValuationReportRepositoryHandler) Add(db qrm.Queryable, vr model.ValuationReport) (*model.ValuationReport, error) {
	vr.CreatedAt = time.Now().UTC()

	query := table.ValuationReport.
		INSERT(table.ValuationReport.MutableColumns).
		MODEL(vr).
		RETURNING(table.ValuationReport.AllColumns)

	out := &model.ValuationReport{}
	err := query.Query(db, out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert valuation report: %w", err)
	}

	return out, nil
}

func (h ValuationReportRepositoryHandler) Get(db qrm.Queryable, valuationReportID uuid.UUID) (*model.ValuationReport, error) {
	query := table.ValuationReport.
		SELECT(table.ValuationReport.AllColumns).
		WHERE(table.ValuationReport.ValuationReportID.EQ(postgres.UUID(valuationReportID)))

	out := &model.ValuationReport{}
	err := query.Query(db, out)
	if err != nil {
		return nil, fmt.Errorf("failed to get valuation report %s: %w", valuationReportID.String(), err)
	}

	return out, nil
}

func (h ValuationReportRepositoryHandler) List(db qrm.Queryable) ([]model.ValuationReport, error) {
	query := table.ValuationReport.
		SELECT(table.ValuationReport.AllColumns).
		ORDER_BY(table.ValuationReport.CreatedAt.DESC())

	out := []model.ValuationReport{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list valuation reports: %w", err)
	}

	return out, nil
}

// UpdateBlend rewrites the stored report after a reweight. The original
// request body and created timestamp are immutable.
func (h ValuationReportRepositoryHandler) UpdateBlend(db qrm.Executable, vr model.ValuationReport) error {
	now := time.Now().UTC()
	vr.UpdatedAt = &now

	query := table.ValuationReport.
		UPDATE(
			table.ValuationReport.ReportBody,
			table.ValuationReport.FairValue,
			table.ValuationReport.RangeLow,
			table.ValuationReport.RangeHigh,
			table.ValuationReport.UpdatedAt,
		).
		MODEL(vr).
		WHERE(table.ValuationReport.ValuationReportID.EQ(postgres.UUID(vr.ValuationReportID)))

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to update valuation report: %w", err)
	}

	return nil
}

func (h ValuationReportRepositoryHandler) Delete(db qrm.Executable, valuationReportID uuid.UUID) error {
	query := table.ValuationReport.
		DELETE().
		WHERE(table.ValuationReport.ValuationReportID.EQ(postgres.UUID(valuationReportID)))

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete valuation report: %w", err)
	}

	return nil
}
