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

type ModelCallRepository interface {
	Add(db qrm.Queryable, mc model.ModelCallLog) (*model.ModelCallLog, error)
	ListForReport(db qrm.Queryable, valuationReportID uuid.UUID) ([]model.ModelCallLog, error)
}

type ModelCallRepositoryHandler struct{}

func (h ModelCallRepositoryHandler) Add(db qrm.Queryable, mc model.ModelCallLog) (*model.ModelCallLog, error) {
	mc.ModelCallLogID = uuid.New()
	mc.CreatedAt = time.Now().UTC()

	query := table.ModelCallLog.
		INSERT(table.ModelCallLog.MutableColumns).
		MODEL(mc).
		RETURNING(table.ModelCallLog.AllColumns)

	out := &model.ModelCallLog{}
	err := query.Query(db, out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert model call log: %w", err)
	}

	return out, nil
}

func (h ModelCallRepositoryHandler) ListForReport(db qrm.Queryable, valuationReportID uuid.UUID) ([]model.ModelCallLog, error) {
	query := table.ModelCallLog.
		SELECT(table.ModelCallLog.AllColumns).
		WHERE(table.ModelCallLog.ValuationReportID.EQ(postgres.UUID(valuationReportID))).
		ORDER_BY(table.ModelCallLog.CreatedAt.ASC())

	out := []model.ModelCallLog{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list model calls: %w", err)
	}

	return out, nil
}
