package api

import (
	"encoding/json"
	"errors"
	"fairvalue/internal/domain"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type reweightRequest struct {
	Weights map[string]float64 `json:"weights" binding:"required"`
}

// reweightValuation recomputes the blended fair value of a stored report
// with caller-supplied methodology weights. Nothing is re-fetched; only the
// blend and its stored aggregates change.
func (h ApiHandler) reweightValuation(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid report id: %w", err), c, 400)
		return
	}

	var requestBody reweightRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	row, err := h.ValuationReportRepository.Get(h.Db, reportID)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			returnErrorJsonCode(err, c, 404)
			return
		}
		returnErrorJson(err, c)
		return
	}

	var report domain.ValuationReport
	if err := json.Unmarshal([]byte(row.ReportBody), &report); err != nil {
		returnErrorJson(fmt.Errorf("failed to decode stored report: %w", err), c)
		return
	}

	updated, err := h.ValuationService.Reblend(report.Valuation, requestBody.Weights)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	report.Valuation = updated

	reportBody, err := json.Marshal(report)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to encode reweighted report: %w", err), c)
		return
	}
	row.ReportBody = string(reportBody)
	row.FairValue = &updated.FairValue
	row.RangeLow = &updated.RangeLow
	row.RangeHigh = &updated.RangeHigh

	if err := h.ValuationReportRepository.UpdateBlend(h.Db, *row); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, report)
}
