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

func (h ApiHandler) getValuationReport(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid report id: %w", err), c, 400)
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

	c.JSON(200, report)
}
