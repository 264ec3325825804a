package api

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

func (h ApiHandler) deleteValuationReport(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid report id: %w", err), c, 400)
		return
	}

	if _, err := h.ValuationReportRepository.Get(h.Db, reportID); err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			returnErrorJsonCode(err, c, 404)
			return
		}
		returnErrorJson(err, c)
		return
	}

	if err := h.ValuationReportRepository.Delete(h.Db, reportID); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{"status": "deleted"})
}
