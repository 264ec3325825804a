package api

import (
	"fairvalue/internal/db/models/postgres/public/model"
	"fairvalue/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h ApiHandler) listValuationReports(c *gin.Context) {
	rows, err := h.ValuationReportRepository.List(h.Db)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, reportSummariesFromRows(rows))
}

// reportSummariesFromRows projects stored rows onto the list shape. Failed
// runs have no fair value; those come through as zero.
func reportSummariesFromRows(rows []model.ValuationReport) []domain.ReportSummary {
	summaries := []domain.ReportSummary{}
	for _, row := range rows {
		summary := domain.ReportSummary{
			ID:          row.ValuationReportID,
			CompanyName: row.CompanyName,
			CreatedAt:   row.CreatedAt,
		}
		if row.FairValue != nil {
			summary.FairValue = *row.FairValue
		}
		summaries = append(summaries, summary)
	}

	return summaries
}
