package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type auditLogStep struct {
	StepName   string    `json:"stepName"`
	Status     string    `json:"status"`
	DurationMs int64     `json:"durationMs"`
	Detail     *string   `json:"detail"`
	CreatedAt  time.Time `json:"createdAt"`
}

type auditLogModelCall struct {
	Purpose          string    `json:"purpose"`
	Model            string    `json:"model"`
	PromptTokens     *int32    `json:"promptTokens"`
	CompletionTokens *int32    `json:"completionTokens"`
	TotalTokens      *int32    `json:"totalTokens"`
	DurationMs       int64     `json:"durationMs"`
	Succeeded        bool      `json:"succeeded"`
	CreatedAt        time.Time `json:"createdAt"`
}

type auditLogResponse struct {
	Steps      []auditLogStep      `json:"steps"`
	ModelCalls []auditLogModelCall `json:"modelCalls"`
}

// getValuationAuditLog returns the persisted step transitions for a run
// alongside the model calls it made, so a reviewer can reconstruct where
// time and tokens went.
func (h ApiHandler) getValuationAuditLog(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid report id: %w", err), c, 400)
		return
	}

	steps, err := h.AuditLogRepository.ListForReport(h.Db, reportID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	modelCalls, err := h.ModelCallRepository.ListForReport(h.Db, reportID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := auditLogResponse{
		Steps:      []auditLogStep{},
		ModelCalls: []auditLogModelCall{},
	}
	for _, step := range steps {
		out.Steps = append(out.Steps, auditLogStep{
			StepName:   step.StepName,
			Status:     step.Status,
			DurationMs: step.DurationMs,
			Detail:     step.Detail,
			CreatedAt:  step.CreatedAt,
		})
	}
	for _, call := range modelCalls {
		out.ModelCalls = append(out.ModelCalls, auditLogModelCall{
			Purpose:          call.Purpose,
			Model:            call.Model,
			PromptTokens:     call.PromptTokens,
			CompletionTokens: call.CompletionTokens,
			TotalTokens:      call.TotalTokens,
			DurationMs:       call.DurationMs,
			Succeeded:        call.Succeeded,
			CreatedAt:        call.CreatedAt,
		})
	}

	c.JSON(200, out)
}
