package api

import (
	"context"
	"fairvalue/internal/app"
	"fairvalue/internal/domain"
	"fairvalue/internal/logger"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type runValuationAsyncResponse struct {
	ReportID  uuid.UUID `json:"reportId"`
	StreamURL string    `json:"streamUrl"`
}

// runValuation executes the full pipeline inline and returns the finished
// report. Degraded runs (failed enrichment, missing inputs) still come back
// as 200s with the failure captured in the report body; only a persist
// failure surfaces as an error response.
func (h ApiHandler) runValuation(c *gin.Context) {
	performanceProfile := domain.NewPerformanceProfile()
	ctx := context.WithValue(context.Background(), domain.ContextProfileKey, performanceProfile)
	performanceProfile.Add("initialized")

	var requestBody domain.ValuationRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	report, err := h.ValuationPipelineHandler.Run(ctx, app.RunValuationInput{
		Request: requestBody,
	})
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to run valuation: %w", err), c)
		return
	}

	performanceProfile.Add("finished valuation")
	performanceProfile.End()

	var requestId *uuid.UUID
	requestIDAny, ok := c.Get("requestID")
	if ok {
		requestIDStr, ok := requestIDAny.(string)
		if ok {
			id, err := uuid.Parse(requestIDStr)
			if err == nil {
				requestId = &id
			}
		}
	}
	if err := h.LatencyTrackingRepository.Add(*performanceProfile, requestId); err != nil {
		logger.Warn("failed to record latency profile: %v", err)
	}

	c.JSON(200, report)
}

// runValuationAsync kicks the pipeline off in the background and hands the
// caller a report ID plus the event-stream URL to follow progress on.
func (h ApiHandler) runValuationAsync(c *gin.Context) {
	var requestBody domain.ValuationRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	reportID := uuid.New()
	h.RunStatusRegistry.Register(reportID)

	go func() {
		_, err := h.ValuationPipelineHandler.Run(context.Background(), app.RunValuationInput{
			ReportID: reportID,
			Request:  requestBody,
		})
		if err != nil {
			logger.Error("async valuation %s failed to persist: %v", reportID.String(), err)
		}
	}()

	c.JSON(202, runValuationAsyncResponse{
		ReportID:  reportID,
		StreamURL: fmt.Sprintf("/valuation/%s/events", reportID.String()),
	})
}
