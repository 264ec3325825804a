package api

import (
	"encoding/json"
	"fairvalue/internal/logger"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const streamPollTimeout = 15 * time.Second

// streamValuationEvents writes pipeline step events as newline-delimited
// JSON, holding the connection open until the run completes. The registry
// entry is dropped once a completed run has been fully drained, so late
// callers get a 404 rather than a replay.
func (h ApiHandler) streamValuationEvents(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid report id: %w", err), c, 400)
		return
	}

	if _, _, err := h.RunStatusRegistry.Snapshot(reportID); err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}

	c.Header("Content-Type", "application/x-ndjson")
	c.Header("Cache-Control", "no-cache")

	cursor := 0
	for {
		events, complete, err := h.RunStatusRegistry.WaitForEvents(c.Request.Context(), reportID, cursor, streamPollTimeout)
		if err != nil {
			logger.Warn("event stream for %s ended: %v", reportID.String(), err)
			return
		}

		for _, event := range events {
			line, err := json.Marshal(event)
			if err != nil {
				logger.Warn("failed to marshal step event: %v", err)
				continue
			}
			if _, err := c.Writer.Write(append(line, '\n')); err != nil {
				return
			}
		}
		if len(events) > 0 {
			c.Writer.Flush()
		}
		cursor += len(events)

		if complete {
			h.RunStatusRegistry.Remove(reportID)
			return
		}
	}
}
