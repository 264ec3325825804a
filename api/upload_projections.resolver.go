package api

import (
	"fairvalue/internal/domain"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

type uploadProjectionsResponse struct {
	Projections *domain.FinancialProjections `json:"projections"`
	Years       int                          `json:"years"`
	Source      string                       `json:"source"`
}

// uploadProjections parses an uploaded projections file (JSON, simple CSV,
// sectioned CSV, or a DCF model export) without starting a run, so callers
// can check what the engine extracted before submitting a valuation.
func (h ApiHandler) uploadProjections(c *gin.Context) {
	var filename string
	var content []byte

	file, err := c.FormFile("file")
	if err == nil {
		filename = file.Filename
		f, err := file.Open()
		if err != nil {
			returnErrorJson(fmt.Errorf("failed to open upload: %w", err), c)
			return
		}
		defer f.Close()
		content, err = io.ReadAll(f)
		if err != nil {
			returnErrorJson(fmt.Errorf("failed to read upload: %w", err), c)
			return
		}
	} else {
		// no multipart part; treat the raw request body as JSON projections
		filename = "projections.json"
		content, err = c.GetRawData()
		if err != nil {
			returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
			return
		}
	}

	if len(content) == 0 {
		returnErrorJsonCode(fmt.Errorf("no projections payload provided"), c, 400)
		return
	}

	projections, err := h.ProjectionsParser.Parse(filename, content)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, uploadProjectionsResponse{
		Projections: projections,
		Years:       projections.Years(),
		Source:      filename,
	})
}
