package api

import (
	"bytes"
	"database/sql"
	"fairvalue/internal/app"
	"fairvalue/internal/db/models/postgres/public/model"
	"fairvalue/internal/logger"
	"fairvalue/internal/metrics"
	"fairvalue/internal/repository"
	"fairvalue/internal/service"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ApiHandler struct {
	Db                        *sql.DB
	ValuationPipelineHandler  app.ValuationPipelineHandler
	ValuationService          service.ValuationService
	ProjectionsParser         service.ProjectionsParser
	RunStatusRegistry         *service.RunStatusRegistry
	ValuationReportRepository repository.ValuationReportRepository
	AuditLogRepository        repository.AuditLogRepository
	ModelCallRepository       repository.ModelCallRepository
	ApiRequestRepository      repository.ApiRequestRepository
	LatencyTrackingRepository repository.LatencyTrackingRepository
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

// InitializeRouterEngine builds the gin engine with all routes and
// middleware attached. The lambda entrypoint wraps this engine directly
// instead of binding a port.
func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to fairvalue"})
	})
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/valuation", m.runValuation)
	router.POST("/valuation/async", m.runValuationAsync)
	router.GET("/valuation", m.listValuationReports)
	router.GET("/valuation/:id", m.getValuationReport)
	router.DELETE("/valuation/:id", m.deleteValuationReport)
	router.GET("/valuation/:id/events", m.streamValuationEvents)
	router.POST("/valuation/:id/reweight", m.reweightValuation)
	router.GET("/valuation/:id/audit-log", m.getValuationAuditLog)
	router.POST("/valuation/upload-projections", m.uploadProjections)
	router.GET("/usage-stats", m.getUsageStats)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	logger.Error("%v", err)
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error("%v", err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		logger.Warn("failed to get raw data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		logger.Warn("failed to record api request: %v", err)
	}
	if req != nil {
		ctx.Set("requestID", req.RequestID.String())
	}

	ctx.Next()

	route := ctx.FullPath()
	if route == "" {
		route = "unmatched"
	}
	metrics.HTTPRequestDuration.WithLabelValues(
		route,
		ctx.Request.Method,
		strconv.Itoa(ctx.Writer.Status()),
	).Observe(time.Since(start).Seconds())

	if req != nil {
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			logger.Warn("failed to update api request record: %v", err)
		}
	}
}
