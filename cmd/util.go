package cmd

import (
	"database/sql"
	"fairvalue/api"
	"fairvalue/internal/app"
	"fairvalue/internal/repository"
	"fairvalue/internal/service"
	"fairvalue/internal/util"
	"fairvalue/pkg/fundamentals"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	var llmRepository repository.LlmRepository
	if strings.EqualFold(os.Getenv("FAIRVALUE_ENV"), "test") || UseMockLlm {
		llmRepository = NewMockLlmRepositoryForTests()
	} else {
		llmRepository, err = repository.NewLlmRepository(secrets.ChatGPTApiKey)
		if err != nil {
			return nil, err
		}
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	fundamentalsClient := fundamentals.Client{
		HttpClient: http.DefaultClient,
		ApiKey:     secrets.FundamentalsApiKey,
	}

	marketDataRepository := repository.NewMarketDataRepository(fundamentalsClient)
	alpacaRepository := repository.NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)
	modelCallRepository := repository.ModelCallRepositoryHandler{}
	valuationReportRepository := repository.ValuationReportRepositoryHandler{}
	auditLogRepository := repository.AuditLogRepositoryHandler{}

	emailRepository, err := repository.NewEmailRepository(secrets.SES.Region, secrets.SES.FromEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to create email repository: %w", err)
	}

	runStatusRegistry := service.NewRunStatusRegistry()
	enrichmentService := service.NewEnrichmentService(dbConn, llmRepository, modelCallRepository)
	marketDataService := service.NewMarketDataService(marketDataRepository, alpacaRepository)
	compFilterService := service.NewCompFilterService()
	valuationService := service.NewValuationService()
	narrativeService := service.NewNarrativeService(dbConn, llmRepository, modelCallRepository)
	notificationService := service.NewNotificationService(emailRepository)

	pipelineHandler := app.ValuationPipelineHandler{
		Db:                        dbConn,
		EnrichmentService:         enrichmentService,
		MarketDataService:         marketDataService,
		CompFilterService:         compFilterService,
		ValuationService:          valuationService,
		NarrativeService:          narrativeService,
		NotificationService:       notificationService,
		RunStatusRegistry:         runStatusRegistry,
		ValuationReportRepository: valuationReportRepository,
		AuditLogRepository:        auditLogRepository,
	}

	apiHandler := &api.ApiHandler{
		Db:                        dbConn,
		ValuationPipelineHandler:  pipelineHandler,
		ValuationService:          valuationService,
		ProjectionsParser:         service.NewProjectionsParser(),
		RunStatusRegistry:         runStatusRegistry,
		ValuationReportRepository: valuationReportRepository,
		AuditLogRepository:        auditLogRepository,
		ModelCallRepository:       modelCallRepository,
		ApiRequestRepository:      repository.ApiRequestRepositoryHandler{},
		LatencyTrackingRepository: repository.NewLatencyTrackingRepository(dbConn),
	}

	return apiHandler, nil
}
