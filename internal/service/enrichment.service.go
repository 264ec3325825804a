package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fairvalue/internal/db/models/postgres/public/model"
	"fairvalue/internal/domain"
	"fairvalue/internal/logger"
	"fairvalue/internal/metrics"
	"fairvalue/internal/repository"
	"fairvalue/internal/util"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ayush6624/go-chatgpt"
	"github.com/google/uuid"
)

const (
	purposeResearch   = "research"
	purposeStructured = "structured"
	purposeNarrative  = "narrative"
)

const researchSystemPrompt = `You are a private-market equity research analyst. Given a company name and whatever financials the caller already knows, research the company and report:
- the sector it operates in
- 3-6 publicly traded comparable companies, by ticker
- which valuation methods apply: comps, dcf, last_round
- estimates for any missing financials: annual revenue, EBITDA, revenue growth rates, EBITDA margins, WACC, terminal growth rate, last funding round valuation and date
- how confident you are overall: high, medium, or low

Cite your sources at the end, one per line, formatted exactly as:
Source Title: https://example.com/article`

const structuredSystemPrompt = `You convert equity research notes into JSON. Respond with ONLY a JSON object, no prose and no code fences, using exactly these keys (omit any the notes do not support):
{"sector": string, "comparableTickers": [string], "applicableMethods": [string], "estimatedRevenue": number, "estimatedEbitda": number, "estimatedGrowthRates": [number], "estimatedMargins": [number], "estimatedWacc": number, "estimatedTerminalGrowth": number, "estimatedLastRoundValuation": number, "estimatedLastRoundDate": "YYYY-MM-DD", "confidence": "high"|"medium"|"low", "reasoning": string}
applicableMethods entries must be drawn from: comps, dcf, last_round. Dollar figures are absolute amounts, not millions.`

var (
	sourceLineRegex   = regexp.MustCompile(`(?m)^\s*(?:[-*]\s*|\d+[.)]\s*)?(.{3,120}?):\s*(https?://\S+)\s*$`)
	dollarAmountRegex = regexp.MustCompile(`(?i)\$\s?([0-9]+(?:\.[0-9]+)?)\s*(billion|million|bn|mm|b|m)\b`)
)

// EnrichmentService fills in what the caller left out: sector, peer
// tickers, applicable methods, and estimates for missing financials. It is
// the only component that talks to the research model.
type EnrichmentService interface {
	Enrich(ctx context.Context, req domain.ValuationRequest, valuationReportID uuid.UUID) (*domain.EnrichedCompanyData, error)
	FallbackEnrichment(req domain.ValuationRequest) *domain.EnrichedCompanyData
}

type enrichmentServiceHandler struct {
	Db                  *sql.DB
	LlmRepository       repository.LlmRepository
	ModelCallRepository repository.ModelCallRepository
}

func NewEnrichmentService(
	db *sql.DB,
	llmRepository repository.LlmRepository,
	modelCallRepository repository.ModelCallRepository,
) EnrichmentService {
	return &enrichmentServiceHandler{
		Db:                  db,
		LlmRepository:       llmRepository,
		ModelCallRepository: modelCallRepository,
	}
}

// Enrich runs the two model phases: a research completion, then a
// structured extraction of that research. When research itself fails the
// fallback enrichment is returned alongside the error so the caller can
// degrade instead of aborting.
func (h *enrichmentServiceHandler) Enrich(ctx context.Context, req domain.ValuationRequest, valuationReportID uuid.UUID) (*domain.EnrichedCompanyData, error) {
	research, err := h.research(ctx, req, valuationReportID)
	if err != nil {
		return h.FallbackEnrichment(req), domain.AcquisitionError{
			Stage: "enrich",
			Err:   fmt.Errorf("failed to research %s: %w", req.CompanyName, err),
		}
	}

	enriched, err := h.extractStructured(ctx, research, valuationReportID)
	if err != nil {
		// the research text is still usable; scrape what we can from it
		logger.FromContext(ctx).Warnf("structured extraction failed, scraping research text: %v", err)
		enriched = &domain.EnrichedCompanyData{
			Confidence: domain.ConfidenceLow,
			Reasoning:  "Structured extraction failed - estimates scraped from research text",
		}
	}

	enriched.ApplicableMethods = normalizeMethods(enriched.ApplicableMethods)
	if len(enriched.ApplicableMethods) == 0 {
		enriched.ApplicableMethods = []string{domain.MethodComps}
	}
	switch enriched.Confidence {
	case domain.ConfidenceHigh, domain.ConfidenceMedium, domain.ConfidenceLow:
	default:
		enriched.Confidence = domain.ConfidenceLow
	}
	enriched.Sources = parseSources(research)

	if enriched.EstimatedLastRoundValuation == nil {
		if amount, ok := dollarAmountFromText(research); ok {
			enriched.EstimatedLastRoundValuation = util.FloatPointer(amount)
			// a scraped figure is a guess, whatever the model claimed
			enriched.Confidence = domain.ConfidenceLow
		}
	}

	return enriched, nil
}

// FallbackEnrichment builds the minimal enrichment usable when research is
// unavailable: only methods the caller's own data can drive.
func (h *enrichmentServiceHandler) FallbackEnrichment(req domain.ValuationRequest) *domain.EnrichedCompanyData {
	methods := []string{domain.MethodComps}
	if req.Projections != nil {
		methods = append(methods, domain.MethodDCF)
	}
	if req.LastRoundValuation != nil {
		methods = append(methods, domain.MethodLastRound)
	}

	return &domain.EnrichedCompanyData{
		ApplicableMethods: methods,
		Confidence:        domain.ConfidenceLow,
		Reasoning:         "Company research unavailable - using caller-provided data only",
	}
}

func (h *enrichmentServiceHandler) research(ctx context.Context, req domain.ValuationRequest, valuationReportID uuid.UUID) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Company: %s\n", req.CompanyName)
	if req.Revenue != nil {
		fmt.Fprintf(&b, "Known annual revenue: $%.0f\n", *req.Revenue)
	}
	if req.EBITDA != nil {
		fmt.Fprintf(&b, "Known EBITDA: $%.0f\n", *req.EBITDA)
	}
	if req.LastRoundValuation != nil {
		fmt.Fprintf(&b, "Known last round valuation: $%.0f", *req.LastRoundValuation)
		if req.LastRoundDate != "" {
			fmt.Fprintf(&b, " (closed %s)", req.LastRoundDate)
		}
		b.WriteString("\n")
	}

	completion, err := h.LlmRepository.ChatCompletion(ctx, chatgpt.GPT4, researchSystemPrompt, b.String())
	recordModelCall(ctx, h.Db, h.ModelCallRepository, valuationReportID, purposeResearch, string(chatgpt.GPT4), completion, err)
	if err != nil {
		return "", err
	}

	return completion.Content, nil
}

// extractStructured asks the cheaper model to reshape research text into
// the enrichment JSON, retrying once when the reply does not parse.
func (h *enrichmentServiceHandler) extractStructured(ctx context.Context, research string, valuationReportID uuid.UUID) (*domain.EnrichedCompanyData, error) {
	userPrompt := "Research notes:\n\n" + research

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		prompt := userPrompt
		if attempt > 0 {
			prompt = userPrompt + "\n\nYour previous reply was not valid JSON. Respond with only the JSON object."
		}

		completion, err := h.LlmRepository.ChatCompletion(ctx, chatgpt.GPT35Turbo, structuredSystemPrompt, prompt)
		recordModelCall(ctx, h.Db, h.ModelCallRepository, valuationReportID, purposeStructured, string(chatgpt.GPT35Turbo), completion, err)
		if err != nil {
			lastErr = err
			continue
		}

		enriched := &domain.EnrichedCompanyData{}
		if err := json.Unmarshal([]byte(extractJSONBlock(completion.Content)), enriched); err != nil {
			lastErr = fmt.Errorf("failed to parse enrichment JSON: %w", err)
			continue
		}
		return enriched, nil
	}

	return nil, lastErr
}

// recordModelCall audits one model invocation for any service that talks
// to the LLM. Audit failures are logged, never propagated.
func recordModelCall(ctx context.Context, db *sql.DB, modelCalls repository.ModelCallRepository, valuationReportID uuid.UUID, purpose string, modelName string, completion *repository.LlmCompletion, callErr error) {
	result := "ok"
	if callErr != nil {
		result = "error"
	}
	metrics.ModelCalls.WithLabelValues(purpose, result).Inc()

	mc := model.ModelCallLog{
		ValuationReportID: &valuationReportID,
		Purpose:           purpose,
		Model:             modelName,
		Succeeded:         callErr == nil,
	}
	if completion != nil {
		mc.PromptTokens = util.Int32Pointer(completion.PromptTokens)
		mc.CompletionTokens = util.Int32Pointer(completion.CompletionTokens)
		mc.TotalTokens = util.Int32Pointer(completion.TotalTokens)
		mc.DurationMs = completion.Duration.Milliseconds()
	}

	if _, err := modelCalls.Add(db, mc); err != nil {
		logger.FromContext(ctx).Warnf("failed to record %s model call: %v", purpose, err)
	}
}

// extractJSONBlock strips code fences and any prose around the outermost
// JSON object.
func extractJSONBlock(s string) string {
	if idx := strings.Index(s, "```"); idx >= 0 {
		rest := s[idx+3:]
		rest = strings.TrimPrefix(rest, "json")
		if end := strings.Index(rest, "```"); end >= 0 {
			s = rest[:end]
		} else {
			s = rest
		}
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

func normalizeMethods(methods []string) []string {
	out := []string{}
	for _, m := range methods {
		normalized := strings.ToLower(strings.TrimSpace(m))
		normalized = strings.ReplaceAll(normalized, "-", "_")
		switch normalized {
		case "comps", "comparables", "comparable_companies":
			normalized = domain.MethodComps
		case "dcf", "discounted_cash_flow":
			normalized = domain.MethodDCF
		case "last_round", "lastround", "last_financing_round":
			normalized = domain.MethodLastRound
		default:
			continue
		}
		if !containsMethod(out, normalized) {
			out = append(out, normalized)
		}
	}
	return out
}

func containsMethod(methods []string, method string) bool {
	for _, m := range methods {
		if m == method {
			return true
		}
	}
	return false
}

// parseSources pulls "Title: https://..." citation lines out of research
// text.
func parseSources(research string) []domain.ResearchSource {
	matches := sourceLineRegex.FindAllStringSubmatch(research, -1)
	sources := []domain.ResearchSource{}
	for _, m := range matches {
		title := strings.TrimSpace(m[1])
		url := strings.TrimSpace(m[2])
		// "Source Title: https://..." keeps the literal prefix out of titles
		title = strings.TrimPrefix(title, "Source: ")
		if title == "" || strings.Contains(title, "://") {
			continue
		}
		sources = append(sources, domain.ResearchSource{Title: title, URL: url})
	}
	return sources
}

// dollarAmountFromText scrapes the first "$X billion/million" figure.
func dollarAmountFromText(s string) (float64, bool) {
	m := dollarAmountRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	switch strings.ToLower(m[2]) {
	case "billion", "bn", "b":
		amount *= 1e9
	case "million", "mm", "m":
		amount *= 1e6
	}
	return amount, true
}
