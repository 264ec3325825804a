package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fairvalue/internal/domain"
	"fairvalue/internal/repository"
	"fmt"
	"strings"

	"github.com/ayush6624/go-chatgpt"
	"github.com/google/uuid"
)

const narrativeSystemPrompt = `You are a senior valuation analyst writing a fair value assessment narrative for an auditor reviewing a venture portfolio company. Be precise, reference the data, and explain the methodology weighting rationale. Write 2-4 paragraphs.

If any inputs were model-estimated rather than user-provided, prominently disclose which values were estimated and at what confidence level. This is critical for audit transparency.`

// NarrativeService turns a blended valuation into the prose an auditor
// reads. When the model is unreachable the caller falls back to a plain
// mechanical summary instead.
type NarrativeService interface {
	GenerateNarrative(ctx context.Context, req domain.ValuationRequest, valuation *domain.BlendedValuation, assumptions map[string]string, valuationReportID uuid.UUID) (string, error)
	FallbackNarrative(valuation *domain.BlendedValuation) string
}

type narrativeServiceHandler struct {
	Db                  *sql.DB
	LlmRepository       repository.LlmRepository
	ModelCallRepository repository.ModelCallRepository
}

func NewNarrativeService(
	db *sql.DB,
	llmRepository repository.LlmRepository,
	modelCallRepository repository.ModelCallRepository,
) NarrativeService {
	return &narrativeServiceHandler{
		Db:                  db,
		LlmRepository:       llmRepository,
		ModelCallRepository: modelCallRepository,
	}
}

func (h *narrativeServiceHandler) GenerateNarrative(ctx context.Context, req domain.ValuationRequest, valuation *domain.BlendedValuation, assumptions map[string]string, valuationReportID uuid.UUID) (string, error) {
	data := map[string]any{
		"companyName":        req.CompanyName,
		"sector":             req.Sector,
		"blendedFairValue":   valuation.FairValue,
		"fairValueRange":     []float64{valuation.RangeLow, valuation.RangeHigh},
		"methodologyWeights": valuation.Weights,
	}
	if valuation.Comps != nil {
		data["comps"] = map[string]any{
			"enterpriseValue":   valuation.Comps.EnterpriseValue,
			"medianEvToRevenue": valuation.Comps.MedianEVToRevenue,
			"comparableCount":   valuation.Comps.ComparableCount,
			"warnings":          valuation.Comps.Warnings,
		}
	}
	if valuation.DCF != nil {
		data["dcf"] = map[string]any{
			"enterpriseValue":    valuation.DCF.EnterpriseValue,
			"wacc":               valuation.DCF.WACC,
			"terminalGrowthRate": valuation.DCF.TerminalGrowthRate,
			"warnings":           valuation.DCF.Warnings,
		}
	}
	if valuation.LastRound != nil {
		data["lastRound"] = map[string]any{
			"enterpriseValue":  valuation.LastRound.EnterpriseValue,
			"indexAdjustment":  valuation.LastRound.IndexAdjustment,
			"monthsSinceRound": valuation.LastRound.MonthsSinceRound,
			"warnings":         valuation.LastRound.Warnings,
		}
	}
	if len(assumptions) > 0 {
		data["inputProvenance"] = assumptions
	}

	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal narrative payload: %w", err)
	}
	userPrompt := "Write a valuation narrative for:\n" + string(payload)

	completion, err := h.LlmRepository.ChatCompletion(ctx, chatgpt.GPT35Turbo, narrativeSystemPrompt, userPrompt)
	recordModelCall(ctx, h.Db, h.ModelCallRepository, valuationReportID, purposeNarrative, string(chatgpt.GPT35Turbo), completion, err)
	if err != nil {
		return "", fmt.Errorf("failed to generate narrative: %w", err)
	}

	return completion.Content, nil
}

// FallbackNarrative is the mechanical summary used when the model call
// fails. It carries the same numbers with none of the prose.
func (h *narrativeServiceHandler) FallbackNarrative(valuation *domain.BlendedValuation) string {
	parts := []string{
		fmt.Sprintf("Blended fair value estimate: $%s", withCommas(valuation.FairValue)),
		fmt.Sprintf("Range: $%s - $%s", withCommas(valuation.RangeLow), withCommas(valuation.RangeHigh)),
	}
	for _, w := range valuation.Weights {
		parts = append(parts, fmt.Sprintf("- %s: weight %.0f%% (%s)", w.Method, w.Weight*100, w.Rationale))
	}
	return strings.Join(parts, "\n")
}
