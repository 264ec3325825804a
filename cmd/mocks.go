package cmd

import (
	"context"
	"fairvalue/internal/repository"
	"strings"
	"time"

	"github.com/ayush6624/go-chatgpt"
)

// flip this on to run the full pipeline offline with canned model output.
// the answers are obviously fake, so never in prod
const UseMockLlm = false

type mockLlmRepositoryHandler struct{}

func NewMockLlmRepositoryForTests() repository.LlmRepository {
	return mockLlmRepositoryHandler{}
}

const mockResearchText = `Acme-grade B2B software company operating in the enterprise software sector.
Comparable public companies: MSFT, CRM, NOW.
Applicable valuation methods: comps, dcf.
Estimated annual revenue around $75 million with ~25% growth.

TechCrunch funding coverage: https://techcrunch.com/example
Company homepage: https://example.com`

const mockEnrichmentJSON = `{
  "sector": "Software",
  "comparableTickers": ["MSFT", "CRM", "NOW"],
  "applicableMethods": ["comps", "dcf"],
  "estimatedRevenue": 75000000,
  "estimatedGrowthRates": [0.25, 0.2, 0.15],
  "estimatedMargins": [0.15, 0.18, 0.2],
  "confidence": "medium",
  "reasoning": "Canned enrichment from the offline mock model"
}`

const mockNarrativeText = `This fair value estimate blends the methods that produced usable results for the subject company. Comparable-company analysis anchored the estimate on the revenue multiples of its public peers, with the discounted cash flow corroborating from projected free cash flows. All figures here are canned output from the offline mock model and carry no analytical weight.`

func (h mockLlmRepositoryHandler) ChatCompletion(ctx context.Context, model chatgpt.ChatGPTModel, systemPrompt string, userPrompt string) (*repository.LlmCompletion, error) {
	content := mockResearchText
	switch {
	case strings.Contains(systemPrompt, "JSON"):
		content = mockEnrichmentJSON
	case strings.Contains(systemPrompt, "narrative"):
		content = mockNarrativeText
	}

	return &repository.LlmCompletion{
		Content:          content,
		Model:            string(model),
		PromptTokens:     int32(len(userPrompt) / 4),
		CompletionTokens: int32(len(content) / 4),
		TotalTokens:      int32((len(userPrompt) + len(content)) / 4),
		Duration:         5 * time.Millisecond,
	}, nil
}
