package service

import (
	"context"
	"errors"
	"testing"

	"fairvalue/internal/domain"
	"fairvalue/internal/repository"
	mock_repository "fairvalue/internal/repository/mocks"
	"fairvalue/internal/util"

	"github.com/ayush6624/go-chatgpt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const researchFixture = `Acme Robotics builds warehouse automation systems in the industrial technology sector.

Comparable public companies include ROK, ABB, and TER.

The company last raised at a $2.5 billion valuation in mid 2023.

Sources:
TechCrunch - Acme raises again: https://techcrunch.com/acme-round
1. Bloomberg company profile: https://bloomberg.com/acme
`

const structuredFixture = `{"sector": "Industrial Technology", "comparableTickers": ["ROK", "ABB", "TER"], "applicableMethods": ["comps", "DCF", "last-round"], "estimatedRevenue": 180000000, "estimatedWacc": 0.13, "estimatedLastRoundValuation": 2400000000, "confidence": "medium", "reasoning": "multiple public peers with clean data"}`

func TestEnrich(t *testing.T) {
	ctx := context.Background()
	req := domain.ValuationRequest{CompanyName: "Acme Robotics"}
	reportID := uuid.New()

	t.Run("research plus structured extraction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_repository.NewMockLlmRepository(ctrl)
		modelCalls := mock_repository.NewMockModelCallRepository(ctrl)
		modelCalls.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		llm.EXPECT().
			ChatCompletion(gomock.Any(), chatgpt.GPT4, gomock.Any(), gomock.Any()).
			Return(&repository.LlmCompletion{Content: researchFixture}, nil)
		llm.EXPECT().
			ChatCompletion(gomock.Any(), chatgpt.GPT35Turbo, gomock.Any(), gomock.Any()).
			Return(&repository.LlmCompletion{Content: structuredFixture}, nil)

		handler := &enrichmentServiceHandler{
			LlmRepository:       llm,
			ModelCallRepository: modelCalls,
		}

		enriched, err := handler.Enrich(ctx, req, reportID)
		require.NoError(t, err)
		require.Equal(t, "Industrial Technology", enriched.Sector)
		require.Equal(t, []string{"ROK", "ABB", "TER"}, enriched.ComparableTickers)
		require.Equal(t, []string{domain.MethodComps, domain.MethodDCF, domain.MethodLastRound}, enriched.ApplicableMethods)
		require.Equal(t, domain.ConfidenceMedium, enriched.Confidence)
		require.NotNil(t, enriched.EstimatedLastRoundValuation)
		require.InDelta(t, 2_400_000_000, *enriched.EstimatedLastRoundValuation, 1)

		require.Len(t, enriched.Sources, 2)
		require.Equal(t, "TechCrunch - Acme raises again", enriched.Sources[0].Title)
		require.Equal(t, "https://techcrunch.com/acme-round", enriched.Sources[0].URL)
		require.Equal(t, "Bloomberg company profile", enriched.Sources[1].Title)
	})

	t.Run("invalid JSON is retried once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_repository.NewMockLlmRepository(ctrl)
		modelCalls := mock_repository.NewMockModelCallRepository(ctrl)
		modelCalls.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		llm.EXPECT().
			ChatCompletion(gomock.Any(), chatgpt.GPT4, gomock.Any(), gomock.Any()).
			Return(&repository.LlmCompletion{Content: researchFixture}, nil)
		llm.EXPECT().
			ChatCompletion(gomock.Any(), chatgpt.GPT35Turbo, gomock.Any(), gomock.Any()).
			Return(&repository.LlmCompletion{Content: "Sure! Here is the data you asked for."}, nil)
		llm.EXPECT().
			ChatCompletion(gomock.Any(), chatgpt.GPT35Turbo, gomock.Any(), gomock.Any()).
			Return(&repository.LlmCompletion{Content: "```json\n" + structuredFixture + "\n```"}, nil)

		handler := &enrichmentServiceHandler{
			LlmRepository:       llm,
			ModelCallRepository: modelCalls,
		}

		enriched, err := handler.Enrich(ctx, req, reportID)
		require.NoError(t, err)
		require.Equal(t, "Industrial Technology", enriched.Sector)
	})

	t.Run("research failure degrades to fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_repository.NewMockLlmRepository(ctrl)
		modelCalls := mock_repository.NewMockModelCallRepository(ctrl)
		modelCalls.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		llm.EXPECT().
			ChatCompletion(gomock.Any(), chatgpt.GPT4, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("model unavailable"))

		handler := &enrichmentServiceHandler{
			LlmRepository:       llm,
			ModelCallRepository: modelCalls,
		}

		withProjections := domain.ValuationRequest{
			CompanyName: "Acme Robotics",
			Projections: &domain.FinancialProjections{RevenueProjections: []float64{1000}},
		}
		enriched, err := handler.Enrich(ctx, withProjections, reportID)
		var acquisitionErr domain.AcquisitionError
		require.ErrorAs(t, err, &acquisitionErr)
		require.Equal(t, "enrich", acquisitionErr.Stage)
		require.NotNil(t, enriched)
		require.Equal(t, []string{domain.MethodComps, domain.MethodDCF}, enriched.ApplicableMethods)
		require.Equal(t, domain.ConfidenceLow, enriched.Confidence)
	})

	t.Run("unusable extraction scrapes the research text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_repository.NewMockLlmRepository(ctrl)
		modelCalls := mock_repository.NewMockModelCallRepository(ctrl)
		modelCalls.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		llm.EXPECT().
			ChatCompletion(gomock.Any(), chatgpt.GPT4, gomock.Any(), gomock.Any()).
			Return(&repository.LlmCompletion{Content: researchFixture}, nil)
		llm.EXPECT().
			ChatCompletion(gomock.Any(), chatgpt.GPT35Turbo, gomock.Any(), gomock.Any()).
			Return(&repository.LlmCompletion{Content: "no json here"}, nil).
			Times(2)

		handler := &enrichmentServiceHandler{
			LlmRepository:       llm,
			ModelCallRepository: modelCalls,
		}

		enriched, err := handler.Enrich(ctx, req, reportID)
		require.NoError(t, err)
		require.Equal(t, []string{domain.MethodComps}, enriched.ApplicableMethods)
		require.Equal(t, domain.ConfidenceLow, enriched.Confidence)
		require.NotNil(t, enriched.EstimatedLastRoundValuation)
		require.InDelta(t, 2_500_000_000, *enriched.EstimatedLastRoundValuation, 1)
		require.Len(t, enriched.Sources, 2)
	})
}

func TestFallbackEnrichment(t *testing.T) {
	handler := &enrichmentServiceHandler{}

	t.Run("comps only for a bare request", func(t *testing.T) {
		enriched := handler.FallbackEnrichment(domain.ValuationRequest{CompanyName: "Acme"})
		require.Equal(t, []string{domain.MethodComps}, enriched.ApplicableMethods)
	})

	t.Run("caller data unlocks methods", func(t *testing.T) {
		enriched := handler.FallbackEnrichment(domain.ValuationRequest{
			CompanyName:        "Acme",
			Projections:        &domain.FinancialProjections{RevenueProjections: []float64{100}},
			LastRoundValuation: util.FloatPointer(5_000_000),
		})
		require.Equal(t, []string{domain.MethodComps, domain.MethodDCF, domain.MethodLastRound}, enriched.ApplicableMethods)
	})
}

func TestNormalizeMethods(t *testing.T) {
	require.Equal(t,
		[]string{domain.MethodComps, domain.MethodDCF, domain.MethodLastRound},
		normalizeMethods([]string{"Comps", "DCF", "last-round", "astrology", "comps"}))
	require.Empty(t, normalizeMethods([]string{"astrology"}))
}

func TestDollarAmountFromText(t *testing.T) {
	amount, ok := dollarAmountFromText("raised at a $2.5 billion valuation")
	require.True(t, ok)
	require.InDelta(t, 2.5e9, amount, 1)

	amount, ok = dollarAmountFromText("a $750 million round")
	require.True(t, ok)
	require.InDelta(t, 7.5e8, amount, 1)

	_, ok = dollarAmountFromText("an undisclosed amount")
	require.False(t, ok)
}

func TestExtractJSONBlock(t *testing.T) {
	require.Equal(t, `{"a": 1}`, extractJSONBlock("```json\n{\"a\": 1}\n```"))
	require.Equal(t, `{"a": 1}`, extractJSONBlock("Here you go: {\"a\": 1} hope that helps"))
}
