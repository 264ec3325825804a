package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fairvalue/internal/domain"
	"fairvalue/internal/repository"
	mock_repository "fairvalue/internal/repository/mocks"
	"fairvalue/pkg/fundamentals"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func acmeFinancials() *fundamentals.FinancialResponse {
	out := &fundamentals.FinancialResponse{}
	out.FinancialData.Annual = fundamentals.Fields{
		Revenue:                  map[string]int64{"2023": 8_000_000_000, "2024": 10_000_000_000},
		OperatingIncome:          map[string]int64{"2024": 2_000_000_000},
		DepreciationAmortization: map[string]int64{"2024": 500_000_000},
		LongTermDebt:             map[string]int64{"2024": 3_000_000_000},
		CashOnHand:               map[string]int64{"2024": 1_000_000_000},
	}
	return out
}

func TestFetchMarketData(t *testing.T) {
	ctx := context.Background()

	t.Run("builds comparable from live data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)
		alpaca := mock_repository.NewMockAlpacaRepository(ctrl)

		marketData.EXPECT().GetEquitySnapshot("ACME").Return(&repository.EquitySnapshot{
			Symbol:    "ACME",
			Name:      "Acme Industrial Corp",
			MarketCap: 50_000_000_000,
		}, nil)
		marketData.EXPECT().GetCompanyFinancials("ACME").Return(acmeFinancials(), nil)

		svc := marketDataServiceHandler{MarketDataRepository: marketData, AlpacaRepository: alpaca}
		out, err := svc.FetchMarketData(ctx, []string{" acme "}, "")

		require.NoError(t, err)
		require.Len(t, out.Comparables, 1)
		comp := out.Comparables[0]
		require.Equal(t, "ACME", comp.Ticker)
		require.Equal(t, "Acme Industrial Corp", comp.Name)
		require.NotNil(t, comp.Revenue)
		require.InDelta(t, 10_000_000_000, *comp.Revenue, 1)
		require.NotNil(t, comp.EBITDA)
		require.InDelta(t, 2_500_000_000, *comp.EBITDA, 1)
		// ev = market cap + debt - cash
		require.NotNil(t, comp.EnterpriseValue)
		require.InDelta(t, 52_000_000_000, *comp.EnterpriseValue, 1)
		require.NotNil(t, comp.EVToRevenue)
		require.InDelta(t, 5.2, *comp.EVToRevenue, 0.001)
		require.NotNil(t, comp.EVToEBITDA)
		require.InDelta(t, 20.8, *comp.EVToEBITDA, 0.001)
		require.Empty(t, out.Warnings)
		require.Nil(t, out.Index)
	})

	t.Run("falls back to snapshot when live fetch fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)
		alpaca := mock_repository.NewMockAlpacaRepository(ctrl)

		marketData.EXPECT().GetEquitySnapshot("MSFT").Return(nil, errors.New("quote feed down"))

		svc := marketDataServiceHandler{MarketDataRepository: marketData, AlpacaRepository: alpaca}
		out, err := svc.FetchMarketData(ctx, []string{"MSFT"}, "")

		require.Error(t, err)
		require.Len(t, out.Comparables, 1)
		require.Equal(t, "MSFT", out.Comparables[0].Ticker)
		require.Equal(t, "Technology", out.Comparables[0].Sector)
		require.NotNil(t, out.Comparables[0].EVToRevenue)
		require.Contains(t, out.Warnings, "Using snapshot data for MSFT - live fetch failed")
	})

	t.Run("drops unknown ticker when live fetch fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)
		alpaca := mock_repository.NewMockAlpacaRepository(ctrl)

		marketData.EXPECT().GetEquitySnapshot("ZZZZ").Return(nil, errors.New("not found"))
		marketData.EXPECT().GetEquitySnapshot("MSFT").Return(nil, errors.New("quote feed down"))

		svc := marketDataServiceHandler{MarketDataRepository: marketData, AlpacaRepository: alpaca}
		out, _ := svc.FetchMarketData(ctx, []string{"ZZZZ", "MSFT"}, "")

		require.Len(t, out.Comparables, 1)
		require.Equal(t, "MSFT", out.Comparables[0].Ticker)
		require.Contains(t, out.Warnings, "Dropped comparable ZZZZ - no live or snapshot data")
	})

	t.Run("uses snapshot universe when every lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)
		alpaca := mock_repository.NewMockAlpacaRepository(ctrl)

		marketData.EXPECT().GetEquitySnapshot("ZZZZ").Return(nil, errors.New("not found"))

		svc := marketDataServiceHandler{MarketDataRepository: marketData, AlpacaRepository: alpaca}
		out, err := svc.FetchMarketData(ctx, []string{"ZZZZ"}, "")

		var acquisitionErr domain.AcquisitionError
		require.ErrorAs(t, err, &acquisitionErr)
		require.Equal(t, "fetch", acquisitionErr.Stage)
		require.Len(t, out.Comparables, len(defaultSnapshotTickers))
		require.Contains(t, out.Warnings, "All comparable lookups failed - using snapshot universe")
	})

	t.Run("uses snapshot universe when no tickers given", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)
		alpaca := mock_repository.NewMockAlpacaRepository(ctrl)

		svc := marketDataServiceHandler{MarketDataRepository: marketData, AlpacaRepository: alpaca}
		out, err := svc.FetchMarketData(ctx, nil, "")

		require.NoError(t, err)
		require.Len(t, out.Comparables, len(defaultSnapshotTickers))
		require.Equal(t, "MSFT", out.Comparables[0].Ticker)
		require.Contains(t, out.Warnings, "No comparable tickers available - using snapshot universe")
	})

	t.Run("fetches index return from primary benchmark", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)
		alpaca := mock_repository.NewMockAlpacaRepository(ctrl)

		since := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
		marketData.EXPECT().GetIndexReturnSince("^GSPC", since).Return(0.25, nil)

		svc := marketDataServiceHandler{MarketDataRepository: marketData, AlpacaRepository: alpaca}
		out, _ := svc.FetchMarketData(ctx, nil, "2023-06-15")

		require.NotNil(t, out.Index)
		require.Equal(t, "^GSPC", out.Index.Symbol)
		require.InDelta(t, 0.25, out.Index.ReturnSinceDate, 0.0001)
	})

	t.Run("falls back to alpaca when primary benchmark fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)
		alpaca := mock_repository.NewMockAlpacaRepository(ctrl)

		since := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
		marketData.EXPECT().GetIndexReturnSince("^GSPC", since).Return(0.0, errors.New("chart unavailable"))
		alpaca.EXPECT().GetIndexReturnSince("SPY", since).Return(0.18, nil)

		svc := marketDataServiceHandler{MarketDataRepository: marketData, AlpacaRepository: alpaca}
		out, _ := svc.FetchMarketData(ctx, nil, "2023-06-15")

		require.NotNil(t, out.Index)
		require.Equal(t, "SPY", out.Index.Symbol)
		require.InDelta(t, 0.18, out.Index.ReturnSinceDate, 0.0001)
	})

	t.Run("degrades to no index when both benchmarks fail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)
		alpaca := mock_repository.NewMockAlpacaRepository(ctrl)

		since := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
		marketData.EXPECT().GetIndexReturnSince("^GSPC", since).Return(0.0, errors.New("chart unavailable"))
		alpaca.EXPECT().GetIndexReturnSince("SPY", since).Return(0.0, errors.New("no bars"))

		svc := marketDataServiceHandler{MarketDataRepository: marketData, AlpacaRepository: alpaca}
		out, _ := svc.FetchMarketData(ctx, nil, "2023-06-15")

		require.Nil(t, out.Index)
		require.Contains(t, out.Warnings, "Index return unavailable - last-round valuation will be unadjusted")
	})

	t.Run("skips index lookup on unparseable date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketData := mock_repository.NewMockMarketDataRepository(ctrl)
		alpaca := mock_repository.NewMockAlpacaRepository(ctrl)

		svc := marketDataServiceHandler{MarketDataRepository: marketData, AlpacaRepository: alpaca}
		out, _ := svc.FetchMarketData(ctx, nil, "mid 2023")

		require.Nil(t, out.Index)
		require.Contains(t, out.Warnings, "Could not parse date mid 2023 for index lookup - last-round valuation will be unadjusted")
	})
}
