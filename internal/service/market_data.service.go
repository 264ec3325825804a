package service

import (
	"context"
	"errors"
	"fairvalue/internal/domain"
	"fairvalue/internal/logger"
	"fairvalue/internal/repository"
	"fairvalue/internal/util"
	"fairvalue/pkg/fundamentals"
	"fmt"
	"strings"
	"time"
)

const (
	primaryIndexSymbol  = "^GSPC"
	fallbackIndexSymbol = "SPY"
)

// MarketDataService assembles everything the valuation engine needs from
// the outside world: comparable company fundamentals and a benchmark
// return for marking old financing rounds to market. It never fails hard -
// unreachable tickers fall back to baked-in snapshots and a dead index
// feed just means the last-round method runs unadjusted. The returned
// data is always usable; a non-nil error means every live lookup failed
// and the result is entirely snapshot-sourced.
type MarketDataService interface {
	FetchMarketData(ctx context.Context, tickers []string, indexSinceDate string) (*domain.MarketData, error)
}

type marketDataServiceHandler struct {
	MarketDataRepository repository.MarketDataRepository
	AlpacaRepository     repository.AlpacaRepository
}

func NewMarketDataService(
	marketDataRepository repository.MarketDataRepository,
	alpacaRepository repository.AlpacaRepository,
) MarketDataService {
	return marketDataServiceHandler{
		MarketDataRepository: marketDataRepository,
		AlpacaRepository:     alpacaRepository,
	}
}

func (h marketDataServiceHandler) FetchMarketData(ctx context.Context, tickers []string, indexSinceDate string) (*domain.MarketData, error) {
	log := logger.FromContext(ctx)
	out := &domain.MarketData{}

	var fetchErr error
	if len(tickers) == 0 {
		out.Warnings = append(out.Warnings, "No comparable tickers available - using snapshot universe")
		out.Comparables = snapshotComparables(defaultSnapshotTickers)
	} else {
		liveFetches := 0
		for _, ticker := range tickers {
			symbol := strings.ToUpper(strings.TrimSpace(ticker))
			if symbol == "" {
				continue
			}
			comp, err := h.buildComparable(symbol)
			if err != nil {
				log.Warnf("live data for %s unavailable: %v", symbol, err)
				if snap, ok := comparableSnapshots[symbol]; ok {
					out.Warnings = append(out.Warnings, fmt.Sprintf("Using snapshot data for %s - live fetch failed", symbol))
					out.Comparables = append(out.Comparables, snap)
				} else {
					out.Warnings = append(out.Warnings, fmt.Sprintf("Dropped comparable %s - no live or snapshot data", symbol))
				}
				continue
			}
			liveFetches++
			out.Comparables = append(out.Comparables, *comp)
		}
		if len(out.Comparables) == 0 {
			out.Warnings = append(out.Warnings, "All comparable lookups failed - using snapshot universe")
			out.Comparables = snapshotComparables(defaultSnapshotTickers)
		}
		if liveFetches == 0 {
			fetchErr = domain.AcquisitionError{Stage: "fetch", Err: errors.New("no comparable ticker could be fetched live")}
		}
	}

	if indexSinceDate != "" {
		index, warning := h.fetchIndexReturn(ctx, indexSinceDate)
		if warning != "" {
			out.Warnings = append(out.Warnings, warning)
		}
		out.Index = index
	}

	return out, fetchErr
}

// buildComparable stitches a quote and the latest annual filing into one
// comparable. Multiples are only populated when the denominator is a real
// positive number; the scorer treats the gaps as data quality signal.
func (h marketDataServiceHandler) buildComparable(symbol string) (*domain.ComparableCompany, error) {
	snapshot, err := h.MarketDataRepository.GetEquitySnapshot(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get equity snapshot: %w", err)
	}
	financials, err := h.MarketDataRepository.GetCompanyFinancials(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get company financials: %w", err)
	}
	annual := financials.FinancialData.Annual

	comp := &domain.ComparableCompany{
		Ticker: symbol,
		Name:   snapshot.Name,
	}
	// live quotes don't carry a sector classification, so reuse the
	// snapshot table's label when we have one
	if snap, ok := comparableSnapshots[symbol]; ok {
		comp.Sector = snap.Sector
	}
	if snapshot.MarketCap > 0 {
		comp.MarketCap = util.FloatPointer(snapshot.MarketCap)
	}

	if _, revenue, ok := fundamentals.LatestAnnual(annual.Revenue); ok && revenue > 0 {
		comp.Revenue = util.FloatPointer(float64(revenue))
	}
	if _, operatingIncome, ok := fundamentals.LatestAnnual(annual.OperatingIncome); ok {
		ebitda := float64(operatingIncome)
		if _, depAmort, ok := fundamentals.LatestAnnual(annual.DepreciationAmortization); ok {
			ebitda += float64(depAmort)
		}
		if ebitda > 0 {
			comp.EBITDA = util.FloatPointer(ebitda)
		}
	}

	if snapshot.MarketCap > 0 {
		_, debt, _ := fundamentals.LatestAnnual(annual.LongTermDebt)
		_, cash, _ := fundamentals.LatestAnnual(annual.CashOnHand)
		ev := snapshot.MarketCap + float64(debt) - float64(cash)
		comp.EnterpriseValue = util.FloatPointer(ev)
		if comp.Revenue != nil {
			comp.EVToRevenue = util.FloatPointer(ev / *comp.Revenue)
		}
		if comp.EBITDA != nil {
			comp.EVToEBITDA = util.FloatPointer(ev / *comp.EBITDA)
		}
	}

	return comp, nil
}

func (h marketDataServiceHandler) fetchIndexReturn(ctx context.Context, sinceDate string) (*domain.IndexData, string) {
	log := logger.FromContext(ctx)

	since, err := time.Parse(util.DateLayout, sinceDate)
	if err != nil {
		return nil, fmt.Sprintf("Could not parse date %s for index lookup - last-round valuation will be unadjusted", sinceDate)
	}

	symbol := primaryIndexSymbol
	indexReturn, err := h.MarketDataRepository.GetIndexReturnSince(symbol, since)
	if err != nil {
		log.Warnf("primary index %s unavailable, trying %s: %v", primaryIndexSymbol, fallbackIndexSymbol, err)
		symbol = fallbackIndexSymbol
		indexReturn, err = h.AlpacaRepository.GetIndexReturnSince(symbol, since)
	}
	if err != nil {
		log.Warnf("fallback index %s unavailable: %v", fallbackIndexSymbol, err)
		return nil, "Index return unavailable - last-round valuation will be unadjusted"
	}

	return &domain.IndexData{
		Symbol:          symbol,
		ReturnSinceDate: indexReturn,
		AsOf:            time.Now().UTC(),
	}, ""
}

func snapshotComparables(tickers []string) []domain.ComparableCompany {
	out := make([]domain.ComparableCompany, 0, len(tickers))
	for _, ticker := range tickers {
		if comp, ok := comparableSnapshots[ticker]; ok {
			out = append(out, comp)
		}
	}
	return out
}

var defaultSnapshotTickers = []string{"MSFT", "CRM", "NOW", "ROK", "PYPL", "VEEV"}

// comparableSnapshots is a baked-in quote table covering the sectors we
// see most, used whenever live market data is unreachable. Figures are
// approximate FY2024 actuals in USD.
var comparableSnapshots = map[string]domain.ComparableCompany{
	"MSFT": {
		Ticker:          "MSFT",
		Name:            "Microsoft Corporation",
		Sector:          "Technology",
		Revenue:         util.FloatPointer(245_000_000_000),
		EBITDA:          util.FloatPointer(131_000_000_000),
		MarketCap:       util.FloatPointer(3_100_000_000_000),
		EnterpriseValue: util.FloatPointer(3_070_000_000_000),
		EVToRevenue:     util.FloatPointer(12.53),
		EVToEBITDA:      util.FloatPointer(23.44),
	},
	"CRM": {
		Ticker:          "CRM",
		Name:            "Salesforce, Inc.",
		Sector:          "Software",
		Revenue:         util.FloatPointer(34_900_000_000),
		EBITDA:          util.FloatPointer(9_900_000_000),
		MarketCap:       util.FloatPointer(280_000_000_000),
		EnterpriseValue: util.FloatPointer(276_000_000_000),
		EVToRevenue:     util.FloatPointer(7.91),
		EVToEBITDA:      util.FloatPointer(27.88),
	},
	"NOW": {
		Ticker:          "NOW",
		Name:            "ServiceNow, Inc.",
		Sector:          "Software",
		Revenue:         util.FloatPointer(10_900_000_000),
		EBITDA:          util.FloatPointer(1_900_000_000),
		MarketCap:       util.FloatPointer(170_000_000_000),
		EnterpriseValue: util.FloatPointer(165_000_000_000),
		EVToRevenue:     util.FloatPointer(15.14),
		EVToEBITDA:      util.FloatPointer(86.84),
	},
	"DDOG": {
		Ticker:          "DDOG",
		Name:            "Datadog, Inc.",
		Sector:          "Software",
		Revenue:         util.FloatPointer(2_680_000_000),
		EBITDA:          util.FloatPointer(460_000_000),
		MarketCap:       util.FloatPointer(42_000_000_000),
		EnterpriseValue: util.FloatPointer(40_000_000_000),
		EVToRevenue:     util.FloatPointer(14.93),
		EVToEBITDA:      util.FloatPointer(86.96),
	},
	"WDAY": {
		Ticker:          "WDAY",
		Name:            "Workday, Inc.",
		Sector:          "Software",
		Revenue:         util.FloatPointer(7_300_000_000),
		EBITDA:          util.FloatPointer(900_000_000),
		MarketCap:       util.FloatPointer(60_000_000_000),
		EnterpriseValue: util.FloatPointer(57_000_000_000),
		EVToRevenue:     util.FloatPointer(7.81),
		EVToEBITDA:      util.FloatPointer(63.33),
	},
	"ROK": {
		Ticker:          "ROK",
		Name:            "Rockwell Automation, Inc.",
		Sector:          "Industrials",
		Revenue:         util.FloatPointer(9_100_000_000),
		EBITDA:          util.FloatPointer(1_900_000_000),
		MarketCap:       util.FloatPointer(31_000_000_000),
		EnterpriseValue: util.FloatPointer(34_000_000_000),
		EVToRevenue:     util.FloatPointer(3.74),
		EVToEBITDA:      util.FloatPointer(17.89),
	},
	"EMR": {
		Ticker:          "EMR",
		Name:            "Emerson Electric Co.",
		Sector:          "Industrials",
		Revenue:         util.FloatPointer(17_500_000_000),
		EBITDA:          util.FloatPointer(4_400_000_000),
		MarketCap:       util.FloatPointer(62_000_000_000),
		EnterpriseValue: util.FloatPointer(70_000_000_000),
		EVToRevenue:     util.FloatPointer(4.00),
		EVToEBITDA:      util.FloatPointer(15.91),
	},
	"HON": {
		Ticker:          "HON",
		Name:            "Honeywell International Inc.",
		Sector:          "Industrials",
		Revenue:         util.FloatPointer(38_500_000_000),
		EBITDA:          util.FloatPointer(9_200_000_000),
		MarketCap:       util.FloatPointer(135_000_000_000),
		EnterpriseValue: util.FloatPointer(152_000_000_000),
		EVToRevenue:     util.FloatPointer(3.95),
		EVToEBITDA:      util.FloatPointer(16.52),
	},
	"PYPL": {
		Ticker:          "PYPL",
		Name:            "PayPal Holdings, Inc.",
		Sector:          "Financial Services",
		Revenue:         util.FloatPointer(31_800_000_000),
		EBITDA:          util.FloatPointer(5_900_000_000),
		MarketCap:       util.FloatPointer(72_000_000_000),
		EnterpriseValue: util.FloatPointer(69_000_000_000),
		EVToRevenue:     util.FloatPointer(2.17),
		EVToEBITDA:      util.FloatPointer(11.69),
	},
	"FI": {
		Ticker:          "FI",
		Name:            "Fiserv, Inc.",
		Sector:          "Financial Services",
		Revenue:         util.FloatPointer(20_500_000_000),
		EBITDA:          util.FloatPointer(8_800_000_000),
		MarketCap:       util.FloatPointer(115_000_000_000),
		EnterpriseValue: util.FloatPointer(138_000_000_000),
		EVToRevenue:     util.FloatPointer(6.73),
		EVToEBITDA:      util.FloatPointer(15.68),
	},
	"VEEV": {
		Ticker:          "VEEV",
		Name:            "Veeva Systems Inc.",
		Sector:          "Healthcare",
		Revenue:         util.FloatPointer(2_750_000_000),
		EBITDA:          util.FloatPointer(750_000_000),
		MarketCap:       util.FloatPointer(32_000_000_000),
		EnterpriseValue: util.FloatPointer(27_500_000_000),
		EVToRevenue:     util.FloatPointer(10.00),
		EVToEBITDA:      util.FloatPointer(36.67),
	},
	"IQV": {
		Ticker:          "IQV",
		Name:            "IQVIA Holdings Inc.",
		Sector:          "Healthcare",
		Revenue:         util.FloatPointer(15_400_000_000),
		EBITDA:          util.FloatPointer(3_600_000_000),
		MarketCap:       util.FloatPointer(36_000_000_000),
		EnterpriseValue: util.FloatPointer(48_000_000_000),
		EVToRevenue:     util.FloatPointer(3.12),
		EVToEBITDA:      util.FloatPointer(13.33),
	},
}
