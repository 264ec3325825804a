package repository

import (
	"fairvalue/pkg/fundamentals"
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/shopspring/decimal"
)

// EquitySnapshot is the slice of a quote the comps builder needs.
type EquitySnapshot struct {
	Symbol    string
	Name      string
	MarketCap float64
}

type MarketDataRepository interface {
	GetEquitySnapshot(symbol string) (*EquitySnapshot, error)
	GetCompanyFinancials(symbol string) (*fundamentals.FinancialResponse, error)
	GetIndexReturnSince(symbol string, since time.Time) (float64, error)
}

type marketDataRepositoryHandler struct {
	FundamentalsClient fundamentals.Client
}

func NewMarketDataRepository(client fundamentals.Client) MarketDataRepository {
	return marketDataRepositoryHandler{
		FundamentalsClient: client,
	}
}

func (h marketDataRepositoryHandler) GetEquitySnapshot(symbol string) (*EquitySnapshot, error) {
	eq, err := equity.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get equity quote for %s: %w", symbol, err)
	}
	if eq == nil {
		return nil, fmt.Errorf("no equity data returned for %s", symbol)
	}

	return &EquitySnapshot{
		Symbol:    symbol,
		Name:      eq.LongName,
		MarketCap: float64(eq.MarketCap),
	}, nil
}

func (h marketDataRepositoryHandler) GetCompanyFinancials(symbol string) (*fundamentals.FinancialResponse, error) {
	return h.FundamentalsClient.GetCompanyFinancials(symbol)
}

// GetIndexReturnSince computes the benchmark's total return between the
// first and last close in the window.
func (h marketDataRepositoryHandler) GetIndexReturnSince(symbol string, since time.Time) (float64, error) {
	now := time.Now()
	params := &chart.Params{
		Start:    datetime.New(&since),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	var (
		first    decimal.Decimal
		last     decimal.Decimal
		barCount int
	)
	for iter.Next() {
		if barCount == 0 {
			first = iter.Bar().AdjClose
		}
		last = iter.Bar().AdjClose
		barCount++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("failed to get index prices for %s: %w", symbol, err)
	}
	if barCount < 2 || first.IsZero() {
		return 0, fmt.Errorf("not enough index bars for %s since %s", symbol, since.Format("2006-01-02"))
	}

	return last.Div(first).Sub(decimal.NewFromInt(1)).InexactFloat64(), nil
}
