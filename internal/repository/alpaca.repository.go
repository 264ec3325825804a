package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

// AlpacaRepository is the backup market-data source. Yahoo serves the
// primary quote and index paths; alpaca only gets hit when those fail.
type AlpacaRepository interface {
	GetLatestQuotes(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
	GetIndexReturnSince(symbol string, since time.Time) (float64, error)
}

func NewAlpacaRepository(apiKey, apiSecret string, endpoint string) AlpacaRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return &alpacaRepositoryHandler{
		MdClient: mdClient,
	}
}

type alpacaRepositoryHandler struct {
	MdClient *marketdata.Client
}

func (h alpacaRepositoryHandler) GetLatestQuotes(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	if len(symbols) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	results, err := h.MdClient.GetLatestQuotes(symbols, marketdata.GetLatestQuoteRequest{})
	if err != nil {
		return nil, err
	}
	out := map[string]decimal.Decimal{}
	for symbol, result := range results {
		out[symbol] = decimal.NewFromFloat(result.BidPrice)
		if out[symbol].IsZero() {
			return nil, fmt.Errorf("failed to get price for %s: got 0 price", symbol)
		}
	}

	return out, nil
}

func (h alpacaRepositoryHandler) GetIndexReturnSince(symbol string, since time.Time) (float64, error) {
	bars, err := h.MdClient.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneDay,
		Adjustment: marketdata.All,
		Start:      since,
		End:        time.Now(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get bars for %s: %w", symbol, err)
	}
	if len(bars) < 2 {
		return 0, fmt.Errorf("not enough bars for %s since %s", symbol, since.Format("2006-01-02"))
	}

	first := decimal.NewFromFloat(bars[0].Close)
	last := decimal.NewFromFloat(bars[len(bars)-1].Close)
	if first.IsZero() {
		return 0, fmt.Errorf("got 0 starting price for %s", symbol)
	}

	return last.Div(first).Sub(decimal.NewFromInt(1)).InexactFloat64(), nil
}
