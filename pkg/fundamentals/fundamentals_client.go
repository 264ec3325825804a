package fundamentals

import (
	"encoding/json"
	"fairvalue/internal/logger"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	HttpClient *http.Client
	ApiKey     string
}

// Fields holds statement line items keyed by fiscal period, e.g. "2023".
type Fields struct {
	Revenue                  map[string]int64 `json:"revenue"`
	GrossProfit              map[string]int64 `json:"gross_profit"`
	OperatingIncome          map[string]int64 `json:"operating_income"`
	NetIncome                map[string]int64 `json:"net_income"`
	IncomeTax                map[string]int64 `json:"income_tax"`
	DepreciationAmortization map[string]int64 `json:"depreciation_amortization"`
	OperatingCashFlow        map[string]int64 `json:"operating_cash_flow"`
	CashOnHand               map[string]int64 `json:"cash_on_hand"`
	LongTermDebt             map[string]int64 `json:"long_term_debt"`
	TotalLiabilities         map[string]int64 `json:"total_liabilities"`
	SharesOutstandingDiluted map[string]int64 `json:"shares_outstanding_diluted"`
	SharesOutstandingBasic   map[string]int64 `json:"shares_outstanding_basic"`
}

type FinancialResponse struct {
	Currency    string `json:"currency"`
	CompanyInfo struct {
		CIK    string `json:"cik"`
		Ticker string `json:"ticker"`
		Name   string `json:"name"`
	} `json:"company_info"`
	FinancialData struct {
		Quarterly Fields `json:"quarterly"`
		Annual    Fields `json:"annual"`
	} `json:"financial_data"`
}

func (c Client) GetCompanyFinancials(symbol string) (*FinancialResponse, error) {
	url := fmt.Sprintf("https://api.datajockey.io/v0/company/financials?apikey=%s&ticker=%s&period=A", c.ApiKey, symbol)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}

	var responseJson FinancialResponse
	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode == 429 {
		logger.Debug("hit rate limit. sleeping...")
		time.Sleep(60 * time.Second)
		return c.GetCompanyFinancials(symbol)
	} else if response.StatusCode != 200 {
		type errResponse struct {
			Error string `json:"error"`
		}
		errJson := errResponse{}
		err = json.Unmarshal(responseBytes, &errJson)
		if err != nil {
			return nil, fmt.Errorf("received status code %d and failed to read error: %w", response.StatusCode, err)
		}
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, errJson.Error)
	}

	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, err
	}

	return &responseJson, nil
}

// LatestAnnual returns the most recent period's value. Period keys are
// fiscal years, so lexicographic order matches chronological order.
func LatestAnnual(values map[string]int64) (string, int64, bool) {
	bestPeriod := ""
	var bestValue int64
	for period, value := range values {
		if period > bestPeriod {
			bestPeriod = period
			bestValue = value
		}
	}
	if bestPeriod == "" {
		return "", 0, false
	}
	return bestPeriod, bestValue, true
}
