package repository

import (
	"database/sql"
	"fmt"
)

type UsageStats struct {
	UniqueClients   int `json:"uniqueClients"`
	ValuationsRun   int `json:"valuations"`
	CompaniesValued int `json:"companies"`
}

func GetUsageStats(tx *sql.DB) (*UsageStats, error) {
	query := `select
	(select count(distinct ip_address) from api_request) as "distinct_clients",
	(select count(*) from valuation_report) as "num_valuations_run",
	(select count(distinct company_name) from valuation_report) as "distinct_companies";`

	row := tx.QueryRow(query)

	out := UsageStats{}

	err := row.Scan(&out.UniqueClients, &out.ValuationsRun, &out.CompaniesValued)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage stats: %w", err)
	}

	return &out, nil
}
