package calculator

import (
	"fairvalue/internal/domain"
	"fairvalue/internal/util"
	"fmt"
	"time"
)

// LastRoundAdjuster marks a prior financing valuation to market by
// applying the benchmark index's return since the round closed, and flags
// rounds old enough that the price signal has decayed.
type LastRoundAdjuster struct {
	StaleAfterMonths int
}

func NewLastRoundAdjuster() LastRoundAdjuster {
	return LastRoundAdjuster{StaleAfterMonths: 18}
}

type LastRoundInput struct {
	Valuation float64
	RoundDate string
	Index     *domain.IndexData
	// IsEstimated marks a round valuation that came from enrichment
	// rather than the caller
	IsEstimated bool
}

func (a LastRoundAdjuster) Valuate(in LastRoundInput) *domain.LastRoundResult {
	result := &domain.LastRoundResult{
		RoundValuation:  in.Valuation,
		RoundDate:       in.RoundDate,
		IndexAdjustment: 1.0,
		IsEstimated:     in.IsEstimated,
	}

	roundDate, err := time.Parse(util.DateLayout, in.RoundDate)
	if err != nil {
		// unknown elapsed time is survivable, the round just never goes stale
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not parse round date: %s", in.RoundDate))
	} else {
		days := int(time.Since(roundDate).Hours() / 24)
		months := days / 30
		result.MonthsSinceRound = &months
		if months > a.StaleAfterMonths {
			result.IsStale = true
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"Last round was %d months ago - valuation may be stale", months))
		}
	}

	if in.Index != nil {
		result.IndexAdjustment = 1 + in.Index.ReturnSinceDate
	} else {
		result.Warnings = append(result.Warnings, "No index data available - using unadjusted last-round valuation")
	}

	// the adjustment can pull the valuation below the round price when the
	// index declined
	result.EnterpriseValue = in.Valuation * result.IndexAdjustment

	return result
}
