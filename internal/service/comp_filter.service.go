package service

import (
	"context"
	"fairvalue/internal/domain"
	"fairvalue/internal/logger"
	"fmt"
	"strings"

	"github.com/maja42/goval"
)

// CompFilterService applies a caller-supplied boolean expression to each
// comparable before scoring, e.g. `evToRevenue < 15 && sector == "Software"`.
// A broken expression never sinks the run - the filter is skipped with a
// warning and the full set flows through.
type CompFilterService interface {
	Apply(ctx context.Context, expression string, comps []domain.ComparableCompany) ([]domain.ComparableCompany, []string)
}

type compFilterServiceHandler struct{}

func NewCompFilterService() CompFilterService {
	return compFilterServiceHandler{}
}

func (h compFilterServiceHandler) Apply(ctx context.Context, expression string, comps []domain.ComparableCompany) ([]domain.ComparableCompany, []string) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return comps, nil
	}
	log := logger.FromContext(ctx)
	eval := goval.NewEvaluator()

	kept := make([]domain.ComparableCompany, 0, len(comps))
	for _, comp := range comps {
		result, err := eval.Evaluate(expression, filterVariables(comp), nil)
		if err != nil {
			log.Warnf("comp filter failed on %s: %v", comp.Ticker, err)
			return comps, []string{fmt.Sprintf("Comp filter %q could not be evaluated - filter not applied", expression)}
		}
		keep, ok := result.(bool)
		if !ok {
			return comps, []string{fmt.Sprintf("Comp filter %q did not evaluate to true/false - filter not applied", expression)}
		}
		if keep {
			kept = append(kept, comp)
		}
	}

	if len(kept) == 0 {
		return kept, []string{fmt.Sprintf("Comp filter %q excluded every comparable", expression)}
	}
	return kept, nil
}

// filterVariables exposes one comparable to the expression. Missing
// metrics evaluate as zero so expressions don't have to null-check.
func filterVariables(comp domain.ComparableCompany) map[string]interface{} {
	return map[string]interface{}{
		"ticker":          comp.Ticker,
		"name":            comp.Name,
		"sector":          comp.Sector,
		"revenue":         floatOrZero(comp.Revenue),
		"ebitda":          floatOrZero(comp.EBITDA),
		"marketCap":       floatOrZero(comp.MarketCap),
		"enterpriseValue": floatOrZero(comp.EnterpriseValue),
		"evToRevenue":     floatOrZero(comp.EVToRevenue),
		"evToEbitda":      floatOrZero(comp.EVToEBITDA),
	}
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
