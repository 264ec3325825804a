package calculator

import (
	"testing"

	"fairvalue/internal/domain"
	"fairvalue/internal/util"

	"github.com/stretchr/testify/require"
)

func TestBlend(t *testing.T) {
	blender := NewValuationBlender()

	t.Run("single method takes the full weight", func(t *testing.T) {
		result := blender.Blend(BlendInput{
			Comps: &domain.CompsResult{
				EnterpriseValue: 100,
				ComparableCount: 4,
			},
		})

		require.InDelta(t, 100, result.FairValue, 1e-9)
		require.Len(t, result.Weights, 1)
		require.Equal(t, domain.MethodComps, result.Weights[0].Method)
		require.InDelta(t, 1.0, result.Weights[0].Weight, 1e-9)
		require.Contains(t, result.Weights[0].Rationale, "comparable_count (4)")
		require.Contains(t, result.Weights[0].Rationale, ">= 3")
	})

	t.Run("methods with zero enterprise value do not contribute", func(t *testing.T) {
		result := blender.Blend(BlendInput{
			Comps: &domain.CompsResult{EnterpriseValue: 0, ComparableCount: 3},
			DCF: &domain.DCFResult{
				EnterpriseValue: 100,
				ProjectionYears: 5,
			},
		})

		require.InDelta(t, 100, result.FairValue, 1e-9)
		require.Len(t, result.Weights, 1)
		require.Equal(t, domain.MethodDCF, result.Weights[0].Method)
	})

	t.Run("custom weights override heuristics", func(t *testing.T) {
		result := blender.Blend(BlendInput{
			Comps: &domain.CompsResult{EnterpriseValue: 100, ComparableCount: 2},
			DCF:   &domain.DCFResult{EnterpriseValue: 200, ProjectionYears: 5},
			CustomWeights: map[string]float64{
				domain.MethodComps: 0.6,
				domain.MethodDCF:   0.4,
			},
		})

		require.InDelta(t, 140, result.FairValue, 1e-9)
		require.Len(t, result.Weights, 2)
		byMethod := map[string]domain.MethodologyWeight{}
		for _, w := range result.Weights {
			byMethod[w.Method] = w
		}
		require.InDelta(t, 0.6, byMethod[domain.MethodComps].Weight, 1e-9)
		require.InDelta(t, 0.4, byMethod[domain.MethodDCF].Weight, 1e-9)
		require.Equal(t, "Custom weight 0.60", byMethod[domain.MethodComps].Rationale)
		require.Equal(t, "Custom weight 0.40", byMethod[domain.MethodDCF].Rationale)
	})

	t.Run("custom weight for an absent method is dropped", func(t *testing.T) {
		result := blender.Blend(BlendInput{
			Comps: &domain.CompsResult{EnterpriseValue: 100, ComparableCount: 3},
			CustomWeights: map[string]float64{
				domain.MethodComps: 0.5,
				domain.MethodDCF:   0.5,
			},
		})

		require.Len(t, result.Weights, 1)
		require.InDelta(t, 1.0, result.Weights[0].Weight, 1e-9)
		require.InDelta(t, 100, result.FairValue, 1e-9)
	})

	t.Run("custom weights that are all non-positive blend nothing", func(t *testing.T) {
		result := blender.Blend(BlendInput{
			Comps: &domain.CompsResult{EnterpriseValue: 100, ComparableCount: 3},
			CustomWeights: map[string]float64{
				domain.MethodComps: 0,
			},
		})

		require.Zero(t, result.FairValue)
		require.Empty(t, result.Weights)
	})

	t.Run("stale round carries less weight than a fresh one", func(t *testing.T) {
		stale := blender.Blend(BlendInput{
			Comps: &domain.CompsResult{EnterpriseValue: 100, ComparableCount: 3},
			LastRound: &domain.LastRoundResult{
				EnterpriseValue:  100,
				IsStale:          true,
				MonthsSinceRound: util.IntPointer(24),
			},
		})
		fresh := blender.Blend(BlendInput{
			Comps: &domain.CompsResult{EnterpriseValue: 100, ComparableCount: 3},
			LastRound: &domain.LastRoundResult{
				EnterpriseValue:  100,
				MonthsSinceRound: util.IntPointer(6),
			},
		})

		staleWeight := lastWeightFor(t, stale, domain.MethodLastRound)
		freshWeight := lastWeightFor(t, fresh, domain.MethodLastRound)
		require.Less(t, staleWeight.Weight, freshWeight.Weight)
		require.Contains(t, staleWeight.Rationale, "staleness threshold")
		require.Contains(t, freshWeight.Rationale, "6mo ago")
		require.Contains(t, freshWeight.Rationale, "freshness window")
	})

	t.Run("estimated round takes precedence over staleness", func(t *testing.T) {
		result := blender.Blend(BlendInput{
			LastRound: &domain.LastRoundResult{
				EnterpriseValue:  50,
				IsEstimated:      true,
				IsStale:          true,
				MonthsSinceRound: util.IntPointer(24),
			},
		})

		require.Len(t, result.Weights, 1)
		require.Contains(t, result.Weights[0].Rationale, "model-estimated")
		require.NotContains(t, result.Weights[0].Rationale, "staleness")
	})

	t.Run("estimated DCF inputs reduce its weight", func(t *testing.T) {
		result := blender.Blend(BlendInput{
			Comps: &domain.CompsResult{EnterpriseValue: 100, ComparableCount: 3},
			DCF: &domain.DCFResult{
				EnterpriseValue: 100,
				ProjectionYears: 3,
				IsEstimated:     true,
			},
		})

		dcfWeight := lastWeightFor(t, result, domain.MethodDCF)
		require.Contains(t, dcfWeight.Rationale, "3-year")
		require.Contains(t, dcfWeight.Rationale, "model-estimated")
		// 0.15 vs comps 0.40 before normalizing
		require.InDelta(t, 0.15/0.55, dcfWeight.Weight, 1e-9)
	})

	t.Run("range tightens with five or more comparables", func(t *testing.T) {
		wide := blender.Blend(BlendInput{
			Comps: &domain.CompsResult{EnterpriseValue: 100, ComparableCount: 2},
		})
		tight := blender.Blend(BlendInput{
			Comps: &domain.CompsResult{EnterpriseValue: 100, ComparableCount: 6},
		})

		require.InDelta(t, 80, wide.RangeLow, 1e-9)
		require.InDelta(t, 120, wide.RangeHigh, 1e-9)
		require.InDelta(t, 85, tight.RangeLow, 1e-9)
		require.InDelta(t, 115, tight.RangeHigh, 1e-9)
	})

	t.Run("no contributing methods yields a zero result", func(t *testing.T) {
		result := blender.Blend(BlendInput{})

		require.Zero(t, result.FairValue)
		require.Zero(t, result.RangeLow)
		require.Zero(t, result.RangeHigh)
		require.Empty(t, result.Weights)
	})

	t.Run("three method weights normalize to one", func(t *testing.T) {
		result := blender.Blend(BlendInput{
			Comps: &domain.CompsResult{EnterpriseValue: 100, ComparableCount: 4},
			DCF:   &domain.DCFResult{EnterpriseValue: 200, ProjectionYears: 5},
			LastRound: &domain.LastRoundResult{
				EnterpriseValue:  150,
				MonthsSinceRound: util.IntPointer(6),
			},
		})

		require.Len(t, result.Weights, 3)
		total := 0.0
		for _, w := range result.Weights {
			total += w.Weight
		}
		require.InDelta(t, 1.0, total, 1e-9)
		// 0.40 + 0.35 + 0.25 already sum to one, so no normalization drift
		require.InDelta(t, 0.4*100+0.35*200+0.25*150, result.FairValue, 1e-9)
	})
}

func lastWeightFor(t *testing.T, blended *domain.BlendedValuation, method string) domain.MethodologyWeight {
	t.Helper()
	for _, w := range blended.Weights {
		if w.Method == method {
			return w
		}
	}
	t.Fatalf("no weight entry for method %s", method)
	return domain.MethodologyWeight{}
}
