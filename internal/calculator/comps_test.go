package calculator

import (
	"fairvalue/internal/domain"
	"fairvalue/internal/util"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// fullComp builds a comparable with every pricing field populated so it
// survives scoring on data quality.
func fullComp(ticker, sector string, revenue, evToRevenue float64) domain.ComparableCompany {
	return domain.ComparableCompany{
		Ticker:          ticker,
		Sector:          sector,
		Revenue:         util.FloatPointer(revenue),
		EBITDA:          util.FloatPointer(revenue * 0.3),
		MarketCap:       util.FloatPointer(revenue * evToRevenue * 0.9),
		EnterpriseValue: util.FloatPointer(revenue * evToRevenue),
		EVToRevenue:     util.FloatPointer(evToRevenue),
		EVToEBITDA:      util.FloatPointer(evToRevenue / 0.3),
	}
}

func TestCompsValuate(t *testing.T) {
	scorer := NewComparableScorer()

	t.Run("enterprise value uses median EV/Revenue of valid comps", func(t *testing.T) {
		comps := []domain.ComparableCompany{
			fullComp("AAA", "Technology", 120, 5),
			fullComp("BBB", "Technology", 90, 7),
			fullComp("CCC", "Technology", 110, 6),
		}

		result, err := scorer.Valuate(CompsValuationInput{
			Comparables:   comps,
			TargetRevenue: 100,
			TargetSector:  "Technology",
		})
		require.NoError(t, err)

		require.Equal(t, 6.0, result.MedianEVToRevenue)
		require.Equal(t, 600.0, result.EnterpriseValue)
		require.Equal(t, 3, result.ComparableCount)
		require.Equal(t, 3, len(result.Comparables))
		require.Empty(t, result.Warnings)
		require.NotNil(t, result.SelectionCriteria)
		require.Equal(t, "Technology", result.SelectionCriteria.TargetSector)
	})

	t.Run("every candidate gets exactly one score record", func(t *testing.T) {
		comps := []domain.ComparableCompany{
			fullComp("GOOD", "Technology", 110, 6),
			{
				// no EV/Revenue at all
				Ticker: "NOEV",
				Sector: "Technology",
			},
			// 50x the target's size
			fullComp("HUGE", "Technology", 5000, 6),
		}

		result, err := scorer.Valuate(CompsValuationInput{
			Comparables:   comps,
			TargetRevenue: 100,
			TargetSector:  "Technology",
		})
		require.NoError(t, err)

		require.Equal(t, len(comps), len(result.SelectionScores))
		require.LessOrEqual(t, len(result.Comparables), len(comps))

		byTicker := map[string]domain.CompSelectionScore{}
		for _, score := range result.SelectionScores {
			byTicker[score.Ticker] = score
		}

		require.True(t, byTicker["GOOD"].Included)
		require.Empty(t, byTicker["GOOD"].ExclusionReason)

		require.False(t, byTicker["NOEV"].Included)
		require.Equal(t, "Missing EV/Revenue data", byTicker["NOEV"].ExclusionReason)

		require.False(t, byTicker["HUGE"].Included)
		require.Equal(t, "Revenue outside 0.1x-10x range of target", byTicker["HUGE"].ExclusionReason)
	})

	t.Run("composite threshold excludes weak matches", func(t *testing.T) {
		weak := domain.ComparableCompany{
			Ticker:      "WEAK",
			Sector:      "Energy",
			Revenue:     util.FloatPointer(900),
			EVToRevenue: util.FloatPointer(4),
		}

		result, err := scorer.Valuate(CompsValuationInput{
			Comparables:   []domain.ComparableCompany{weak},
			TargetRevenue: 100,
			TargetSector:  "Technology",
		})
		require.NoError(t, err)

		require.Equal(t, 1, len(result.SelectionScores))
		score := result.SelectionScores[0]
		require.False(t, score.Included)
		require.Contains(t, score.ExclusionReason, "below")
		require.Contains(t, score.ExclusionReason, "threshold")
	})

	t.Run("no sector skips scoring and keeps everything", func(t *testing.T) {
		comps := []domain.ComparableCompany{
			{
				Ticker:      "AAA",
				EVToRevenue: util.FloatPointer(5),
				EVToEBITDA:  util.FloatPointer(10),
			},
			{
				Ticker:      "BBB",
				EVToRevenue: util.FloatPointer(7),
				EVToEBITDA:  util.FloatPointer(12),
			},
			{
				// no EV/Revenue - still in the filtered set on the lenient
				// path, so its EV/EBITDA counts
				Ticker:     "CCC",
				EVToEBITDA: util.FloatPointer(11),
			},
		}

		result, err := scorer.Valuate(CompsValuationInput{
			Comparables:   comps,
			TargetRevenue: 100,
		})
		require.NoError(t, err)

		require.Nil(t, result.SelectionCriteria)
		require.Empty(t, result.SelectionScores)
		require.Equal(t, 3, len(result.Comparables))

		// valid set is AAA and BBB only
		require.Equal(t, 2, result.ComparableCount)
		require.Equal(t, 6.0, result.MedianEVToRevenue)
		require.Equal(t, 600.0, result.EnterpriseValue)

		// EV/EBITDA median runs over all three
		require.NotNil(t, result.MedianEVToEBITDA)
		require.Equal(t, 11.0, *result.MedianEVToEBITDA)
	})

	t.Run("single valid comparable warns", func(t *testing.T) {
		result, err := scorer.Valuate(CompsValuationInput{
			Comparables:   []domain.ComparableCompany{fullComp("ONLY", "Technology", 100, 8)},
			TargetRevenue: 100,
			TargetSector:  "Technology",
		})
		require.NoError(t, err)

		require.Equal(t, 800.0, result.EnterpriseValue)
		require.Equal(t, 1, result.ComparableCount)
		require.Contains(t, result.Warnings, "Only 1 valid comparable(s) with EV/Revenue data")
	})

	t.Run("empty valid set returns zero value with warning", func(t *testing.T) {
		result, err := scorer.Valuate(CompsValuationInput{
			Comparables:   []domain.ComparableCompany{{Ticker: "NOEV", Sector: "Technology"}},
			TargetRevenue: 100,
			TargetSector:  "Technology",
		})
		require.NoError(t, err)

		require.Equal(t, 0.0, result.EnterpriseValue)
		require.Equal(t, 0, result.ComparableCount)
		require.Contains(t, result.Warnings, "No valid comparables available")
	})

	t.Run("unknown target revenue scores size neutral", func(t *testing.T) {
		result, err := scorer.Valuate(CompsValuationInput{
			Comparables:   []domain.ComparableCompany{fullComp("AAA", "Technology", 500, 6)},
			TargetRevenue: 0,
			TargetSector:  "Technology",
		})
		require.NoError(t, err)

		require.Equal(t, 1, len(result.SelectionScores))
		score := result.SelectionScores[0]
		require.Equal(t, 0.5, score.SizeScore)
		require.True(t, score.Included)
		// zero revenue times any multiple
		require.Equal(t, 0.0, result.EnterpriseValue)
	})

	t.Run("score records round to two decimals", func(t *testing.T) {
		comp := fullComp("AAA", "Technology", 120, 6)
		_, scores := scorer.Score([]domain.ComparableCompany{comp}, 100, "Technology")

		expected := []domain.CompSelectionScore{
			{
				Ticker:           "AAA",
				SectorScore:      1.0,
				SizeScore:        0.92,
				DataQualityScore: 1.0,
				CompositeScore:   0.97,
				Included:         true,
			},
		}
		require.Empty(t, cmp.Diff(expected, scores))
	})
}

func TestSectorScore(t *testing.T) {
	t.Run("exact match is case-insensitive", func(t *testing.T) {
		require.Equal(t, 1.0, sectorScore("technology", "Technology"))
	})

	t.Run("same group scores half", func(t *testing.T) {
		require.Equal(t, 0.5, sectorScore("Software", "SaaS"))
		require.Equal(t, 0.5, sectorScore("Healthcare", "Biotechnology"))
	})

	t.Run("missing side scores half", func(t *testing.T) {
		require.Equal(t, 0.5, sectorScore("", "Technology"))
		require.Equal(t, 0.5, sectorScore("Technology", ""))
	})

	t.Run("unrelated sectors score zero", func(t *testing.T) {
		require.Equal(t, 0.0, sectorScore("Technology", "Energy"))
	})
}

func TestSizeProximityScore(t *testing.T) {
	t.Run("exact size match peaks at one", func(t *testing.T) {
		require.Equal(t, 1.0, sizeProximityScore(100, util.FloatPointer(100)))
	})

	t.Run("zero outside the 0.1x-10x band", func(t *testing.T) {
		require.Equal(t, 0.0, sizeProximityScore(100, util.FloatPointer(1001)))
		require.Equal(t, 0.0, sizeProximityScore(100, util.FloatPointer(9)))
	})

	t.Run("decays with log distance", func(t *testing.T) {
		closer := sizeProximityScore(100, util.FloatPointer(200))
		farther := sizeProximityScore(100, util.FloatPointer(400))
		require.Greater(t, closer, farther)

		// symmetric in either direction
		over := sizeProximityScore(100, util.FloatPointer(200))
		under := sizeProximityScore(100, util.FloatPointer(50))
		require.InDelta(t, over, under, 1e-9)
	})

	t.Run("missing or non-positive revenue scores zero", func(t *testing.T) {
		require.Equal(t, 0.0, sizeProximityScore(100, nil))
		require.Equal(t, 0.0, sizeProximityScore(100, util.FloatPointer(0)))
		require.Equal(t, 0.0, sizeProximityScore(0, util.FloatPointer(100)))
	})
}
