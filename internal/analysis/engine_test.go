package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxidash/domain/core"
	"taxidash/domain/hypothesis"
	"taxidash/domain/trips"
)

// 2017-11-04 was a Saturday; the weekday after it was not.
var (
	saturday = time.Date(2017, 11, 4, 12, 0, 0, 0, time.UTC)
	sunday   = time.Date(2017, 11, 5, 12, 0, 0, 0, time.UTC)
)

func saturdayTrip(weather string, duration float64) trips.TripRecord {
	return trips.TripRecord{StartTS: saturday, WeatherConditions: weather, DurationSeconds: duration}
}

func scenarioATrips() []trips.TripRecord {
	var records []trips.TripRecord
	for _, d := range []float64{1200, 1300, 1250, 1400, 1100, 1350} {
		records = append(records, saturdayTrip("Bad rain", d))
	}
	for _, d := range []float64{600, 650, 620, 700} {
		records = append(records, saturdayTrip("Good", d))
	}
	return records
}

func TestEvaluate_ScenarioA_ClearMeanSeparation(t *testing.T) {
	engine := NewEngine()

	decision, err := engine.Evaluate(scenarioATrips())
	require.NoError(t, err)

	assert.True(t, decision.RejectNull, "large mean gap should reject the null")
	assert.Less(t, decision.PValue, 0.001)
	assert.Greater(t, decision.TStatistic, 0.0, "rainy mean is higher, so t should be positive")

	// With these samples the Brown-Forsythe p stays above 0.05, so the
	// pooled formulation is selected.
	assert.True(t, decision.EqualVarianceAssumed)
	assert.Equal(t, hypothesis.EqualVariance, decision.Assumption())

	assert.Equal(t, 6, decision.RainyN)
	assert.Equal(t, 4, decision.NonRainyN)
	assert.False(t, decision.Indeterminate)
}

func TestEvaluate_ScenarioB_InsufficientData(t *testing.T) {
	records := []trips.TripRecord{
		saturdayTrip("Bad storm", 1200),
	}
	for _, d := range []float64{600, 650, 620, 700, 640} {
		records = append(records, saturdayTrip("Good", d))
	}

	engine := NewEngine()
	decision, err := engine.Evaluate(records)

	require.Error(t, err)
	assert.True(t, core.IsInsufficientDataError(err))
	assert.Zero(t, decision, "no statistics may be computed on a hard stop")
}

func TestEvaluate_EmptyGroups(t *testing.T) {
	t.Run("no records at all", func(t *testing.T) {
		_, err := NewEngine().Evaluate(nil)
		assert.True(t, core.IsInsufficientDataError(err))
	})

	t.Run("no rainy saturdays", func(t *testing.T) {
		records := []trips.TripRecord{
			saturdayTrip("Good", 600),
			saturdayTrip("Good", 700),
			saturdayTrip("Good", 650),
		}
		_, err := NewEngine().Evaluate(records)
		assert.True(t, core.IsInsufficientDataError(err))
	})

	t.Run("only non-saturday records", func(t *testing.T) {
		records := []trips.TripRecord{
			{StartTS: sunday, WeatherConditions: "Bad rain", DurationSeconds: 1200},
			{StartTS: sunday, WeatherConditions: "Bad rain", DurationSeconds: 1300},
			{StartTS: sunday, WeatherConditions: "Good", DurationSeconds: 600},
			{StartTS: sunday, WeatherConditions: "Good", DurationSeconds: 700},
		}
		_, err := NewEngine().Evaluate(records)
		assert.True(t, core.IsInsufficientDataError(err))
	})
}

func TestEvaluate_Deterministic(t *testing.T) {
	engine := NewEngine()

	first, err := engine.Evaluate(scenarioATrips())
	require.NoError(t, err)
	second, err := engine.Evaluate(scenarioATrips())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluate_ThresholdConsistency(t *testing.T) {
	engine := NewEngine()

	decision, err := engine.Evaluate(scenarioATrips())
	require.NoError(t, err)

	assert.Equal(t, decision.LevenePValue >= hypothesis.Alpha, decision.EqualVarianceAssumed)
	assert.Equal(t, decision.PValue < hypothesis.Alpha, decision.RejectNull)
}

func TestEvaluate_ZeroVarianceIsIndeterminate(t *testing.T) {
	records := []trips.TripRecord{
		saturdayTrip("Bad rain", 1000),
		saturdayTrip("Bad rain", 1000),
		saturdayTrip("Bad rain", 1000),
		saturdayTrip("Good", 500),
		saturdayTrip("Good", 500),
		saturdayTrip("Good", 500),
	}

	decision, err := NewEngine().Evaluate(records)
	require.NoError(t, err)

	assert.True(t, decision.Indeterminate)
	assert.False(t, decision.RejectNull, "an indeterminate result must not claim a verdict")
	assert.Contains(t, decision.Verdict(), "indeterminate")
}

func TestPartitionSaturdays(t *testing.T) {
	records := []trips.TripRecord{
		saturdayTrip("Bad rain", 1200),
		saturdayTrip("BAD STORM", 1300),
		saturdayTrip("Good", 600),
		saturdayTrip("", 650), // missing label counts as non-rainy
		{StartTS: sunday, WeatherConditions: "Bad rain", DurationSeconds: 9999},
	}

	rainy, nonRainy := PartitionSaturdays(records)

	// Exact partition of the Saturday subset: disjoint, union covers it.
	assert.Len(t, rainy, 2)
	assert.Len(t, nonRainy, 2)
	assert.Equal(t, []float64{1200, 1300}, rainy)
	assert.Equal(t, []float64{600, 650}, nonRainy)
}
