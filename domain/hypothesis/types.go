package hypothesis

import (
	"fmt"
	"math"
)

// Alpha is the significance level used for both the variance decision and
// the null-hypothesis decision. The two comparisons are independent uses of
// the same constant, not a linked parameter.
const Alpha = 0.05

// VarianceAssumption selects the formulation of the two-sample mean test.
// It is decided once, from the Levene p-value, and threaded explicitly into
// the mean-test call.
type VarianceAssumption string

const (
	EqualVariance   VarianceAssumption = "equal_variance"
	UnequalVariance VarianceAssumption = "unequal_variance"
)

// TestDecision is the output bundle of one hypothesis-test evaluation.
// INVARIANTS:
// - EqualVarianceAssumed is true iff LevenePValue >= Alpha
// - RejectNull is true iff PValue < Alpha
// - Indeterminate is set when a statistic came back NaN (e.g. zero variance
//   in both groups); LevenePValue/PValue are not meaningful in that case.
type TestDecision struct {
	LeveneStatistic      float64 `json:"levene_statistic"`
	LevenePValue         float64 `json:"levene_p_value"`
	EqualVarianceAssumed bool    `json:"equal_variance_assumed"`
	TStatistic           float64 `json:"t_statistic"`
	PValue               float64 `json:"p_value"`
	RejectNull           bool    `json:"reject_null"`
	Indeterminate        bool    `json:"indeterminate,omitempty"`

	RainyN    int `json:"rainy_n"`
	NonRainyN int `json:"non_rainy_n"`
}

// Assumption returns the selected mean-test formulation.
func (d TestDecision) Assumption() VarianceAssumption {
	if d.EqualVarianceAssumed {
		return EqualVariance
	}
	return UnequalVariance
}

// HasNaN reports whether any statistic in the bundle is NaN.
func (d TestDecision) HasNaN() bool {
	return math.IsNaN(d.LeveneStatistic) || math.IsNaN(d.LevenePValue) ||
		math.IsNaN(d.TStatistic) || math.IsNaN(d.PValue)
}

// Verdict renders the human-readable sentence for the decision summary.
func (d TestDecision) Verdict() string {
	if d.Indeterminate {
		return "The test result is indeterminate: a group has zero variance, so no verdict can be drawn."
	}

	form := "Student's pooled-variance t-test"
	if !d.EqualVarianceAssumed {
		form = "Welch's unequal-variance t-test"
	}

	if d.RejectNull {
		return fmt.Sprintf(
			"We reject the null hypothesis (%s, p=%.4g < %.2f): average trip duration differs between rainy and non-rainy Saturdays.",
			form, d.PValue, Alpha)
	}
	return fmt.Sprintf(
		"We fail to reject the null hypothesis (%s, p=%.4g >= %.2f): no statistically significant difference in average trip duration between rainy and non-rainy Saturdays.",
		form, d.PValue, Alpha)
}
