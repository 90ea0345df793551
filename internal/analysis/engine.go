package analysis

import (
	"math"

	"github.com/montanaflynn/stats"

	"taxidash/domain/core"
	"taxidash/domain/hypothesis"
	"taxidash/domain/trips"
	istats "taxidash/internal/stats"
)

// Engine runs the two-group trip-duration hypothesis test: partition the
// input into rainy and non-rainy Saturdays, test variance equality with the
// Brown-Forsythe form of Levene's test, then compare means with the pooled
// (Student) or Welch t-test depending on the variance decision.
type Engine struct {
	dist *istats.Distributions
}

// NewEngine creates a new hypothesis-test engine
func NewEngine() *Engine {
	return &Engine{dist: istats.NewDistributions()}
}

// Evaluate is a pure function of the input sequence. It returns
// core.ErrInsufficientData when either weather group has fewer than two
// Saturday observations; in that case neither statistical test runs.
func (e *Engine) Evaluate(records []trips.TripRecord) (hypothesis.TestDecision, error) {
	rainy, nonRainy := PartitionSaturdays(records)

	if len(rainy) < 2 {
		return hypothesis.TestDecision{}, core.NewInsufficientDataError(string(trips.GroupRainy), len(rainy))
	}
	if len(nonRainy) < 2 {
		return hypothesis.TestDecision{}, core.NewInsufficientDataError(string(trips.GroupNonRainy), len(nonRainy))
	}

	leveneStat, leveneP := e.leveneTest(rainy, nonRainy)
	equalVar := leveneP >= hypothesis.Alpha

	assumption := hypothesis.UnequalVariance
	if equalVar {
		assumption = hypothesis.EqualVariance
	}

	tStat, pValue := e.tTest(rainy, nonRainy, assumption)

	decision := hypothesis.TestDecision{
		LeveneStatistic:      leveneStat,
		LevenePValue:         leveneP,
		EqualVarianceAssumed: equalVar,
		TStatistic:           tStat,
		PValue:               pValue,
		RejectNull:           pValue < hypothesis.Alpha,
		RainyN:               len(rainy),
		NonRainyN:            len(nonRainy),
	}

	// Zero-variance groups surface as NaN statistics; report a distinct
	// indeterminate state instead of a verdict.
	if decision.HasNaN() {
		decision.Indeterminate = true
		decision.RejectNull = false
	}

	return decision, nil
}

// PartitionSaturdays derives the Saturday day-partition and splits it into
// the two weather groups. The groups are disjoint and together cover every
// Saturday record.
func PartitionSaturdays(records []trips.TripRecord) (rainy, nonRainy []float64) {
	for _, r := range records {
		if !r.IsSaturday() {
			continue
		}
		if r.Group() == trips.GroupRainy {
			rainy = append(rainy, r.DurationSeconds)
		} else {
			nonRainy = append(nonRainy, r.DurationSeconds)
		}
	}
	return rainy, nonRainy
}

// leveneTest runs the Brown-Forsythe variant of Levene's test (absolute
// deviations from the group median) for k=2 groups. The statistic follows
// F(k-1, N-k) under the null of equal variances.
func (e *Engine) leveneTest(group1, group2 []float64) (statistic, pValue float64) {
	z1 := absDeviationsFromMedian(group1)
	z2 := absDeviationsFromMedian(group2)

	n1 := float64(len(z1))
	n2 := float64(len(z2))
	n := n1 + n2
	const k = 2.0

	mean1, _ := stats.Mean(z1)
	mean2, _ := stats.Mean(z2)
	grand := (n1*mean1 + n2*mean2) / n

	between := n1*(mean1-grand)*(mean1-grand) + n2*(mean2-grand)*(mean2-grand)

	within := 0.0
	for _, z := range z1 {
		within += (z - mean1) * (z - mean1)
	}
	for _, z := range z2 {
		within += (z - mean2) * (z - mean2)
	}

	if within == 0 {
		return math.NaN(), math.NaN()
	}

	statistic = ((n - k) / (k - 1)) * (between / within)
	pValue = e.dist.FTestPValue(statistic, k-1, n-k)
	return statistic, pValue
}

// tTest computes the two-sample t-statistic and two-tailed p-value under the
// given variance assumption.
func (e *Engine) tTest(group1, group2 []float64, assumption hypothesis.VarianceAssumption) (statistic, pValue float64) {
	n1 := float64(len(group1))
	n2 := float64(len(group2))

	mean1, _ := stats.Mean(group1)
	mean2, _ := stats.Mean(group2)
	var1, _ := stats.SampleVariance(group1)
	var2, _ := stats.SampleVariance(group2)

	var se, df float64
	if assumption == hypothesis.EqualVariance {
		// Pooled-variance (Student) formulation
		pooled := ((n1-1)*var1 + (n2-1)*var2) / (n1 + n2 - 2)
		se = math.Sqrt(pooled * (1/n1 + 1/n2))
		df = n1 + n2 - 2
	} else {
		// Welch formulation with Welch-Satterthwaite degrees of freedom
		a := var1 / n1
		b := var2 / n2
		se = math.Sqrt(a + b)
		df = (a + b) * (a + b) / (a*a/(n1-1) + b*b/(n2-1))
	}

	if se == 0 || math.IsNaN(se) {
		return math.NaN(), math.NaN()
	}

	statistic = (mean1 - mean2) / se
	pValue = e.dist.TTestPValue(statistic, df)
	return statistic, pValue
}

func absDeviationsFromMedian(data []float64) []float64 {
	median, _ := stats.Median(data)
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = math.Abs(v - median)
	}
	return out
}
