package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Distributions provides unified access to the statistical distributions the
// analysis layer needs. P-values are computed from exact CDFs rather than
// normal approximations.
type Distributions struct{}

// NewDistributions creates a new distributions utility
func NewDistributions() *Distributions {
	return &Distributions{}
}

// TTestPValue computes the two-tailed p-value for a t-statistic using
// Student's t-distribution.
func (d *Distributions) TTestPValue(tStatistic, degreesOfFreedom float64) float64 {
	if degreesOfFreedom <= 0 || math.IsNaN(tStatistic) {
		return math.NaN()
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: degreesOfFreedom}

	// Two-tailed test
	p := 2 * (1 - tDist.CDF(math.Abs(tStatistic)))
	return clampProbability(p)
}

// FTestPValue computes the upper-tail p-value for an F-statistic.
func (d *Distributions) FTestPValue(fStatistic float64, df1, df2 float64) float64 {
	if df1 <= 0 || df2 <= 0 || math.IsNaN(fStatistic) {
		return math.NaN()
	}

	fDist := distuv.F{D1: df1, D2: df2}
	return clampProbability(1 - fDist.CDF(fStatistic))
}

// TCritical returns the two-sided critical t value at the given alpha.
func (d *Distributions) TCritical(alpha, degreesOfFreedom float64) float64 {
	if degreesOfFreedom <= 0 {
		return math.NaN()
	}
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: degreesOfFreedom}
	return tDist.Quantile(1 - alpha/2)
}

func clampProbability(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
