package analysis

import (
	"github.com/montanaflynn/stats"

	"taxidash/domain/core"
)

// Summary holds the descriptive statistics of one numeric column, in the
// shape the data-summary tables render: count, mean, std, min, quartiles,
// max.
type Summary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// Describe computes the descriptive summary for one named numeric column.
// A single observation still summarizes (std is zero); an empty column is
// insufficient data.
func Describe(column string, data []float64) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, core.NewInsufficientDataError(column, 0)
	}

	s := Summary{Column: column, Count: len(data)}

	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, core.NewColumnError(column, err)
	}
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, core.NewColumnError(column, err)
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, core.NewColumnError(column, err)
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, core.NewColumnError(column, err)
	}

	if len(data) > 1 {
		if s.StdDev, err = stats.StandardDeviationSample(data); err != nil {
			return Summary{}, core.NewColumnError(column, err)
		}
	}

	// Percentile needs at least one element; with one element both
	// quartiles collapse to it.
	if s.Q25, err = stats.Percentile(data, 25); err != nil {
		s.Q25 = s.Median
	}
	if s.Q75, err = stats.Percentile(data, 75); err != nil {
		s.Q75 = s.Median
	}

	return s, nil
}
