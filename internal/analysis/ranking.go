package analysis

import "sort"

// RankedRow is one row of a ranked categorical aggregate.
type RankedRow struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TopN sorts rows strictly descending by value and truncates to at most n
// rows. The sort is stable, so ties keep their original row order. Inputs
// smaller than n come back whole; the input slice is never mutated.
func TopN(rows []RankedRow, n int) []RankedRow {
	if n < 0 {
		n = 0
	}

	ranked := make([]RankedRow, len(rows))
	copy(ranked, rows)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
