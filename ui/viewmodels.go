package ui

import (
	"html/template"

	"taxidash/app"
	"taxidash/domain/hypothesis"
	"taxidash/internal/analysis"
)

// BarVM is one bar of a ranked bar chart. WidthPct scales the bar against
// the largest value in the chart.
type BarVM struct {
	Label    string
	Value    float64
	WidthPct float64
}

// BarChartVM describes one ranked bar chart.
type BarChartVM struct {
	Title string
	Bars  []BarVM
}

// BoxVM is the five-number summary of one box-plot group.
type BoxVM struct {
	Group  string
	N      int
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// BoxPlotVM describes the grouped box plot of duration by weather category.
type BoxPlotVM struct {
	Title string
	Boxes []BoxVM
}

// SectionVM wraps one report section for rendering: payload plus status.
type SectionVM struct {
	Title   string
	Status  app.SectionStatus
	Message string
	Summary analysis.Summary
	Chart   *BarChartVM
}

// DecisionVM carries the six decision fields plus the verdict sentence.
type DecisionVM struct {
	Status   app.SectionStatus
	Message  string
	Decision *hypothesis.TestDecision
	Verdict  string
	BoxPlot  *BoxPlotVM
	Summary  analysis.Summary
}

// IndexVM is the full dashboard page model.
type IndexVM struct {
	ReportID      string
	GeneratedAt   string
	Companies     SectionVM
	Neighborhoods SectionVM
	Durations     DecisionVM
	Conclusions   template.HTML
}

// newBarChart builds a bar chart from ranked rows.
func newBarChart(title string, rows []analysis.RankedRow) *BarChartVM {
	chart := &BarChartVM{Title: title}
	if len(rows) == 0 {
		return chart
	}

	max := rows[0].Value
	for _, r := range rows {
		if r.Value > max {
			max = r.Value
		}
	}

	for _, r := range rows {
		width := 0.0
		if max > 0 {
			width = 100 * r.Value / max
		}
		chart.Bars = append(chart.Bars, BarVM{Label: r.Label, Value: r.Value, WidthPct: width})
	}
	return chart
}

// newBox summarizes one group for the box plot; nil when the group cannot be
// summarized.
func newBox(group string, data []float64) *BoxVM {
	summary, err := analysis.Describe(group, data)
	if err != nil {
		return nil
	}
	return &BoxVM{
		Group:  group,
		N:      summary.Count,
		Min:    summary.Min,
		Q25:    summary.Q25,
		Median: summary.Median,
		Q75:    summary.Q75,
		Max:    summary.Max,
	}
}
