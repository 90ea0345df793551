package ui

import (
	"encoding/json"
	"net/http"
	"time"

	"taxidash/app"
)

// handleIndex renders the full dashboard: data summaries, the two ranked bar
// charts, the duration box plot, the decision summary and the conclusions
// narrative. Each section reflects its own outcome; a failed section never
// hides the others.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	report := a.reports.BuildReport()
	vm := a.buildIndexVM(report)

	if err := a.templates.ExecuteTemplate(w, "index.html", vm); err != nil {
		a.logger.Error("template error: %v", err)
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
	}
}

// handleReportJSON serves the raw report for programmatic consumers.
func (a *App) handleReportJSON(w http.ResponseWriter, r *http.Request) {
	report := a.reports.BuildReport()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		a.logger.Error("json encode error: %v", err)
	}
}

func (a *App) buildIndexVM(report *app.Report) IndexVM {
	vm := IndexVM{
		ReportID:    report.ID.String(),
		GeneratedAt: report.GeneratedAt.Format(time.RFC1123),
		Conclusions: renderConclusions(),
	}

	vm.Companies = SectionVM{
		Title:   "Top 10 Taxi Companies by Number of Trips",
		Status:  report.Companies.Status,
		Message: report.Companies.Message,
		Summary: report.Companies.Summary,
	}
	if report.Companies.Status == app.StatusOK {
		vm.Companies.Chart = newBarChart(vm.Companies.Title, report.Companies.Ranked)
	}

	vm.Neighborhoods = SectionVM{
		Title:   "Top 10 Neighborhoods by Average Drop-offs",
		Status:  report.Neighborhoods.Status,
		Message: report.Neighborhoods.Message,
		Summary: report.Neighborhoods.Summary,
	}
	if report.Neighborhoods.Status == app.StatusOK {
		vm.Neighborhoods.Chart = newBarChart(vm.Neighborhoods.Title, report.Neighborhoods.Ranked)
	}

	vm.Durations = DecisionVM{
		Status:  report.Durations.Status,
		Message: report.Durations.Message,
		Summary: report.Durations.Summary,
	}
	if report.Durations.Decision != nil {
		vm.Durations.Decision = report.Durations.Decision
		vm.Durations.Verdict = report.Durations.Decision.Verdict()
	}
	if report.Durations.Status == app.StatusOK || report.Durations.Status == app.StatusInsufficientData {
		plot := &BoxPlotVM{Title: "Trip Duration on Rainy vs Non-Rainy Saturdays"}
		if box := newBox("Rainy", report.Durations.Rainy); box != nil {
			plot.Boxes = append(plot.Boxes, *box)
		}
		if box := newBox("Non-Rainy", report.Durations.NonRainy); box != nil {
			plot.Boxes = append(plot.Boxes, *box)
		}
		if len(plot.Boxes) > 0 {
			vm.Durations.BoxPlot = plot
		}
	}

	return vm
}
