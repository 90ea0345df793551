package ui

import (
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"taxidash/app"
	"taxidash/internal/analysis"
)

// handleExportXLSX writes the two ranked tables and the decision bundle to a
// downloadable workbook.
func (a *App) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	report := a.reports.BuildReport()

	f := excelize.NewFile()
	defer f.Close()

	if err := writeWorkbook(f, report); err != nil {
		a.logger.Error("xlsx export failed: %v", err)
		http.Error(w, "failed to build workbook", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "taxi_report_"+report.ID.String()+".xlsx"))

	if _, err := f.WriteTo(w); err != nil {
		a.logger.Error("xlsx write failed: %v", err)
	}
}

func writeWorkbook(f *excelize.File, report *app.Report) error {
	if err := writeRankedSheet(f, "Sheet1", "Companies", "company_name", "trips_amount", report.Companies); err != nil {
		return err
	}
	if err := writeRankedSheet(f, "", "Neighborhoods", "dropoff_location_name", "average_trips", report.Neighborhoods); err != nil {
		return err
	}
	return writeDecisionSheet(f, report)
}

func writeRankedSheet(f *excelize.File, renameFrom, name, labelHeader, valueHeader string, section app.RankedSection) error {
	if renameFrom != "" {
		if err := f.SetSheetName(renameFrom, name); err != nil {
			return err
		}
	} else {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	if section.Status != app.StatusOK {
		return f.SetCellValue(name, "A1", "section unavailable: "+section.Message)
	}

	if err := f.SetCellValue(name, "A1", labelHeader); err != nil {
		return err
	}
	if err := f.SetCellValue(name, "B1", valueHeader); err != nil {
		return err
	}
	return writeRankedRows(f, name, section.Ranked)
}

func writeRankedRows(f *excelize.File, sheet string, rows []analysis.RankedRow) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, row.Label); err != nil {
			return err
		}
		cell, err = excelize.CoordinatesToCellName(2, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, row.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeDecisionSheet(f *excelize.File, report *app.Report) error {
	const name = "Hypothesis Test"
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	d := report.Durations
	if d.Decision == nil {
		return f.SetCellValue(name, "A1", "hypothesis test not run: "+d.Message)
	}

	rows := []struct {
		label string
		value interface{}
	}{
		{"levene_statistic", d.Decision.LeveneStatistic},
		{"levene_p_value", d.Decision.LevenePValue},
		{"equal_variance_assumed", d.Decision.EqualVarianceAssumed},
		{"t_statistic", d.Decision.TStatistic},
		{"p_value", d.Decision.PValue},
		{"reject_null", d.Decision.RejectNull},
		{"verdict", d.Decision.Verdict()},
	}
	for i, row := range rows {
		labelCell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, labelCell, row.label); err != nil {
			return err
		}
		valueCell, err := excelize.CoordinatesToCellName(2, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, valueCell, row.value); err != nil {
			return err
		}
	}
	return nil
}
