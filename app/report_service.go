package app

import (
	"time"

	"github.com/google/uuid"

	"taxidash/adapters/tabular"
	"taxidash/domain/core"
	"taxidash/domain/hypothesis"
	"taxidash/domain/trips"
	"taxidash/internal"
	"taxidash/internal/analysis"
	"taxidash/internal/config"
)

// SectionStatus describes the outcome of one independently evaluated report
// section.
type SectionStatus string

const (
	StatusOK               SectionStatus = "ok"
	StatusFileNotAvailable SectionStatus = "file_not_available"
	StatusInsufficientData SectionStatus = "insufficient_data"
	StatusError            SectionStatus = "error"
)

// RankedSection holds one ranked categorical aggregate plus the descriptive
// summary of its numeric column.
type RankedSection struct {
	Status  SectionStatus
	Message string
	Ranked  []analysis.RankedRow
	Summary analysis.Summary
}

// DurationSection holds the hypothesis-test outcome and the box-plot groups
// of Saturday durations by weather regime.
type DurationSection struct {
	Status   SectionStatus
	Message  string
	Summary  analysis.Summary
	Decision *hypothesis.TestDecision
	Rainy    []float64
	NonRainy []float64
}

// Report is the result of one full render pass. Every run is independent
// and idempotent given the same input files; nothing in it outlives the
// request that produced it.
type Report struct {
	ID            uuid.UUID
	GeneratedAt   time.Time
	Companies     RankedSection
	Neighborhoods RankedSection
	Durations     DurationSection
}

// ReportService runs the load -> summarize -> rank -> test pipeline once per
// call. Sections are evaluated independently: a missing file or thin group
// degrades its own section and nothing else.
type ReportService struct {
	cfg    config.DataConfig
	engine *analysis.Engine
	logger *internal.Logger
}

// NewReportService creates a new report service
func NewReportService(cfg config.DataConfig, logger *internal.Logger) *ReportService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ReportService{
		cfg:    cfg,
		engine: analysis.NewEngine(),
		logger: logger,
	}
}

// BuildReport performs one full pass over the three datasets.
func (s *ReportService) BuildReport() *Report {
	report := &Report{
		ID:          uuid.New(),
		GeneratedAt: time.Now(),
	}

	report.Companies = s.rankedSection(s.cfg.CompaniesFile, "company_name", "trips_amount")
	report.Neighborhoods = s.rankedSection(s.cfg.NeighborhoodsFile, "dropoff_location_name", "average_trips")
	report.Durations = s.durationSection(s.cfg.DurationsFile)

	s.logger.Info("report %s built: companies=%s neighborhoods=%s durations=%s",
		report.ID, report.Companies.Status, report.Neighborhoods.Status, report.Durations.Status)

	return report
}

// rankedSection loads one categorical dataset and ranks it by its numeric
// column, top N descending with stable ties.
func (s *ReportService) rankedSection(path, labelColumn, valueColumn string) RankedSection {
	table, err := tabular.Load(path)
	if err != nil {
		return rankedFailure(path, err, s.logger)
	}

	labels, err := table.StringColumn(labelColumn)
	if err != nil {
		return RankedSection{Status: StatusError, Message: err.Error()}
	}
	values, err := table.FloatColumn(valueColumn)
	if err != nil {
		return RankedSection{Status: StatusError, Message: err.Error()}
	}

	rows := make([]analysis.RankedRow, len(labels))
	for i := range labels {
		rows[i] = analysis.RankedRow{Label: labels[i], Value: values[i]}
	}

	summary, err := analysis.Describe(valueColumn, values)
	if err != nil {
		return RankedSection{Status: StatusError, Message: err.Error()}
	}

	return RankedSection{
		Status:  StatusOK,
		Ranked:  analysis.TopN(rows, s.cfg.TopN),
		Summary: summary,
	}
}

// durationSection loads the trip duration dataset and runs the hypothesis
// test over rainy vs non-rainy Saturdays.
func (s *ReportService) durationSection(path string) DurationSection {
	table, err := tabular.Load(path)
	if err != nil {
		if core.IsNotFoundError(err) {
			s.logger.Warn("durations file not available: %v", err)
			return DurationSection{Status: StatusFileNotAvailable, Message: err.Error()}
		}
		return DurationSection{Status: StatusError, Message: err.Error()}
	}

	records, err := decodeTripRecords(table)
	if err != nil {
		return DurationSection{Status: StatusError, Message: err.Error()}
	}

	durations := make([]float64, len(records))
	for i, r := range records {
		durations[i] = r.DurationSeconds
	}
	summary, err := analysis.Describe("duration_seconds", durations)
	if err != nil {
		return DurationSection{Status: StatusError, Message: err.Error()}
	}

	rainy, nonRainy := analysis.PartitionSaturdays(records)

	section := DurationSection{
		Status:   StatusOK,
		Summary:  summary,
		Rainy:    rainy,
		NonRainy: nonRainy,
	}

	decision, err := s.engine.Evaluate(records)
	if err != nil {
		if core.IsInsufficientDataError(err) {
			s.logger.Warn("hypothesis test skipped: %v", err)
			section.Status = StatusInsufficientData
			section.Message = err.Error()
			return section
		}
		section.Status = StatusError
		section.Message = err.Error()
		return section
	}

	section.Decision = &decision
	return section
}

// decodeTripRecords converts a loaded duration table into domain records.
func decodeTripRecords(table *tabular.Table) ([]trips.TripRecord, error) {
	starts, err := table.TimeColumn("start_ts")
	if err != nil {
		return nil, err
	}
	weather, err := table.StringColumn("weather_conditions")
	if err != nil {
		return nil, err
	}
	durations, err := table.FloatColumn("duration_seconds")
	if err != nil {
		return nil, err
	}

	records := make([]trips.TripRecord, len(starts))
	for i := range starts {
		records[i] = trips.TripRecord{
			StartTS:           starts[i],
			WeatherConditions: weather[i],
			DurationSeconds:   durations[i],
		}
	}
	return records, nil
}

func rankedFailure(path string, err error, logger *internal.Logger) RankedSection {
	if core.IsNotFoundError(err) {
		logger.Warn("dataset not available: %v", err)
		return RankedSection{Status: StatusFileNotAvailable, Message: err.Error()}
	}
	return RankedSection{Status: StatusError, Message: err.Error()}
}
