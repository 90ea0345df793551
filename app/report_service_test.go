package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxidash/internal/config"
)

const neighborhoodsCSV = "dropoff_location_name,average_trips\n" +
	"Loop,10727.5\nRiver North,9523.7\nStreeterville,6664.7\n"

const companiesCSV = "company_name,trips_amount\n" +
	"A,50\nB,90\nC,90\nD,10\n"

// Scenario A durations: six rainy and four non-rainy Saturdays with a clear
// mean separation. 2017-11-04 and 2017-11-11 were Saturdays.
const durationsCSV = "start_ts,weather_conditions,duration_seconds\n" +
	"2017-11-04 10:00:00,Bad rain,1200\n" +
	"2017-11-04 11:00:00,Bad rain,1300\n" +
	"2017-11-04 12:00:00,Bad rain,1250\n" +
	"2017-11-11 10:00:00,Bad rain,1400\n" +
	"2017-11-11 11:00:00,Bad rain,1100\n" +
	"2017-11-11 12:00:00,Bad rain,1350\n" +
	"2017-11-04 13:00:00,Good,600\n" +
	"2017-11-04 14:00:00,Good,650\n" +
	"2017-11-11 13:00:00,Good,620\n" +
	"2017-11-11 14:00:00,Good,700\n"

// One rainy Saturday row only: the hypothesis test must be skipped.
const thinDurationsCSV = "start_ts,weather_conditions,duration_seconds\n" +
	"2017-11-04 10:00:00,Bad rain,1200\n" +
	"2017-11-04 13:00:00,Good,600\n" +
	"2017-11-04 14:00:00,Good,650\n" +
	"2017-11-11 13:00:00,Good,620\n" +
	"2017-11-11 14:00:00,Good,700\n" +
	"2017-11-11 15:00:00,Good,640\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testDataConfig(t *testing.T, companies, neighborhoods, durations string) config.DataConfig {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DataConfig{TopN: 10}

	cfg.CompaniesFile = filepath.Join(dir, "missing_companies.csv")
	if companies != "" {
		cfg.CompaniesFile = writeFile(t, dir, "companies.csv", companies)
	}
	cfg.NeighborhoodsFile = filepath.Join(dir, "missing_neighborhoods.csv")
	if neighborhoods != "" {
		cfg.NeighborhoodsFile = writeFile(t, dir, "neighborhoods.csv", neighborhoods)
	}
	cfg.DurationsFile = filepath.Join(dir, "missing_durations.csv")
	if durations != "" {
		cfg.DurationsFile = writeFile(t, dir, "durations.csv", durations)
	}
	return cfg
}

func TestBuildReport_FullPass(t *testing.T) {
	cfg := testDataConfig(t, companiesCSV, neighborhoodsCSV, durationsCSV)
	svc := NewReportService(cfg, nil)

	report := svc.BuildReport()

	assert.NotEqual(t, uuid.Nil, report.ID)

	require.Equal(t, StatusOK, report.Companies.Status)
	require.Len(t, report.Companies.Ranked, 4)
	assert.Equal(t, "B", report.Companies.Ranked[0].Label)
	assert.Equal(t, "C", report.Companies.Ranked[1].Label)
	assert.Equal(t, "A", report.Companies.Ranked[2].Label)
	assert.Equal(t, "D", report.Companies.Ranked[3].Label)

	require.Equal(t, StatusOK, report.Neighborhoods.Status)
	assert.Equal(t, "Loop", report.Neighborhoods.Ranked[0].Label)

	require.Equal(t, StatusOK, report.Durations.Status)
	require.NotNil(t, report.Durations.Decision)
	assert.True(t, report.Durations.Decision.RejectNull)
	assert.Len(t, report.Durations.Rainy, 6)
	assert.Len(t, report.Durations.NonRainy, 4)
	assert.Equal(t, 10, report.Durations.Summary.Count)
}

func TestBuildReport_MissingCompaniesDoesNotContaminate(t *testing.T) {
	cfg := testDataConfig(t, "", neighborhoodsCSV, durationsCSV)
	svc := NewReportService(cfg, nil)

	report := svc.BuildReport()

	assert.Equal(t, StatusFileNotAvailable, report.Companies.Status)
	assert.NotEmpty(t, report.Companies.Message)

	// The other sections render normally.
	assert.Equal(t, StatusOK, report.Neighborhoods.Status)
	assert.Equal(t, StatusOK, report.Durations.Status)
	require.NotNil(t, report.Durations.Decision)
}

func TestBuildReport_ThinGroupSkipsHypothesisTest(t *testing.T) {
	cfg := testDataConfig(t, companiesCSV, neighborhoodsCSV, thinDurationsCSV)
	svc := NewReportService(cfg, nil)

	report := svc.BuildReport()

	assert.Equal(t, StatusInsufficientData, report.Durations.Status)
	assert.Nil(t, report.Durations.Decision)
	assert.NotEmpty(t, report.Durations.Message)

	// The box-plot data and summary are still available for rendering.
	assert.Equal(t, 6, report.Durations.Summary.Count)
	assert.Len(t, report.Durations.Rainy, 1)
	assert.Len(t, report.Durations.NonRainy, 5)
}

func TestBuildReport_AllFilesMissing(t *testing.T) {
	cfg := testDataConfig(t, "", "", "")
	svc := NewReportService(cfg, nil)

	report := svc.BuildReport()

	assert.Equal(t, StatusFileNotAvailable, report.Companies.Status)
	assert.Equal(t, StatusFileNotAvailable, report.Neighborhoods.Status)
	assert.Equal(t, StatusFileNotAvailable, report.Durations.Status)
}
