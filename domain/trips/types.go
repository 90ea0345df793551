package trips

import (
	"strings"
	"time"
)

// TripRecord is one row of the trip duration dataset. Records are immutable
// once loaded; analysis passes derive views without mutating them.
type TripRecord struct {
	StartTS           time.Time `json:"start_ts"`
	WeatherConditions string    `json:"weather_conditions"`
	DurationSeconds   float64   `json:"duration_seconds"`
}

// WeatherGroup labels one of the two disjoint weather regimes a Saturday
// trip falls into.
type WeatherGroup string

const (
	GroupRainy    WeatherGroup = "rainy"
	GroupNonRainy WeatherGroup = "non_rainy"
)

// badWeatherMarker is the substring that classifies a weather label as
// rainy, matched case-insensitively.
const badWeatherMarker = "bad"

// Group classifies a record's weather label. An empty or missing label
// counts as non-rainy: absence of evidence of rain.
func (r TripRecord) Group() WeatherGroup {
	if strings.Contains(strings.ToLower(r.WeatherConditions), badWeatherMarker) {
		return GroupRainy
	}
	return GroupNonRainy
}

// IsSaturday reports whether the trip started on a Saturday.
func (r TripRecord) IsSaturday() bool {
	return r.StartTS.Weekday() == time.Saturday
}

// CompanyRow is one row of the companies dataset.
type CompanyRow struct {
	CompanyName string  `json:"company_name"`
	TripsAmount float64 `json:"trips_amount"`
}

// NeighborhoodRow is one row of the neighborhoods dataset.
type NeighborhoodRow struct {
	DropoffLocationName string  `json:"dropoff_location_name"`
	AverageTrips        float64 `json:"average_trips"`
}
