package trips

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTripRecord_Group(t *testing.T) {
	cases := []struct {
		weather string
		want    WeatherGroup
	}{
		{"Bad rain", GroupRainy},
		{"BAD", GroupRainy},
		{"somewhat bad weather", GroupRainy},
		{"Good", GroupNonRainy},
		{"", GroupNonRainy}, // missing label: absence of evidence of rain
		{"cloudy", GroupNonRainy},
	}

	for _, tc := range cases {
		t.Run(tc.weather, func(t *testing.T) {
			r := TripRecord{WeatherConditions: tc.weather}
			assert.Equal(t, tc.want, r.Group())
		})
	}
}

func TestTripRecord_IsSaturday(t *testing.T) {
	sat := TripRecord{StartTS: time.Date(2017, 11, 4, 9, 0, 0, 0, time.UTC)}
	fri := TripRecord{StartTS: time.Date(2017, 11, 3, 9, 0, 0, 0, time.UTC)}

	assert.True(t, sat.IsSaturday())
	assert.False(t, fri.IsSaturday())
}
