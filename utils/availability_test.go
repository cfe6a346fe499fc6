// File: /utils/availability_test.go
package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventfdr-api/models"
)

func TestGetAvailability(t *testing.T) {
	tests := []struct {
		name       string
		capacity   int
		registered int
		available  int
		percentage float64
		status     string
	}{
		{"nearly sold out", 100, 95, 5, 5, AvailabilityLow},
		{"exactly at low boundary", 100, 90, 10, 10, AvailabilityLow},
		{"medium band", 100, 75, 25, 25, AvailabilityMedium},
		{"exactly at medium boundary", 100, 70, 30, 30, AvailabilityMedium},
		{"plenty left", 100, 20, 80, 80, AvailabilityHigh},
		{"sold out", 100, 100, 0, 0, AvailabilityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &models.Event{Capacity: tt.capacity, Registered: tt.registered}
			got := GetAvailability(event)

			assert.Equal(t, tt.available, got.Available)
			assert.InDelta(t, tt.percentage, got.Percentage, 0.001)
			assert.Equal(t, tt.status, got.Status)
		})
	}
}

func TestGetAvailabilityNeverNegative(t *testing.T) {
	event := &models.Event{Capacity: 50, Registered: 60}
	got := GetAvailability(event)

	assert.Equal(t, 0, got.Available)
	assert.Equal(t, AvailabilityLow, got.Status)
}

func TestGetAvailabilityZeroCapacity(t *testing.T) {
	event := &models.Event{Capacity: 0, Registered: 0}
	got := GetAvailability(event)

	assert.Equal(t, 0, got.Available)
	assert.Equal(t, float64(0), got.Percentage)
	assert.Equal(t, AvailabilityLow, got.Status)
}

func TestGetEventStatus(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		end  string
		want string
	}{
		{"ended last month", "2026-01-05", "", StatusCompleted},
		{"happening today", "2026-02-10", "", StatusToday},
		{"later this week", "2026-02-14", "", StatusThisWeek},
		{"later this month", "2026-03-01", "", StatusThisMonth},
		{"far out", "2026-06-01", "", StatusUpcoming},
		{"multi-day still running", "2026-02-08", "2026-02-12", StatusToday},
		{"unparseable date", "not-a-date", "", StatusUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &models.Event{Date: tt.date, EndDate: tt.end}
			assert.Equal(t, tt.want, GetEventStatus(event, now))
		})
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today", DaysUntil("2026-02-10", now))
	assert.Equal(t, "Tomorrow", DaysUntil("2026-02-11", now))
	assert.Equal(t, "5 days", DaysUntil("2026-02-15", now))
	assert.Equal(t, "Past", DaysUntil("2026-02-01", now))
	assert.Equal(t, "", DaysUntil("garbage", now))
}
