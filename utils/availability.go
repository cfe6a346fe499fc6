// File: /utils/availability.go
package utils

import (
	"fmt"
	"math"
	"time"

	"eventfdr-api/models"
)

// Availability status bands
const (
	AvailabilityLow    = "low"
	AvailabilityMedium = "medium"
	AvailabilityHigh   = "high"
)

// Availability is the remaining-capacity summary shown on event cards.
type Availability struct {
	Available  int     `json:"available"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
}

// GetAvailability computes remaining capacity for an event. Capacity
// is validated >= 1 at event creation, but a zero guard keeps seeded
// or legacy rows from dividing by zero.
func GetAvailability(event *models.Event) Availability {
	available := event.Capacity - event.Registered
	if available < 0 {
		available = 0
	}

	var percentage float64
	if event.Capacity > 0 {
		percentage = float64(available) / float64(event.Capacity) * 100
	}

	status := AvailabilityHigh
	if percentage <= 10 {
		status = AvailabilityLow
	} else if percentage <= 30 {
		status = AvailabilityMedium
	}

	return Availability{
		Available:  available,
		Percentage: percentage,
		Status:     status,
	}
}

// Event status labels, derived from wall-clock time at read time
const (
	StatusCompleted = "Completed"
	StatusToday     = "Today"
	StatusThisWeek  = "This Week"
	StatusThisMonth = "This Month"
	StatusUpcoming  = "Upcoming"
)

// GetEventStatus derives the lifecycle label of an event from its
// dates relative to now. It is a pure function of (now, event dates)
// and is never stored.
func GetEventStatus(event *models.Event, now time.Time) string {
	start, err := time.Parse("2006-01-02", event.Date)
	if err != nil {
		return StatusUpcoming
	}

	end := start
	if event.EndDate != "" {
		if parsed, err := time.Parse("2006-01-02", event.EndDate); err == nil {
			end = parsed
		}
	}

	// The event runs until the end of its final day
	if now.After(end.Add(24 * time.Hour)) {
		return StatusCompleted
	}

	// Started and not yet completed, including multi-day events
	if sameDay(start, now) || now.After(start) {
		return StatusToday
	}

	daysUntil := int(math.Ceil(start.Sub(now).Hours() / 24))
	if daysUntil <= 7 {
		return StatusThisWeek
	}
	if daysUntil <= 30 {
		return StatusThisMonth
	}

	return StatusUpcoming
}

// DaysUntil returns a human label for how far away an event is.
func DaysUntil(date string, now time.Time) string {
	start, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}

	days := int(math.Ceil(start.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		return "Past"
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
