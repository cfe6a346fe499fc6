// File: /models/event.go
package models

import (
	"time"
)

type Event struct {
	ID               string       `json:"id" gorm:"primaryKey;size:191"`
	Title            string       `json:"title" gorm:"not null;size:255"`
	Description      string       `json:"description" gorm:"not null;type:text"`
	ShortDescription string       `json:"short_description" gorm:"size:500"`
	Category         string       `json:"category" gorm:"not null;size:50;index"`
	Date             string       `json:"date" gorm:"not null;size:10;index"` // YYYY-MM-DD
	Time             string       `json:"time" gorm:"size:5"`                 // HH:MM
	EndDate          string       `json:"end_date" gorm:"size:10"`
	EndTime          string       `json:"end_time" gorm:"size:5"`
	Venue            string       `json:"venue" gorm:"not null;size:255"`
	Address          string       `json:"address" gorm:"size:500"`
	City             string       `json:"city" gorm:"not null;size:100;index"`
	Country          string       `json:"country" gorm:"size:100;default:'India'"`
	Image            string       `json:"image" gorm:"size:500"`
	Price            float64      `json:"price" gorm:"not null;default:0"`
	Currency         string       `json:"currency" gorm:"size:10;default:'INR'"`
	Capacity         int          `json:"capacity" gorm:"not null"`
	Registered       int          `json:"registered" gorm:"default:0"`
	OrganizerName    string       `json:"organizer_name" gorm:"size:255"`
	OrganizerEmail   string       `json:"organizer_email" gorm:"size:255"`
	OrganizerVerified bool         `json:"organizer_verified" gorm:"default:false"`
	Tags             StringSlice  `json:"tags" gorm:"type:json"`
	Featured         bool         `json:"featured" gorm:"default:false;index"`
	Highlights       StringSlice  `json:"highlights" gorm:"type:json"`
	Schedule         ScheduleList `json:"schedule" gorm:"type:json"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// Organizer is the display shape of the event organizer used in API payloads
type Organizer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

// Organizer returns the embedded organizer fields as a single object
func (e *Event) Organizer() Organizer {
	return Organizer{
		Name:     e.OrganizerName,
		Email:    e.OrganizerEmail,
		Verified: e.OrganizerVerified,
	}
}

// EventCategories is the fixed category set, including the "all" sentinel
var EventCategories = []string{
	"All Events",
	"Technology",
	"Business",
	"Music",
	"Arts & Culture",
	"Sports",
	"Health & Wellness",
	"Food & Drink",
	"Entertainment",
	"Education",
}

// Cities is the supported city list, including the "all" sentinel
var Cities = []string{
	"All Cities",
	"Mumbai",
	"Bangalore",
	"New Delhi",
	"Hyderabad",
	"Chennai",
	"Pune",
	"Kolkata",
	"Gurgaon",
	"Rishikesh",
}

// CategoryAll and CityAll are the sentinel filter values that disable
// category and city filtering.
const (
	CategoryAll = "All Events"
	CityAll     = "All Cities"
)

// PriceRange bounds a price filter. Max < 0 means unbounded.
type PriceRange struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// PriceRanges mirrors the filter presets offered by the web client
var PriceRanges = []PriceRange{
	{Label: "All Prices", Min: 0, Max: -1},
	{Label: "Free", Min: 0, Max: 0},
	{Label: "Under ₹1,000", Min: 1, Max: 999},
	{Label: "₹1,000 - ₹3,000", Min: 1000, Max: 3000},
	{Label: "₹3,000 - ₹5,000", Min: 3000, Max: 5000},
	{Label: "Above ₹5,000", Min: 5000, Max: -1},
}

// EventFilters is the criteria set accepted by the catalog listing
type EventFilters struct {
	Query      string      `json:"query" form:"query"`
	Category   string      `json:"category" form:"category"`
	City       string      `json:"city" form:"city"`
	PriceRange *PriceRange `json:"price_range"`
	DateFrom   string      `json:"date_from" form:"date_from"`
	DateTo     string      `json:"date_to" form:"date_to"`
}
