// File: /models/booking.go
package models

import (
	"time"
)

// Booking statuses
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Payment statuses
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

type Booking struct {
	ID      string `json:"id" gorm:"primaryKey;size:191"`
	EventID string `json:"event_id" gorm:"not null;size:191;index"`
	UserID  string `json:"user_id" gorm:"not null;size:191;index"`

	// Snapshot of event display fields captured at booking time, so
	// tickets keep rendering even if the event changes later.
	EventTitle string `json:"event_title" gorm:"size:255"`
	EventDate  string `json:"event_date" gorm:"size:10"`
	EventImage string `json:"event_image" gorm:"size:500"`
	EventVenue string `json:"event_venue" gorm:"size:255"`
	EventCity  string `json:"event_city" gorm:"size:100"`

	Tickets       int         `json:"tickets" gorm:"not null"`
	TotalAmount   float64     `json:"total_amount" gorm:"not null;default:0"`
	PaymentMethod string      `json:"payment_method" gorm:"size:50;default:'card'"`
	AttendeeNames StringSlice `json:"attendee_names" gorm:"type:json"`
	Email         string      `json:"email" gorm:"size:255"`
	Phone         string      `json:"phone" gorm:"size:20"`
	Status        string      `json:"status" gorm:"size:20;default:'pending'"`
	PaymentStatus string      `json:"payment_status" gorm:"size:20;default:'pending'"`
	PaymentID     string      `json:"payment_id,omitempty" gorm:"size:191"`
	TicketCode    string      `json:"ticket_code" gorm:"size:20"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// Active reports whether the booking still counts against event capacity
// or is on its way to doing so.
func (b *Booking) Active() bool {
	return b.Status != BookingCancelled
}
