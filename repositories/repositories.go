// File: /repositories/repositories.go
package repositories

import (
	"errors"
	"time"

	"eventfdr-api/models"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

// EventRepository is the catalog store. Controllers and services only
// see this interface so tests can inject the in-memory implementation.
type EventRepository interface {
	List() ([]models.Event, error)
	GetByID(id string) (*models.Event, error)
	ListByCategory(category string) ([]models.Event, error)
	ListFeatured() ([]models.Event, error)
	Create(event *models.Event) error
	Update(id string, updates map[string]interface{}) (*models.Event, error)
	Delete(id string) error
	// AddRegistered adjusts the registered count by delta, floored at zero.
	AddRegistered(id string, delta int) error
}

// BookingRepository is the registration store.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	ListByUser(userID string) ([]models.Booking, error)
	ListByEvent(eventID string) ([]models.Booking, error)
	// UpdatePayment sets payment status, booking status and optional
	// payment id in one write.
	UpdatePayment(id, paymentStatus, status, paymentID string) (*models.Booking, error)
	Delete(id string) error
	// ListStalePending returns pending bookings created before cutoff,
	// for the expiry job.
	ListStalePending(cutoff time.Time) ([]models.Booking, error)
}

// UserRepository is the user store.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(id string, updates map[string]interface{}) (*models.User, error)
}
