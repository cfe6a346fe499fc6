// File: /services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"eventfdr-api/models"
	"eventfdr-api/repositories"
	"eventfdr-api/utils"
)

var (
	ErrEventNotFound            = errors.New("event not found")
	ErrBookingNotFound          = errors.New("booking not found")
	ErrInsufficientAvailability = errors.New("insufficient availability")
	ErrValidation               = errors.New("validation failed")
)

// BookingService orchestrates the registration workflow: availability
// check, pending booking creation, the free-event fast path, payment
// confirmation and cancellation.
type BookingService struct {
	events   repositories.EventRepository
	bookings repositories.BookingRepository
	email    *EmailService
}

// NewBookingService constructs a BookingService. email may be nil when
// no SMTP transport is configured.
func NewBookingService(
	events repositories.EventRepository,
	bookings repositories.BookingRepository,
	email *EmailService,
) *BookingService {
	return &BookingService{events: events, bookings: bookings, email: email}
}

type BookingRequest struct {
	EventID       string   `json:"event_id" binding:"required"`
	Tickets       int      `json:"tickets" binding:"required,min=1"`
	TotalAmount   *float64 `json:"total_amount"`
	PaymentMethod string   `json:"payment_method"`
	AttendeeNames []string `json:"attendee_names"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
}

// Create re-fetches the event, checks availability and creates a
// pending booking carrying a snapshot of the event's display fields.
// A zero-amount total confirms synchronously; paid bookings stay
// pending until ConfirmPayment runs.
func (s *BookingService) Create(userID string, req BookingRequest) (*models.Booking, error) {
	if req.Tickets < 1 {
		return nil, fmt.Errorf("%w: at least one ticket is required", ErrValidation)
	}
	if req.Email != "" && !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: invalid contact email", ErrValidation)
	}
	if req.Phone != "" && !utils.IsValidPhone(req.Phone) {
		return nil, fmt.Errorf("%w: invalid contact phone", ErrValidation)
	}

	event, err := s.events.GetByID(req.EventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("fetch event: %w", err)
	}

	available := event.Capacity - event.Registered
	if req.Tickets > available {
		return nil, fmt.Errorf("%w: only %d tickets available", ErrInsufficientAvailability, available)
	}

	totalAmount := event.Price * float64(req.Tickets)
	if req.TotalAmount != nil {
		totalAmount = *req.TotalAmount
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "card"
	}

	booking := &models.Booking{
		ID:            utils.NewID(),
		EventID:       event.ID,
		UserID:        userID,
		EventTitle:    event.Title,
		EventDate:     event.Date,
		EventImage:    event.Image,
		EventVenue:    event.Venue,
		EventCity:     event.City,
		Tickets:       req.Tickets,
		TotalAmount:   totalAmount,
		PaymentMethod: paymentMethod,
		AttendeeNames: models.StringSlice(req.AttendeeNames),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
		TicketCode:    utils.NewTicketCode(),
		CreatedAt:     time.Now(),
	}

	if err := s.bookings.Create(booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// Free events skip the payment step entirely
	if totalAmount == 0 {
		return s.ConfirmPayment(booking.ID, "FREE_EVENT")
	}

	return booking, nil
}

// ConfirmPayment marks a booking paid/confirmed and increments the
// event's registered count by the booked ticket count. The payment id
// comes from the (simulated) gateway and is stored, not verified.
// Confirming twice is a no-op.
func (s *BookingService) ConfirmPayment(bookingID, paymentID string) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("fetch booking: %w", err)
	}

	if booking.PaymentStatus == models.PaymentPaid {
		return booking, nil
	}

	updated, err := s.bookings.UpdatePayment(bookingID, models.PaymentPaid, models.BookingConfirmed, paymentID)
	if err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}

	if err := s.events.AddRegistered(updated.EventID, updated.Tickets); err != nil {
		return nil, fmt.Errorf("increment registered: %w", err)
	}

	if s.email != nil && updated.Email != "" {
		go s.email.SendBookingConfirmation(updated)
	}

	return updated, nil
}

// FailPayment marks a booking's payment failed and cancels it. The
// registered count is untouched since it never incremented.
func (s *BookingService) FailPayment(bookingID string) (*models.Booking, error) {
	_, err := s.bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("fetch booking: %w", err)
	}

	updated, err := s.bookings.UpdatePayment(bookingID, models.PaymentFailed, models.BookingCancelled, "")
	if err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}
	return updated, nil
}

// Get returns one of the user's bookings. Other users' bookings are
// reported as not found rather than forbidden.
func (s *BookingService) Get(bookingID, userID string) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("fetch booking: %w", err)
	}
	if booking.UserID != userID {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// ListByUser returns the user's bookings.
func (s *BookingService) ListByUser(userID string) ([]models.Booking, error) {
	return s.bookings.ListByUser(userID)
}

// Cancel removes a booking and, if it had already counted against
// capacity, decrements the event's registered count. The decrement is
// floored at zero in the store, so a double cancel can never drive
// the count negative.
func (s *BookingService) Cancel(bookingID, userID string) error {
	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("fetch booking: %w", err)
	}
	if booking.UserID != userID {
		return ErrBookingNotFound
	}

	counted := booking.Status == models.BookingConfirmed && booking.PaymentStatus == models.PaymentPaid

	if err := s.bookings.Delete(bookingID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("delete booking: %w", err)
	}

	if counted {
		if err := s.events.AddRegistered(booking.EventID, -booking.Tickets); err != nil &&
			!errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("decrement registered: %w", err)
		}
	}

	return nil
}

// ExpireStalePending deletes bookings that have sat in pending/pending
// longer than ttl. Those bookings never incremented the event's
// registered count, so deletion is the whole compensation.
func (s *BookingService) ExpireStalePending(ttl time.Duration) (int, error) {
	stale, err := s.bookings.ListStalePending(time.Now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("list stale bookings: %w", err)
	}

	expired := 0
	for _, booking := range stale {
		if err := s.bookings.Delete(booking.ID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return expired, fmt.Errorf("delete stale booking %s: %w", booking.ID, err)
		}
		expired++
	}

	return expired, nil
}
