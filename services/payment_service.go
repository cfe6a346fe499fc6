// File: /services/payment_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"eventfdr-api/models"
	"eventfdr-api/repositories"
)

// PaymentService simulates a Razorpay-style payment gateway: it
// creates orders for pending bookings and hands the order id back to
// the client, which later calls verify with a payment id. No
// cryptographic signature verification happens here.
type PaymentService struct {
	bookings repositories.BookingRepository
	keyID    string
}

func NewPaymentService(bookings repositories.BookingRepository, keyID string) *PaymentService {
	return &PaymentService{bookings: bookings, keyID: keyID}
}

// PaymentOrder mirrors the gateway order shape the web client expects.
type PaymentOrder struct {
	OrderID   string  `json:"order_id"`
	Amount    int64   `json:"amount"` // smallest currency unit (paise)
	Currency  string  `json:"currency"`
	BookingID string  `json:"booking_id"`
	KeyID     string  `json:"key_id"`
	Status    string  `json:"status"`
	CreatedAt int64   `json:"created_at"`
	Display   float64 `json:"display_amount"`
}

// CreateOrder creates a simulated gateway order for a pending booking.
func (s *PaymentService) CreateOrder(bookingID string) (*PaymentOrder, error) {
	booking, err := s.bookings.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("fetch booking: %w", err)
	}

	if booking.PaymentStatus == models.PaymentPaid {
		return nil, fmt.Errorf("%w: booking is already paid", ErrValidation)
	}
	if booking.TotalAmount <= 0 {
		return nil, fmt.Errorf("%w: free bookings do not need a payment order", ErrValidation)
	}

	now := time.Now()
	return &PaymentOrder{
		OrderID:   fmt.Sprintf("order_%d", now.UnixNano()),
		Amount:    int64(booking.TotalAmount * 100),
		Currency:  "INR",
		BookingID: booking.ID,
		KeyID:     s.keyID,
		Status:    "created",
		CreatedAt: now.Unix(),
		Display:   booking.TotalAmount,
	}, nil
}
