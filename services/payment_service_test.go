// File: /services/payment_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eventfdr-api/models"
	"eventfdr-api/repositories"
)

func TestCreateOrderForPendingBooking(t *testing.T) {
	bookingRepo := repositories.NewMemoryBookingRepository()
	assert.NoError(t, bookingRepo.Create(&models.Booking{
		ID:            "bk-1",
		EventID:       "evt-1",
		UserID:        "user-1",
		Tickets:       2,
		TotalAmount:   2999,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
	}))

	svc := NewPaymentService(bookingRepo, "rzp_test_demo")

	order, err := svc.CreateOrder("bk-1")
	assert.NoError(t, err)
	assert.Equal(t, "bk-1", order.BookingID)
	assert.Equal(t, int64(299900), order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "rzp_test_demo", order.KeyID)
	assert.Equal(t, "created", order.Status)
	assert.Equal(t, float64(2999), order.Display)
	assert.Contains(t, order.OrderID, "order_")
}

func TestCreateOrderRejectsPaidAndFreeBookings(t *testing.T) {
	bookingRepo := repositories.NewMemoryBookingRepository()
	assert.NoError(t, bookingRepo.Create(&models.Booking{
		ID:            "bk-paid",
		TotalAmount:   500,
		Status:        models.BookingConfirmed,
		PaymentStatus: models.PaymentPaid,
	}))
	assert.NoError(t, bookingRepo.Create(&models.Booking{
		ID:            "bk-free",
		TotalAmount:   0,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
	}))

	svc := NewPaymentService(bookingRepo, "rzp_test_demo")

	_, err := svc.CreateOrder("bk-paid")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateOrder("bk-free")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateOrder("bk-missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
