// File: /services/booking_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventfdr-api/models"
	"eventfdr-api/repositories"
)

func newBookingFixture(t *testing.T, events ...models.Event) (*BookingService, *repositories.MemoryEventRepository, *repositories.MemoryBookingRepository) {
	t.Helper()
	eventRepo := repositories.NewMemoryEventRepository(events)
	bookingRepo := repositories.NewMemoryBookingRepository()
	return NewBookingService(eventRepo, bookingRepo, nil), eventRepo, bookingRepo
}

func paidEvent() models.Event {
	return models.Event{
		ID:         "evt-paid",
		Title:      "Design Summit",
		Date:       "2026-09-12",
		Venue:      "Convention Hall",
		City:       "Delhi",
		Price:      1500,
		Capacity:   10,
		Registered: 0,
	}
}

func freeEvent() models.Event {
	return models.Event{
		ID:         "evt-free",
		Title:      "Community Meetup",
		Date:       "2026-09-20",
		Venue:      "Tech Park",
		City:       "Pune",
		Price:      0,
		Capacity:   50,
		Registered: 0,
	}
}

func TestCreateBookingStaysPendingUntilPayment(t *testing.T) {
	svc, eventRepo, _ := newBookingFixture(t, paidEvent())

	booking, err := svc.Create("user-1", BookingRequest{EventID: "evt-paid", Tickets: 2})

	assert.NoError(t, err)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, models.PaymentPending, booking.PaymentStatus)
	assert.Equal(t, float64(3000), booking.TotalAmount)
	assert.NotEmpty(t, booking.TicketCode)
	assert.Equal(t, "Design Summit", booking.EventTitle)

	// Registered only moves on payment confirmation
	event, _ := eventRepo.GetByID("evt-paid")
	assert.Equal(t, 0, event.Registered)
}

func TestCreateBookingFreeEventConfirmsImmediately(t *testing.T) {
	svc, eventRepo, _ := newBookingFixture(t, freeEvent())

	booking, err := svc.Create("user-1", BookingRequest{EventID: "evt-free", Tickets: 3})

	assert.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
	assert.Equal(t, models.PaymentPaid, booking.PaymentStatus)
	assert.Equal(t, "FREE_EVENT", booking.PaymentID)

	event, _ := eventRepo.GetByID("evt-free")
	assert.Equal(t, 3, event.Registered)
}

func TestCreateBookingUnknownEvent(t *testing.T) {
	svc, _, _ := newBookingFixture(t)

	_, err := svc.Create("user-1", BookingRequest{EventID: "evt-missing", Tickets: 1})

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestCreateBookingExactRemainingCapacity(t *testing.T) {
	event := paidEvent()
	event.Registered = 7
	svc, eventRepo, _ := newBookingFixture(t, event)

	booking, err := svc.Create("user-1", BookingRequest{EventID: "evt-paid", Tickets: 3})
	assert.NoError(t, err)

	_, err = svc.ConfirmPayment(booking.ID, "pay_abc")
	assert.NoError(t, err)

	updated, _ := eventRepo.GetByID("evt-paid")
	assert.Equal(t, 10, updated.Registered)

	// Sold out now, one more ticket must be rejected
	_, err = svc.Create("user-2", BookingRequest{EventID: "evt-paid", Tickets: 1})
	assert.ErrorIs(t, err, ErrInsufficientAvailability)

	// And the rejection changed nothing
	updated, _ = eventRepo.GetByID("evt-paid")
	assert.Equal(t, 10, updated.Registered)
}

func TestCreateBookingOverCapacity(t *testing.T) {
	event := paidEvent()
	event.Registered = 9
	svc, _, _ := newBookingFixture(t, event)

	_, err := svc.Create("user-1", BookingRequest{EventID: "evt-paid", Tickets: 2})

	assert.ErrorIs(t, err, ErrInsufficientAvailability)
	assert.Contains(t, err.Error(), "only 1 tickets available")
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _, _ := newBookingFixture(t, paidEvent())

	_, err := svc.Create("user-1", BookingRequest{EventID: "evt-paid", Tickets: 0})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create("user-1", BookingRequest{EventID: "evt-paid", Tickets: 1, Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create("user-1", BookingRequest{EventID: "evt-paid", Tickets: 1, Phone: "12345"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestConfirmPaymentIsIdempotent(t *testing.T) {
	svc, eventRepo, _ := newBookingFixture(t, paidEvent())

	booking, _ := svc.Create("user-1", BookingRequest{EventID: "evt-paid", Tickets: 2})

	first, err := svc.ConfirmPayment(booking.ID, "pay_first")
	assert.NoError(t, err)
	assert.Equal(t, "pay_first", first.PaymentID)

	second, err := svc.ConfirmPayment(booking.ID, "pay_second")
	assert.NoError(t, err)
	assert.Equal(t, "pay_first", second.PaymentID)

	event, _ := eventRepo.GetByID("evt-paid")
	assert.Equal(t, 2, event.Registered)
}

func TestFailPaymentCancelsWithoutCounting(t *testing.T) {
	svc, eventRepo, _ := newBookingFixture(t, paidEvent())

	booking, _ := svc.Create("user-1", BookingRequest{EventID: "evt-paid", Tickets: 2})

	failed, err := svc.FailPayment(booking.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, failed.Status)
	assert.Equal(t, models.PaymentFailed, failed.PaymentStatus)

	event, _ := eventRepo.GetByID("evt-paid")
	assert.Equal(t, 0, event.Registered)
}

func TestGetEnforcesOwnership(t *testing.T) {
	svc, _, _ := newBookingFixture(t, paidEvent())

	booking, _ := svc.Create("user-1", BookingRequest{EventID: "evt-paid", Tickets: 1})

	got, err := svc.Get(booking.ID, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)

	_, err = svc.Get(booking.ID, "user-2")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelConfirmedBookingRestoresCapacity(t *testing.T) {
	svc, eventRepo, _ := newBookingFixture(t, paidEvent())

	booking, _ := svc.Create("user-1", BookingRequest{EventID: "evt-paid", Tickets: 4})
	_, err := svc.ConfirmPayment(booking.ID, "pay_abc")
	assert.NoError(t, err)

	event, _ := eventRepo.GetByID("evt-paid")
	assert.Equal(t, 4, event.Registered)

	err = svc.Cancel(booking.ID, "user-1")
	assert.NoError(t, err)

	event, _ = eventRepo.GetByID("evt-paid")
	assert.Equal(t, 0, event.Registered)

	// Second cancel is not found and never drives registered negative
	err = svc.Cancel(booking.ID, "user-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	event, _ = eventRepo.GetByID("evt-paid")
	assert.Equal(t, 0, event.Registered)
}

func TestCancelPendingBookingLeavesCountAlone(t *testing.T) {
	event := paidEvent()
	event.Registered = 5
	svc, eventRepo, _ := newBookingFixture(t, event)

	booking, _ := svc.Create("user-1", BookingRequest{EventID: "evt-paid", Tickets: 2})

	err := svc.Cancel(booking.ID, "user-1")
	assert.NoError(t, err)

	got, _ := eventRepo.GetByID("evt-paid")
	assert.Equal(t, 5, got.Registered)
}

func TestCancelEnforcesOwnership(t *testing.T) {
	svc, _, _ := newBookingFixture(t, paidEvent())

	booking, _ := svc.Create("user-1", BookingRequest{EventID: "evt-paid", Tickets: 1})

	err := svc.Cancel(booking.ID, "user-2")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// Still there for its owner
	_, err = svc.Get(booking.ID, "user-1")
	assert.NoError(t, err)
}

func TestExpireStalePending(t *testing.T) {
	svc, _, bookingRepo := newBookingFixture(t, paidEvent())

	stale := &models.Booking{
		ID:            "bk-stale",
		EventID:       "evt-paid",
		UserID:        "user-1",
		Tickets:       1,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     time.Now().Add(-2 * time.Hour),
	}
	assert.NoError(t, bookingRepo.Create(stale))

	fresh, _ := svc.Create("user-1", BookingRequest{EventID: "evt-paid", Tickets: 1})

	expired, err := svc.ExpireStalePending(30 * time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, 1, expired)

	_, err = bookingRepo.GetByID("bk-stale")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = bookingRepo.GetByID(fresh.ID)
	assert.NoError(t, err)
}
