// File: /controllers/booking_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventfdr-api/services"
	"eventfdr-api/utils"
)

type BookingController struct {
	bookings *services.BookingService
	payments *services.PaymentService
}

func NewBookingController(bookings *services.BookingService, payments *services.PaymentService) *BookingController {
	return &BookingController{bookings: bookings, payments: payments}
}

func sendServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrBookingNotFound):
		utils.SendError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInsufficientAvailability),
		errors.Is(err, services.ErrValidation):
		utils.SendError(c, http.StatusBadRequest, err.Error())
	default:
		utils.SendError(c, http.StatusInternalServerError, fallback)
	}
}

// GetBookings lists the authenticated user's bookings.
func (bc *BookingController) GetBookings(c *gin.Context) {
	userID := c.GetString("user_id")

	bookings, err := bc.bookings.ListByUser(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	utils.SendList(c, bookings, len(bookings))
}

// GetBooking returns one of the user's bookings.
func (bc *BookingController) GetBooking(c *gin.Context) {
	userID := c.GetString("user_id")

	booking, err := bc.bookings.Get(c.Param("id"), userID)
	if err != nil {
		sendServiceError(c, err, "Failed to fetch booking")
		return
	}

	utils.SendSuccess(c, booking)
}

// CreateBooking runs the registration workflow. Free totals come back
// already confirmed; paid totals stay pending until verify.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID := c.GetString("user_id")

	var req services.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	booking, err := bc.bookings.Create(userID, req)
	if err != nil {
		sendServiceError(c, err, "Failed to create booking")
		return
	}

	utils.SendCreated(c, booking)
}

// PayBooking creates a simulated payment order for a pending booking.
func (bc *BookingController) PayBooking(c *gin.Context) {
	userID := c.GetString("user_id")
	bookingID := c.Param("id")

	// Ownership check before touching the gateway
	if _, err := bc.bookings.Get(bookingID, userID); err != nil {
		sendServiceError(c, err, "Failed to fetch booking")
		return
	}

	order, err := bc.payments.CreateOrder(bookingID)
	if err != nil {
		sendServiceError(c, err, "Failed to create payment order")
		return
	}

	utils.SendSuccess(c, order)
}

type VerifyPaymentRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
	OrderID   string `json:"order_id"`
}

// VerifyPayment marks a booking paid and bumps the event's registered
// count. The payment id is trusted as supplied; there is no gateway
// signature check in this simulation.
func (bc *BookingController) VerifyPayment(c *gin.Context) {
	userID := c.GetString("user_id")
	bookingID := c.Param("id")

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if _, err := bc.bookings.Get(bookingID, userID); err != nil {
		sendServiceError(c, err, "Failed to fetch booking")
		return
	}

	booking, err := bc.bookings.ConfirmPayment(bookingID, req.PaymentID)
	if err != nil {
		sendServiceError(c, err, "Failed to verify payment")
		return
	}

	utils.SendSuccessMessage(c, "Payment verified successfully", booking)
}

// CancelBooking removes a booking and releases its tickets.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := bc.bookings.Cancel(c.Param("id"), userID); err != nil {
		sendServiceError(c, err, "Failed to cancel booking")
		return
	}

	utils.SendSuccessMessage(c, "Booking cancelled successfully", nil)
}
