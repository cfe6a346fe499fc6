// File: /repositories/booking_repository.go
package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"eventfdr-api/models"
)

type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

func (r *GormBookingRepository) GetByID(id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *GormBookingRepository) ListByUser(userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormBookingRepository) ListByEvent(eventID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.Where("event_id = ?", eventID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormBookingRepository) UpdatePayment(id, paymentStatus, status, paymentID string) (*models.Booking, error) {
	booking, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"payment_status": paymentStatus,
		"status":         status,
	}
	if paymentID != "" {
		updates["payment_id"] = paymentID
	}

	if err := r.db.Model(booking).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *GormBookingRepository) Delete(id string) error {
	result := r.db.Delete(&models.Booking{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormBookingRepository) ListStalePending(cutoff time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("status = ? AND payment_status = ? AND created_at < ?",
		models.BookingPending, models.PaymentPending, cutoff).Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
