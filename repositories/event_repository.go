// File: /repositories/event_repository.go
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"eventfdr-api/models"
)

type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) List() ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *GormEventRepository) GetByID(id string) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *GormEventRepository) ListByCategory(category string) ([]models.Event, error) {
	if category == models.CategoryAll {
		return r.List()
	}

	var events []models.Event
	if err := r.db.Where("category = ?", category).Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *GormEventRepository) ListFeatured() ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Where("featured = ?", true).Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *GormEventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *GormEventRepository) Update(id string, updates map[string]interface{}) (*models.Event, error) {
	event, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(event).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *GormEventRepository) Delete(id string) error {
	result := r.db.Delete(&models.Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormEventRepository) AddRegistered(id string, delta int) error {
	result := r.db.Model(&models.Event{}).Where("id = ?", id).
		UpdateColumn("registered", gorm.Expr("GREATEST(registered + ?, 0)", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
