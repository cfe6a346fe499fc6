// File: /routes/stores.go
package routes

import (
	"gorm.io/gorm"

	"eventfdr-api/models"
	"eventfdr-api/repositories"
)

// GormStores builds the MySQL-backed store set.
func GormStores(db *gorm.DB) Stores {
	return Stores{
		Events:   repositories.NewGormEventRepository(db),
		Bookings: repositories.NewGormBookingRepository(db),
		Users:    repositories.NewGormUserRepository(db),
	}
}

// MemoryStores builds the in-memory store set, seeded with the demo
// catalog.
func MemoryStores(seed []models.Event) Stores {
	return Stores{
		Events:   repositories.NewMemoryEventRepository(seed),
		Bookings: repositories.NewMemoryBookingRepository(),
		Users:    repositories.NewMemoryUserRepository(),
	}
}
