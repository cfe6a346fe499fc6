// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	Phone     string    `json:"phone,omitempty" gorm:"size:20"`
	Avatar    *string   `json:"avatar" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Bookings []Booking `json:"-" gorm:"foreignKey:UserID"`
}
