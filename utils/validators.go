// File: /utils/validators.go
package utils

import (
	"regexp"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Indian mobile numbers: ten digits starting 6-9
	phoneRegex = regexp.MustCompile(`^[6-9]\d{9}$`)
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// IsValidDate checks the YYYY-MM-DD shape used for event dates
func IsValidDate(date string) bool {
	return dateRegex.MatchString(date)
}

// IsValidCapacity rejects non-positive capacities so availability math
// never divides by zero.
func IsValidCapacity(capacity int) bool {
	return capacity >= 1
}

func IsValidPrice(price float64) bool {
	return price >= 0
}
