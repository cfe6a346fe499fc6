// File: /utils/helpers.go
package utils

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const ticketCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewID returns a fresh entity identifier.
func NewID() string {
	return uuid.New().String()
}

// NewTicketCode generates the opaque display code printed on a ticket.
// It is not a security token.
func NewTicketCode() string {
	b := make([]byte, 8)
	rand.Read(b)

	var sb strings.Builder
	sb.WriteString("TKT")
	for _, v := range b {
		sb.WriteByte(ticketCodeAlphabet[int(v)%len(ticketCodeAlphabet)])
	}
	return sb.String()
}

// FormatCurrency renders a price for emails and logs. Zero means free.
func FormatCurrency(amount float64, currency string) string {
	if amount == 0 {
		return "Free"
	}
	if currency == "INR" {
		return fmt.Sprintf("₹%.0f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}

// GetInitials returns up to two uppercase initials for avatar badges.
func GetInitials(name string) string {
	words := strings.Fields(strings.TrimSpace(name))
	if len(words) == 0 {
		return "?"
	}
	if len(words) == 1 {
		return strings.ToUpper(words[0][:1])
	}
	return strings.ToUpper(words[0][:1] + words[len(words)-1][:1])
}
