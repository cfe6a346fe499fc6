// File: /utils/validators_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("asha@example.com"))
	assert.True(t, IsValidEmail("a.b+tag@sub.example.co.in"))
	assert.False(t, IsValidEmail("no-at-sign"))
	assert.False(t, IsValidEmail("spaces in@example.com"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("9876543210"))
	assert.True(t, IsValidPhone("6000000000"))
	assert.False(t, IsValidPhone("1234567890")) // must start 6-9
	assert.False(t, IsValidPhone("98765"))
	assert.False(t, IsValidPhone("98765432101"))
	assert.False(t, IsValidPhone("+919876543210"))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2026-02-15"))
	assert.False(t, IsValidDate("15-02-2026"))
	assert.False(t, IsValidDate("2026/02/15"))
	assert.False(t, IsValidDate(""))
}

func TestIsValidCapacityAndPrice(t *testing.T) {
	assert.True(t, IsValidCapacity(1))
	assert.False(t, IsValidCapacity(0))
	assert.False(t, IsValidCapacity(-5))

	assert.True(t, IsValidPrice(0))
	assert.True(t, IsValidPrice(1499.50))
	assert.False(t, IsValidPrice(-1))
}

func TestNewTicketCode(t *testing.T) {
	code := NewTicketCode()
	assert.Len(t, code, 11)
	assert.Equal(t, "TKT", code[:3])
	assert.NotEqual(t, code, NewTicketCode())
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "Free", FormatCurrency(0, "INR"))
	assert.Equal(t, "₹1499", FormatCurrency(1499, "INR"))
	assert.Equal(t, "20.00 USD", FormatCurrency(20, "USD"))
}

func TestGetInitials(t *testing.T) {
	assert.Equal(t, "AR", GetInitials("Asha Rao"))
	assert.Equal(t, "A", GetInitials("asha"))
	assert.Equal(t, "AK", GetInitials("Asha Devi Kumar"))
	assert.Equal(t, "?", GetInitials("   "))
}
