// File: /config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Store       string // "mysql" or "memory"
	DatabaseURL string
	JWTSecret   string

	// Simulated payment gateway
	PaymentKeyID string

	// Pending bookings older than this are expired by the cleanup job
	BookingTTL time.Duration

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	EmailEnabled bool
}

func Load() *Config {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))
	bookingTTL, err := time.ParseDuration(getEnv("BOOKING_TTL", "30m"))
	if err != nil {
		bookingTTL = 30 * time.Minute
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Store:       getEnv("STORE", "mysql"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/eventfdr?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),

		PaymentKeyID: getEnv("PAYMENT_KEY_ID", "rzp_test_demo"),
		BookingTTL:   bookingTTL,

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@eventfdr.com"),
		FromName:     getEnv("FROM_NAME", "EventFDR"),
		EmailEnabled: getEnv("EMAIL_ENABLED", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
