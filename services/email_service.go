// File: /services/email_service.go
package services

import (
	"fmt"
	"log"
	"strings"

	"gopkg.in/gomail.v2"

	"eventfdr-api/config"
	"eventfdr-api/models"
	"eventfdr-api/utils"
)

// EmailService sends transactional mail over SMTP: a welcome note on
// registration and a ticket confirmation once a booking is paid.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

func (es *EmailService) from() string {
	return fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail)
}

// SendWelcomeEmail greets a newly registered user.
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", es.from())
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to EventFDR!")

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #6d28d9; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🎟️ EventFDR</h1>
        </div>
        <div class="content">
            <h2>Hello %s!</h2>
            <p>Your EventFDR account is ready. Browse events, grab tickets and we'll keep them all in one place for you.</p>
            <p><strong>The EventFDR Team</strong></p>
        </div>
        <div class="footer">
            <p>This is an automated email, please do not reply.</p>
        </div>
    </div>
</body>
</html>`, name)

	textBody := fmt.Sprintf("Hello %s!\n\nYour EventFDR account is ready. Browse events, grab tickets and we'll keep them all in one place for you.\n\nThe EventFDR Team", name)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}
	return nil
}

// SendBookingConfirmation mails the ticket code and event details for
// a paid booking. Called from a goroutine, so it logs failures instead
// of returning them up a request path.
func (es *EmailService) SendBookingConfirmation(booking *models.Booking) {
	m := gomail.NewMessage()
	m.SetHeader("From", es.from())
	m.SetHeader("To", booking.Email)
	m.SetHeader("Subject", fmt.Sprintf("Your tickets for %s", booking.EventTitle))

	amount := utils.FormatCurrency(booking.TotalAmount, "INR")
	attendees := strings.Join(booking.AttendeeNames, ", ")
	if attendees == "" {
		attendees = "—"
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #6d28d9; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        .code { background: #e9ecef; padding: 20px; text-align: center; border-radius: 8px; margin: 20px 0; }
        .code-number { font-size: 28px; font-weight: bold; color: #6d28d9; letter-spacing: 4px; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🎟️ EventFDR</h1>
            <p>Booking Confirmed</p>
        </div>
        <div class="content">
            <h2>%s</h2>
            <p>%s · %s, %s</p>
            <div class="code">
                <p><strong>Your ticket code:</strong></p>
                <div class="code-number">%s</div>
            </div>
            <p>Tickets: %d<br>Attendees: %s<br>Total paid: %s</p>
            <p>Show this code at the venue entrance.</p>
        </div>
        <div class="footer">
            <p>This is an automated email, please do not reply.</p>
        </div>
    </div>
</body>
</html>`, booking.EventTitle, booking.EventDate, booking.EventVenue, booking.EventCity,
		booking.TicketCode, booking.Tickets, attendees, amount)

	textBody := fmt.Sprintf(`Booking confirmed: %s
%s at %s, %s

Ticket code: %s
Tickets: %d
Attendees: %s
Total paid: %s

Show this code at the venue entrance.`,
		booking.EventTitle, booking.EventDate, booking.EventVenue, booking.EventCity,
		booking.TicketCode, booking.Tickets, attendees, amount)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		log.Printf("Failed to send booking confirmation for %s: %v", booking.ID, err)
	}
}
