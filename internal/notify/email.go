package notify

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/LoafLife/loaf-life-reservations/internal/entities"
)

// EmailSender sends the booking confirmation email. Failures are the sender's
// problem to log; the booking flow never blocks on email.
type EmailSender interface {
	SendBookingEmail(booking entities.Booking)
}

// SendGridSender sends confirmation emails through SendGrid, asynchronously.
type SendGridSender struct{}

func NewSendGridSender() *SendGridSender {
	return &SendGridSender{}
}

func (s *SendGridSender) SendBookingEmail(booking entities.Booking) {
	data := entities.BookingEmailData{
		UserName:       booking.UserName,
		BookingCode:    booking.Code,
		PassName:       booking.PassName,
		SpaceName:      booking.SpaceName,
		DatesFormatted: strings.Join(booking.Dates, ", "),
		TotalPrice:     booking.TotalPrice,
		AccessCode:     booking.AccessCode,
		CurrentYear:    time.Now().Year(),
	}

	subject := fmt.Sprintf("Your Loaf Life desk is booked - Code: %s", data.BookingCode)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation at Loaf Life is confirmed.\n\n"+
			"Booking Details:\n"+
			"Booking Code: %s\n"+
			"Pass: %s\n"+
			"Space: %s\n"+
			"Dates: %s\n"+
			"Total Paid: $%d\n\n"+
			"Your door access code is %s. It was also sent to your phone.\n\n"+
			"Thank you for choosing Loaf Life.\n\n"+
			"Loaf Life Coworking, Kingfield. %d",
		data.UserName, data.BookingCode, data.PassName, data.SpaceName,
		data.DatesFormatted, data.TotalPrice, data.AccessCode, data.CurrentYear,
	)

	go func() {
		if err := sendEmailWithSendGrid(booking.UserEmail, data.UserName, subject, body); err != nil {
			log.Printf("ALERT (async): confirmation email for booking %s failed: %v", data.BookingCode, err)
		}
	}()
}

func sendEmailWithSendGrid(toEmailAddress, toName, subject, plainTextContent string) error {
	sendgridAPIKey := os.Getenv("SENDGRID_API_KEY")
	if sendgridAPIKey == "" {
		log.Println("WARNING: SENDGRID_API_KEY not set, email will not be sent.")
		return fmt.Errorf("SENDGRID_API_KEY not set")
	}

	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		log.Println("WARNING: SENDGRID_FROM_EMAIL not set, email will not be sent.")
		return fmt.Errorf("SENDGRID_FROM_EMAIL not set")
	}

	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "Loaf Life"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmailAddress)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, "")

	client := sendgrid.NewSendClient(sendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sending email via SendGrid: %w", err)
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		log.Printf("Email sent to %s (subject: %s). Status: %d", toEmailAddress, subject, response.StatusCode)
		return nil
	}
	return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
}
